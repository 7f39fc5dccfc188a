// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

// Package blog holds the Inkpost domain: users, posts, comments, and likes.
//
// # Domain Types
//
// Entity structs carry Created and LastModified timestamps that the Service
// sets on every write. Repositories receive fully populated entities and
// assign IDs on create.
//
// # Service
//
// Service is the entity store facade. Handlers go through it for every
// create/read/update/delete; the *Owned variants additionally enforce that
// the acting user owns the entity before mutating it. Ownership mismatches
// surface as ErrAccessDenied, which the web layer renders identically to
// ErrNotFound.
package blog
