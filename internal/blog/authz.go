// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package blog

// IsPostOwner reports whether user authored post. Only owners may update or
// delete a post.
func IsPostOwner(user *User, post *Post) bool {
	return user != nil && post != nil && user.ID == post.AuthorID
}

// IsCommentOwner reports whether user authored comment.
func IsCommentOwner(user *User, comment *Comment) bool {
	return user != nil && comment != nil && user.ID == comment.AuthorID
}
