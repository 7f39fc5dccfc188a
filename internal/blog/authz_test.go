// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package blog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkpost/inkpost/internal/blog"
)

func TestIsPostOwner(t *testing.T) {
	alice := &blog.User{ID: 1, Username: "alice"}
	bob := &blog.User{ID: 2, Username: "bob"}
	post := &blog.Post{ID: 10, AuthorID: 1}

	assert.True(t, blog.IsPostOwner(alice, post))
	assert.False(t, blog.IsPostOwner(bob, post))
	assert.False(t, blog.IsPostOwner(nil, post))
	assert.False(t, blog.IsPostOwner(alice, nil))
}

func TestIsCommentOwner(t *testing.T) {
	alice := &blog.User{ID: 1, Username: "alice"}
	bob := &blog.User{ID: 2, Username: "bob"}
	comment := &blog.Comment{ID: 20, PostID: 10, AuthorID: 2}

	assert.True(t, blog.IsCommentOwner(bob, comment))
	assert.False(t, blog.IsCommentOwner(alice, comment))
	assert.False(t, blog.IsCommentOwner(nil, comment))
	assert.False(t, blog.IsCommentOwner(bob, nil))
}
