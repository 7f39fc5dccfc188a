// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package blog

import (
	"context"
	"strings"
	"time"

	"github.com/samber/oops"
)

// Service is the entity store facade. Every handler-visible operation on
// users, posts, comments, and likes goes through it.
type Service struct {
	users    UserRepository
	posts    PostRepository
	comments CommentRepository
	likes    LikeRepository
}

// NewService creates a Service.
func NewService(users UserRepository, posts PostRepository, comments CommentRepository, likes LikeRepository) (*Service, error) {
	if users == nil {
		return nil, oops.Code("BLOG_INVALID_DEPS").Errorf("user repository is required")
	}
	if posts == nil {
		return nil, oops.Code("BLOG_INVALID_DEPS").Errorf("post repository is required")
	}
	if comments == nil {
		return nil, oops.Code("BLOG_INVALID_DEPS").Errorf("comment repository is required")
	}
	if likes == nil {
		return nil, oops.Code("BLOG_INVALID_DEPS").Errorf("like repository is required")
	}
	return &Service{users: users, posts: posts, comments: comments, likes: likes}, nil
}

// CreateUser registers a user with an already-hashed password. The username
// must have passed validation; uniqueness is enforced atomically by the
// repository, so a lost race surfaces as ErrUsernameTaken rather than a
// duplicate row.
func (s *Service) CreateUser(ctx context.Context, username, passwordHash, email string) (int64, error) {
	if username == "" || passwordHash == "" {
		return 0, oops.Code("USER_CREATE_INVALID").Errorf("username and password hash are required")
	}

	now := time.Now().UTC()
	user := &User{
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
		Created:      now,
		LastModified: now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return 0, oops.Code("USER_CREATE_FAILED").
			With("username", username).
			Wrap(err)
	}
	return user.ID, nil
}

// UserExists reports whether a username is registered.
func (s *Service) UserExists(ctx context.Context, username string) (bool, error) {
	exists, err := s.users.Exists(ctx, username)
	if err != nil {
		return false, oops.Code("USER_EXISTS_FAILED").
			With("username", username).
			Wrap(err)
	}
	return exists, nil
}

// GetUserByID retrieves a user by ID.
func (s *Service) GetUserByID(ctx context.Context, id int64) (*User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, oops.Code("USER_GET_FAILED").
			With("id", id).
			Wrap(err)
	}
	return user, nil
}

// GetUserByUsername retrieves a user by exact username.
func (s *Service) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, oops.Code("USER_GET_FAILED").
			With("username", username).
			Wrap(err)
	}
	return user, nil
}

// CreatePost stores a post. Subject and content must be non-empty and the
// author must exist.
func (s *Service) CreatePost(ctx context.Context, subject, content string, authorID int64) (int64, error) {
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(content) == "" {
		return 0, oops.Code("POST_CREATE_INVALID").Errorf("subject and content are required")
	}
	if _, err := s.users.GetByID(ctx, authorID); err != nil {
		return 0, oops.Code("POST_CREATE_FAILED").
			With("author_id", authorID).
			Wrap(err)
	}

	now := time.Now().UTC()
	post := &Post{
		Subject:      subject,
		Content:      content,
		AuthorID:     authorID,
		Created:      now,
		LastModified: now,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return 0, oops.Code("POST_CREATE_FAILED").
			With("author_id", authorID).
			Wrap(err)
	}
	return post.ID, nil
}

// GetPost retrieves a post by ID.
func (s *Service) GetPost(ctx context.Context, id int64) (*Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, oops.Code("POST_GET_FAILED").
			With("id", id).
			Wrap(err)
	}
	return post, nil
}

// UpdatePost overwrites a post's subject and content and touches its
// last-modified time. Returns ErrNotFound if the post does not exist.
func (s *Service) UpdatePost(ctx context.Context, id int64, subject, content string) error {
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(content) == "" {
		return oops.Code("POST_UPDATE_INVALID").Errorf("subject and content are required")
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return oops.Code("POST_UPDATE_FAILED").
			With("id", id).
			Wrap(err)
	}

	post.Subject = subject
	post.Content = content
	post.LastModified = time.Now().UTC()
	if err := s.posts.Update(ctx, post); err != nil {
		return oops.Code("POST_UPDATE_FAILED").
			With("id", id).
			Wrap(err)
	}
	return nil
}

// DeletePost removes a post. Comments and likes referencing it remain in the
// store.
func (s *Service) DeletePost(ctx context.Context, id int64) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		return oops.Code("POST_DELETE_FAILED").
			With("id", id).
			Wrap(err)
	}
	return nil
}

// ListPosts returns up to limit posts, newest first. A non-positive limit
// falls back to the front-page cap.
func (s *Service) ListPosts(ctx context.Context, limit int) ([]*Post, error) {
	if limit <= 0 {
		limit = FrontPagePostLimit
	}
	posts, err := s.posts.ListRecent(ctx, limit)
	if err != nil {
		return nil, oops.Code("POST_LIST_FAILED").
			With("limit", limit).
			Wrap(err)
	}
	return posts, nil
}

// UpdatePostOwned updates a post on behalf of actor, failing with
// ErrAccessDenied unless actor owns it.
func (s *Service) UpdatePostOwned(ctx context.Context, actor *User, id int64, subject, content string) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return oops.Code("POST_UPDATE_FAILED").
			With("id", id).
			Wrap(err)
	}
	if !IsPostOwner(actor, post) {
		return oops.Code("POST_NOT_OWNER").
			With("id", id).
			Wrap(ErrAccessDenied)
	}
	return s.UpdatePost(ctx, id, subject, content)
}

// DeletePostOwned deletes a post on behalf of actor, failing with
// ErrAccessDenied unless actor owns it.
func (s *Service) DeletePostOwned(ctx context.Context, actor *User, id int64) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return oops.Code("POST_DELETE_FAILED").
			With("id", id).
			Wrap(err)
	}
	if !IsPostOwner(actor, post) {
		return oops.Code("POST_NOT_OWNER").
			With("id", id).
			Wrap(ErrAccessDenied)
	}
	return s.DeletePost(ctx, id)
}

// CreateComment stores a comment. The referenced post must exist.
func (s *Service) CreateComment(ctx context.Context, postID int64, content string, authorID int64) (int64, error) {
	if strings.TrimSpace(content) == "" {
		return 0, oops.Code("COMMENT_CREATE_INVALID").Errorf("content is required")
	}
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return 0, oops.Code("COMMENT_CREATE_FAILED").
			With("post_id", postID).
			Wrap(err)
	}

	now := time.Now().UTC()
	comment := &Comment{
		Content:      content,
		PostID:       postID,
		AuthorID:     authorID,
		Created:      now,
		LastModified: now,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return 0, oops.Code("COMMENT_CREATE_FAILED").
			With("post_id", postID).
			Wrap(err)
	}
	return comment.ID, nil
}

// GetComment retrieves a comment by ID.
func (s *Service) GetComment(ctx context.Context, id int64) (*Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, oops.Code("COMMENT_GET_FAILED").
			With("id", id).
			Wrap(err)
	}
	return comment, nil
}

// UpdateComment overwrites a comment's content.
func (s *Service) UpdateComment(ctx context.Context, id int64, content string) error {
	if strings.TrimSpace(content) == "" {
		return oops.Code("COMMENT_UPDATE_INVALID").Errorf("content is required")
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return oops.Code("COMMENT_UPDATE_FAILED").
			With("id", id).
			Wrap(err)
	}

	comment.Content = content
	comment.LastModified = time.Now().UTC()
	if err := s.comments.Update(ctx, comment); err != nil {
		return oops.Code("COMMENT_UPDATE_FAILED").
			With("id", id).
			Wrap(err)
	}
	return nil
}

// DeleteComment removes a comment.
func (s *Service) DeleteComment(ctx context.Context, id int64) error {
	if err := s.comments.Delete(ctx, id); err != nil {
		return oops.Code("COMMENT_DELETE_FAILED").
			With("id", id).
			Wrap(err)
	}
	return nil
}

// ListCommentsForPost returns a post's comments, oldest first.
func (s *Service) ListCommentsForPost(ctx context.Context, postID int64) ([]*Comment, error) {
	comments, err := s.comments.ListForPost(ctx, postID)
	if err != nil {
		return nil, oops.Code("COMMENT_LIST_FAILED").
			With("post_id", postID).
			Wrap(err)
	}
	return comments, nil
}

// UpdateCommentOwned updates a comment on behalf of actor, failing with
// ErrAccessDenied unless actor owns it.
func (s *Service) UpdateCommentOwned(ctx context.Context, actor *User, id int64, content string) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return oops.Code("COMMENT_UPDATE_FAILED").
			With("id", id).
			Wrap(err)
	}
	if !IsCommentOwner(actor, comment) {
		return oops.Code("COMMENT_NOT_OWNER").
			With("id", id).
			Wrap(ErrAccessDenied)
	}
	return s.UpdateComment(ctx, id, content)
}

// DeleteCommentOwned deletes a comment on behalf of actor, failing with
// ErrAccessDenied unless actor owns it.
func (s *Service) DeleteCommentOwned(ctx context.Context, actor *User, id int64) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return oops.Code("COMMENT_DELETE_FAILED").
			With("id", id).
			Wrap(err)
	}
	if !IsCommentOwner(actor, comment) {
		return oops.Code("COMMENT_NOT_OWNER").
			With("id", id).
			Wrap(ErrAccessDenied)
	}
	return s.DeleteComment(ctx, id)
}

// CreateLike records a like. Nothing deduplicates repeated likes from the
// same user; the count simply grows.
func (s *Service) CreateLike(ctx context.Context, postID, userID int64) (int64, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return 0, oops.Code("LIKE_CREATE_FAILED").
			With("post_id", postID).
			Wrap(err)
	}

	now := time.Now().UTC()
	like := &Like{
		PostID:       postID,
		UserID:       userID,
		Created:      now,
		LastModified: now,
	}
	if err := s.likes.Create(ctx, like); err != nil {
		return 0, oops.Code("LIKE_CREATE_FAILED").
			With("post_id", postID).
			With("user_id", userID).
			Wrap(err)
	}
	return like.ID, nil
}

// CountLikesForPost returns the number of likes on a post.
func (s *Service) CountLikesForPost(ctx context.Context, postID int64) (int64, error) {
	count, err := s.likes.CountForPost(ctx, postID)
	if err != nil {
		return 0, oops.Code("LIKE_COUNT_FAILED").
			With("post_id", postID).
			Wrap(err)
	}
	return count, nil
}
