// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/inkpost/inkpost/internal/blog"
	"github.com/inkpost/inkpost/internal/security"
	"github.com/inkpost/inkpost/pkg/errutil"
)

type indexData struct {
	User  *blog.User
	Posts []*blog.Post
}

type postData struct {
	User         *blog.User
	Post         *blog.Post
	Comments     []*blog.Comment
	Likes        int64
	CommentError string
}

type postFormData struct {
	User    *blog.User
	Post    *blog.Post
	Subject string
	Content string
	Error   string
}

type commentFormData struct {
	User    *blog.User
	Content string
	Error   string
}

type signupData struct {
	User     *blog.User
	Username string
	Email    string
	Errors   map[string]string
}

type loginData struct {
	User     *blog.User
	Username string
	Error    string
}

type welcomeData struct {
	User *blog.User
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64) //nolint:wrapcheck // caller maps to 404
}

// requireUser redirects anonymous requests to the login page. Returns the
// user and true when a session is present.
func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (*blog.User, bool) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/account/login", http.StatusFound)
		return nil, false
	}
	return user, true
}

// serverError logs err and replies 500.
func (s *Server) serverError(w http.ResponseWriter, msg string, err error) {
	errutil.LogError(s.logger, msg, err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// notFoundOrServerError maps missing and not-owned resources to 404 without
// distinguishing the two, and everything else to 500.
func (s *Server) notFoundOrServerError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if errors.Is(err, blog.ErrNotFound) || errors.Is(err, blog.ErrAccessDenied) {
		http.NotFound(w, r)
		return
	}
	s.serverError(w, msg, err)
}

func postPath(id int64) string {
	return fmt.Sprintf("/%d", id)
}

func (s *Server) handleFront(w http.ResponseWriter, r *http.Request) {
	posts, err := s.service.ListPosts(r.Context(), 0)
	if err != nil {
		s.serverError(w, "list posts failed", err)
		return
	}
	s.tmpl.render(w, http.StatusOK, "index", indexData{
		User:  UserFromContext(r.Context()),
		Posts: posts,
	})
}

func (s *Server) handleNewPostForm(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	s.tmpl.render(w, http.StatusOK, "post_form", postFormData{User: user})
}

func (s *Server) handleNewPostSubmit(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	subject := r.PostFormValue("subject")
	content := r.PostFormValue("content")

	if result := ValidatePostForm(subject, content); !result.Valid() {
		s.tmpl.render(w, http.StatusOK, "post_form", postFormData{
			User:    user,
			Subject: subject,
			Content: content,
			Error:   result.Errors["content"],
		})
		return
	}

	id, err := s.service.CreatePost(r.Context(), subject, content, user.ID)
	if err != nil {
		s.serverError(w, "create post failed", err)
		return
	}
	http.Redirect(w, r, postPath(id), http.StatusFound)
}

// renderPostPage assembles the full post view (comments and like count).
func (s *Server) renderPostPage(w http.ResponseWriter, r *http.Request, post *blog.Post, commentError string) {
	comments, err := s.service.ListCommentsForPost(r.Context(), post.ID)
	if err != nil {
		s.serverError(w, "list comments failed", err)
		return
	}
	likes, err := s.service.CountLikesForPost(r.Context(), post.ID)
	if err != nil {
		s.serverError(w, "count likes failed", err)
		return
	}
	s.tmpl.render(w, http.StatusOK, "post", postData{
		User:         UserFromContext(r.Context()),
		Post:         post,
		Comments:     comments,
		Likes:        likes,
		CommentError: commentError,
	})
}

func (s *Server) handleShowPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	post, err := s.service.GetPost(r.Context(), id)
	if err != nil {
		s.notFoundOrServerError(w, r, "get post failed", err)
		return
	}
	s.renderPostPage(w, r, post, "")
}

func (s *Server) handleUpdatePostForm(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	post, err := s.service.GetPost(r.Context(), id)
	if err != nil {
		s.notFoundOrServerError(w, r, "get post failed", err)
		return
	}
	if !blog.IsPostOwner(user, post) {
		http.NotFound(w, r)
		return
	}
	s.tmpl.render(w, http.StatusOK, "post_form", postFormData{
		User:    user,
		Post:    post,
		Subject: post.Subject,
		Content: post.Content,
	})
}

func (s *Server) handleUpdatePostSubmit(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	subject := r.PostFormValue("subject")
	content := r.PostFormValue("content")

	if result := ValidatePostForm(subject, content); !result.Valid() {
		s.tmpl.render(w, http.StatusOK, "post_form", postFormData{
			User:    user,
			Post:    &blog.Post{ID: id},
			Subject: subject,
			Content: content,
			Error:   result.Errors["content"],
		})
		return
	}

	if err := s.service.UpdatePostOwned(r.Context(), user, id, subject, content); err != nil {
		s.notFoundOrServerError(w, r, "update post failed", err)
		return
	}
	http.Redirect(w, r, postPath(id), http.StatusFound)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := s.service.DeletePostOwned(r.Context(), user, id); err != nil {
		s.notFoundOrServerError(w, r, "delete post failed", err)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	content := r.PostFormValue("content")
	if result := ValidateCommentForm(content); !result.Valid() {
		post, err := s.service.GetPost(r.Context(), id)
		if err != nil {
			s.notFoundOrServerError(w, r, "get post failed", err)
			return
		}
		s.renderPostPage(w, r, post, result.Errors["content"])
		return
	}

	if _, err := s.service.CreateComment(r.Context(), id, content, user.ID); err != nil {
		s.notFoundOrServerError(w, r, "create comment failed", err)
		return
	}
	http.Redirect(w, r, postPath(id), http.StatusFound)
}

func (s *Server) handleLikePost(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if _, err := s.service.CreateLike(r.Context(), id, user.ID); err != nil {
		s.notFoundOrServerError(w, r, "create like failed", err)
		return
	}
	http.Redirect(w, r, postPath(id), http.StatusFound)
}

func (s *Server) handleUpdateCommentForm(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	comment, err := s.service.GetComment(r.Context(), id)
	if err != nil {
		s.notFoundOrServerError(w, r, "get comment failed", err)
		return
	}
	if !blog.IsCommentOwner(user, comment) {
		http.NotFound(w, r)
		return
	}
	s.tmpl.render(w, http.StatusOK, "comment_form", commentFormData{
		User:    user,
		Content: comment.Content,
	})
}

func (s *Server) handleUpdateCommentSubmit(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	content := r.PostFormValue("content")
	if result := ValidateCommentForm(content); !result.Valid() {
		s.tmpl.render(w, http.StatusOK, "comment_form", commentFormData{
			User:    user,
			Content: content,
			Error:   result.Errors["content"],
		})
		return
	}

	comment, err := s.service.GetComment(r.Context(), id)
	if err != nil {
		s.notFoundOrServerError(w, r, "get comment failed", err)
		return
	}
	if err := s.service.UpdateCommentOwned(r.Context(), user, id, content); err != nil {
		s.notFoundOrServerError(w, r, "update comment failed", err)
		return
	}
	http.Redirect(w, r, postPath(comment.PostID), http.StatusFound)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	comment, err := s.service.GetComment(r.Context(), id)
	if err != nil {
		s.notFoundOrServerError(w, r, "get comment failed", err)
		return
	}
	if err := s.service.DeleteCommentOwned(r.Context(), user, id); err != nil {
		s.notFoundOrServerError(w, r, "delete comment failed", err)
		return
	}
	http.Redirect(w, r, postPath(comment.PostID), http.StatusFound)
}

func (s *Server) handleSignupForm(w http.ResponseWriter, r *http.Request) {
	s.tmpl.render(w, http.StatusOK, "signup", signupData{
		User: UserFromContext(r.Context()),
	})
}

func (s *Server) handleSignupSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	verify := r.PostFormValue("verify")
	email := r.PostFormValue("email")

	rerender := func(errs map[string]string) {
		s.tmpl.render(w, http.StatusOK, "signup", signupData{
			User:     UserFromContext(r.Context()),
			Username: username,
			Email:    email,
			Errors:   errs,
		})
	}

	if result := ValidateSignup(username, password, verify, email); !result.Valid() {
		rerender(result.Errors)
		return
	}

	hash := security.HashPassword(username, password)
	id, err := s.service.CreateUser(r.Context(), username, hash, email)
	if err != nil {
		if errors.Is(err, blog.ErrUsernameTaken) {
			rerender(map[string]string{"username": msgUsernameTaken})
			return
		}
		s.serverError(w, "create user failed", err)
		return
	}

	s.issueSession(w, id)
	http.Redirect(w, r, "/account", http.StatusFound)
}

func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/account/signup", http.StatusFound)
		return
	}
	s.tmpl.render(w, http.StatusOK, "welcome", welcomeData{User: user})
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	s.tmpl.render(w, http.StatusOK, "login", loginData{
		User: UserFromContext(r.Context()),
	})
}

func (s *Server) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	rerender := func() {
		s.tmpl.render(w, http.StatusOK, "login", loginData{
			User:     UserFromContext(r.Context()),
			Username: username,
			Error:    msgInvalidLogin,
		})
	}

	user, err := s.service.GetUserByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			rerender()
			return
		}
		s.serverError(w, "login lookup failed", err)
		return
	}
	if !security.VerifyPassword(username, password, user.PasswordHash) {
		rerender()
		return
	}

	s.issueSession(w, user.ID)
	http.Redirect(w, r, "/account", http.StatusFound)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearSession(w)
	http.Redirect(w, r, "/account/login", http.StatusFound)
}
