// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

// Package blogtest provides in-memory repository implementations for tests.
package blogtest

import (
	"context"
	"sort"
	"sync"

	"github.com/inkpost/inkpost/internal/blog"
)

// Store bundles in-memory implementations of every blog repository. It is
// safe for concurrent use so handler tests can run requests in parallel.
type Store struct {
	mu       sync.Mutex
	nextID   int64
	users    map[int64]*blog.User
	posts    map[int64]*blog.Post
	comments map[int64]*blog.Comment
	likes    map[int64]*blog.Like
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		users:    make(map[int64]*blog.User),
		posts:    make(map[int64]*blog.Post),
		comments: make(map[int64]*blog.Comment),
		likes:    make(map[int64]*blog.Like),
	}
}

// NewService wires a blog.Service over a fresh Store, panicking on the
// impossible constructor error to keep test setup terse.
func NewService() (*blog.Service, *Store) {
	st := NewStore()
	svc, err := blog.NewService(st.Users(), st.Posts(), st.Comments(), st.Likes())
	if err != nil {
		panic(err)
	}
	return svc, st
}

// Users returns the store's blog.UserRepository view.
func (s *Store) Users() blog.UserRepository { return (*userRepo)(s) }

// Posts returns the store's blog.PostRepository view.
func (s *Store) Posts() blog.PostRepository { return (*postRepo)(s) }

// Comments returns the store's blog.CommentRepository view.
func (s *Store) Comments() blog.CommentRepository { return (*commentRepo)(s) }

// Likes returns the store's blog.LikeRepository view.
func (s *Store) Likes() blog.LikeRepository { return (*likeRepo)(s) }

func (s *Store) allocID() int64 {
	s.nextID++
	return s.nextID
}

type userRepo Store

func (r *userRepo) Create(_ context.Context, user *blog.User) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return blog.ErrUsernameTaken
		}
	}
	user.ID = s.allocID()
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id int64) (*blog.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, blog.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (*blog.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, blog.ErrNotFound
}

func (r *userRepo) Exists(ctx context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(ctx, username)
	if err != nil {
		return false, nil
	}
	return true, nil
}

type postRepo Store

func (r *postRepo) Create(_ context.Context, post *blog.Post) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	post.ID = s.allocID()
	cp := *post
	s.posts[post.ID] = &cp
	return nil
}

func (r *postRepo) GetByID(_ context.Context, id int64) (*blog.Post, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, blog.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *postRepo) Update(_ context.Context, post *blog.Post) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[post.ID]; !ok {
		return blog.ErrNotFound
	}
	cp := *post
	s.posts[post.ID] = &cp
	return nil
}

func (r *postRepo) Delete(_ context.Context, id int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return blog.ErrNotFound
	}
	delete(s.posts, id)
	return nil
}

func (r *postRepo) ListRecent(_ context.Context, limit int) ([]*blog.Post, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*blog.Post, 0, len(s.posts))
	for _, p := range s.posts {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Created.Equal(out[j].Created) {
			return out[i].ID > out[j].ID
		}
		return out[i].Created.After(out[j].Created)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type commentRepo Store

func (r *commentRepo) Create(_ context.Context, comment *blog.Comment) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	comment.ID = s.allocID()
	cp := *comment
	s.comments[comment.ID] = &cp
	return nil
}

func (r *commentRepo) GetByID(_ context.Context, id int64) (*blog.Comment, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok {
		return nil, blog.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *commentRepo) Update(_ context.Context, comment *blog.Comment) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[comment.ID]; !ok {
		return blog.ErrNotFound
	}
	cp := *comment
	s.comments[comment.ID] = &cp
	return nil
}

func (r *commentRepo) Delete(_ context.Context, id int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[id]; !ok {
		return blog.ErrNotFound
	}
	delete(s.comments, id)
	return nil
}

func (r *commentRepo) ListForPost(_ context.Context, postID int64) ([]*blog.Comment, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*blog.Comment
	for _, c := range s.comments {
		if c.PostID == postID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type likeRepo Store

func (r *likeRepo) Create(_ context.Context, like *blog.Like) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	like.ID = s.allocID()
	cp := *like
	s.likes[like.ID] = &cp
	return nil
}

func (r *likeRepo) CountForPost(_ context.Context, postID int64) (int64, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, l := range s.likes {
		if l.PostID == postID {
			n++
		}
	}
	return n, nil
}

// Compile-time interface checks.
var (
	_ blog.UserRepository    = (*userRepo)(nil)
	_ blog.PostRepository    = (*postRepo)(nil)
	_ blog.CommentRepository = (*commentRepo)(nil)
	_ blog.LikeRepository    = (*likeRepo)(nil)
)
