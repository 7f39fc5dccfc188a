// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

//go:build integration

package blog_test

import (
	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/inkpost/inkpost/internal/blog"
)

var _ = Describe("Users", func() {
	It("creates and retrieves a user by id and username", func() {
		name := uniqueName("alice")
		id, err := env.Service.CreateUser(env.ctx, name, "digest,salts", "alice@example.com")
		Expect(err).NotTo(HaveOccurred())
		Expect(id).To(BeNumerically(">", 0))

		byID, err := env.Service.GetUserByID(env.ctx, id)
		Expect(err).NotTo(HaveOccurred())
		Expect(byID.Username).To(Equal(name))
		Expect(byID.Email).To(Equal("alice@example.com"))

		byName, err := env.Service.GetUserByUsername(env.ctx, name)
		Expect(err).NotTo(HaveOccurred())
		Expect(byName.ID).To(Equal(id))
	})

	It("rejects duplicate usernames atomically", func() {
		name := uniqueName("dupe")
		_, err := env.Service.CreateUser(env.ctx, name, "digest,salts", "")
		Expect(err).NotTo(HaveOccurred())

		_, err = env.Service.CreateUser(env.ctx, name, "digest,other", "")
		Expect(err).To(MatchError(blog.ErrUsernameTaken))
	})

	It("reports existence", func() {
		name := uniqueName("exists")
		exists, err := env.Service.UserExists(env.ctx, name)
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeFalse())

		_, err = env.Service.CreateUser(env.ctx, name, "digest,salts", "")
		Expect(err).NotTo(HaveOccurred())

		exists, err = env.Service.UserExists(env.ctx, name)
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeTrue())
	})

	It("returns ErrNotFound for unknown users", func() {
		_, err := env.Service.GetUserByID(env.ctx, 99999999)
		Expect(err).To(MatchError(blog.ErrNotFound))

		_, err = env.Service.GetUserByUsername(env.ctx, "no_such_user")
		Expect(err).To(MatchError(blog.ErrNotFound))
	})
})

var _ = Describe("Posts", func() {
	It("round-trips a post through create, update, and delete", func() {
		authorID := createTestUser("author")
		postID := createTestPost(authorID, "Round Trip")

		post, err := env.Service.GetPost(env.ctx, postID)
		Expect(err).NotTo(HaveOccurred())
		Expect(post.Subject).To(Equal("Round Trip"))
		Expect(post.AuthorID).To(Equal(authorID))

		err = env.Service.UpdatePost(env.ctx, postID, "Updated Subject", "updated content")
		Expect(err).NotTo(HaveOccurred())

		post, err = env.Service.GetPost(env.ctx, postID)
		Expect(err).NotTo(HaveOccurred())
		Expect(post.Subject).To(Equal("Updated Subject"))
		Expect(post.LastModified).To(BeTemporally(">=", post.Created))

		err = env.Service.DeletePost(env.ctx, postID)
		Expect(err).NotTo(HaveOccurred())

		_, err = env.Service.GetPost(env.ctx, postID)
		Expect(err).To(MatchError(blog.ErrNotFound))
	})

	It("returns ErrNotFound when updating or deleting a missing post", func() {
		Expect(env.Service.UpdatePost(env.ctx, 99999999, "s", "c")).To(MatchError(blog.ErrNotFound))
		Expect(env.Service.DeletePost(env.ctx, 99999999)).To(MatchError(blog.ErrNotFound))
	})

	It("lists recent posts newest first with a limit", func() {
		authorID := createTestUser("lister")
		for i := 0; i < 3; i++ {
			createTestPost(authorID, "List Me")
		}

		posts, err := env.Service.ListPosts(env.ctx, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(posts).To(HaveLen(2))
		Expect(posts[0].ID).To(BeNumerically(">", posts[1].ID))
	})
})

var _ = Describe("Comments", func() {
	It("lists comments for a post oldest first", func() {
		authorID := createTestUser("commenter")
		postID := createTestPost(authorID, "Commented")

		first, err := env.Service.CreateComment(env.ctx, postID, "first", authorID)
		Expect(err).NotTo(HaveOccurred())
		second, err := env.Service.CreateComment(env.ctx, postID, "second", authorID)
		Expect(err).NotTo(HaveOccurred())

		comments, err := env.Service.ListCommentsForPost(env.ctx, postID)
		Expect(err).NotTo(HaveOccurred())
		Expect(comments).To(HaveLen(2))
		Expect(comments[0].ID).To(Equal(first))
		Expect(comments[1].ID).To(Equal(second))
	})

	It("updates and deletes a comment", func() {
		authorID := createTestUser("editor")
		postID := createTestPost(authorID, "Edited")

		commentID, err := env.Service.CreateComment(env.ctx, postID, "before", authorID)
		Expect(err).NotTo(HaveOccurred())

		Expect(env.Service.UpdateComment(env.ctx, commentID, "after")).To(Succeed())

		comment, err := env.Service.GetComment(env.ctx, commentID)
		Expect(err).NotTo(HaveOccurred())
		Expect(comment.Content).To(Equal("after"))

		Expect(env.Service.DeleteComment(env.ctx, commentID)).To(Succeed())
		_, err = env.Service.GetComment(env.ctx, commentID)
		Expect(err).To(MatchError(blog.ErrNotFound))
	})

	It("keeps comments when their post is deleted", func() {
		authorID := createTestUser("orphan")
		postID := createTestPost(authorID, "Doomed")

		commentID, err := env.Service.CreateComment(env.ctx, postID, "survivor", authorID)
		Expect(err).NotTo(HaveOccurred())

		Expect(env.Service.DeletePost(env.ctx, postID)).To(Succeed())

		comment, err := env.Service.GetComment(env.ctx, commentID)
		Expect(err).NotTo(HaveOccurred())
		Expect(comment.Content).To(Equal("survivor"))
	})
})

var _ = Describe("Likes", func() {
	It("counts likes for a post", func() {
		authorID := createTestUser("liked")
		fan1 := createTestUser("fan")
		fan2 := createTestUser("fan")
		postID := createTestPost(authorID, "Popular")

		_, err := env.Service.CreateLike(env.ctx, postID, fan1)
		Expect(err).NotTo(HaveOccurred())
		_, err = env.Service.CreateLike(env.ctx, postID, fan2)
		Expect(err).NotTo(HaveOccurred())

		count, err := env.Service.CountLikesForPost(env.ctx, postID)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(BeEquivalentTo(2))
	})

	It("allows the same user to like a post repeatedly", func() {
		authorID := createTestUser("repeat")
		postID := createTestPost(authorID, "Repeatable")

		for i := 0; i < 3; i++ {
			_, err := env.Service.CreateLike(env.ctx, postID, authorID)
			Expect(err).NotTo(HaveOccurred())
		}

		count, err := env.Service.CountLikesForPost(env.ctx, postID)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(BeEquivalentTo(3))
	})

	It("rejects likes on missing posts", func() {
		userID := createTestUser("ghost")
		_, err := env.Service.CreateLike(env.ctx, 99999999, userID)
		Expect(err).To(MatchError(blog.ErrNotFound))
	})
})
