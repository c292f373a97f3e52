package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"social-service/internal/domain"
	"social-service/internal/testutil"
)

func newPostUsecase() (*PostUsecase, *testutil.UserStore, *testutil.PostStore) {
	users := testutil.NewUserStore()
	posts := testutil.NewPostStore()
	return NewPostUsecase(posts, users), users, posts
}

func TestCreatePost(t *testing.T) {
	uc, users, _ := newPostUsecase()
	ctx := context.Background()

	alice := seedUser(t, users, "alice", "alice@example.com")

	post, err := uc.Create(ctx, alice.ID, "title", "body", "http://img.example/1.png")
	require.NoError(t, err)

	assert.False(t, post.ID.IsZero())
	assert.Equal(t, alice.ID, post.PostedBy)
	assert.Empty(t, post.Likes)
	assert.Empty(t, post.Comments)
}

func TestCreatePostMissingFields(t *testing.T) {
	uc, users, _ := newPostUsecase()
	ctx := context.Background()

	alice := seedUser(t, users, "alice", "alice@example.com")

	_, err := uc.Create(ctx, alice.ID, "", "body", "img")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.Create(ctx, alice.ID, "title", "", "img")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.Create(ctx, alice.ID, "title", "body", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	all, err := uc.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "a rejected post must not be stored")
}

func TestListAllNewestFirst(t *testing.T) {
	uc, users, _ := newPostUsecase()
	ctx := context.Background()

	alice := seedUser(t, users, "alice", "alice@example.com")

	_, err := uc.Create(ctx, alice.ID, "first", "body", "img")
	require.NoError(t, err)
	_, err = uc.Create(ctx, alice.ID, "second", "body", "img")
	require.NoError(t, err)

	views, err := uc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "second", views[0].Title)
	assert.Equal(t, "first", views[1].Title)
	assert.Equal(t, "alice", views[0].PostedBy.Name)
}

func TestListByAuthor(t *testing.T) {
	uc, users, _ := newPostUsecase()
	ctx := context.Background()

	alice := seedUser(t, users, "alice", "alice@example.com")
	bob := seedUser(t, users, "bob", "bob@example.com")

	_, err := uc.Create(ctx, alice.ID, "mine", "body", "img")
	require.NoError(t, err)
	_, err = uc.Create(ctx, bob.ID, "theirs", "body", "img")
	require.NoError(t, err)

	views, err := uc.ListByAuthor(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "mine", views[0].Title)
}

func TestLikeIsIdempotent(t *testing.T) {
	uc, users, _ := newPostUsecase()
	ctx := context.Background()

	alice := seedUser(t, users, "alice", "alice@example.com")
	post, err := uc.Create(ctx, alice.ID, "title", "body", "img")
	require.NoError(t, err)

	liked, err := uc.Like(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{alice.ID}, liked.Likes)

	liked, err = uc.Like(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.Len(t, liked.Likes, 1, "liking twice must leave a single entry")
}

func TestUnlike(t *testing.T) {
	uc, users, _ := newPostUsecase()
	ctx := context.Background()

	alice := seedUser(t, users, "alice", "alice@example.com")
	post, err := uc.Create(ctx, alice.ID, "title", "body", "img")
	require.NoError(t, err)

	_, err = uc.Like(ctx, alice.ID, post.ID)
	require.NoError(t, err)

	unliked, err := uc.Unlike(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.Empty(t, unliked.Likes)

	// Unliking again is a quiet success.
	unliked, err = uc.Unlike(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.Empty(t, unliked.Likes)
}

func TestLikeUnknownPost(t *testing.T) {
	uc, users, _ := newPostUsecase()

	alice := seedUser(t, users, "alice", "alice@example.com")

	_, err := uc.Like(context.Background(), alice.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCommentResolvesAuthors(t *testing.T) {
	uc, users, _ := newPostUsecase()
	ctx := context.Background()

	alice := seedUser(t, users, "alice", "alice@example.com")
	bob := seedUser(t, users, "bob", "bob@example.com")
	post, err := uc.Create(ctx, alice.ID, "title", "body", "img")
	require.NoError(t, err)

	view, err := uc.Comment(ctx, bob.ID, post.ID, "nice one")
	require.NoError(t, err)

	require.Len(t, view.Comments, 1)
	assert.Equal(t, "nice one", view.Comments[0].Text)
	assert.Equal(t, "bob", view.Comments[0].PostedBy.Name)
	assert.Equal(t, "alice", view.PostedBy.Name)
	assert.False(t, view.Comments[0].ID.IsZero())
}

func TestCommentEmptyText(t *testing.T) {
	uc, users, _ := newPostUsecase()
	ctx := context.Background()

	alice := seedUser(t, users, "alice", "alice@example.com")
	post, err := uc.Create(ctx, alice.ID, "title", "body", "img")
	require.NoError(t, err)

	_, err = uc.Comment(ctx, alice.ID, post.ID, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeleteCommentPermissions(t *testing.T) {
	uc, users, _ := newPostUsecase()
	ctx := context.Background()

	owner := seedUser(t, users, "owner", "owner@example.com")
	author := seedUser(t, users, "author", "author@example.com")
	stranger := seedUser(t, users, "stranger", "stranger@example.com")

	post, err := uc.Create(ctx, owner.ID, "title", "body", "img")
	require.NoError(t, err)

	view, err := uc.Comment(ctx, author.ID, post.ID, "first")
	require.NoError(t, err)
	commentID := view.Comments[0].ID

	// A bystander may not delete someone else's comment.
	_, err = uc.DeleteComment(ctx, stranger.ID, post.ID, commentID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// The comment author may.
	updated, err := uc.DeleteComment(ctx, author.ID, post.ID, commentID)
	require.NoError(t, err)
	assert.Empty(t, updated.Comments)

	// The post owner may as well.
	view, err = uc.Comment(ctx, author.ID, post.ID, "second")
	require.NoError(t, err)
	updated, err = uc.DeleteComment(ctx, owner.ID, post.ID, view.Comments[0].ID)
	require.NoError(t, err)
	assert.Empty(t, updated.Comments)
}

func TestDeleteCommentNotFound(t *testing.T) {
	uc, users, _ := newPostUsecase()
	ctx := context.Background()

	alice := seedUser(t, users, "alice", "alice@example.com")
	post, err := uc.Create(ctx, alice.ID, "title", "body", "img")
	require.NoError(t, err)

	_, err = uc.DeleteComment(ctx, alice.ID, post.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeletePostOwnerOnly(t *testing.T) {
	uc, users, posts := newPostUsecase()
	ctx := context.Background()

	owner := seedUser(t, users, "owner", "owner@example.com")
	stranger := seedUser(t, users, "stranger", "stranger@example.com")

	post, err := uc.Create(ctx, owner.ID, "title", "body", "img")
	require.NoError(t, err)

	err = uc.Delete(ctx, stranger.ID, post.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// The refusal must leave the post untouched.
	stored, err := posts.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, stored.ID)

	require.NoError(t, uc.Delete(ctx, owner.ID, post.ID))
	_, err = posts.FindByID(ctx, post.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeletePostNotFound(t *testing.T) {
	uc, users, _ := newPostUsecase()

	alice := seedUser(t, users, "alice", "alice@example.com")

	err := uc.Delete(context.Background(), alice.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
