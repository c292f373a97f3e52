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

func seedUser(t *testing.T, users *testutil.UserStore, name, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		Name:      name,
		Email:     email,
		Password:  "hash",
		Avatar:    domain.DefaultAvatar,
		Followers: []primitive.ObjectID{},
		Following: []primitive.ObjectID{},
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func newUserUsecase() (*UserUsecase, *testutil.UserStore, *testutil.PostStore) {
	users := testutil.NewUserStore()
	posts := testutil.NewPostStore()
	return NewUserUsecase(users, posts), users, posts
}

func TestFollowUpdatesBothSides(t *testing.T) {
	uc, users, _ := newUserUsecase()
	ctx := context.Background()

	alice := seedUser(t, users, "alice", "alice@example.com")
	bob := seedUser(t, users, "bob", "bob@example.com")

	target, me, err := uc.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	assert.Contains(t, target.Followers, alice.ID)
	assert.Contains(t, me.Following, bob.ID)

	// Both documents, not just the returned copies.
	storedBob, err := users.FindByID(ctx, bob.ID)
	require.NoError(t, err)
	storedAlice, err := users.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Contains(t, storedBob.Followers, alice.ID)
	assert.Contains(t, storedAlice.Following, bob.ID)
}

func TestFollowIsIdempotent(t *testing.T) {
	uc, users, _ := newUserUsecase()
	ctx := context.Background()

	alice := seedUser(t, users, "alice", "alice@example.com")
	bob := seedUser(t, users, "bob", "bob@example.com")

	_, _, err := uc.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	target, me, err := uc.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	assert.Len(t, target.Followers, 1, "repeated follow must not duplicate the edge")
	assert.Len(t, me.Following, 1)
}

func TestFollowSelf(t *testing.T) {
	uc, users, _ := newUserUsecase()

	alice := seedUser(t, users, "alice", "alice@example.com")

	_, _, err := uc.Follow(context.Background(), alice.ID, alice.ID)
	assert.ErrorIs(t, err, domain.ErrSelfFollow)
}

func TestFollowUnknownTarget(t *testing.T) {
	uc, users, _ := newUserUsecase()

	alice := seedUser(t, users, "alice", "alice@example.com")

	_, _, err := uc.Follow(context.Background(), alice.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUnfollowRemovesBothSides(t *testing.T) {
	uc, users, _ := newUserUsecase()
	ctx := context.Background()

	alice := seedUser(t, users, "alice", "alice@example.com")
	bob := seedUser(t, users, "bob", "bob@example.com")

	_, _, err := uc.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	target, me, err := uc.Unfollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.NotContains(t, target.Followers, alice.ID)
	assert.NotContains(t, me.Following, bob.ID)

	// Unfollowing an already-absent edge is a quiet success.
	target, me, err = uc.Unfollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, target.Followers)
	assert.Empty(t, me.Following)
}

func TestProfileResolvesEdgesAndPosts(t *testing.T) {
	uc, users, posts := newUserUsecase()
	ctx := context.Background()

	alice := seedUser(t, users, "alice", "alice@example.com")
	bob := seedUser(t, users, "bob", "bob@example.com")

	_, _, err := uc.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	require.NoError(t, posts.Create(ctx, &domain.Post{
		Title:    "hello",
		Body:     "first",
		Image:    "no photo",
		PostedBy: bob.ID,
	}))

	profile, views, err := uc.Profile(ctx, bob.ID)
	require.NoError(t, err)

	require.Len(t, profile.Followers, 1)
	assert.Equal(t, "alice", profile.Followers[0].Name)
	require.Len(t, views, 1)
	assert.Equal(t, "bob", views[0].PostedBy.Name)
}

func TestProfileNotFound(t *testing.T) {
	uc, _, _ := newUserUsecase()

	_, _, err := uc.Profile(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProfileAllowList(t *testing.T) {
	uc, users, _ := newUserUsecase()
	ctx := context.Background()

	alice := seedUser(t, users, "alice", "alice@example.com")

	name := "alice2"
	bio := "hi there"
	updated, err := uc.UpdateProfile(ctx, alice.ID, domain.ProfileUpdate{Name: &name, Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, "alice2", updated.Name)
	assert.Equal(t, "hi there", updated.Bio)
	assert.Equal(t, alice.Email, updated.Email, "email is not updatable here")
	assert.Equal(t, alice.Password, updated.Password, "password is not updatable here")
	assert.Equal(t, domain.DefaultAvatar, updated.Avatar, "omitted fields stay untouched")
}

func TestListUsers(t *testing.T) {
	uc, users, _ := newUserUsecase()

	seedUser(t, users, "alice", "alice@example.com")
	seedUser(t, users, "bob", "bob@example.com")

	all, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
