package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"social-service/internal/domain"
	"social-service/internal/repository"
)

// UserUsecase covers profiles, the user directory and the follow graph.
type UserUsecase struct {
	users repository.UserRepository
	posts repository.PostRepository
}

func NewUserUsecase(users repository.UserRepository, posts repository.PostRepository) *UserUsecase {
	return &UserUsecase{users: users, posts: posts}
}

// Profile returns a user with followers/following resolved to display refs,
// together with everything they have posted, newest first.
func (uc *UserUsecase) Profile(ctx context.Context, id primitive.ObjectID) (*domain.Profile, []domain.PostView, error) {
	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	ids := make(map[primitive.ObjectID]struct{}, len(user.Followers)+len(user.Following))
	for _, f := range user.Followers {
		ids[f] = struct{}{}
	}
	for _, f := range user.Following {
		ids[f] = struct{}{}
	}
	refs, err := resolveRefs(ctx, uc.users, ids)
	if err != nil {
		return nil, nil, err
	}

	profile := &domain.Profile{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.Avatar,
		Bio:       user.Bio,
		Followers: edgeRefs(user.Followers, refs),
		Following: edgeRefs(user.Following, refs),
		CreatedAt: user.CreatedAt,
	}

	posts, err := uc.posts.FindByAuthor(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	views, err := postViews(ctx, uc.users, posts)
	if err != nil {
		return nil, nil, err
	}
	return profile, views, nil
}

func edgeRefs(ids []primitive.ObjectID, refs map[primitive.ObjectID]domain.UserRef) []domain.UserRef {
	out := make([]domain.UserRef, 0, len(ids))
	for _, id := range ids {
		out = append(out, refs[id])
	}
	return out
}

func (uc *UserUsecase) List(ctx context.Context) ([]domain.User, error) {
	users, err := uc.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// Follow adds the edge on both documents. Following yourself is rejected,
// and following someone twice leaves a single edge.
func (uc *UserUsecase) Follow(ctx context.Context, actorID, targetID primitive.ObjectID) (*domain.User, *domain.User, error) {
	if actorID == targetID {
		return nil, nil, domain.ErrSelfFollow
	}
	return uc.users.Follow(ctx, actorID, targetID)
}

// Unfollow removes the edge on both documents. Removing an absent edge is
// not an error.
func (uc *UserUsecase) Unfollow(ctx context.Context, actorID, targetID primitive.ObjectID) (*domain.User, *domain.User, error) {
	if actorID == targetID {
		return nil, nil, domain.ErrSelfFollow
	}
	return uc.users.Unfollow(ctx, actorID, targetID)
}

// UpdateProfile applies the allow-listed fields only. Client payloads never
// reach the document as-is, so email, password and the edge lists cannot be
// overwritten through this path.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd domain.ProfileUpdate) (*domain.User, error) {
	return uc.users.UpdateProfile(ctx, id, upd)
}
