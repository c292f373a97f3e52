package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"social-service/internal/domain"
)

// UserRepository persists identity documents and their social edges.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, upd domain.ProfileUpdate) (*domain.User, error)

	// Follow adds actor to target's followers and target to actor's
	// following as one transaction. Both writes use set semantics, so a
	// repeated follow is a no-op rather than a duplicate edge. Returns the
	// updated target and actor documents, in that order.
	Follow(ctx context.Context, actorID, targetID primitive.ObjectID) (*domain.User, *domain.User, error)

	// Unfollow removes the edge from both sides as one transaction and is
	// a no-op when the edge is already absent.
	Unfollow(ctx context.Context, actorID, targetID primitive.ObjectID) (*domain.User, *domain.User, error)
}

// PostRepository persists content documents with their embedded likes and
// comments. Mutations return the post as it stands after the update.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Post, error)
	FindAll(ctx context.Context) ([]domain.Post, error)
	FindByAuthor(ctx context.Context, userID primitive.ObjectID) ([]domain.Post, error)
	AddLike(ctx context.Context, postID, userID primitive.ObjectID) (*domain.Post, error)
	RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) (*domain.Post, error)
	AddComment(ctx context.Context, postID primitive.ObjectID, comment domain.Comment) (*domain.Post, error)
	RemoveComment(ctx context.Context, postID, commentID primitive.ObjectID) (*domain.Post, error)
	Delete(ctx context.Context, postID primitive.ObjectID) error
}
