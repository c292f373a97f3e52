package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"social-service/internal/domain"
)

// PostRepo is the MongoDB implementation of PostRepository. Likes use
// $addToSet/$pull so repeated likes and unlikes stay idempotent at the
// storage layer, with no read-modify-write race.
type PostRepo struct {
	collection *mongo.Collection
}

func NewPostRepo(database *mongo.Database) *PostRepo {
	return &PostRepo{collection: database.Collection("posts")}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	now := time.Now().UTC()
	post.ID = primitive.NewObjectID()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, post)
	return err
}

func (r *PostRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Post, error) {
	var post domain.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepo) FindAll(ctx context.Context) ([]domain.Post, error) {
	return r.find(ctx, bson.M{})
}

func (r *PostRepo) FindByAuthor(ctx context.Context, userID primitive.ObjectID) ([]domain.Post, error) {
	return r.find(ctx, bson.M{"postedBy": userID})
}

func (r *PostRepo) find(ctx context.Context, filter bson.M) ([]domain.Post, error) {
	cursor, err := r.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var posts []domain.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepo) AddLike(ctx context.Context, postID, userID primitive.ObjectID) (*domain.Post, error) {
	return r.findOneAndUpdate(ctx, postID, bson.M{"$addToSet": bson.M{"likes": userID}})
}

func (r *PostRepo) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) (*domain.Post, error) {
	return r.findOneAndUpdate(ctx, postID, bson.M{"$pull": bson.M{"likes": userID}})
}

func (r *PostRepo) AddComment(ctx context.Context, postID primitive.ObjectID, comment domain.Comment) (*domain.Post, error) {
	return r.findOneAndUpdate(ctx, postID, bson.M{"$push": bson.M{"comments": comment}})
}

func (r *PostRepo) RemoveComment(ctx context.Context, postID, commentID primitive.ObjectID) (*domain.Post, error) {
	return r.findOneAndUpdate(ctx, postID, bson.M{"$pull": bson.M{"comments": bson.M{"_id": commentID}}})
}

func (r *PostRepo) Delete(ctx context.Context, postID primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": postID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostRepo) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*domain.Post, error) {
	update["$set"] = bson.M{"updatedAt": time.Now().UTC()}

	var post domain.Post
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}
