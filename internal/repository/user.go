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

// UserRepo is the MongoDB implementation of UserRepository. It keeps a
// handle on the client because the paired follow writes run in a session.
type UserRepo struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func NewUserRepo(client *mongo.Client, database *mongo.Database) *UserRepo {
	return &UserRepo{
		client:     client,
		collection: database.Collection("users"),
	}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *UserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var users []domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var users []domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd domain.ProfileUpdate) (*domain.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Avatar != nil {
		set["avatar"] = *upd.Avatar
	}
	if upd.Bio != nil {
		set["bio"] = *upd.Bio
	}
	return r.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}

func (r *UserRepo) Follow(ctx context.Context, actorID, targetID primitive.ObjectID) (*domain.User, *domain.User, error) {
	return r.pairedUpdate(ctx, actorID, targetID,
		bson.M{"$addToSet": bson.M{"followers": actorID}},
		bson.M{"$addToSet": bson.M{"following": targetID}},
	)
}

func (r *UserRepo) Unfollow(ctx context.Context, actorID, targetID primitive.ObjectID) (*domain.User, *domain.User, error) {
	return r.pairedUpdate(ctx, actorID, targetID,
		bson.M{"$pull": bson.M{"followers": actorID}},
		bson.M{"$pull": bson.M{"following": targetID}},
	)
}

// pairedUpdate applies targetUpdate to the target document and actorUpdate
// to the actor document inside a single transaction, so a failure on either
// side leaves no one-directional edge behind. Requires the deployment to be
// a replica set, which Atlas and any sane production topology is.
func (r *UserRepo) pairedUpdate(ctx context.Context, actorID, targetID primitive.ObjectID, targetUpdate, actorUpdate bson.M) (*domain.User, *domain.User, error) {
	session, err := r.client.StartSession()
	if err != nil {
		return nil, nil, err
	}
	defer session.EndSession(ctx)

	var target, actor *domain.User
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var err error
		if target, err = r.findOneAndUpdate(sc, targetID, targetUpdate); err != nil {
			return nil, err
		}
		if actor, err = r.findOneAndUpdate(sc, actorID, actorUpdate); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return target, actor, nil
}

func (r *UserRepo) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
