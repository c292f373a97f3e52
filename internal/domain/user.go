package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultAvatar = "https://via.placeholder.com/150"

// User is the identity document stored in the "users" collection.
// The password hash never serializes to JSON.
type User struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name      string               `bson:"name" json:"name"`
	Email     string               `bson:"email" json:"email"`
	Password  string               `bson:"password" json:"-"`
	Avatar    string               `bson:"avatar" json:"avatar"`
	Bio       string               `bson:"bio,omitempty" json:"bio,omitempty"`
	Followers []primitive.ObjectID `bson:"followers" json:"followers"`
	Following []primitive.ObjectID `bson:"following" json:"following"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// UserRef is the display projection of a user used wherever a full
// document would leak too much (post owners, comment authors, edges).
type UserRef struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}

func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name}
}

// Profile is a user document with its social edges resolved to display refs.
type Profile struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Avatar    string             `json:"avatar"`
	Bio       string             `json:"bio,omitempty"`
	Followers []UserRef          `json:"followers"`
	Following []UserRef          `json:"following"`
	CreatedAt time.Time          `json:"createdAt"`
}

// ProfileUpdate carries the mutable profile fields. Nil means "leave as is";
// anything outside this set (email, password, edges) is not updatable here.
type ProfileUpdate struct {
	Name   *string
	Avatar *string
	Bio    *string
}

func (p ProfileUpdate) Empty() bool {
	return p.Name == nil && p.Avatar == nil && p.Bio == nil
}
