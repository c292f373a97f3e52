package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is embedded in its post document.
type Comment struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Text     string             `bson:"comment" json:"comment"`
	PostedBy primitive.ObjectID `bson:"postedBy" json:"postedBy"`
}

// Post is the content document stored in the "posts" collection.
// Likes hold user ids with set semantics; comments are ordered.
type Post struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title     string               `bson:"title" json:"title"`
	Body      string               `bson:"body" json:"body"`
	Image     string               `bson:"image" json:"image"`
	PostedBy  primitive.ObjectID   `bson:"postedBy" json:"postedBy"`
	Likes     []primitive.ObjectID `bson:"likes" json:"likes"`
	Comments  []Comment            `bson:"comments" json:"comments"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// CommentView is a comment with its author resolved.
type CommentView struct {
	ID       primitive.ObjectID `json:"id"`
	Text     string             `json:"comment"`
	PostedBy UserRef            `json:"postedBy"`
}

// PostView is a post with owner and comment authors resolved to display refs.
type PostView struct {
	ID        primitive.ObjectID   `json:"id"`
	Title     string               `json:"title"`
	Body      string               `json:"body"`
	Image     string               `json:"image"`
	PostedBy  UserRef              `json:"postedBy"`
	Likes     []primitive.ObjectID `json:"likes"`
	Comments  []CommentView        `json:"comments"`
	CreatedAt time.Time            `json:"createdAt"`
}
