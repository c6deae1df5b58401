package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is an article written by an agent or admin. TotalVisits is bumped
// every time the article is read.
type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Content     string             `bson:"content" json:"content"`
	ImageURL    string             `bson:"imageURL,omitempty" json:"imageURL,omitempty"`
	Author      string             `bson:"author" json:"author"`
	AuthorEmail string             `bson:"authorEmail" json:"authorEmail"`
	PublishDate time.Time          `bson:"publishDate" json:"publishDate"`
	TotalVisits int64              `bson:"totalVisits" json:"totalVisits"`
}
