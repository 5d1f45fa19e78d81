package domain

import "time"

// Comment is feedback left on an item by a user who actually borrowed it.
type Comment struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Text       string    `json:"text" bson:"text"`
	ItemID     string    `json:"item_id" bson:"item_id"`
	AuthorID   string    `json:"author_id" bson:"author_id"`
	AuthorName string    `json:"author_name" bson:"author_name"`
	Created    time.Time `json:"created" bson:"created"`
}
