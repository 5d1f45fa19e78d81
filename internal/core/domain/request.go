package domain

import "time"

// ItemRequest is a user's ask for an item nobody has listed yet. Items may
// later be created in answer to it via Item.RequestID.
type ItemRequest struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Description string    `json:"description" bson:"description"`
	RequesterID string    `json:"requester_id" bson:"requester_id"`
	Created     time.Time `json:"created" bson:"created"`
}
