package domain

// Item is something a user has listed for lending. The booking engine reads
// Available and OwnerID and never mutates items; availability is managed by
// the owner through the item catalog.
type Item struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Available   bool   `json:"available" bson:"available"`
	OwnerID     string `json:"owner_id" bson:"owner_id"`
	// RequestID links the item to the item request it answers, if any.
	RequestID string `json:"request_id,omitempty" bson:"request_id,omitempty"`
}
