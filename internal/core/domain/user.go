package domain

// User is reference data for the booking engine: it only ever resolves users
// by id. Email is unique across the directory.
type User struct {
	ID    string `json:"id" bson:"_id,omitempty"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}
