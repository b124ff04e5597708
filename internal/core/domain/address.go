package domain

// Address is a mailing address owned by a user. At most one address per
// user carries IsDefault = true.
type Address struct {
	ID            string   `json:"id" bson:"id"`
	UserID        string   `json:"user_id" bson:"user_id"`
	Label         string   `json:"label" bson:"label"`
	StreetAddress string   `json:"street_address" bson:"street_address"`
	City          string   `json:"city" bson:"city"`
	State         string   `json:"state" bson:"state"`
	PostalCode    string   `json:"postal_code" bson:"postal_code"`
	Country       string   `json:"country" bson:"country"`
	Latitude      *float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
	IsDefault     bool     `json:"is_default" bson:"is_default"`
}
