package domain

import (
	"errors"
	"time"
)

// ServiceCategories is the fixed enumeration a provider may offer.
var ServiceCategories = map[string]struct{}{
	"transport":          {},
	"delivery":           {},
	"video_consultation": {},
	"home_services":      {},
	"real_estate":        {},
	"vehicles":           {},
	"ticketing":          {},
	"other":              {},
}

var ErrProviderExists = errors.New("service provider profile already exists")
var ErrProviderNotFound = errors.New("service provider profile not found")
var ErrProviderRoleRequired = errors.New("only service providers can access this resource")
var ErrProviderCreateNotAllowed = errors.New("only service providers can create provider profiles")
var ErrAdminRoleRequired = errors.New("admin access required")

// InvalidCategoriesError lists the submitted categories that are not part
// of the fixed enumeration.
type InvalidCategoriesError struct {
	Categories []string
}

func (e *InvalidCategoriesError) Error() string {
	msg := "invalid service categories:"
	for _, c := range e.Categories {
		msg += " " + c
	}
	return msg
}

// InvalidCategories returns the entries of categories outside the fixed
// enumeration, preserving submission order.
func InvalidCategories(categories []string) []string {
	var invalid []string
	for _, c := range categories {
		if _, ok := ServiceCategories[c]; !ok {
			invalid = append(invalid, c)
		}
	}
	return invalid
}

// ServiceProvider is the one-to-one business extension of a user whose
// role is service_provider.
type ServiceProvider struct {
	ID                 string    `json:"id" bson:"id"`
	UserID             string    `json:"user_id" bson:"user_id"`
	BusinessName       string    `json:"business_name" bson:"business_name"`
	BusinessLicense    string    `json:"business_license,omitempty" bson:"business_license,omitempty"`
	ServiceCategories  []string  `json:"service_categories" bson:"service_categories"`
	Description        string    `json:"description,omitempty" bson:"description,omitempty"`
	Rating             float64   `json:"rating" bson:"rating"`
	TotalRatings       int       `json:"total_ratings" bson:"total_ratings"`
	IsAvailable        bool      `json:"is_available" bson:"is_available"`
	VerificationStatus string    `json:"verification_status" bson:"verification_status"`
	CreatedAt          time.Time `json:"created_at" bson:"created_at"`
}
