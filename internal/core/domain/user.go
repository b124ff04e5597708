package domain

import (
	"errors"
	"regexp"
	"time"
)

const (
	RoleCustomer        = "customer"
	RoleServiceProvider = "service_provider"
	RoleAdmin           = "admin"
)

// KYC verification states of a user.
const (
	KYCPending  = "pending"
	KYCVerified = "verified"
	KYCRejected = "rejected"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrPhoneTaken = errors.New("phone number already registered")
var ErrInvalidPhone = errors.New("invalid phone number format")
var ErrInvalidCredentials = errors.New("incorrect email or password")
var ErrInactiveUser = errors.New("inactive user")
var ErrInvalidToken = errors.New("could not validate credentials")
var ErrTokenUserNotFound = errors.New("token user not found")
var ErrTooManyAttempts = errors.New("too many login attempts")

var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// ValidRole reports whether role is one of the three supported roles.
func ValidRole(role string) bool {
	return role == RoleCustomer || role == RoleServiceProvider || role == RoleAdmin
}

// ValidPhone reports whether phone matches the accepted E.164-ish pattern.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// User models an account on the platform. HashedPassword is stored but
// never serialized to callers.
type User struct {
	ID             string         `json:"id" bson:"id"`
	Email          string         `json:"email" bson:"email"`
	Phone          string         `json:"phone" bson:"phone"`
	FirstName      string         `json:"first_name" bson:"first_name"`
	LastName       string         `json:"last_name" bson:"last_name"`
	Role           string         `json:"role" bson:"role"`
	IsActive       bool           `json:"is_active" bson:"is_active"`
	IsVerified     bool           `json:"is_verified" bson:"is_verified"`
	KYCStatus      string         `json:"kyc_status" bson:"kyc_status"`
	ProfilePicture string         `json:"profile_picture,omitempty" bson:"profile_picture,omitempty"`
	Address        map[string]any `json:"address,omitempty" bson:"address,omitempty"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" bson:"updated_at"`
	HashedPassword string         `json:"-" bson:"hashed_password"`
}

// UserUpdate carries the mutable profile fields. Nil pointers mean
// "leave unchanged"; only non-nil fields are applied.
type UserUpdate struct {
	FirstName      *string         `json:"first_name"`
	LastName       *string         `json:"last_name"`
	Phone          *string         `json:"phone"`
	ProfilePicture *string         `json:"profile_picture"`
	Address        *map[string]any `json:"address"`
}
