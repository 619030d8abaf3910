package models

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type User struct {
	ID               string    `json:"id" gorm:"primaryKey;size:64"`
	FirstName        string    `json:"first_name"`
	MiddleName       string    `json:"middle_name,omitempty"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	AvatarURL        string    `json:"avatar_url,omitempty"`
	IsVerified       bool      `json:"is_verified" gorm:"default:false"`
	Rating           float64   `json:"rating"`
	TransactionCount int       `json:"transaction_count"`
	Password         string    `json:"-"`                                         // Store hashed password, ignore for JSON serialization
	FirebaseUID      string    `json:"firebase_uid,omitempty" gorm:"uniqueIndex"` // Link to Firebase User UID
	CreatedAt        time.Time `json:"created_at"`
}

// DisplayName joins the name parts, skipping empty segments.
func (u *User) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{u.FirstName, u.MiddleName, u.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// UserCompact is the minimal user payload embedded in other responses
type UserCompact struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	AvatarURL  string  `json:"avatar_url,omitempty"`
	IsVerified bool    `json:"is_verified"`
	Rating     float64 `json:"rating"`
}

// ToCompact converts a User to its compact representation
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:         u.ID,
		Name:       u.DisplayName(),
		AvatarURL:  u.AvatarURL,
		IsVerified: u.IsVerified,
		Rating:     u.Rating,
	}
}

type CreateUserRequest struct {
	FirstName   string `json:"first_name" validate:"required,min=1,max=50"`
	MiddleName  string `json:"middle_name" validate:"omitempty,max=50"`
	LastName    string `json:"last_name" validate:"required,min=1,max=50"`
	Email       string `json:"email" validate:"required,email"`
	FirebaseUID string `json:"firebase_uid" validate:"required"` // Firebase UID will be provided by the client after Firebase Auth
}

type CreateLocalUserRequest struct {
	FirstName  string `json:"first_name" validate:"required,min=1,max=50"`
	MiddleName string `json:"middle_name" validate:"omitempty,max=50"`
	LastName   string `json:"last_name" validate:"required,min=1,max=50"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
}

type UpdateUserRequest struct {
	FirstName  string `json:"first_name,omitempty" validate:"omitempty,min=1,max=50"`
	MiddleName string `json:"middle_name,omitempty" validate:"omitempty,max=50"`
	LastName   string `json:"last_name,omitempty" validate:"omitempty,min=1,max=50"`
	AvatarURL  string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
