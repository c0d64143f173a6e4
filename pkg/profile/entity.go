package profile

import (
	"context"
	"time"
)

// PersonalInfo is the owner's public profile block.
type PersonalInfo struct {
	Name      string   `json:"name" bson:"name" validate:"required,notblank"`
	Title     string   `json:"title" bson:"title" validate:"required,notblank"`
	Tagline   string   `json:"tagline" bson:"tagline" validate:"required,notblank"`
	Email     string   `json:"email" bson:"email" validate:"required,email"`
	Phone     string   `json:"phone" bson:"phone" validate:"required,notblank"`
	LinkedIn  string   `json:"linkedin" bson:"linkedin" validate:"required,notblank"`
	GitHub    string   `json:"github" bson:"github" validate:"required,notblank"`
	Location  string   `json:"location" bson:"location" validate:"required,notblank"`
	Bio       string   `json:"bio" bson:"bio" validate:"required,notblank"`
	Interests []string `json:"interests" bson:"interests" validate:"required"`
}

// Portfolio is the singleton document describing the site owner.
type Portfolio struct {
	ID           string       `json:"id"`
	PersonalInfo PersonalInfo `json:"personalInfo" validate:"required"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Repository is the port for the portfolio collection.
type Repository interface {
	// Get returns the only portfolio document, or nil without error when none exists.
	Get(ctx context.Context) (*Portfolio, error)
	// Create stores p and returns it with id and timestamps assigned.
	// store.ErrAlreadyExists is returned when a portfolio is already present.
	Create(ctx context.Context, p Portfolio) (Portfolio, error)
}
