package project

import (
	"context"
	"time"
)

// Project is a showcased piece of work. Inactive projects are hidden from listings.
type Project struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Duration         string    `json:"duration"`
	Technologies     []string  `json:"technologies"`
	Features         []string  `json:"features"`
	Responsibilities []string  `json:"responsibilities"`
	LiveDemo         string    `json:"liveDemo"`
	GitHub           string    `json:"github"`
	Image            string    `json:"image"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Repository is the port for the projects collection.
type Repository interface {
	Create(ctx context.Context, p Project) (Project, error)
	CreateMany(ctx context.Context, projects []Project) ([]Project, error)
	// ListActive returns projects with IsActive set.
	ListActive(ctx context.Context) ([]Project, error)
	// GetByID fails with store.ErrInvalidID for a malformed id and store.ErrNotFound for an unknown one.
	GetByID(ctx context.Context, id string) (Project, error)
}
