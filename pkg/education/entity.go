package education

import (
	"context"
	"time"
)

// Education is one entry of the education timeline. Higher Order is shown first.
type Education struct {
	ID          string    `json:"id"`
	Degree      string    `json:"degree"`
	Institution string    `json:"institution"`
	Board       string    `json:"board"`
	Stream      string    `json:"stream"`
	Performance string    `json:"performance"`
	Year        string    `json:"year"`
	Description string    `json:"description"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Repository is the port for the education collection.
type Repository interface {
	Create(ctx context.Context, e Education) (Education, error)
	CreateMany(ctx context.Context, items []Education) ([]Education, error)
	List(ctx context.Context) ([]Education, error)
}
