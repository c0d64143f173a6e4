package skill

import (
	"context"
	"time"
)

// Display buckets of the skills section.
const (
	CategoryProgramming = "programming"
	CategoryFrameworks  = "frameworks"
	CategoryTools       = "tools"
	CategorySoft        = "soft"
)

const (
	MinLevel = 0
	MaxLevel = 100
)

// Skill is a single rated skill. Category selects the display bucket,
// CategoryType is the finer label shown next to it.
type Skill struct {
	ID           string    `json:"id"`
	Category     string    `json:"category"`
	Name         string    `json:"name"`
	Level        int       `json:"level"`
	CategoryType string    `json:"categoryType"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Groups is the skills listing partitioned into the four known buckets.
type Groups struct {
	Programming []Skill `json:"programming"`
	Frameworks  []Skill `json:"frameworks"`
	Tools       []Skill `json:"tools"`
	Soft        []Skill `json:"soft"`
}

// Repository is the port for the skills collection.
type Repository interface {
	Create(ctx context.Context, s Skill) (Skill, error)
	CreateMany(ctx context.Context, skills []Skill) ([]Skill, error)
	// List returns every skill in insertion order.
	List(ctx context.Context) ([]Skill, error)
}
