package contact

import (
	"context"
	"time"
)

// Status tracks how far a message has been handled.
type Status string

const (
	StatusNew     Status = "new"
	StatusRead    Status = "read"
	StatusReplied Status = "replied"
)

// Message is a note left through the contact form.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository is the port for the contact collection.
type Repository interface {
	Create(ctx context.Context, m Message) (Message, error)
	List(ctx context.Context) ([]Message, error)
}
