// Package repository defines the persistence port shared by every storage
// backend and the adapters implementing it. The port is three keyed
// collections: users, expenses, conversations.
package repository

import (
	"context"
	"errors"

	"github.com/leon37/SavingsCoach/internal/model"
)

// ErrNotFound is returned by every adapter for a missing record.
var ErrNotFound = errors.New("record not found")

// ExpenseFilter narrows a listing. Date bounds are inclusive and compared
// lexicographically against the stored ISO string in all adapters, so the
// zero-padded YYYY-MM-DD caveat is uniform across drivers.
type ExpenseFilter struct {
	UserID    string
	Category  string
	StartDate string
	EndDate   string
	Limit     int
}

type UserRepo interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

type ExpenseRepo interface {
	Create(ctx context.Context, expense *model.Expense) error
	GetByID(ctx context.Context, id string) (*model.Expense, error)
	// List returns matches sorted by date descending.
	List(ctx context.Context, filter ExpenseFilter) ([]model.Expense, error)
	Delete(ctx context.Context, id string) error
}

type ConversationRepo interface {
	Create(ctx context.Context, conversation *model.Conversation) error
	GetByID(ctx context.Context, id string) (*model.Conversation, error)
	// Update replaces the stored record. Appends are read-then-write with no
	// optimistic lock; concurrent turns on one conversation are last-write-wins.
	Update(ctx context.Context, conversation *model.Conversation) error
}

// Store is the single persistence port the services depend on.
type Store interface {
	Users() UserRepo
	Expenses() ExpenseRepo
	Conversations() ConversationRepo
	Close(ctx context.Context) error
}
