package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/leon37/SavingsCoach/internal/model"
)

// MemoryStore keeps everything in mutex-guarded maps. It backs the tests and
// the default local configuration; no durability.
type MemoryStore struct {
	mu            sync.RWMutex
	users         map[string]model.User
	expenses      map[string]model.Expense
	conversations map[string]model.Conversation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[string]model.User),
		expenses:      make(map[string]model.Expense),
		conversations: make(map[string]model.Conversation),
	}
}

func (s *MemoryStore) Users() UserRepo                 { return (*memoryUserRepo)(s) }
func (s *MemoryStore) Expenses() ExpenseRepo           { return (*memoryExpenseRepo)(s) }
func (s *MemoryStore) Conversations() ConversationRepo { return (*memoryConversationRepo)(s) }
func (s *MemoryStore) Close(context.Context) error     { return nil }

type memoryUserRepo MemoryStore

func (r *memoryUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := u
	return &copied, nil
}

type memoryExpenseRepo MemoryStore

func (r *memoryExpenseRepo) Create(_ context.Context, expense *model.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expenses[expense.ID] = *expense
	return nil
}

func (r *memoryExpenseRepo) GetByID(_ context.Context, id string) (*model.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.expenses[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := e
	return &copied, nil
}

func (r *memoryExpenseRepo) List(_ context.Context, filter ExpenseFilter) ([]model.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]model.Expense, 0)
	for _, e := range r.expenses {
		if e.UserID != filter.UserID {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if filter.StartDate != "" && strings.Compare(e.Date, filter.StartDate) < 0 {
			continue
		}
		if filter.EndDate != "" && strings.Compare(e.Date, filter.EndDate) > 0 {
			continue
		}
		matches = append(matches, e)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date > matches[j].Date
	})

	if filter.Limit > 0 && len(matches) > filter.Limit {
		matches = matches[:filter.Limit]
	}
	return matches, nil
}

func (r *memoryExpenseRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.expenses[id]; !ok {
		return ErrNotFound
	}
	delete(r.expenses, id)
	return nil
}

type memoryConversationRepo MemoryStore

func (r *memoryConversationRepo) Create(_ context.Context, conversation *model.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conversations[conversation.ID] = cloneConversation(conversation)
	return nil
}

func (r *memoryConversationRepo) GetByID(_ context.Context, id string) (*model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.conversations[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := cloneConversation(&c)
	return &copied, nil
}

func (r *memoryConversationRepo) Update(_ context.Context, conversation *model.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.conversations[conversation.ID]; !ok {
		return ErrNotFound
	}
	r.conversations[conversation.ID] = cloneConversation(conversation)
	return nil
}

func cloneConversation(c *model.Conversation) model.Conversation {
	copied := *c
	copied.Messages = append([]model.Message(nil), c.Messages...)
	return copied
}
