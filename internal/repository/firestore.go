package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/leon37/SavingsCoach/internal/model"
)

// FirestoreStore implements Store over top-level Firestore collections.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Users() UserRepo {
	return &firestoreUserRepo{c: s.client.Collection("users")}
}

func (s *FirestoreStore) Expenses() ExpenseRepo {
	return &firestoreExpenseRepo{c: s.client.Collection("expenses")}
}

func (s *FirestoreStore) Conversations() ConversationRepo {
	return &firestoreConversationRepo{c: s.client.Collection("conversations")}
}

func (s *FirestoreStore) Close(context.Context) error {
	return s.client.Close()
}

func isFirestoreNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

type firestoreUserRepo struct {
	c *firestore.CollectionRef
}

func (r *firestoreUserRepo) Create(ctx context.Context, user *model.User) error {
	_, err := r.c.Doc(user.ID).Set(ctx, user)
	return err
}

func (r *firestoreUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	iter := r.c.Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *firestoreUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	doc, err := r.c.Doc(id).Get(ctx)
	if isFirestoreNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

type firestoreExpenseRepo struct {
	c *firestore.CollectionRef
}

func (r *firestoreExpenseRepo) Create(ctx context.Context, expense *model.Expense) error {
	_, err := r.c.Doc(expense.ID).Set(ctx, expense)
	return err
}

func (r *firestoreExpenseRepo) GetByID(ctx context.Context, id string) (*model.Expense, error) {
	doc, err := r.c.Doc(id).Get(ctx)
	if isFirestoreNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var expense model.Expense
	if err := doc.DataTo(&expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *firestoreExpenseRepo) List(ctx context.Context, filter ExpenseFilter) ([]model.Expense, error) {
	query := r.c.Query.Where("userId", "==", filter.UserID)
	if filter.Category != "" {
		query = query.Where("category", "==", filter.Category)
	}
	// String range comparisons are lexicographic, like the other adapters.
	if filter.StartDate != "" {
		query = query.Where("date", ">=", filter.StartDate)
	}
	if filter.EndDate != "" {
		query = query.Where("date", "<=", filter.EndDate)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	expenses := make([]model.Expense, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var expense model.Expense
		if err := doc.DataTo(&expense); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	// Sorting in memory avoids the composite-index requirement that
	// OrderBy-after-inequality would impose on every deployment.
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date > expenses[j].Date
	})
	if filter.Limit > 0 && len(expenses) > filter.Limit {
		expenses = expenses[:filter.Limit]
	}
	return expenses, nil
}

func (r *firestoreExpenseRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.c.Doc(id).Get(ctx); err != nil {
		if isFirestoreNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	_, err := r.c.Doc(id).Delete(ctx)
	return err
}

type firestoreConversationRepo struct {
	c *firestore.CollectionRef
}

func (r *firestoreConversationRepo) Create(ctx context.Context, conversation *model.Conversation) error {
	_, err := r.c.Doc(conversation.ID).Set(ctx, conversation)
	return err
}

func (r *firestoreConversationRepo) GetByID(ctx context.Context, id string) (*model.Conversation, error) {
	doc, err := r.c.Doc(id).Get(ctx)
	if isFirestoreNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var conversation model.Conversation
	if err := doc.DataTo(&conversation); err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *firestoreConversationRepo) Update(ctx context.Context, conversation *model.Conversation) error {
	if _, err := r.c.Doc(conversation.ID).Get(ctx); err != nil {
		if isFirestoreNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	_, err := r.c.Doc(conversation.ID).Set(ctx, conversation)
	return err
}
