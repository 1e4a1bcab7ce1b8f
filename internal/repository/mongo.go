package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/leon37/SavingsCoach/internal/model"
)

// MongoStore implements Store over three collections of one database.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

// EnsureIndexes creates the unique email index and the query indexes the
// listing paths rely on. Safe to call on every startup.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = s.db.Collection("expenses").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "category", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = s.db.Collection("conversations").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "last_updated", Value: -1}},
	})
	return err
}

func (s *MongoStore) Users() UserRepo                 { return &mongoUserRepo{c: s.db.Collection("users")} }
func (s *MongoStore) Expenses() ExpenseRepo           { return &mongoExpenseRepo{c: s.db.Collection("expenses")} }
func (s *MongoStore) Conversations() ConversationRepo { return &mongoConversationRepo{c: s.db.Collection("conversations")} }

func (s *MongoStore) Close(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}

type mongoUserRepo struct {
	c *mongo.Collection
}

func (r *mongoUserRepo) Create(ctx context.Context, user *model.User) error {
	_, err := r.c.InsertOne(ctx, user)
	return err
}

func (r *mongoUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.c.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type mongoExpenseRepo struct {
	c *mongo.Collection
}

func (r *mongoExpenseRepo) Create(ctx context.Context, expense *model.Expense) error {
	_, err := r.c.InsertOne(ctx, expense)
	return err
}

func (r *mongoExpenseRepo) GetByID(ctx context.Context, id string) (*model.Expense, error) {
	var expense model.Expense
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&expense)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *mongoExpenseRepo) List(ctx context.Context, filter ExpenseFilter) ([]model.Expense, error) {
	query := bson.M{"user_id": filter.UserID}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	// $gte/$lte on strings is lexicographic, matching the other adapters.
	if filter.StartDate != "" || filter.EndDate != "" {
		dateRange := bson.M{}
		if filter.StartDate != "" {
			dateRange["$gte"] = filter.StartDate
		}
		if filter.EndDate != "" {
			dateRange["$lte"] = filter.EndDate
		}
		query["date"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	expenses := make([]model.Expense, 0)
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *mongoExpenseRepo) Delete(ctx context.Context, id string) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type mongoConversationRepo struct {
	c *mongo.Collection
}

func (r *mongoConversationRepo) Create(ctx context.Context, conversation *model.Conversation) error {
	_, err := r.c.InsertOne(ctx, conversation)
	return err
}

func (r *mongoConversationRepo) GetByID(ctx context.Context, id string) (*model.Conversation, error) {
	var conversation model.Conversation
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&conversation)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *mongoConversationRepo) Update(ctx context.Context, conversation *model.Conversation) error {
	res, err := r.c.ReplaceOne(ctx, bson.M{"_id": conversation.ID}, conversation)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
