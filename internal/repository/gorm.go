package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/leon37/SavingsCoach/internal/model"
)

// GormStore implements Store over a relational database. Users and expenses
// map straight onto tables; conversation transcripts land in a JSON column.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the three tables and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&model.User{}, &model.Expense{}, &conversationRow{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Users() UserRepo                 { return &gormUserRepo{db: s.db} }
func (s *GormStore) Expenses() ExpenseRepo           { return &gormExpenseRepo{db: s.db} }
func (s *GormStore) Conversations() ConversationRepo { return &gormConversationRepo{db: s.db} }

func (s *GormStore) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func mapGormErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

type gormUserRepo struct {
	db *gorm.DB
}

func (r *gormUserRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *gormUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, mapGormErr(err)
	}
	return &user, nil
}

func (r *gormUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, mapGormErr(err)
	}
	return &user, nil
}

type gormExpenseRepo struct {
	db *gorm.DB
}

func (r *gormExpenseRepo) Create(ctx context.Context, expense *model.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *gormExpenseRepo) GetByID(ctx context.Context, id string) (*model.Expense, error) {
	var expense model.Expense
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&expense).Error
	if err != nil {
		return nil, mapGormErr(err)
	}
	return &expense, nil
}

func (r *gormExpenseRepo) List(ctx context.Context, filter ExpenseFilter) ([]model.Expense, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	// Varchar comparison is lexicographic, like the other adapters.
	if filter.StartDate != "" {
		q = q.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		q = q.Where("date <= ?", filter.EndDate)
	}
	q = q.Order("date DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	expenses := make([]model.Expense, 0)
	if err := q.Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *gormExpenseRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Expense{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// conversationRow is the relational shape of a conversation; the message
// transcript rides along as serialized JSON.
type conversationRow struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	UserID      string    `gorm:"type:varchar(36);index"`
	Messages    string    `gorm:"type:json"`
	LastUpdated time.Time `gorm:"index"`
	Intent      string    `gorm:"type:varchar(32)"`
}

func (conversationRow) TableName() string {
	return "conversations"
}

func toConversationRow(c *model.Conversation) (*conversationRow, error) {
	raw, err := json.Marshal(c.Messages)
	if err != nil {
		return nil, err
	}
	return &conversationRow{
		ID:          c.ID,
		UserID:      c.UserID,
		Messages:    string(raw),
		LastUpdated: c.LastUpdated,
		Intent:      c.Intent,
	}, nil
}

func (row *conversationRow) toModel() (*model.Conversation, error) {
	var messages []model.Message
	if row.Messages != "" {
		if err := json.Unmarshal([]byte(row.Messages), &messages); err != nil {
			return nil, err
		}
	}
	return &model.Conversation{
		ID:          row.ID,
		UserID:      row.UserID,
		Messages:    messages,
		LastUpdated: row.LastUpdated,
		Intent:      row.Intent,
	}, nil
}

type gormConversationRepo struct {
	db *gorm.DB
}

func (r *gormConversationRepo) Create(ctx context.Context, conversation *model.Conversation) error {
	row, err := toConversationRow(conversation)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *gormConversationRepo) GetByID(ctx context.Context, id string) (*model.Conversation, error) {
	var row conversationRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		return nil, mapGormErr(err)
	}
	return row.toModel()
}

func (r *gormConversationRepo) Update(ctx context.Context, conversation *model.Conversation) error {
	row, err := toConversationRow(conversation)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&conversationRow{}).Where("id = ?", row.ID).
		Updates(map[string]any{
			"messages":     row.Messages,
			"last_updated": row.LastUpdated,
			"intent":       row.Intent,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
