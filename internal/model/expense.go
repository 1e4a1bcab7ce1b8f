package model

import "time"

// Expense is a single spending event. Date keeps the user-supplied ISO string
// as-is: range filters compare it lexicographically in every backend, which
// agrees with chronological order for zero-padded YYYY-MM-DD dates.
type Expense struct {
	ID          string    `json:"id" bson:"_id" firestore:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string    `json:"userId" bson:"user_id" firestore:"userId" gorm:"type:varchar(36);index"`
	Amount      float64   `json:"amount" bson:"amount" firestore:"amount" gorm:"type:decimal(12,2)"`
	Category    string    `json:"category" bson:"category" firestore:"category" gorm:"type:varchar(64);index"`
	Description string    `json:"description" bson:"description" firestore:"description" gorm:"type:text"`
	Date        string    `json:"date" bson:"date" firestore:"date" gorm:"type:varchar(40);index"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at" firestore:"createdAt"`
}

func (Expense) TableName() string {
	return "expenses"
}
