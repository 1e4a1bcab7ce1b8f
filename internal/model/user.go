package model

import "time"

// User is the identity + credential record. Email is stored lowercased and
// must be unique in every backend.
type User struct {
	ID        string    `json:"id" bson:"_id" firestore:"id" gorm:"primaryKey;type:varchar(36)"`
	Email     string    `json:"email" bson:"email" firestore:"email" gorm:"type:varchar(255);not null;unique;index"`
	Name      string    `json:"name" bson:"name" firestore:"name" gorm:"type:varchar(100);not null"`
	Password  string    `json:"-" bson:"password" firestore:"password" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at" firestore:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

// AuthClaims is what a session token carries about its user.
type AuthClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
