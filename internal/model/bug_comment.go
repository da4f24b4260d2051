package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BugComment struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	BugID     string    `json:"bug_id" gorm:"type:uuid;not null;index"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null"`
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Comment   string    `json:"comment" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (bc *BugComment) BeforeCreate(tx *gorm.DB) error {
	if bc.ID == "" {
		bc.ID = uuid.NewString()
	}
	return nil
}
