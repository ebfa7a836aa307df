package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChatSession struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionKey      string         `gorm:"type:varchar(128);not null;uniqueIndex"`
	UserName        string         `gorm:"type:varchar(120)"`
	SelectedService string         `gorm:"type:varchar(50)"`
	Mode            string         `gorm:"type:varchar(40);not null"`
	Context         datatypes.JSON `gorm:"type:jsonb"` // full session context snapshot
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
