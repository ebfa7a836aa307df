package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HandoffRequest struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatSessionId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	SessionKey     string         `gorm:"type:varchar(128);not null;index"`
	UserName       string         `gorm:"type:varchar(120)"`
	TriggerMessage string         `gorm:"type:text"`
	Status         string         `gorm:"type:varchar(20);not null;default:'open';index"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (HandoffRequest) TableName() string {
	return "handoff_requests"
}
