package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservationRequest struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatSessionId uuid.UUID      `gorm:"type:uuid;not null;index"`
	SessionKey    string         `gorm:"type:varchar(128);not null;index"`
	UserName      string         `gorm:"type:varchar(120)"`
	Service       string         `gorm:"type:varchar(50);not null"`
	Date          string         `gorm:"type:varchar(40);not null"`
	Time          string         `gorm:"type:varchar(20);not null"`
	People        int            `gorm:"not null"`
	Phone         string         `gorm:"type:varchar(30);not null"`
	Status        string         `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (ReservationRequest) TableName() string {
	return "reservation_requests"
}
