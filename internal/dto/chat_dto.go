package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	SessionKey string `json:"session_id" validate:"required,max=128"`
	Message    string `json:"message" validate:"required,max=2000"`

	// Optional product page context from the storefront.
	ProductSlug string `json:"product_slug,omitempty"`
	ProductId   string `json:"product_id,omitempty"`

	// Optional client-side overrides, applied before classification.
	UserName        string `json:"user_name,omitempty" validate:"max=120"`
	SelectedService string `json:"selected_service,omitempty"`
}

type SendChatResponse struct {
	SessionKey   string `json:"session_id"`
	Reply        string `json:"reply"`
	Intent       string `json:"intent"`
	Mode         string `json:"mode"`
	NeedsHuman   bool   `json:"needs_human"`
	MatchedFaqId string `json:"matched_faq_id,omitempty"`

	SessionPatch map[string]interface{} `json:"session_patch,omitempty"`

	// Products carries the product a product_info reply talked about, so
	// the widget can render its card next to the text.
	Products []*ProductResponse `json:"products,omitempty"`
}

type GetChatHistoryResponse struct {
	Id         uuid.UUID `json:"id"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	Intent     string    `json:"intent,omitempty"`
	NeedsHuman bool      `json:"needs_human"`
	CreatedAt  time.Time `json:"created_at"`
}

type ProductResponse struct {
	Id          string  `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price,omitempty"`
	Currency    string  `json:"currency,omitempty"`
	Capacity    int     `json:"capacity,omitempty"`
	Description string  `json:"description,omitempty"`
}

type FaqResponse struct {
	Id       string `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Admin DTOs

type ChatSessionResponse struct {
	Id              uuid.UUID  `json:"id"`
	SessionKey      string     `json:"session_id"`
	UserName        string     `json:"user_name,omitempty"`
	SelectedService string     `json:"selected_service,omitempty"`
	Mode            string     `json:"mode"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

type HandoffRequestResponse struct {
	Id             uuid.UUID `json:"id"`
	SessionKey     string    `json:"session_id"`
	UserName       string    `json:"user_name,omitempty"`
	TriggerMessage string    `json:"trigger_message,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type ReservationRequestResponse struct {
	Id         uuid.UUID `json:"id"`
	SessionKey string    `json:"session_id"`
	UserName   string    `json:"user_name,omitempty"`
	Service    string    `json:"service"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	People     int       `json:"people"`
	Phone      string    `json:"phone"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=20"`
}
