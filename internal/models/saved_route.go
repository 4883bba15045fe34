package models

import "time"

type SavedRoute struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"size:36;index;not null" json:"user_id"`

	Name      string   `gorm:"size:100;not null" json:"name"`
	ClientIDs []string `gorm:"serializer:json" json:"client_ids"`

	Optimization string `gorm:"type:text" json:"optimization,omitempty"`
	Date         string `gorm:"size:10" json:"date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Mantém o nome de tabela do esquema original.
func (SavedRoute) TableName() string { return "routes" }

func (r SavedRoute) RecordID() string { return r.ID }
func (r SavedRoute) Owner() string    { return r.UserID }
