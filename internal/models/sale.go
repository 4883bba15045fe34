package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Positivação: venda registrada junto ao cliente em uma data.
type Sale struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"size:36;index;not null" json:"user_id"`

	ClientID   string `gorm:"size:36" json:"client_id"`
	ClientName string `gorm:"size:100" json:"client_name"`

	Amount decimal.Decimal `gorm:"type:decimal(20,4)" json:"amount"`
	Date   string          `gorm:"size:10;not null" json:"date"`
	Notes  string          `gorm:"size:500" json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s Sale) RecordID() string { return s.ID }
func (s Sale) Owner() string    { return s.UserID }

// Linhas de venda aparecem nas listas do dashboard pelo nome
// desnormalizado do cliente; não têm código próprio.
func (s Sale) DisplayName() string { return s.ClientName }
func (s Sale) CodeOrZero() int     { return 0 }
