package models

import "time"

// Representante autenticado. A credencial vive no diretório de configuração,
// nunca neste registro.
type User struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Name     string `gorm:"size:100;not null" json:"name"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u User) RecordID() string { return u.ID }
