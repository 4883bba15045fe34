package models

import "time"

// ClientName é um snapshot desnormalizado: sobrevive à exclusão ou
// renomeação do cliente.
type Appointment struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"size:36;index;not null" json:"user_id"`

	ClientID   string `gorm:"size:36" json:"client_id"`
	ClientName string `gorm:"size:100" json:"client_name"`

	Date     string `gorm:"size:10;not null" json:"date"`
	Time     string `gorm:"size:5" json:"time"`
	Duration int    `gorm:"default:30" json:"duration"`
	Purpose  string `gorm:"size:255" json:"purpose"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a Appointment) RecordID() string { return a.ID }
func (a Appointment) Owner() string    { return a.UserID }
