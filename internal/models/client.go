package models

import "time"

// Cliente da carteira do representante, isolado por user_id.
// Datas são armazenadas como strings ISO (2006-01-02), igual ao restante
// do sistema, para comparação exata no dashboard.
type Client struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"size:36;index;not null" json:"user_id"`

	Code    *int   `json:"code,omitempty"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Company string `gorm:"size:100" json:"company"`
	CNPJ    string `gorm:"size:20" json:"cnpj,omitempty"`
	Email   string `gorm:"size:100" json:"email,omitempty"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	Category      string `gorm:"size:1;default:'C'" json:"category"`
	AssignedRoute string `gorm:"size:20" json:"assigned_route,omitempty"`
	LastVisitDate string `gorm:"size:10" json:"last_visit_date,omitempty"`
	Notes         string `gorm:"size:500" json:"notes,omitempty"`

	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Client) RecordID() string { return c.ID }
func (c Client) Owner() string    { return c.UserID }

func (c Client) DisplayName() string { return c.Name }

func (c Client) CodeOrZero() int {
	if c.Code == nil {
		return 0
	}
	return *c.Code
}
