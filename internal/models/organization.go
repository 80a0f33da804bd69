package models

import "time"

type Organization struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Address            string    `json:"address"`
	Website            string    `json:"website"`
	RegistrationNumber *string   `json:"registration_number,omitempty"`
	EstablishedDate    *Date     `json:"established_date,omitempty"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// CampaignCount is populated by list/get queries, never stored.
	CampaignCount int `json:"-"`
}
