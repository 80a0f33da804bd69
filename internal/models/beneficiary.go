package models

import "time"

type Beneficiary struct {
	ID               int64     `json:"id"`
	CampaignID       int64     `json:"campaign"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	DateOfBirth      *Date     `json:"date_of_birth,omitempty"`
	NeedsDescription string    `json:"needs_description"`
	AmountReceived   string    `json:"amount_received"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Populated by list/get queries, never stored.
	CampaignTitle string `json:"-"`
}

func (b *Beneficiary) FullName() string {
	return b.FirstName + " " + b.LastName
}
