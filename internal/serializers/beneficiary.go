package serializers

import (
	"time"

	"github.com/charity-platform/backend/internal/models"
)

type BeneficiarySummary struct {
	ID               int64        `json:"id"`
	Campaign         int64        `json:"campaign"`
	CampaignTitle    string       `json:"campaign_title"`
	FirstName        string       `json:"first_name"`
	LastName         string       `json:"last_name"`
	FullName         string       `json:"full_name"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	Address          string       `json:"address"`
	DateOfBirth      *models.Date `json:"date_of_birth"`
	NeedsDescription string       `json:"needs_description"`
	AmountReceived   string       `json:"amount_received"`
	IsActive         bool         `json:"is_active"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

func Beneficiary(b *models.Beneficiary) BeneficiarySummary {
	return BeneficiarySummary{
		ID:               b.ID,
		Campaign:         b.CampaignID,
		CampaignTitle:    b.CampaignTitle,
		FirstName:        b.FirstName,
		LastName:         b.LastName,
		FullName:         b.FullName(),
		Email:            b.Email,
		Phone:            b.Phone,
		Address:          b.Address,
		DateOfBirth:      b.DateOfBirth,
		NeedsDescription: b.NeedsDescription,
		AmountReceived:   b.AmountReceived,
		IsActive:         b.IsActive,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func Beneficiaries(items []models.Beneficiary) []BeneficiarySummary {
	out := make([]BeneficiarySummary, len(items))
	for i := range items {
		out[i] = Beneficiary(&items[i])
	}
	return out
}
