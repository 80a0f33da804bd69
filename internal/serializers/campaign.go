package serializers

import (
	"time"

	"github.com/charity-platform/backend/internal/models"
)

type CampaignSummary struct {
	ID                 int64       `json:"id"`
	Organization       int64       `json:"organization"`
	OrganizationName   string      `json:"organization_name"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	GoalAmount         string      `json:"goal_amount"`
	RaisedAmount       string      `json:"raised_amount"`
	ProgressPercentage float64     `json:"progress_percentage"`
	Status             string      `json:"status"`
	StartDate          models.Date `json:"start_date"`
	EndDate            models.Date `json:"end_date"`
	Location           string      `json:"location"`
	BeneficiaryCount   int         `json:"beneficiary_count"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

type CampaignDetail struct {
	CampaignSummary
	Beneficiaries []BeneficiarySummary `json:"beneficiaries"`
}

func Campaign(c *models.Campaign) CampaignSummary {
	return CampaignSummary{
		ID:                 c.ID,
		Organization:       c.OrganizationID,
		OrganizationName:   c.OrganizationName,
		Title:              c.Title,
		Description:        c.Description,
		GoalAmount:         c.GoalAmount,
		RaisedAmount:       c.RaisedAmount,
		ProgressPercentage: c.ProgressPercentage(),
		Status:             c.Status,
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
		Location:           c.Location,
		BeneficiaryCount:   c.BeneficiaryCount,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func Campaigns(campaigns []models.Campaign) []CampaignSummary {
	out := make([]CampaignSummary, len(campaigns))
	for i := range campaigns {
		out[i] = Campaign(&campaigns[i])
	}
	return out
}

func CampaignWithBeneficiaries(c *models.Campaign, beneficiaries []models.Beneficiary) CampaignDetail {
	return CampaignDetail{
		CampaignSummary: Campaign(c),
		Beneficiaries:   Beneficiaries(beneficiaries),
	}
}
