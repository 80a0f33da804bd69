// Package serializers renders entities into their wire shapes. Every kind
// has a summary shape for lists and a detail shape for single retrieval;
// derived fields are recomputed on each render and are read-only to
// clients.
package serializers

import (
	"time"

	"github.com/charity-platform/backend/internal/models"
)

type OrganizationSummary struct {
	ID                 int64        `json:"id"`
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	Email              string       `json:"email"`
	Phone              string       `json:"phone"`
	Address            string       `json:"address"`
	Website            string       `json:"website"`
	RegistrationNumber *string      `json:"registration_number"`
	EstablishedDate    *models.Date `json:"established_date"`
	IsActive           bool         `json:"is_active"`
	CampaignCount      int          `json:"campaign_count"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// OrganizationDetail embeds the direct campaigns in summary shape. Used
// only for single-entity retrieval.
type OrganizationDetail struct {
	OrganizationSummary
	Campaigns []CampaignSummary `json:"campaigns"`
}

func Organization(o *models.Organization) OrganizationSummary {
	return OrganizationSummary{
		ID:                 o.ID,
		Name:               o.Name,
		Description:        o.Description,
		Email:              o.Email,
		Phone:              o.Phone,
		Address:            o.Address,
		Website:            o.Website,
		RegistrationNumber: o.RegistrationNumber,
		EstablishedDate:    o.EstablishedDate,
		IsActive:           o.IsActive,
		CampaignCount:      o.CampaignCount,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func Organizations(orgs []models.Organization) []OrganizationSummary {
	out := make([]OrganizationSummary, len(orgs))
	for i := range orgs {
		out[i] = Organization(&orgs[i])
	}
	return out
}

func OrganizationWithCampaigns(o *models.Organization, campaigns []models.Campaign) OrganizationDetail {
	return OrganizationDetail{
		OrganizationSummary: Organization(o),
		Campaigns:           Campaigns(campaigns),
	}
}
