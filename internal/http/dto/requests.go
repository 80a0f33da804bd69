package dto

import (
	"encoding/json"
	"strings"

	"github.com/charity-platform/backend/internal/models"
)

// Decimal accepts a monetary value sent either as a JSON number or as a
// numeric string, and keeps it as the string the store will parse.
type Decimal string

func (d *Decimal) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*d = Decimal(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*d = Decimal(n.String())
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Organizations

type CreateOrganizationRequest struct {
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	Email              string       `json:"email"`
	Phone              string       `json:"phone"`
	Address            string       `json:"address"`
	Website            string       `json:"website"`
	RegistrationNumber *string      `json:"registration_number,omitempty"`
	EstablishedDate    *models.Date `json:"established_date,omitempty"`
	IsActive           *bool        `json:"is_active,omitempty"`
}

// UpdateOrganizationRequest carries only the fields the client sent; nil
// means "leave unchanged". PUT requires the required fields to be present,
// PATCH does not.
type UpdateOrganizationRequest struct {
	Name               *string      `json:"name,omitempty"`
	Description        *string      `json:"description,omitempty"`
	Email              *string      `json:"email,omitempty"`
	Phone              *string      `json:"phone,omitempty"`
	Address            *string      `json:"address,omitempty"`
	Website            *string      `json:"website,omitempty"`
	RegistrationNumber *string      `json:"registration_number,omitempty"`
	EstablishedDate    *models.Date `json:"established_date,omitempty"`
	IsActive           *bool        `json:"is_active,omitempty"`
}

// Campaigns

type CreateCampaignRequest struct {
	Organization int64        `json:"organization"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	GoalAmount   Decimal      `json:"goal_amount"`
	RaisedAmount Decimal      `json:"raised_amount,omitempty"`
	Status       string       `json:"status,omitempty"`
	StartDate    *models.Date `json:"start_date,omitempty"`
	EndDate      *models.Date `json:"end_date,omitempty"`
	Location     string       `json:"location"`
}

type UpdateCampaignRequest struct {
	Organization *int64       `json:"organization,omitempty"`
	Title        *string      `json:"title,omitempty"`
	Description  *string      `json:"description,omitempty"`
	GoalAmount   *Decimal     `json:"goal_amount,omitempty"`
	RaisedAmount *Decimal     `json:"raised_amount,omitempty"`
	Status       *string      `json:"status,omitempty"`
	StartDate    *models.Date `json:"start_date,omitempty"`
	EndDate      *models.Date `json:"end_date,omitempty"`
	Location     *string      `json:"location,omitempty"`
}

// Beneficiaries

type CreateBeneficiaryRequest struct {
	Campaign         int64        `json:"campaign"`
	FirstName        string       `json:"first_name"`
	LastName         string       `json:"last_name"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	Address          string       `json:"address"`
	DateOfBirth      *models.Date `json:"date_of_birth,omitempty"`
	NeedsDescription string       `json:"needs_description"`
	AmountReceived   Decimal      `json:"amount_received,omitempty"`
	IsActive         *bool        `json:"is_active,omitempty"`
}

type UpdateBeneficiaryRequest struct {
	Campaign         *int64       `json:"campaign,omitempty"`
	FirstName        *string      `json:"first_name,omitempty"`
	LastName         *string      `json:"last_name,omitempty"`
	Email            *string      `json:"email,omitempty"`
	Phone            *string      `json:"phone,omitempty"`
	Address          *string      `json:"address,omitempty"`
	DateOfBirth      *models.Date `json:"date_of_birth,omitempty"`
	NeedsDescription *string      `json:"needs_description,omitempty"`
	AmountReceived   *Decimal     `json:"amount_received,omitempty"`
	IsActive         *bool        `json:"is_active,omitempty"`
}

// Charities

type CreateCharityRequest struct {
	Name     string  `json:"name" form:"name"`
	Category string  `json:"category" form:"category"`
	Location string  `json:"location" form:"location"`
	Logo     *string `json:"logo,omitempty" form:"logo_url"`
	Link     string  `json:"link" form:"link"`
}

type UpdateCharityRequest struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Location *string `json:"location,omitempty"`
	Logo     *string `json:"logo,omitempty"`
	Link     *string `json:"link,omitempty"`
}

// Increment actions

type UpdateAmountRequest struct {
	// Amount may arrive as a JSON number or a numeric string; the service
	// validates it before any write.
	Amount any `json:"amount"`
}
