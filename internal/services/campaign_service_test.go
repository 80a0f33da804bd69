package services

import (
	"testing"

	"github.com/charity-platform/backend/internal/apperr"
	"github.com/charity-platform/backend/internal/models"
)

func date(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func validTestCampaign(t *testing.T) *models.Campaign {
	return &models.Campaign{
		OrganizationID: 1,
		Title:          "Winter Relief Campaign 2024",
		Description:    "Warm clothes and heating for families",
		GoalAmount:     "50000.00",
		RaisedAmount:   "15000.00",
		Status:         models.CampaignStatusActive,
		StartDate:      date(t, "2024-11-01"),
		EndDate:        date(t, "2024-12-31"),
	}
}

func TestValidateCampaign(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.Campaign)
		wantField string
	}{
		{"valid", func(c *models.Campaign) {}, ""},
		{"same day start and end", func(c *models.Campaign) {
			c.EndDate = c.StartDate
		}, ""},
		{"missing organization", func(c *models.Campaign) { c.OrganizationID = 0 }, "organization"},
		{"missing title", func(c *models.Campaign) { c.Title = "" }, "title"},
		{"missing description", func(c *models.Campaign) { c.Description = "" }, "description"},
		{"negative goal", func(c *models.Campaign) { c.GoalAmount = "-100" }, "goal_amount"},
		{"non-numeric goal", func(c *models.Campaign) { c.GoalAmount = "lots" }, "goal_amount"},
		{"negative raised", func(c *models.Campaign) { c.RaisedAmount = "-1" }, "raised_amount"},
		{"bad status", func(c *models.Campaign) { c.Status = "paused" }, "status"},
		{"missing start date", func(c *models.Campaign) { c.StartDate = models.Date{} }, "start_date"},
		{"missing end date", func(c *models.Campaign) { c.EndDate = models.Date{} }, "end_date"},
		{"end before start", func(c *models.Campaign) {
			c.StartDate = date(t, "2024-12-31")
			c.EndDate = date(t, "2024-11-01")
		}, "end_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validTestCampaign(t)
			tt.mutate(c)
			err := validateCampaign(c)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("validateCampaign: %v", err)
				}
				return
			}
			e := apperr.From(err)
			if e == nil || e.Kind != apperr.KindValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if e.Field != tt.wantField {
				t.Errorf("error field = %q, want %q", e.Field, tt.wantField)
			}
		})
	}
}

func TestValidateOrganization(t *testing.T) {
	o := &models.Organization{Name: "Hope Foundation", Email: "contact@hopefoundation.org"}
	if err := validateOrganization(o); err != nil {
		t.Fatalf("validateOrganization: %v", err)
	}

	o.Name = ""
	if err := validateOrganization(o); !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("missing name: got %v", err)
	}

	o.Name = "Hope Foundation"
	o.Email = "nope"
	if err := validateOrganization(o); !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("bad email: got %v", err)
	}

	o.Email = "contact@hopefoundation.org"
	o.Website = "::::"
	if err := validateOrganization(o); !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("bad website: got %v", err)
	}
}

func TestValidateBeneficiary(t *testing.T) {
	valid := func() *models.Beneficiary {
		return &models.Beneficiary{
			CampaignID:       1,
			FirstName:        "Amina",
			LastName:         "Yusuf",
			NeedsDescription: "school supplies",
			AmountReceived:   "0",
		}
	}

	if err := validateBeneficiary(valid()); err != nil {
		t.Fatalf("validateBeneficiary: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*models.Beneficiary)
	}{
		{"missing campaign", func(b *models.Beneficiary) { b.CampaignID = 0 }},
		{"missing first name", func(b *models.Beneficiary) { b.FirstName = "" }},
		{"missing last name", func(b *models.Beneficiary) { b.LastName = "" }},
		{"missing needs description", func(b *models.Beneficiary) { b.NeedsDescription = "" }},
		{"bad email", func(b *models.Beneficiary) { b.Email = "nope" }},
		{"negative amount", func(b *models.Beneficiary) { b.AmountReceived = "-2" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid()
			tt.mutate(b)
			if err := validateBeneficiary(b); !apperr.IsKind(err, apperr.KindValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestValidateCharity(t *testing.T) {
	ch := &models.Charity{Name: "Bright Futures", Category: models.CharityCategoryEducation}
	if err := validateCharity(ch); err != nil {
		t.Fatalf("validateCharity: %v", err)
	}

	ch.Category = "sports"
	if err := validateCharity(ch); !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("bad category: got %v", err)
	}

	ch.Category = models.CharityCategoryHealth
	ch.Name = ""
	if err := validateCharity(ch); !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("missing name: got %v", err)
	}
}
