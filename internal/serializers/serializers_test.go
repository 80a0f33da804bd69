package serializers

import (
	"testing"

	"github.com/charity-platform/backend/internal/models"
)

func testDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestCampaignSummaryDerivedFields(t *testing.T) {
	c := &models.Campaign{
		ID:               7,
		OrganizationID:   1,
		OrganizationName: "Hope Foundation",
		Title:            "Winter Relief Campaign 2024",
		GoalAmount:       "50000.00",
		RaisedAmount:     "15000.00",
		Status:           models.CampaignStatusActive,
		StartDate:        testDate(t, "2024-11-01"),
		EndDate:          testDate(t, "2024-12-31"),
		BeneficiaryCount: 3,
	}

	s := Campaign(c)
	if s.ProgressPercentage != 30 {
		t.Errorf("ProgressPercentage = %v, want 30", s.ProgressPercentage)
	}
	if s.OrganizationName != "Hope Foundation" {
		t.Errorf("OrganizationName = %q", s.OrganizationName)
	}
	if s.BeneficiaryCount != 3 {
		t.Errorf("BeneficiaryCount = %d, want 3", s.BeneficiaryCount)
	}
	if s.Organization != 1 {
		t.Errorf("Organization = %d, want 1", s.Organization)
	}
}

func TestBeneficiarySummaryFullName(t *testing.T) {
	b := &models.Beneficiary{
		ID:            2,
		CampaignID:    7,
		CampaignTitle: "Winter Relief Campaign 2024",
		FirstName:     "Amina",
		LastName:      "Yusuf",
	}

	s := Beneficiary(b)
	if s.FullName != "Amina Yusuf" {
		t.Errorf("FullName = %q, want %q", s.FullName, "Amina Yusuf")
	}
	if s.CampaignTitle != "Winter Relief Campaign 2024" {
		t.Errorf("CampaignTitle = %q", s.CampaignTitle)
	}
}

func TestOrganizationDetailEmbedsCampaigns(t *testing.T) {
	o := &models.Organization{ID: 1, Name: "Hope Foundation", CampaignCount: 2}
	campaigns := []models.Campaign{
		{ID: 7, OrganizationID: 1, GoalAmount: "100", RaisedAmount: "50"},
		{ID: 8, OrganizationID: 1, GoalAmount: "0", RaisedAmount: "0"},
	}

	d := OrganizationWithCampaigns(o, campaigns)
	if d.CampaignCount != 2 {
		t.Errorf("CampaignCount = %d, want 2", d.CampaignCount)
	}
	if len(d.Campaigns) != 2 {
		t.Fatalf("embedded campaigns = %d, want 2", len(d.Campaigns))
	}
	if d.Campaigns[0].ProgressPercentage != 50 {
		t.Errorf("nested progress = %v, want 50", d.Campaigns[0].ProgressPercentage)
	}
	if d.Campaigns[1].ProgressPercentage != 0 {
		t.Errorf("zero-goal progress = %v, want 0", d.Campaigns[1].ProgressPercentage)
	}
}

func TestCampaignDetailEmbedsBeneficiaries(t *testing.T) {
	c := &models.Campaign{ID: 7, GoalAmount: "10", RaisedAmount: "10"}
	d := CampaignWithBeneficiaries(c, []models.Beneficiary{{ID: 1, FirstName: "A", LastName: "B"}})
	if len(d.Beneficiaries) != 1 {
		t.Fatalf("embedded beneficiaries = %d, want 1", len(d.Beneficiaries))
	}
	if d.Beneficiaries[0].FullName != "A B" {
		t.Errorf("nested full name = %q", d.Beneficiaries[0].FullName)
	}
}

func TestEmptySlicesRenderEmpty(t *testing.T) {
	if got := Campaigns(nil); got == nil || len(got) != 0 {
		t.Errorf("Campaigns(nil) = %v, want empty non-nil slice", got)
	}
	if got := Beneficiaries([]models.Beneficiary{}); got == nil || len(got) != 0 {
		t.Errorf("Beneficiaries(empty) = %v, want empty non-nil slice", got)
	}
}
