package models

import (
	"strconv"
	"time"
)

const (
	CampaignStatusPlanning  = "planning"
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
)

var CampaignStatuses = []string{
	CampaignStatusPlanning,
	CampaignStatusActive,
	CampaignStatusCompleted,
	CampaignStatusCancelled,
}

// IsValidCampaignStatus checks enum membership only. Transitions between
// statuses are deliberately unrestricted.
func IsValidCampaignStatus(s string) bool {
	for _, v := range CampaignStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type Campaign struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	GoalAmount     string    `json:"goal_amount"`
	RaisedAmount   string    `json:"raised_amount"`
	Status         string    `json:"status"`
	StartDate      Date      `json:"start_date"`
	EndDate        Date      `json:"end_date"`
	Location       string    `json:"location"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Populated by list/get queries, never stored.
	OrganizationName string `json:"-"`
	BeneficiaryCount int    `json:"-"`
}

// ProgressPercentage derives the share of the goal raised so far. Amounts
// are stored as strings; unparseable values (impossible via the API) read
// as zero.
func (c *Campaign) ProgressPercentage() float64 {
	goal, err := strconv.ParseFloat(c.GoalAmount, 64)
	if err != nil || goal <= 0 {
		return 0
	}
	raised, err := strconv.ParseFloat(c.RaisedAmount, 64)
	if err != nil {
		return 0
	}
	return raised * 100 / goal
}
