package models

import "testing"

func TestIsValidCampaignStatus(t *testing.T) {
	tests := []struct {
		status   string
		expected bool
	}{
		{CampaignStatusPlanning, true},
		{CampaignStatusActive, true},
		{CampaignStatusCompleted, true},
		{CampaignStatusCancelled, true},
		{"", false},
		{"Active", false},
		{"archived", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := IsValidCampaignStatus(tt.status); got != tt.expected {
				t.Errorf("IsValidCampaignStatus(%q) = %v, want %v", tt.status, got, tt.expected)
			}
		})
	}
}

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name     string
		goal     string
		raised   string
		expected float64
	}{
		{"thirty percent", "50000.00", "15000.00", 30},
		{"thirty two percent", "50000.00", "16000.00", 32},
		{"zero raised", "1000.00", "0", 0},
		{"zero goal", "0", "500.00", 0},
		{"over goal", "100.00", "150.00", 150},
		{"unparseable goal", "", "10", 0},
		{"unparseable raised", "100.00", "abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Campaign{GoalAmount: tt.goal, RaisedAmount: tt.raised}
			if got := c.ProgressPercentage(); got != tt.expected {
				t.Errorf("ProgressPercentage() = %v, want %v", got, tt.expected)
			}
		})
	}
}
