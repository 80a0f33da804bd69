package services

import (
	"testing"

	"github.com/charity-platform/backend/internal/apperr"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    string
		wantErr bool
	}{
		{"json number", float64(1000), "1000", false},
		{"json decimal", 250.5, "250.5", false},
		{"numeric string", "1500.00", "1500.00", false},
		{"zero", float64(0), "0", false},
		{"missing", nil, "", true},
		{"negative number", float64(-5), "", true},
		{"negative string", "-10.00", "", true},
		{"non-numeric string", "abc", "", true},
		{"boolean", true, "", true},
		{"object", map[string]any{"v": 1}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeAmount(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeAmount(%v) expected error, got %q", tt.in, got)
				}
				if !apperr.IsKind(err, apperr.KindValidation) {
					t.Errorf("NormalizeAmount(%v) error kind = %v, want validation", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeAmount(%v): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeAmount(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCheckAmount(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"0", false},
		{"50000.00", false},
		{"0.01", false},
		{"-1", true},
		{"", true},
		{"NaN", true},
		{"Inf", true},
		{"12,50", true},
	}

	for _, tt := range tests {
		err := checkAmount("goal_amount", tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("checkAmount(%q) err = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}

func TestCheckEmail(t *testing.T) {
	if err := checkEmail("email", "contact@hopefoundation.org", true); err != nil {
		t.Errorf("valid email rejected: %v", err)
	}
	if err := checkEmail("email", "", false); err != nil {
		t.Errorf("optional empty email rejected: %v", err)
	}
	if err := checkEmail("email", "", true); err == nil {
		t.Error("required empty email accepted")
	}
	if err := checkEmail("email", "not-an-email", false); err == nil {
		t.Error("malformed email accepted")
	}
}

func TestCheckURL(t *testing.T) {
	if err := checkURL("website", "https://hopefoundation.org"); err != nil {
		t.Errorf("valid url rejected: %v", err)
	}
	if err := checkURL("website", ""); err != nil {
		t.Errorf("empty url rejected: %v", err)
	}
	if err := checkURL("website", "not a url"); err == nil {
		t.Error("malformed url accepted")
	}
}
