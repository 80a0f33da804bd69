package dto

import (
	"encoding/json"
	"testing"
)

func TestDecimalAcceptsStringAndNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Decimal
	}{
		{"string", `{"goal_amount": "50000.00"}`, "50000.00"},
		{"integer", `{"goal_amount": 50000}`, "50000"},
		{"decimal", `{"goal_amount": 1500.75}`, "1500.75"},
		{"null", `{"goal_amount": null}`, ""},
		{"absent", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateCampaignRequest
			if err := json.Unmarshal([]byte(tt.in), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if req.GoalAmount != tt.want {
				t.Errorf("GoalAmount = %q, want %q", req.GoalAmount, tt.want)
			}
		})
	}
}

func TestDecimalRejectsNonNumbers(t *testing.T) {
	var req CreateCampaignRequest
	for _, in := range []string{
		`{"goal_amount": true}`,
		`{"goal_amount": {}}`,
		`{"goal_amount": []}`,
	} {
		if err := json.Unmarshal([]byte(in), &req); err == nil {
			t.Errorf("unmarshal(%s) should fail", in)
		}
	}
}

func TestUpdateAmountRequestShapes(t *testing.T) {
	var req UpdateAmountRequest
	if err := json.Unmarshal([]byte(`{"amount": 1000}`), &req); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if f, ok := req.Amount.(float64); !ok || f != 1000 {
		t.Errorf("Amount = %v (%T), want float64 1000", req.Amount, req.Amount)
	}

	if err := json.Unmarshal([]byte(`{"amount": "250.50"}`), &req); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if s, ok := req.Amount.(string); !ok || s != "250.50" {
		t.Errorf("Amount = %v (%T), want string", req.Amount, req.Amount)
	}

	req = UpdateAmountRequest{}
	if err := json.Unmarshal([]byte(`{}`), &req); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if req.Amount != nil {
		t.Errorf("absent amount = %v, want nil", req.Amount)
	}
}

func TestPartialUpdateDistinguishesAbsentFromZero(t *testing.T) {
	var req UpdateOrganizationRequest
	if err := json.Unmarshal([]byte(`{"description": ""}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.Description == nil || *req.Description != "" {
		t.Error("explicit empty string should arrive as a set pointer")
	}
	if req.Name != nil {
		t.Error("absent name should stay nil")
	}
}
