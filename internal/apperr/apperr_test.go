package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	if got := NotFound("campaign").Error(); got != "campaign not found" {
		t.Errorf("Error() = %q", got)
	}
	if got := Validation("end_date", "end date must not precede start date").Error(); got != "end_date: end date must not precede start date" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsKind(t *testing.T) {
	tests := []struct {
		err  error
		kind Kind
		want bool
	}{
		{NotFound("organization"), KindNotFound, true},
		{NotFound("organization"), KindValidation, false},
		{Validation("amount", "must be positive"), KindValidation, true},
		{Reference("campaign", "referenced row does not exist"), KindReference, true},
		{PermissionDenied("admin access required"), KindPermissionDenied, true},
		{errors.New("plain"), KindNotFound, false},
		{nil, KindNotFound, false},
	}

	for _, tt := range tests {
		if got := IsKind(tt.err, tt.kind); got != tt.want {
			t.Errorf("IsKind(%v, %v) = %v, want %v", tt.err, tt.kind, got, tt.want)
		}
	}
}

func TestIsKindWrapped(t *testing.T) {
	wrapped := fmt.Errorf("creating campaign: %w", Validation("goal_amount", "must be a number"))
	if !IsKind(wrapped, KindValidation) {
		t.Error("IsKind should see through wrapping")
	}
	e := From(wrapped)
	if e == nil || e.Field != "goal_amount" {
		t.Errorf("From(wrapped) = %v", e)
	}
}

func TestFromNonAppError(t *testing.T) {
	if From(errors.New("plain")) != nil {
		t.Error("From(plain error) should be nil")
	}
}
