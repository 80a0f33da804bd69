package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-11-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.November || d.Day() != 1 {
		t.Errorf("ParseDate returned %v", d)
	}

	for _, bad := range []string{"", "2024-13-01", "01/11/2024", "2024-11-01T00:00:00Z"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, _ := ParseDate("2024-12-31")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-12-31"` {
		t.Errorf("marshal = %s, want %q", b, "2024-12-31")
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("round trip mismatch: %v != %v", back, d)
	}
}

func TestDateUnmarshalInvalid(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"not-a-date"`), &d); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestDateOrdering(t *testing.T) {
	start, _ := ParseDate("2024-11-01")
	end, _ := ParseDate("2024-12-31")
	if !start.Before(end.Time) {
		t.Error("start should precede end")
	}
	if end.Before(start.Time) {
		t.Error("end should not precede start")
	}
	if start.Before(start.Time) {
		t.Error("a date does not precede itself")
	}
}
