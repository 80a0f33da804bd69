package serializers

import (
	"strings"
	"testing"
)

func TestNewPageMiddle(t *testing.T) {
	url := "http://localhost:3000/api/campaigns?search=winter&page=2"
	p := NewPage(url, 2, 25, []CampaignSummary{})

	if p.Count != 25 {
		t.Errorf("Count = %d, want 25", p.Count)
	}
	if p.Next == nil || !strings.Contains(*p.Next, "page=3") {
		t.Errorf("Next = %v, want page=3 link", p.Next)
	}
	if p.Next != nil && !strings.Contains(*p.Next, "search=winter") {
		t.Errorf("Next = %v, should keep the search parameter", *p.Next)
	}
	if p.Previous == nil || !strings.Contains(*p.Previous, "page=1") {
		t.Errorf("Previous = %v, want page=1 link", p.Previous)
	}
}

func TestNewPageFirst(t *testing.T) {
	p := NewPage("http://localhost:3000/api/organizations", 1, 25, nil)
	if p.Previous != nil {
		t.Errorf("Previous on first page = %v, want nil", *p.Previous)
	}
	if p.Next == nil {
		t.Fatal("Next on first of three pages should be set")
	}
}

func TestNewPageLast(t *testing.T) {
	p := NewPage("http://localhost:3000/api/organizations?page=3", 3, 25, nil)
	if p.Next != nil {
		t.Errorf("Next on last page = %v, want nil", *p.Next)
	}
	if p.Previous == nil {
		t.Fatal("Previous on last page should be set")
	}
}

func TestNewPageExactBoundary(t *testing.T) {
	// 20 rows fill exactly two pages; page 2 is the last
	p := NewPage("http://localhost:3000/api/charities?page=2", 2, 20, nil)
	if p.Next != nil {
		t.Errorf("Next past exact boundary = %v, want nil", *p.Next)
	}
}

func TestNewPageBeyondEnd(t *testing.T) {
	// a page past the data is an empty page, not an error; count stays true
	p := NewPage("http://localhost:3000/api/charities?page=9", 9, 5, []CharitySummary{})
	if p.Count != 5 {
		t.Errorf("Count = %d, want 5", p.Count)
	}
	if p.Next != nil {
		t.Errorf("Next beyond end = %v, want nil", *p.Next)
	}
}

func TestNewPageSinglePage(t *testing.T) {
	p := NewPage("http://localhost:3000/api/charities", 1, 4, nil)
	if p.Next != nil || p.Previous != nil {
		t.Error("single page should have no adjacent links")
	}
}
