package query

import (
	"reflect"
	"testing"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		in       string
		expected int
	}{
		{"", 1},
		{"1", 1},
		{"7", 7},
		{"0", 1},
		{"-3", 1},
		{"abc", 1},
	}

	for _, tt := range tests {
		if got := ParsePage(tt.in); got != tt.expected {
			t.Errorf("ParsePage(%q) = %d, want %d", tt.in, got, tt.expected)
		}
	}
}

func TestBuilderFiltersAndSearch(t *testing.T) {
	var b Builder
	b.Filter("c.status", "active")
	b.Filter("c.organization_id", int64(1))
	b.Search("winter", "c.title", "c.description")

	where := b.WhereClause()
	want := " WHERE c.status = $1 AND c.organization_id = $2 AND (c.title ILIKE $3 OR c.description ILIKE $3)"
	if where != want {
		t.Errorf("WhereClause() = %q, want %q", where, want)
	}

	args := b.Args()
	wantArgs := []any{"active", int64(1), "%winter%"}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("Args() = %v, want %v", args, wantArgs)
	}
}

func TestBuilderEmptySearch(t *testing.T) {
	var b Builder
	b.Search("", "c.title")
	if b.WhereClause() != "" {
		t.Errorf("empty search should add no predicate, got %q", b.WhereClause())
	}
}

func TestBuilderSearchEscapesWildcards(t *testing.T) {
	var b Builder
	b.Search("50%_off", "c.title")
	args := b.Args()
	if len(args) != 1 {
		t.Fatalf("expected 1 arg, got %d", len(args))
	}
	if args[0] != `%50\%\_off%` {
		t.Errorf("search arg = %q, want literal-escaped pattern", args[0])
	}
}

func TestBuilderPageClause(t *testing.T) {
	tests := []struct {
		page       int
		wantOffset int
	}{
		{1, 0},
		{2, 10},
		{5, 40},
		{0, 0},  // below the floor reads as page 1
		{-1, 0},
	}

	for _, tt := range tests {
		var b Builder
		clause := b.PageClause(tt.page)
		if clause != " LIMIT $1 OFFSET $2" {
			t.Errorf("PageClause(%d) = %q", tt.page, clause)
		}
		args := b.Args()
		if args[0] != PageSize || args[1] != tt.wantOffset {
			t.Errorf("PageClause(%d) args = %v, want [%d %d]", tt.page, args, PageSize, tt.wantOffset)
		}
	}
}

func TestBuilderPageClauseAfterFilters(t *testing.T) {
	var b Builder
	b.Filter("o.is_active", true)
	clause := b.PageClause(3)
	if clause != " LIMIT $2 OFFSET $3" {
		t.Errorf("PageClause after filter = %q", clause)
	}
}

func TestOrderClause(t *testing.T) {
	allowed := map[string]string{
		"title":      "c.title",
		"created_at": "c.created_at",
	}
	fallback := "c.created_at DESC"

	tests := []struct {
		ordering string
		expected string
	}{
		{"title", " ORDER BY c.title ASC"},
		{"-title", " ORDER BY c.title DESC"},
		{"created_at", " ORDER BY c.created_at ASC"},
		{"", " ORDER BY c.created_at DESC"},
		{"bogus", " ORDER BY c.created_at DESC"},
		{"-bogus", " ORDER BY c.created_at DESC"},
		// a column not in the whitelist never reaches the SQL
		{"raised_amount; DROP TABLE campaigns", " ORDER BY c.created_at DESC"},
	}

	for _, tt := range tests {
		if got := OrderClause(tt.ordering, allowed, fallback); got != tt.expected {
			t.Errorf("OrderClause(%q) = %q, want %q", tt.ordering, got, tt.expected)
		}
	}
}
