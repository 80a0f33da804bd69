// Package query turns list parameters (equality filters, free-text search,
// ordering, page) into SQL clause fragments with positional arguments.
// Filters narrow first, then search, then the whitelisted order, then the
// page slice, so identical parameter sets always produce identical pages.
package query

import (
	"fmt"
	"strconv"
	"strings"
)

const PageSize = 10

// Params are the list parameters shared by every entity kind. Kind-specific
// equality filters are applied by the caller through Builder.Filter.
type Params struct {
	Search   string
	Ordering string
	Page     int
}

// ParsePage interprets the raw "page" parameter. Pages start at 1; anything
// unparseable or below 1 means the first page.
func ParsePage(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Builder accumulates WHERE predicates and their arguments.
type Builder struct {
	where []string
	args  []any
}

func (b *Builder) next() string {
	return fmt.Sprintf("$%d", len(b.args)+1)
}

// Filter adds an exact-equality predicate. Distinct filters are ANDed.
func (b *Builder) Filter(column string, value any) {
	b.args = append(b.args, value)
	b.where = append(b.where, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// Search adds a case-insensitive substring predicate ORed across columns.
// An empty term adds nothing.
func (b *Builder) Search(term string, columns ...string) {
	if term == "" || len(columns) == 0 {
		return
	}
	b.args = append(b.args, "%"+escapeLike(term)+"%")
	arg := fmt.Sprintf("$%d", len(b.args))
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("%s ILIKE %s", col, arg)
	}
	b.where = append(b.where, "("+strings.Join(parts, " OR ")+")")
}

// WhereClause renders the accumulated predicates, with a leading space, or
// returns the empty string when there are none.
func (b *Builder) WhereClause() string {
	if len(b.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.where, " AND ")
}

// PageClause renders LIMIT/OFFSET for the given 1-based page.
func (b *Builder) PageClause(page int) string {
	if page < 1 {
		page = 1
	}
	b.args = append(b.args, PageSize, (page-1)*PageSize)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(b.args)-1, len(b.args))
}

func (b *Builder) Args() []any {
	return b.args
}

// OrderClause maps an ordering key to a whitelisted column. A "-" prefix
// means descending. Unknown keys fall back to the kind's default order.
func OrderClause(ordering string, allowed map[string]string, fallback string) string {
	key := ordering
	dir := "ASC"
	if strings.HasPrefix(key, "-") {
		key = key[1:]
		dir = "DESC"
	}
	col, ok := allowed[key]
	if !ok {
		return " ORDER BY " + fallback
	}
	return fmt.Sprintf(" ORDER BY %s %s", col, dir)
}

// escapeLike neutralizes LIKE wildcards in user input so a search term is
// always a literal substring match.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
