package serializers

import (
	"net/url"
	"strconv"

	"github.com/charity-platform/backend/internal/query"
)

// Page is the envelope every paginated list response uses. Next and
// Previous are absolute URLs for the adjacent pages, or null at the edges.
type Page struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

// NewPage wraps one page of results. requestURL is the URL the page was
// requested with; adjacent-page links keep its other query parameters. A
// page past the end yields empty results with the true count.
func NewPage(requestURL string, page, count int, results any) Page {
	p := Page{Count: count, Results: results}
	if page*query.PageSize < count {
		p.Next = withPage(requestURL, page+1)
	}
	if page > 1 {
		p.Previous = withPage(requestURL, page-1)
	}
	return p
}

func withPage(rawURL string, page int) *string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}
