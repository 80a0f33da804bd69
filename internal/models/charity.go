package models

import "time"

const (
	CharityCategoryEducation    = "education"
	CharityCategoryHealth       = "health"
	CharityCategoryWomenSupport = "women_support"
	CharityCategoryOther        = "other"
)

var CharityCategories = []string{
	CharityCategoryEducation,
	CharityCategoryHealth,
	CharityCategoryWomenSupport,
	CharityCategoryOther,
}

func IsValidCharityCategory(s string) bool {
	for _, v := range CharityCategories {
		if v == s {
			return true
		}
	}
	return false
}

// Charity is a directory entry independent of the organization/campaign
// hierarchy. Logo holds a path or URL reference, never inline bytes.
type Charity struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Location  string    `json:"location"`
	Logo      *string   `json:"logo,omitempty"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"created_at"`
}
