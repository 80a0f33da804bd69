package serializers

import (
	"time"

	"github.com/charity-platform/backend/internal/models"
)

// Charity has no child entities, so its detail shape equals its summary.
type CharitySummary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Location  string    `json:"location"`
	Logo      *string   `json:"logo"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"created_at"`
}

func Charity(ch *models.Charity) CharitySummary {
	return CharitySummary{
		ID:        ch.ID,
		Name:      ch.Name,
		Category:  ch.Category,
		Location:  ch.Location,
		Logo:      ch.Logo,
		Link:      ch.Link,
		CreatedAt: ch.CreatedAt,
	}
}

func Charities(items []models.Charity) []CharitySummary {
	out := make([]CharitySummary, len(items))
	for i := range items {
		out[i] = Charity(&items[i])
	}
	return out
}
