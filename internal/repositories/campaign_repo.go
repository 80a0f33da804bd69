package repositories

import (
	"context"

	"github.com/charity-platform/backend/internal/apperr"
	"github.com/charity-platform/backend/internal/models"
	"github.com/charity-platform/backend/internal/query"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

// Amounts are selected as text so numeric scale survives the round trip.
// organization_name and beneficiary_count are read-time joins.
const campaignColumns = `
	c.id, c.organization_id, c.title, c.description,
	c.goal_amount::text, c.raised_amount::text, c.status,
	c.start_date, c.end_date, c.location, c.created_at, c.updated_at,
	o.name,
	(SELECT count(*) FROM beneficiaries b WHERE b.campaign_id = c.id)`

const campaignFrom = ` FROM campaigns c JOIN organizations o ON o.id = c.organization_id`

func scanCampaign(row pgx.Row) (*models.Campaign, error) {
	var c models.Campaign
	err := row.Scan(&c.ID, &c.OrganizationID, &c.Title, &c.Description,
		&c.GoalAmount, &c.RaisedAmount, &c.Status,
		&c.StartDate, &c.EndDate, &c.Location, &c.CreatedAt, &c.UpdatedAt,
		&c.OrganizationName, &c.BeneficiaryCount)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (organization_id, title, description, goal_amount,
		       raised_amount, status, start_date, end_date, location)
		VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6, $7, $8, $9)
		RETURNING id, goal_amount::text, raised_amount::text, created_at, updated_at
	`, c.OrganizationID, c.Title, c.Description, c.GoalAmount,
		c.RaisedAmount, c.Status, c.StartDate, c.EndDate, c.Location,
	).Scan(&c.ID, &c.GoalAmount, &c.RaisedAmount, &c.CreatedAt, &c.UpdatedAt)
	return translate(err, "campaign")
}

func (r *CampaignRepo) GetByID(ctx context.Context, id int64) (*models.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `
		SELECT `+campaignColumns+campaignFrom+` WHERE c.id = $1
	`, id))
	if err != nil {
		return nil, translate(err, "campaign")
	}
	return c, nil
}

func (r *CampaignRepo) Update(ctx context.Context, c *models.Campaign) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE campaigns SET organization_id = $1, title = $2, description = $3,
		       goal_amount = $4::numeric, raised_amount = $5::numeric, status = $6,
		       start_date = $7, end_date = $8, location = $9, updated_at = now()
		WHERE id = $10
		RETURNING goal_amount::text, raised_amount::text, updated_at
	`, c.OrganizationID, c.Title, c.Description, c.GoalAmount, c.RaisedAmount,
		c.Status, c.StartDate, c.EndDate, c.Location, c.ID,
	).Scan(&c.GoalAmount, &c.RaisedAmount, &c.UpdatedAt)
	return translate(err, "campaign")
}

func (r *CampaignRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return translate(err, "campaign")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("campaign")
	}
	return nil
}

// IncrementRaised adds amount to raised_amount in a single statement, so
// concurrent increments on the same row cannot lose updates. amount must
// already be validated as a non-negative decimal string.
func (r *CampaignRepo) IncrementRaised(ctx context.Context, id int64, amount string) error {
	var updated int64
	err := r.pool.QueryRow(ctx, `
		UPDATE campaigns SET raised_amount = raised_amount + $1::numeric, updated_at = now()
		WHERE id = $2
		RETURNING id
	`, amount, id).Scan(&updated)
	return translate(err, "campaign")
}

type CampaignFilter struct {
	Status         *string
	OrganizationID *int64
	StartDate      *models.Date
	EndDate        *models.Date
}

func (r *CampaignRepo) List(ctx context.Context, f CampaignFilter, p query.Params) ([]models.Campaign, int, error) {
	var b query.Builder
	if f.Status != nil {
		b.Filter("c.status", *f.Status)
	}
	if f.OrganizationID != nil {
		b.Filter("c.organization_id", *f.OrganizationID)
	}
	if f.StartDate != nil {
		b.Filter("c.start_date", *f.StartDate)
	}
	if f.EndDate != nil {
		b.Filter("c.end_date", *f.EndDate)
	}
	b.Search(p.Search, "c.title", "c.description", "c.location", "o.name")
	where := b.WhereClause()

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*)`+campaignFrom+where, b.Args()...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := query.OrderClause(p.Ordering, map[string]string{
		"title":         "c.title",
		"created_at":    "c.created_at",
		"start_date":    "c.start_date",
		"end_date":      "c.end_date",
		"goal_amount":   "c.goal_amount",
		"raised_amount": "c.raised_amount",
	}, "c.created_at DESC")

	rows, err := r.pool.Query(ctx, `
		SELECT `+campaignColumns+campaignFrom+where+order+b.PageClause(p.Page), b.Args()...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	campaigns, err := collectCampaigns(rows)
	if err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}

// ListByOrganization returns every campaign owned by the organization,
// newest first, without pagination.
func (r *CampaignRepo) ListByOrganization(ctx context.Context, orgID int64) ([]models.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+campaignColumns+campaignFrom+`
		WHERE c.organization_id = $1
		ORDER BY c.created_at DESC
	`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCampaigns(rows)
}

func collectCampaigns(rows pgx.Rows) ([]models.Campaign, error) {
	campaigns := []models.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, *c)
	}
	return campaigns, rows.Err()
}
