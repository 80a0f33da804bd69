package repositories

import (
	"context"

	"github.com/charity-platform/backend/internal/apperr"
	"github.com/charity-platform/backend/internal/models"
	"github.com/charity-platform/backend/internal/query"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrganizationRepo struct {
	pool *pgxpool.Pool
}

func NewOrganizationRepo(pool *pgxpool.Pool) *OrganizationRepo {
	return &OrganizationRepo{pool: pool}
}

// campaign_count is computed per read, never stored.
const organizationColumns = `
	o.id, o.name, o.description, o.email, o.phone, o.address, o.website,
	o.registration_number, o.established_date, o.is_active, o.created_at, o.updated_at,
	(SELECT count(*) FROM campaigns c WHERE c.organization_id = o.id)`

func scanOrganization(row pgx.Row) (*models.Organization, error) {
	var o models.Organization
	err := row.Scan(&o.ID, &o.Name, &o.Description, &o.Email, &o.Phone, &o.Address,
		&o.Website, &o.RegistrationNumber, &o.EstablishedDate, &o.IsActive,
		&o.CreatedAt, &o.UpdatedAt, &o.CampaignCount)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrganizationRepo) Create(ctx context.Context, o *models.Organization) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO organizations (name, description, email, phone, address, website,
		       registration_number, established_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, o.Name, o.Description, o.Email, o.Phone, o.Address, o.Website,
		o.RegistrationNumber, o.EstablishedDate, o.IsActive,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	return translate(err, "organization")
}

func (r *OrganizationRepo) GetByID(ctx context.Context, id int64) (*models.Organization, error) {
	o, err := scanOrganization(r.pool.QueryRow(ctx, `
		SELECT `+organizationColumns+`
		FROM organizations o WHERE o.id = $1
	`, id))
	if err != nil {
		return nil, translate(err, "organization")
	}
	return o, nil
}

func (r *OrganizationRepo) Update(ctx context.Context, o *models.Organization) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE organizations SET name = $1, description = $2, email = $3, phone = $4,
		       address = $5, website = $6, registration_number = $7,
		       established_date = $8, is_active = $9, updated_at = now()
		WHERE id = $10
		RETURNING updated_at
	`, o.Name, o.Description, o.Email, o.Phone, o.Address, o.Website,
		o.RegistrationNumber, o.EstablishedDate, o.IsActive, o.ID,
	).Scan(&o.UpdatedAt)
	return translate(err, "organization")
}

// Delete removes the organization; campaigns and their beneficiaries go
// with it through the ON DELETE CASCADE chain in a single statement.
func (r *OrganizationRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM organizations WHERE id = $1`, id)
	if err != nil {
		return translate(err, "organization")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("organization")
	}
	return nil
}

type OrganizationFilter struct {
	IsActive        *bool
	EstablishedDate *models.Date
}

func (r *OrganizationRepo) List(ctx context.Context, f OrganizationFilter, p query.Params) ([]models.Organization, int, error) {
	var b query.Builder
	if f.IsActive != nil {
		b.Filter("o.is_active", *f.IsActive)
	}
	if f.EstablishedDate != nil {
		b.Filter("o.established_date", *f.EstablishedDate)
	}
	b.Search(p.Search, "o.name", "o.description", "o.email", "o.registration_number")
	where := b.WhereClause()

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM organizations o`+where, b.Args()...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := query.OrderClause(p.Ordering, map[string]string{
		"name":             "o.name",
		"created_at":       "o.created_at",
		"established_date": "o.established_date",
	}, "o.created_at DESC")

	rows, err := r.pool.Query(ctx, `
		SELECT `+organizationColumns+`
		FROM organizations o`+where+order+b.PageClause(p.Page), b.Args()...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orgs := []models.Organization{}
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, 0, err
		}
		orgs = append(orgs, *o)
	}
	return orgs, total, rows.Err()
}
