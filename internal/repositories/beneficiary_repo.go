package repositories

import (
	"context"

	"github.com/charity-platform/backend/internal/apperr"
	"github.com/charity-platform/backend/internal/models"
	"github.com/charity-platform/backend/internal/query"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BeneficiaryRepo struct {
	pool *pgxpool.Pool
}

func NewBeneficiaryRepo(pool *pgxpool.Pool) *BeneficiaryRepo {
	return &BeneficiaryRepo{pool: pool}
}

const beneficiaryColumns = `
	b.id, b.campaign_id, b.first_name, b.last_name, b.email, b.phone, b.address,
	b.date_of_birth, b.needs_description, b.amount_received::text, b.is_active,
	b.created_at, b.updated_at,
	c.title`

const beneficiaryFrom = ` FROM beneficiaries b JOIN campaigns c ON c.id = b.campaign_id`

func scanBeneficiary(row pgx.Row) (*models.Beneficiary, error) {
	var b models.Beneficiary
	err := row.Scan(&b.ID, &b.CampaignID, &b.FirstName, &b.LastName, &b.Email,
		&b.Phone, &b.Address, &b.DateOfBirth, &b.NeedsDescription,
		&b.AmountReceived, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
		&b.CampaignTitle)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BeneficiaryRepo) Create(ctx context.Context, b *models.Beneficiary) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO beneficiaries (campaign_id, first_name, last_name, email, phone,
		       address, date_of_birth, needs_description, amount_received, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::numeric, $10)
		RETURNING id, amount_received::text, created_at, updated_at
	`, b.CampaignID, b.FirstName, b.LastName, b.Email, b.Phone,
		b.Address, b.DateOfBirth, b.NeedsDescription, b.AmountReceived, b.IsActive,
	).Scan(&b.ID, &b.AmountReceived, &b.CreatedAt, &b.UpdatedAt)
	return translate(err, "beneficiary")
}

func (r *BeneficiaryRepo) GetByID(ctx context.Context, id int64) (*models.Beneficiary, error) {
	b, err := scanBeneficiary(r.pool.QueryRow(ctx, `
		SELECT `+beneficiaryColumns+beneficiaryFrom+` WHERE b.id = $1
	`, id))
	if err != nil {
		return nil, translate(err, "beneficiary")
	}
	return b, nil
}

func (r *BeneficiaryRepo) Update(ctx context.Context, b *models.Beneficiary) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE beneficiaries SET campaign_id = $1, first_name = $2, last_name = $3,
		       email = $4, phone = $5, address = $6, date_of_birth = $7,
		       needs_description = $8, amount_received = $9::numeric, is_active = $10,
		       updated_at = now()
		WHERE id = $11
		RETURNING amount_received::text, updated_at
	`, b.CampaignID, b.FirstName, b.LastName, b.Email, b.Phone, b.Address,
		b.DateOfBirth, b.NeedsDescription, b.AmountReceived, b.IsActive, b.ID,
	).Scan(&b.AmountReceived, &b.UpdatedAt)
	return translate(err, "beneficiary")
}

func (r *BeneficiaryRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM beneficiaries WHERE id = $1`, id)
	if err != nil {
		return translate(err, "beneficiary")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("beneficiary")
	}
	return nil
}

// IncrementReceived adds amount to amount_received in a single statement;
// see CampaignRepo.IncrementRaised for the concurrency contract.
func (r *BeneficiaryRepo) IncrementReceived(ctx context.Context, id int64, amount string) error {
	var updated int64
	err := r.pool.QueryRow(ctx, `
		UPDATE beneficiaries SET amount_received = amount_received + $1::numeric, updated_at = now()
		WHERE id = $2
		RETURNING id
	`, amount, id).Scan(&updated)
	return translate(err, "beneficiary")
}

type BeneficiaryFilter struct {
	CampaignID  *int64
	IsActive    *bool
	DateOfBirth *models.Date
}

func (r *BeneficiaryRepo) List(ctx context.Context, f BeneficiaryFilter, p query.Params) ([]models.Beneficiary, int, error) {
	var b query.Builder
	if f.CampaignID != nil {
		b.Filter("b.campaign_id", *f.CampaignID)
	}
	if f.IsActive != nil {
		b.Filter("b.is_active", *f.IsActive)
	}
	if f.DateOfBirth != nil {
		b.Filter("b.date_of_birth", *f.DateOfBirth)
	}
	b.Search(p.Search, "b.first_name", "b.last_name", "b.email", "b.needs_description", "c.title")
	where := b.WhereClause()

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*)`+beneficiaryFrom+where, b.Args()...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := query.OrderClause(p.Ordering, map[string]string{
		"first_name":      "b.first_name",
		"last_name":       "b.last_name",
		"created_at":      "b.created_at",
		"amount_received": "b.amount_received",
	}, "b.created_at DESC")

	rows, err := r.pool.Query(ctx, `
		SELECT `+beneficiaryColumns+beneficiaryFrom+where+order+b.PageClause(p.Page), b.Args()...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items, err := collectBeneficiaries(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListByCampaign returns every beneficiary of the campaign, newest first,
// without pagination.
func (r *BeneficiaryRepo) ListByCampaign(ctx context.Context, campaignID int64) ([]models.Beneficiary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+beneficiaryColumns+beneficiaryFrom+`
		WHERE b.campaign_id = $1
		ORDER BY b.created_at DESC
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBeneficiaries(rows)
}

func collectBeneficiaries(rows pgx.Rows) ([]models.Beneficiary, error) {
	items := []models.Beneficiary{}
	for rows.Next() {
		b, err := scanBeneficiary(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}
