package repositories

import (
	"context"

	"github.com/charity-platform/backend/internal/apperr"
	"github.com/charity-platform/backend/internal/models"
	"github.com/charity-platform/backend/internal/query"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CharityRepo struct {
	pool *pgxpool.Pool
}

func NewCharityRepo(pool *pgxpool.Pool) *CharityRepo {
	return &CharityRepo{pool: pool}
}

const charityColumns = `ch.id, ch.name, ch.category, ch.location, ch.logo, ch.link, ch.created_at`

func scanCharity(row pgx.Row) (*models.Charity, error) {
	var ch models.Charity
	err := row.Scan(&ch.ID, &ch.Name, &ch.Category, &ch.Location, &ch.Logo,
		&ch.Link, &ch.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func (r *CharityRepo) Create(ctx context.Context, ch *models.Charity) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO charities (name, category, location, logo, link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, ch.Name, ch.Category, ch.Location, ch.Logo, ch.Link,
	).Scan(&ch.ID, &ch.CreatedAt)
	return translate(err, "charity")
}

func (r *CharityRepo) GetByID(ctx context.Context, id int64) (*models.Charity, error) {
	ch, err := scanCharity(r.pool.QueryRow(ctx, `
		SELECT `+charityColumns+` FROM charities ch WHERE ch.id = $1
	`, id))
	if err != nil {
		return nil, translate(err, "charity")
	}
	return ch, nil
}

func (r *CharityRepo) Update(ctx context.Context, ch *models.Charity) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE charities SET name = $1, category = $2, location = $3, logo = $4, link = $5
		WHERE id = $6
	`, ch.Name, ch.Category, ch.Location, ch.Logo, ch.Link, ch.ID)
	if err != nil {
		return translate(err, "charity")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("charity")
	}
	return nil
}

func (r *CharityRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM charities WHERE id = $1`, id)
	if err != nil {
		return translate(err, "charity")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("charity")
	}
	return nil
}

type CharityFilter struct {
	Category *string
	Location *string
}

func (r *CharityRepo) List(ctx context.Context, f CharityFilter, p query.Params) ([]models.Charity, int, error) {
	var b query.Builder
	if f.Category != nil {
		b.Filter("ch.category", *f.Category)
	}
	if f.Location != nil {
		b.Filter("ch.location", *f.Location)
	}
	b.Search(p.Search, "ch.name", "ch.category", "ch.location")
	where := b.WhereClause()

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM charities ch`+where, b.Args()...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := query.OrderClause(p.Ordering, map[string]string{
		"created_at": "ch.created_at",
		"name":       "ch.name",
		"category":   "ch.category",
	}, "ch.created_at DESC")

	rows, err := r.pool.Query(ctx, `
		SELECT `+charityColumns+` FROM charities ch`+where+order+b.PageClause(p.Page), b.Args()...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	charities := []models.Charity{}
	for rows.Next() {
		ch, err := scanCharity(rows)
		if err != nil {
			return nil, 0, err
		}
		charities = append(charities, *ch)
	}
	return charities, total, rows.Err()
}
