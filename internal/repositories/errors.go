package repositories

import (
	"errors"

	"github.com/charity-platform/backend/internal/apperr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// constraintFields maps schema constraint names to the API field they guard.
var constraintFields = map[string]string{
	"organizations_name_key":                "name",
	"organizations_registration_number_key": "registration_number",
	"campaigns_organization_id_fkey":        "organization",
	"beneficiaries_campaign_id_fkey":        "campaign",
}

// translate converts store-level failures into the API's error kinds.
// Anything it does not recognize passes through for the 500 path.
func translate(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		field := constraintFields[pgErr.ConstraintName]
		switch pgErr.Code {
		case "23505": // unique_violation
			return apperr.Validation(field, "must be unique")
		case "23503": // foreign_key_violation
			return apperr.Reference(field, "referenced row does not exist")
		case "23514": // check_violation
			return apperr.Validation(field, "violates a field constraint")
		}
	}
	return err
}
