package handlers

import (
	"strconv"

	"github.com/charity-platform/backend/internal/apperr"
	"github.com/charity-platform/backend/internal/http/dto"
	"github.com/charity-platform/backend/internal/models"
	"github.com/charity-platform/backend/internal/query"
	"github.com/charity-platform/backend/internal/serializers"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// writeError maps an error kind to its status code. Anything untyped is a
// 500 with only a generic body.
func writeError(c *fiber.Ctx, log *zap.Logger, err error) error {
	if e := apperr.From(err); e != nil {
		status := fiber.StatusBadRequest
		switch e.Kind {
		case apperr.KindNotFound:
			status = fiber.StatusNotFound
		case apperr.KindPermissionDenied:
			status = fiber.StatusForbidden
		}
		return c.Status(status).JSON(dto.ErrorResponse{Error: e.Message, Field: e.Field})
	}
	log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
}

// parseID reads the :id route parameter. A malformed id cannot name any
// row, so it reads as not-found rather than a validation error.
func parseID(c *fiber.Ctx, resource string) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.NotFound(resource)
	}
	return id, nil
}

func listParams(c *fiber.Ctx) query.Params {
	return query.Params{
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
		Page:     query.ParsePage(c.Query("page")),
	}
}

// paginated writes the list envelope; adjacent-page links are derived from
// the request URL itself.
func paginated(c *fiber.Ctx, page, count int, results any) error {
	requestURL := c.BaseURL() + c.OriginalURL()
	return c.JSON(serializers.NewPage(requestURL, page, count, results))
}

// Optional query-parameter readers. Unrecognized or unparseable values are
// ignored, never errors.

func queryBool(c *fiber.Ctx, name string) *bool {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

func queryInt64(c *fiber.Ctx, names ...string) *int64 {
	for _, name := range names {
		v := c.Query(name)
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		return &n
	}
	return nil
}

func queryString(c *fiber.Ctx, name string) *string {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	return &v
}

func queryDate(c *fiber.Ctx, name string) *models.Date {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	d, err := models.ParseDate(v)
	if err != nil {
		return nil
	}
	return &d
}
