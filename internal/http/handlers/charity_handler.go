package handlers

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/charity-platform/backend/internal/apperr"
	"github.com/charity-platform/backend/internal/http/dto"
	"github.com/charity-platform/backend/internal/models"
	"github.com/charity-platform/backend/internal/repositories"
	"github.com/charity-platform/backend/internal/serializers"
	"github.com/charity-platform/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CharityHandler struct {
	charityService *services.CharityService
	mediaDir       string
	log            *zap.Logger
}

func NewCharityHandler(charityService *services.CharityService, mediaDir string, log *zap.Logger) *CharityHandler {
	return &CharityHandler{charityService: charityService, mediaDir: mediaDir, log: log}
}

func (h *CharityHandler) List(c *fiber.Ctx) error {
	f := repositories.CharityFilter{
		Category: queryString(c, "category"),
		Location: queryString(c, "location"),
	}
	p := listParams(c)

	items, total, err := h.charityService.List(c.Context(), f, p)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return paginated(c, p.Page, total, serializers.Charities(items))
}

func (h *CharityHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "charity")
	if err != nil {
		return writeError(c, h.log, err)
	}
	ch, err := h.charityService.Get(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(serializers.Charity(ch))
}

// Create accepts JSON with a logo reference, or multipart form data with a
// logo file that is stored under the media dir. The route is admin-gated.
func (h *CharityHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCharityRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, h.log, apperr.Validation("", "invalid request body"))
	}

	logo := req.Logo
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		if fh, err := c.FormFile("logo"); err == nil {
			saved, err := h.saveLogo(c, fh)
			if err != nil {
				h.log.Error("logo upload failed", zap.Error(err))
				return writeError(c, h.log, apperr.Validation("logo", "could not store uploaded file"))
			}
			logo = &saved
		}
	}

	ch := &models.Charity{
		Name:     req.Name,
		Category: req.Category,
		Location: req.Location,
		Logo:     logo,
		Link:     req.Link,
	}

	if err := h.charityService.Create(c.Context(), ch); err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(serializers.Charity(ch))
}

func (h *CharityHandler) Update(c *fiber.Ctx) error {
	return h.update(c, true)
}

func (h *CharityHandler) PartialUpdate(c *fiber.Ctx) error {
	return h.update(c, false)
}

func (h *CharityHandler) update(c *fiber.Ctx, full bool) error {
	id, err := parseID(c, "charity")
	if err != nil {
		return writeError(c, h.log, err)
	}

	var req dto.UpdateCharityRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, h.log, apperr.Validation("", "invalid request body"))
	}
	if full {
		switch {
		case req.Name == nil:
			return writeError(c, h.log, apperr.Validation("name", "is required"))
		case req.Category == nil:
			return writeError(c, h.log, apperr.Validation("category", "is required"))
		}
	}

	ch, err := h.charityService.Update(c.Context(), id, services.CharityUpdate{
		Name:     req.Name,
		Category: req.Category,
		Location: req.Location,
		Logo:     req.Logo,
		Link:     req.Link,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(serializers.Charity(ch))
}

func (h *CharityHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "charity")
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.charityService.Delete(c.Context(), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// saveLogo stores the uploaded file under MEDIA_DIR/charity_logos and
// returns the relative path kept in the row.
func (h *CharityHandler) saveLogo(c *fiber.Ctx, fh *multipart.FileHeader) (string, error) {
	dir := filepath.Join(h.mediaDir, "charity_logos")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	rel := filepath.Join("charity_logos", uuid.New().String()+filepath.Ext(fh.Filename))
	if err := c.SaveFile(fh, filepath.Join(h.mediaDir, rel)); err != nil {
		return "", err
	}
	return rel, nil
}
