package handlers

import (
	"github.com/charity-platform/backend/internal/apperr"
	"github.com/charity-platform/backend/internal/http/dto"
	"github.com/charity-platform/backend/internal/models"
	"github.com/charity-platform/backend/internal/repositories"
	"github.com/charity-platform/backend/internal/serializers"
	"github.com/charity-platform/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type BeneficiaryHandler struct {
	beneficiaryService *services.BeneficiaryService
	log                *zap.Logger
}

func NewBeneficiaryHandler(beneficiaryService *services.BeneficiaryService, log *zap.Logger) *BeneficiaryHandler {
	return &BeneficiaryHandler{beneficiaryService: beneficiaryService, log: log}
}

func (h *BeneficiaryHandler) List(c *fiber.Ctx) error {
	f := repositories.BeneficiaryFilter{
		CampaignID:  queryInt64(c, "campaign", "campaign_id"),
		IsActive:    queryBool(c, "is_active"),
		DateOfBirth: queryDate(c, "date_of_birth"),
	}
	p := listParams(c)

	items, total, err := h.beneficiaryService.List(c.Context(), f, p)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return paginated(c, p.Page, total, serializers.Beneficiaries(items))
}

func (h *BeneficiaryHandler) Active(c *fiber.Ctx) error {
	p := listParams(c)
	items, total, err := h.beneficiaryService.ListActive(c.Context(), p)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return paginated(c, p.Page, total, serializers.Beneficiaries(items))
}

func (h *BeneficiaryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBeneficiaryRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, h.log, apperr.Validation("", "invalid request body"))
	}

	b := &models.Beneficiary{
		CampaignID:       req.Campaign,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		DateOfBirth:      req.DateOfBirth,
		NeedsDescription: req.NeedsDescription,
		AmountReceived:   string(req.AmountReceived),
		IsActive:         true,
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}

	if err := h.beneficiaryService.Create(c.Context(), b); err != nil {
		return writeError(c, h.log, err)
	}

	created, err := h.beneficiaryService.Get(c.Context(), b.ID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(serializers.Beneficiary(created))
}

// Get returns the detail shape, which for beneficiaries equals the summary
// since they own no children.
func (h *BeneficiaryHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "beneficiary")
	if err != nil {
		return writeError(c, h.log, err)
	}

	b, err := h.beneficiaryService.Get(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(serializers.Beneficiary(b))
}

func (h *BeneficiaryHandler) Update(c *fiber.Ctx) error {
	return h.update(c, true)
}

func (h *BeneficiaryHandler) PartialUpdate(c *fiber.Ctx) error {
	return h.update(c, false)
}

func (h *BeneficiaryHandler) update(c *fiber.Ctx, full bool) error {
	id, err := parseID(c, "beneficiary")
	if err != nil {
		return writeError(c, h.log, err)
	}

	var req dto.UpdateBeneficiaryRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, h.log, apperr.Validation("", "invalid request body"))
	}
	if full {
		switch {
		case req.Campaign == nil:
			return writeError(c, h.log, apperr.Validation("campaign", "is required"))
		case req.FirstName == nil:
			return writeError(c, h.log, apperr.Validation("first_name", "is required"))
		case req.LastName == nil:
			return writeError(c, h.log, apperr.Validation("last_name", "is required"))
		case req.NeedsDescription == nil:
			return writeError(c, h.log, apperr.Validation("needs_description", "is required"))
		}
	}

	upd := services.BeneficiaryUpdate{
		CampaignID:       req.Campaign,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		DateOfBirth:      req.DateOfBirth,
		NeedsDescription: req.NeedsDescription,
		IsActive:         req.IsActive,
	}
	if req.AmountReceived != nil {
		s := string(*req.AmountReceived)
		upd.AmountReceived = &s
	}

	b, err := h.beneficiaryService.Update(c.Context(), id, upd)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(serializers.Beneficiary(b))
}

func (h *BeneficiaryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "beneficiary")
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.beneficiaryService.Delete(c.Context(), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BeneficiaryHandler) UpdateAmountReceived(c *fiber.Ctx) error {
	id, err := parseID(c, "beneficiary")
	if err != nil {
		return writeError(c, h.log, err)
	}

	var req dto.UpdateAmountRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, h.log, apperr.Validation("", "invalid request body"))
	}

	b, err := h.beneficiaryService.UpdateAmountReceived(c.Context(), id, req.Amount)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(serializers.Beneficiary(b))
}
