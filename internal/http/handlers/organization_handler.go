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

type OrganizationHandler struct {
	orgService *services.OrganizationService
	log        *zap.Logger
}

func NewOrganizationHandler(orgService *services.OrganizationService, log *zap.Logger) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService, log: log}
}

func (h *OrganizationHandler) List(c *fiber.Ctx) error {
	f := repositories.OrganizationFilter{
		IsActive:        queryBool(c, "is_active"),
		EstablishedDate: queryDate(c, "established_date"),
	}
	p := listParams(c)

	orgs, total, err := h.orgService.List(c.Context(), f, p)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return paginated(c, p.Page, total, serializers.Organizations(orgs))
}

func (h *OrganizationHandler) Active(c *fiber.Ctx) error {
	p := listParams(c)
	orgs, total, err := h.orgService.ListActive(c.Context(), p)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return paginated(c, p.Page, total, serializers.Organizations(orgs))
}

func (h *OrganizationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, h.log, apperr.Validation("", "invalid request body"))
	}

	o := &models.Organization{
		Name:               req.Name,
		Description:        req.Description,
		Email:              req.Email,
		Phone:              req.Phone,
		Address:            req.Address,
		Website:            req.Website,
		RegistrationNumber: req.RegistrationNumber,
		EstablishedDate:    req.EstablishedDate,
		IsActive:           true,
	}
	if req.IsActive != nil {
		o.IsActive = *req.IsActive
	}

	if err := h.orgService.Create(c.Context(), o); err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(serializers.Organization(o))
}

// Get returns the detail shape: the organization plus its campaigns.
func (h *OrganizationHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "organization")
	if err != nil {
		return writeError(c, h.log, err)
	}

	o, campaigns, err := h.orgService.GetDetail(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(serializers.OrganizationWithCampaigns(o, campaigns))
}

func (h *OrganizationHandler) Update(c *fiber.Ctx) error {
	return h.update(c, true)
}

func (h *OrganizationHandler) PartialUpdate(c *fiber.Ctx) error {
	return h.update(c, false)
}

func (h *OrganizationHandler) update(c *fiber.Ctx, full bool) error {
	id, err := parseID(c, "organization")
	if err != nil {
		return writeError(c, h.log, err)
	}

	var req dto.UpdateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, h.log, apperr.Validation("", "invalid request body"))
	}
	if full {
		if req.Name == nil {
			return writeError(c, h.log, apperr.Validation("name", "is required"))
		}
		if req.Email == nil {
			return writeError(c, h.log, apperr.Validation("email", "is required"))
		}
	}

	o, err := h.orgService.Update(c.Context(), id, services.OrganizationUpdate{
		Name:               req.Name,
		Description:        req.Description,
		Email:              req.Email,
		Phone:              req.Phone,
		Address:            req.Address,
		Website:            req.Website,
		RegistrationNumber: req.RegistrationNumber,
		EstablishedDate:    req.EstablishedDate,
		IsActive:           req.IsActive,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(serializers.Organization(o))
}

func (h *OrganizationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "organization")
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.orgService.Delete(c.Context(), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Campaigns lists the organization's campaigns in summary shape, without
// pagination.
func (h *OrganizationHandler) Campaigns(c *fiber.Ctx) error {
	id, err := parseID(c, "organization")
	if err != nil {
		return writeError(c, h.log, err)
	}
	campaigns, err := h.orgService.Campaigns(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(serializers.Campaigns(campaigns))
}
