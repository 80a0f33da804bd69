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

type CampaignHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, log: log}
}

func (h *CampaignHandler) List(c *fiber.Ctx) error {
	f := repositories.CampaignFilter{
		Status: queryString(c, "status"),
		// the public parameter is "organization"; the column name works too
		OrganizationID: queryInt64(c, "organization", "organization_id"),
		StartDate:      queryDate(c, "start_date"),
		EndDate:        queryDate(c, "end_date"),
	}
	p := listParams(c)

	campaigns, total, err := h.campaignService.List(c.Context(), f, p)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return paginated(c, p.Page, total, serializers.Campaigns(campaigns))
}

func (h *CampaignHandler) Active(c *fiber.Ctx) error {
	p := listParams(c)
	campaigns, total, err := h.campaignService.ListActive(c.Context(), p)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return paginated(c, p.Page, total, serializers.Campaigns(campaigns))
}

func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, h.log, apperr.Validation("", "invalid request body"))
	}

	campaign := &models.Campaign{
		OrganizationID: req.Organization,
		Title:          req.Title,
		Description:    req.Description,
		GoalAmount:     string(req.GoalAmount),
		RaisedAmount:   string(req.RaisedAmount),
		Status:         req.Status,
		Location:       req.Location,
	}
	if req.StartDate != nil {
		campaign.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		campaign.EndDate = *req.EndDate
	}

	if err := h.campaignService.Create(c.Context(), campaign); err != nil {
		return writeError(c, h.log, err)
	}

	// created via the plain insert; fetch the joined shape for the response
	created, err := h.campaignService.Get(c.Context(), campaign.ID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(serializers.Campaign(created))
}

// Get returns the detail shape: the campaign plus its beneficiaries.
func (h *CampaignHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "campaign")
	if err != nil {
		return writeError(c, h.log, err)
	}

	campaign, beneficiaries, err := h.campaignService.GetDetail(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(serializers.CampaignWithBeneficiaries(campaign, beneficiaries))
}

func (h *CampaignHandler) Update(c *fiber.Ctx) error {
	return h.update(c, true)
}

func (h *CampaignHandler) PartialUpdate(c *fiber.Ctx) error {
	return h.update(c, false)
}

func (h *CampaignHandler) update(c *fiber.Ctx, full bool) error {
	id, err := parseID(c, "campaign")
	if err != nil {
		return writeError(c, h.log, err)
	}

	var req dto.UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, h.log, apperr.Validation("", "invalid request body"))
	}
	if full {
		switch {
		case req.Organization == nil:
			return writeError(c, h.log, apperr.Validation("organization", "is required"))
		case req.Title == nil:
			return writeError(c, h.log, apperr.Validation("title", "is required"))
		case req.Description == nil:
			return writeError(c, h.log, apperr.Validation("description", "is required"))
		case req.GoalAmount == nil:
			return writeError(c, h.log, apperr.Validation("goal_amount", "is required"))
		case req.StartDate == nil:
			return writeError(c, h.log, apperr.Validation("start_date", "is required"))
		case req.EndDate == nil:
			return writeError(c, h.log, apperr.Validation("end_date", "is required"))
		}
	}

	upd := services.CampaignUpdate{
		OrganizationID: req.Organization,
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Location:       req.Location,
	}
	if req.GoalAmount != nil {
		s := string(*req.GoalAmount)
		upd.GoalAmount = &s
	}
	if req.RaisedAmount != nil {
		s := string(*req.RaisedAmount)
		upd.RaisedAmount = &s
	}

	campaign, err := h.campaignService.Update(c.Context(), id, upd)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(serializers.Campaign(campaign))
}

func (h *CampaignHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "campaign")
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.campaignService.Delete(c.Context(), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Beneficiaries lists the campaign's beneficiaries in summary shape,
// without pagination.
func (h *CampaignHandler) Beneficiaries(c *fiber.Ctx) error {
	id, err := parseID(c, "campaign")
	if err != nil {
		return writeError(c, h.log, err)
	}
	beneficiaries, err := h.campaignService.Beneficiaries(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(serializers.Beneficiaries(beneficiaries))
}

// UpdateRaisedAmount applies the increment action and returns the updated
// summary.
func (h *CampaignHandler) UpdateRaisedAmount(c *fiber.Ctx) error {
	id, err := parseID(c, "campaign")
	if err != nil {
		return writeError(c, h.log, err)
	}

	var req dto.UpdateAmountRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, h.log, apperr.Validation("", "invalid request body"))
	}

	campaign, err := h.campaignService.UpdateRaisedAmount(c.Context(), id, req.Amount)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(serializers.Campaign(campaign))
}
