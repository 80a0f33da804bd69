package services

import (
	"context"

	"github.com/charity-platform/backend/internal/apperr"
	"github.com/charity-platform/backend/internal/models"
	"github.com/charity-platform/backend/internal/query"
	"github.com/charity-platform/backend/internal/repositories"
	"go.uber.org/zap"
)

type CampaignService struct {
	campaignRepo    *repositories.CampaignRepo
	beneficiaryRepo *repositories.BeneficiaryRepo
	log             *zap.Logger
}

func NewCampaignService(
	campaignRepo *repositories.CampaignRepo,
	beneficiaryRepo *repositories.BeneficiaryRepo,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{campaignRepo: campaignRepo, beneficiaryRepo: beneficiaryRepo, log: log}
}

func validateCampaign(c *models.Campaign) error {
	if c.OrganizationID <= 0 {
		return apperr.Validation("organization", "is required")
	}
	if err := checkRequired("title", c.Title); err != nil {
		return err
	}
	if err := checkRequired("description", c.Description); err != nil {
		return err
	}
	if err := checkAmount("goal_amount", c.GoalAmount); err != nil {
		return err
	}
	if err := checkAmount("raised_amount", c.RaisedAmount); err != nil {
		return err
	}
	if !models.IsValidCampaignStatus(c.Status) {
		return apperr.Validation("status", "must be one of planning, active, completed, cancelled")
	}
	if c.StartDate.IsZero() {
		return apperr.Validation("start_date", "is required")
	}
	if c.EndDate.IsZero() {
		return apperr.Validation("end_date", "is required")
	}
	if c.EndDate.Before(c.StartDate.Time) {
		return apperr.Validation("end_date", "end date must not precede start date")
	}
	return nil
}

func (s *CampaignService) Create(ctx context.Context, c *models.Campaign) error {
	if c.Status == "" {
		c.Status = models.CampaignStatusPlanning
	}
	if c.RaisedAmount == "" {
		c.RaisedAmount = "0"
	}
	if err := validateCampaign(c); err != nil {
		return err
	}
	if err := s.campaignRepo.Create(ctx, c); err != nil {
		return err
	}
	s.log.Info("campaign created",
		zap.Int64("id", c.ID),
		zap.Int64("organization_id", c.OrganizationID),
		zap.String("title", c.Title))
	return nil
}

func (s *CampaignService) Get(ctx context.Context, id int64) (*models.Campaign, error) {
	return s.campaignRepo.GetByID(ctx, id)
}

func (s *CampaignService) GetDetail(ctx context.Context, id int64) (*models.Campaign, []models.Beneficiary, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	beneficiaries, err := s.beneficiaryRepo.ListByCampaign(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return c, beneficiaries, nil
}

func (s *CampaignService) List(ctx context.Context, f repositories.CampaignFilter, p query.Params) ([]models.Campaign, int, error) {
	return s.campaignRepo.List(ctx, f, p)
}

// ListActive is the list operation with the filter pinned to active status.
func (s *CampaignService) ListActive(ctx context.Context, p query.Params) ([]models.Campaign, int, error) {
	status := models.CampaignStatusActive
	return s.campaignRepo.List(ctx, repositories.CampaignFilter{Status: &status}, p)
}

func (s *CampaignService) Beneficiaries(ctx context.Context, id int64) ([]models.Beneficiary, error) {
	if _, err := s.campaignRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.beneficiaryRepo.ListByCampaign(ctx, id)
}

type CampaignUpdate struct {
	OrganizationID *int64
	Title          *string
	Description    *string
	GoalAmount     *string
	RaisedAmount   *string
	Status         *string
	StartDate      *models.Date
	EndDate        *models.Date
	Location       *string
}

func (s *CampaignService) Update(ctx context.Context, id int64, u CampaignUpdate) (*models.Campaign, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if u.OrganizationID != nil {
		c.OrganizationID = *u.OrganizationID
	}
	if u.Title != nil {
		c.Title = *u.Title
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.GoalAmount != nil {
		c.GoalAmount = *u.GoalAmount
	}
	if u.RaisedAmount != nil {
		c.RaisedAmount = *u.RaisedAmount
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
	if u.StartDate != nil {
		c.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		c.EndDate = *u.EndDate
	}
	if u.Location != nil {
		c.Location = *u.Location
	}

	if err := validateCampaign(c); err != nil {
		return nil, err
	}
	if err := s.campaignRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	// re-read so denormalized fields reflect a possible new parent
	return s.campaignRepo.GetByID(ctx, id)
}

func (s *CampaignService) Delete(ctx context.Context, id int64) error {
	if err := s.campaignRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("campaign deleted", zap.Int64("id", id))
	return nil
}

// UpdateRaisedAmount applies a validated, non-negative increment to
// raised_amount. The add happens inside the store, so concurrent calls on
// the same campaign all land.
func (s *CampaignService) UpdateRaisedAmount(ctx context.Context, id int64, rawAmount any) (*models.Campaign, error) {
	amount, err := NormalizeAmount(rawAmount)
	if err != nil {
		return nil, err
	}
	if err := s.campaignRepo.IncrementRaised(ctx, id, amount); err != nil {
		return nil, err
	}
	s.log.Info("campaign raised amount incremented",
		zap.Int64("id", id), zap.String("amount", amount))
	return s.campaignRepo.GetByID(ctx, id)
}
