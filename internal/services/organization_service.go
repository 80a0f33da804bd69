package services

import (
	"context"

	"github.com/charity-platform/backend/internal/models"
	"github.com/charity-platform/backend/internal/query"
	"github.com/charity-platform/backend/internal/repositories"
	"go.uber.org/zap"
)

type OrganizationService struct {
	orgRepo      *repositories.OrganizationRepo
	campaignRepo *repositories.CampaignRepo
	log          *zap.Logger
}

func NewOrganizationService(
	orgRepo *repositories.OrganizationRepo,
	campaignRepo *repositories.CampaignRepo,
	log *zap.Logger,
) *OrganizationService {
	return &OrganizationService{orgRepo: orgRepo, campaignRepo: campaignRepo, log: log}
}

func validateOrganization(o *models.Organization) error {
	if err := checkRequired("name", o.Name); err != nil {
		return err
	}
	if err := checkEmail("email", o.Email, true); err != nil {
		return err
	}
	return checkURL("website", o.Website)
}

func (s *OrganizationService) Create(ctx context.Context, o *models.Organization) error {
	if err := validateOrganization(o); err != nil {
		return err
	}
	if err := s.orgRepo.Create(ctx, o); err != nil {
		return err
	}
	s.log.Info("organization created", zap.Int64("id", o.ID), zap.String("name", o.Name))
	return nil
}

func (s *OrganizationService) Get(ctx context.Context, id int64) (*models.Organization, error) {
	return s.orgRepo.GetByID(ctx, id)
}

// GetDetail loads the organization together with its campaigns for the
// nested retrieve shape.
func (s *OrganizationService) GetDetail(ctx context.Context, id int64) (*models.Organization, []models.Campaign, error) {
	o, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	campaigns, err := s.campaignRepo.ListByOrganization(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return o, campaigns, nil
}

func (s *OrganizationService) List(ctx context.Context, f repositories.OrganizationFilter, p query.Params) ([]models.Organization, int, error) {
	return s.orgRepo.List(ctx, f, p)
}

// ListActive is the list operation with the filter pinned to is_active.
func (s *OrganizationService) ListActive(ctx context.Context, p query.Params) ([]models.Organization, int, error) {
	active := true
	return s.orgRepo.List(ctx, repositories.OrganizationFilter{IsActive: &active}, p)
}

// Campaigns returns all campaigns of the organization. The parent must
// exist; an unknown id is a not-found, not an empty list.
func (s *OrganizationService) Campaigns(ctx context.Context, id int64) ([]models.Campaign, error) {
	if _, err := s.orgRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.campaignRepo.ListByOrganization(ctx, id)
}

// OrganizationUpdate carries the fields of a full or partial update. Nil
// means "leave unchanged"; the merged result is validated, not the delta.
type OrganizationUpdate struct {
	Name               *string
	Description        *string
	Email              *string
	Phone              *string
	Address            *string
	Website            *string
	RegistrationNumber *string
	EstablishedDate    *models.Date
	IsActive           *bool
}

func (s *OrganizationService) Update(ctx context.Context, id int64, u OrganizationUpdate) (*models.Organization, error) {
	o, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if u.Name != nil {
		o.Name = *u.Name
	}
	if u.Description != nil {
		o.Description = *u.Description
	}
	if u.Email != nil {
		o.Email = *u.Email
	}
	if u.Phone != nil {
		o.Phone = *u.Phone
	}
	if u.Address != nil {
		o.Address = *u.Address
	}
	if u.Website != nil {
		o.Website = *u.Website
	}
	if u.RegistrationNumber != nil {
		o.RegistrationNumber = u.RegistrationNumber
	}
	if u.EstablishedDate != nil {
		o.EstablishedDate = u.EstablishedDate
	}
	if u.IsActive != nil {
		o.IsActive = *u.IsActive
	}

	if err := validateOrganization(o); err != nil {
		return nil, err
	}
	if err := s.orgRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrganizationService) Delete(ctx context.Context, id int64) error {
	if err := s.orgRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("organization deleted", zap.Int64("id", id))
	return nil
}
