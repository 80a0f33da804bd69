package services

import (
	"context"

	"github.com/charity-platform/backend/internal/apperr"
	"github.com/charity-platform/backend/internal/models"
	"github.com/charity-platform/backend/internal/query"
	"github.com/charity-platform/backend/internal/repositories"
	"go.uber.org/zap"
)

type CharityService struct {
	charityRepo *repositories.CharityRepo
	log         *zap.Logger
}

func NewCharityService(charityRepo *repositories.CharityRepo, log *zap.Logger) *CharityService {
	return &CharityService{charityRepo: charityRepo, log: log}
}

func validateCharity(ch *models.Charity) error {
	if err := checkRequired("name", ch.Name); err != nil {
		return err
	}
	if !models.IsValidCharityCategory(ch.Category) {
		return apperr.Validation("category", "must be one of education, health, women_support, other")
	}
	return checkURL("link", ch.Link)
}

func (s *CharityService) Create(ctx context.Context, ch *models.Charity) error {
	if err := validateCharity(ch); err != nil {
		return err
	}
	if err := s.charityRepo.Create(ctx, ch); err != nil {
		return err
	}
	s.log.Info("charity created", zap.Int64("id", ch.ID), zap.String("name", ch.Name))
	return nil
}

func (s *CharityService) Get(ctx context.Context, id int64) (*models.Charity, error) {
	return s.charityRepo.GetByID(ctx, id)
}

func (s *CharityService) List(ctx context.Context, f repositories.CharityFilter, p query.Params) ([]models.Charity, int, error) {
	return s.charityRepo.List(ctx, f, p)
}

type CharityUpdate struct {
	Name     *string
	Category *string
	Location *string
	Logo     *string
	Link     *string
}

func (s *CharityService) Update(ctx context.Context, id int64, u CharityUpdate) (*models.Charity, error) {
	ch, err := s.charityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if u.Name != nil {
		ch.Name = *u.Name
	}
	if u.Category != nil {
		ch.Category = *u.Category
	}
	if u.Location != nil {
		ch.Location = *u.Location
	}
	if u.Logo != nil {
		ch.Logo = u.Logo
	}
	if u.Link != nil {
		ch.Link = *u.Link
	}

	if err := validateCharity(ch); err != nil {
		return nil, err
	}
	if err := s.charityRepo.Update(ctx, ch); err != nil {
		return nil, err
	}
	return ch, nil
}

func (s *CharityService) Delete(ctx context.Context, id int64) error {
	if err := s.charityRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("charity deleted", zap.Int64("id", id))
	return nil
}
