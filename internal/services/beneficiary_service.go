package services

import (
	"context"

	"github.com/charity-platform/backend/internal/apperr"
	"github.com/charity-platform/backend/internal/models"
	"github.com/charity-platform/backend/internal/query"
	"github.com/charity-platform/backend/internal/repositories"
	"go.uber.org/zap"
)

type BeneficiaryService struct {
	beneficiaryRepo *repositories.BeneficiaryRepo
	log             *zap.Logger
}

func NewBeneficiaryService(beneficiaryRepo *repositories.BeneficiaryRepo, log *zap.Logger) *BeneficiaryService {
	return &BeneficiaryService{beneficiaryRepo: beneficiaryRepo, log: log}
}

func validateBeneficiary(b *models.Beneficiary) error {
	if b.CampaignID <= 0 {
		return apperr.Validation("campaign", "is required")
	}
	if err := checkRequired("first_name", b.FirstName); err != nil {
		return err
	}
	if err := checkRequired("last_name", b.LastName); err != nil {
		return err
	}
	if err := checkEmail("email", b.Email, false); err != nil {
		return err
	}
	if err := checkRequired("needs_description", b.NeedsDescription); err != nil {
		return err
	}
	return checkAmount("amount_received", b.AmountReceived)
}

func (s *BeneficiaryService) Create(ctx context.Context, b *models.Beneficiary) error {
	if b.AmountReceived == "" {
		b.AmountReceived = "0"
	}
	if err := validateBeneficiary(b); err != nil {
		return err
	}
	if err := s.beneficiaryRepo.Create(ctx, b); err != nil {
		return err
	}
	s.log.Info("beneficiary created",
		zap.Int64("id", b.ID), zap.Int64("campaign_id", b.CampaignID))
	return nil
}

func (s *BeneficiaryService) Get(ctx context.Context, id int64) (*models.Beneficiary, error) {
	return s.beneficiaryRepo.GetByID(ctx, id)
}

func (s *BeneficiaryService) List(ctx context.Context, f repositories.BeneficiaryFilter, p query.Params) ([]models.Beneficiary, int, error) {
	return s.beneficiaryRepo.List(ctx, f, p)
}

func (s *BeneficiaryService) ListActive(ctx context.Context, p query.Params) ([]models.Beneficiary, int, error) {
	active := true
	return s.beneficiaryRepo.List(ctx, repositories.BeneficiaryFilter{IsActive: &active}, p)
}

type BeneficiaryUpdate struct {
	CampaignID       *int64
	FirstName        *string
	LastName         *string
	Email            *string
	Phone            *string
	Address          *string
	DateOfBirth      *models.Date
	NeedsDescription *string
	AmountReceived   *string
	IsActive         *bool
}

func (s *BeneficiaryService) Update(ctx context.Context, id int64, u BeneficiaryUpdate) (*models.Beneficiary, error) {
	b, err := s.beneficiaryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if u.CampaignID != nil {
		b.CampaignID = *u.CampaignID
	}
	if u.FirstName != nil {
		b.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		b.LastName = *u.LastName
	}
	if u.Email != nil {
		b.Email = *u.Email
	}
	if u.Phone != nil {
		b.Phone = *u.Phone
	}
	if u.Address != nil {
		b.Address = *u.Address
	}
	if u.DateOfBirth != nil {
		b.DateOfBirth = u.DateOfBirth
	}
	if u.NeedsDescription != nil {
		b.NeedsDescription = *u.NeedsDescription
	}
	if u.AmountReceived != nil {
		b.AmountReceived = *u.AmountReceived
	}
	if u.IsActive != nil {
		b.IsActive = *u.IsActive
	}

	if err := validateBeneficiary(b); err != nil {
		return nil, err
	}
	if err := s.beneficiaryRepo.Update(ctx, b); err != nil {
		return nil, err
	}
	return s.beneficiaryRepo.GetByID(ctx, id)
}

func (s *BeneficiaryService) Delete(ctx context.Context, id int64) error {
	if err := s.beneficiaryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("beneficiary deleted", zap.Int64("id", id))
	return nil
}

// UpdateAmountReceived mirrors CampaignService.UpdateRaisedAmount for
// beneficiary totals.
func (s *BeneficiaryService) UpdateAmountReceived(ctx context.Context, id int64, rawAmount any) (*models.Beneficiary, error) {
	amount, err := NormalizeAmount(rawAmount)
	if err != nil {
		return nil, err
	}
	if err := s.beneficiaryRepo.IncrementReceived(ctx, id, amount); err != nil {
		return nil, err
	}
	s.log.Info("beneficiary amount received incremented",
		zap.Int64("id", id), zap.String("amount", amount))
	return s.beneficiaryRepo.GetByID(ctx, id)
}
