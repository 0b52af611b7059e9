package impl

import (
	"context"

	"imobi/internal/domain/entity"
	domainerrors "imobi/internal/domain/errors"
	"imobi/internal/domain/repository"
	"imobi/internal/errors"
	"imobi/internal/usecase"
)

type propertyService struct {
	propertyRepo repository.PropertyRepository
	ownerRepo    repository.OwnerRepository
}

// NewPropertyService creates a new property service instance
func NewPropertyService(propertyRepo repository.PropertyRepository, ownerRepo repository.OwnerRepository) usecase.PropertyUsecase {
	return &propertyService{
		propertyRepo: propertyRepo,
		ownerRepo:    ownerRepo,
	}
}

func (s *propertyService) Create(ctx context.Context, input *usecase.PropertyInput) (*entity.Property, error) {
	// Reject dangling owner references up front.
	if _, err := s.ownerRepo.FindByID(ctx, input.OwnerID); err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, domainerrors.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner")
	}

	property := propertyFromInput(0, input)

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, errors.Wrap(err, "failed to create property")
	}

	return property, nil
}

func (s *propertyService) Get(ctx context.Context, id int64) (*entity.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property")
	}

	return property, nil
}

func (s *propertyService) List(ctx context.Context) ([]*entity.Property, error) {
	properties, err := s.propertyRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list properties")
	}

	return properties, nil
}

func (s *propertyService) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Property, error) {
	properties, err := s.propertyRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list properties by owner")
	}

	return properties, nil
}

func (s *propertyService) Update(ctx context.Context, id int64, input *usecase.PropertyInput) (*entity.Property, error) {
	property := propertyFromInput(id, input)

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to update property")
	}

	return s.Get(ctx, id)
}

func (s *propertyService) Delete(ctx context.Context, id int64) error {
	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return domainerrors.ErrPropertyNotFound
		}

		return errors.Wrap(err, "failed to delete property")
	}

	return nil
}

func propertyFromInput(id int64, input *usecase.PropertyInput) *entity.Property {
	return &entity.Property{
		ID:                       id,
		OwnerID:                  input.OwnerID,
		Name:                     input.Name,
		Type:                     input.Type,
		Description:              input.Description,
		Address:                  input.Address,
		RentValue:                input.RentValue,
		Bedrooms:                 input.Bedrooms,
		Bathrooms:                input.Bathrooms,
		Area:                     input.Area,
		WaterCompany:             input.WaterCompany,
		WaterAccountNumber:       input.WaterAccountNumber,
		ElectricityCompany:       input.ElectricityCompany,
		ElectricityAccountNumber: input.ElectricityAccountNumber,
	}
}
