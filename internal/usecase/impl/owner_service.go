// Package impl provides the concrete application services behind the
// usecase interfaces.
package impl

import (
	"context"

	"imobi/internal/domain/entity"
	domainerrors "imobi/internal/domain/errors"
	"imobi/internal/domain/repository"
	"imobi/internal/errors"
	"imobi/internal/usecase"
)

type ownerService struct {
	ownerRepo repository.OwnerRepository
}

// NewOwnerService creates a new owner service instance
func NewOwnerService(ownerRepo repository.OwnerRepository) usecase.OwnerUsecase {
	return &ownerService{
		ownerRepo: ownerRepo,
	}
}

func (s *ownerService) Create(ctx context.Context, input *usecase.OwnerInput) (*entity.Owner, error) {
	owner := &entity.Owner{Person: personFromInput(&input.PersonInput)}

	if err := s.ownerRepo.Create(ctx, owner); err != nil {
		return nil, errors.Wrap(err, "failed to create owner")
	}

	return owner, nil
}

func (s *ownerService) Get(ctx context.Context, id int64) (*entity.Owner, error) {
	owner, err := s.ownerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, domainerrors.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner")
	}

	return owner, nil
}

func (s *ownerService) List(ctx context.Context) ([]*entity.Owner, error) {
	owners, err := s.ownerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owners")
	}

	return owners, nil
}

func (s *ownerService) Update(ctx context.Context, id int64, input *usecase.OwnerInput) (*entity.Owner, error) {
	owner := &entity.Owner{ID: id, Person: personFromInput(&input.PersonInput)}

	if err := s.ownerRepo.Update(ctx, owner); err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, domainerrors.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to update owner")
	}

	return s.Get(ctx, id)
}

func (s *ownerService) Delete(ctx context.Context, id int64) error {
	if err := s.ownerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return domainerrors.ErrOwnerNotFound
		}

		return errors.Wrap(err, "failed to delete owner")
	}

	return nil
}

// personFromInput maps the shared civil-identification input onto the
// domain value.
func personFromInput(input *usecase.PersonInput) entity.Person {
	return entity.Person{
		Name:          input.Name,
		Document:      input.Document,
		RG:            input.RG,
		Phone:         input.Phone,
		Email:         input.Email,
		Nationality:   input.Nationality,
		Profession:    input.Profession,
		MaritalStatus: input.MaritalStatus,
		SpouseName:    input.SpouseName,
		Address:       input.Address,
	}
}
