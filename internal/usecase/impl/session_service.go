package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"imobi/internal/domain/entity"
	domainerrors "imobi/internal/domain/errors"
	"imobi/internal/domain/repository"
	"imobi/internal/domain/service"
	"imobi/internal/errors"
	"imobi/internal/usecase"
)

type sessionService struct {
	adminUserRepo repository.AdminUserRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	logger        *slog.Logger
}

// NewSessionService creates a new session service instance
func NewSessionService(
	adminUserRepo repository.AdminUserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		adminUserRepo: adminUserRepo,
		hasher:        hasher,
		tokenService:  tokenService,
		logger:        logger,
	}
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password both come back as ErrInvalidCredentials.
func (s *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginResult, error) {
	user, err := s.adminUserRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !s.hasher.Check(input.Password, user.PasswordHash) {
		s.logger.Warn("login rejected", slog.String("email", input.Email))
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokenService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	// Never hand the hash back to the delivery layer. Sanitize a copy: the
	// entity belongs to the repository and must not be mutated here.
	sanitized := *user
	sanitized.PasswordHash = ""

	return &usecase.LoginResult{
		AccessToken: token,
		User:        &sanitized,
	}, nil
}

// CreateAccount registers a new back-office account.
func (s *sessionService) CreateAccount(ctx context.Context, input *usecase.AccountInput) (*entity.AdminUser, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.AdminUser{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         input.Role,
	}

	if err := s.adminUserRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("account created",
		slog.String("email", user.Email),
		slog.String("role", user.Role),
	)

	sanitized := *user
	sanitized.PasswordHash = ""

	return &sanitized, nil
}
