package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/repository"
	"moviehub/internal/dto/request"
	"moviehub/internal/dto/response"
	"moviehub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	// Login verifies credentials and creates a fresh session. The session is
	// returned so the handler can set the cookie.
	Login(ctx context.Context, req *request.LoginRequest) (*entity.User, *entity.Session, error)
	Logout(ctx context.Context, token string) error
}

// dummyHash keeps the bcrypt comparison in the login path even when the
// username does not exist, so both failure branches cost the same.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input before touching the store
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Hash password
	hashedPassword, err := utils.HashPassword(req.Password, s.config.App.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 3. Create user; the unique constraint is the duplicate check
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		PasswordHash: hashedPassword,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.log.Warn("Username already taken", zap.String("username", req.Username))
			return nil, ErrUsernameTaken
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return response.AuthToResponse(user, nil), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*entity.User, *entity.Session, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Find user
	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("username", req.Username))
		return nil, nil, fmt.Errorf("failed to find user")
	}

	// 3. Verify password. Unknown usernames still pay for a comparison and
	// get the same message as a wrong password.
	if user == nil {
		utils.CheckPasswordHash(req.Password, dummyHash)
		s.log.Warn("Login for unknown username", zap.String("username", req.Username))
		return nil, nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, nil, ErrInvalidCredentials
	}

	// 4. Create session
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    user.ID,
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(time.Duration(s.config.Session.TTLHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, nil, fmt.Errorf("failed to create session")
	}

	// 5. Opportunistic cleanup of long-expired sessions
	if err := s.repo.Session.CleanExpiredSessions(ctx); err != nil {
		s.log.Warn("Failed to clean expired sessions", zap.Error(err))
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return user, session, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out")
	return nil
}
