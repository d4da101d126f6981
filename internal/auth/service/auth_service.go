package service

import (
	"context"
	"errors"

	"github.com/mzhuravlev/feedback-board/internal/common/clock"
	commoncrypto "github.com/mzhuravlev/feedback-board/internal/common/crypto"
	commonerrors "github.com/mzhuravlev/feedback-board/internal/common/errors"
	"github.com/mzhuravlev/feedback-board/internal/common/logger"
	"github.com/mzhuravlev/feedback-board/internal/observability/metrics"
	userdomain "github.com/mzhuravlev/feedback-board/internal/user/domain"
	userrepo "github.com/mzhuravlev/feedback-board/internal/user/repository"
)

type AuthService struct {
	repo   userrepo.Repository
	hasher commoncrypto.PasswordHasher
	clock  clock.Clock
	log    *logger.Logger
}

func NewAuthService(
	repo userrepo.Repository,
	hasher commoncrypto.PasswordHasher,
	clk clock.Clock,
	log *logger.Logger,
) *AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
		clock:  clk,
		log:    log,
	}
}

type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

// Register hashes the password and persists a new user. Form-level
// validation happens before the service is called.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (userdomain.User, error) {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "register_attempt",
	}).Info("register attempt")

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_hash_failed",
		}).Errorf("register failed: password hash error: %v", err)
		return userdomain.User{}, commonerrors.ErrInternalError.WithCause(err)
	}

	user := userdomain.User{
		Username:     input.Username,
		PasswordHash: hash,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, userrepo.ErrUsernameAlreadyExists):
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "register_username_exists",
			}).Warn("register failed: username already exists")
			return userdomain.User{}, ErrUsernameTaken
		case errors.Is(err, userrepo.ErrEmailAlreadyExists):
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "register_email_exists",
			}).Warn("register failed: email already exists")
			return userdomain.User{}, ErrEmailTaken
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_create_failed",
		}).Errorf("register failed: %v", err)
		return userdomain.User{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	metrics.UsersRegistered.Inc()

	s.log.WithFields(ctx, logger.Fields{
		"username": user.Username,
		"action":   "register_success",
	}).Info("register success")

	return user, nil
}

// Authenticate verifies username/password. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (userdomain.User, error) {
	s.log.WithFields(ctx, logger.Fields{
		"username": username,
		"action":   "login_attempt",
	}).Info("login attempt")

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"username": username,
				"action":   "login_user_not_found",
			}).Warn("login failed: not found")
			metrics.LoginFailures.Inc()
			return userdomain.User{}, ErrInvalidCredentials
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": username,
			"action":   "login_fetch_failed",
		}).Errorf("login failed: %v", err)
		return userdomain.User{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": username,
			"action":   "login_invalid_password",
		}).Warn("login failed: invalid password")
		metrics.LoginFailures.Inc()
		return userdomain.User{}, ErrInvalidCredentials
	}

	s.log.WithFields(ctx, logger.Fields{
		"username": user.Username,
		"action":   "login_success",
	}).Info("login success")

	return user, nil
}

func (s *AuthService) GetByUsername(ctx context.Context, username string) (userdomain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			return userdomain.User{}, ErrUserNotFound
		}
		return userdomain.User{}, commonerrors.ErrDatabaseError.WithCause(err)
	}
	return user, nil
}
