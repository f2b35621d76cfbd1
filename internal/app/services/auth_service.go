package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/app/repositories"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/auth"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/email"
)

// VerificationTTL is how long a signup verification link stays valid
const VerificationTTL = 15 * time.Minute

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// SessionTTLs holds the session lifetime per principal kind
type SessionTTLs struct {
	User   time.Duration
	Driver time.Duration
	Admin  time.Duration
}

// IssuedSession is what a successful login hands to the controller so it can
// set the cookie
type IssuedSession struct {
	CookieValue string
	ExpiresAt   time.Time
}

// AuthService handles signup, email verification and session lifecycle for
// all three principal kinds
type AuthService struct {
	userRepo     *repositories.UserRepository
	driverRepo   *repositories.DriverRepository
	adminRepo    *repositories.AdminRepository
	sessionRepo  *repositories.SessionRepository
	tokenService *auth.TokenService
	emailService email.Service
	ttls         SessionTTLs
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	driverRepo *repositories.DriverRepository,
	adminRepo *repositories.AdminRepository,
	sessionRepo *repositories.SessionRepository,
	tokenService *auth.TokenService,
	emailService email.Service,
	ttls SessionTTLs,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		driverRepo:   driverRepo,
		adminRepo:    adminRepo,
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
		emailService: emailService,
		ttls:         ttls,
		logger:       logger,
	}
}

func validateEmailFormat(address string) error {
	if !emailRegex.MatchString(strings.TrimSpace(address)) {
		return apperrors.ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", apperrors.ErrInvalidPassword)
	}
	return nil
}

// Signup stores a pending registration and emails a verification link. The
// account does not exist until the link is followed.
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) error {
	normalizedEmail := strings.ToLower(strings.TrimSpace(req.Email))

	if err := validateEmailFormat(normalizedEmail); err != nil {
		return err
	}
	if err := validatePassword(req.Password); err != nil {
		return err
	}

	exists, err := s.userRepo.EmailExists(ctx, normalizedEmail)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrEmailAlreadyExists
	}

	// Abandoned registrations are purged here rather than by a background job
	if purged, err := s.userRepo.DeleteExpiredTempUsers(ctx, time.Now()); err != nil {
		s.logger.Error().Err(err).Msg("Failed to purge expired registrations")
	} else if purged > 0 {
		s.logger.Debug().Int64("purged", purged).Msg("Expired registrations removed")
	}

	pending, err := s.userRepo.TempEmailExists(ctx, normalizedEmail, time.Now())
	if err != nil {
		return err
	}
	if pending {
		return apperrors.ErrEmailAlreadyExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	token, err := email.GenerateVerificationToken()
	if err != nil {
		return err
	}

	temp := &models.TempUser{
		Name:              strings.TrimSpace(req.Name),
		Email:             normalizedEmail,
		PasswordHash:      passwordHash,
		VerificationToken: token,
		ExpiresAt:         time.Now().Add(VerificationTTL),
	}
	if err := s.userRepo.CreateTempUser(ctx, temp); err != nil {
		return err
	}

	if err := s.emailService.SendVerificationEmail(temp.Email, temp.Name, token); err != nil {
		s.logger.Error().Err(err).Str("email", temp.Email).Msg("Failed to send verification email")
		return err
	}

	s.logger.Info().Str("email", temp.Email).Msg("Pending registration created")
	return nil
}

// VerifyEmail promotes a pending registration into a real account. Expired
// links delete the pending row so the user can sign up again.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) (*models.User, error) {
	temp, err := s.userRepo.GetTempUserByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if time.Now().After(temp.ExpiresAt) {
		if err := s.userRepo.DeleteTempUser(ctx, temp.ID); err != nil {
			s.logger.Error().Err(err).Int64("tempUserId", temp.ID).Msg("Failed to delete expired registration")
		}
		return nil, apperrors.ErrVerificationTokenExpired
	}

	user := &models.User{
		Name:         temp.Name,
		Email:        temp.Email,
		PasswordHash: temp.PasswordHash,
	}
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.userRepo.DeleteTempUser(ctx, temp.ID); err != nil {
		s.logger.Error().Err(err).Int64("tempUserId", temp.ID).Msg("Failed to delete verified registration")
	}

	s.logger.Info().Int64("userId", user.ID).Str("email", user.Email).Msg("User verified")
	return user, nil
}

// Login authenticates a student account. When the account already has a live
// session the caller must pass forceLogout to evict it, otherwise the login
// is refused.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest, device string) (*models.User, *IssuedSession, error) {
	normalizedEmail := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, normalizedEmail)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	active, err := s.sessionRepo.HasActiveSession(ctx, models.PrincipalUser, user.ID, time.Now())
	if err != nil {
		return nil, nil, err
	}
	if active {
		if !req.ForceLogout {
			return nil, nil, apperrors.ErrSessionActive
		}
		if _, err := s.sessionRepo.DeleteForPrincipal(ctx, models.PrincipalUser, user.ID); err != nil {
			return nil, nil, err
		}
		s.logger.Info().Int64("userId", user.ID).Msg("Existing sessions evicted by force logout")
	}

	session, err := s.issueSession(ctx, models.PrincipalUser, user.ID, s.ttls.User)
	if err != nil {
		return nil, nil, err
	}

	if err := s.userRepo.UpdateLoginState(ctx, user.ID, true, &device); err != nil {
		return nil, nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Msg("User logged in")
	return user, session, nil
}

// Logout deletes the session behind the cookie and clears the user's login
// flag
func (s *AuthService) Logout(ctx context.Context, session *models.Session) error {
	if err := s.sessionRepo.Delete(ctx, session.TokenHash); err != nil {
		return err
	}
	if session.PrincipalType == models.PrincipalUser {
		if err := s.userRepo.UpdateLoginState(ctx, session.PrincipalID, false, nil); err != nil {
			return err
		}
	}
	return nil
}

// LoginDriver authenticates a driver account by name
func (s *AuthService) LoginDriver(ctx context.Context, req dto.DriverLoginRequest) (*models.Driver, *IssuedSession, error) {
	driver, err := s.driverRepo.GetByName(ctx, strings.TrimSpace(req.Name))
	if err != nil {
		if err == apperrors.ErrDriverNotFound {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !auth.CheckPassword(driver.PasswordHash, req.Password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	session, err := s.issueSession(ctx, models.PrincipalDriver, driver.ID, s.ttls.Driver)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Int64("driverId", driver.ID).Msg("Driver logged in")
	return driver, session, nil
}

// LoginAdmin authenticates an admin account by username
func (s *AuthService) LoginAdmin(ctx context.Context, req dto.AdminLoginRequest) (*models.Admin, *IssuedSession, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if err == apperrors.ErrAdminNotFound {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !auth.CheckPassword(admin.PasswordHash, req.Password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	session, err := s.issueSession(ctx, models.PrincipalAdmin, admin.ID, s.ttls.Admin)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Int64("adminId", admin.ID).Msg("Admin logged in")
	return admin, session, nil
}

func (s *AuthService) issueSession(ctx context.Context, principalType models.PrincipalType, principalID int64, ttl time.Duration) (*IssuedSession, error) {
	// Stale sessions are purged here rather than by a background job
	if purged, err := s.sessionRepo.DeleteExpired(ctx, time.Now()); err != nil {
		s.logger.Error().Err(err).Msg("Failed to purge expired sessions")
	} else if purged > 0 {
		s.logger.Debug().Int64("purged", purged).Msg("Expired sessions removed")
	}

	cookieValue, tokenHash, err := s.tokenService.Issue()
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	session := &models.Session{
		PrincipalType: principalType,
		PrincipalID:   principalID,
		TokenHash:     tokenHash,
		ExpiresAt:     time.Now().Add(ttl),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return &IssuedSession{
		CookieValue: cookieValue,
		ExpiresAt:   session.ExpiresAt,
	}, nil
}
