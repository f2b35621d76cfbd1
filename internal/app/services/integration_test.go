//go:build integration
// +build integration

package services_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/anantsaxena14/campus-sphere/internal/app/migrations"
	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/app/repositories"
	"github.com/anantsaxena14/campus-sphere/internal/app/services"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/auth"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/email"
)

// setupTestDB starts a PostgreSQL container, applies the migrations and
// returns a connected pool
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("campussphere_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	migrator := migrations.NewMigrator(pool)
	require.NoError(t, migrator.MigrateFromDirectory(filepath.Join("..", "..", "..", "migrations")))

	return pool
}

type testEnv struct {
	pool         *pgxpool.Pool
	userRepo     *repositories.UserRepository
	sessionRepo  *repositories.SessionRepository
	clubRepo     *repositories.ClubRepository
	chatRepo     *repositories.ChatRepository
	tokenService *auth.TokenService
	authService  *services.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	pool := setupTestDB(t)
	logger := zerolog.Nop()

	userRepo := repositories.NewUserRepository(pool)
	driverRepo := repositories.NewDriverRepository(pool)
	adminRepo := repositories.NewAdminRepository(pool)
	sessionRepo := repositories.NewSessionRepository(pool)
	tokenService := auth.NewTokenService("integration-test-secret")

	// Without SMTP credentials the mail service logs instead of sending
	emailService := email.NewService(email.SMTPConfig{BaseURL: "http://localhost:8080"}, logger)

	authService := services.NewAuthService(
		userRepo, driverRepo, adminRepo, sessionRepo,
		tokenService, emailService,
		services.SessionTTLs{
			User:   720 * time.Hour,
			Driver: 24 * time.Hour,
			Admin:  24 * time.Hour,
		},
		logger,
	)

	return &testEnv{
		pool:         pool,
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		clubRepo:     repositories.NewClubRepository(pool),
		chatRepo:     repositories.NewChatRepository(pool),
		tokenService: tokenService,
		authService:  authService,
	}
}

func (e *testEnv) createUser(t *testing.T, ctx context.Context, name, emailAddr, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{Name: name, Email: emailAddr, PasswordHash: hash}
	_, err = e.userRepo.Create(ctx, user)
	require.NoError(t, err)
	return user
}

func (e *testEnv) tempUserToken(t *testing.T, ctx context.Context, emailAddr string) string {
	t.Helper()
	var token string
	err := e.pool.QueryRow(ctx,
		`SELECT verification_token FROM temp_users WHERE email = $1`, emailAddr).Scan(&token)
	require.NoError(t, err)
	return token
}

func (e *testEnv) countRows(t *testing.T, ctx context.Context, table, column, value string) int {
	t.Helper()
	var count int
	err := e.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM `+table+` WHERE `+column+` = $1`, value).Scan(&count)
	require.NoError(t, err)
	return count
}

func TestIntegrationSignupRejectsPendingRegistration(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := dto.SignupRequest{Name: "Aarav Sharma", Email: "aarav@college.edu", Password: "password123"}
	require.NoError(t, env.authService.Signup(ctx, req))
	firstToken := env.tempUserToken(t, ctx, req.Email)

	// A second signup must not silently replace the pending registration
	err := env.authService.Signup(ctx, dto.SignupRequest{
		Name: "Someone Else", Email: req.Email, Password: "different456",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	assert.Equal(t, 1, env.countRows(t, ctx, "temp_users", "email", req.Email))
	assert.Equal(t, firstToken, env.tempUserToken(t, ctx, req.Email),
		"pending registration must keep its original verification token")
}

func TestIntegrationSignupReplacesExpiredRegistration(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.pool.Exec(ctx, `
		INSERT INTO temp_users (name, email, password_hash, verification_token, expires_at)
		VALUES ($1, $2, $3, $4, $5)`,
		"Stale User", "stale@college.edu", "hash", "stale-token", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	req := dto.SignupRequest{Name: "Fresh User", Email: "stale@college.edu", Password: "password123"}
	require.NoError(t, env.authService.Signup(ctx, req))

	assert.Equal(t, 1, env.countRows(t, ctx, "temp_users", "email", req.Email))
	assert.NotEqual(t, "stale-token", env.tempUserToken(t, ctx, req.Email))
}

func TestIntegrationVerifyEmailPromotesPendingUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := dto.SignupRequest{Name: "Diya Patel", Email: "diya@college.edu", Password: "password123"}
	require.NoError(t, env.authService.Signup(ctx, req))
	token := env.tempUserToken(t, ctx, req.Email)

	user, err := env.authService.VerifyEmail(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, req.Email, user.Email)

	assert.Equal(t, 0, env.countRows(t, ctx, "temp_users", "email", req.Email))

	// The address is now taken by a real account
	err = env.authService.Signup(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestIntegrationLoginEnforcesSingleSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, ctx, "Rohan Gupta", "rohan@college.edu", "password123")

	_, first, err := env.authService.Login(ctx,
		dto.LoginRequest{Email: "rohan@college.edu", Password: "password123"}, "laptop")
	require.NoError(t, err)

	_, _, err = env.authService.Login(ctx,
		dto.LoginRequest{Email: "rohan@college.edu", Password: "password123"}, "phone")
	assert.ErrorIs(t, err, apperrors.ErrSessionActive)

	_, second, err := env.authService.Login(ctx,
		dto.LoginRequest{Email: "rohan@college.edu", Password: "password123", ForceLogout: true}, "phone")
	require.NoError(t, err)
	require.NotEqual(t, first.CookieValue, second.CookieValue)

	// The evicted session must no longer resolve
	oldHash, err := env.tokenService.Verify(first.CookieValue)
	require.NoError(t, err)
	_, err = env.sessionRepo.GetByTokenHash(ctx, oldHash)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	newHash, err := env.tokenService.Verify(second.CookieValue)
	require.NoError(t, err)
	_, err = env.sessionRepo.GetByTokenHash(ctx, newHash)
	assert.NoError(t, err)
}

func TestIntegrationLoginPurgesExpiredSessions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, ctx, "Isha Singh", "isha@college.edu", "password123")

	expired := &models.Session{
		PrincipalType: models.PrincipalUser,
		PrincipalID:   user.ID,
		TokenHash:     "expired-session-hash",
		ExpiresAt:     time.Now().Add(-time.Hour),
	}
	require.NoError(t, env.sessionRepo.Create(ctx, expired))

	// An expired session does not block login, and issuing the new session
	// sweeps it away
	_, _, err := env.authService.Login(ctx,
		dto.LoginRequest{Email: "isha@college.edu", Password: "password123"}, "laptop")
	require.NoError(t, err)

	assert.Equal(t, 0, env.countRows(t, ctx, "sessions", "token_hash", expired.TokenHash))
}

func TestIntegrationCreateClubValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	logger := zerolog.Nop()

	adminService := services.NewAdminService(
		env.userRepo,
		repositories.NewBusRepository(env.pool),
		repositories.NewResourceRepository(env.pool),
		repositories.NewEventRepository(env.pool),
		env.clubRepo,
		repositories.NewPostRepository(env.pool),
		logger,
	)

	unknownSecretary := int64(9999)
	_, err := adminService.CreateClub(ctx, dto.CreateClubRequest{
		Name: "Robotics Club", SecretaryID: &unknownSecretary,
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	secretary := env.createUser(t, ctx, "Club Secretary", "secretary@college.edu", "password123")
	club, err := adminService.CreateClub(ctx, dto.CreateClubRequest{
		Name: "Robotics Club", SecretaryID: &secretary.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, club.ID)

	_, err = adminService.CreateClub(ctx, dto.CreateClubRequest{Name: "Robotics Club"})
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)
}

func TestIntegrationJoinClubIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, ctx, "Ananya Rao", "ananya@college.edu", "password123")

	club := &models.Club{Name: "Drama Society"}
	_, err := env.clubRepo.Create(ctx, club)
	require.NoError(t, err)

	communityService := services.NewCommunityService(
		repositories.NewPostRepository(env.pool), env.clubRepo, zerolog.Nop())

	require.NoError(t, communityService.JoinClub(ctx, user.ID, club.ID))
	err = communityService.JoinClub(ctx, user.ID, club.ID)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyMember)

	var memberships int
	require.NoError(t, env.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM club_memberships WHERE user_id = $1 AND club_id = $2`,
		user.ID, club.ID).Scan(&memberships))
	assert.Equal(t, 1, memberships)

	err = communityService.JoinClub(ctx, user.ID, club.ID+100)
	assert.ErrorIs(t, err, apperrors.ErrClubNotFound)
}

func TestIntegrationLikePostIncrementsByOne(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, ctx, "Vikram Joshi", "vikram@college.edu", "password123")

	postRepo := repositories.NewPostRepository(env.pool)
	communityService := services.NewCommunityService(postRepo, env.clubRepo, zerolog.Nop())

	post, err := communityService.CreatePost(ctx, user.ID,
		dto.CreatePostRequest{Content: "Study group for algorithms this weekend"})
	require.NoError(t, err)
	require.Equal(t, 0, post.Likes)

	likes, err := communityService.LikePost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, likes)

	likes, err = communityService.LikePost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, likes)

	_, err = communityService.LikePost(ctx, post.ID+100)
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestIntegrationBusDataOrdersStops(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	var busID int64
	require.NoError(t, env.pool.QueryRow(ctx, `
		INSERT INTO buses (bus_number, route_description)
		VALUES ('KA-01', 'Main campus loop') RETURNING id`).Scan(&busID))

	// Insert out of order so the query has to sort
	for _, stop := range []struct {
		name  string
		order int
	}{
		{"Library", 3},
		{"Main Gate", 1},
		{"Hostel Block", 2},
	} {
		_, err := env.pool.Exec(ctx, `
			INSERT INTO bus_stops (bus_id, stop_name, stop_order, lat, lng)
			VALUES ($1, $2, $3, 12.97, 77.59)`, busID, stop.name, stop.order)
		require.NoError(t, err)
	}

	busService := services.NewBusService(
		repositories.NewBusRepository(env.pool),
		repositories.NewDriverRepository(env.pool),
		zerolog.Nop(),
	)

	data, err := busService.GetBusData(ctx, busID)
	require.NoError(t, err)
	require.Len(t, data.Stops, 3)
	assert.Equal(t, []string{"Main Gate", "Hostel Block", "Library"},
		[]string{data.Stops[0].StopName, data.Stops[1].StopName, data.Stops[2].StopName})

	_, err = busService.GetBusData(ctx, busID+100)
	assert.ErrorIs(t, err, apperrors.ErrBusNotFound)
}

func TestIntegrationTutorHistoryReturnsLastMode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, ctx, "Kabir Mehta", "kabir@college.edu", "password123")

	_, err := env.chatRepo.Create(ctx, &models.ChatHistory{
		UserID: user.ID, Mode: models.TutorModeNormal,
		Message: "when is the tech fest", Response: "next week",
	})
	require.NoError(t, err)
	_, err = env.chatRepo.Create(ctx, &models.ChatHistory{
		UserID: user.ID, Mode: models.TutorModePractice,
		Message: "give me a coding question", Response: "reverse a linked list",
	})
	require.NoError(t, err)
	require.NoError(t, env.chatRepo.UpsertPreferences(ctx, user.ID, models.TutorModePractice))

	tutorService := services.NewTutorService(
		env.chatRepo, env.userRepo,
		repositories.NewEventRepository(env.pool),
		repositories.NewResourceRepository(env.pool),
		env.clubRepo,
		repositories.NewDirectoryRepository(env.pool),
		nil, // the generator is never called for history
		zerolog.Nop(),
	)

	entries, lastMode, err := tutorService.GetHistory(ctx, user.ID, nil)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, models.TutorModePractice, lastMode)

	practice := models.TutorModePractice
	filtered, _, err := tutorService.GetHistory(ctx, user.ID, &practice)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, models.TutorModePractice, filtered[0].Mode)
}
