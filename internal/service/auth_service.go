package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/zaalasociety/academy-api/internal/models"
	"github.com/zaalasociety/academy-api/internal/session"
	appErrors "github.com/zaalasociety/academy-api/pkg/errors"
)

type authUserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateLastLogin(ctx context.Context, id string, ts time.Time) error
	UpdatePassword(ctx context.Context, id, passwordHash string, updatedAt time.Time) error
}

type authInstructorStore interface {
	FindActiveByEmail(ctx context.Context, email string) (*models.Instructor, error)
	UpdateLastLogin(ctx context.Context, id string, ts time.Time) error
}

type sessionStore interface {
	Create(ctx context.Context, principal models.Principal) (*session.Session, error)
	Delete(ctx context.Context, token string) error
}

// AuthService multiplexes two independent credential stores behind one
// session. The client-supplied role selects the store; a successful login
// replaces whatever principal the session carried before, so the session
// holds exactly one role at a time.
//
// There is no rate limiting, lockout, or retry policy: every failure is
// user-visible and re-attempts are unlimited. That matches the observed
// behavior of the system this replaces.
type AuthService struct {
	users       authUserStore
	instructors authInstructorStore
	sessions    sessionStore
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(users authUserStore, instructors authInstructorStore, sessions sessionStore, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{users: users, instructors: instructors, sessions: sessions, validator: validate, logger: logger}
}

// Login authenticates against the store selected by the request's role and
// establishes a session for the resolved principal.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*session.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	var (
		principal models.Principal
		err       error
	)
	switch req.UserType {
	case models.RoleInstructor:
		principal, err = s.verifyInstructor(ctx, req.Email, req.Password)
	case models.RoleStudent:
		principal, err = s.verifyStudent(ctx, req.Email, req.Password)
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown user type")
	}
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Create(ctx, principal)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to establish session")
	}
	return sess, nil
}

// Logout tears down the server-side session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to end session")
	}
	return nil
}

// Signup creates a new platform account with the student role.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.UserProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid signup payload")
	}

	if _, err := s.users.FindByUsername(ctx, req.Username); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "username is already taken")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check username")
	}
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "email is already registered")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Country:      req.Country,
		City:         req.City,
		Note:         req.Note,
		Role:         models.UserRoleStudent,
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create account")
	}

	profile := user.Profile()
	return &profile, nil
}

// ChangePassword changes the password for a platform account.
func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "account not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load account")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return appErrors.Clone(appErrors.ErrForbidden, "old password does not match")
	}
	if len(newPassword) < 6 {
		return appErrors.Clone(appErrors.ErrValidation, "new password is too short")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}
	if err := s.users.UpdatePassword(ctx, userID, string(hash), time.Now().UTC()); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update password")
	}
	return nil
}

// verifyInstructor resolves an instructor principal. Unknown and inactive
// accounts are reported identically as not found.
func (s *AuthService) verifyInstructor(ctx context.Context, email, password string) (models.Principal, error) {
	instructor, err := s.instructors.FindActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Principal{}, appErrors.Clone(appErrors.ErrNotFound, "instructor not found or account is not active")
		}
		return models.Principal{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch instructor")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(instructor.PasswordHash), []byte(password)); err != nil {
		return models.Principal{}, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid password")
	}

	if err := s.instructors.UpdateLastLogin(ctx, instructor.ID, time.Now().UTC()); err != nil {
		s.logger.Warn("failed to update instructor last login", zap.Error(err))
	}

	return models.Principal{ID: instructor.ID, Name: instructor.Name, Role: models.RoleInstructor}, nil
}

// verifyStudent resolves a student principal. The identifier is tried as a
// username first; on failure it is resolved as an email and re-verified.
func (s *AuthService) verifyStudent(ctx context.Context, identifier, password string) (models.Principal, error) {
	user, err := s.users.FindByUsername(ctx, identifier)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return models.Principal{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch account")
	}

	if user == nil || !verifyUserPassword(user, password) {
		user, err = s.users.FindByEmail(ctx, identifier)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return models.Principal{}, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid email or password")
			}
			return models.Principal{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch account")
		}
		if !verifyUserPassword(user, password) {
			return models.Principal{}, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid email or password")
		}
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		s.logger.Warn("failed to update user last login", zap.Error(err))
	}

	name := user.FullName
	if name == "" {
		name = user.Username
	}
	return models.Principal{ID: user.ID, Name: name, Role: models.RoleStudent}, nil
}

func verifyUserPassword(user *models.User, password string) bool {
	if user == nil || !user.Active {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
