package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/zaalasociety/academy-api/internal/models"
	"github.com/zaalasociety/academy-api/internal/service"
	"github.com/zaalasociety/academy-api/internal/session"
)

type stubUserStore struct {
	user *models.User
}

func (s *stubUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	if s.user != nil && s.user.Username == username {
		return s.user, nil
	}
	return nil, sql.ErrNoRows
}

func (s *stubUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, sql.ErrNoRows
}

func (s *stubUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, sql.ErrNoRows
}

func (s *stubUserStore) Create(_ context.Context, user *models.User) error {
	user.ID = "user-new"
	s.user = user
	return nil
}

func (s *stubUserStore) UpdateLastLogin(context.Context, string, time.Time) error { return nil }

func (s *stubUserStore) UpdatePassword(context.Context, string, string, time.Time) error {
	return nil
}

type stubInstructorStore struct {
	instructor *models.Instructor
}

func (s *stubInstructorStore) FindActiveByEmail(_ context.Context, email string) (*models.Instructor, error) {
	if s.instructor != nil && s.instructor.Email == email && s.instructor.Active {
		return s.instructor, nil
	}
	return nil, sql.ErrNoRows
}

func (s *stubInstructorStore) UpdateLastLogin(context.Context, string, time.Time) error { return nil }

type stubSessionStore struct {
	deleted []string
}

func (s *stubSessionStore) Create(_ context.Context, principal models.Principal) (*session.Session, error) {
	now := time.Now().UTC()
	return &session.Session{Token: "session-token", Principal: principal, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}, nil
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	s.deleted = append(s.deleted, token)
	return nil
}

func newTestAuthHandler(t *testing.T, users *stubUserStore, instructors *stubInstructorStore) *AuthHandler {
	t.Helper()
	sessions := &stubSessionStore{}
	svc := service.NewAuthService(users, instructors, sessions, nil, nil)
	cookies := session.NewCookieCodec("academy_session", "test-secret", time.Hour, false)
	return NewAuthHandler(svc, nil, cookies)
}

func TestAuthHandlerLoginStudent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &stubUserStore{user: &models.User{
		ID:           "user-1",
		Username:     "fatima",
		Email:        "fatima@example.com",
		PasswordHash: string(hash),
		FullName:     "Fatima R",
		Active:       true,
	}}
	handler := newTestAuthHandler(t, users, &stubInstructorStore{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"fatima","password":"secret123","user_type":"student"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Login(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "academy_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	var envelope struct {
		Data models.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, models.RoleStudent, envelope.Data.Principal.Role)
	assert.Equal(t, "Fatima R", envelope.Data.Principal.Name)
}

func TestAuthHandlerLoginInstructorNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTestAuthHandler(t, &stubUserStore{}, &stubInstructorStore{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"nobody@example.com","password":"whatever1","user_type":"instructor"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Login(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandlerLoginMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTestAuthHandler(t, &stubUserStore{}, &stubInstructorStore{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandlerSignup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	users := &stubUserStore{}
	handler := newTestAuthHandler(t, users, &stubInstructorStore{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/signup",
		strings.NewReader(`{"username":"yusuf","email":"yusuf@example.com","password":"secret123","full_name":"Yusuf K"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Signup(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, users.user)
	assert.Equal(t, models.UserRoleStudent, users.user.Role)
}
