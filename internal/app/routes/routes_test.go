package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncc-portal/backend/internal/app/controllers"
	"github.com/ncc-portal/backend/internal/app/models"
	"github.com/ncc-portal/backend/internal/app/services"
	"github.com/ncc-portal/backend/internal/middleware"
	"github.com/ncc-portal/backend/internal/pkg/apperrors"
	"github.com/ncc-portal/backend/internal/pkg/auth"
)

// memUserStore and memEnrollmentStore back the full router with in-memory
// state so the whole HTTP surface can be exercised without a database.
type memUserStore struct {
	users  map[string]*models.User
	nextID int64
}

func (s *memUserStore) Create(_ context.Context, user *models.User) error {
	if _, exists := s.users[user.Email]; exists {
		return apperrors.ErrEmailAlreadyExists
	}
	s.nextID++
	user.ID = s.nextID
	s.users[user.Email] = user
	return nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *memUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := s.users[email]
	return ok, nil
}

func (s *memUserStore) DeleteByEmails(_ context.Context, emails []string) error {
	for _, email := range emails {
		delete(s.users, email)
	}
	return nil
}

type memEnrollmentStore struct {
	enrollments []*models.Enrollment
	users       *memUserStore
	nextID      int64
}

func (s *memEnrollmentStore) Create(_ context.Context, e *models.Enrollment) error {
	s.nextID++
	e.ID = s.nextID
	e.SubmittedAt = time.Now()
	s.enrollments = append(s.enrollments, e)
	return nil
}

func (s *memEnrollmentStore) ListByUserID(_ context.Context, userID int64) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, e := range s.enrollments {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (s *memEnrollmentStore) ListAllWithOwners(_ context.Context) ([]*models.Enrollment, error) {
	for _, e := range s.enrollments {
		for _, u := range s.users.users {
			if u.ID == e.UserID {
				e.User = &models.EnrollmentOwner{ID: u.ID, FullName: u.FullName, Email: u.Email, Phone: u.Phone}
			}
		}
	}
	return s.enrollments, nil
}

func (s *memEnrollmentStore) UpdateStatus(_ context.Context, id int64, status models.EnrollmentStatus, reviewerID int64, reviewedAt time.Time) error {
	for _, e := range s.enrollments {
		if e.ID == id {
			e.Status = status
			e.ReviewedBy = &reviewerID
			e.ReviewedAt = &reviewedAt
			return nil
		}
	}
	return apperrors.ErrEnrollmentNotFound
}

// stubContentService serves fixed lists.
type stubContentService struct{}

func (stubContentService) Events(context.Context) ([]*models.Event, error) {
	return []*models.Event{{ID: 1, Title: "Shooting Competition"}}, nil
}
func (stubContentService) Gallery(context.Context) ([]*models.GalleryItem, error) {
	return []*models.GalleryItem{}, nil
}
func (stubContentService) News(context.Context) ([]*models.NewsItem, error) {
	return []*models.NewsItem{}, nil
}
func (stubContentService) FAQs(context.Context) ([]*models.FAQ, error) {
	return []*models.FAQ{}, nil
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "test",
	})

	userStore := &memUserStore{users: map[string]*models.User{}}
	enrollmentStore := &memEnrollmentStore{users: userStore}

	authService := services.NewAuthService(userStore, jwtService, zerolog.Nop())
	enrollmentService := services.NewEnrollmentService(enrollmentStore, zerolog.Nop())

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(authService, zerolog.Nop()),
		controllers.NewEnrollmentController(enrollmentService, zerolog.Nop()),
		controllers.NewContentController(stubContentService{}, zerolog.Nop()),
		middleware.NewAuthMiddleware(jwtService),
		nil, // health endpoint is not exercised here
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), into), "body: %s", rec.Body.String())
}

func registerAndLogin(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"full_name": "Test Student",
		"email":     email,
		"password":  "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decode(t, rec, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func adminLogin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/reset-demo", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "admin@ncc.edu",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decode(t, rec, &resp)
	return resp.Token
}

func enrollmentPayload() gin.H {
	return gin.H{
		"college_name":      "Government College",
		"course":            "B.Sc",
		"year_of_study":     2,
		"preferred_wing":    "army",
		"emergency_contact": "Parent",
		"emergency_phone":   "9876500000",
	}
}

func TestRegisterValidation(t *testing.T) {
	router := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"full_name": "No Email",
		"password":  "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	decode(t, rec, &resp)
	assert.Contains(t, resp, "error")
}

func TestDuplicateRegistrationConflict(t *testing.T) {
	router := newTestServer(t)
	registerAndLogin(t, router, "asha@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"full_name": "Test Student",
		"email":     "asha@example.com",
		"password":  "secret123",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"User with this email already exists"}`, rec.Body.String())
}

func TestLoginInvalidCredentials(t *testing.T) {
	router := newTestServer(t)
	registerAndLogin(t, router, "asha@example.com")

	for _, body := range []gin.H{
		{"email": "asha@example.com", "password": "wrong"},
		{"email": "nobody@example.com", "password": "secret123"},
	} {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
	}
}

func TestEnrollmentRequiresAuth(t *testing.T) {
	router := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/enrollments", "", enrollmentPayload())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/enrollments/my", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEnrollmentMissingField(t *testing.T) {
	router := newTestServer(t)
	token := registerAndLogin(t, router, "asha@example.com")

	payload := enrollmentPayload()
	delete(payload, "preferred_wing")
	rec := doJSON(t, router, http.MethodPost, "/api/v1/enrollments", token, payload)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required field: preferred_wing"}`, rec.Body.String())
}

func TestAdminGateRejectsStudents(t *testing.T) {
	router := newTestServer(t)
	token := registerAndLogin(t, router, "asha@example.com")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/admin/enrollments", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestUpdateStatusErrors(t *testing.T) {
	router := newTestServer(t)
	admin := adminLogin(t, router)

	rec := doJSON(t, router, http.MethodPatch, "/api/v1/admin/enrollments/abc", admin, gin.H{"status": "approved"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid enrollment ID"}`, rec.Body.String())

	rec = doJSON(t, router, http.MethodPatch, "/api/v1/admin/enrollments/999", admin, gin.H{"status": "approved"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Enrollment not found"}`, rec.Body.String())

	rec = doJSON(t, router, http.MethodPatch, "/api/v1/admin/enrollments/1", admin, gin.H{"status": "cancelled"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid status value"}`, rec.Body.String())
}

func TestPublicContentEndpoints(t *testing.T) {
	router := newTestServer(t)

	for _, path := range []string{"/api/v1/events", "/api/v1/gallery", "/api/v1/news", "/api/v1/faqs"} {
		rec := doJSON(t, router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)

		var items []json.RawMessage
		decode(t, rec, &items)
	}
}

// TestResetDemoWithExistingEnrollment covers the state the demo flow itself
// produces: the demo student submits an application and the accounts are then
// reset. The reset must succeed and leave the enrollment row in place.
func TestResetDemoWithExistingEnrollment(t *testing.T) {
	router := newTestServer(t)

	// First reset seeds the demo accounts
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/reset-demo", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "student@example.com",
		"password": "student123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var login struct {
		Token string `json:"token"`
	}
	decode(t, rec, &login)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/enrollments", login.Token, enrollmentPayload())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Reset again while the demo student owns an enrollment
	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/reset-demo", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// The enrollment row survives the reset
	adminToken := adminLogin(t, router)
	rec = doJSON(t, router, http.MethodGet, "/api/v1/admin/enrollments", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []models.Enrollment
	decode(t, rec, &all)
	assert.Len(t, all, 1)
}

// TestEnrollmentLifecycle walks the full flow: a student registers, submits
// an application, and an admin reviews it.
func TestEnrollmentLifecycle(t *testing.T) {
	router := newTestServer(t)

	studentToken := registerAndLogin(t, router, "asha@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/enrollments", studentToken, enrollmentPayload())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Enrollment
	decode(t, rec, &created)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Regexp(t, `^NCC\d+$`, created.ApplicationNumber)

	// Student sees their own application
	rec = doJSON(t, router, http.MethodGet, "/api/v1/enrollments/my", studentToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []models.Enrollment
	decode(t, rec, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)

	// Admin reviews it
	adminToken := adminLogin(t, router)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/admin/enrollments", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []models.Enrollment
	decode(t, rec, &all)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].User, "admin listing must attach owner identity")
	assert.Equal(t, "asha@example.com", all[0].User.Email)

	rec = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/v1/admin/enrollments/%d", created.ID), adminToken, gin.H{"status": "approved"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var decision struct {
		Message      string `json:"message"`
		EnrollmentID int64  `json:"enrollment_id"`
		Status       string `json:"status"`
		ReviewedBy   int64  `json:"reviewed_by"`
	}
	decode(t, rec, &decision)
	assert.Equal(t, created.ID, decision.EnrollmentID)
	assert.Equal(t, "approved", decision.Status)
	assert.NotZero(t, decision.ReviewedBy)

	// The decision is visible to the student
	rec = doJSON(t, router, http.MethodGet, "/api/v1/enrollments/my", studentToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, models.StatusApproved, mine[0].Status)
	require.NotNil(t, mine[0].ReviewedAt)
	require.NotNil(t, mine[0].ReviewedBy)
}
