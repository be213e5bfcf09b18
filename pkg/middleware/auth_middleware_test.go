package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soko/internal/models/db_models"
	"soko/pkg/utils"
)

type fakeResolver struct {
	user *db_models.User
	err  error
}

func (f *fakeResolver) FindActiveByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	return f.user, f.err
}

func newAuthEngine(resolver *fakeResolver, maker *utils.TokenMaker, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(false))

	handlers := []gin.HandlerFunc{Protect(maker, resolver)}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})
	r.GET("/secure", handlers...)
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func responseMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	message, _ := body["message"].(string)
	return message
}

func TestProtectMissingToken(t *testing.T) {
	maker := utils.NewTokenMaker("secret", time.Hour)
	r := newAuthEngine(&fakeResolver{}, maker)

	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "You are not logged in! Please log in to get access.", responseMessage(t, w))
}

func TestProtectValidToken(t *testing.T) {
	maker := utils.NewTokenMaker("secret", time.Hour)
	user := &db_models.User{BaseModel: db_models.BaseModel{ID: uuid.New()}, Role: db_models.RoleUser}
	r := newAuthEngine(&fakeResolver{user: user}, maker)

	token, err := maker.Create(user.ID, user.Role)
	require.NoError(t, err)

	w := doGet(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectExpiredToken(t *testing.T) {
	maker := utils.NewTokenMaker("secret", -time.Minute)
	r := newAuthEngine(&fakeResolver{}, maker)

	token, err := maker.Create(uuid.New(), db_models.RoleUser)
	require.NoError(t, err)

	w := doGet(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Your token has expired! Please log in again.", responseMessage(t, w))
}

func TestProtectDeletedUser(t *testing.T) {
	maker := utils.NewTokenMaker("secret", time.Hour)
	r := newAuthEngine(&fakeResolver{user: nil}, maker)

	token, err := maker.Create(uuid.New(), db_models.RoleUser)
	require.NoError(t, err)

	w := doGet(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "The user belonging to this token does no longer exist.", responseMessage(t, w))
}

func TestProtectPasswordChangedAfterIssue(t *testing.T) {
	maker := utils.NewTokenMaker("secret", time.Hour)
	user := &db_models.User{
		BaseModel:         db_models.BaseModel{ID: uuid.New()},
		Role:              db_models.RoleUser,
		PasswordChangedAt: time.Now().Add(time.Hour).Unix(),
	}
	r := newAuthEngine(&fakeResolver{user: user}, maker)

	token, err := maker.Create(user.ID, user.Role)
	require.NoError(t, err)

	w := doGet(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "User recently changed password! Please log in again.", responseMessage(t, w))
}

func TestRequireRolesForbidden(t *testing.T) {
	maker := utils.NewTokenMaker("secret", time.Hour)
	user := &db_models.User{BaseModel: db_models.BaseModel{ID: uuid.New()}, Role: db_models.RoleUser}
	r := newAuthEngine(&fakeResolver{user: user}, maker, RequireRoles(db_models.RoleAdmin))

	token, err := maker.Create(user.ID, user.Role)
	require.NoError(t, err)

	w := doGet(r, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You do not have permission to perform this action", responseMessage(t, w))
}

func TestRequireSubscription(t *testing.T) {
	maker := utils.NewTokenMaker("secret", time.Hour)
	window := 30 * 24 * time.Hour

	t.Run("stale payment rejected", func(t *testing.T) {
		user := &db_models.User{
			BaseModel:          db_models.BaseModel{ID: uuid.New()},
			Role:               db_models.RoleUser,
			SubscriptionStatus: db_models.SubscriptionInactive,
			LastPaymentAt:      time.Now().Add(-45 * 24 * time.Hour).Unix(),
		}
		r := newAuthEngine(&fakeResolver{user: user}, maker, RequireSubscription(window))

		token, err := maker.Create(user.ID, user.Role)
		require.NoError(t, err)

		w := doGet(r, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("recent payment passes", func(t *testing.T) {
		user := &db_models.User{
			BaseModel:          db_models.BaseModel{ID: uuid.New()},
			Role:               db_models.RoleUser,
			SubscriptionStatus: db_models.SubscriptionInactive,
			LastPaymentAt:      time.Now().Add(-24 * time.Hour).Unix(),
		}
		r := newAuthEngine(&fakeResolver{user: user}, maker, RequireSubscription(window))

		token, err := maker.Create(user.ID, user.Role)
		require.NoError(t, err)

		w := doGet(r, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin bypasses the gate", func(t *testing.T) {
		user := &db_models.User{
			BaseModel:          db_models.BaseModel{ID: uuid.New()},
			Role:               db_models.RoleAdmin,
			SubscriptionStatus: db_models.SubscriptionInactive,
		}
		r := newAuthEngine(&fakeResolver{user: user}, maker, RequireSubscription(window))

		token, err := maker.Create(user.ID, user.Role)
		require.NoError(t, err)

		w := doGet(r, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
