package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"dormhub/internal/auth"
	"dormhub/internal/controllers"
	"dormhub/internal/db"
	"dormhub/internal/models"
	"dormhub/internal/routes"
	"dormhub/internal/store"
)

// testAPI is a fully wired router over a throwaway sqlite database with the
// admin account seeded, exercised through httptest.
type testAPI struct {
	router *gin.Engine
	store  store.Store
	tokens *auth.TokenService
	db     *gorm.DB
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	require.NoError(t, db.SeedAdmin(gdb))

	s := store.NewGormStore(gdb)
	tokens := auth.NewTokenService("test-secret", time.Hour)
	handler := controllers.NewHandler(s, tokens)

	return &testAPI{
		router: routes.SetupRouter(handler, tokens),
		store:  s,
		tokens: tokens,
		db:     gdb,
	}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// userWithToken creates an account directly in the store and signs a token
// for it, skipping the login endpoint.
func (a *testAPI) userWithToken(t *testing.T, email string, role models.Role) (*models.User, string) {
	t.Helper()

	u := &models.User{Email: email, Name: "Test User", Role: role, Password: "not-a-real-hash"}
	require.NoError(t, a.store.CreateUser(context.Background(), u))

	token, err := a.tokens.Sign(u)
	require.NoError(t, err)
	return u, token
}

// adminToken signs a token for the seeded admin account.
func (a *testAPI) adminToken(t *testing.T) string {
	t.Helper()

	admin, err := a.store.UserByEmail(context.Background(), "admin@local")
	require.NoError(t, err)

	token, err := a.tokens.Sign(admin)
	require.NoError(t, err)
	return token
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	return list
}
