package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ad-hub/config"
	"ad-hub/database"
	"ad-hub/logger"
	"ad-hub/web/service"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("ADH_LOG_FOLDER", os.TempDir())
	logger.InitLogger(logging.DEBUG)
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	dbConfig := &config.DatabaseConfig{
		Type: config.DatabaseTypeSQLite,
		SQLite: config.SQLiteConfig{
			Path: filepath.Join(t.TempDir(), "test.db"),
		},
	}
	db, err := database.InitDB(dbConfig)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.CloseDB(db)
	})

	tokenService := service.NewTokenService("test-secret")

	engine := gin.New()
	g := engine.Group("/")
	NewUserController(g, service.NewUserService(db), tokenService)
	NewAdController(g, tokenService, service.NewAdService(db), service.NewCommentService(db))
	return engine
}

func doJSON(engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// registerAndLogin goes through the real register and token endpoints and
// returns a bearer token for the given email.
func registerAndLogin(t *testing.T, engine *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(engine, http.MethodPost, "/register", "", gin.H{"email": email, "password": "secret"})
	require.Equal(t, http.StatusCreated, w.Code)

	form := url.Values{"username": {email}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "bearer", body["token_type"])
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func createAd(t *testing.T, engine *gin.Engine, token, title, description string) int {
	t.Helper()
	w := doJSON(engine, http.MethodPost, "/ads/", token, gin.H{"title": title, "description": description})
	require.Equal(t, http.StatusCreated, w.Code)
	return int(decodeBody(t, w)["id"].(float64))
}

func TestRegister(t *testing.T) {
	engine := setupTestAPI(t)

	w := doJSON(engine, http.MethodPost, "/register", "", gin.H{"email": "joe@doe.com", "password": "secret"})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "joe@doe.com", body["email"])
	assert.NotZero(t, body["id"])
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	engine := setupTestAPI(t)

	w := doJSON(engine, http.MethodPost, "/register", "", gin.H{"email": "joe@doe.com", "password": "secret"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(engine, http.MethodPost, "/register", "", gin.H{"email": "joe@doe.com", "password": "secret"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTokenWrongCredentials(t *testing.T) {
	engine := setupTestAPI(t)

	w := doJSON(engine, http.MethodPost, "/register", "", gin.H{"email": "joe@doe.com", "password": "secret"})
	require.Equal(t, http.StatusCreated, w.Code)

	form := url.Values{"username": {"joe@doe.com"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, rec.Body.String(), "access_token")
}

func TestCreateAdNoAuth(t *testing.T) {
	engine := setupTestAPI(t)

	w := doJSON(engine, http.MethodPost, "/ads/", "", gin.H{"title": "Test Ad", "description": "Test Description"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(engine, http.MethodPost, "/ads/", "bogus-token", gin.H{"title": "Test Ad", "description": "Test Description"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAndListAds(t *testing.T) {
	engine := setupTestAPI(t)
	token := registerAndLogin(t, engine, "a@b.com")

	w := doJSON(engine, http.MethodPost, "/ads/", token, gin.H{"title": "Test Ad", "description": "Test Description"})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Test Ad", body["title"])
	assert.NotZero(t, body["owner_id"])

	createAd(t, engine, token, "Ad 2", "2nd Ad")

	rec := doJSON(engine, http.MethodGet, "/ads/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var ads []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ads))
	assert.Len(t, ads, 2)
}

func TestUpdateAd(t *testing.T) {
	engine := setupTestAPI(t)
	tokenA := registerAndLogin(t, engine, "a@b.com")
	tokenB := registerAndLogin(t, engine, "c@d.com")

	adId := createAd(t, engine, tokenA, "Ad 1", "1st Ad")

	// non-owner is rejected
	w := doJSON(engine, http.MethodPut, fmt.Sprintf("/ads/%d", adId), tokenB, gin.H{"title": "X"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// owner updates only the provided field
	w = doJSON(engine, http.MethodPut, fmt.Sprintf("/ads/%d", adId), tokenA, gin.H{"description": "Y"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Ad 1", body["title"])
	assert.Equal(t, "Y", body["description"])

	// missing ad
	w = doJSON(engine, http.MethodPut, "/ads/12345", tokenA, gin.H{"title": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAd(t *testing.T) {
	engine := setupTestAPI(t)
	tokenA := registerAndLogin(t, engine, "a@b.com")
	tokenB := registerAndLogin(t, engine, "c@d.com")

	adId := createAd(t, engine, tokenA, "Test Ad", "An Ad")

	w := doJSON(engine, http.MethodPost, fmt.Sprintf("/ads/%d/comments/", adId), tokenB, gin.H{"text": "Wow!"})
	require.Equal(t, http.StatusCreated, w.Code)

	// non-owner cannot delete
	w = doJSON(engine, http.MethodDelete, fmt.Sprintf("/ads/%d", adId), tokenB, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// owner deletes the ad and its comments as one unit
	w = doJSON(engine, http.MethodDelete, fmt.Sprintf("/ads/%d", adId), tokenA, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(engine, http.MethodGet, fmt.Sprintf("/ads/%d/comments/", adId), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(engine, http.MethodDelete, fmt.Sprintf("/ads/%d", adId), tokenA, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddComment(t *testing.T) {
	engine := setupTestAPI(t)
	tokenA := registerAndLogin(t, engine, "a@b.com")

	adId := createAd(t, engine, tokenA, "Ad 1", "1st Ad")

	w := doJSON(engine, http.MethodPost, fmt.Sprintf("/ads/%d/comments/", adId), "", gin.H{"text": "Great!"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(engine, http.MethodPost, fmt.Sprintf("/ads/%d/comments/", adId), tokenA, gin.H{"text": "Great!"})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(adId), body["ad_id"])
	assert.NotZero(t, body["owner_id"])

	// one comment per user per ad
	w = doJSON(engine, http.MethodPost, fmt.Sprintf("/ads/%d/comments/", adId), tokenA, gin.H{"text": "Excellent!"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(engine, http.MethodPost, "/ads/12345/comments/", tokenA, gin.H{"text": "Great!"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListComments(t *testing.T) {
	engine := setupTestAPI(t)
	tokenA := registerAndLogin(t, engine, "a@b.com")

	adId := createAd(t, engine, tokenA, "Ad 1", "1st Ad")
	for i := 0; i < 3; i++ {
		token := registerAndLogin(t, engine, fmt.Sprintf("user%d@b.com", i))
		w := doJSON(engine, http.MethodPost, fmt.Sprintf("/ads/%d/comments/", adId), token, gin.H{"text": fmt.Sprintf("comment %d", i)})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(engine, http.MethodGet, fmt.Sprintf("/ads/%d/comments/", adId), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var comments []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	assert.Len(t, comments, 3)

	w = doJSON(engine, http.MethodGet, "/ads/12345/comments/", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
