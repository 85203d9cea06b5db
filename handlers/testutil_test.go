package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"littlelemon-api/config"
	"littlelemon-api/middleware"
	"littlelemon-api/models"
	"littlelemon-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter gives each test its own in-memory database and a fully wired
// router with throttling limits high enough to stay out of the way.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.MigrateAndSeed(db))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r, middleware.NewThrottle(10000, 10000, time.Minute))
	return r
}

func createUser(t *testing.T, username string, groups ...string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:     username,
		Email:        username + "@littlelemon.test",
		PasswordHash: string(hash),
	}
	require.NoError(t, config.DB.Create(&user).Error)

	for _, name := range groups {
		var group models.Group
		require.NoError(t, config.DB.Where("name = ?", name).First(&group).Error)
		require.NoError(t, config.DB.Model(&user).Association("Groups").Append(&group))
	}
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)
	return token
}

func createMenuItem(t *testing.T, title, price string) models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		Title: title,
		Price: decimal.RequireFromString(price),
	}
	require.NoError(t, config.DB.Create(&item).Error)
	return item
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
