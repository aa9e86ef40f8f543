package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/chetegamis/pizzeria-app/models"
	"github.com/chetegamis/pizzeria-app/router"
	"github.com/chetegamis/pizzeria-app/store"
	"github.com/chetegamis/pizzeria-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTestStore(t *testing.T) *store.GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	// Every pooled connection to :memory: would get its own database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderLine{},
	))
	return store.NewGormStore(db)
}

func setupTestRouter(t *testing.T) (*gin.Engine, *store.GormStore) {
	t.Helper()
	s := setupTestStore(t)
	return router.SetupRouter(s), s
}

func newRecorder(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
