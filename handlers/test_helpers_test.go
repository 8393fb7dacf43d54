package handlers

import (
	"gestion_casos_go/config"
	"gestion_casos_go/db"
	"gestion_casos_go/models"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Unique shared memory name to isolate tests
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	err = testDB.AutoMigrate(
		&models.Cliente{},
		&models.Caso{},
		&models.Expediente{},
		&models.Especializacion{},
		&models.Lugar{},
		&models.Abogado{},
		&models.AbogadoEspecializacion{},
		&models.EspeciaEtapa{},
		&models.Impugnacion{},
	)
	assert.NoError(t, err)

	// Set global DB
	db.DB = testDB

	return testDB
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", &config.Config{
		Environment: "test",
	})

	return e, c, rec
}

func mustFecha(s string) time.Time {
	parsed, _ := time.Parse("2006-01-02", s)
	return parsed
}

// assertHTTPError checks the status a handler error would be rendered with
func assertHTTPError(t *testing.T, err error, code int) {
	assert.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, code, he.Code)
}
