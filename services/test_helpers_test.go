package services

import (
	"gestion_casos_go/models"
	"testing"
	"time"

	"github.com/google/uuid"
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

	return testDB
}

func crearCliente(t *testing.T, db *gorm.DB, cod, nom, ape string) *models.Cliente {
	cliente := &models.Cliente{CodCliente: cod, NomCliente: nom, ApeCliente: ape, NDocumento: "123"}
	assert.NoError(t, db.Create(cliente).Error)
	return cliente
}

func crearCaso(t *testing.T, db *gorm.DB, noCaso int, codCliente string, fin *time.Time) *models.Caso {
	valor := 1000.0
	caso := &models.Caso{
		NoCaso:             noCaso,
		CodCliente:         codCliente,
		CodEspecializacion: "E001",
		FchInicio:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		FchFin:             fin,
		Valor:              &valor,
	}
	assert.NoError(t, db.Create(caso).Error)
	return caso
}

func timePtr(t time.Time) *time.Time {
	return &t
}
