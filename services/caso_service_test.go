package services

import (
	"gestion_casos_go/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuscarCliente(t *testing.T) {
	db := setupTestDB(t)
	crearCliente(t, db, "C002", "Luis", "Martínez")

	t.Run("missing fields", func(t *testing.T) {
		_, err := BuscarCliente(db, "", "Martínez")
		assert.True(t, IsValidation(err))

		_, err = BuscarCliente(db, "Luis", "   ")
		assert.True(t, IsValidation(err))
	})

	t.Run("not found", func(t *testing.T) {
		_, err := BuscarCliente(db, "Pedro", "Gómez")
		assert.True(t, IsNotFound(err))
	})

	t.Run("case insensitive match", func(t *testing.T) {
		view, err := BuscarCliente(db, "LUIS", "Martínez")
		assert.NoError(t, err)
		assert.Equal(t, "C002", view.Cliente.CodCliente)
	})

	t.Run("cases ordered with active flag", func(t *testing.T) {
		crearCaso(t, db, 3, "C002", timePtr(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
		crearCaso(t, db, 1, "C002", nil)
		crearCaso(t, db, 7, "C002", nil)

		view, err := BuscarCliente(db, "Luis", "Martínez")
		assert.NoError(t, err)
		assert.Len(t, view.Casos, 3)
		assert.Equal(t, 1, view.Casos[0].NoCaso)
		assert.Equal(t, 3, view.Casos[1].NoCaso)
		assert.Equal(t, 7, view.Casos[2].NoCaso)
		assert.False(t, view.Casos[1].IsActivo())

		// Highest open case wins
		assert.NotNil(t, view.CasoActivo)
		assert.Equal(t, 7, view.CasoActivo.NoCaso)
	})

	t.Run("no active case", func(t *testing.T) {
		crearCliente(t, db, "C003", "Ana", "Rojas")
		crearCaso(t, db, 9, "C003", timePtr(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))

		view, err := BuscarCliente(db, "Ana", "Rojas")
		assert.NoError(t, err)
		assert.Nil(t, view.CasoActivo)
	})
}

func TestProponerNumeroCaso(t *testing.T) {
	db := setupTestDB(t)
	crearCliente(t, db, "C002", "Luis", "Martínez")

	t.Run("missing client", func(t *testing.T) {
		_, err := ProponerNumeroCaso(db, "  ")
		assert.True(t, IsValidation(err))
	})

	t.Run("empty table starts at 1", func(t *testing.T) {
		propuesta, err := ProponerNumeroCaso(db, "C002")
		assert.NoError(t, err)
		assert.Equal(t, 1, propuesta.NoCaso)
	})

	t.Run("gaps are ignored", func(t *testing.T) {
		crearCaso(t, db, 7, "C002", nil)

		propuesta, err := ProponerNumeroCaso(db, "C002")
		assert.NoError(t, err)
		assert.Equal(t, 8, propuesta.NoCaso)
	})
}

func TestGuardarCaso(t *testing.T) {
	db := setupTestDB(t)
	crearCliente(t, db, "C002", "Luis", "Martínez")

	t.Run("missing fields", func(t *testing.T) {
		err := GuardarCaso(db, GuardarCasoInput{NoCaso: 1, CodCliente: "C002", Valor: 100, FechaInicio: "2024-12-10"})
		assert.True(t, IsValidation(err))
	})

	t.Run("non positive value", func(t *testing.T) {
		err := GuardarCaso(db, GuardarCasoInput{NoCaso: 1, CodCliente: "C002", Especializacion: "E001", Valor: 0, FechaInicio: "2024-12-10"})
		assert.True(t, IsValidation(err))
	})

	t.Run("invalid date", func(t *testing.T) {
		err := GuardarCaso(db, GuardarCasoInput{NoCaso: 1, CodCliente: "C002", Especializacion: "E001", Valor: 100, FechaInicio: "10/12/2024"})
		assert.True(t, IsValidation(err))
	})

	t.Run("success inserts open case", func(t *testing.T) {
		err := GuardarCaso(db, GuardarCasoInput{NoCaso: 1, CodCliente: "C002", Especializacion: "E001", Valor: 1500, FechaInicio: "2024-12-10"})
		assert.NoError(t, err)

		var caso models.Caso
		assert.NoError(t, db.First(&caso, "NOCASO = ?", 1).Error)
		assert.Nil(t, caso.FchFin)
		assert.NotNil(t, caso.Valor)
		assert.Equal(t, 1500.0, *caso.Valor)
	})

	t.Run("duplicate number leaves store unchanged", func(t *testing.T) {
		err := GuardarCaso(db, GuardarCasoInput{NoCaso: 1, CodCliente: "C002", Especializacion: "E002", Valor: 900, FechaInicio: "2024-12-11"})
		assert.True(t, IsConflict(err))

		var count int64
		db.Model(&models.Caso{}).Where("NOCASO = ?", 1).Count(&count)
		assert.Equal(t, int64(1), count)

		var caso models.Caso
		db.First(&caso, "NOCASO = ?", 1)
		assert.Equal(t, "E001", caso.CodEspecializacion)
	})
}

func TestBuscarCaso(t *testing.T) {
	db := setupTestDB(t)
	crearCliente(t, db, "C002", "Luis", "Martínez")

	t.Run("not found", func(t *testing.T) {
		_, err := BuscarCaso(db, 99)
		assert.True(t, IsNotFound(err))
	})

	t.Run("case with ordered expedientes", func(t *testing.T) {
		crearCaso(t, db, 5, "C002", nil)
		for _, consec := range []int{2, 1, 3} {
			assert.NoError(t, db.Create(&models.Expediente{
				NoCaso:             5,
				ConsecExpe:         consec,
				CodEspecializacion: "E001",
				IDTipoCaso2:        1,
				CodLugar:           "T001",
				Cedula:             "90001",
				FchEtapa:           time.Now(),
			}).Error)
		}

		view, err := BuscarCaso(db, 5)
		assert.NoError(t, err)
		assert.Equal(t, 5, view.Caso.NoCaso)
		assert.Len(t, view.Expedientes, 3)
		assert.Equal(t, 1, view.Expedientes[0].ConsecExpe)
		assert.Equal(t, 3, view.Expedientes[2].ConsecExpe)
	})
}
