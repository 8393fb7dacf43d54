package handlers

import (
	"encoding/json"
	"gestion_casos_go/services"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferenciaHandlers(t *testing.T) {
	database := setupTestDB(t)
	assert.NoError(t, services.SeedReferenceData(database))

	t.Run("especializaciones", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/especializaciones/", nil)
		assert.NoError(t, EspecializacionesHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Len(t, resp, 4)
		assert.Equal(t, "E001", resp[0]["codigo"])
	})

	t.Run("ciudades", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/ciudades/", nil)
		assert.NoError(t, CiudadesHandler(c))

		var resp []map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Len(t, resp, 3)
	})

	t.Run("entidades filtered by city", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/entidades/?ciudad=L001", nil)
		assert.NoError(t, EntidadesHandler(c))

		var resp []map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Len(t, resp, 2)
		for _, entidad := range resp {
			assert.Contains(t, []string{"T001", "T002"}, entidad["cod"])
		}
	})

	t.Run("entidades without city is an empty array", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/entidades/", nil)
		assert.NoError(t, EntidadesHandler(c))
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("abogados filtered by specialization", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/abogados/?especializacion=E001", nil)
		assert.NoError(t, AbogadosHandler(c))

		var resp []map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Len(t, resp, 2)
		// Ordered by surname: Díaz before Gómez
		assert.Equal(t, "Marta Díaz", resp[0]["nom"])
	})

	t.Run("abogados unfiltered", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/abogados/", nil)
		assert.NoError(t, AbogadosHandler(c))

		var resp []map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Len(t, resp, 3)
	})

	t.Run("impugnaciones", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/impugnaciones/", nil)
		assert.NoError(t, ImpugnacionesHandler(c))

		var resp []map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Len(t, resp, 3)
		assert.Equal(t, "Apelación", resp[0]["nom"])
	})
}
