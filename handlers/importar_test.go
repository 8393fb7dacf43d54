package handlers

import (
	"bytes"
	"encoding/json"
	"gestion_casos_go/models"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func buildClientesUpload(t *testing.T, rows [][]string) (*bytes.Buffer, string) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", "Clientes")

	f.SetCellValue("Clientes", "A1", "Código*")
	f.SetCellValue("Clientes", "B1", "Nombre*")
	f.SetCellValue("Clientes", "C1", "Apellido*")
	f.SetCellValue("Clientes", "D1", "Documento")

	for i, row := range rows {
		for j, value := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue("Clientes", cell, value)
		}
	}

	workbook, err := f.WriteToBuffer()
	assert.NoError(t, err)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("archivo", "clientes.xlsx")
	assert.NoError(t, err)
	_, err = part.Write(workbook.Bytes())
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestImportarClientesHandler(t *testing.T) {
	database := setupTestDB(t)
	database.Create(&models.Cliente{CodCliente: "C001", NomCliente: "María", ApeCliente: "Pérez"})

	t.Run("missing file", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodPost, "/importar_clientes/", nil)
		assertHTTPError(t, ImportarClientesHandler(c), http.StatusBadRequest)
	})

	t.Run("import with duplicates and invalid rows", func(t *testing.T) {
		body, contentType := buildClientesUpload(t, [][]string{
			{"C010", "Pedro", "Gómez", "20000010"},
			{"C001", "María", "Pérez", "10000001"}, // already present
			{"", "Sofía", "López", ""},             // missing code
		})

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/importar_clientes/", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, ImportarClientesHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Equal(t, float64(3), resp["total_procesados"])
		assert.Equal(t, float64(1), resp["creados"])
		assert.Equal(t, float64(2), resp["omitidos"])
		assert.Len(t, resp["errores"], 2)

		var count int64
		database.Model(&models.Cliente{}).Count(&count)
		assert.Equal(t, int64(2), count)
	})
}

func TestPlantillaClientesHandler(t *testing.T) {
	setupTestDB(t)

	_, c, rec := setupEcho(http.MethodGet, "/plantilla_clientes/", nil)
	assert.NoError(t, PlantillaClientesHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "plantilla_clientes.xlsx")

	// Response is a readable workbook carrying the expected headers
	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	assert.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue("Clientes", "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Código*", value)
}
