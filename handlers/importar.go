package handlers

import (
	"gestion_casos_go/db"
	"gestion_casos_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ImportarClientesHandler bulk-loads clients from an uploaded xlsx workbook
// POST /importar_clientes/ (multipart field "archivo")
func ImportarClientesHandler(c echo.Context) error {
	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Debe adjuntar el archivo de clientes")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No se pudo leer el archivo")
	}
	defer src.Close()

	result, err := services.ImportarClientes(db.DB, src)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}

// PlantillaClientesHandler serves the import template workbook
// GET /plantilla_clientes/
func PlantillaClientesHandler(c echo.Context) error {
	buf, err := services.GenerarPlantillaClientes()
	if err != nil {
		return httpError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="plantilla_clientes.xlsx"`)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
