package handlers

import (
	"fmt"
	"gestion_casos_go/db"
	"gestion_casos_go/services"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ReporteCasoHandler renders the PDF report for a case. With ?archivar=true
// the report is also stored through the configured storage provider and the
// archive key is returned in a response header.
// GET /reporte_caso/:nocaso/
func ReporteCasoHandler(c echo.Context) error {
	noCaso, err := strconv.Atoi(c.Param("nocaso"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Número de caso inválido")
	}

	pdf, err := services.GenerarReporteCaso(c.Request().Context(), db.DB, noCaso)
	if err != nil {
		return httpError(err)
	}

	if c.QueryParam("archivar") == "true" {
		stored, err := services.ArchivarReporte(c.Request().Context(), noCaso, pdf)
		if err != nil {
			return httpError(err)
		}
		c.Response().Header().Set("X-Reporte-Key", stored.Key)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="reporte_caso_%d.pdf"`, noCaso))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
