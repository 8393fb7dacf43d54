package handlers

import (
	"gestion_casos_go/services"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// httpError maps the service error taxonomy onto HTTP statuses. Store
// errors are logged server-side and never leaked to the client.
func httpError(err error) error {
	switch {
	case services.IsValidation(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case services.IsNotFound(err):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case services.IsConflict(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		log.Printf("Unhandled error: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error interno del servidor")
	}
}
