package handlers

import (
	"gestion_casos_go/db"
	"gestion_casos_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// EspecializacionesHandler returns the specialization catalog
// GET /especializaciones/
func EspecializacionesHandler(c echo.Context) error {
	especializaciones, err := services.ListarEspecializaciones(db.DB)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, especializacionesJSON(especializaciones))
}

// CiudadesHandler returns every city
// GET /ciudades/
func CiudadesHandler(c echo.Context) error {
	ciudades, err := services.ListarCiudades(db.DB)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, lugaresJSON(ciudades))
}

// EntidadesHandler returns the entities of a city; an empty list when no
// city is given
// GET /entidades/?ciudad=L001
func EntidadesHandler(c echo.Context) error {
	entidades, err := services.ListarEntidades(db.DB, c.QueryParam("ciudad"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, lugaresJSON(entidades))
}

// AbogadosHandler returns lawyers, optionally filtered by specialization
// GET /abogados/?especializacion=E001
func AbogadosHandler(c echo.Context) error {
	abogados, err := services.ListarAbogados(db.DB, c.QueryParam("especializacion"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, abogadosJSON(abogados))
}

// ImpugnacionesHandler returns the appeal-type catalog
// GET /impugnaciones/
func ImpugnacionesHandler(c echo.Context) error {
	impugnaciones, err := services.ListarImpugnaciones(db.DB)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, impugnacionesJSON(impugnaciones))
}
