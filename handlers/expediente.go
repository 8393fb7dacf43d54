package handlers

import (
	"gestion_casos_go/db"
	"gestion_casos_go/models"
	"gestion_casos_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

func abogadosJSON(abogados []models.Abogado) []echo.Map {
	result := []echo.Map{}
	for _, a := range abogados {
		result = append(result, echo.Map{"ced": a.Cedula, "nom": a.NombreCompleto()})
	}
	return result
}

func lugaresJSON(lugares []models.Lugar) []echo.Map {
	result := []echo.Map{}
	for _, l := range lugares {
		result = append(result, echo.Map{"cod": l.CodLugar, "nom": l.NomLugar})
	}
	return result
}

func impugnacionesJSON(impugnaciones []models.Impugnacion) []echo.Map {
	result := []echo.Map{}
	for _, i := range impugnaciones {
		result = append(result, echo.Map{"cod": i.CodImpugnacion, "nom": i.NomImpugnacion})
	}
	return result
}

type crearExpedienteRequest struct {
	NoCaso int    `json:"nocaso"`
	Esp    string `json:"esp"`
}

// CrearExpedienteHandler prepares a new stage: proposed sequence, default
// stage for the specialization and the candidate reference lists
// POST /crear_expediente/
func CrearExpedienteHandler(c echo.Context) error {
	var req crearExpedienteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Datos inválidos")
	}

	preparado, err := services.PrepararExpediente(db.DB, req.NoCaso, req.Esp)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"expediente": echo.Map{
			"consec":  preparado.ProximoConsec,
			"idetapa": preparado.EtapaInicial,
			"etapa":   preparado.CodEtapa,
			"fecha":   services.FormatFecha(preparado.Fecha),
		},
		"abogados":      abogadosJSON(preparado.Abogados),
		"ciudades":      lugaresJSON(preparado.Ciudades),
		"impugnaciones": impugnacionesJSON(preparado.Impugnaciones),
	})
}

type guardarExpedienteRequest struct {
	NoCaso  int    `json:"nocaso"`
	Abogado string `json:"abogado"`
	Ciudad  string `json:"ciudad"`
	Entidad string `json:"entidad"`
	NoEtapa *int   `json:"noEtapa"`
}

// GuardarExpedienteHandler appends a stage to a case. The sequence is
// computed server-side; the response carries the assigned number.
// POST /guardar_expediente/
func GuardarExpedienteHandler(c echo.Context) error {
	var req guardarExpedienteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Datos inválidos")
	}

	consec, err := services.GuardarExpediente(db.DB, services.GuardarExpedienteInput{
		NoCaso:  req.NoCaso,
		Cedula:  req.Abogado,
		Ciudad:  req.Ciudad,
		Entidad: req.Entidad,
		Etapa:   req.NoEtapa,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": "Etapa guardada correctamente",
		"nuevoNo": consec,
	})
}
