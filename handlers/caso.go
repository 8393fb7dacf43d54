package handlers

import (
	"gestion_casos_go/db"
	"gestion_casos_go/models"
	"gestion_casos_go/services"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// casoJSON shapes a case for the wire: dates as YYYY-MM-DD strings, null
// value and end date stay null
func casoJSON(caso models.Caso) echo.Map {
	return echo.Map{
		"nocaso":          caso.NoCaso,
		"especializacion": caso.CodEspecializacion,
		"inicio":          services.FormatFecha(caso.FchInicio),
		"fin":             services.FormatFechaPtr(caso.FchFin),
		"valor":           caso.Valor,
		"activo":          caso.IsActivo(),
	}
}

func clienteJSON(cliente models.Cliente) echo.Map {
	return echo.Map{
		"cod": cliente.CodCliente,
		"nom": cliente.NomCliente,
		"ape": cliente.ApeCliente,
		"doc": cliente.NDocumento,
	}
}

func especializacionesJSON(especializaciones []models.Especializacion) []echo.Map {
	result := []echo.Map{}
	for _, e := range especializaciones {
		result = append(result, echo.Map{"codigo": e.CodEspecializacion, "nombre": e.NomEspecializacion})
	}
	return result
}

type buscarClienteRequest struct {
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	NomCliente   string `json:"nomcliente"`
	ApellCliente string `json:"apellcliente"`
}

// BuscarClienteHandler finds a client by name and returns it with its case
// history, active case and the specialization catalog.
// GET /buscar_cliente/?nombre=Luis&apellido=Martínez or POST with a JSON body
func BuscarClienteHandler(c echo.Context) error {
	nombre := c.QueryParam("nombre")
	apellido := c.QueryParam("apellido")

	if c.Request().Method == http.MethodPost {
		var req buscarClienteRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Datos inválidos")
		}
		nombre = req.Nombre
		apellido = req.Apellido
		// Older form field names are still accepted
		if nombre == "" {
			nombre = req.NomCliente
		}
		if apellido == "" {
			apellido = req.ApellCliente
		}
	}

	view, err := services.BuscarCliente(db.DB, nombre, apellido)
	if err != nil {
		return httpError(err)
	}

	casos := []echo.Map{}
	for _, caso := range view.Casos {
		casos = append(casos, casoJSON(caso))
	}

	var casoActivo interface{}
	if view.CasoActivo != nil {
		casoActivo = casoJSON(*view.CasoActivo)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"cliente":           clienteJSON(view.Cliente),
		"casos_cliente":     casos,
		"caso_activo":       casoActivo,
		"especializaciones": especializacionesJSON(view.Especializaciones),
	})
}

type crearCasoRequest struct {
	CodCliente   string `json:"codcliente"`
	NomCliente   string `json:"nomcliente"`
	ApellCliente string `json:"apellcliente"`
	NDocumento   string `json:"ndocumento"`
}

// CrearCasoHandler proposes the next case consecutive for a client. The
// number is not reserved; guardar_caso persists it.
// POST /crear_caso/
func CrearCasoHandler(c echo.Context) error {
	var req crearCasoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Datos inválidos")
	}

	propuesta, err := services.ProponerNumeroCaso(db.DB, req.CodCliente)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"nocaso":       propuesta.NoCaso,
		"fecha_inicio": services.FormatFecha(propuesta.FechaInicio),
		"cliente": echo.Map{
			"cod": req.CodCliente,
			"nom": req.NomCliente,
			"ape": req.ApellCliente,
			"doc": req.NDocumento,
		},
	})
}

type guardarCasoRequest struct {
	NoCaso          int      `json:"nocaso"`
	CodCliente      string   `json:"codcliente"`
	Especializacion string   `json:"especializacion"`
	Valor           *float64 `json:"valor"`
	FechaInicio     string   `json:"fechaInicio"`
}

// GuardarCasoHandler persists a new open case
// POST /guardar_caso/
func GuardarCasoHandler(c echo.Context) error {
	var req guardarCasoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Datos inválidos")
	}

	if req.Valor == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Todos los campos son obligatorios")
	}

	err := services.GuardarCaso(db.DB, services.GuardarCasoInput{
		NoCaso:          req.NoCaso,
		CodCliente:      req.CodCliente,
		Especializacion: req.Especializacion,
		Valor:           *req.Valor,
		FechaInicio:     req.FechaInicio,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"mensaje": "Caso creado correctamente"})
}

// BuscarCasoHandler fetches a case with its stage history
// GET /buscar_caso/:nocaso/
func BuscarCasoHandler(c echo.Context) error {
	noCaso, err := strconv.Atoi(c.Param("nocaso"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Número de caso inválido")
	}

	view, err := services.BuscarCaso(db.DB, noCaso)
	if err != nil {
		return httpError(err)
	}

	expedientes := []echo.Map{}
	for _, e := range view.Expedientes {
		expedientes = append(expedientes, echo.Map{
			"consec":  e.ConsecExpe,
			"etapa":   e.IDTipoCaso2,
			"lugar":   e.CodLugar,
			"abogado": e.Cedula,
			"fecha":   services.FormatFecha(e.FchEtapa),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"caso": echo.Map{
			"nocaso":  view.Caso.NoCaso,
			"cliente": view.Caso.CodCliente,
			"esp":     view.Caso.CodEspecializacion,
			"inicio":  services.FormatFecha(view.Caso.FchInicio),
			"fin":     services.FormatFechaPtr(view.Caso.FchFin),
			"valor":   view.Caso.Valor,
		},
		"lista_expedientes": expedientes,
	})
}
