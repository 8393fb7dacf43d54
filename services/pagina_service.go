package services

import (
	"fmt"
	"gestion_casos_go/models"
	"log"
	"strconv"

	"gorm.io/gorm"
)

// Page actions dispatched by the template tier
const (
	AccionBuscarCliente = "buscar_cliente"
	AccionCrearCaso     = "crear_caso"
	AccionGuardarCaso   = "guardar_caso"
	AccionLimpiar       = "limpiar"
)

// CasoNuevo is a drafted case shown in the form before it is saved
type CasoNuevo struct {
	NoCaso      int
	FechaInicio string
}

// CasoPage is the view model for the case-management page. On failure it
// carries whatever partial state was assembled before the failing step.
type CasoPage struct {
	Especializaciones []models.Especializacion
	Cliente           *models.Cliente
	CasosCliente      []models.Caso
	CasoActivo        *models.Caso
	CasoNuevo         *CasoNuevo
	Mensaje           string
	Error             string
}

// CasoPageForm carries the raw form values submitted by the page
type CasoPageForm struct {
	Nombre          string
	Apellido        string
	CodCliente      string
	NomCliente      string
	ApellCliente    string
	NoCaso          string
	Especializacion string
	Valor           string
	FechaInicio     string
}

// GestionarCasoPage assembles the page view model for one user action. It
// replaces the old loopback-HTTP orchestration with direct service calls;
// a failure partway leaves the already-fetched state in place so the page
// can re-render it alongside the error.
func GestionarCasoPage(db *gorm.DB, accion string, form CasoPageForm) *CasoPage {
	page := &CasoPage{}

	// Specializations are always available to the form
	especializaciones, err := ListarEspecializaciones(db)
	if err != nil {
		log.Printf("Error loading specializations for page: %v", err)
		page.Error = "Error al cargar especializaciones"
	} else {
		page.Especializaciones = especializaciones
	}

	switch accion {
	case AccionBuscarCliente:
		cargarCliente(db, page, form.Nombre, form.Apellido)

	case AccionCrearCaso:
		if form.CodCliente == "" {
			page.Error = "Debe seleccionar un cliente primero"
			return page
		}

		propuesta, err := ProponerNumeroCaso(db, form.CodCliente)
		if err != nil {
			page.Error = mensajeDeError(err, "Error al crear caso")
			return page
		}

		page.CasoNuevo = &CasoNuevo{
			NoCaso:      propuesta.NoCaso,
			FechaInicio: FormatFecha(propuesta.FechaInicio),
		}
		page.Mensaje = fmt.Sprintf("Nuevo caso #%d creado. Complete los datos y guarde.", propuesta.NoCaso)
		cargarCliente(db, page, form.NomCliente, form.ApellCliente)

	case AccionGuardarCaso:
		cliente := &models.Cliente{
			CodCliente: form.CodCliente,
			NomCliente: form.NomCliente,
			ApeCliente: form.ApellCliente,
		}

		noCaso, err := strconv.Atoi(form.NoCaso)
		if err != nil {
			page.Error = "Número de caso inválido"
			page.Cliente = cliente
			return page
		}

		valor, err := strconv.ParseFloat(form.Valor, 64)
		if err != nil {
			page.Error = "Valor inválido"
			page.Cliente = cliente
			return page
		}

		err = GuardarCaso(db, GuardarCasoInput{
			NoCaso:          noCaso,
			CodCliente:      form.CodCliente,
			Especializacion: form.Especializacion,
			Valor:           valor,
			FechaInicio:     form.FechaInicio,
		})
		if err != nil {
			page.Error = mensajeDeError(err, "Error al guardar caso")
			page.Cliente = cliente
			return page
		}

		page.Mensaje = fmt.Sprintf("Caso #%d guardado exitosamente", noCaso)
		// The store changed: re-fetch so the page shows the saved case
		cargarCliente(db, page, form.NomCliente, form.ApellCliente)

	case AccionLimpiar:
		// Empty context, specializations only
	}

	return page
}

// cargarCliente fills the client portion of the page, downgrading failures
// to a page-level error message
func cargarCliente(db *gorm.DB, page *CasoPage, nombre, apellido string) {
	view, err := BuscarCliente(db, nombre, apellido)
	if err != nil {
		if page.Error == "" {
			page.Error = mensajeDeError(err, "Cliente no encontrado")
		}
		return
	}

	page.Cliente = &view.Cliente
	page.CasosCliente = view.Casos
	page.CasoActivo = view.CasoActivo
	if len(view.Especializaciones) > 0 {
		page.Especializaciones = view.Especializaciones
	}
}

// mensajeDeError keeps taxonomy messages user-visible and hides store errors
func mensajeDeError(err error, generic string) string {
	if IsValidation(err) || IsNotFound(err) || IsConflict(err) {
		return err.Error()
	}
	log.Printf("Unexpected error building case page: %v", err)
	return generic
}
