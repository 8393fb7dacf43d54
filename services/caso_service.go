package services

import (
	"errors"
	"fmt"
	"gestion_casos_go/models"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ClienteView is the full search result for a client: the client record, all
// of its cases ordered by number, the most recent active case (nil when the
// client has no open case) and the specialization reference list.
type ClienteView struct {
	Cliente           models.Cliente
	Casos             []models.Caso
	CasoActivo        *models.Caso
	Especializaciones []models.Especializacion
}

// BuscarCliente finds a client by exact first and last name, case-insensitively
func BuscarCliente(db *gorm.DB, nombre, apellido string) (*ClienteView, error) {
	nombre = strings.TrimSpace(nombre)
	apellido = strings.TrimSpace(apellido)

	if nombre == "" || apellido == "" {
		return nil, &ValidationError{Message: "Debe ingresar nombre y apellido"}
	}

	var cliente models.Cliente
	err := db.Where("UPPER(NOMCLIENTE) = UPPER(?) AND UPPER(APECLIENTE) = UPPER(?)", nombre, apellido).
		First(&cliente).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Message: "Cliente no encontrado"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query client: %w", err)
	}

	var casos []models.Caso
	if err := db.Where("CODCLIENTE = ?", cliente.CodCliente).
		Order("NOCASO ASC").
		Find(&casos).Error; err != nil {
		return nil, fmt.Errorf("failed to query client cases: %w", err)
	}

	// Most recent open case: highest number with no end date
	var activo models.Caso
	var casoActivo *models.Caso
	err = db.Where("CODCLIENTE = ? AND FCHFIN IS NULL", cliente.CodCliente).
		Order("NOCASO DESC").
		First(&activo).Error
	if err == nil {
		casoActivo = &activo
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to query active case: %w", err)
	}

	especializaciones, err := ListarEspecializaciones(db)
	if err != nil {
		return nil, err
	}

	return &ClienteView{
		Cliente:           cliente,
		Casos:             casos,
		CasoActivo:        casoActivo,
		Especializaciones: especializaciones,
	}, nil
}

// PropuestaCaso is a proposed consecutive for a new case. Nothing is
// reserved; the number only becomes real when GuardarCaso persists it.
type PropuestaCaso struct {
	NoCaso      int
	FechaInicio time.Time
}

// ProponerNumeroCaso computes the next case consecutive (max + 1, starting at 1)
func ProponerNumeroCaso(db *gorm.DB, codCliente string) (*PropuestaCaso, error) {
	if strings.TrimSpace(codCliente) == "" {
		return nil, &ValidationError{Message: "Debe seleccionar un cliente"}
	}

	ultimo, err := maxNumeroCaso(db)
	if err != nil {
		return nil, err
	}

	return &PropuestaCaso{
		NoCaso:      ultimo + 1,
		FechaInicio: time.Now(),
	}, nil
}

func maxNumeroCaso(db *gorm.DB) (int, error) {
	var ultimo int
	err := db.Model(&models.Caso{}).
		Select("COALESCE(MAX(NOCASO), 0)").
		Scan(&ultimo).Error
	if err != nil {
		return 0, fmt.Errorf("failed to query max case number: %w", err)
	}
	return ultimo, nil
}

// GuardarCasoInput carries the fields required to persist a new case
type GuardarCasoInput struct {
	NoCaso          int
	CodCliente      string
	Especializacion string
	Valor           float64
	FechaInicio     string
}

// GuardarCaso persists a new open case. The duplicate pre-check and the
// insert share one write transaction; the NOCASO primary key backstops the
// check under concurrent writers.
func GuardarCaso(db *gorm.DB, input GuardarCasoInput) error {
	if input.NoCaso <= 0 || input.CodCliente == "" || input.Especializacion == "" || input.FechaInicio == "" {
		return &ValidationError{Message: "Todos los campos son obligatorios"}
	}
	if input.Valor <= 0 {
		return &ValidationError{Message: "El valor debe ser mayor a cero"}
	}

	inicio, err := ParseFecha(input.FechaInicio)
	if err != nil {
		return &ValidationError{Message: "Fecha de inicio inválida"}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Caso{}).
			Where("NOCASO = ?", input.NoCaso).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check case number uniqueness: %w", err)
		}
		if count > 0 {
			return &ConflictError{Message: fmt.Sprintf("El caso #%d ya existe", input.NoCaso)}
		}

		valor := input.Valor
		caso := models.Caso{
			NoCaso:             input.NoCaso,
			CodCliente:         input.CodCliente,
			CodEspecializacion: input.Especializacion,
			FchInicio:          inicio,
			FchFin:             nil,
			Valor:              &valor,
		}

		if err := tx.Create(&caso).Error; err != nil {
			return fmt.Errorf("failed to create case: %w", err)
		}
		return nil
	})
}

// CasoView is a case together with its full stage history
type CasoView struct {
	Caso        models.Caso
	Expedientes []models.Expediente
}

// BuscarCaso fetches a case by number with its expedientes ordered by sequence
func BuscarCaso(db *gorm.DB, noCaso int) (*CasoView, error) {
	var caso models.Caso
	err := db.First(&caso, "NOCASO = ?", noCaso).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Message: "Caso no encontrado"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query case: %w", err)
	}

	var expedientes []models.Expediente
	if err := db.Where("NOCASO = ?", noCaso).
		Order("CONSECEXPE ASC").
		Find(&expedientes).Error; err != nil {
		return nil, fmt.Errorf("failed to query case files: %w", err)
	}

	return &CasoView{Caso: caso, Expedientes: expedientes}, nil
}
