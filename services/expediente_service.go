package services

import (
	"errors"
	"fmt"
	"gestion_casos_go/models"
	"time"

	"gorm.io/gorm"
)

// ExpedientePreparado is everything the UI needs to register a new stage:
// the proposed sequence, the default stage for the specialization (nil when
// no mapping exists) and the candidate reference lists.
type ExpedientePreparado struct {
	ProximoConsec int
	EtapaInicial  *int
	CodEtapa      *string
	Fecha         time.Time
	Abogados      []models.Abogado
	Ciudades      []models.Lugar
	Impugnaciones []models.Impugnacion
}

// PrepararExpediente computes the next per-case sequence and gathers the
// candidate lawyers, cities and appeal types for a new stage. The sequence is
// a proposal only; GuardarExpediente recomputes it when persisting.
func PrepararExpediente(db *gorm.DB, noCaso int, especializacion string) (*ExpedientePreparado, error) {
	if noCaso <= 0 || especializacion == "" {
		return nil, &ValidationError{Message: "Datos incompletos"}
	}

	ultimo, err := maxConsecExpediente(db, noCaso)
	if err != nil {
		return nil, err
	}

	// Default stage for the specialization; absence is not an error
	var etapaInicial *int
	var codEtapa *string
	var mapping models.EspeciaEtapa
	err = db.Where("CODESPECIALIZACION = ? AND IDTIPOCASO2 = ?", especializacion, models.TipoCasoInicial).
		First(&mapping).Error
	if err == nil {
		tipo := mapping.IDTipoCaso2
		etapa := mapping.CodEtapa
		etapaInicial = &tipo
		codEtapa = &etapa
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to query default stage: %w", err)
	}

	abogados, err := ListarAbogados(db, especializacion)
	if err != nil {
		return nil, err
	}

	ciudades, err := ListarCiudades(db)
	if err != nil {
		return nil, err
	}

	impugnaciones, err := ListarImpugnaciones(db)
	if err != nil {
		return nil, err
	}

	return &ExpedientePreparado{
		ProximoConsec: ultimo + 1,
		EtapaInicial:  etapaInicial,
		CodEtapa:      codEtapa,
		Fecha:         time.Now(),
		Abogados:      abogados,
		Ciudades:      ciudades,
		Impugnaciones: impugnaciones,
	}, nil
}

func maxConsecExpediente(db *gorm.DB, noCaso int) (int, error) {
	var ultimo int
	err := db.Model(&models.Expediente{}).
		Where("NOCASO = ?", noCaso).
		Select("COALESCE(MAX(CONSECEXPE), 0)").
		Scan(&ultimo).Error
	if err != nil {
		return 0, fmt.Errorf("failed to query max sequence: %w", err)
	}
	return ultimo, nil
}

// GuardarExpedienteInput carries the fields required to persist a stage.
// There is no client-supplied sequence: it is always computed server-side.
type GuardarExpedienteInput struct {
	NoCaso  int
	Cedula  string
	Ciudad  string
	Entidad string
	Etapa   *int
}

// GuardarExpediente appends a stage to a case. The sequence computation,
// the parent-case read and the insert share one write transaction so
// concurrent callers cannot claim the same sequence. The specialization is
// inherited from the parent case and the stage date is the current time.
func GuardarExpediente(db *gorm.DB, input GuardarExpedienteInput) (int, error) {
	if input.NoCaso <= 0 || input.Cedula == "" || input.Ciudad == "" || input.Entidad == "" {
		return 0, &ValidationError{Message: "Todos los campos son obligatorios"}
	}

	etapa := models.TipoCasoInicial
	if input.Etapa != nil {
		etapa = *input.Etapa
	}

	var consec int
	err := db.Transaction(func(tx *gorm.DB) error {
		var caso models.Caso
		err := tx.First(&caso, "NOCASO = ?", input.NoCaso).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Message: "Caso no encontrado"}
		}
		if err != nil {
			return fmt.Errorf("failed to query case: %w", err)
		}

		ultimo, err := maxConsecExpediente(tx, input.NoCaso)
		if err != nil {
			return err
		}
		consec = ultimo + 1

		expediente := models.Expediente{
			NoCaso:             input.NoCaso,
			ConsecExpe:         consec,
			CodEspecializacion: caso.CodEspecializacion,
			IDTipoCaso2:        etapa,
			CodLugar:           input.Entidad,
			Cedula:             input.Cedula,
			FchEtapa:           time.Now(),
		}

		if err := tx.Create(&expediente).Error; err != nil {
			return fmt.Errorf("failed to create case file: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return consec, nil
}
