package services

import (
	"fmt"
	"gestion_casos_go/models"
	"log"

	"gorm.io/gorm"
)

// SeedReferenceData loads the read-only catalogs when the store is empty.
// Safe to call on every startup.
func SeedReferenceData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Especializacion{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count specializations: %w", err)
	}
	if count > 0 {
		log.Println("[SEED] Reference data already present, skipping seed")
		return nil
	}

	especializaciones := []models.Especializacion{
		{CodEspecializacion: "E001", NomEspecializacion: "Derecho Civil"},
		{CodEspecializacion: "E002", NomEspecializacion: "Derecho Penal"},
		{CodEspecializacion: "E003", NomEspecializacion: "Derecho Laboral"},
		{CodEspecializacion: "E004", NomEspecializacion: "Derecho de Familia"},
	}

	bogota := "L001"
	medellin := "L002"
	lugares := []models.Lugar{
		{CodLugar: "L001", NomLugar: "Bogotá", IDTipoLugar: models.TipoLugarCiudad},
		{CodLugar: "L002", NomLugar: "Medellín", IDTipoLugar: models.TipoLugarCiudad},
		{CodLugar: "L003", NomLugar: "Cali", IDTipoLugar: models.TipoLugarCiudad},
		{CodLugar: "T001", NomLugar: "Juzgado Primero Civil", IDTipoLugar: models.TipoLugarEntidad, CodLugarPadre: &bogota},
		{CodLugar: "T002", NomLugar: "Juzgado Segundo Penal", IDTipoLugar: models.TipoLugarEntidad, CodLugarPadre: &bogota},
		{CodLugar: "T003", NomLugar: "Tribunal Superior", IDTipoLugar: models.TipoLugarEntidad, CodLugarPadre: &medellin},
	}

	abogados := []models.Abogado{
		{Cedula: "90001", NomAbogado: "Ana", ApeAbogado: "Gómez"},
		{Cedula: "90002", NomAbogado: "Carlos", ApeAbogado: "Ruiz"},
		{Cedula: "90003", NomAbogado: "Marta", ApeAbogado: "Díaz"},
	}

	asignaciones := []models.AbogadoEspecializacion{
		{Cedula: "90001", CodEspecializacion: "E001"},
		{Cedula: "90001", CodEspecializacion: "E004"},
		{Cedula: "90002", CodEspecializacion: "E002"},
		{Cedula: "90003", CodEspecializacion: "E001"},
		{Cedula: "90003", CodEspecializacion: "E003"},
	}

	etapas := []models.EspeciaEtapa{
		{CodEspecializacion: "E001", IDTipoCaso2: models.TipoCasoInicial, CodEtapa: "ET01"},
		{CodEspecializacion: "E002", IDTipoCaso2: models.TipoCasoInicial, CodEtapa: "ET02"},
		{CodEspecializacion: "E003", IDTipoCaso2: models.TipoCasoInicial, CodEtapa: "ET01"},
	}

	impugnaciones := []models.Impugnacion{
		{CodImpugnacion: "I001", NomImpugnacion: "Apelación"},
		{CodImpugnacion: "I002", NomImpugnacion: "Reposición"},
		{CodImpugnacion: "I003", NomImpugnacion: "Casación"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, batch := range []interface{}{
			&especializaciones, &lugares, &abogados, &asignaciones, &etapas, &impugnaciones,
		} {
			if err := tx.Create(batch).Error; err != nil {
				return fmt.Errorf("failed to seed reference data: %w", err)
			}
		}
		log.Println("[SEED] Reference data loaded")
		return nil
	})
}

// SeedDemoClientes creates a couple of demo clients for development setups.
// Only runs when the client table is empty.
func SeedDemoClientes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Cliente{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count clients: %w", err)
	}
	if count > 0 {
		log.Println("[SEED] Clients already present, skipping demo seed")
		return nil
	}

	clientes := []models.Cliente{
		{CodCliente: "C001", NomCliente: "María", ApeCliente: "Pérez", NDocumento: "10000001"},
		{CodCliente: "C002", NomCliente: "Luis", ApeCliente: "Martínez", NDocumento: "10000002"},
	}

	if err := db.Create(&clientes).Error; err != nil {
		return fmt.Errorf("failed to seed demo clients: %w", err)
	}

	log.Printf("[SEED] Created %d demo clients", len(clientes))
	return nil
}
