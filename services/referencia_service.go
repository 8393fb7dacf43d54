package services

import (
	"fmt"
	"gestion_casos_go/models"
	"strings"

	"gorm.io/gorm"
)

// ListarEspecializaciones returns the full specialization catalog
func ListarEspecializaciones(db *gorm.DB) ([]models.Especializacion, error) {
	var especializaciones []models.Especializacion
	if err := db.Order("CODESPECIALIZACION ASC").Find(&especializaciones).Error; err != nil {
		return nil, fmt.Errorf("failed to query specializations: %w", err)
	}
	return especializaciones, nil
}

// ListarCiudades returns every place typed as a city
func ListarCiudades(db *gorm.DB) ([]models.Lugar, error) {
	var ciudades []models.Lugar
	if err := db.Where("IDTIPOLUGAR = ?", models.TipoLugarCiudad).
		Order("NOMLUGAR ASC").
		Find(&ciudades).Error; err != nil {
		return nil, fmt.Errorf("failed to query cities: %w", err)
	}
	return ciudades, nil
}

// ListarEntidades returns the entities belonging to a city. A blank or
// unknown city yields an empty list, not an error.
func ListarEntidades(db *gorm.DB, codCiudad string) ([]models.Lugar, error) {
	entidades := []models.Lugar{}
	if strings.TrimSpace(codCiudad) == "" {
		return entidades, nil
	}

	if err := db.Where("IDTIPOLUGAR = ? AND CODLUGARPADRE = ?", models.TipoLugarEntidad, codCiudad).
		Order("NOMLUGAR ASC").
		Find(&entidades).Error; err != nil {
		return nil, fmt.Errorf("failed to query entities: %w", err)
	}
	return entidades, nil
}

// ListarAbogados returns lawyers, optionally restricted to a specialization
func ListarAbogados(db *gorm.DB, codEspecializacion string) ([]models.Abogado, error) {
	var abogados []models.Abogado

	query := db.Order("APEABOGADO ASC")
	if strings.TrimSpace(codEspecializacion) != "" {
		query = query.
			Joins("JOIN ABOGADO_ESPECIALIZACION AE ON AE.CEDULA = ABOGADO.CEDULA").
			Where("AE.CODESPECIALIZACION = ?", codEspecializacion)
	}

	if err := query.Find(&abogados).Error; err != nil {
		return nil, fmt.Errorf("failed to query lawyers: %w", err)
	}
	return abogados, nil
}

// ListarImpugnaciones returns the appeal-type catalog
func ListarImpugnaciones(db *gorm.DB) ([]models.Impugnacion, error) {
	var impugnaciones []models.Impugnacion
	if err := db.Order("CODIMPUGNACION ASC").Find(&impugnaciones).Error; err != nil {
		return nil, fmt.Errorf("failed to query appeal types: %w", err)
	}
	return impugnaciones, nil
}
