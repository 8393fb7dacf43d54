package models

import "time"

// Caso represents a legal case. Numbering is a global consecutive; a null
// FCHFIN means the case is still open.
type Caso struct {
	NoCaso             int        `gorm:"column:NOCASO;primaryKey;autoIncrement:false" json:"nocaso"`
	CodCliente         string     `gorm:"column:CODCLIENTE;size:10;not null;index" json:"codcliente"`
	CodEspecializacion string     `gorm:"column:CODESPECIALIZACION;size:10;not null" json:"especializacion"`
	FchInicio          time.Time  `gorm:"column:FCHINICIO;not null" json:"inicio"`
	FchFin             *time.Time `gorm:"column:FCHFIN" json:"fin"`
	Valor              *float64   `gorm:"column:VALOR" json:"valor"`

	// Relationships
	Cliente     *Cliente     `gorm:"foreignKey:CodCliente;references:CodCliente" json:"cliente,omitempty"`
	Expedientes []Expediente `gorm:"foreignKey:NoCaso;references:NoCaso" json:"expedientes,omitempty"`
}

// TableName preserves the legacy table name
func (Caso) TableName() string {
	return "CASO"
}

// IsActivo reports whether the case is still open (no end date)
func (c *Caso) IsActivo() bool {
	return c.FchFin == nil
}
