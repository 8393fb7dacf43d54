package models

import "time"

// Expediente is one procedural stage of a case. Rows are append-only and
// identified by (NOCASO, CONSECEXPE), the sequence restarting at 1 per case.
type Expediente struct {
	NoCaso             int       `gorm:"column:NOCASO;primaryKey;autoIncrement:false" json:"nocaso"`
	ConsecExpe         int       `gorm:"column:CONSECEXPE;primaryKey;autoIncrement:false" json:"consec"`
	CodEspecializacion string    `gorm:"column:CODESPECIALIZACION;size:10;not null" json:"especializacion"`
	IDTipoCaso2        int       `gorm:"column:IDTIPOCASO2;not null" json:"etapa"`
	CodLugar           string    `gorm:"column:CODLUGAR;size:10;not null" json:"lugar"`
	Cedula             string    `gorm:"column:CEDULA;size:20;not null" json:"abogado"`
	FchEtapa           time.Time `gorm:"column:FCHETAPA;not null" json:"fecha"`

	// Relationships
	Caso    *Caso    `gorm:"foreignKey:NoCaso;references:NoCaso" json:"caso,omitempty"`
	Abogado *Abogado `gorm:"foreignKey:Cedula;references:Cedula" json:"abogado_detalle,omitempty"`
	Lugar   *Lugar   `gorm:"foreignKey:CodLugar;references:CodLugar" json:"lugar_detalle,omitempty"`
}

// TableName preserves the legacy table name
func (Expediente) TableName() string {
	return "EXPEDIENTE"
}
