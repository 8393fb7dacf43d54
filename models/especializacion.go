package models

// Especializacion is a read-only reference record (civil, penal, laboral, ...)
type Especializacion struct {
	CodEspecializacion string `gorm:"column:CODESPECIALIZACION;primaryKey;size:10" json:"codigo"`
	NomEspecializacion string `gorm:"column:NOMESPECIALIZACION;size:100;not null" json:"nombre"`
}

// TableName preserves the legacy table name
func (Especializacion) TableName() string {
	return "ESPECIALIZACION"
}
