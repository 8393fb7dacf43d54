package models

// Abogado is a lawyer reference record, identified by document number
type Abogado struct {
	Cedula     string `gorm:"column:CEDULA;primaryKey;size:20" json:"ced"`
	NomAbogado string `gorm:"column:NOMABOGADO;size:50;not null" json:"nom"`
	ApeAbogado string `gorm:"column:APEABOGADO;size:50;not null" json:"ape"`

	// Relationships
	Especializaciones []Especializacion `gorm:"many2many:ABOGADO_ESPECIALIZACION;foreignKey:Cedula;joinForeignKey:CEDULA;references:CodEspecializacion;joinReferences:CODESPECIALIZACION" json:"especializaciones,omitempty"`
}

// TableName preserves the legacy table name
func (Abogado) TableName() string {
	return "ABOGADO"
}

// NombreCompleto returns "NOMABOGADO APEABOGADO" as the API renders lawyers
func (a *Abogado) NombreCompleto() string {
	return a.NomAbogado + " " + a.ApeAbogado
}

// AbogadoEspecializacion is the join row between lawyers and specializations
type AbogadoEspecializacion struct {
	Cedula             string `gorm:"column:CEDULA;primaryKey;size:20" json:"cedula"`
	CodEspecializacion string `gorm:"column:CODESPECIALIZACION;primaryKey;size:10" json:"especializacion"`
}

// TableName preserves the legacy table name
func (AbogadoEspecializacion) TableName() string {
	return "ABOGADO_ESPECIALIZACION"
}
