package models

// Impugnacion is a read-only appeal-type reference record
type Impugnacion struct {
	CodImpugnacion string `gorm:"column:CODIMPUGNACION;primaryKey;size:10" json:"cod"`
	NomImpugnacion string `gorm:"column:NOMIMPUGNACION;size:100;not null" json:"nom"`
}

// TableName preserves the legacy table name
func (Impugnacion) TableName() string {
	return "IMPUGNACION"
}
