package models

// Cliente represents a client of the firm. Rows are maintained by the
// import tooling; the case workflow only reads them.
type Cliente struct {
	CodCliente string `gorm:"column:CODCLIENTE;primaryKey;size:10" json:"cod"`
	NomCliente string `gorm:"column:NOMCLIENTE;size:50;not null" json:"nom"`
	ApeCliente string `gorm:"column:APECLIENTE;size:50;not null" json:"ape"`
	NDocumento string `gorm:"column:NDOCUMENTO;size:20" json:"doc"`

	// Relationships
	Casos []Caso `gorm:"foreignKey:CodCliente;references:CodCliente" json:"casos,omitempty"`
}

// TableName preserves the legacy table name
func (Cliente) TableName() string {
	return "CLIENTE"
}
