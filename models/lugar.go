package models

// Lugar type discriminator constants
const (
	TipoLugarCiudad  = "CII" // city
	TipoLugarEntidad = "ENT" // entity (court, office) belonging to a city
)

// Lugar is a place record. Cities and entities share the table; an entity
// points at its parent city through CODLUGARPADRE.
type Lugar struct {
	CodLugar      string  `gorm:"column:CODLUGAR;primaryKey;size:10" json:"cod"`
	NomLugar      string  `gorm:"column:NOMLUGAR;size:100;not null" json:"nom"`
	IDTipoLugar   string  `gorm:"column:IDTIPOLUGAR;size:5;not null;index" json:"tipo"`
	CodLugarPadre *string `gorm:"column:CODLUGARPADRE;size:10;index" json:"padre,omitempty"`
}

// TableName preserves the legacy table name
func (Lugar) TableName() string {
	return "LUGAR"
}

// IsCiudad reports whether the place is a city
func (l *Lugar) IsCiudad() bool {
	return l.IDTipoLugar == TipoLugarCiudad
}
