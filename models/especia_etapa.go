package models

// TipoCasoInicial is the stage type used to resolve the default stage of a
// new expediente
const TipoCasoInicial = 1

// EspeciaEtapa maps (specialization, stage type) to its default stage code
type EspeciaEtapa struct {
	CodEspecializacion string `gorm:"column:CODESPECIALIZACION;primaryKey;size:10" json:"especializacion"`
	IDTipoCaso2        int    `gorm:"column:IDTIPOCASO2;primaryKey;autoIncrement:false" json:"tipo"`
	CodEtapa           string `gorm:"column:CODETAPA;size:10;not null" json:"etapa"`
}

// TableName preserves the legacy table name
func (EspeciaEtapa) TableName() string {
	return "ESPECIA_ETAPA"
}
