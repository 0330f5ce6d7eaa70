package models

// Receita is a stored recipe record. Column names follow the original
// Receitas table so existing databases keep working.
type Receita struct {
	ID                    uint   `gorm:"primaryKey" json:"id"`
	Titulo                string `gorm:"size:100;not null" json:"titulo"`
	Descricao             string `gorm:"type:text;not null" json:"descricao"`
	IngredientesMassa     string `gorm:"column:ingredientesMassa;type:text;not null" json:"ingredientesMassa"`
	IngredientesCobertura string `gorm:"column:ingredientesCobertura;type:text;not null" json:"ingredientesCobertura"`
	ModoPreparoMassa      string `gorm:"column:modoPreparoMassa;type:text;not null" json:"modoPreparoMassa"`
	ModoPreparoCobertura  string `gorm:"column:modoPreparoCobertura;type:text;not null" json:"modoPreparoCobertura"`
	TempoPreparo          string `gorm:"column:tempoPreparo;size:50;not null" json:"tempoPreparo"`
	Categoria             string `gorm:"size:50" json:"categoria"`
	Imagem                string `gorm:"size:255" json:"imagem"`
}

func (Receita) TableName() string {
	return "receitas"
}
