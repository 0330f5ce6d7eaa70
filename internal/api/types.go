package api

import (
	"github.com/jellydator/validation"

	"github.com/pjreceita/receitas-backend/internal/models"
)

// ReceitaPayload is the request body for creating or updating a recipe.
// It binds from multipart form fields and from JSON.
type ReceitaPayload struct {
	Titulo                string `form:"titulo" json:"titulo"`
	Descricao             string `form:"descricao" json:"descricao"`
	IngredientesMassa     string `form:"ingredientesMassa" json:"ingredientesMassa"`
	IngredientesCobertura string `form:"ingredientesCobertura" json:"ingredientesCobertura"`
	ModoPreparoMassa      string `form:"modoPreparoMassa" json:"modoPreparoMassa"`
	ModoPreparoCobertura  string `form:"modoPreparoCobertura" json:"modoPreparoCobertura"`
	TempoPreparo          string `form:"tempoPreparo" json:"tempoPreparo"`
	Categoria             string `form:"categoria" json:"categoria"`
}

func (p ReceitaPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Titulo, validation.Required),
		validation.Field(&p.Descricao, validation.Required),
		validation.Field(&p.IngredientesMassa, validation.Required),
		validation.Field(&p.IngredientesCobertura, validation.Required),
		validation.Field(&p.ModoPreparoMassa, validation.Required),
		validation.Field(&p.ModoPreparoCobertura, validation.Required),
		validation.Field(&p.TempoPreparo, validation.Required),
	)
}

// ToModel copies the payload into a Receita. imagem stays empty unless an
// upload produced a path.
func (p ReceitaPayload) ToModel(imagem string) models.Receita {
	return models.Receita{
		Titulo:                p.Titulo,
		Descricao:             p.Descricao,
		IngredientesMassa:     p.IngredientesMassa,
		IngredientesCobertura: p.IngredientesCobertura,
		ModoPreparoMassa:      p.ModoPreparoMassa,
		ModoPreparoCobertura:  p.ModoPreparoCobertura,
		TempoPreparo:          p.TempoPreparo,
		Categoria:             p.Categoria,
		Imagem:                imagem,
	}
}

// LoginRequest is the JSON body for /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// RegisterRequest is the JSON body for /register. Email is optional.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 0)),
	)
}
