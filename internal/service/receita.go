package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pjreceita/receitas-backend/internal/models"
)

// ReceitaService executes recipe CRUD against the persistence store.
type ReceitaService struct {
	db   *gorm.DB
	logs *zap.SugaredLogger
}

func NewReceitaService(db *gorm.DB, logger *zap.SugaredLogger) *ReceitaService {
	return &ReceitaService{
		db:   db,
		logs: logger,
	}
}

// List returns all recipes in storage order.
func (s *ReceitaService) List(ctx context.Context) ([]models.Receita, error) {
	var receitas []models.Receita
	if err := s.db.WithContext(ctx).Find(&receitas).Error; err != nil {
		return nil, fmt.Errorf("list receitas: %w", err)
	}
	return receitas, nil
}

// Get retrieves a single recipe by id.
func (s *ReceitaService) Get(ctx context.Context, id uint) (*models.Receita, error) {
	var receita models.Receita
	if err := s.db.WithContext(ctx).First(&receita, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get receita: %w", err)
	}
	return &receita, nil
}

// Create persists a new recipe and fills in the assigned id.
func (s *ReceitaService) Create(ctx context.Context, receita *models.Receita) (*models.Receita, error) {
	if err := s.db.WithContext(ctx).Create(receita).Error; err != nil {
		return nil, fmt.Errorf("create receita: %w", err)
	}
	s.logs.Infow("receita created", "id", receita.ID, "titulo", receita.Titulo)
	return receita, nil
}

// Update replaces all mutable fields of the recipe matching id. When the
// incoming Imagem is empty the stored path is preserved. Last writer wins.
func (s *ReceitaService) Update(ctx context.Context, id uint, receita *models.Receita) error {
	updates := map[string]interface{}{
		"titulo":                receita.Titulo,
		"descricao":             receita.Descricao,
		"ingredientesMassa":     receita.IngredientesMassa,
		"ingredientesCobertura": receita.IngredientesCobertura,
		"modoPreparoMassa":      receita.ModoPreparoMassa,
		"modoPreparoCobertura":  receita.ModoPreparoCobertura,
		"tempoPreparo":          receita.TempoPreparo,
		"categoria":             receita.Categoria,
	}
	if receita.Imagem != "" {
		updates["imagem"] = receita.Imagem
	}

	result := s.db.WithContext(ctx).Model(&models.Receita{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("update receita: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	s.logs.Infow("receita updated", "id", id)
	return nil
}

// Delete removes the recipe matching id. Deletion is permanent.
func (s *ReceitaService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Receita{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete receita: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	s.logs.Infow("receita deleted", "id", id)
	return nil
}
