package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pjreceita/receitas-backend/internal/service"
	"github.com/pjreceita/receitas-backend/internal/storage"
)

// imageField is the multipart field name carrying the uploaded image.
const imageField = "imagem"

type ReceitaHandler struct {
	receitas *service.ReceitaService
	images   storage.ImageStore
	logs     *zap.SugaredLogger
}

func NewReceitaHandler(receitas *service.ReceitaService, images storage.ImageStore, logger *zap.SugaredLogger) *ReceitaHandler {
	return &ReceitaHandler{
		receitas: receitas,
		images:   images,
		logs:     logger,
	}
}

// List responds with every stored recipe.
func (h *ReceitaHandler) List(c *gin.Context) {
	receitas, err := h.receitas.List(c.Request.Context())
	if err != nil {
		h.logs.Errorw("list receitas failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar receitas"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"receitas": receitas})
}

// Create validates the multipart payload, stores the optional image and
// persists the recipe. The response carries the assigned id.
func (h *ReceitaHandler) Create(c *gin.Context) {
	var payload ReceitaPayload
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Todos os campos são obrigatórios"})
		return
	}
	if err := payload.Validate(); err != nil {
		h.logs.Debugw("create receita rejected", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Todos os campos são obrigatórios"})
		return
	}

	imagem, err := h.saveImage(c)
	if err != nil {
		h.logs.Errorw("store image failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Falha ao salvar a imagem"})
		return
	}

	receita := payload.ToModel(imagem)
	created, err := h.receitas.Create(c.Request.Context(), &receita)
	if err != nil {
		h.logs.Errorw("create receita failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao cadastrar receita"})
		return
	}

	c.JSON(http.StatusOK, created)
}

// Update replaces all fields of the recipe matching id. A new image is
// accepted but not required; absent, the stored one is kept.
func (h *ReceitaHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload ReceitaPayload
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Todos os campos são obrigatórios"})
		return
	}
	if err := payload.Validate(); err != nil {
		h.logs.Debugw("update receita rejected", "id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Todos os campos são obrigatórios"})
		return
	}

	imagem, err := h.saveImage(c)
	if err != nil {
		h.logs.Errorw("store image failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Falha ao salvar a imagem"})
		return
	}

	receita := payload.ToModel(imagem)
	if err := h.receitas.Update(c.Request.Context(), id, &receita); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Receita não encontrada"})
			return
		}
		h.logs.Errorw("update receita failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar receita"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Receita atualizada com ID %d", id)})
}

// Delete removes the recipe matching id, permanently.
func (h *ReceitaHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.receitas.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Receita não encontrada"})
			return
		}
		h.logs.Errorw("delete receita failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir receita"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Receita excluída com ID %d", id)})
}

// saveImage stores the uploaded file when the request carries one and
// returns its path, or "" when no file was sent.
func (h *ReceitaHandler) saveImage(c *gin.Context) (string, error) {
	fileHeader, err := c.FormFile(imageField)
	if err != nil {
		// no file on this request
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer func() { _ = file.Close() }()

	return h.images.Save(c.Request.Context(), file, fileHeader.Filename)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Receita não encontrada"})
		return 0, false
	}
	return uint(id), true
}
