package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pjreceita/receitas-backend/internal/models"
)

func TestCreateReceita(t *testing.T) {
	router, _, token := setupTestRouter(t)

	body, contentType := multipartBody(t, receitaFields(), "bolo.png")
	w := doRequest(router, "POST", "/receitas", token, body, contentType)

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeJSON(t, w)
	assert.Equal(t, float64(1), resp["id"])
	assert.Equal(t, "Bolo", resp["titulo"])
	assert.Equal(t, "doces", resp["categoria"])
	imagem, _ := resp["imagem"].(string)
	assert.True(t, strings.HasSuffix(imagem, ".png"), "imagem should keep the original extension, got %q", imagem)
}

func TestCreateReceitaWithoutImage(t *testing.T) {
	router, _, token := setupTestRouter(t)

	body, contentType := multipartBody(t, receitaFields(), "")
	w := doRequest(router, "POST", "/receitas", token, body, contentType)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeJSON(t, w)
	assert.Equal(t, "", resp["imagem"])
}

func TestCreateReceitaMissingFields(t *testing.T) {
	router, db, token := setupTestRouter(t)

	for field := range receitaFields() {
		if field == "categoria" {
			// categoria is optional
			continue
		}
		fields := receitaFields()
		delete(fields, field)

		body, contentType := multipartBody(t, fields, "bolo.png")
		w := doRequest(router, "POST", "/receitas", token, body, contentType)

		assert.Equal(t, http.StatusBadRequest, w.Code, "missing %s should be rejected", field)
		resp := decodeJSON(t, w)
		assert.Equal(t, "Todos os campos são obrigatórios", resp["message"])
	}

	var count int64
	db.Model(&models.Receita{}).Count(&count)
	assert.Equal(t, int64(0), count, "rejected requests must persist nothing")
}

func TestCreateReceitaOptionalCategoria(t *testing.T) {
	router, _, token := setupTestRouter(t)

	fields := receitaFields()
	delete(fields, "categoria")
	body, contentType := multipartBody(t, fields, "")
	w := doRequest(router, "POST", "/receitas", token, body, contentType)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListReceitas(t *testing.T) {
	router, _, token := setupTestRouter(t)

	w := doRequest(router, "GET", "/receitas", "", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeJSON(t, w)
	assert.Len(t, resp["receitas"], 0)

	body, contentType := multipartBody(t, receitaFields(), "bolo.png")
	doRequest(router, "POST", "/receitas", token, body, contentType)

	w = doRequest(router, "GET", "/receitas", "", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeJSON(t, w)
	receitas := resp["receitas"].([]interface{})
	assert.Len(t, receitas, 1)
	assert.Equal(t, "Bolo", receitas[0].(map[string]interface{})["titulo"])
}

func TestUpdateReceita(t *testing.T) {
	router, _, token := setupTestRouter(t)

	body, contentType := multipartBody(t, receitaFields(), "bolo.png")
	w := doRequest(router, "POST", "/receitas", token, body, contentType)
	assert.Equal(t, http.StatusOK, w.Code)
	created := decodeJSON(t, w)
	originalImage := created["imagem"].(string)

	update := receitaFields()
	update["titulo"] = "Bolo de Cenoura"
	update["tempoPreparo"] = "90"
	jsonBody, err := json.Marshal(update)
	assert.NoError(t, err)

	w = doRequest(router, "PUT", "/receitas/1", token, bytes.NewReader(jsonBody), "application/json")
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeJSON(t, w)
	assert.Equal(t, "Receita atualizada com ID 1", resp["message"])

	w = doRequest(router, "GET", "/receitas", "", nil, "")
	listed := decodeJSON(t, w)["receitas"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Bolo de Cenoura", listed["titulo"])
	assert.Equal(t, "90", listed["tempoPreparo"])
	assert.Equal(t, originalImage, listed["imagem"], "update without a file keeps the stored image")
}

func TestUpdateReceitaNotFound(t *testing.T) {
	router, db, token := setupTestRouter(t)

	jsonBody, err := json.Marshal(receitaFields())
	assert.NoError(t, err)

	w := doRequest(router, "PUT", "/receitas/42", token, bytes.NewReader(jsonBody), "application/json")
	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeJSON(t, w)
	assert.Equal(t, "Receita não encontrada", resp["message"])

	var count int64
	db.Model(&models.Receita{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpdateReceitaMissingFields(t *testing.T) {
	router, _, token := setupTestRouter(t)

	body, contentType := multipartBody(t, receitaFields(), "")
	doRequest(router, "POST", "/receitas", token, body, contentType)

	jsonBody, err := json.Marshal(map[string]string{"titulo": "Só título"})
	assert.NoError(t, err)

	w := doRequest(router, "PUT", "/receitas/1", token, bytes.NewReader(jsonBody), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteReceita(t *testing.T) {
	router, _, token := setupTestRouter(t)

	body, contentType := multipartBody(t, receitaFields(), "bolo.png")
	w := doRequest(router, "POST", "/receitas", token, body, contentType)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "DELETE", "/receitas/1", token, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeJSON(t, w)
	assert.Equal(t, fmt.Sprintf("Receita excluída com ID %d", 1), resp["message"])

	w = doRequest(router, "GET", "/receitas", "", nil, "")
	listed := decodeJSON(t, w)
	assert.Len(t, listed["receitas"], 0)
}

func TestDeleteReceitaNotFound(t *testing.T) {
	router, _, token := setupTestRouter(t)

	w := doRequest(router, "DELETE", "/receitas/99", token, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMutationsRequireToken(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	body, contentType := multipartBody(t, receitaFields(), "")
	w := doRequest(router, "POST", "/receitas", "", body, contentType)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, "DELETE", "/receitas/1", "", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMutationsRejectBadToken(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := doRequest(router, "DELETE", "/receitas/1", "not-a-real-token", nil, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
