package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func loginBody(t *testing.T, username, password string) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(map[string]string{"username": username, "password": password})
	assert.NoError(t, err)
	return bytes.NewReader(b)
}

func TestLoginSuccess(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := doRequest(router, "POST", "/login", "", loginBody(t, "cozinheiro", "segredo123"), "application/json")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeJSON(t, w)
	assert.Equal(t, "Login bem-sucedido!", resp["message"])
	assert.NotEmpty(t, resp["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := doRequest(router, "POST", "/login", "", loginBody(t, "cozinheiro", "errada"), "application/json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeJSON(t, w)
	assert.Equal(t, "Credenciais inválidas", resp["message"])
}

func TestLoginUnknownUser(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := doRequest(router, "POST", "/login", "", loginBody(t, "desconhecido", "segredo123"), "application/json")

	// same answer as a wrong password, nothing to enumerate
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeJSON(t, w)
	assert.Equal(t, "Credenciais inválidas", resp["message"])
}

func TestLoginMissingFields(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := doRequest(router, "POST", "/login", "", loginBody(t, "cozinheiro", ""), "application/json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeJSON(t, w)
	assert.Equal(t, "Usuário e senha são obrigatórios", resp["message"])
}

func TestRegisterAndLogin(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	b, err := json.Marshal(map[string]string{
		"username": "novato",
		"email":    "novato@example.com",
		"password": "senha-forte",
	})
	assert.NoError(t, err)

	w := doRequest(router, "POST", "/register", "", bytes.NewReader(b), "application/json")
	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeJSON(t, w)
	assert.NotEmpty(t, resp["token"])

	w = doRequest(router, "POST", "/login", "", loginBody(t, "novato", "senha-forte"), "application/json")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	b, err := json.Marshal(map[string]string{"username": "cozinheiro", "password": "outra-senha"})
	assert.NoError(t, err)

	w := doRequest(router, "POST", "/register", "", bytes.NewReader(b), "application/json")
	assert.Equal(t, http.StatusConflict, w.Code)
}
