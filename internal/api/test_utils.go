package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pjreceita/receitas-backend/internal/middleware"
	"github.com/pjreceita/receitas-backend/internal/service"
	"github.com/pjreceita/receitas-backend/internal/storage"
	"github.com/pjreceita/receitas-backend/internal/testhelpers"
)

// setupTestRouter wires the full route table over an in-memory database
// and a temp-dir image store, and returns a valid token.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.NewTestDB(t)
	logger := zap.NewNop().Sugar()

	images, err := storage.NewDiskStore(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("failed to create disk store: %v", err)
	}

	authService := service.NewAuthService(db, "test-secret", logger)
	receitaService := service.NewReceitaService(db, logger)

	token, err := authService.Register("cozinheiro", "", "segredo123")
	if err != nil {
		t.Fatalf("failed to register test user: %v", err)
	}

	router := gin.New()
	router.POST("/login", NewAuthHandler(authService, logger).Login)
	router.POST("/register", NewAuthHandler(authService, logger).Register)

	receitaHandler := NewReceitaHandler(receitaService, images, logger)
	router.GET("/receitas", receitaHandler.List)

	protected := router.Group("/receitas")
	protected.Use(middleware.AuthMiddleware(authService))
	protected.POST("", receitaHandler.Create)
	protected.PUT("/:id", receitaHandler.Update)
	protected.DELETE("/:id", receitaHandler.Delete)

	return router, db, token
}

// receitaFields returns a complete set of required form fields.
func receitaFields() map[string]string {
	return map[string]string{
		"titulo":                "Bolo",
		"descricao":             "Bolo de chocolate",
		"ingredientesMassa":     "farinha, ovos, chocolate",
		"ingredientesCobertura": "chocolate, creme de leite",
		"modoPreparoMassa":      "misture e asse",
		"modoPreparoCobertura":  "derreta e cubra",
		"tempoPreparo":          "60",
		"categoria":             "doces",
	}
}

// multipartBody builds a multipart form from fields plus an optional
// image file.
func multipartBody(t *testing.T, fields map[string]string, imageName string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("failed to write form field %s: %v", k, err)
		}
	}
	if imageName != "" {
		part, err := writer.CreateFormFile("imagem", imageName)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := part.Write([]byte("fake image bytes")); err != nil {
			t.Fatalf("failed to write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	return body, writer.FormDataContentType()
}

func doRequest(router *gin.Engine, method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}
