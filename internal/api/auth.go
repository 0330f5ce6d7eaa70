package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pjreceita/receitas-backend/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
	logs *zap.SugaredLogger
}

func NewAuthHandler(auth *service.AuthService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		logs: logger,
	}
}

// Login verifies the credentials and returns a bearer token valid for one
// hour. Unknown username and wrong password get the same answer.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Usuário e senha são obrigatórios"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Usuário e senha são obrigatórios"})
		return
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Credenciais inválidas"})
			return
		}
		h.logs.Errorw("login failed", "username", req.Username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao fazer login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login bem-sucedido!", "token": token})
}

// Register creates a user account and logs it in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Usuário e senha são obrigatórios"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Usuário e senha são obrigatórios"})
		return
	}

	token, err := h.auth.Register(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"message": "Usuário já existe"})
			return
		}
		h.logs.Errorw("register failed", "username", req.Username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao cadastrar usuário"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Usuário cadastrado com sucesso", "token": token})
}
