package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SalesMasterPro/sales-api/internal/httperr"
	"github.com/SalesMasterPro/sales-api/internal/middleware"
	"github.com/SalesMasterPro/sales-api/internal/session"
	"github.com/SalesMasterPro/sales-api/internal/store"
)

type AuthHandler struct {
	sessions *session.Manager
	store    *store.Store
}

func NewAuthHandler(sessions *session.Manager, st *store.Store) *AuthHandler {
	return &AuthHandler{sessions: sessions, store: st}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, token, err := h.sessions.Authenticate(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrAccountDisabled):
			httperr.Unauthorized(c, "account_disabled",
				"Este acesso foi desativado pelo administrador do sistema.")
		case errors.Is(err, session.ErrInvalidCredentials):
			httperr.Unauthorized(c, "invalid_credentials",
				"Credenciais inválidas. Verifique usuário e senha.")
		default:
			httperr.Internal(c, "internal_error", "internal error")
		}
		return
	}

	// O registro do usuário (sem credencial) é persistido para que as
	// demais coleções tenham um dono conhecido.
	if err := store.Upsert(c.Request.Context(), h.store, user); err != nil {
		httperr.Internal(c, "failed_to_persist_user", "internal error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.MustGet(middleware.ContextToken).(string)
	h.sessions.End(token)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"id":   c.MustGet(middleware.ContextUserID).(string),
		"name": c.MustGet(middleware.ContextUserName).(string),
	})
}
