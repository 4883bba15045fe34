package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SalesMasterPro/sales-api/internal/assistant"
	"github.com/SalesMasterPro/sales-api/internal/httpresp"
	"github.com/SalesMasterPro/sales-api/internal/models"
	"github.com/SalesMasterPro/sales-api/internal/store"
)

type AssistantHandler struct {
	store     *store.Store
	assistant *assistant.Assistant
}

func NewAssistantHandler(st *store.Store, as *assistant.Assistant) *AssistantHandler {
	return &AssistantHandler{store: st, assistant: as}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat injeta um snapshot das coleções do dono como contexto do prompt.
// A resposta é sempre 200: indisponibilidade do serviço externo vira a
// mensagem fixa de fallback.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	owner := ownerID(c)

	clients, err := store.ListByOwner[models.Client](c.Request.Context(), h.store, owner)
	if err != nil {
		respondError(c, err)
		return
	}

	appointments, err := store.ListByOwner[models.Appointment](c.Request.Context(), h.store, owner)
	if err != nil {
		respondError(c, err)
		return
	}

	reply := h.assistant.Chat(c.Request.Context(), req.Message, assistant.Snapshot{
		Clients:      clients,
		Appointments: appointments,
	})

	httpresp.OK(c, gin.H{"reply": reply})
}
