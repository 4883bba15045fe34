package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SalesMasterPro/sales-api/internal/audit"
	"github.com/SalesMasterPro/sales-api/internal/domain/dashboard"
	"github.com/SalesMasterPro/sales-api/internal/httpresp"
	"github.com/SalesMasterPro/sales-api/internal/models"
	"github.com/SalesMasterPro/sales-api/internal/store"
	ucClient "github.com/SalesMasterPro/sales-api/internal/usecase/client"
)

type ClientHandler struct {
	store  *store.Store
	save   *ucClient.SaveClient
	visit  *ucClient.ToggleVisit
	events *audit.Dispatcher
}

func NewClientHandler(
	st *store.Store,
	save *ucClient.SaveClient,
	visit *ucClient.ToggleVisit,
	events *audit.Dispatcher,
) *ClientHandler {
	return &ClientHandler{store: st, save: save, visit: visit, events: events}
}

type clientRequest struct {
	Code          *int     `json:"code"`
	Name          string   `json:"name" binding:"required"`
	Company       string   `json:"company"`
	CNPJ          string   `json:"cnpj"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address"`
	Category      string   `json:"category"`
	AssignedRoute string   `json:"assigned_route"`
	Notes         string   `json:"notes"`
	Lat           *float64 `json:"lat"`
	Lng           *float64 `json:"lng"`
}

func (r clientRequest) toInput(id string) ucClient.SaveClientInput {
	return ucClient.SaveClientInput{
		ID:            id,
		Code:          r.Code,
		Name:          r.Name,
		Company:       r.Company,
		CNPJ:          r.CNPJ,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		Category:      r.Category,
		AssignedRoute: r.AssignedRoute,
		Notes:         r.Notes,
		Lat:           r.Lat,
		Lng:           r.Lng,
	}
}

// ======================================================
// LIST (busca ampla + ordenação)
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	owner := ownerID(c)
	query := c.Query("query")
	sortOrder := c.DefaultQuery("sort", "name")

	clients, err := store.ListByOwner[models.Client](c.Request.Context(), h.store, owner)
	if err != nil {
		respondError(c, err)
		return
	}

	filtered := []models.Client{}
	for _, cli := range clients {
		if dashboard.MatchClient(cli, query) {
			filtered = append(filtered, cli)
		}
	}

	httpresp.List(c, dashboard.Sort(filtered, sortOrder))
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	cli, err := h.save.Execute(c.Request.Context(), ownerID(c), req.toInput(""))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, cli)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	cli, err := h.save.Execute(c.Request.Context(), ownerID(c), req.toInput(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, cli)
}

// Delete é idempotente e não cascateia: compromissos e vendas do
// cliente sobrevivem com o nome desnormalizado.
func (h *ClientHandler) Delete(c *gin.Context) {
	owner := ownerID(c)
	id := c.Param("id")

	if err := store.Remove[models.Client](c.Request.Context(), h.store, id); err != nil {
		respondError(c, err)
		return
	}

	h.events.Dispatch(audit.Event{
		UserID:   owner,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: id,
	})

	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) ToggleVisit(c *gin.Context) {
	cli, err := h.visit.Execute(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, cli)
}
