package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SalesMasterPro/sales-api/internal/audit"
	"github.com/SalesMasterPro/sales-api/internal/httpresp"
	"github.com/SalesMasterPro/sales-api/internal/models"
	"github.com/SalesMasterPro/sales-api/internal/store"
	ucRoute "github.com/SalesMasterPro/sales-api/internal/usecase/route"
)

type RouteHandler struct {
	store    *store.Store
	save     *ucRoute.SaveRoute
	optimize *ucRoute.OptimizeRoute
	events   *audit.Dispatcher
}

func NewRouteHandler(
	st *store.Store,
	save *ucRoute.SaveRoute,
	optimize *ucRoute.OptimizeRoute,
	events *audit.Dispatcher,
) *RouteHandler {
	return &RouteHandler{store: st, save: save, optimize: optimize, events: events}
}

type routeRequest struct {
	Name         string   `json:"name" binding:"required"`
	ClientIDs    []string `json:"client_ids"`
	Optimization string   `json:"optimization"`
}

func (h *RouteHandler) List(c *gin.Context) {
	routes, err := store.ListByOwner[models.SavedRoute](c.Request.Context(), h.store, ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, routes)
}

func (h *RouteHandler) Save(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	route, err := h.save.Execute(c.Request.Context(), ownerID(c), ucRoute.SaveRouteInput{
		ID:           c.Param("id"),
		Name:         req.Name,
		ClientIDs:    req.ClientIDs,
		Optimization: req.Optimization,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, route)
}

func (h *RouteHandler) Delete(c *gin.Context) {
	owner := ownerID(c)
	id := c.Param("id")

	if err := store.Remove[models.SavedRoute](c.Request.Context(), h.store, id); err != nil {
		respondError(c, err)
		return
	}

	h.events.Dispatch(audit.Event{
		UserID:   owner,
		Action:   "route_deleted",
		Entity:   "route",
		EntityID: id,
	})

	c.Status(http.StatusNoContent)
}

type optimizeRequest struct {
	Day string `json:"day" binding:"required"`
}

// Optimize responde 200 mesmo quando o serviço externo falha: o corpo
// carrega a mensagem de fallback do assistente.
func (h *RouteHandler) Optimize(c *gin.Context) {
	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	text, err := h.optimize.Execute(c.Request.Context(), ownerID(c), req.Day)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"optimization": text})
}
