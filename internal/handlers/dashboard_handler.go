package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SalesMasterPro/sales-api/internal/clock"
	"github.com/SalesMasterPro/sales-api/internal/domain/dashboard"
	"github.com/SalesMasterPro/sales-api/internal/httperr"
	"github.com/SalesMasterPro/sales-api/internal/httpresp"
	"github.com/SalesMasterPro/sales-api/internal/models"
	"github.com/SalesMasterPro/sales-api/internal/store"
)

// DashboardHandler recomputa as projeções por inteiro a cada chamada.
// Volumes são pequenos; recomputar é mais simples e sempre correto.
type DashboardHandler struct {
	store *store.Store
	tz    string
}

func NewDashboardHandler(st *store.Store, tz string) *DashboardHandler {
	return &DashboardHandler{store: st, tz: tz}
}

func (h *DashboardHandler) snapshot(c *gin.Context) ([]models.Client, []models.Sale, string, bool) {
	owner := ownerID(c)

	clients, err := store.ListByOwner[models.Client](c.Request.Context(), h.store, owner)
	if err != nil {
		respondError(c, err)
		return nil, nil, "", false
	}

	sales, err := store.ListByOwner[models.Sale](c.Request.Context(), h.store, owner)
	if err != nil {
		respondError(c, err)
		return nil, nil, "", false
	}

	return clients, sales, clock.Today(h.tz), true
}

func (h *DashboardHandler) Get(c *gin.Context) {
	clients, sales, today, ok := h.snapshot(c)
	if !ok {
		return
	}

	httpresp.OK(c, gin.H{
		"snapshot":     dashboard.BuildSnapshot(clients, sales, today),
		"weekly_sales": dashboard.WeeklySales(sales, today),
	})
}

// ListStat abre o detalhe de um cartão: a lista filtrada e ordenada que
// o modal do dashboard exibe.
func (h *DashboardHandler) ListStat(c *gin.Context) {
	clients, sales, today, ok := h.snapshot(c)
	if !ok {
		return
	}

	query := c.Query("query")
	sortOrder := c.DefaultQuery("sort", "name")

	if c.Param("stat") == "sales" {
		weekly := dashboard.WeeklySales(sales, today)
		httpresp.List(c, dashboard.Sort(dashboard.Filter(weekly, query), sortOrder))
		return
	}

	var list []models.Client
	switch c.Param("stat") {
	case "total":
		list = clients
	case "visited":
		list = dashboard.VisitedToday(clients, today)
	case "pending":
		list = dashboard.PendingToday(clients, today)
	case "late":
		list = dashboard.LateClients(clients, today)
	default:
		httperr.BadRequest(c, "unknown_stat", "unknown dashboard stat")
		return
	}

	httpresp.List(c, dashboard.Sort(dashboard.Filter(list, query), sortOrder))
}
