package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/SalesMasterPro/sales-api/internal/audit"
	"github.com/SalesMasterPro/sales-api/internal/httpresp"
	"github.com/SalesMasterPro/sales-api/internal/models"
	"github.com/SalesMasterPro/sales-api/internal/store"
	ucSale "github.com/SalesMasterPro/sales-api/internal/usecase/sale"
)

type SaleHandler struct {
	store  *store.Store
	record *ucSale.RecordSale
	events *audit.Dispatcher
}

func NewSaleHandler(st *store.Store, record *ucSale.RecordSale, events *audit.Dispatcher) *SaleHandler {
	return &SaleHandler{store: st, record: record, events: events}
}

type saleRequest struct {
	ClientID string          `json:"client_id"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Notes    string          `json:"notes"`
}

func (h *SaleHandler) List(c *gin.Context) {
	sales, err := store.ListByOwner[models.Sale](c.Request.Context(), h.store, ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, sales)
}

func (h *SaleHandler) Create(c *gin.Context) {
	var req saleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	sale, err := h.record.Execute(c.Request.Context(), ownerID(c), ucSale.RecordSaleInput{
		ClientID: req.ClientID,
		Amount:   req.Amount,
		Notes:    req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, sale)
}

func (h *SaleHandler) Update(c *gin.Context) {
	var req saleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	sale, err := h.record.Execute(c.Request.Context(), ownerID(c), ucSale.RecordSaleInput{
		ID:       c.Param("id"),
		ClientID: req.ClientID,
		Amount:   req.Amount,
		Notes:    req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, sale)
}

func (h *SaleHandler) Delete(c *gin.Context) {
	owner := ownerID(c)
	id := c.Param("id")

	if err := store.Remove[models.Sale](c.Request.Context(), h.store, id); err != nil {
		respondError(c, err)
		return
	}

	h.events.Dispatch(audit.Event{
		UserID:   owner,
		Action:   "sale_deleted",
		Entity:   "sale",
		EntityID: id,
	})

	c.Status(http.StatusNoContent)
}
