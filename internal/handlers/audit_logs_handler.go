package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SalesMasterPro/sales-api/internal/httperr"
	"github.com/SalesMasterPro/sales-api/internal/httpresp"
	"github.com/SalesMasterPro/sales-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List devolve a trilha do próprio dono, mais recente primeiro.
func (h *AuditLogsHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 500 {
		limit = 50
	}

	var logs []models.AuditLog
	if err := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", ownerID(c)).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_audit_logs", "internal error")
		return
	}

	httpresp.List(c, logs)
}
