package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/SalesMasterPro/sales-api/internal/audit"
	"github.com/SalesMasterPro/sales-api/internal/httpresp"
	"github.com/SalesMasterPro/sales-api/internal/models"
	"github.com/SalesMasterPro/sales-api/internal/store"
	ucAppointment "github.com/SalesMasterPro/sales-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	store  *store.Store
	create *ucAppointment.CreateAppointment
	change *ucAppointment.ChangeStatus
	events *audit.Dispatcher
}

func NewAppointmentHandler(
	st *store.Store,
	create *ucAppointment.CreateAppointment,
	change *ucAppointment.ChangeStatus,
	events *audit.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{store: st, create: create, change: change, events: events}
}

type appointmentRequest struct {
	ClientID string `json:"client_id"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
	Purpose  string `json:"purpose"`
}

// List devolve a agenda do dono ordenada por data e hora.
func (h *AppointmentHandler) List(c *gin.Context) {
	apps, err := store.ListByOwner[models.Appointment](c.Request.Context(), h.store, ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	sort.SliceStable(apps, func(i, j int) bool {
		if apps[i].Date != apps[j].Date {
			return apps[i].Date < apps[j].Date
		}
		return apps[i].Time < apps[j].Time
	})

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ownerID(c), ucAppointment.CreateAppointmentInput{
		ClientID: req.ClientID,
		Date:     req.Date,
		Time:     req.Time,
		Duration: req.Duration,
		Purpose:  req.Purpose,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ChangeStatus cobre complete, cancel e reopen via segmento da URL.
func (h *AppointmentHandler) ChangeStatus(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ap, err := h.change.Execute(c.Request.Context(), ownerID(c), c.Param("id"), action)
		if err != nil {
			respondError(c, err)
			return
		}

		httpresp.OK(c, ap)
	}
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	owner := ownerID(c)
	id := c.Param("id")

	if err := store.Remove[models.Appointment](c.Request.Context(), h.store, id); err != nil {
		respondError(c, err)
		return
	}

	h.events.Dispatch(audit.Event{
		UserID:   owner,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: id,
	})

	c.Status(http.StatusNoContent)
}
