package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SalesMasterPro/sales-api/internal/audit"
	"github.com/SalesMasterPro/sales-api/internal/clock"
	domain "github.com/SalesMasterPro/sales-api/internal/domain/appointment"
	"github.com/SalesMasterPro/sales-api/internal/httperr"
	"github.com/SalesMasterPro/sales-api/internal/models"
	"github.com/SalesMasterPro/sales-api/internal/store"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID string
	Date     string
	Time     string
	Duration int
	Purpose  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewCreateAppointment(st *store.Store, au *audit.Dispatcher) *CreateAppointment {
	return &CreateAppointment{store: st, audit: au}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	ownerID string,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if _, err := time.Parse(clock.DateLayout, in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if in.Time != "" {
		if _, err := time.Parse("15:04", in.Time); err != nil {
			return nil, httperr.ErrBusiness("invalid_time")
		}
	}

	if in.Duration <= 0 {
		in.Duration = 30
	}

	// Snapshot do nome no momento da criação. Cliente inexistente não
	// bloqueia: a agenda aceita compromissos órfãos.
	clientName := "Cliente Desconhecido"
	if in.ClientID != "" {
		cli, err := store.Find[models.Client](ctx, uc.store, ownerID, in.ClientID)
		switch {
		case err == nil:
			clientName = cli.Name
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}

	ap := models.Appointment{
		ID:         uuid.NewString(),
		UserID:     ownerID,
		ClientID:   in.ClientID,
		ClientName: clientName,
		Date:       in.Date,
		Time:       in.Time,
		Duration:   in.Duration,
		Purpose:    in.Purpose,
		Status:     string(domain.InitialStatus()),
	}

	if err := store.Upsert(ctx, uc.store, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return &ap, nil
}
