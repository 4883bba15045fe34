package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/SalesMasterPro/sales-api/internal/audit"
	domain "github.com/SalesMasterPro/sales-api/internal/domain/appointment"
	"github.com/SalesMasterPro/sales-api/internal/httperr"
	"github.com/SalesMasterPro/sales-api/internal/models"
	"github.com/SalesMasterPro/sales-api/internal/store"
)

// ChangeStatus aplica uma transição validada do compromisso: complete,
// cancel ou reopen. Qualquer outro alvo é rejeitado.
type ChangeStatus struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewChangeStatus(st *store.Store, au *audit.Dispatcher) *ChangeStatus {
	return &ChangeStatus{store: st, audit: au}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	ownerID string,
	appointmentID string,
	action string,
) (*models.Appointment, error) {

	ap, err := store.Find[models.Appointment](ctx, uc.store, ownerID, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	current := domain.Status(ap.Status)
	var next domain.Status

	switch action {
	case "complete":
		if err := domain.CanComplete(current); err != nil {
			return nil, err
		}
		next = domain.StatusCompleted

	case "cancel":
		if err := domain.CanCancel(current); err != nil {
			return nil, err
		}
		next = domain.StatusCancelled

	case "reopen":
		if err := domain.CanReopen(current); err != nil {
			return nil, err
		}
		next = domain.StatusPending

	default:
		return nil, httperr.ErrBusiness("invalid_action")
	}

	ap.Status = string(next)
	if err := store.Upsert(ctx, uc.store, *ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "appointment_" + action,
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
