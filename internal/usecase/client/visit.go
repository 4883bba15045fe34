package client

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/SalesMasterPro/sales-api/internal/audit"
	"github.com/SalesMasterPro/sales-api/internal/clock"
	"github.com/SalesMasterPro/sales-api/internal/httperr"
	"github.com/SalesMasterPro/sales-api/internal/models"
	"github.com/SalesMasterPro/sales-api/internal/store"
)

// ToggleVisit marca ou desmarca a visita de hoje ao cliente.
type ToggleVisit struct {
	store *store.Store
	audit *audit.Dispatcher
	tz    string
}

func NewToggleVisit(st *store.Store, au *audit.Dispatcher, tz string) *ToggleVisit {
	return &ToggleVisit{store: st, audit: au, tz: tz}
}

func (uc *ToggleVisit) Execute(
	ctx context.Context,
	ownerID string,
	clientID string,
) (*models.Client, error) {

	rec, err := store.Find[models.Client](ctx, uc.store, ownerID, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		return nil, err
	}

	today := clock.Today(uc.tz)
	action := "client_visited"
	if rec.LastVisitDate == today {
		rec.LastVisitDate = ""
		action = "client_visit_cleared"
	} else {
		rec.LastVisitDate = today
	}

	if err := store.Upsert(ctx, uc.store, *rec); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   action,
		Entity:   "client",
		EntityID: rec.ID,
	})

	return rec, nil
}
