package route

import (
	"context"

	"github.com/google/uuid"

	"github.com/SalesMasterPro/sales-api/internal/audit"
	"github.com/SalesMasterPro/sales-api/internal/clock"
	"github.com/SalesMasterPro/sales-api/internal/httperr"
	"github.com/SalesMasterPro/sales-api/internal/models"
	"github.com/SalesMasterPro/sales-api/internal/store"
)

type SaveRouteInput struct {
	ID           string
	Name         string
	ClientIDs    []string
	Optimization string
}

type SaveRoute struct {
	store *store.Store
	audit *audit.Dispatcher
	tz    string
}

func NewSaveRoute(st *store.Store, au *audit.Dispatcher, tz string) *SaveRoute {
	return &SaveRoute{store: st, audit: au, tz: tz}
}

func (uc *SaveRoute) Execute(
	ctx context.Context,
	ownerID string,
	in SaveRouteInput,
) (*models.SavedRoute, error) {

	if in.Name == "" {
		return nil, httperr.ErrBusiness("name_required")
	}

	rec := models.SavedRoute{
		ID:           in.ID,
		UserID:       ownerID,
		Name:         in.Name,
		ClientIDs:    in.ClientIDs,
		Optimization: in.Optimization,
		Date:         clock.Today(uc.tz),
	}

	action := "route_updated"
	if rec.ID == "" {
		rec.ID = uuid.NewString()
		action = "route_saved"
	}

	if err := store.Upsert(ctx, uc.store, rec); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   action,
		Entity:   "route",
		EntityID: rec.ID,
	})

	return &rec, nil
}
