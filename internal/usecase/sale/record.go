package sale

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/SalesMasterPro/sales-api/internal/audit"
	"github.com/SalesMasterPro/sales-api/internal/clock"
	"github.com/SalesMasterPro/sales-api/internal/httperr"
	"github.com/SalesMasterPro/sales-api/internal/models"
	"github.com/SalesMasterPro/sales-api/internal/store"
)

// ======================================================
// INPUT
// ======================================================

type RecordSaleInput struct {
	ID       string // vazio = criação
	ClientID string
	Amount   decimal.Decimal
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

// RecordSale grava uma positivação. O nome do cliente é copiado no
// momento da escrita: o registro continua legível se o cliente for
// excluído depois.
type RecordSale struct {
	store *store.Store
	audit *audit.Dispatcher
	tz    string
}

func NewRecordSale(st *store.Store, au *audit.Dispatcher, tz string) *RecordSale {
	return &RecordSale{store: st, audit: au, tz: tz}
}

func (uc *RecordSale) Execute(
	ctx context.Context,
	ownerID string,
	in RecordSaleInput,
) (*models.Sale, error) {

	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	rec := models.Sale{
		ID:       in.ID,
		UserID:   ownerID,
		ClientID: in.ClientID,
		Amount:   in.Amount,
		Notes:    in.Notes,
	}

	action := "sale_updated"
	if in.ID == "" {
		rec.ID = uuid.NewString()
		rec.Date = clock.Today(uc.tz)
		action = "sale_recorded"
	} else {
		existing, err := store.Find[models.Sale](ctx, uc.store, ownerID, in.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, httperr.ErrBusiness("sale_not_found")
			}
			return nil, err
		}
		// Edição preserva a data original da venda.
		rec.Date = existing.Date
		rec.CreatedAt = existing.CreatedAt
		if rec.ClientID == "" {
			rec.ClientID = existing.ClientID
		}
		rec.ClientName = existing.ClientName
	}

	// Snapshot desnormalizado do nome; cliente já excluído degrada para
	// o nome anterior ou o marcador genérico.
	if rec.ClientID != "" {
		if cli, err := store.Find[models.Client](ctx, uc.store, ownerID, rec.ClientID); err == nil {
			rec.ClientName = cli.Name
		}
	}
	if rec.ClientName == "" {
		rec.ClientName = "Cliente"
	}

	if err := store.Upsert(ctx, uc.store, rec); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   action,
		Entity:   "sale",
		EntityID: rec.ID,
		Metadata: map[string]string{"amount": rec.Amount.String()},
	})

	return &rec, nil
}
