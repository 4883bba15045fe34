package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SalesMasterPro/sales-api/internal/audit"
	"github.com/SalesMasterPro/sales-api/internal/httperr"
	"github.com/SalesMasterPro/sales-api/internal/models"
	"github.com/SalesMasterPro/sales-api/internal/store"
	"github.com/SalesMasterPro/sales-api/internal/validators"
)

// DuplicateCodeError: código de cliente já usado por outro cliente do
// mesmo representante. A escrita é rejeitada antes de tocar o banco.
type DuplicateCodeError struct {
	Code int
}

func (e DuplicateCodeError) Error() string {
	return fmt.Sprintf("client code %d already in use", e.Code)
}

// ======================================================
// INPUT
// ======================================================

type SaveClientInput struct {
	ID string // vazio = criação

	Code    *int
	Name    string
	Company string
	CNPJ    string
	Email   string
	Phone   string
	Address string

	Category      string
	AssignedRoute string
	Notes         string

	Lat *float64
	Lng *float64
}

// ======================================================
// USE CASE
// ======================================================

type SaveClient struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewSaveClient(st *store.Store, au *audit.Dispatcher) *SaveClient {
	return &SaveClient{store: st, audit: au}
}

func (uc *SaveClient) Execute(
	ctx context.Context,
	ownerID string,
	in SaveClientInput,
) (*models.Client, error) {

	if in.Name == "" {
		return nil, httperr.ErrBusiness("name_required")
	}

	if in.Category == "" {
		in.Category = "C"
	}
	if in.Category != "A" && in.Category != "B" && in.Category != "C" {
		return nil, httperr.ErrBusiness("invalid_category")
	}

	if in.CNPJ != "" && !validators.IsCNPJValid(in.CNPJ) {
		return nil, httperr.ErrBusiness("invalid_cnpj")
	}

	// Unicidade do código restrita à carteira do próprio dono.
	if in.Code != nil {
		siblings, err := store.ListByOwner[models.Client](ctx, uc.store, ownerID)
		if err != nil {
			return nil, err
		}
		for _, c := range siblings {
			if c.Code != nil && *c.Code == *in.Code && c.ID != in.ID {
				return nil, DuplicateCodeError{Code: *in.Code}
			}
		}
	}

	rec := models.Client{
		ID:            in.ID,
		UserID:        ownerID,
		Code:          in.Code,
		Name:          in.Name,
		Company:       in.Company,
		CNPJ:          in.CNPJ,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		Category:      in.Category,
		AssignedRoute: in.AssignedRoute,
		Notes:         in.Notes,
		Lat:           in.Lat,
		Lng:           in.Lng,
	}

	action := "client_updated"
	if in.ID == "" {
		rec.ID = uuid.NewString()
		action = "client_created"
	} else {
		existing, err := store.Find[models.Client](ctx, uc.store, ownerID, in.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, httperr.ErrBusiness("client_not_found")
			}
			return nil, err
		}
		// Estado de visita não passa pelo formulário.
		rec.LastVisitDate = existing.LastVisitDate
		rec.CreatedAt = existing.CreatedAt
	}

	if err := store.Upsert(ctx, uc.store, rec); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   action,
		Entity:   "client",
		EntityID: rec.ID,
	})

	return &rec, nil
}
