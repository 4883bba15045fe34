package route

import (
	"context"
	"fmt"

	"github.com/SalesMasterPro/sales-api/internal/assistant"
	"github.com/SalesMasterPro/sales-api/internal/domain/dashboard"
	"github.com/SalesMasterPro/sales-api/internal/httperr"
	"github.com/SalesMasterPro/sales-api/internal/models"
	"github.com/SalesMasterPro/sales-api/internal/store"
)

// OptimizeRoute monta a lista "Nome: Endereço" dos clientes atribuídos
// ao dia escolhido e delega ao assistente. A resposta é sempre texto:
// falha do serviço externo vira a mensagem fixa de fallback, nunca erro.
type OptimizeRoute struct {
	store     *store.Store
	assistant *assistant.Assistant
}

func NewOptimizeRoute(st *store.Store, as *assistant.Assistant) *OptimizeRoute {
	return &OptimizeRoute{store: st, assistant: as}
}

func (uc *OptimizeRoute) Execute(
	ctx context.Context,
	ownerID string,
	day string,
) (string, error) {

	if dashboard.RouteIndex(day) < 0 {
		return "", httperr.ErrBusiness("invalid_route_day")
	}

	clients, err := store.ListByOwner[models.Client](ctx, uc.store, ownerID)
	if err != nil {
		return "", err
	}

	addresses := []string{}
	for _, c := range clients {
		if c.AssignedRoute == day {
			addresses = append(addresses, fmt.Sprintf("%s: %s", c.Name, c.Address))
		}
	}

	return uc.assistant.OptimizeRoute(ctx, addresses), nil
}
