package route

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/SalesMasterPro/sales-api/internal/assistant"
	"github.com/SalesMasterPro/sales-api/internal/audit"
	"github.com/SalesMasterPro/sales-api/internal/clock"
	"github.com/SalesMasterPro/sales-api/internal/httperr"
	"github.com/SalesMasterPro/sales-api/internal/models"
	"github.com/SalesMasterPro/sales-api/internal/store"
)

func newTestEnv(t *testing.T) (*store.Store, *audit.Dispatcher) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	st := store.New(db, zap.NewNop())
	require.NoError(t, st.Init(context.Background()))

	return st, audit.NewDispatcher(audit.New(db), zap.NewNop())
}

type stubGenerator struct {
	reply      string
	calls      int
	lastPrompt string
}

func (s *stubGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	return s.reply, nil
}

func TestSaveRoute(t *testing.T) {
	st, au := newTestEnv(t)
	uc := NewSaveRoute(st, au, clock.DefaultTimezone)
	ctx := context.Background()

	created, err := uc.Execute(ctx, "u1", SaveRouteInput{
		Name:      "Rota de Segunda",
		ClientIDs: []string{"c1", "c2"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, clock.Today(clock.DefaultTimezone), created.Date)

	updated, err := uc.Execute(ctx, "u1", SaveRouteInput{
		ID:        created.ID,
		Name:      "Rota de Segunda (revisada)",
		ClientIDs: []string{"c2", "c1"},
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	routes, err := store.ListByOwner[models.SavedRoute](ctx, st, "u1")
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, []string{"c2", "c1"}, routes[0].ClientIDs)
}

func TestSaveRouteRequiresName(t *testing.T) {
	st, au := newTestEnv(t)
	uc := NewSaveRoute(st, au, clock.DefaultTimezone)

	_, err := uc.Execute(context.Background(), "u1", SaveRouteInput{})
	var be httperr.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "name_required", be.Code)
}

func TestOptimizeRoute(t *testing.T) {
	st, _ := newTestEnv(t)
	ctx := context.Background()

	seed := []models.Client{
		{ID: "c1", UserID: "u1", Name: "Padaria", Address: "Rua A, 1", AssignedRoute: "Segunda"},
		{ID: "c2", UserID: "u1", Name: "Mercado", Address: "Rua B, 2", AssignedRoute: "Segunda"},
		{ID: "c3", UserID: "u1", Name: "Farmácia", Address: "Rua C, 3", AssignedRoute: "Terça"},
		{ID: "c4", UserID: "u2", Name: "Alheio", Address: "Rua D, 4", AssignedRoute: "Segunda"},
	}
	for _, c := range seed {
		require.NoError(t, store.Upsert(ctx, st, c))
	}

	gen := &stubGenerator{reply: "1. Rua B, 2\n2. Rua A, 1"}
	uc := NewOptimizeRoute(st, assistant.New(gen, zap.NewNop()))

	t.Run("dia inválido", func(t *testing.T) {
		_, err := uc.Execute(ctx, "u1", "Domingo")
		var be httperr.BusinessError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, "invalid_route_day", be.Code)
		assert.Zero(t, gen.calls)
	})

	t.Run("só clientes do dono e do dia entram no prompt", func(t *testing.T) {
		text, err := uc.Execute(ctx, "u1", "Segunda")
		require.NoError(t, err)
		assert.Equal(t, gen.reply, text)
		assert.Contains(t, gen.lastPrompt, "Padaria: Rua A, 1")
		assert.Contains(t, gen.lastPrompt, "Mercado: Rua B, 2")
		assert.NotContains(t, gen.lastPrompt, "Farmácia")
		assert.NotContains(t, gen.lastPrompt, "Alheio")
	})

	t.Run("um endereço só devolve a mensagem fixa", func(t *testing.T) {
		calls := gen.calls
		text, err := uc.Execute(ctx, "u1", "Terça")
		require.NoError(t, err)
		assert.Equal(t, assistant.MsgNeedAddresses, text)
		assert.Equal(t, calls, gen.calls, "serviço externo não é chamado")
	})
}
