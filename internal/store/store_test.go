package store

import (
	"context"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/SalesMasterPro/sales-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s := New(newTestDB(t), zap.NewNop())
	require.NoError(t, s.Init(context.Background()))
	return s
}

func intPtr(v int) *int { return &v }

func TestStoreRequiresInit(t *testing.T) {
	s := New(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	_, err := ListByOwner[models.Client](ctx, s, "u1")
	assert.ErrorIs(t, err, ErrNotInitialized)

	err = Upsert(ctx, s, models.Client{ID: "c1", UserID: "u1", Name: "Padaria"})
	assert.ErrorIs(t, err, ErrNotInitialized)

	err = Remove[models.Client](ctx, s, "c1")
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = s.ListUsers(ctx)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestInitIsIdempotent(t *testing.T) {
	s := New(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Init(ctx))
		}()
	}
	wg.Wait()

	require.NoError(t, s.Init(ctx))
	require.NoError(t, Upsert(ctx, s, models.Client{ID: "c1", UserID: "u1", Name: "Padaria"}))
}

func TestOwnerIsolation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// escritas intercaladas dos dois donos
	require.NoError(t, Upsert(ctx, s, models.Client{ID: "a1", UserID: "u1", Name: "Padaria Central"}))
	require.NoError(t, Upsert(ctx, s, models.Client{ID: "b1", UserID: "u2", Name: "Mercado Norte"}))
	require.NoError(t, Upsert(ctx, s, models.Client{ID: "a2", UserID: "u1", Name: "Farmácia Sul"}))
	require.NoError(t, Upsert(ctx, s, models.Client{ID: "b2", UserID: "u2", Name: "Atacado Leste"}))

	forU1, err := ListByOwner[models.Client](ctx, s, "u1")
	require.NoError(t, err)
	require.Len(t, forU1, 2)
	for _, c := range forU1 {
		assert.Equal(t, "u1", c.UserID)
	}

	forU2, err := ListByOwner[models.Client](ctx, s, "u2")
	require.NoError(t, err)
	require.Len(t, forU2, 2)
	for _, c := range forU2 {
		assert.Equal(t, "u2", c.UserID)
	}
}

func TestListByOwnerUnknownOwnerIsEmpty(t *testing.T) {
	s := newTestStore(t)

	got, err := ListByOwner[models.Sale](context.Background(), s, "ninguem")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestUpsertRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	in := models.Client{
		ID:            "c1",
		UserID:        "u1",
		Code:          intPtr(42),
		Name:          "Padaria Central",
		Company:       "Central Pães LTDA",
		CNPJ:          "11.222.333/0001-81",
		Phone:         "11 99999-0001",
		Address:       "Rua das Flores, 10",
		Category:      "A",
		AssignedRoute: "Segunda",
		LastVisitDate: "2024-03-15",
		Notes:         "pedido quinzenal",
	}
	require.NoError(t, Upsert(ctx, s, in))

	got, err := ListByOwner[models.Client](ctx, s, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)

	out := got[0]
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.UserID, out.UserID)
	require.NotNil(t, out.Code)
	assert.Equal(t, 42, *out.Code)
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Company, out.Company)
	assert.Equal(t, in.CNPJ, out.CNPJ)
	assert.Equal(t, in.Category, out.Category)
	assert.Equal(t, in.AssignedRoute, out.AssignedRoute)
	assert.Equal(t, in.LastVisitDate, out.LastVisitDate)
	assert.Equal(t, in.Notes, out.Notes)
}

func TestUpsertReplacesWholeRecord(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, Upsert(ctx, s, models.Client{
		ID: "c1", UserID: "u1", Name: "Padaria", Notes: "antiga",
	}))
	require.NoError(t, Upsert(ctx, s, models.Client{
		ID: "c1", UserID: "u1", Name: "Padaria Central",
	}))

	got, err := ListByOwner[models.Client](ctx, s, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Padaria Central", got[0].Name)
	assert.Empty(t, got[0].Notes, "substituição é do registro inteiro")
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, Upsert(ctx, s, models.Sale{
		ID: "s1", UserID: "u1", ClientName: "Padaria",
		Amount: decimal.NewFromInt(100), Date: "2024-03-15",
	}))

	require.NoError(t, Remove[models.Sale](ctx, s, "s1"))
	require.NoError(t, Remove[models.Sale](ctx, s, "s1"))
	require.NoError(t, Remove[models.Sale](ctx, s, "jamais-existiu"))

	got, err := ListByOwner[models.Sale](ctx, s, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindScopedToOwner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, Upsert(ctx, s, models.Client{ID: "c1", UserID: "u1", Name: "Padaria"}))

	found, err := Find[models.Client](ctx, s, "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "Padaria", found.Name)

	_, err = Find[models.Client](ctx, s, "u2", "c1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListUsers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, Upsert(ctx, s, models.User{ID: "1", Username: "admin", Name: "Administrador", IsActive: true}))
	require.NoError(t, Upsert(ctx, s, models.User{ID: "2", Username: "vendedor1", Name: "João", IsActive: true}))

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestSavedRouteClientIDsSerialization(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, Upsert(ctx, s, models.SavedRoute{
		ID: "r1", UserID: "u1", Name: "Rota de Segunda",
		ClientIDs: []string{"c1", "c2", "c3"},
	}))

	routes, err := ListByOwner[models.SavedRoute](ctx, s, "u1")
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, []string{"c1", "c2", "c3"}, routes[0].ClientIDs)
}
