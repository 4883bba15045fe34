package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SalesMasterPro/sales-api/internal/models"
)

// 2024-03-15 é uma sexta-feira; índice 4 na semana útil.
const friday = "2024-03-15"

func intPtr(v int) *int { return &v }

func sale(id, date string, amount float64) models.Sale {
	return models.Sale{ID: id, UserID: "u1", Date: date, Amount: decimal.NewFromFloat(amount)}
}

func TestRouteIndex(t *testing.T) {
	assert.Equal(t, 0, RouteIndex("Segunda"))
	assert.Equal(t, 2, RouteIndex("Quarta"))
	assert.Equal(t, 4, RouteIndex("Sexta"))
	assert.Equal(t, -1, RouteIndex("Domingo"))
	assert.Equal(t, -1, RouteIndex(""))
}

func TestTodayRouteName(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2024-03-15", "Sexta"},   // sexta
		{"2024-03-16", "Sexta"},   // sábado grampeia na sexta
		{"2024-03-17", "Segunda"}, // domingo grampeia na segunda
		{"2024-03-18", "Segunda"},
		{"2024-03-20", "Quarta"},
	}
	for _, tc := range cases {
		t.Run(tc.date, func(t *testing.T) {
			assert.Equal(t, tc.want, TodayRouteName(tc.date))
		})
	}
}

func TestWeeklySalesWindow(t *testing.T) {
	sales := []models.Sale{
		sale("s-hoje", "2024-03-15", 100),
		sale("s-6d", "2024-03-09", 50),  // 6 dias atrás: dentro
		sale("s-7d", "2024-03-08", 25),  // 7 dias atrás: borda inclusiva
		sale("s-8d", "2024-03-07", 999), // 8 dias atrás: fora
		sale("s-futuro", "2024-03-16", 999),
	}

	weekly := WeeklySales(sales, friday)
	require.Len(t, weekly, 3)

	// ordenadas por data decrescente
	assert.Equal(t, "s-hoje", weekly[0].ID)
	assert.Equal(t, "s-6d", weekly[1].ID)
	assert.Equal(t, "s-7d", weekly[2].ID)

	assert.True(t, WeeklyTotal(weekly).Equal(decimal.NewFromInt(175)))
}

func TestWeeklySalesInvalidToday(t *testing.T) {
	got := WeeklySales([]models.Sale{sale("s1", "2024-03-15", 10)}, "15/03/2024")
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestWeeklyTotalDecimalPrecision(t *testing.T) {
	weekly := []models.Sale{
		sale("a", friday, 0.1),
		sale("b", friday, 0.2),
	}
	assert.Equal(t, "0.3", WeeklyTotal(weekly).String())
}

func TestVisitedTodayExactMatch(t *testing.T) {
	clients := []models.Client{
		{ID: "c1", Name: "Hoje", LastVisitDate: friday},
		{ID: "c2", Name: "Ontem", LastVisitDate: "2024-03-14"},
		{ID: "c3", Name: "Nunca", LastVisitDate: ""},
	}

	got := VisitedToday(clients, friday)
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)
}

func TestPendingAndLateOnFriday(t *testing.T) {
	clients := []models.Client{
		{ID: "seg", Name: "Segunda", AssignedRoute: "Segunda"},
		{ID: "qui", Name: "Quinta", AssignedRoute: "Quinta"},
		{ID: "sex", Name: "Sexta", AssignedRoute: "Sexta"},
		{ID: "sex-ok", Name: "Sexta Visitado", AssignedRoute: "Sexta", LastVisitDate: friday},
		{ID: "seg-ok", Name: "Segunda Visitado Hoje", AssignedRoute: "Segunda", LastVisitDate: friday},
		{ID: "livre", Name: "Sem Rota"},
	}

	t.Run("pendentes", func(t *testing.T) {
		pending := PendingToday(clients, friday)
		require.Len(t, pending, 1)
		assert.Equal(t, "sex", pending[0].ID)
	})

	t.Run("atrasados", func(t *testing.T) {
		late := LateClients(clients, friday)
		require.Len(t, late, 2)
		ids := []string{late[0].ID, late[1].ID}
		assert.ElementsMatch(t, []string{"seg", "qui"}, ids)
	})
}

func TestLateClientsNoneOnMonday(t *testing.T) {
	clients := []models.Client{
		{ID: "seg", AssignedRoute: "Segunda"},
		{ID: "sex", AssignedRoute: "Sexta"},
	}
	assert.Empty(t, LateClients(clients, "2024-03-18"))
}

func TestBuildSnapshot(t *testing.T) {
	clients := []models.Client{
		{ID: "c1", AssignedRoute: "Sexta", LastVisitDate: friday},
		{ID: "c2", AssignedRoute: "Sexta"},
		{ID: "c3", AssignedRoute: "Segunda"},
	}
	sales := []models.Sale{
		sale("s1", friday, 150),
		sale("s2", "2024-03-01", 999),
	}

	snap := BuildSnapshot(clients, sales, friday)
	assert.Equal(t, 3, snap.TotalClients)
	assert.Equal(t, 1, snap.VisitsToday)
	assert.Equal(t, 1, snap.WeeklyCount)
	assert.True(t, snap.WeeklyTotal.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 1, snap.PendingToday)
	assert.Equal(t, 1, snap.LateClients)
	assert.Equal(t, "Sexta", snap.TodayRoute)
}

func TestFilter(t *testing.T) {
	clients := []models.Client{
		{ID: "c1", Name: "Padaria Central", Code: intPtr(42)},
		{ID: "c2", Name: "Mercado Norte", Code: intPtr(108)},
		{ID: "c3", Name: "Farmácia Sul"},
	}

	t.Run("termo vazio devolve tudo", func(t *testing.T) {
		assert.Len(t, Filter(clients, ""), 3)
	})

	t.Run("substring de nome sem caixa", func(t *testing.T) {
		got := Filter(clients, "PADARIA")
		require.Len(t, got, 1)
		assert.Equal(t, "c1", got[0].ID)
	})

	t.Run("substring de código", func(t *testing.T) {
		got := Filter(clients, "08")
		require.Len(t, got, 1)
		assert.Equal(t, "c2", got[0].ID)
	})

	t.Run("código ausente não casa com zero", func(t *testing.T) {
		got := Filter(clients, "0")
		require.Len(t, got, 1)
		assert.Equal(t, "c2", got[0].ID)
	})
}

func TestSort(t *testing.T) {
	clients := []models.Client{
		{ID: "c1", Name: "Zebra", Code: intPtr(5)},
		{ID: "c2", Name: "Avestruz", Code: intPtr(30)},
		{ID: "c3", Name: "Mico"},
	}

	t.Run("por nome", func(t *testing.T) {
		got := Sort(clients, "name")
		assert.Equal(t, []string{"c2", "c3", "c1"}, []string{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("por código, ausente vale zero", func(t *testing.T) {
		got := Sort(clients, "code")
		assert.Equal(t, []string{"c3", "c1", "c2"}, []string{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("não altera a fatia original", func(t *testing.T) {
		Sort(clients, "name")
		assert.Equal(t, "c1", clients[0].ID)
	})
}

func TestMatchClient(t *testing.T) {
	c := models.Client{
		Name:    "Padaria Central",
		Company: "Central Pães LTDA",
		Code:    intPtr(42),
		CNPJ:    "11.222.333/0001-81",
	}

	assert.True(t, MatchClient(c, ""))
	assert.True(t, MatchClient(c, "padaria"))
	assert.True(t, MatchClient(c, "pães"))
	assert.True(t, MatchClient(c, "42"))
	assert.True(t, MatchClient(c, "0001-81"))
	assert.False(t, MatchClient(c, "mercado"))
}
