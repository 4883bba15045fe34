package dashboard

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SalesMasterPro/sales-api/internal/clock"
	"github.com/SalesMasterPro/sales-api/internal/models"
)

// Projeções puras do dashboard: recomputadas por inteiro a cada mutação,
// sempre contra um snapshot das coleções e um "hoje" explícito. Mesmo
// snapshot e mesma data produzem exatamente o mesmo resultado.

// Semana útil fixa, nos rótulos gravados em Client.AssignedRoute.
var RouteDays = []string{"Segunda", "Terça", "Quarta", "Quinta", "Sexta"}

// RouteIndex devolve -1 para rótulo desconhecido, como indexOf.
func RouteIndex(name string) int {
	for i, d := range RouteDays {
		if d == name {
			return i
		}
	}
	return -1
}

// TodayRouteIndex mapeia o dia da semana para [0,4]; fim de semana é
// grampeado na borda mais próxima da janela útil.
func TodayRouteIndex(today string) int {
	t, err := time.Parse(clock.DateLayout, today)
	if err != nil {
		return 0
	}

	idx := int(t.Weekday()) - 1
	if idx < 0 {
		idx = 0
	}
	if idx > 4 {
		idx = 4
	}
	return idx
}

func TodayRouteName(today string) string {
	return RouteDays[TodayRouteIndex(today)]
}

// WeeklySales filtra a janela móvel de 7 dias terminando hoje, inclusiva
// nas duas pontas, ordenada por data decrescente.
func WeeklySales(sales []models.Sale, today string) []models.Sale {
	t, err := time.Parse(clock.DateLayout, today)
	if err != nil {
		return []models.Sale{}
	}
	floor := t.AddDate(0, 0, -7).Format(clock.DateLayout)

	out := []models.Sale{}
	for _, s := range sales {
		if s.Date >= floor && s.Date <= today {
			out = append(out, s)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// WeeklyTotal soma os valores da janela semanal. Ordem de soma é
// irrelevante: decimal não acumula erro de ponto flutuante.
func WeeklyTotal(weekly []models.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range weekly {
		total = total.Add(s.Amount)
	}
	return total
}

// VisitedToday exige igualdade exata de data, não intervalo.
func VisitedToday(clients []models.Client, today string) []models.Client {
	out := []models.Client{}
	for _, c := range clients {
		if c.LastVisitDate == today {
			out = append(out, c)
		}
	}
	return out
}

// PendingToday: rota de hoje e ainda não visitado hoje.
func PendingToday(clients []models.Client, today string) []models.Client {
	route := TodayRouteName(today)

	out := []models.Client{}
	for _, c := range clients {
		if c.AssignedRoute == route && c.LastVisitDate != today {
			out = append(out, c)
		}
	}
	return out
}

// LateClients: rota de dia estritamente anterior ao de hoje e não
// visitado hoje. Cliente sem rota atribuída nunca está atrasado.
func LateClients(clients []models.Client, today string) []models.Client {
	todayIdx := TodayRouteIndex(today)

	out := []models.Client{}
	for _, c := range clients {
		if c.AssignedRoute == "" {
			continue
		}
		if RouteIndex(c.AssignedRoute) < todayIdx && c.LastVisitDate != today {
			out = append(out, c)
		}
	}
	return out
}

// Snapshot agrega os contadores exibidos nos cartões do dashboard.
type Snapshot struct {
	TotalClients int             `json:"total_clients"`
	VisitsToday  int             `json:"visits_today"`
	WeeklyCount  int             `json:"weekly_sales_count"`
	WeeklyTotal  decimal.Decimal `json:"weekly_total"`
	PendingToday int             `json:"pending_today"`
	LateClients  int             `json:"late_clients"`
	TodayRoute   string          `json:"today_route"`
}

func BuildSnapshot(clients []models.Client, sales []models.Sale, today string) Snapshot {
	weekly := WeeklySales(sales, today)

	return Snapshot{
		TotalClients: len(clients),
		VisitsToday:  len(VisitedToday(clients, today)),
		WeeklyCount:  len(weekly),
		WeeklyTotal:  WeeklyTotal(weekly),
		PendingToday: len(PendingToday(clients, today)),
		LateClients:  len(LateClients(clients, today)),
		TodayRoute:   TodayRouteName(today),
	}
}

// ======================================================
// Busca e ordenação
// ======================================================

// Entry é qualquer linha listável por nome e código numérico.
type Entry interface {
	DisplayName() string
	CodeOrZero() int
}

// Filter aplica busca por substring, sem distinção de caixa, sobre nome
// e código.
func Filter[T Entry](items []T, term string) []T {
	if term == "" {
		return items
	}
	lower := strings.ToLower(term)

	out := []T{}
	for _, it := range items {
		name := strings.ToLower(it.DisplayName())
		codeMatch := it.CodeOrZero() != 0 &&
			strings.Contains(strconv.Itoa(it.CodeOrZero()), term)
		if strings.Contains(name, lower) || codeMatch {
			out = append(out, it)
		}
	}
	return out
}

// Sort ordena por nome (lexicográfico) ou por código numérico crescente;
// código ausente conta como 0.
func Sort[T Entry](items []T, order string) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == "code" {
			return sorted[i].CodeOrZero() < sorted[j].CodeOrZero()
		}
		return sorted[i].DisplayName() < sorted[j].DisplayName()
	})
	return sorted
}

// MatchClient é a busca ampla da carteira: nome, empresa, código e CNPJ.
func MatchClient(c models.Client, term string) bool {
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)

	if strings.Contains(strings.ToLower(c.Name), lower) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Company), lower) {
		return true
	}
	if c.Code != nil && strings.Contains(strconv.Itoa(*c.Code), term) {
		return true
	}
	return c.CNPJ != "" && strings.Contains(c.CNPJ, term)
}
