package clock

import "time"

// DateLayout é o formato de todas as datas persistidas.
const DateLayout = "2006-01-02"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today é a data-calendário local usada por todas as projeções do
// dashboard. Sem normalização entre fusos: vale o relógio do processo.
func Today(tz string) string {
	return NowIn(tz).Format(DateLayout)
}
