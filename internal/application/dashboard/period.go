// Package dashboard contiene el caso de uso de estadísticas agregadas de
// ventas: resolución de períodos, reducción de métricas con variación
// porcentual y rankings top-N de productos y combos.
package dashboard

import (
	"fmt"
	"time"

	"github.com/EdgarCaloch00/CrepePosApi/internal/domain"
)

// Períodos soportados por GET /api/dashboard/stats.
const (
	PeriodToday  = "today"
	PeriodWeek   = "week"
	PeriodMonth  = "month"
	PeriodCustom = "custom"
)

const dateLayout = "2006-01-02"

// dayEnd distancia de la medianoche al último instante del día (resolución ms).
const dayEnd = 24*time.Hour - time.Millisecond

// Window intervalo cerrado [Start, End] que acota qué ventas cuentan.
// Invariante: Start ≤ End.
type Window struct {
	Start time.Time
	End   time.Time
}

// Duration duración de la ventana.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// utc devuelve la ventana con ambos instantes en UTC para consultar la DB.
func (w Window) utc() Window {
	return Window{Start: w.Start.UTC(), End: w.End.UTC()}
}

// ResolvePeriod convierte los parámetros del request en dos ventanas
// comparables: la actual y la anterior. Los límites de día/mes se calculan
// en hora civil de `loc` (offset fijo configurado) y se devuelven como
// instantes UTC.
//
// Política de adyacencia: la ventana anterior tiene exactamente la misma
// duración que la actual y termina 1 ms antes de que la actual empiece.
// Para period=month eso significa que "anterior" es una ventana del mismo
// largo, no el mes calendario previo.
//
// `now` se inyecta: la resolución nunca lee el reloj de pared.
func ResolvePeriod(period, startStr, endStr string, now time.Time, loc *time.Location) (current, previous Window, err error) {
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	switch period {
	case "", PeriodMonth:
		// Mes calendario en curso completo.
		first := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
		current = Window{Start: first, End: first.AddDate(0, 1, 0).Add(-time.Millisecond)}

	case PeriodToday:
		current = Window{Start: today, End: today.Add(dayEnd)}

	case PeriodWeek:
		// Últimos 7 días civiles, hoy incluido.
		current = Window{Start: today.AddDate(0, 0, -6), End: today.Add(dayEnd)}

	case PeriodCustom:
		if startStr == "" {
			return Window{}, Window{}, fmt.Errorf("%w: startDate es obligatorio con period=custom", domain.ErrInvalidInput)
		}
		if endStr == "" {
			return Window{}, Window{}, fmt.Errorf("%w: endDate es obligatorio con period=custom", domain.ErrInvalidInput)
		}
		start, perr := time.ParseInLocation(dateLayout, startStr, loc)
		if perr != nil {
			return Window{}, Window{}, fmt.Errorf("%w: startDate debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		end, perr := time.ParseInLocation(dateLayout, endStr, loc)
		if perr != nil {
			return Window{}, Window{}, fmt.Errorf("%w: endDate debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		end = end.Add(dayEnd)
		if start.After(end) {
			return Window{}, Window{}, fmt.Errorf("%w: startDate no puede ser posterior a endDate", domain.ErrInvalidInput)
		}
		current = Window{Start: start, End: end}

	default:
		return Window{}, Window{}, fmt.Errorf("%w: period debe ser today, week, month o custom", domain.ErrInvalidInput)
	}

	// Ventana anterior: misma duración, termina 1 ms antes del inicio actual.
	prevEnd := current.Start.Add(-time.Millisecond)
	previous = Window{Start: prevEnd.Add(-current.Duration()), End: prevEnd}

	return current.utc(), previous.utc(), nil
}

// trailingDays ventana de los últimos `days` días civiles terminando hoy,
// usada para la serie diaria independiente del período seleccionado.
func trailingDays(days int, now time.Time, loc *time.Location) Window {
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return Window{Start: today.AddDate(0, 0, -(days - 1)), End: today.Add(dayEnd)}.utc()
}
