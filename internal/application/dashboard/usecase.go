package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/EdgarCaloch00/CrepePosApi/internal/application/dto"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/repository"
)

const (
	defaultTopN     = 5
	dailySeriesDays = 7

	// unknownName sustituye el nombre cuando el id rankeado ya no existe
	// en el catálogo (producto o combo borrado después de venderse).
	unknownName = "Unknown"
)

var hundred = decimal.NewFromInt(100)

// Options parámetros de comportamiento del dashboard (vienen de config).
type Options struct {
	// TZOffsetHours desfase civil fijo respecto a UTC (-6 = CST México).
	// Offset fijo a propósito: no corrige horario de verano.
	TZOffsetHours int
	// BranchFilterEnabled aplica branch_id a las consultas; apagado, el
	// parámetro se acepta pero no filtra.
	BranchFilterEnabled bool
	// TopN tamaño de los rankings (default 5).
	TopN int
	// Now reloj inyectable para tests. nil = time.Now.
	Now func() time.Time
}

// DashboardUseCase calcula las estadísticas agregadas de ventas del período
// solicitado contra el período anterior de igual duración.
//
// Fuente de datos: SalesRepository y CatalogRepository (consultas read-only).
// No accede directamente a las tablas; delega todo en los repositorios.
type DashboardUseCase struct {
	salesRepo   repository.SalesRepository
	catalogRepo repository.CatalogRepository
	opts        Options
	loc         *time.Location
	now         func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	salesRepo repository.SalesRepository,
	catalogRepo repository.CatalogRepository,
	opts Options,
) *DashboardUseCase {
	if opts.TopN <= 0 {
		opts.TopN = defaultTopN
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	name := fmt.Sprintf("UTC%+d", opts.TZOffsetHours)
	return &DashboardUseCase{
		salesRepo:   salesRepo,
		catalogRepo: catalogRepo,
		opts:        opts,
		loc:         time.FixedZone(name, opts.TZOffsetHours*3600),
		now:         now,
	}
}

// GetStats construye el DashboardStatsDTO para el período solicitado.
//
// Cinco consultas independientes en paralelo:
//  1. GetSalesSummary(actual)    → totales del período
//  2. GetSalesSummary(anterior)  → base de comparación
//  3. GetTopProducts(actual)     → ranking de productos
//  4. GetTopCombos(actual)       → ranking de combos
//  5. GetDailySales(últimos 7d)  → serie diaria
func (uc *DashboardUseCase) GetStats(
	ctx context.Context,
	req dto.DashboardStatsRequest,
) (*dto.DashboardStatsDTO, error) {
	now := uc.now()
	current, previous, err := ResolvePeriod(req.Period, req.StartDate, req.EndDate, now, uc.loc)
	if err != nil {
		return nil, err
	}

	var branchID *string
	if uc.opts.BranchFilterEnabled && req.BranchID != "" {
		branchID = &req.BranchID
	}

	series := trailingDays(dailySeriesDays, now, uc.loc)

	// ── Goroutines para paralelizar las 5 consultas DB ────────────────────────
	type summaryResult struct {
		summary repository.SalesSummaryResult
		err     error
	}
	type rankedResult struct {
		rows []repository.RankedQuantityResult
		err  error
	}
	type dailyResult struct {
		rows []repository.DailySalesResult
		err  error
	}

	curCh := make(chan summaryResult, 1)
	prevCh := make(chan summaryResult, 1)
	prodCh := make(chan rankedResult, 1)
	comboCh := make(chan rankedResult, 1)
	dailyCh := make(chan dailyResult, 1)

	go func() {
		s, err := uc.salesRepo.GetSalesSummary(ctx, current.Start, current.End, branchID)
		curCh <- summaryResult{s, err}
	}()
	go func() {
		s, err := uc.salesRepo.GetSalesSummary(ctx, previous.Start, previous.End, branchID)
		prevCh <- summaryResult{s, err}
	}()
	go func() {
		rows, err := uc.salesRepo.GetTopProducts(ctx, current.Start, current.End, branchID, uc.opts.TopN)
		prodCh <- rankedResult{rows, err}
	}()
	go func() {
		rows, err := uc.salesRepo.GetTopCombos(ctx, current.Start, current.End, branchID, uc.opts.TopN)
		comboCh <- rankedResult{rows, err}
	}()
	go func() {
		rows, err := uc.salesRepo.GetDailySales(ctx, series.Start, series.End, branchID)
		dailyCh <- dailyResult{rows, err}
	}()

	cur := <-curCh
	prev := <-prevCh
	prods := <-prodCh
	combos := <-comboCh
	daily := <-dailyCh

	if cur.err != nil {
		return nil, fmt.Errorf("dashboard: período actual: %w", cur.err)
	}
	if prev.err != nil {
		return nil, fmt.Errorf("dashboard: período anterior: %w", prev.err)
	}
	if prods.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", prods.err)
	}
	if combos.err != nil {
		return nil, fmt.Errorf("dashboard: top combos: %w", combos.err)
	}
	if daily.err != nil {
		return nil, fmt.Errorf("dashboard: serie diaria: %w", daily.err)
	}

	// ── Reducción y variaciones ───────────────────────────────────────────────
	avgCur := avgTicket(cur.summary.Total, cur.summary.Orders)
	avgPrev := avgTicket(prev.summary.Total, prev.summary.Orders)

	topProducts, err := uc.resolveNames(ctx, prods.rows, uc.catalogRepo.GetProductName)
	if err != nil {
		return nil, fmt.Errorf("dashboard: nombres de productos: %w", err)
	}
	topCombos, err := uc.resolveNames(ctx, combos.rows, uc.catalogRepo.GetComboName)
	if err != nil {
		return nil, fmt.Errorf("dashboard: nombres de combos: %w", err)
	}

	return &dto.DashboardStatsDTO{
		Period: dto.PeriodDTO{
			StartDate: current.Start.In(uc.loc).Format(dateLayout),
			EndDate:   current.End.In(uc.loc).Format(dateLayout),
		},
		TotalSales:   moneyMetric(cur.summary.Total, prev.summary.Total),
		Orders:       countMetric(cur.summary.Orders, prev.summary.Orders),
		ProductsSold: countMetric(cur.summary.Units, prev.summary.Units),
		AvgTicket:    moneyMetric(avgCur, avgPrev),
		TopProducts:  topProducts,
		TopCombos:    topCombos,
		DailySales:   uc.buildDailySeries(series, daily.rows),
	}, nil
}

// resolveNames convierte las filas rankeadas en entradas con nombre.
// Un id sin fila de catálogo no es error: se resuelve como "Unknown" y el
// procesamiento continúa; cualquier otro fallo aborta el request completo.
func (uc *DashboardUseCase) resolveNames(
	ctx context.Context,
	rows []repository.RankedQuantityResult,
	lookup func(ctx context.Context, id string) (string, error),
) ([]dto.RankedEntryDTO, error) {
	entries := make([]dto.RankedEntryDTO, 0, len(rows))
	for _, row := range rows {
		name, err := lookup(ctx, row.ID)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			name = unknownName
		}
		entries = append(entries, dto.RankedEntryDTO{
			Name:          name,
			SalesQuantity: row.Quantity,
		})
	}
	return entries, nil
}

// buildDailySeries rellena los 7 días de la serie; los días sin ventas
// quedan en "0.00".
func (uc *DashboardUseCase) buildDailySeries(
	series Window,
	rows []repository.DailySalesResult,
) []dto.DailySalesPointDTO {
	totals := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.Day.Format(dateLayout)] = row.Total
	}

	start := series.Start.In(uc.loc)
	points := make([]dto.DailySalesPointDTO, 0, dailySeriesDays)
	for i := 0; i < dailySeriesDays; i++ {
		day := start.AddDate(0, 0, i).Format(dateLayout)
		total, ok := totals[day]
		if !ok {
			total = decimal.Zero
		}
		points = append(points, dto.DailySalesPointDTO{
			Date:  day,
			Total: total.StringFixed(2),
		})
	}
	return points
}

// avgTicket total/órdenes; 0 cuando no hubo órdenes (nunca división entre cero).
func avgTicket(total decimal.Decimal, orders int64) decimal.Decimal {
	if orders <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(orders))
}

// percentChange variación porcentual (actual - anterior) / anterior × 100 con
// un decimal fijo. Si el denominador es cero devuelve "0.0" aunque el actual
// sea mayor; la asimetría se conserva deliberadamente. Positive = no bajó.
func percentChange(current, previous decimal.Decimal) (change string, positive bool) {
	if previous.IsZero() {
		return "0.0", true
	}
	pct := current.Sub(previous).Div(previous).Mul(hundred)
	return pct.StringFixed(1), current.GreaterThanOrEqual(previous)
}

func moneyMetric(current, previous decimal.Decimal) dto.MoneyMetricDTO {
	change, positive := percentChange(current, previous)
	return dto.MoneyMetricDTO{
		Value:    current.StringFixed(2),
		Change:   change,
		Positive: positive,
	}
}

func countMetric(current, previous int64) dto.CountMetricDTO {
	change, positive := percentChange(decimal.NewFromInt(current), decimal.NewFromInt(previous))
	return dto.CountMetricDTO{
		Value:    current,
		Change:   change,
		Positive: positive,
	}
}
