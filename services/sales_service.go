package services

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/yeremiapane/foodpoint-pos/kds"
	"github.com/yeremiapane/foodpoint-pos/models"
	"github.com/yeremiapane/foodpoint-pos/repositories"
)

const (
	RecentSalesLimit = 50
	AllSalesLimit    = 100
	trendDays        = 7
	dayLayout        = "2006-01-02"
)

type SalesService struct {
	sales    repositories.SaleRepository
	clock    Clock
	notifier Notifier
}

func NewSalesService(sales repositories.SaleRepository, clock Clock, notifier Notifier) *SalesService {
	return &SalesService{
		sales:    sales,
		clock:    clock,
		notifier: notifier,
	}
}

// Record stores a sale. A missing or non-positive amount is ignored and (nil, nil) is returned.
func (s *SalesService) Record(ctx context.Context, amount *float64) (*models.Sale, error) {
	if amount == nil || !(*amount > 0) {
		return nil, nil
	}

	sale := &models.Sale{
		Amount:    *amount,
		CreatedAt: s.clock.Now(),
	}
	if err := s.sales.Create(ctx, sale); err != nil {
		return nil, err
	}

	s.notifier.Publish(kds.EventSaleRecorded, sale)
	return sale, nil
}

func (s *SalesService) Today(ctx context.Context) (float64, error) {
	start := startOfDay(s.clock.Now())
	return s.sales.SumBetween(ctx, start, start.AddDate(0, 0, 1))
}

func (s *SalesService) Monthly(ctx context.Context) (float64, error) {
	start := startOfMonth(s.clock.Now())
	return s.sales.SumBetween(ctx, start, start.AddDate(0, 1, 0))
}

func (s *SalesService) Total(ctx context.Context) (float64, error) {
	return s.sales.SumAll(ctx)
}

// Recent returns at most limit sales, newest first.
func (s *SalesService) Recent(ctx context.Context, limit int) ([]models.Sale, error) {
	if limit <= 0 {
		return []models.Sale{}, nil
	}
	return s.sales.FindRecent(ctx, limit)
}

// WeeklyTrend totals sales per calendar day over the last seven days
// (today included). Days without sales are left out; newest day first.
func (s *SalesService) WeeklyTrend(ctx context.Context) ([]models.DailySales, error) {
	now := s.clock.Now()
	end := startOfDay(now).AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -trendDays)

	sales, err := s.sales.FindSince(ctx, start)
	if err != nil {
		return nil, err
	}

	sums := map[string]decimal.Decimal{}
	for _, sale := range sales {
		at := sale.CreatedAt.In(now.Location())
		if at.Before(start) || !at.Before(end) {
			continue
		}
		day := at.Format(dayLayout)
		sums[day] = sums[day].Add(decimal.NewFromFloat(sale.Amount))
	}

	rows := make([]models.DailySales, 0, len(sums))
	for day, sum := range sums {
		rows = append(rows, models.DailySales{Date: day, Amount: sum.Round(2).InexactFloat64()})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date > rows[j].Date })
	return rows, nil
}

// TrendChart renders the weekly trend as a PNG bar chart, one bar per day
// including days without sales.
func (s *SalesService) TrendChart(ctx context.Context) ([]byte, error) {
	rows, err := s.WeeklyTrend(ctx)
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]float64, len(rows))
	for _, r := range rows {
		byDay[r.Date] = r.Amount
	}

	today := startOfDay(s.clock.Now())
	bars := make([]chart.Value, 0, trendDays)
	top := 0.0
	for i := trendDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		v := byDay[day.Format(dayLayout)]
		if v > top {
			top = v
		}
		bars = append(bars, chart.Value{Label: day.Format("Mon 02"), Value: v})
	}
	if top == 0 {
		top = 1
	}

	graph := chart.BarChart{
		Title: "Sales, last 7 days",
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Width:      800,
		Height:     400,
		BarWidth:   60,
		BarSpacing: 30,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: top * 1.1},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render trend chart: %w", err)
	}
	return buf.Bytes(), nil
}
