// Package analyzing deriva os valores exibidos pelo dashboard a partir do
// RecordSet corrente. Todas as funções são puras e recalculadas a cada
// leitura: nada é cacheado junto do estado de origem.
package analyzing

import (
	"math"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Limites fixos da classificação de lucro em três faixas
const (
	profitStatusGoodAbove = 18.0
	profitStatusFairAbove = 15.0
)

// trendMonths é a série mensal sintética de tendência: seis meses com
// multiplicadores fixos sobre as vendas e o lucro do produto. Não existe
// histórico real por trás dela.
var trendMonths = []struct {
	name   string
	sales  float64
	profit float64
}{
	{"Jan", 0.8, 0.7},
	{"Feb", 0.9, 0.85},
	{"Mar", 0.95, 0.9},
	{"Apr", 1.0, 1.0},
	{"May", 1.1, 1.05},
	{"Jun", 1.2, 1.15},
}

// Analyzer deriva totais, médias, classificações e projeções de gráficos.
// Um RecordSet vazio é entrada válida em todas as operações.
type Analyzer interface {
	Total(records domain.RecordSet, metric domain.Metric) float64
	Average(records domain.RecordSet, metric domain.Metric) float64
	ProfitStatus(percentage float64) domain.ProfitStatus
	ChartProjection(records domain.RecordSet) *domain.ChartProjection
	TrendProjection(record *domain.ProductRecord) []domain.TrendPoint
	Summary(records domain.RecordSet) *domain.DashboardSummary
}

type Service struct{}

func NewService() Analyzer {
	return &Service{}
}

func (s *Service) Total(records domain.RecordSet, metric domain.Metric) float64 {
	total := 0.0
	for i := range records {
		total += records[i].ValueOf(metric)
	}
	return total
}

func (s *Service) Average(records domain.RecordSet, metric domain.Metric) float64 {
	if len(records) == 0 {
		return 0
	}
	return s.Total(records, metric) / float64(len(records))
}

// ProfitStatus classifica o percentual de lucro: acima de 18 é "good",
// acima de 15 é "fair" e o restante é "poor" (18 exato é "fair", 15 exato é "poor")
func (s *Service) ProfitStatus(percentage float64) domain.ProfitStatus {
	switch {
	case percentage > profitStatusGoodAbove:
		return domain.ProfitStatusGood
	case percentage > profitStatusFairAbove:
		return domain.ProfitStatusFair
	default:
		return domain.ProfitStatusPoor
	}
}

func (s *Service) ChartProjection(records domain.RecordSet) *domain.ChartProjection {
	barSeries := make([]domain.BarPoint, 0, len(records))
	totalExpenses := 0.0

	for i := range records {
		record := &records[i]
		barSeries = append(barSeries, domain.BarPoint{
			Name:     record.ProductName,
			Sales:    record.Sales,
			Profit:   record.Profit,
			Expenses: record.Expenses(),
		})
		totalExpenses += record.Expenses()
	}

	pieSeries := []domain.PiePoint{
		{Name: "Sales", Value: s.Total(records, domain.MetricSales)},
		{Name: "Profit", Value: s.Total(records, domain.MetricProfit)},
		{Name: "Expenses", Value: totalExpenses},
	}

	return &domain.ChartProjection{
		BarSeries: barSeries,
		PieSeries: pieSeries,
	}
}

func (s *Service) TrendProjection(record *domain.ProductRecord) []domain.TrendPoint {
	points := make([]domain.TrendPoint, 0, len(trendMonths))
	for _, month := range trendMonths {
		points = append(points, domain.TrendPoint{
			Month:  month.name,
			Sales:  int(math.Round(record.Sales * month.sales)),
			Profit: int(math.Round(record.Profit * month.profit)),
		})
	}
	return points
}

func (s *Service) Summary(records domain.RecordSet) *domain.DashboardSummary {
	totalExpenses := 0.0
	for i := range records {
		totalExpenses += records[i].Expenses()
	}

	return &domain.DashboardSummary{
		RecordCount:          len(records),
		TotalSales:           s.Total(records, domain.MetricSales),
		TotalProfit:          s.Total(records, domain.MetricProfit),
		TotalExpenses:        totalExpenses,
		TotalCredit:          s.Total(records, domain.MetricCredit),
		AverageProfitPercent: utils.RoundWithTwoDecimalPlace(s.Average(records, domain.MetricProfitPercentage)),
	}
}
