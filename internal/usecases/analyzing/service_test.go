package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func sampleRecords() domain.RecordSet {
	return domain.RecordSet{
		{ID: 1, ProductName: "Produto A", Sales: 1000, Profit: 200, TE: 50, Credit: 10, AmazonFee: 30, ProfitPercentage: 20},
		{ID: 2, ProductName: "Produto B", Sales: 500, Profit: 75, TE: 25, Credit: 5, AmazonFee: 15, ProfitPercentage: 15},
		{ID: 3, ProductName: "Produto C", Sales: 1500, Profit: 150, TE: 75, Credit: 20, AmazonFee: 45, ProfitPercentage: 10},
	}
}

func TestService_Total(t *testing.T) {
	service := NewService()

	tests := []struct {
		name     string
		records  domain.RecordSet
		metric   domain.Metric
		expected float64
	}{
		{"Total de vendas", sampleRecords(), domain.MetricSales, 3000},
		{"Total de lucro", sampleRecords(), domain.MetricProfit, 425},
		{"Total de crédito", sampleRecords(), domain.MetricCredit, 35},
		{"Conjunto vazio totaliza zero", domain.RecordSet{}, domain.MetricSales, 0},
		{"Conjunto nulo totaliza zero", nil, domain.MetricSales, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.Total(tt.records, tt.metric))
		})
	}
}

func TestService_Average(t *testing.T) {
	service := NewService()

	tests := []struct {
		name     string
		records  domain.RecordSet
		metric   domain.Metric
		expected float64
	}{
		{"Média de vendas", sampleRecords(), domain.MetricSales, 1000},
		{"Média de percentual de lucro", sampleRecords(), domain.MetricProfitPercentage, 15},
		{"Conjunto vazio tem média zero, sem divisão por zero", domain.RecordSet{}, domain.MetricSales, 0},
		{"Conjunto nulo tem média zero", nil, domain.MetricProfit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.Average(tt.records, tt.metric))
		})
	}
}

func TestService_ProfitStatus(t *testing.T) {
	service := NewService()

	tests := []struct {
		name       string
		percentage float64
		expected   domain.ProfitStatus
	}{
		{"Acima de 18 é good", 18.01, domain.ProfitStatusGood},
		{"Exatamente 18 é fair, não good", 18, domain.ProfitStatusFair},
		{"Acima de 15 é fair", 15.01, domain.ProfitStatusFair},
		{"Exatamente 15 é poor, não fair", 15, domain.ProfitStatusPoor},
		{"Abaixo de 15 é poor", 10, domain.ProfitStatusPoor},
		{"Zero é poor", 0, domain.ProfitStatusPoor},
		{"Percentual negativo é poor", -5, domain.ProfitStatusPoor},
		{"Valor alto é good", 99.9, domain.ProfitStatusGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.ProfitStatus(tt.percentage))
		})
	}
}

func TestService_ChartProjection(t *testing.T) {
	service := NewService()

	projection := service.ChartProjection(sampleRecords())

	// Série de barras: um ponto por produto, com despesas = te + taxa
	assert.Len(t, projection.BarSeries, 3)
	assert.Equal(t, "Produto A", projection.BarSeries[0].Name)
	assert.Equal(t, 1000.0, projection.BarSeries[0].Sales)
	assert.Equal(t, 200.0, projection.BarSeries[0].Profit)
	assert.Equal(t, 80.0, projection.BarSeries[0].Expenses)

	// Pizza: sempre três fatias com os totais gerais
	assert.Len(t, projection.PieSeries, 3)
	assert.Equal(t, domain.PiePoint{Name: "Sales", Value: 3000}, projection.PieSeries[0])
	assert.Equal(t, domain.PiePoint{Name: "Profit", Value: 425}, projection.PieSeries[1])
	assert.Equal(t, domain.PiePoint{Name: "Expenses", Value: 240}, projection.PieSeries[2])
}

func TestService_ChartProjection_ConjuntoVazio(t *testing.T) {
	service := NewService()

	projection := service.ChartProjection(domain.RecordSet{})

	assert.Empty(t, projection.BarSeries)
	assert.Len(t, projection.PieSeries, 3)
	for _, slice := range projection.PieSeries {
		assert.Equal(t, 0.0, slice.Value)
	}
}

func TestService_TrendProjection(t *testing.T) {
	service := NewService()

	record := &domain.ProductRecord{ID: 1, ProductName: "Produto A", Sales: 1000, Profit: 200}

	trend := service.TrendProjection(record)

	expected := []domain.TrendPoint{
		{Month: "Jan", Sales: 800, Profit: 140},
		{Month: "Feb", Sales: 900, Profit: 170},
		{Month: "Mar", Sales: 950, Profit: 180},
		{Month: "Apr", Sales: 1000, Profit: 200},
		{Month: "May", Sales: 1100, Profit: 210},
		{Month: "Jun", Sales: 1200, Profit: 230},
	}

	assert.Equal(t, expected, trend)
}

func TestService_TrendProjection_ArredondaParaInteiro(t *testing.T) {
	service := NewService()

	// 333 * 0.8 = 266.4 -> 266; 333 * 0.95 = 316.35 -> 316; 101 * 0.85 = 85.85 -> 86
	record := &domain.ProductRecord{ID: 1, Sales: 333, Profit: 101}

	trend := service.TrendProjection(record)

	assert.Equal(t, 266, trend[0].Sales)
	assert.Equal(t, 316, trend[2].Sales)
	assert.Equal(t, 86, trend[1].Profit)
}

func TestService_Summary(t *testing.T) {
	service := NewService()

	tests := []struct {
		name     string
		records  domain.RecordSet
		expected *domain.DashboardSummary
	}{
		{
			name:    "Conjunto com registros",
			records: sampleRecords(),
			expected: &domain.DashboardSummary{
				RecordCount:          3,
				TotalSales:           3000,
				TotalProfit:          425,
				TotalExpenses:        240,
				TotalCredit:          35,
				AverageProfitPercent: 15,
			},
		},
		{
			name:     "Conjunto vazio produz resumo zerado",
			records:  domain.RecordSet{},
			expected: &domain.DashboardSummary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.Summary(tt.records))
		})
	}
}

func TestService_Summary_ArredondaMediaComDuasCasas(t *testing.T) {
	service := NewService()

	records := domain.RecordSet{
		{ID: 1, ProfitPercentage: 10},
		{ID: 2, ProfitPercentage: 10},
		{ID: 3, ProfitPercentage: 11},
	}

	summary := service.Summary(records)

	// (10 + 10 + 11) / 3 = 10.333... -> 10.33
	assert.Equal(t, 10.33, summary.AverageProfitPercent)
}
