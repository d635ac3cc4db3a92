package domain

// ProfitStatus é a classificação fixa em três faixas do percentual de lucro
type ProfitStatus string

const (
	ProfitStatusGood ProfitStatus = "good"
	ProfitStatusFair ProfitStatus = "fair"
	ProfitStatusPoor ProfitStatus = "poor"
)

// BarPoint é um ponto da série de barras do gráfico, um por produto
type BarPoint struct {
	Name     string  `json:"name"`
	Sales    float64 `json:"sales"`
	Profit   float64 `json:"profit"`
	Expenses float64 `json:"expenses"`
}

// PiePoint é uma fatia do gráfico de pizza com os totais gerais
type PiePoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ChartProjection é a projeção pronta para gráficos derivada do RecordSet
type ChartProjection struct {
	BarSeries []BarPoint `json:"barSeries"`
	PieSeries []PiePoint `json:"pieSeries"`
}

// TrendPoint é um ponto da série mensal sintética de tendência de um produto.
// Não há histórico real: a série é um placeholder determinístico.
type TrendPoint struct {
	Month  string `json:"month"`
	Sales  int    `json:"sales"`
	Profit int    `json:"profit"`
}

// DashboardSummary agrega os valores exibidos nos cartões do dashboard
type DashboardSummary struct {
	RecordCount          int     `json:"recordCount"`
	TotalSales           float64 `json:"totalSales"`
	TotalProfit          float64 `json:"totalProfit"`
	TotalExpenses        float64 `json:"totalExpenses"`
	TotalCredit          float64 `json:"totalCredit"`
	AverageProfitPercent float64 `json:"averageProfitPercent"`
}
