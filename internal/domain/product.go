package domain

// ProductRecord representa uma linha normalizada da planilha enviada pelo usuário.
// Todos os campos numéricos são sempre preenchidos (zero quando ausentes na origem),
// e o ID é atribuído pelo pipeline de ingestão, nunca derivado da planilha.
type ProductRecord struct {
	ID               int     `json:"id"`
	ProductName      string  `json:"productName"`
	Sales            float64 `json:"sales"`
	Profit           float64 `json:"profit"`
	TE               float64 `json:"te"`
	Credit           float64 `json:"credit"`
	AmazonFee        float64 `json:"amazonFee"`
	ProfitPercentage float64 `json:"profitPercentage"`
}

// Expenses retorna a despesa total da linha (TE + taxa da Amazon)
func (p *ProductRecord) Expenses() float64 {
	return p.TE + p.AmazonFee
}

// RecordSet é a coleção ordenada de registros carregada no momento.
// A ordem de inserção corresponde à ordem das linhas na planilha de origem.
type RecordSet []ProductRecord

// FindByID retorna o registro com o ID informado, ou nil quando não existe
func (rs RecordSet) FindByID(id int) *ProductRecord {
	for i := range rs {
		if rs[i].ID == id {
			return &rs[i]
		}
	}
	return nil
}

// Metric identifica um campo numérico do ProductRecord para agregação
type Metric string

const (
	MetricSales            Metric = "sales"
	MetricProfit           Metric = "profit"
	MetricTE               Metric = "te"
	MetricCredit           Metric = "credit"
	MetricAmazonFee        Metric = "amazonFee"
	MetricProfitPercentage Metric = "profitPercentage"
)

// ValueOf retorna o valor do campo identificado pela métrica
func (p *ProductRecord) ValueOf(metric Metric) float64 {
	switch metric {
	case MetricSales:
		return p.Sales
	case MetricProfit:
		return p.Profit
	case MetricTE:
		return p.TE
	case MetricCredit:
		return p.Credit
	case MetricAmazonFee:
		return p.AmazonFee
	case MetricProfitPercentage:
		return p.ProfitPercentage
	}
	return 0
}
