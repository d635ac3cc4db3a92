package ingesting

import (
	"strconv"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// UnknownProductName é o nome aplicado quando a planilha não traz a coluna de produto
const UnknownProductName = "Unknown Product"

// As planilhas chegam com dois estilos de cabeçalho: o rótulo legível
// ("Product Name") e a variante camel case ("productName"). Cada campo tem a
// sua lista ordenada de chaves candidatas; a primeira presente vence. Novas
// variantes de cabeçalho entram aqui, sem tocar na lógica.
var productNameKeys = []string{"Product Name", "productName"}

var numericColumns = []struct {
	keys   []string
	assign func(record *domain.ProductRecord, value float64)
}{
	{[]string{"Sales", "sales"}, func(r *domain.ProductRecord, v float64) { r.Sales = v }},
	{[]string{"Profit", "profit"}, func(r *domain.ProductRecord, v float64) { r.Profit = v }},
	{[]string{"TE", "te"}, func(r *domain.ProductRecord, v float64) { r.TE = v }},
	{[]string{"Credit", "credit"}, func(r *domain.ProductRecord, v float64) { r.Credit = v }},
	{[]string{"Amazon Fee", "amazonFee"}, func(r *domain.ProductRecord, v float64) { r.AmazonFee = v }},
	{[]string{"Profit Percentage", "profitPercentage"}, func(r *domain.ProductRecord, v float64) { r.ProfitPercentage = v }},
}

// NormalizeRow converte uma linha bruta no registro canônico. Nunca falha:
// células ausentes ou ilegíveis recebem o valor padrão do esquema, e o ID é
// sempre a posição da linha (base 1) dentro do arquivo.
func NormalizeRow(raw spreadsheet.Row, index int) domain.ProductRecord {
	record := domain.ProductRecord{
		ID:          index + 1,
		ProductName: UnknownProductName,
	}

	if value, ok := lookup(raw, productNameKeys); ok {
		if name := strings.TrimSpace(toString(value)); name != "" {
			record.ProductName = name
		}
	}

	for _, column := range numericColumns {
		if value, ok := lookup(raw, column.keys); ok {
			column.assign(&record, toFloat(value))
		}
	}

	return record
}

// lookup percorre as chaves candidatas em ordem e retorna o primeiro valor
// presente e não vazio
func lookup(raw spreadsheet.Row, keys []string) (any, bool) {
	for _, key := range keys {
		value, ok := raw[key]
		if !ok || value == nil {
			continue
		}
		if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		return value, true
	}
	return nil, false
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	default:
		return ""
	}
}

// toFloat coage o valor da célula para numérico; conteúdo não interpretável
// vira 0: célula malformada é problema de qualidade de dado, não de ingestão
func toFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return parsed
	}
	return 0
}
