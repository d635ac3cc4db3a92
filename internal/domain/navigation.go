package domain

// Page identifica a página corrente da aplicação
type Page string

const (
	PageLogin          Page = "login"
	PageUpload         Page = "upload"
	PageDashboard      Page = "dashboard"
	PageProductDetails Page = "productDetails"
)

// Tab identifica a sub-visão ativa dentro do dashboard
type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabChatbot   Tab = "chatbot"
	TabProfit    Tab = "profit"
	TabAmazon    Tab = "amazon"
	TabShopify   Tab = "shopify"

	// DefaultTab é a aba aplicada em toda transição para o dashboard
	DefaultTab = TabDashboard
)

// ValidTab informa se a aba é uma das abas conhecidas da barra lateral
func ValidTab(t Tab) bool {
	switch t {
	case TabDashboard, TabChatbot, TabProfit, TabAmazon, TabShopify:
		return true
	}
	return false
}

// NavigationState é o estado de navegação, de posse exclusiva do orquestrador.
// SelectedID só é significativo quando Page == PageProductDetails.
type NavigationState struct {
	Page       Page `json:"page"`
	ActiveTab  Tab  `json:"activeTab"`
	SelectedID int  `json:"selectedId,omitempty"`
}
