package navigating

import "errors"

var (
	// ErrNotSignedIn indica operação que exige sessão autenticada
	ErrNotSignedIn = errors.New("não há sessão autenticada")

	// ErrNotOnDashboard indica seleção de produto fora do dashboard
	ErrNotOnDashboard = errors.New("seleção de produto só é permitida no dashboard")

	// ErrRecordNotFound indica ID fora do conjunto de registros corrente
	ErrRecordNotFound = errors.New("registro não encontrado no conjunto atual")

	// ErrUploadSuperseded indica ingestão resolvida depois de outra mais
	// recente ter sido submetida; o resultado obsoleto é descartado
	ErrUploadSuperseded = errors.New("upload substituído por outro mais recente")

	// ErrUnknownTab indica aba fora da barra lateral conhecida
	ErrUnknownTab = errors.New("aba desconhecida")
)
