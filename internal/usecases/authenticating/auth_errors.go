package authenticating

import (
	"github.com/vfg2006/sales-dashboard-api/infrastructure/identity"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// userFacing é o par categoria + mensagem exibido para cada código do provedor
type userFacing struct {
	category domain.ErrorCategory
	message  string
}

// providerErrorTable traduz o vocabulário fixo do provedor de identidade
// para as categorias e mensagens mostradas ao usuário. A tabela é a única
// fonte dessa tradução: novos códigos entram aqui.
var providerErrorTable = map[identity.Code]userFacing{
	identity.CodeDuplicateAccount: {domain.CategoryDuplicateAccount, "E-mail já cadastrado. Tente entrar em vez de criar uma conta."},
	identity.CodeWeakCredential:   {domain.CategoryWeakCredential, "Senha muito fraca. Use pelo menos 6 caracteres."},
	identity.CodeNotFound:         {domain.CategoryNotFound, "Nenhuma conta encontrada com este e-mail. Cadastre-se primeiro."},
	identity.CodeWrongCredential:  {domain.CategoryWrongCredential, "Senha incorreta. Tente novamente."},
	identity.CodeMalformedEmail:   {domain.CategoryMalformedEmail, "Informe um endereço de e-mail válido."},
	identity.CodeDisabledAccount:  {domain.CategoryDisabled, "Esta conta foi desativada. Entre em contato com o suporte."},
	identity.CodeRateLimited:      {domain.CategoryRateLimited, "Muitas tentativas sem sucesso. Tente novamente mais tarde."},
	identity.CodeNetworkFailure:   {domain.CategoryNetwork, "Falha de rede. Verifique sua conexão."},
	identity.CodePopupCancelled:   {domain.CategoryUnknown, "Login cancelado."},
	identity.CodeUnknown:          {domain.CategoryUnknown, "Ocorreu um erro. Tente novamente."},
}

// translateProviderError resolve a categoria e a mensagem de um erro do provedor
func translateProviderError(err error) userFacing {
	if entry, ok := providerErrorTable[identity.CodeOf(err)]; ok {
		return entry
	}
	return providerErrorTable[identity.CodeUnknown]
}
