// Package authenticating implementa a máquina de estados da sessão:
// signedOut -> authenticating -> signedIn | error, com notificação síncrona
// dos assinantes em ordem de registro a cada mudança.
package authenticating

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/identity"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Authenticator expõe as operações de autenticação e a observação da sessão.
// Toda operação resolve em um AuthResult tipado: falhas nunca escapam como
// erros não tratados.
type Authenticator interface {
	Login(ctx context.Context, email, password string) domain.AuthResult
	Signup(ctx context.Context, email, password, displayName string) domain.AuthResult
	LoginWithProvider(ctx context.Context) domain.AuthResult
	Logout(ctx context.Context) domain.AuthResult
	RequestPasswordReset(ctx context.Context, email string) domain.AuthResult

	// Session retorna um snapshot do estado corrente
	Session() domain.Session

	// Subscribe registra um observador, notificado de forma síncrona com o
	// estado corrente no ato do registro e a cada mudança subsequente, até
	// o cancelamento
	Subscribe(fn func(session domain.Session)) (unsubscribe func())

	ValidateToken(tokenString string) (*domain.Claims, error)
}

type sessionListener struct {
	id int
	fn func(session domain.Session)
}

type Service struct {
	provider identity.Provider

	mu             sync.Mutex
	session        domain.Session
	listeners      []sessionListener
	nextListenerID int

	unsubscribeProvider func()
}

func NewService(provider identity.Provider) *Service {
	s := &Service{
		provider: provider,
		session:  domain.Session{Status: domain.StatusUnknown},
	}

	// O provedor entrega imediatamente o estado conhecido; antes desse
	// primeiro callback a sessão permanece "unknown"
	s.unsubscribeProvider = provider.Subscribe(s.handleIdentityChange)

	return s
}

// Close cancela a assinatura no provedor de identidade
func (s *Service) Close() {
	if s.unsubscribeProvider != nil {
		s.unsubscribeProvider()
	}
}

func (s *Service) Login(ctx context.Context, email, password string) domain.AuthResult {
	s.setSession(domain.Session{Status: domain.StatusAuthenticating})

	user, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return s.failAttempt("login", err)
	}

	s.setSession(domain.Session{Status: domain.StatusSignedIn, User: user})

	return s.successResult(user, "Bem-vindo de volta!")
}

func (s *Service) Signup(ctx context.Context, email, password, displayName string) domain.AuthResult {
	s.setSession(domain.Session{Status: domain.StatusAuthenticating})

	user, err := s.provider.SignUp(ctx, email, password, displayName)
	if err != nil {
		return s.failAttempt("cadastro", err)
	}

	s.setSession(domain.Session{Status: domain.StatusSignedIn, User: user})

	return s.successResult(user, "Conta criada com sucesso!")
}

func (s *Service) LoginWithProvider(ctx context.Context) domain.AuthResult {
	s.setSession(domain.Session{Status: domain.StatusAuthenticating})

	user, err := s.provider.SignInWithPopup(ctx)
	if err != nil {
		return s.failAttempt("login federado", err)
	}

	s.setSession(domain.Session{Status: domain.StatusSignedIn, User: user})

	return s.successResult(user, "Login federado realizado com sucesso!")
}

// Logout encerra a sessão no provedor. Quando o provedor falha, a sessão
// anterior é restaurada: o usuário permanece nominalmente autenticado e a
// falha aparece apenas no resultado.
func (s *Service) Logout(ctx context.Context) domain.AuthResult {
	previous := s.Session()

	s.setSession(domain.Session{Status: domain.StatusAuthenticating})

	if err := s.provider.SignOut(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao encerrar sessão no provedor de identidade")

		s.setSession(previous)

		facing := translateProviderError(err)
		return domain.AuthResult{
			Success:  false,
			Error:    "Erro ao sair. Tente novamente.",
			Category: facing.category,
		}
	}

	s.setSession(domain.Session{Status: domain.StatusSignedOut})

	return domain.AuthResult{
		Success: true,
		Message: "Logout realizado com sucesso!",
	}
}

// RequestPasswordReset não altera o status da sessão em nenhum caso
func (s *Service) RequestPasswordReset(ctx context.Context, email string) domain.AuthResult {
	if err := s.provider.SendPasswordReset(ctx, email); err != nil {
		logrus.WithError(err).Warn("Erro ao solicitar redefinição de senha")

		facing := translateProviderError(err)
		return domain.AuthResult{
			Success:  false,
			Error:    facing.message,
			Category: facing.category,
		}
	}

	return domain.AuthResult{
		Success: true,
		Message: "E-mail de redefinição enviado! Verifique sua caixa de entrada.",
	}
}

func (s *Service) Session() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *Service) Subscribe(fn func(session domain.Session)) func() {
	s.mu.Lock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners = append(s.listeners, sessionListener{id: id, fn: fn})
	current := s.session
	s.mu.Unlock()

	// Exatamente uma notificação inicial síncrona com o estado conhecido
	fn(current)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.listeners {
			if s.listeners[i].id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	return s.provider.ValidateToken(tokenString)
}

// handleIdentityChange recebe os pushes de identidade do provedor
func (s *Service) handleIdentityChange(user *domain.User) {
	if user != nil {
		s.setSession(domain.Session{Status: domain.StatusSignedIn, User: user})
		return
	}

	s.mu.Lock()
	inFlight := s.session.Status == domain.StatusAuthenticating
	s.mu.Unlock()

	// Um push nulo durante uma operação em andamento não derruba a máquina
	// para signedOut antes de a própria operação resolver
	if inFlight {
		return
	}

	s.setSession(domain.Session{Status: domain.StatusSignedOut})
}

// failAttempt registra a falha, move a máquina para o estado de erro e
// devolve o resultado com a categoria traduzida
func (s *Service) failAttempt(operation string, err error) domain.AuthResult {
	facing := translateProviderError(err)

	logrus.WithError(err).WithField("operation", operation).Warn("Falha de autenticação")

	s.setSession(domain.Session{Status: domain.StatusError, ErrorMessage: facing.message})

	return domain.AuthResult{
		Success:  false,
		Error:    facing.message,
		Category: facing.category,
	}
}

func (s *Service) successResult(user *domain.User, message string) domain.AuthResult {
	token, err := s.provider.IssueToken(user)
	if err != nil {
		logrus.WithError(err).Error("Erro ao emitir token de sessão")
	}

	return domain.AuthResult{
		Success: true,
		Message: message,
		Token:   token,
	}
}

// setSession substitui o snapshot da sessão e notifica os assinantes em
// ordem de registro. Mudanças idênticas não geram nova notificação.
func (s *Service) setSession(next domain.Session) {
	s.mu.Lock()

	if sameSession(s.session, next) {
		s.mu.Unlock()
		return
	}

	s.session = next
	snapshot := make([]sessionListener, len(s.listeners))
	copy(snapshot, s.listeners)
	s.mu.Unlock()

	for _, l := range snapshot {
		l.fn(next)
	}
}

func sameSession(a, b domain.Session) bool {
	return a.Status == b.Status && a.User == b.User && a.ErrorMessage == b.ErrorMessage
}

var _ Authenticator = (*Service)(nil)
