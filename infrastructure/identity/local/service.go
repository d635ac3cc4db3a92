// Package local implementa o provedor de identidade embutido da aplicação:
// usuários com senha bcrypt vindos do repositório, token de sessão JWT,
// janela de bloqueio por tentativas falhas e tokens de redefinição de senha.
package local

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/identity"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type listener struct {
	id int
	fn func(user *domain.User)
}

type resetToken struct {
	email     string
	expiresAt time.Time
}

type Service struct {
	cfg      *config.Config
	userRepo repository.UserRepository

	mu             sync.Mutex
	current        *domain.User
	listeners      []listener
	nextListenerID int
	failedAttempts map[string][]time.Time
	resetTokens    map[string]resetToken

	// now é substituível em testes
	now func() time.Time
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) *Service {
	return &Service{
		cfg:            cfg,
		userRepo:       userRepo,
		failedAttempts: make(map[string][]time.Time),
		resetTokens:    make(map[string]resetToken),
		now:            time.Now,
	}
}

// handleEmail normaliza o e-mail da mesma forma em todas as operações
func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func validEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*domain.User, error) {
	email = handleEmail(email)

	if !validEmail(email) {
		return nil, identity.NewError(identity.CodeMalformedEmail, fmt.Errorf("e-mail inválido: %s", email))
	}

	if s.isRateLimited(email) {
		return nil, identity.NewError(identity.CodeRateLimited, errors.New("muitas tentativas de login"))
	}

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, identity.NewError(identity.CodeUnknown, err)
	}

	if user == nil {
		s.recordFailedAttempt(email)
		return nil, identity.NewError(identity.CodeNotFound, errors.New("usuário não encontrado"))
	}

	if !user.Active {
		return nil, identity.NewError(identity.CodeDisabledAccount, errors.New("conta desativada"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.recordFailedAttempt(email)
		return nil, identity.NewError(identity.CodeWrongCredential, errors.New("senha incorreta"))
	}

	s.clearFailedAttempts(email)
	s.setCurrent(user)

	return user, nil
}

func (s *Service) SignUp(ctx context.Context, email, password, displayName string) (*domain.User, error) {
	email = handleEmail(email)

	if !validEmail(email) {
		return nil, identity.NewError(identity.CodeMalformedEmail, fmt.Errorf("e-mail inválido: %s", email))
	}

	if len(password) < minPasswordLength {
		return nil, identity.NewError(identity.CodeWeakCredential,
			fmt.Errorf("a senha deve conter pelo menos %d caracteres", minPasswordLength))
	}

	existing, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, identity.NewError(identity.CodeUnknown, err)
	}

	if existing != nil {
		return nil, identity.NewError(identity.CodeDuplicateAccount, errors.New("e-mail já cadastrado"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, identity.NewError(identity.CodeUnknown, err)
	}

	user := &domain.User{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hashedPassword),
		Active:       true,
	}

	user, err = s.userRepo.CreateUser(user)
	if err != nil {
		return nil, identity.NewError(identity.CodeUnknown, err)
	}

	s.setCurrent(user)

	return user, nil
}

// SignInWithPopup autentica o usuário de demonstração configurado, no lugar
// de um popup federado real. Quando o usuário existe no repositório, usa o
// cadastro; caso contrário autentica uma identidade efêmera.
func (s *Service) SignInWithPopup(ctx context.Context) (*domain.User, error) {
	if s.cfg.Auth.DemoEmail == "" {
		return nil, identity.NewError(identity.CodePopupCancelled, errors.New("login federado indisponível"))
	}

	user, err := s.userRepo.GetUserByEmail(handleEmail(s.cfg.Auth.DemoEmail))
	if err != nil {
		return nil, identity.NewError(identity.CodeUnknown, err)
	}

	if user == nil {
		user = &domain.User{
			Email:       handleEmail(s.cfg.Auth.DemoEmail),
			DisplayName: s.cfg.Auth.DemoDisplayName,
			Active:      true,
		}
	}

	s.setCurrent(user)

	return user, nil
}

func (s *Service) SignOut(ctx context.Context) error {
	s.setCurrent(nil)
	return nil
}

func (s *Service) SendPasswordReset(ctx context.Context, email string) error {
	email = handleEmail(email)

	if !validEmail(email) {
		return identity.NewError(identity.CodeMalformedEmail, fmt.Errorf("e-mail inválido: %s", email))
	}

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return identity.NewError(identity.CodeUnknown, err)
	}

	if user == nil {
		return identity.NewError(identity.CodeNotFound, errors.New("usuário não encontrado"))
	}

	token, err := utils.GenerateID()
	if err != nil {
		return identity.NewError(identity.CodeUnknown, err)
	}

	s.mu.Lock()
	s.resetTokens[token] = resetToken{
		email:     email,
		expiresAt: s.now().Add(s.cfg.Auth.ResetTokenTTL),
	}
	s.mu.Unlock()

	logrus.WithField("user_id", user.ID).Info("Token de redefinição de senha emitido")

	return nil
}

// PruneExpiredResetTokens remove tokens de redefinição expirados e retorna
// quantos foram removidos
func (s *Service) PruneExpiredResetTokens() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	nowTime := s.now()
	for token, entry := range s.resetTokens {
		if nowTime.After(entry.expiresAt) {
			delete(s.resetTokens, token)
			removed++
		}
	}

	return removed
}

func (s *Service) Subscribe(fn func(user *domain.User)) func() {
	s.mu.Lock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	current := s.current
	s.mu.Unlock()

	// Notificação inicial síncrona com o estado corrente
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

func (s *Service) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Service) IssueToken(user *domain.User) (string, error) {
	claims := domain.Claims{
		UserID:          user.ID,
		UserEmail:       user.Email,
		UserDisplayName: user.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.now().Add(s.cfg.Auth.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// setCurrent troca a identidade corrente e notifica os assinantes em ordem
// de registro, de forma síncrona
func (s *Service) setCurrent(user *domain.User) {
	s.mu.Lock()
	s.current = user
	snapshot := make([]listener, len(s.listeners))
	copy(snapshot, s.listeners)
	s.mu.Unlock()

	for _, l := range snapshot {
		l.fn(user)
	}
}

func (s *Service) isRateLimited(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.cfg.Auth.LoginAttemptWindow)
	recent := 0
	for _, at := range s.failedAttempts[email] {
		if at.After(cutoff) {
			recent++
		}
	}

	return s.cfg.Auth.MaxLoginAttempts > 0 && recent >= s.cfg.Auth.MaxLoginAttempts
}

func (s *Service) recordFailedAttempt(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.cfg.Auth.LoginAttemptWindow)
	kept := s.failedAttempts[email][:0]
	for _, at := range s.failedAttempts[email] {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}

	s.failedAttempts[email] = append(kept, s.now())
}

func (s *Service) clearFailedAttempts(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failedAttempts, email)
}

var _ identity.Provider = (*Service)(nil)
