// Package navigating é o orquestrador de navegação: único dono da página
// corrente e do RecordSet, reconciliando ambos com o estado da sessão.
package navigating

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/ingesting"
)

// Navigator expõe o estado de navegação e as ações do usuário sobre ele
type Navigator interface {
	State() domain.NavigationState
	Records() domain.RecordSet

	// Upload ingere o arquivo e, em caso de sucesso, armazena o RecordSet e
	// move a navegação para o dashboard. Entre uploads concorrentes vence o
	// último submetido: resultados obsoletos são descartados com
	// ErrUploadSuperseded.
	Upload(ctx context.Context, file ingesting.File) (domain.RecordSet, error)

	// SelectProduct exige page == dashboard e um ID presente no conjunto
	SelectProduct(id int) error

	// Back retorna de productDetails para o dashboard
	Back()

	SetActiveTab(tab domain.Tab) error

	// SelectedProduct retorna o registro selecionado. found == false quando
	// não há seleção ou quando o conjunto foi trocado ou limpo depois da
	// seleção (estado "não encontrado", nunca dado obsoleto).
	SelectedProduct() (*domain.ProductRecord, bool)
}

type Service struct {
	ingester ingesting.Ingester

	mu      sync.Mutex
	nav     domain.NavigationState
	records domain.RecordSet
	session domain.Session

	// selected é uma cópia do registro escolhido; selectedGeneration marca a
	// geração do RecordSet no momento da seleção
	selected           *domain.ProductRecord
	selectedGeneration uint64

	// recordsGeneration cresce a cada troca ou limpeza do conjunto
	recordsGeneration uint64

	// latestUploadToken implementa o "último submetido vence" da ingestão
	latestUploadToken uint64

	unsubscribeSession func()
}

func NewService(ingester ingesting.Ingester, sessions authenticating.Authenticator) *Service {
	s := &Service{
		ingester: ingester,
		nav: domain.NavigationState{
			Page:      domain.PageLogin,
			ActiveTab: domain.DefaultTab,
		},
	}

	s.unsubscribeSession = sessions.Subscribe(s.handleSessionChange)

	return s
}

// Close cancela a assinatura na máquina de sessão
func (s *Service) Close() {
	if s.unsubscribeSession != nil {
		s.unsubscribeSession()
	}
}

func (s *Service) State() domain.NavigationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav
}

func (s *Service) Records() domain.RecordSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records
}

func (s *Service) Upload(ctx context.Context, file ingesting.File) (domain.RecordSet, error) {
	s.mu.Lock()
	if s.session.Status != domain.StatusSignedIn {
		s.mu.Unlock()
		return nil, ErrNotSignedIn
	}

	s.latestUploadToken++
	token := s.latestUploadToken
	s.mu.Unlock()

	records, err := s.ingester.Ingest(ctx, file)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Resolução obsoleta: outro upload foi submetido depois deste
	if token != s.latestUploadToken {
		logrus.WithFields(logrus.Fields{
			"token":  token,
			"latest": s.latestUploadToken,
		}).Info("Resultado de upload descartado por haver submissão mais recente")
		return nil, ErrUploadSuperseded
	}

	// Falha de validação ou decodificação: nenhum estado é alterado
	if err != nil {
		return nil, err
	}

	// A sessão pode ter caído enquanto a ingestão estava em andamento
	if s.session.Status != domain.StatusSignedIn {
		return nil, ErrNotSignedIn
	}

	s.records = records
	s.recordsGeneration++
	s.nav.Page = domain.PageDashboard
	s.nav.ActiveTab = domain.DefaultTab
	s.nav.SelectedID = 0

	return records, nil
}

func (s *Service) SelectProduct(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nav.Page != domain.PageDashboard {
		return ErrNotOnDashboard
	}

	record := s.records.FindByID(id)
	if record == nil {
		return ErrRecordNotFound
	}

	selected := *record
	s.selected = &selected
	s.selectedGeneration = s.recordsGeneration
	s.nav.Page = domain.PageProductDetails
	s.nav.SelectedID = id

	return nil
}

func (s *Service) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nav.Page != domain.PageProductDetails {
		return
	}

	s.nav.Page = domain.PageDashboard
	s.nav.SelectedID = 0
	s.selected = nil
}

func (s *Service) SetActiveTab(tab domain.Tab) error {
	if !domain.ValidTab(tab) {
		return ErrUnknownTab
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nav.ActiveTab = tab

	return nil
}

func (s *Service) SelectedProduct() (*domain.ProductRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return nil, false
	}

	// O conjunto foi trocado ou limpo depois da seleção: a página de
	// detalhes degrada para "não encontrado" em vez de exibir dado obsoleto
	if s.selectedGeneration != s.recordsGeneration {
		return nil, false
	}

	record := *s.selected
	return &record, true
}

// handleSessionChange reconcilia a navegação com cada mudança de sessão
func (s *Service) handleSessionChange(session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.session
	s.session = session

	// Qualquer status diferente de signedIn força o reset completo:
	// página de login, conjunto vazio, seleção e aba zeradas
	if session.Status != domain.StatusSignedIn {
		if previous.Status == domain.StatusSignedIn {
			logrus.Info("Sessão encerrada, estado de navegação e dados descartados")
		}

		s.nav = domain.NavigationState{
			Page:      domain.PageLogin,
			ActiveTab: domain.DefaultTab,
		}
		s.records = nil
		s.recordsGeneration++
		s.selected = nil
		return
	}

	// Autenticado enquanto na página de login leva ao upload
	if s.nav.Page == domain.PageLogin {
		s.nav.Page = domain.PageUpload
	}
}

var _ Navigator = (*Service)(nil)
