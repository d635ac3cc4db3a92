package local

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/identity"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			SecretKey:          "segredo-de-teste",
			TokenTTL:           time.Hour,
			MaxLoginAttempts:   3,
			LoginAttemptWindow: 15 * time.Minute,
			DemoEmail:          "demo@empresa.com",
			DemoDisplayName:    "Conta Demo",
			ResetTokenTTL:      time.Hour,
		},
	}
}

func newTestService(t *testing.T) (*mocks.MockUserRepository, *Service) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockUserRepository(ctrl)
	return repo, NewService(repo, testConfig())
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func activeUser(t *testing.T, password string) *domain.User {
	return &domain.User{
		ID:           1,
		Email:        "ana@empresa.com",
		DisplayName:  "Ana",
		PasswordHash: hashPassword(t, password),
		Active:       true,
	}
}

func TestService_SignIn(t *testing.T) {
	tests := []struct {
		name         string
		email        string
		password     string
		setup        func(t *testing.T, repo *mocks.MockUserRepository)
		expectedCode identity.Code
	}{
		{
			name:     "Credenciais corretas autenticam o usuário",
			email:    "ana@empresa.com",
			password: "senha123",
			setup: func(t *testing.T, repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@empresa.com").Return(activeUser(t, "senha123"), nil)
			},
		},
		{
			name:     "E-mail é normalizado antes da consulta",
			email:    "  Ana@Empresa.com ",
			password: "senha123",
			setup: func(t *testing.T, repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@empresa.com").Return(activeUser(t, "senha123"), nil)
			},
		},
		{
			name:         "E-mail malformado é rejeitado sem consultar o repositório",
			email:        "nao-e-email",
			password:     "senha123",
			setup:        func(t *testing.T, repo *mocks.MockUserRepository) {},
			expectedCode: identity.CodeMalformedEmail,
		},
		{
			name:     "Usuário inexistente vira not-found",
			email:    "ninguem@empresa.com",
			password: "senha123",
			setup: func(t *testing.T, repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ninguem@empresa.com").Return(nil, nil)
			},
			expectedCode: identity.CodeNotFound,
		},
		{
			name:     "Conta desativada vira disabled-account",
			email:    "ana@empresa.com",
			password: "senha123",
			setup: func(t *testing.T, repo *mocks.MockUserRepository) {
				user := activeUser(t, "senha123")
				user.Active = false
				repo.EXPECT().GetUserByEmail("ana@empresa.com").Return(user, nil)
			},
			expectedCode: identity.CodeDisabledAccount,
		},
		{
			name:     "Senha errada vira wrong-credential",
			email:    "ana@empresa.com",
			password: "senha-errada",
			setup: func(t *testing.T, repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@empresa.com").Return(activeUser(t, "senha123"), nil)
			},
			expectedCode: identity.CodeWrongCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, service := newTestService(t)
			tt.setup(t, repo)

			user, err := service.SignIn(context.Background(), tt.email, tt.password)

			if tt.expectedCode != "" {
				assert.Nil(t, user)
				assert.Equal(t, tt.expectedCode, identity.CodeOf(err))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, "ana@empresa.com", user.Email)
			assert.Equal(t, user, service.CurrentUser())
		})
	}
}

func TestService_SignIn_BloqueioPorTentativas(t *testing.T) {
	repo, service := newTestService(t)

	user := activeUser(t, "senha123")
	repo.EXPECT().GetUserByEmail("ana@empresa.com").Return(user, nil).Times(3)

	// Três falhas seguidas atingem o limite configurado
	for i := 0; i < 3; i++ {
		_, err := service.SignIn(context.Background(), "ana@empresa.com", "senha-errada")
		assert.Equal(t, identity.CodeWrongCredential, identity.CodeOf(err))
	}

	// A quarta tentativa é barrada antes de consultar o repositório
	_, err := service.SignIn(context.Background(), "ana@empresa.com", "senha123")
	assert.Equal(t, identity.CodeRateLimited, identity.CodeOf(err))

	// Fora da janela de bloqueio o acesso volta a funcionar
	service.now = func() time.Time { return time.Now().Add(16 * time.Minute) }
	repo.EXPECT().GetUserByEmail("ana@empresa.com").Return(user, nil)

	logged, err := service.SignIn(context.Background(), "ana@empresa.com", "senha123")
	require.NoError(t, err)
	assert.Equal(t, user, logged)
}

func TestService_SignUp(t *testing.T) {
	t.Run("Cadastro com sucesso persiste e autentica", func(t *testing.T) {
		repo, service := newTestService(t)

		repo.EXPECT().GetUserByEmail("novo@empresa.com").Return(nil, nil)
		repo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.Equal(t, "novo@empresa.com", user.Email)
				assert.True(t, user.Active)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")))
				user.ID = 10
				return user, nil
			})

		user, err := service.SignUp(context.Background(), "novo@empresa.com", "senha123", "Novo")

		require.NoError(t, err)
		assert.Equal(t, 10, user.ID)
		assert.Equal(t, user, service.CurrentUser())
	})

	t.Run("Senha abaixo do mínimo vira weak-credential", func(t *testing.T) {
		_, service := newTestService(t)

		_, err := service.SignUp(context.Background(), "novo@empresa.com", "12345", "Novo")

		assert.Equal(t, identity.CodeWeakCredential, identity.CodeOf(err))
	})

	t.Run("E-mail já cadastrado vira duplicate-account", func(t *testing.T) {
		repo, service := newTestService(t)

		repo.EXPECT().GetUserByEmail("ana@empresa.com").Return(activeUser(t, "senha123"), nil)

		_, err := service.SignUp(context.Background(), "ana@empresa.com", "senha123", "Ana")

		assert.Equal(t, identity.CodeDuplicateAccount, identity.CodeOf(err))
	})
}

func TestService_SignInWithPopup(t *testing.T) {
	t.Run("Conta de demonstração cadastrada é usada", func(t *testing.T) {
		repo, service := newTestService(t)

		demo := &domain.User{ID: 5, Email: "demo@empresa.com", DisplayName: "Demo Real", Active: true}
		repo.EXPECT().GetUserByEmail("demo@empresa.com").Return(demo, nil)

		user, err := service.SignInWithPopup(context.Background())

		require.NoError(t, err)
		assert.Equal(t, demo, user)
	})

	t.Run("Sem cadastro autentica identidade efêmera", func(t *testing.T) {
		repo, service := newTestService(t)

		repo.EXPECT().GetUserByEmail("demo@empresa.com").Return(nil, nil)

		user, err := service.SignInWithPopup(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "demo@empresa.com", user.Email)
		assert.Equal(t, "Conta Demo", user.DisplayName)
		assert.True(t, user.Active)
	})

	t.Run("Sem conta demo configurada o fluxo é cancelado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		cfg := testConfig()
		cfg.Auth.DemoEmail = ""
		service := NewService(mocks.NewMockUserRepository(ctrl), cfg)

		_, err := service.SignInWithPopup(context.Background())

		assert.Equal(t, identity.CodePopupCancelled, identity.CodeOf(err))
	})
}

func TestService_SignOutNotificaAssinantes(t *testing.T) {
	repo, service := newTestService(t)

	repo.EXPECT().GetUserByEmail("ana@empresa.com").Return(activeUser(t, "senha123"), nil)

	var pushes []*domain.User
	unsubscribe := service.Subscribe(func(u *domain.User) {
		pushes = append(pushes, u)
	})
	defer unsubscribe()

	_, err := service.SignIn(context.Background(), "ana@empresa.com", "senha123")
	require.NoError(t, err)
	require.NoError(t, service.SignOut(context.Background()))

	// Estado inicial (nil), login e logout
	require.Len(t, pushes, 3)
	assert.Nil(t, pushes[0])
	assert.NotNil(t, pushes[1])
	assert.Nil(t, pushes[2])
	assert.Nil(t, service.CurrentUser())
}

func TestService_SendPasswordReset(t *testing.T) {
	t.Run("Usuário cadastrado recebe token com validade", func(t *testing.T) {
		repo, service := newTestService(t)

		repo.EXPECT().GetUserByEmail("ana@empresa.com").Return(activeUser(t, "senha123"), nil)

		err := service.SendPasswordReset(context.Background(), "ana@empresa.com")

		require.NoError(t, err)
		assert.Len(t, service.resetTokens, 1)
	})

	t.Run("Usuário inexistente vira not-found", func(t *testing.T) {
		repo, service := newTestService(t)

		repo.EXPECT().GetUserByEmail("ninguem@empresa.com").Return(nil, nil)

		err := service.SendPasswordReset(context.Background(), "ninguem@empresa.com")

		assert.Equal(t, identity.CodeNotFound, identity.CodeOf(err))
	})
}

func TestService_PruneExpiredResetTokens(t *testing.T) {
	repo, service := newTestService(t)

	repo.EXPECT().GetUserByEmail("ana@empresa.com").Return(activeUser(t, "senha123"), nil).Times(2)

	require.NoError(t, service.SendPasswordReset(context.Background(), "ana@empresa.com"))
	require.NoError(t, service.SendPasswordReset(context.Background(), "ana@empresa.com"))

	// Nada expirado ainda
	assert.Zero(t, service.PruneExpiredResetTokens())
	assert.Len(t, service.resetTokens, 2)

	// Avança o relógio além do TTL
	service.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	assert.Equal(t, 2, service.PruneExpiredResetTokens())
	assert.Empty(t, service.resetTokens)
}

func TestService_TokenDeSessao(t *testing.T) {
	_, service := newTestService(t)

	user := &domain.User{ID: 7, Email: "ana@empresa.com", DisplayName: "Ana"}

	token, err := service.IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "ana@empresa.com", claims.UserEmail)
	assert.Equal(t, "Ana", claims.UserDisplayName)
}

func TestService_ValidateToken_Invalido(t *testing.T) {
	_, service := newTestService(t)

	tests := []struct {
		name  string
		token string
	}{
		{"Token vazio", ""},
		{"Token com conteúdo arbitrário", "nao-e-um-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
