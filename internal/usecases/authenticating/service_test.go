package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adserver-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adserver-api/internal/config"
	"github.com/vfg2006/adserver-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{
		userRepo: userRepo,
		cfg:      &config.Config{Auth: config.Auth{Secret: "segredo-de-teste"}},
	}

	return service, userRepo
}

func activeUser(t *testing.T, password string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           10,
		Name:         "Maria",
		Lastname:     "Silva",
		Email:        "maria@example.com",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       domain.RolePublisher,
	}
}

func TestServiceLoginUser(t *testing.T) {
	t.Run("Login válido gera token com os vínculos do usuário", func(t *testing.T) {
		service, userRepo := newTestService(t)

		user := activeUser(t, "Senha@123")
		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(user, nil)
		userRepo.EXPECT().GetUserLinks(user.ID).Return([]string{"blog-tecnologia"}, nil, nil)

		token, err := service.LoginUser("Maria@Example.com ", "Senha@123")

		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, []string{"blog-tecnologia"}, claims.UserPublishers)
		assert.Equal(t, domain.RolePublisher, claims.UserRoleID)
	})

	t.Run("Sem email ou senha retorna erro de dados obrigatórios", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.LoginUser("", "")

		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("Usuário desconhecido retorna erro", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByEmail("ninguem@example.com").Return(nil, nil)

		_, err := service.LoginUser("ninguem@example.com", "Senha@123")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Conta desativada não pode logar", func(t *testing.T) {
		service, userRepo := newTestService(t)

		user := activeUser(t, "Senha@123")
		user.Active = false
		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(user, nil)

		_, err := service.LoginUser("maria@example.com", "Senha@123")

		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("Senha incorreta retorna erro de credenciais", func(t *testing.T) {
		service, userRepo := newTestService(t)

		user := activeUser(t, "Senha@123")
		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(user, nil)

		_, err := service.LoginUser("maria@example.com", "errada")

		assert.ErrorIs(t, err, ErrInvalidCredentials)

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, user.ID, authErr.UserID)
	})
}

func TestServiceValidateToken(t *testing.T) {
	t.Run("Token adulterado é rejeitado", func(t *testing.T) {
		service, _ := newTestService(t)

		claims, err := service.ValidateToken("cabecalho.corpo.assinatura")

		assert.Nil(t, claims)
		assert.Error(t, err)
	})

	t.Run("Token assinado com outro segredo é rejeitado", func(t *testing.T) {
		service, userRepo := newTestService(t)

		user := activeUser(t, "Senha@123")
		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(user, nil)
		userRepo.EXPECT().GetUserLinks(user.ID).Return(nil, nil, nil)

		token, err := service.LoginUser("maria@example.com", "Senha@123")
		require.NoError(t, err)

		other := &Service{
			userRepo: nil,
			cfg:      &config.Config{Auth: config.Auth{Secret: "outro-segredo"}},
		}

		claims, err := other.ValidateToken(token)

		assert.Nil(t, claims)
		assert.Error(t, err)
	})
}

func TestServiceCreateUser(t *testing.T) {
	t.Run("Dados obrigatórios ausentes retornam erro", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateUser(&domain.User{Email: "maria@example.com"})

		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("Email já cadastrado retorna erro", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(&domain.User{ID: 1}, nil)

		_, err := service.CreateUser(&domain.User{
			Name:         "Maria",
			Lastname:     "Silva",
			Email:        "maria@example.com",
			PasswordHash: "Senha@123",
		})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Usuário novo nasce inativo com perfil de publisher", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(nil, nil)
		userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
			assert.False(t, u.Active)
			assert.Equal(t, domain.RolePublisher, u.RoleID)
			assert.NotEqual(t, "Senha@123", u.PasswordHash) // senha deve estar com hash
			return u, nil
		})

		user, err := service.CreateUser(&domain.User{
			Name:         "Maria",
			Lastname:     "Silva",
			Email:        " Maria@Example.com ",
			PasswordHash: "Senha@123",
		})

		require.NoError(t, err)
		assert.Equal(t, "maria@example.com", user.Email)
	})
}

func TestServiceValidatePasswordStrength(t *testing.T) {
	service, _ := newTestService(t)

	tests := []struct {
		name     string
		password string
		hasError bool
	}{
		{
			name:     "Senha forte é aceita",
			password: "Senha@123",
			hasError: false,
		},
		{
			name:     "Senha curta é rejeitada",
			password: "S@1a",
			hasError: true,
		},
		{
			name:     "Sem maiúscula é rejeitada",
			password: "senha@123",
			hasError: true,
		},
		{
			name:     "Sem minúscula é rejeitada",
			password: "SENHA@123",
			hasError: true,
		},
		{
			name:     "Sem número é rejeitada",
			password: "Senha@abc",
			hasError: true,
		},
		{
			name:     "Sem caractere especial é rejeitada",
			password: "Senha1234",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)

			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServiceGenerateStrongPassword(t *testing.T) {
	t.Run("Apenas administradores podem gerar senhas", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByID(10).Return(&domain.User{ID: 10, RoleID: domain.RolePublisher}, nil)

		_, err := service.GenerateStrongPassword(10, 20)

		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	})

	t.Run("Senha gerada atende aos requisitos e é persistida com hash", func(t *testing.T) {
		service, userRepo := newTestService(t)

		admin := &domain.User{ID: 1, RoleID: domain.RoleAdmin}
		target := &domain.User{ID: 20, RoleID: domain.RolePublisher}

		userRepo.EXPECT().GetUserByID(1).Return(admin, nil)
		userRepo.EXPECT().GetUserByID(20).Return(target, nil)

		var savedHash string
		userRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(u *domain.User) error {
			savedHash = u.PasswordHash
			return nil
		})

		password, err := service.GenerateStrongPassword(1, 20)

		require.NoError(t, err)
		assert.Len(t, password, 12)
		assert.NoError(t, service.ValidatePasswordStrength(password))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(savedHash), []byte(password)))
	})
}

func TestServiceChangePassword(t *testing.T) {
	t.Run("Senha atual incorreta é rejeitada", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByID(10).Return(activeUser(t, "Senha@123"), nil)

		err := service.ChangePassword(10, "errada", "Nova@Senha1")

		assert.EqualError(t, err, "senha atual incorreta")
	})

	t.Run("Nova senha igual à atual é rejeitada", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByID(10).Return(activeUser(t, "Senha@123"), nil)

		err := service.ChangePassword(10, "Senha@123", "Senha@123")

		assert.ErrorIs(t, err, ErrSamePassword)
	})

	t.Run("Nova senha fraca é rejeitada", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByID(10).Return(activeUser(t, "Senha@123"), nil)

		err := service.ChangePassword(10, "Senha@123", "fraca")

		assert.Error(t, err)
	})

	t.Run("Troca válida persiste o novo hash", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByID(10).Return(activeUser(t, "Senha@123"), nil)
		userRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(u *domain.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Nova@Senha1")))
			return nil
		})

		err := service.ChangePassword(10, "Senha@123", "Nova@Senha1")

		assert.NoError(t, err)
	})
}

func TestServiceLinkUserPublisher(t *testing.T) {
	t.Run("Usuário inexistente retorna erro", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByID(99).Return(nil, nil)

		err := service.LinkUserPublisher(99, "blog-tecnologia")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Vínculo é delegado ao repositório", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByID(10).Return(&domain.User{ID: 10}, nil)
		userRepo.EXPECT().LinkUserPublisher(10, "blog-tecnologia").Return(nil)

		err := service.LinkUserPublisher(10, "blog-tecnologia")

		assert.NoError(t, err)
	})
}
