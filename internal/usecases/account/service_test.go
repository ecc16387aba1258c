package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/adserver-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adserver-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockPublisherRepository, *mocks.MockAdvertiserRepository) {
	ctrl := gomock.NewController(t)

	publisherRepo := mocks.NewMockPublisherRepository(ctrl)
	advertiserRepo := mocks.NewMockAdvertiserRepository(ctrl)

	service := &Service{
		publisherRepo:  publisherRepo,
		advertiserRepo: advertiserRepo,
	}

	return service, publisherRepo, advertiserRepo
}

func adminClaims() *domain.Claims {
	return &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}
}

func publisherClaims(slugs ...string) *domain.Claims {
	return &domain.Claims{UserID: 2, UserRoleID: domain.RolePublisher, UserPublishers: slugs}
}

func advertiserClaims(slugs ...string) *domain.Claims {
	return &domain.Claims{UserID: 3, UserRoleID: domain.RoleAdvertiser, UserAdvertisers: slugs}
}

func TestServiceListPublishers(t *testing.T) {
	allPublishers := []*domain.Publisher{
		{Slug: "blog-tecnologia"},
		{Slug: "portal-noticias"},
	}

	tests := []struct {
		name     string
		claims   *domain.Claims
		expected []string
	}{
		{
			name:     "Administrador enxerga todos os publishers",
			claims:   adminClaims(),
			expected: []string{"blog-tecnologia", "portal-noticias"},
		},
		{
			name:     "Staff enxerga todos os publishers",
			claims:   &domain.Claims{UserRoleID: domain.RolePublisher, UserStaff: true},
			expected: []string{"blog-tecnologia", "portal-noticias"},
		},
		{
			name:     "Publisher enxerga apenas os vinculados",
			claims:   publisherClaims("portal-noticias"),
			expected: []string{"portal-noticias"},
		},
		{
			name:     "Publisher sem vínculos não enxerga nenhum",
			claims:   publisherClaims(),
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, publisherRepo, _ := newTestService(t)

			publisherRepo.EXPECT().List().Return(allPublishers, nil)

			publishers, err := service.ListPublishers(tt.claims)

			assert.NoError(t, err)
			assert.Len(t, publishers, len(tt.expected))
			for i, slug := range tt.expected {
				assert.Equal(t, slug, publishers[i].Slug)
			}
		})
	}
}

func TestServiceGetPublisher(t *testing.T) {
	t.Run("Publisher vinculado pode consultar seus dados", func(t *testing.T) {
		service, publisherRepo, _ := newTestService(t)

		publisherRepo.EXPECT().
			GetBySlug("blog-tecnologia").
			Return(&domain.Publisher{Slug: "blog-tecnologia"}, nil)

		publisher, err := service.GetPublisher(publisherClaims("blog-tecnologia"), "blog-tecnologia")

		assert.NoError(t, err)
		assert.Equal(t, "blog-tecnologia", publisher.Slug)
	})

	t.Run("Publisher não vinculado tem o acesso negado", func(t *testing.T) {
		service, _, _ := newTestService(t)

		publisher, err := service.GetPublisher(publisherClaims("portal-noticias"), "blog-tecnologia")

		assert.Nil(t, publisher)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("Publisher inexistente retorna erro", func(t *testing.T) {
		service, publisherRepo, _ := newTestService(t)

		publisherRepo.EXPECT().GetBySlug("fantasma").Return(nil, nil)

		publisher, err := service.GetPublisher(adminClaims(), "fantasma")

		assert.Nil(t, publisher)
		assert.ErrorIs(t, err, ErrPublisherNotFound)
	})
}

func TestServiceUpdatePublisher(t *testing.T) {
	service, publisherRepo, _ := newTestService(t)

	current := &domain.Publisher{
		Slug:                "blog-tecnologia",
		Name:                "Blog Tecnologia",
		RevenueSharePercent: 60,
	}

	newName := "Blog Tech"
	newShare := 70.0

	publisherRepo.EXPECT().GetBySlug("blog-tecnologia").Return(current, nil)
	publisherRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *domain.Publisher) error {
		assert.Equal(t, "Blog Tech", p.Name)
		assert.Equal(t, 70.0, p.RevenueSharePercent)
		return nil
	})

	publisher, err := service.UpdatePublisher(&domain.UpdatePublisherRequest{
		Slug:                "blog-tecnologia",
		Name:                &newName,
		RevenueSharePercent: &newShare,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Blog Tech", publisher.Name)
}

func TestServiceListAdvertisers(t *testing.T) {
	allAdvertisers := []*domain.Advertiser{
		{Slug: "loja-exemplo"},
		{Slug: "comunidade-dev"},
	}

	t.Run("Anunciante enxerga apenas os vinculados", func(t *testing.T) {
		service, _, advertiserRepo := newTestService(t)

		advertiserRepo.EXPECT().List().Return(allAdvertisers, nil)

		advertisers, err := service.ListAdvertisers(advertiserClaims("loja-exemplo"))

		assert.NoError(t, err)
		assert.Len(t, advertisers, 1)
		assert.Equal(t, "loja-exemplo", advertisers[0].Slug)
	})

	t.Run("Administrador enxerga todos os anunciantes", func(t *testing.T) {
		service, _, advertiserRepo := newTestService(t)

		advertiserRepo.EXPECT().List().Return(allAdvertisers, nil)

		advertisers, err := service.ListAdvertisers(adminClaims())

		assert.NoError(t, err)
		assert.Len(t, advertisers, 2)
	})
}

func TestServiceGetAdvertiser(t *testing.T) {
	t.Run("Anunciante não vinculado tem o acesso negado", func(t *testing.T) {
		service, _, _ := newTestService(t)

		advertiser, err := service.GetAdvertiser(advertiserClaims("comunidade-dev"), "loja-exemplo")

		assert.Nil(t, advertiser)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("Anunciante inexistente retorna erro", func(t *testing.T) {
		service, _, advertiserRepo := newTestService(t)

		advertiserRepo.EXPECT().GetBySlug("fantasma").Return(nil, nil)

		advertiser, err := service.GetAdvertiser(adminClaims(), "fantasma")

		assert.Nil(t, advertiser)
		assert.ErrorIs(t, err, ErrAdvertiserNotFound)
	})
}
