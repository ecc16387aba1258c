package account

import (
	"fmt"

	"github.com/vfg2006/adserver-api/infrastructure/repository"
	"github.com/vfg2006/adserver-api/internal/domain"
)

// Manager expõe a consulta e manutenção de publishers e anunciantes,
// respeitando os vínculos do usuário autenticado
type Manager interface {
	ListPublishers(claims *domain.Claims) ([]*domain.Publisher, error)
	GetPublisher(claims *domain.Claims, slug string) (*domain.Publisher, error)
	UpdatePublisher(req *domain.UpdatePublisherRequest) (*domain.Publisher, error)
	ListAdvertisers(claims *domain.Claims) ([]*domain.Advertiser, error)
	GetAdvertiser(claims *domain.Claims, slug string) (*domain.Advertiser, error)
	UpdateAdvertiser(req *domain.UpdateAdvertiserRequest) (*domain.Advertiser, error)
}

type Service struct {
	publisherRepo  repository.PublisherRepository
	advertiserRepo repository.AdvertiserRepository
}

func NewService(
	publisherRepo repository.PublisherRepository,
	advertiserRepo repository.AdvertiserRepository,
) Manager {
	return &Service{
		publisherRepo:  publisherRepo,
		advertiserRepo: advertiserRepo,
	}
}

// canSeeAll indica se o usuário enxerga todos os recursos, sem filtro de vínculo
func canSeeAll(claims *domain.Claims) bool {
	return claims == nil || claims.UserStaff || claims.UserRoleID == domain.RoleAdmin
}

func (s *Service) ListPublishers(claims *domain.Claims) ([]*domain.Publisher, error) {
	publishers, err := s.publisherRepo.List()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar publishers: %w", err)
	}

	if canSeeAll(claims) {
		return publishers, nil
	}

	linked := make([]*domain.Publisher, 0, len(publishers))
	for _, publisher := range publishers {
		if claims.HasPublisher(publisher.Slug) {
			linked = append(linked, publisher)
		}
	}

	return linked, nil
}

func (s *Service) GetPublisher(claims *domain.Claims, slug string) (*domain.Publisher, error) {
	if !canSeeAll(claims) && !claims.HasPublisher(slug) {
		return nil, ErrAccessDenied
	}

	publisher, err := s.publisherRepo.GetBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar publisher: %w", err)
	}
	if publisher == nil {
		return nil, ErrPublisherNotFound
	}

	return publisher, nil
}

func (s *Service) UpdatePublisher(req *domain.UpdatePublisherRequest) (*domain.Publisher, error) {
	publisher, err := s.publisherRepo.GetBySlug(req.Slug)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar publisher: %w", err)
	}
	if publisher == nil {
		return nil, ErrPublisherNotFound
	}

	if req.Name != nil {
		publisher.Name = *req.Name
	}
	if req.RevenueSharePercent != nil {
		publisher.RevenueSharePercent = *req.RevenueSharePercent
	}
	if req.UnauthedAdDecisions != nil {
		publisher.UnauthedAdDecisions = *req.UnauthedAdDecisions
	}

	if err := s.publisherRepo.Update(publisher); err != nil {
		return nil, fmt.Errorf("erro ao atualizar publisher: %w", err)
	}

	return publisher, nil
}

func (s *Service) ListAdvertisers(claims *domain.Claims) ([]*domain.Advertiser, error) {
	advertisers, err := s.advertiserRepo.List()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar anunciantes: %w", err)
	}

	if canSeeAll(claims) {
		return advertisers, nil
	}

	linked := make([]*domain.Advertiser, 0, len(advertisers))
	for _, advertiser := range advertisers {
		if claims.HasAdvertiser(advertiser.Slug) {
			linked = append(linked, advertiser)
		}
	}

	return linked, nil
}

func (s *Service) GetAdvertiser(claims *domain.Claims, slug string) (*domain.Advertiser, error) {
	if !canSeeAll(claims) && !claims.HasAdvertiser(slug) {
		return nil, ErrAccessDenied
	}

	advertiser, err := s.advertiserRepo.GetBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar anunciante: %w", err)
	}
	if advertiser == nil {
		return nil, ErrAdvertiserNotFound
	}

	return advertiser, nil
}

func (s *Service) UpdateAdvertiser(req *domain.UpdateAdvertiserRequest) (*domain.Advertiser, error) {
	advertiser, err := s.advertiserRepo.GetBySlug(req.Slug)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar anunciante: %w", err)
	}
	if advertiser == nil {
		return nil, ErrAdvertiserNotFound
	}

	if req.Name != nil {
		advertiser.Name = *req.Name
	}

	if err := s.advertiserRepo.Update(advertiser); err != nil {
		return nil, fmt.Errorf("erro ao atualizar anunciante: %w", err)
	}

	return advertiser, nil
}
