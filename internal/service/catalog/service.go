package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/m04kA/NSS-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/NSS-BookingService/internal/service/catalog/models"
)

// Service сервис прайс-листа: услуги и мастера салона
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса прайс-листа
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListServices получает список активных услуг прайс-листа
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.catalogRepo.ListServices(ctx, true)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: successfully fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// GetService получает услугу по ID
func (s *Service) GetService(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	svc, err := s.catalogRepo.GetServiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}

// ListMasters получает список активных мастеров салона
func (s *Service) ListMasters(ctx context.Context) (*models.MasterListResponse, error) {
	masters, err := s.catalogRepo.ListMasters(ctx, true)
	if err != nil {
		s.logger.Error("ListMasters: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListMasters - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListMasters: successfully fetched %d masters", len(masters))
	return models.FromDomainMasterList(masters), nil
}
