package models

import "github.com/m04kA/NSS-BookingService/internal/domain"

// ServiceResponse услуга из прайс-листа
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// MasterResponse мастер салона
type MasterResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Specialization *string `json:"specialization,omitempty"`
	PhotoURL       *string `json:"photoUrl,omitempty"`
}

// MasterListResponse список мастеров
type MasterListResponse struct {
	Masters []MasterResponse `json:"masters"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.CatalogService) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Category:        s.Category,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.CatalogService) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, svc := range services {
		if svcResp := FromDomainService(svc); svcResp != nil {
			resp.Services = append(resp.Services, *svcResp)
		}
	}

	return resp
}

// FromDomainMaster конвертирует domain модель в DTO
func FromDomainMaster(m *domain.Master) *MasterResponse {
	if m == nil {
		return nil
	}

	return &MasterResponse{
		ID:             m.ID,
		Name:           m.Name,
		Specialization: m.Specialization,
		PhotoURL:       m.PhotoURL,
	}
}

// FromDomainMasterList конвертирует список domain моделей в DTO
func FromDomainMasterList(masters []*domain.Master) *MasterListResponse {
	resp := &MasterListResponse{
		Masters: make([]MasterResponse, 0, len(masters)),
	}

	for _, m := range masters {
		if mResp := FromDomainMaster(m); mResp != nil {
			resp.Masters = append(resp.Masters, *mResp)
		}
	}

	return resp
}
