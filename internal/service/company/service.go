package company

import (
	"context"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/company"
)

type companyService struct {
	companyRepo company.CompanyRepository
}

func NewCompanyService(companyRepo company.CompanyRepository) company.CompanyService {
	return &companyService{companyRepo: companyRepo}
}

// CreateCompany implements company.CompanyService.
func (s *companyService) CreateCompany(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	created, err := s.companyRepo.Create(ctx, company.Company{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToCompanyResponse(created), nil
}

// GetCompany implements company.CompanyService.
func (s *companyService) GetCompany(ctx context.Context, id string) (company.CompanyResponse, error) {
	c, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToCompanyResponse(c), nil
}
