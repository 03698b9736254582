package service

import (
	"errors"

	"hire_assess_backend/internal/model"
	"hire_assess_backend/internal/repository"
	"hire_assess_backend/internal/util"

	"gorm.io/gorm"
)

type CompanyService struct {
	Repo repository.CompanyRepository
}

func NewCompanyService(repo repository.CompanyRepository) *CompanyService {
	return &CompanyService{Repo: repo}
}

type CompanyRequest struct {
	Name   string  `json:"name" binding:"required"`
	Domain *string `json:"domain"`
}

func (s *CompanyService) CreateCompany(req CompanyRequest) (*model.Company, error) {
	company := &model.Company{
		Name:   req.Name,
		Domain: req.Domain,
	}
	if err := s.Repo.Create(company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) GetCompany(id uint) (*model.Company, error) {
	company, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) ListCompanies() ([]model.Company, error) {
	return s.Repo.List()
}
