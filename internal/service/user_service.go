package service

import (
	"errors"

	"hire_assess_backend/internal/model"
	"hire_assess_backend/internal/repository"
	"hire_assess_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	Repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) GetUser(id uint) (*model.User, error) {
	user, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ListUsers returns all users, optionally narrowed to one company.
func (s *UserService) ListUsers(companyID *uint) ([]model.User, error) {
	return s.Repo.List(companyID)
}

func (s *UserService) SetResumeURL(id uint, url string) error {
	return s.Repo.UpdateResumeURL(id, url)
}
