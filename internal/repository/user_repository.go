package repository

import (
	"hire_assess_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	List(companyID *uint) ([]model.User, error)
	UpdateResumeURL(id uint, url string) error
}

type userRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var u model.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var u model.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) List(companyID *uint) ([]model.User, error) {
	var users []model.User
	q := r.DB.Model(&model.User{})
	if companyID != nil {
		q = q.Where("company_id = ?", *companyID)
	}
	err := q.Find(&users).Error
	return users, err
}

func (r *userRepository) UpdateResumeURL(id uint, url string) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).Update("resume_url", url).Error
}
