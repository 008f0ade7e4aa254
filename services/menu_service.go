package services

import (
	"fmt"
	"strings"

	"backend/entity"
	"backend/pkg/apperr"
)

// MenuStore is the slice of persistence the menu endpoints need.
type MenuStore interface {
	List() ([]entity.MenuItem, error)
	Create(item *entity.MenuItem) error
	Delete(id uint) error
}

type MenuService struct {
	Repo MenuStore
}

func NewMenuService(repo MenuStore) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.List()
}

func (s *MenuService) Create(item *entity.MenuItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" || item.Price <= 0 {
		return fmt.Errorf("%w: name and price are required", apperr.ErrValidation)
	}
	return s.Repo.Create(item)
}

func (s *MenuService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
