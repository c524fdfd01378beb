package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandelis/warehouse-api/internal/application/dto"
	"github.com/sandelis/warehouse-api/internal/domain"
	"github.com/sandelis/warehouse-api/internal/domain/entity"
	"github.com/sandelis/warehouse-api/internal/domain/repository"
)

// ReferenceUseCase alta y listado de un catálogo con nombre único
// (grupos, proveedores o fabricantes según el repositorio inyectado).
type ReferenceUseCase struct {
	repo repository.ReferenceRepository
}

// NewReferenceUseCase construye el caso de uso.
func NewReferenceUseCase(repo repository.ReferenceRepository) *ReferenceUseCase {
	return &ReferenceUseCase{repo: repo}
}

// Create da de alta una entrada; el nombre duplicado devuelve ErrDuplicate.
func (uc *ReferenceUseCase) Create(in dto.CreateReferenceRequest) (*dto.ReferenceResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	ref := &entity.Reference{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ref); err != nil {
		return nil, err
	}
	out := dto.ToReferenceResponse(*ref)
	return &out, nil
}

// List devuelve el catálogo completo ordenado por nombre.
func (uc *ReferenceUseCase) List() ([]dto.ReferenceResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReferenceResponse, 0, len(list))
	for _, ref := range list {
		out = append(out, dto.ToReferenceResponse(ref))
	}
	return out, nil
}
