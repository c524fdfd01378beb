package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandelis/warehouse-api/internal/application/dto"
	"github.com/sandelis/warehouse-api/internal/domain"
	"github.com/sandelis/warehouse-api/internal/domain/repository"
	"github.com/sandelis/warehouse-api/internal/domain/search"
)

// MovementUseCase consultas sobre el libro de movimientos.
type MovementUseCase struct {
	movements repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(movements repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{movements: movements}
}

// Search listado paginado de movimientos, del más reciente al más antiguo.
func (uc *MovementUseCase) Search(in dto.MovementSearchRequest) (*dto.MovementListResponse, error) {
	in.DefaultPage()

	dateFrom, err := parseDate(in.DateFrom, false)
	if err != nil {
		return nil, err
	}
	dateTo, err := parseDate(in.DateTo, true)
	if err != nil {
		return nil, err
	}

	filter := repository.MovementFilter{
		ProductID: in.ProductID,
		Type:      in.Type,
		Invoice:   strings.TrimSpace(in.Invoice),
		Tokens:    search.Tokens(in.Q),
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		Page:      in.Page,
		Limit:     in.Limit,
	}
	items, total, err := uc.movements.Search(filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.MovementResponse, 0, len(items))
	for _, m := range items {
		data = append(data, dto.ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Data:       data,
		Pagination: dto.Pagination{Total: total, Page: in.Page, Limit: in.Limit},
	}, nil
}

// parseDate acepta RFC 3339 o fecha calendario (YYYY-MM-DD). Para el límite
// superior, una fecha calendario se expande al final del día (rango inclusivo).
func parseDate(s string, endOfDay bool) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, s)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
