package usecase

import (
	"context"
	"fmt"

	"github.com/AbdelazizSaid250/membership-service/internal/domain/entity"
	domainErrors "github.com/AbdelazizSaid250/membership-service/internal/domain/errors"
)

// pageSource источник данных для постраничного списка
type pageSource[T any] interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, limit, offset int) ([]*T, error)
}

// paginate сначала считает строки, затем читает страницу. Ошибка подсчета прерывает операцию.
func paginate[T any](ctx context.Context, src pageSource[T], p entity.Pagination, name string) (*entity.Page[T], error) {
	if err := validatePagination(p); err != nil {
		return nil, err
	}

	count, err := src.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count %s: %w", name, err)
	}

	items, err := src.List(ctx, p.PageSize, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", name, err)
	}

	if items == nil {
		items = []*T{}
	}

	return &entity.Page[T]{Items: items, Count: count}, nil
}

func validatePagination(p entity.Pagination) error {
	var codes []string
	if p.PageSize < 0 {
		codes = append(codes, domainErrors.CodeNegativePageSize)
	}
	if p.Offset < 0 {
		codes = append(codes, domainErrors.CodeNegativeOffset)
	}
	if len(codes) > 0 {
		return domainErrors.NewBadRequest("invalid pagination", codes...)
	}
	return nil
}
