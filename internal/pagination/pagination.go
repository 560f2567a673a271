// pagination реализует единый контракт постраничной выдачи списков.
//
// Параметры запроса:
//   - page: по умолчанию 1, значения <= 0 поднимаются до 1;
//   - per_page: по умолчанию Defaults.PerPage, значения <= 0 заменяются дефолтом,
//     значения > Defaults.MaxPerPage отклоняются ошибкой валидации (без тихого clamp).
//
// Страница за пределами данных — не ошибка: пустой data с корректными total/pages.
// Порядок элементов задаёт запрос (хранилище сортирует по первичному ключу).
package pagination

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/pribylovaa/go-tracks-api/internal/models"
	"github.com/pribylovaa/go-tracks-api/internal/validation"
)

// maxPage ограничивает номер страницы, чтобы offset не переполнялся.
const maxPage = math.MaxInt32

// Defaults — серверные значения по умолчанию (из config.PaginationConfig).
type Defaults struct {
	PerPage    int
	MaxPerPage int
}

// Params — нормализованные параметры страницы.
type Params struct {
	Page    int
	PerPage int
}

// Window переводит номер страницы в окно LIMIT/OFFSET.
func (p Params) Window() models.Window {
	return models.Window{Limit: p.PerPage, Offset: (p.Page - 1) * p.PerPage}
}

// Page — конверт страницы, сериализуется как {data, page, total, pages}.
type Page[T any] struct {
	Data  []T   `json:"data"`
	Page  int   `json:"page"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// Query — упорядоченная выборка: элементы окна и общее число строк без учёта окна.
type Query[T any] func(ctx context.Context, w models.Window) ([]T, int64, error)

// ParseParams читает page/per_page из query-строки.
// Нечисловые значения трактуются как отсутствующие.
func ParseParams(q url.Values, d Defaults) (Params, error) {
	p := Params{
		Page:    intOr(q.Get("page"), 1),
		PerPage: intOr(q.Get("per_page"), d.PerPage),
	}

	return Normalize(p, d)
}

// Normalize применяет значения по умолчанию и ограничения к уже разобранным параметрам.
func Normalize(p Params, d Defaults) (Params, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > maxPage {
		p.Page = maxPage
	}

	if p.PerPage < 1 {
		p.PerPage = d.PerPage
	}

	if d.MaxPerPage > 0 && p.PerPage > d.MaxPerPage {
		return Params{}, validation.New(fmt.Sprintf("per_page cannot exceed %d", d.MaxPerPage))
	}

	return p, nil
}

// Paginate выполняет запрос для окна p и заворачивает результат в конверт.
func Paginate[T any](ctx context.Context, q Query[T], p Params) (Page[T], error) {
	const op = "pagination.Paginate"

	items, total, err := q(ctx, p.Window())
	if err != nil {
		return Page[T]{}, fmt.Errorf("%s: %w", op, err)
	}

	return NewPage(items, total, p), nil
}

// NewPage собирает конверт; data никогда не nil, чтобы в JSON был [].
func NewPage[T any](items []T, total int64, p Params) Page[T] {
	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Data:  items,
		Page:  p.Page,
		Total: total,
		Pages: PageCount(total, p.PerPage),
	}
}

// Map преобразует элементы страницы, сохраняя метаданные.
func Map[T, U any](p Page[T], f func(T) U) Page[U] {
	out := make([]U, 0, len(p.Data))
	for _, v := range p.Data {
		out = append(out, f(v))
	}

	return Page[U]{Data: out, Page: p.Page, Total: p.Total, Pages: p.Pages}
}

// PageCount — ceil(total/perPage); 0 для пустой коллекции.
func PageCount(total int64, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}

	return int((total + int64(perPage) - 1) / int64(perPage))
}

func intOr(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return n
}
