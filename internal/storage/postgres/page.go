package postgres

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-tracks-api/internal/models"
)

// scanFunc сканирует одну строку выборки в T.
type scanFunc[T any] func(row pgx.Rows) (T, error)

// selectPage выполняет COUNT и оконный SELECT одним батчем (один round trip).
//
// Описание:
//   - countSQL и listSQL принимают одинаковые аргументы args;
//   - к listSQL добавляются LIMIT/OFFSET как следующие два плейсхолдера;
//   - возвращает всегда ненулевой срез.
func selectPage[T any](ctx context.Context, s *Storage, countSQL, listSQL string, w models.Window, scan scanFunc[T], args ...any) ([]T, int64, error) {
	n := len(args)
	listArgs := make([]any, 0, n+2)
	listArgs = append(listArgs, args...)
	listArgs = append(listArgs, w.Limit, w.Offset)

	batch := &pgx.Batch{}
	batch.Queue(countSQL, args...)
	batch.Queue(listSQL+limitOffset(n), listArgs...)

	br := s.db.SendBatch(ctx, batch)
	defer br.Close()

	var total int64
	if err := br.QueryRow().Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := br.Query()
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]T, 0, w.Limit)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// limitOffset формирует хвост запроса с плейсхолдерами после n аргументов.
func limitOffset(n int) string {
	return " LIMIT $" + strconv.Itoa(n+1) + " OFFSET $" + strconv.Itoa(n+2)
}
