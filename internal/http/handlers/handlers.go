// handlers содержит REST-обработчики tracks-api поверх service.Service.
// Обработчик разбирает и валидирует запрос, вызывает сервис и сериализует
// ответ; все ошибки уходят через apierrors.WriteError.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-tracks-api/internal/http/dto"
	"github.com/pribylovaa/go-tracks-api/internal/pagination"
	"github.com/pribylovaa/go-tracks-api/internal/service"
	"github.com/pribylovaa/go-tracks-api/internal/validation"
)

// Handlers агрегирует зависимости обработчиков.
type Handlers struct {
	svc   *service.Service
	pages pagination.Defaults
}

func New(svc *service.Service, pages pagination.Defaults) *Handlers {
	return &Handlers{svc: svc, pages: pages}
}

// Health — GET /health.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.Health{Status: "healthy", Message: "tracks-api is running"})
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// decodeValid разбирает тело и проверяет его теги validate.
// Битый JSON и неизвестные поля дают ошибку валидации (400).
func decodeValid(r *http.Request, value any) error {
	if err := decodeStrict(r, value); err != nil {
		return validation.New("invalid request body")
	}

	return validation.Struct(value)
}

// pathID читает положительный int64-параметр пути.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, validation.New(fmt.Sprintf("%s must be a positive integer", name))
	}

	return id, nil
}

func (h *Handlers) pageParams(r *http.Request) (pagination.Params, error) {
	return pagination.ParseParams(r.URL.Query(), h.pages)
}

// writePage сериализует страницу, переводя элементы в транспортные представления.
func writePage[T, V any](w http.ResponseWriter, p pagination.Page[T], view func(T) V) {
	writeJSON(w, http.StatusOK, pagination.Map(p, view))
}
