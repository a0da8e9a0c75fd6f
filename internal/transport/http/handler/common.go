package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AbdelazizSaid250/membership-service/internal/domain/entity"
	domainErrors "github.com/AbdelazizSaid250/membership-service/internal/domain/errors"
	"github.com/AbdelazizSaid250/membership-service/internal/transport/http/dto"
)

// respondJSON отправляет JSON ответ
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// статус уже отправлен, ошибку кодирования можно только проигнорировать
	_ = json.NewEncoder(w).Encode(data)
}

// respondSuccess оборачивает результат в {message, data}
func respondSuccess[T any](w http.ResponseWriter, status int, message string, data T) {
	respondJSON(w, status, dto.SuccessResponse[T]{Message: message, Data: data})
}

// RespondErrors отправляет массив кодов ошибки со статусом класса
func RespondErrors(w http.ResponseWriter, class domainErrors.Class, codes []domainErrors.ErrorCode) {
	respondJSON(w, statusByClass(class), codes)
}

// handleUseCaseError переводит ошибку usecase слоя в ответ API
func handleUseCaseError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	domainErr := domainErrors.Translate(err)

	if domainErr.Class == domainErrors.ClassInternalServerError {
		log.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Strings("codes", codeStrings(domainErr.Codes)),
			zap.Error(err),
		)
	}

	RespondErrors(w, domainErr.Class, domainErr.Codes)
}

// statusByClass возвращает HTTP статус для класса ответа
func statusByClass(class domainErrors.Class) int {
	switch class {
	case domainErrors.ClassBadRequest:
		return http.StatusBadRequest
	case domainErrors.ClassNotFound:
		return http.StatusNotFound
	case domainErrors.ClassInternalServerError:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

func badRequest(w http.ResponseWriter, codes ...string) {
	RespondErrors(w, domainErrors.ClassBadRequest, domainErrors.Codes(codes...))
}

// decodeJSON читает тело запроса; превышение лимита тоже считается неверным телом
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		badRequest(w, domainErrors.CodeInvalidRequestBody)
		return false
	}
	return true
}

// parseID читает uuid из параметра пути {id}
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, domainErrors.CodeInvalidIDFormat)
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination читает page_size и offset; отсутствующие параметры равны нулю
func parsePagination(w http.ResponseWriter, r *http.Request) (entity.Pagination, bool) {
	var p entity.Pagination

	q := r.URL.Query()
	for name, dst := range map[string]*int{"page_size": &p.PageSize, "offset": &p.Offset} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(w, domainErrors.CodePaginationFormat)
			return entity.Pagination{}, false
		}
		*dst = v
	}

	return p, true
}

func codeStrings(codes []domainErrors.ErrorCode) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		out = append(out, c.Code)
	}
	return out
}
