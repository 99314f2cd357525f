// Package response общая запись ответов REST-обработчиков: JSON-тело и
// отображение класса ошибки в HTTP-код.
package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"fulfillment/internal/generated/dto"
	"fulfillment/internal/pkg/apperr"
	"fulfillment/pkg/logger"
)

func JSON(w http.ResponseWriter, log responseLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// BadRequest тело запроса не разобралось, до сервиса дело не дошло.
func BadRequest(w http.ResponseWriter, log responseLogger, message string) {
	JSON(w, log, http.StatusBadRequest, dto.Error{
		Error:   apperr.KindValidation.String(),
		Message: message,
	})
}

func Unauthorized(w http.ResponseWriter, log responseLogger) {
	JSON(w, log, http.StatusUnauthorized, dto.Error{
		Error:   "unauthorized",
		Message: "missing caller",
	})
}

// Error пишет ошибку сервиса. Текст внутренних ошибок клиенту не отдается.
func Error(w http.ResponseWriter, log responseLogger, err error) {
	status := StatusOf(err)
	body := dto.Error{
		Error:   apperr.KindOf(err).String(),
		Message: err.Error(),
	}

	switch {
	case status == http.StatusGatewayTimeout:
		body.Error = "timeout"
		body.Message = "request timed out"
		log.With(logger.NewField("error", err)).Warn("request timed out")
	case status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable:
		body.Message = "internal error"
		log.With(logger.NewField("error", err)).Error("request failed")
	case status == http.StatusServiceUnavailable:
		log.With(logger.NewField("error", err)).Warn("external dependency unavailable")
	}

	JSON(w, log, status, body)
}

func StatusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindExternalUnavailable:
		return http.StatusServiceUnavailable
	case apperr.KindInternal:
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}
