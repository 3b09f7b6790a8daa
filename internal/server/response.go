package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hbjs97/actions/internal/action"
	"github.com/hbjs97/actions/internal/executor"
	"github.com/hbjs97/actions/internal/picker"
	"github.com/hbjs97/actions/internal/registry"
)

// ErrorResponse는 에러 응답 본문이다.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail은 에러 코드와 메시지다.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// errorStatus는 도메인 에러를 HTTP 상태와 에러 코드로 변환한다.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, registry.ErrUnknownCommand):
		return http.StatusNotFound, "UNKNOWN_COMMAND"
	case errors.Is(err, picker.ErrNoActions):
		return http.StatusNotFound, "NO_ACTIONS"
	case errors.Is(err, picker.ErrCancelled):
		return http.StatusBadRequest, "CANCELLED"
	case errors.Is(err, picker.ErrChoiceRequired):
		return http.StatusBadRequest, "CHOICE_REQUIRED"
	case errors.Is(err, action.ErrInvalidDefinition):
		return http.StatusUnprocessableEntity, "INVALID_DEFINITION"
	case errors.Is(err, executor.ErrNoTargetSelected):
		return http.StatusBadRequest, "NO_TARGET"
	case errors.Is(err, executor.ErrUnsupportedTarget):
		return http.StatusBadRequest, "UNSUPPORTED_TARGET"
	case errors.Is(err, executor.ErrWorkingDirectoryNotFound):
		return http.StatusUnprocessableEntity, "CWD_NOT_FOUND"
	case errors.Is(err, executor.ErrExecutionFailure):
		return http.StatusBadGateway, "EXECUTION_FAILURE"
	}
	return http.StatusInternalServerError, "INTERNAL"
}
