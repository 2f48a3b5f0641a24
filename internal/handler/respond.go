package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/AlexZinkM/rail-wallet/internal/apperr"
	"github.com/AlexZinkM/rail-wallet/internal/logger"
	"github.com/AlexZinkM/rail-wallet/internal/model"

	"go.uber.org/zap"
)

const (
	HeaderUserID    = "X-User-ID"
	HeaderUserEmail = "X-User-Email"

	maxBodyBytes = 1 << 20
)

// callerFrom reads the identity set by the trusted gateway.
func callerFrom(r *http.Request) (model.Caller, error) {
	id := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if id == "" {
		return model.Caller{}, apperr.New(apperr.CodeUnauthorized, "missing caller identity")
	}
	return model.Caller{ID: id, Email: strings.TrimSpace(r.Header.Get(HeaderUserEmail))}, nil
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeJSON(w, http.StatusMethodNotAllowed, model.ErrorResponse{Error: model.ErrorBody{
		Code:    string(apperr.CodeValidation),
		Message: "method not allowed, should be " + method,
	}})
	return false
}

func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
	if errors.Is(err, io.EOF) {
		return apperr.Validation("request body is required")
	}
	if err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("failed to encode response", zap.Error(err))
	}
}

// writeError renders err as {"error":{"code","message"}}. Internal errors
// are logged with their cause and rendered with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err))
	}
	writeJSON(w, status, model.ErrorResponse{Error: model.ErrorBody{
		Code:    string(apperr.CodeOf(err)),
		Message: apperr.PublicMessage(err),
	}})
}
