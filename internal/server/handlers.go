package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/cloud-ru/credit-calculator-go/internal/calculations"
	"github.com/cloud-ru/credit-calculator-go/internal/logging"
	"github.com/cloud-ru/credit-calculator-go/internal/output"
	"github.com/cloud-ru/credit-calculator-go/internal/tools"
	"github.com/cloud-ru/credit-calculator-go/internal/validators"
)

const maxBodyBytes = 1 << 16

// Handler отдает инструменты калькулятора по HTTP
type Handler struct {
	calculate tools.ToolHandler
	compare   tools.ToolHandler
}

// ErrorResponse тело ответа на неуспешный запрос
type ErrorResponse struct {
	Error  string `json:"error"`
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	h.serveTool(w, r, h.calculate)
}

func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	h.serveTool(w, r, h.compare)
}

func (h *Handler) serveTool(w http.ResponseWriter, r *http.Request, tool tools.ToolHandler) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err)
		return
	}

	params := map[string]interface{}{}
	if err := json.Unmarshal(body, &params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err)
		return
	}

	result, err := tool(r.Context(), params)
	if err != nil {
		status, kind := classify(err)
		if status == http.StatusInternalServerError {
			logging.Error("tool failed", zap.Error(err))
		}
		writeError(w, status, kind, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// classify сопоставляет ошибке HTTP-статус и машиночитаемый класс
func classify(err error) (int, string) {
	switch {
	case validators.IsValidation(err):
		return http.StatusBadRequest, string(validators.KindOf(err))
	case errors.Is(err, tools.ErrInvalidParameter):
		return http.StatusBadRequest, "invalid_parameter"
	case errors.Is(err, validators.ErrLimitExceeded):
		return http.StatusBadRequest, "limit_exceeded"
	case errors.Is(err, calculations.ErrNeverRepaid):
		return http.StatusUnprocessableEntity, "never_repaid"
	case errors.Is(err, calculations.ErrUndefined):
		return http.StatusUnprocessableEntity, "undefined"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func writeError(w http.ResponseWriter, status int, kind string, err error) {
	writeJSON(w, status, ErrorResponse{
		Error:  output.IncorrectParameters,
		Kind:   kind,
		Detail: err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if raw, ok := v.(json.RawMessage); ok {
		_, _ = w.Write(raw)
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}
