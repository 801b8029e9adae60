package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/TirthDhandhukia30/ai-task-gateway/config"
	"github.com/TirthDhandhukia30/ai-task-gateway/internal/provider/azure"
	"github.com/TirthDhandhukia30/ai-task-gateway/internal/task"
)

type Handler struct {
	dispatcher *task.Dispatcher
	creds      config.AzureOpenAI
	tracer     trace.Tracer
}

func NewHandler(dispatcher *task.Dispatcher, creds config.AzureOpenAI, tracer trace.Tracer) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		creds:      creds,
		tracer:     tracer,
	}
}

// HandleTask is the single task endpoint. Error taxonomy: missing
// credentials are a 500 answered before any dispatch, an unknown task type
// is a 400, and everything a handler raises surfaces as a 500 with the
// underlying message plus a provider status annotation when one exists.
func (h *Handler) HandleTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requestID := chimiddleware.GetReqID(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	w.Header().Set("X-Request-ID", requestID)

	ctx, span := h.tracer.Start(ctx, "task.dispatch")
	defer span.End()
	span.SetAttributes(attribute.String("request_id", requestID))

	if missing := h.creds.Missing(); len(missing) > 0 {
		writeError(w, http.StatusInternalServerError,
			fmt.Sprintf("missing required settings: %s", strings.Join(missing, ", ")), "")
		return
	}

	var req task.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "")
		return
	}
	span.SetAttributes(attribute.String("task_type", string(req.Type)))

	result, err := h.dispatcher.Dispatch(ctx, &req)
	if err != nil {
		var unknownType *task.UnknownTypeError
		if errors.As(err, &unknownType) {
			writeError(w, http.StatusBadRequest, unknownType.Error(), "")
			return
		}

		log.Printf("task %s failed (request %s): %v", req.Type, requestID, err)

		var details string
		var apiErr *azure.APIError
		if errors.As(err, &apiErr) {
			details = fmt.Sprintf("provider returned status %d", apiErr.StatusCode)
		}
		writeError(w, http.StatusInternalServerError, err.Error(), details)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	body := map[string]string{"error": message}
	if details != "" {
		body["details"] = details
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
