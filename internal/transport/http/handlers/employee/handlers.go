package employeehandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/employee"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
)

type Handler struct {
	Service *employee.Service
}

func NewHandler(service *employee.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/employees", h.handleListEmployees)
	r.Post("/employees", h.handleCreateEmployee)
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		slog.Error("list employees failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch employees")
		return
	}
	api.Success(w, employees)
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var raw employee.RawEmployee
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.Service.Create(r.Context(), raw)
	if err != nil {
		var vErr *employee.ValidationError
		if errors.As(err, &vErr) {
			api.Fail(w, http.StatusBadRequest, "Missing required field: "+vErr.Field)
			return
		}
		slog.Error("create employee failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Failed to add employee")
		return
	}
	api.Created(w, created)
}
