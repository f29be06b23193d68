package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"parking-facility/internal/parking"

	"github.com/go-chi/chi/v5"
)

func getServiceName() string {
	if name := os.Getenv("OTEL_SERVICE_NAME"); name != "" {
		return name
	}
	return "parking-facility-service"
}

type Handler struct {
	facility *parking.InstrumentedFacility
}

func NewHandler(facility *parking.InstrumentedFacility) *Handler {
	return &Handler{facility: facility}
}

func ownerResponse(owner *parking.Owner) *OwnerResponse {
	return &OwnerResponse{
		ID:               owner.ID,
		Name:             owner.Name,
		AccumulatedHours: owner.AccumulatedHours,
		VIP:              owner.IsVIP(),
	}
}

func vehicleResponse(vehicle *parking.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		Plate:     vehicle.Plate,
		ModelYear: vehicle.ModelYear,
		Color:     vehicle.Color,
		Category:  string(vehicle.Category),
		OwnerID:   vehicle.Owner.ID,
	}
}

func serviceResponse(service *parking.Service) *ServiceResponse {
	return &ServiceResponse{
		Plate:     service.Vehicle.Plate,
		EntryHour: service.EntryHour,
		ExitHour:  service.ExitHour,
		Hours:     service.Hours(),
		Cost:      service.Cost,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": getServiceName(),
		"meta":    extractMeta(r.Context()),
	})
}

func (h *Handler) RegisterOwner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req RegisterOwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ID == "" {
		WriteError(ctx, w, http.StatusBadRequest, "Owner id is required")
		return
	}

	if err := h.facility.RegisterOwner(ctx, req.ID, req.Name); err != nil {
		WriteError(ctx, w, http.StatusConflict, err.Error())
		return
	}

	WriteSuccess(ctx, w, "Owner registered successfully", map[string]any{
		"id":   req.ID,
		"name": req.Name,
	})
}

func (h *Handler) ListOwners(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	owners := h.facility.Owners()
	resp := make([]*OwnerResponse, 0, len(owners))
	for _, owner := range owners {
		resp = append(resp, ownerResponse(owner))
	}

	WriteSuccess(ctx, w, "Owners retrieved successfully", resp)
}

func (h *Handler) GetOwner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if id == "" {
		WriteError(ctx, w, http.StatusBadRequest, "Owner id is required")
		return
	}

	owner, err := h.facility.FindOwner(ctx, id)
	if err != nil {
		WriteError(ctx, w, http.StatusNotFound, "Owner not found")
		return
	}

	WriteSuccess(ctx, w, "Owner found", ownerResponse(owner))
}

func (h *Handler) AccumulateHours(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if id == "" {
		WriteError(ctx, w, http.StatusBadRequest, "Owner id is required")
		return
	}

	var req AccumulateHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.facility.AccumulateHours(ctx, id, req.Hours); err != nil {
		WriteError(ctx, w, http.StatusNotFound, "Owner not found")
		return
	}

	owner, err := h.facility.FindOwner(ctx, id)
	if err != nil {
		WriteError(ctx, w, http.StatusNotFound, "Owner not found")
		return
	}

	WriteSuccess(ctx, w, "Hours accumulated successfully", ownerResponse(owner))
}

func (h *Handler) RegisterVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req RegisterVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Plate == "" || req.OwnerID == "" {
		WriteError(ctx, w, http.StatusBadRequest, "Plate and owner_id are required")
		return
	}

	category, err := parking.ParseCategory(req.Category)
	if err != nil {
		WriteError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.facility.RegisterVehicle(ctx, req.Plate, req.ModelYear, req.Color, req.OwnerID, category)
	if err != nil {
		switch {
		case errors.Is(err, parking.ErrVehicleExists):
			WriteError(ctx, w, http.StatusConflict, err.Error())
		case errors.Is(err, parking.ErrOwnerNotFound):
			WriteError(ctx, w, http.StatusNotFound, err.Error())
		default:
			WriteError(ctx, w, http.StatusBadRequest, err.Error())
		}
		return
	}

	WriteSuccess(ctx, w, "Vehicle registered successfully", map[string]any{
		"plate":    req.Plate,
		"owner_id": req.OwnerID,
		"category": string(category),
	})
}

func (h *Handler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vehicles := h.facility.Vehicles()
	resp := make([]*VehicleResponse, 0, len(vehicles))
	for _, vehicle := range vehicles {
		resp = append(resp, vehicleResponse(vehicle))
	}

	WriteSuccess(ctx, w, "Vehicles retrieved successfully", resp)
}

func (h *Handler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	plate := chi.URLParam(r, "plate")
	if plate == "" {
		WriteError(ctx, w, http.StatusBadRequest, "Vehicle plate is required")
		return
	}

	vehicle, err := h.facility.FindVehicle(ctx, plate)
	if err != nil {
		WriteError(ctx, w, http.StatusNotFound, "Vehicle not found")
		return
	}

	WriteSuccess(ctx, w, "Vehicle found", vehicleResponse(vehicle))
}

func (h *Handler) RegisterService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req RegisterServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Plate == "" {
		WriteError(ctx, w, http.StatusBadRequest, "Vehicle plate is required")
		return
	}

	cost, err := h.facility.RegisterService(ctx, req.Plate, req.EntryHour, req.ExitHour)
	if err != nil {
		if errors.Is(err, parking.ErrVehicleNotFound) {
			WriteError(ctx, w, http.StatusNotFound, err.Error())
		} else {
			WriteError(ctx, w, http.StatusBadRequest, err.Error())
		}
		return
	}

	WriteSuccess(ctx, w, "Service registered successfully", map[string]any{
		"plate":      req.Plate,
		"entry_hour": req.EntryHour,
		"exit_hour":  req.ExitHour,
		"hours":      req.ExitHour - req.EntryHour,
		"cost":       cost,
	})
}

func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	services := h.facility.Services()
	resp := make([]*ServiceResponse, 0, len(services))
	for _, service := range services {
		resp = append(resp, serviceResponse(service))
	}

	WriteSuccess(ctx, w, "Services retrieved successfully", resp)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	revenue, vipCount, topOwner := h.facility.Stats(ctx)

	resp := StatsResponse{
		Owners:       len(h.facility.Owners()),
		Vehicles:     len(h.facility.Vehicles()),
		Services:     len(h.facility.Services()),
		TotalRevenue: revenue,
		VIPOwners:    vipCount,
	}
	if topOwner != nil {
		resp.TopOwner = ownerResponse(topOwner)
	}

	WriteSuccess(ctx, w, "Stats retrieved successfully", resp)
}
