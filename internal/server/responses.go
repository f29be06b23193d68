package server

import (
	"context"
	"encoding/json"
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

type Meta struct {
	TraceID   string `json:"trace_id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

type RegisterOwnerRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RegisterVehicleRequest struct {
	Plate     string `json:"plate"`
	ModelYear int    `json:"model_year"`
	Color     string `json:"color"`
	OwnerID   string `json:"owner_id"`
	Category  string `json:"category"`
}

type RegisterServiceRequest struct {
	Plate     string `json:"plate"`
	EntryHour int    `json:"entry_hour"`
	ExitHour  int    `json:"exit_hour"`
}

type AccumulateHoursRequest struct {
	Hours int `json:"hours"`
}

type OwnerResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	AccumulatedHours int    `json:"accumulated_hours"`
	VIP              bool   `json:"vip"`
}

type VehicleResponse struct {
	Plate     string `json:"plate"`
	ModelYear int    `json:"model_year"`
	Color     string `json:"color"`
	Category  string `json:"category"`
	OwnerID   string `json:"owner_id"`
}

type ServiceResponse struct {
	Plate     string  `json:"plate"`
	EntryHour int     `json:"entry_hour"`
	ExitHour  int     `json:"exit_hour"`
	Hours     int     `json:"hours"`
	Cost      float64 `json:"cost"`
}

type StatsResponse struct {
	Owners       int            `json:"owners"`
	Vehicles     int            `json:"vehicles"`
	Services     int            `json:"services"`
	TotalRevenue float64        `json:"total_revenue"`
	VIPOwners    int            `json:"vip_owners"`
	TopOwner     *OwnerResponse `json:"top_owner,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func extractMeta(ctx context.Context) *Meta {
	meta := &Meta{}

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().HasTraceID() {
		meta.TraceID = span.SpanContext().TraceID().String()
	}

	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		meta.RequestID = reqID
	}

	return meta
}

func WriteSuccess(ctx context.Context, w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    extractMeta(ctx),
	})
}

func WriteError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Response{
		Success: false,
		Error:   message,
		Meta:    extractMeta(ctx),
	})
}
