package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/event"
	"github.com/TiaanKleinhans/custom-golf-events/internal/usecase"
)

const eventDateLayout = "2006-01-02"

type eventDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	EventDate string    `json:"event_date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type upsertEventRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	EventDate string `json:"event_date" validate:"required,datetime=2006-01-02"`
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEvents")
	defer span.End()

	events, err := h.eventService.ListEvents(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list events failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]eventDTO, 0, len(events))
	for _, e := range events {
		items = append(items, eventToDTO(e))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEvent")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	item, err := h.eventService.GetEvent(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "get event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(item))
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateEvent")
	defer span.End()

	var req upsertEventRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.eventService.CreateEvent(ctx, usecase.CreateEventInput{
		Name:      req.Name,
		EventDate: eventDate,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create event failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, eventToDTO(item))
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateEvent")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	var req upsertEventRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.eventService.UpdateEvent(ctx, usecase.UpdateEventInput{
		EventID:   eventID,
		Name:      req.Name,
		EventDate: eventDate,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(item))
}

func (h *Handler) ArchiveEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ArchiveEvent")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	if err := h.eventService.ArchiveEvent(ctx, eventID); err != nil {
		h.logger.WarnContext(ctx, "archive event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"archived": true})
}

func parseEventDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(eventDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: event_date must be %s", usecase.ErrInvalidInput, eventDateLayout)
	}
	return parsed, nil
}

func eventToDTO(item event.Event) eventDTO {
	return eventDTO{
		ID:        item.ID,
		Name:      item.Name,
		EventDate: item.EventDate.Format(eventDateLayout),
		Status:    string(item.Status),
		CreatedAt: item.CreatedAt,
	}
}
