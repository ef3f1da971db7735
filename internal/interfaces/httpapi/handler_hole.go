package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/hole"
	"github.com/TiaanKleinhans/custom-golf-events/internal/usecase"
)

type holeDTO struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	Name        string    `json:"name"`
	Par         *int      `json:"par,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type upsertHoleRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Par         *int   `json:"par" validate:"omitempty,min=3,max=5"`
	Description string `json:"description" validate:"max=2000"`
}

type replaceHoleClubsRequest struct {
	ClubIDs []string `json:"club_ids" validate:"required,dive,required"`
}

func (h *Handler) ListHolesByEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListHolesByEvent")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	holes, err := h.holeService.ListHolesByEvent(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "list holes failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]holeDTO, 0, len(holes))
	for _, item := range holes {
		items = append(items, holeToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetHole(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHole")
	defer span.End()

	holeID := strings.TrimSpace(r.PathValue("holeID"))
	item, err := h.holeService.GetHole(ctx, holeID)
	if err != nil {
		h.logger.WarnContext(ctx, "get hole failed", "hole_id", holeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, holeToDTO(item))
}

func (h *Handler) CreateHole(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateHole")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	var req upsertHoleRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.holeService.CreateHole(ctx, usecase.CreateHoleInput{
		EventID:     eventID,
		Name:        req.Name,
		Par:         req.Par,
		Description: req.Description,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create hole failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, holeToDTO(item))
}

func (h *Handler) UpdateHole(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateHole")
	defer span.End()

	holeID := strings.TrimSpace(r.PathValue("holeID"))
	var req upsertHoleRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.holeService.UpdateHole(ctx, usecase.UpdateHoleInput{
		HoleID:      holeID,
		Name:        req.Name,
		Par:         req.Par,
		Description: req.Description,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update hole failed", "hole_id", holeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, holeToDTO(item))
}

func (h *Handler) ArchiveHole(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ArchiveHole")
	defer span.End()

	holeID := strings.TrimSpace(r.PathValue("holeID"))
	if err := h.holeService.ArchiveHole(ctx, holeID); err != nil {
		h.logger.WarnContext(ctx, "archive hole failed", "hole_id", holeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"archived": true})
}

func (h *Handler) ReplaceHoleClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReplaceHoleClubs")
	defer span.End()

	holeID := strings.TrimSpace(r.PathValue("holeID"))
	var req replaceHoleClubsRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.holeService.ReplaceHoleClubs(ctx, holeID, req.ClubIDs); err != nil {
		h.logger.WarnContext(ctx, "replace hole clubs failed", "hole_id", holeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"replaced": true})
}

func (h *Handler) ListHoleClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListHoleClubs")
	defer span.End()

	holeID := strings.TrimSpace(r.PathValue("holeID"))
	clubs, err := h.holeService.ListHoleClubs(ctx, holeID)
	if err != nil {
		h.logger.WarnContext(ctx, "list hole clubs failed", "hole_id", holeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]clubDTO, 0, len(clubs))
	for _, item := range clubs {
		items = append(items, clubToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func holeToDTO(item hole.Hole) holeDTO {
	return holeDTO{
		ID:          item.ID,
		EventID:     item.EventID,
		Name:        item.Name,
		Par:         item.Par,
		Description: item.Description,
		Status:      string(item.Status),
		CreatedAt:   item.CreatedAt,
	}
}
