package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/club"
	"github.com/TiaanKleinhans/custom-golf-events/internal/usecase"
)

type clubDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OrderBy   *int      `json:"order_by,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type upsertClubRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	OrderBy *int   `json:"order_by" validate:"omitempty,min=0"`
}

func (h *Handler) ListClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubs")
	defer span.End()

	clubs, err := h.clubService.ListClubs(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list clubs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]clubDTO, 0, len(clubs))
	for _, item := range clubs {
		items = append(items, clubToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateClub")
	defer span.End()

	var req upsertClubRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.clubService.CreateClub(ctx, usecase.CreateClubInput{
		Name:    req.Name,
		OrderBy: req.OrderBy,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create club failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, clubToDTO(item))
}

func (h *Handler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateClub")
	defer span.End()

	clubID := strings.TrimSpace(r.PathValue("clubID"))
	var req upsertClubRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.clubService.UpdateClub(ctx, usecase.UpdateClubInput{
		ClubID:  clubID,
		Name:    req.Name,
		OrderBy: req.OrderBy,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update club failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubToDTO(item))
}

func (h *Handler) ArchiveClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ArchiveClub")
	defer span.End()

	clubID := strings.TrimSpace(r.PathValue("clubID"))
	if err := h.clubService.ArchiveClub(ctx, clubID); err != nil {
		h.logger.WarnContext(ctx, "archive club failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"archived": true})
}

func clubToDTO(item club.Club) clubDTO {
	return clubDTO{
		ID:        item.ID,
		Name:      item.Name,
		OrderBy:   item.OrderBy,
		Status:    string(item.Status),
		CreatedAt: item.CreatedAt,
	}
}
