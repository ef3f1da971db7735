package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/member"
	"github.com/TiaanKleinhans/custom-golf-events/internal/usecase"
)

type memberDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Handicap  *int      `json:"handicap,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type upsertMemberRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Handicap *int   `json:"handicap" validate:"omitempty,min=0,max=54"`
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMembers")
	defer span.End()

	members, err := h.memberService.ListMembers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list members failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]memberDTO, 0, len(members))
	for _, item := range members {
		items = append(items, memberToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMember")
	defer span.End()

	var req upsertMemberRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.memberService.CreateMember(ctx, usecase.CreateMemberInput{
		Name:     req.Name,
		Handicap: req.Handicap,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create member failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, memberToDTO(item))
}

func (h *Handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMember")
	defer span.End()

	memberID := strings.TrimSpace(r.PathValue("memberID"))
	var req upsertMemberRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.memberService.UpdateMember(ctx, usecase.UpdateMemberInput{
		MemberID: memberID,
		Name:     req.Name,
		Handicap: req.Handicap,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update member failed", "member_id", memberID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, memberToDTO(item))
}

func (h *Handler) ArchiveMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ArchiveMember")
	defer span.End()

	memberID := strings.TrimSpace(r.PathValue("memberID"))
	if err := h.memberService.ArchiveMember(ctx, memberID); err != nil {
		h.logger.WarnContext(ctx, "archive member failed", "member_id", memberID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"archived": true})
}

func memberToDTO(item member.Member) memberDTO {
	return memberDTO{
		ID:        item.ID,
		Name:      item.Name,
		Handicap:  item.Handicap,
		Status:    string(item.Status),
		CreatedAt: item.CreatedAt,
	}
}
