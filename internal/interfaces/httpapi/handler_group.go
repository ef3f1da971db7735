package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/group"
	"github.com/TiaanKleinhans/custom-golf-events/internal/usecase"
)

type groupDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Score     *int      `json:"score,omitempty"`
	Points    *int      `json:"points,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type createGroupRequest struct {
	Name      string   `json:"name" validate:"required,max=200"`
	MemberIDs []string `json:"member_ids" validate:"omitempty,dive,required"`
}

type updateGroupRequest struct {
	Name string `json:"name" validate:"required,max=200"`
	// MemberIDs omitted leaves the member set untouched; an empty array
	// clears it.
	MemberIDs []string `json:"member_ids" validate:"omitempty,dive,required"`
}

func (h *Handler) ListGroupsByHole(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGroupsByHole")
	defer span.End()

	holeID := strings.TrimSpace(r.PathValue("holeID"))
	groups, err := h.groupService.ListGroupsByHole(ctx, holeID)
	if err != nil {
		h.logger.WarnContext(ctx, "list groups failed", "hole_id", holeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]groupDTO, 0, len(groups))
	for _, item := range groups {
		items = append(items, groupToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGroup")
	defer span.End()

	groupID := strings.TrimSpace(r.PathValue("groupID"))
	item, err := h.groupService.GetGroup(ctx, groupID)
	if err != nil {
		h.logger.WarnContext(ctx, "get group failed", "group_id", groupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, groupToDTO(item))
}

func (h *Handler) ListGroupMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGroupMembers")
	defer span.End()

	groupID := strings.TrimSpace(r.PathValue("groupID"))
	members, err := h.groupService.ListGroupMembers(ctx, groupID)
	if err != nil {
		h.logger.WarnContext(ctx, "list group members failed", "group_id", groupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]memberDTO, 0, len(members))
	for _, item := range members {
		items = append(items, memberToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGroup")
	defer span.End()

	holeID := strings.TrimSpace(r.PathValue("holeID"))
	var req createGroupRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.groupService.CreateGroup(ctx, usecase.CreateGroupInput{
		HoleID:    holeID,
		Name:      req.Name,
		MemberIDs: req.MemberIDs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create group failed", "hole_id", holeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, groupToDTO(item))
}

func (h *Handler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateGroup")
	defer span.End()

	groupID := strings.TrimSpace(r.PathValue("groupID"))
	var req updateGroupRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.groupService.UpdateGroup(ctx, usecase.UpdateGroupInput{
		GroupID:   groupID,
		Name:      req.Name,
		MemberIDs: req.MemberIDs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update group failed", "group_id", groupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, groupToDTO(item))
}

func (h *Handler) ArchiveGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ArchiveGroup")
	defer span.End()

	groupID := strings.TrimSpace(r.PathValue("groupID"))
	if err := h.groupService.ArchiveGroup(ctx, groupID); err != nil {
		h.logger.WarnContext(ctx, "archive group failed", "group_id", groupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"archived": true})
}

func groupToDTO(item group.Group) groupDTO {
	return groupDTO{
		ID:        item.ID,
		Name:      item.Name,
		Score:     item.Score,
		Points:    item.Points,
		Status:    string(item.Status),
		CreatedAt: item.CreatedAt,
	}
}
