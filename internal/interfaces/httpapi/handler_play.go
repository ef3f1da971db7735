package httpapi

import (
	"net/http"
	"strings"

	"github.com/TiaanKleinhans/custom-golf-events/internal/usecase"
)

type saveHoleScoresRequest struct {
	Scores []holeScoreRecord `json:"scores" validate:"required,min=1,dive"`
}

type holeScoreRecord struct {
	GroupID string `json:"group_id" validate:"required"`
	// Score null clears the group's result for the hole.
	Score *int `json:"score"`
}

type scoreboardRowDTO struct {
	GroupID   string      `json:"group_id"`
	GroupName string      `json:"group_name"`
	Members   []memberDTO `json:"members"`
	Score     *int        `json:"score,omitempty"`
	Points    *int        `json:"points,omitempty"`
}

type scoreboardDTO struct {
	HoleID   string             `json:"hole_id"`
	HoleName string             `json:"hole_name"`
	Rows     []scoreboardRowDTO `json:"rows"`
}

func (h *Handler) SaveHoleScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveHoleScores")
	defer span.End()

	holeID := strings.TrimSpace(r.PathValue("holeID"))
	var req saveHoleScoresRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	scores := make([]usecase.HoleScoreInput, 0, len(req.Scores))
	for _, record := range req.Scores {
		scores = append(scores, usecase.HoleScoreInput{
			GroupID: record.GroupID,
			Score:   record.Score,
		})
	}

	if err := h.playService.SaveHoleScores(ctx, usecase.SaveHoleScoresInput{
		HoleID: holeID,
		Scores: scores,
	}); err != nil {
		h.logger.WarnContext(ctx, "save hole scores failed", "hole_id", holeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	scoreboard, err := h.playService.GetHoleScoreboard(ctx, holeID)
	if err != nil {
		h.logger.WarnContext(ctx, "scoreboard after save failed", "hole_id", holeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoreboardToDTO(scoreboard))
}

func (h *Handler) GetHoleScoreboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHoleScoreboard")
	defer span.End()

	holeID := strings.TrimSpace(r.PathValue("holeID"))
	scoreboard, err := h.playService.GetHoleScoreboard(ctx, holeID)
	if err != nil {
		h.logger.WarnContext(ctx, "get scoreboard failed", "hole_id", holeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoreboardToDTO(scoreboard))
}

func scoreboardToDTO(scoreboard usecase.HoleScoreboard) scoreboardDTO {
	rows := make([]scoreboardRowDTO, 0, len(scoreboard.Rows))
	for _, row := range scoreboard.Rows {
		members := make([]memberDTO, 0, len(row.Members))
		for _, m := range row.Members {
			members = append(members, memberToDTO(m))
		}
		rows = append(rows, scoreboardRowDTO{
			GroupID:   row.GroupID,
			GroupName: row.GroupName,
			Members:   members,
			Score:     row.Score,
			Points:    row.Points,
		})
	}

	return scoreboardDTO{
		HoleID:   scoreboard.HoleID,
		HoleName: scoreboard.HoleName,
		Rows:     rows,
	}
}
