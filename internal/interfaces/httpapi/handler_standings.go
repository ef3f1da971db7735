package httpapi

import (
	"net/http"
	"strings"

	"github.com/TiaanKleinhans/custom-golf-events/internal/usecase"
)

type trajectoryPointDTO struct {
	HoleID           string `json:"hole_id"`
	HoleName         string `json:"hole_name"`
	CumulativePoints int    `json:"cumulative_points"`
}

type memberStandingDTO struct {
	MemberID    string               `json:"member_id"`
	MemberName  string               `json:"member_name"`
	TotalPoints int                  `json:"total_points"`
	Rank        int                  `json:"rank"`
	Winner      bool                 `json:"winner"`
	Trajectory  []trajectoryPointDTO `json:"trajectory"`
}

type leaderboardDTO struct {
	EventID   string              `json:"event_id"`
	Standings []memberStandingDTO `json:"standings"`
	WinnerTie bool                `json:"winner_tie"`
}

type memberTotalDTO struct {
	MemberID    string `json:"member_id"`
	MemberName  string `json:"member_name"`
	TotalPoints int    `json:"total_points"`
	Rank        int    `json:"rank"`
	Winner      bool   `json:"winner"`
}

type eventResultsDTO struct {
	EventID   string           `json:"event_id"`
	Totals    []memberTotalDTO `json:"totals"`
	WinnerTie bool             `json:"winner_tie"`
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	leaderboard, err := h.standingsService.Leaderboard(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "leaderboard failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(leaderboard))
}

func (h *Handler) GetEventResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEventResults")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	results, err := h.standingsService.Results(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "event results failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultsToDTO(results))
}

func leaderboardToDTO(leaderboard usecase.Leaderboard) leaderboardDTO {
	standings := make([]memberStandingDTO, 0, len(leaderboard.Standings))
	for _, standing := range leaderboard.Standings {
		trajectory := make([]trajectoryPointDTO, 0, len(standing.Trajectory))
		for _, point := range standing.Trajectory {
			trajectory = append(trajectory, trajectoryPointDTO{
				HoleID:           point.HoleID,
				HoleName:         point.HoleName,
				CumulativePoints: point.CumulativePoints,
			})
		}
		standings = append(standings, memberStandingDTO{
			MemberID:    standing.MemberID,
			MemberName:  standing.MemberName,
			TotalPoints: standing.TotalPoints,
			Rank:        standing.Rank,
			Winner:      standing.Winner,
			Trajectory:  trajectory,
		})
	}

	return leaderboardDTO{
		EventID:   leaderboard.EventID,
		Standings: standings,
		WinnerTie: leaderboard.WinnerTie,
	}
}

func resultsToDTO(results usecase.EventResults) eventResultsDTO {
	totals := make([]memberTotalDTO, 0, len(results.Totals))
	for _, total := range results.Totals {
		totals = append(totals, memberTotalDTO{
			MemberID:    total.MemberID,
			MemberName:  total.MemberName,
			TotalPoints: total.TotalPoints,
			Rank:        total.Rank,
			Winner:      total.Winner,
		})
	}

	return eventResultsDTO{
		EventID:   results.EventID,
		Totals:    totals,
		WinnerTie: results.WinnerTie,
	}
}
