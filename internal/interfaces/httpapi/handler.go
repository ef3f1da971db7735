package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/TiaanKleinhans/custom-golf-events/internal/platform/logging"
	"github.com/TiaanKleinhans/custom-golf-events/internal/platform/notify"
	"github.com/TiaanKleinhans/custom-golf-events/internal/usecase"
)

type Handler struct {
	eventService     *usecase.EventService
	holeService      *usecase.HoleService
	groupService     *usecase.GroupService
	memberService    *usecase.MemberService
	clubService      *usecase.ClubService
	playService      *usecase.PlayService
	standingsService *usecase.StandingsService
	hub              *notify.Hub
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	eventService *usecase.EventService,
	holeService *usecase.HoleService,
	groupService *usecase.GroupService,
	memberService *usecase.MemberService,
	clubService *usecase.ClubService,
	playService *usecase.PlayService,
	standingsService *usecase.StandingsService,
	hub *notify.Hub,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		eventService:     eventService,
		holeService:      holeService,
		groupService:     groupService,
		memberService:    memberService,
		clubService:      clubService,
		playService:      playService,
		standingsService: standingsService,
		hub:              hub,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// AdminVerify lets the admin UI check a PIN before showing editing
// controls. The PIN middleware has already run by the time this executes.
func (h *Handler) AdminVerify(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminVerify")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"admin": true})
}

func (h *Handler) decodeRequest(body io.Reader, payload any) error {
	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
