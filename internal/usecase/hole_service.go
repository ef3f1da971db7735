package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/club"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/event"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/hole"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/lifecycle"
	idgen "github.com/TiaanKleinhans/custom-golf-events/internal/platform/id"
)

const (
	minPar = 3
	maxPar = 5
)

type CreateHoleInput struct {
	EventID     string
	Name        string
	Par         *int
	Description string
}

type UpdateHoleInput struct {
	HoleID      string
	Name        string
	Par         *int
	Description string
}

type HoleService struct {
	eventRepo event.Repository
	holeRepo  hole.Repository
	clubRepo  club.Repository
	idGen     idgen.Generator
	now       func() time.Time
}

func NewHoleService(eventRepo event.Repository, holeRepo hole.Repository, clubRepo club.Repository, idGen idgen.Generator) *HoleService {
	return &HoleService{
		eventRepo: eventRepo,
		holeRepo:  holeRepo,
		clubRepo:  clubRepo,
		idGen:     idGen,
		now:       time.Now,
	}
}

func (s *HoleService) ListHolesByEvent(ctx context.Context, eventID string) ([]hole.Hole, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HoleService.ListHolesByEvent")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	_, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	items, err := s.holeRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list holes by event: %w", err)
	}

	return items, nil
}

func (s *HoleService) GetHole(ctx context.Context, holeID string) (hole.Hole, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HoleService.GetHole")
	defer span.End()

	holeID = strings.TrimSpace(holeID)
	if holeID == "" {
		return hole.Hole{}, fmt.Errorf("%w: hole id is required", ErrInvalidInput)
	}

	item, exists, err := s.holeRepo.GetByID(ctx, holeID)
	if err != nil {
		return hole.Hole{}, fmt.Errorf("get hole: %w", err)
	}
	if !exists {
		return hole.Hole{}, fmt.Errorf("%w: hole=%s", ErrNotFound, holeID)
	}

	return item, nil
}

func (s *HoleService) CreateHole(ctx context.Context, input CreateHoleInput) (hole.Hole, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HoleService.CreateHole")
	defer span.End()

	input.EventID = strings.TrimSpace(input.EventID)
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	if input.EventID == "" {
		return hole.Hole{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return hole.Hole{}, fmt.Errorf("%w: hole name is required", ErrInvalidInput)
	}
	if err := validatePar(input.Par); err != nil {
		return hole.Hole{}, err
	}

	item, exists, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return hole.Hole{}, fmt.Errorf("get event: %w", err)
	}
	if !exists || item.Status.IsArchived() {
		return hole.Hole{}, fmt.Errorf("%w: event=%s", ErrNotFound, input.EventID)
	}

	holeID, err := s.idGen.NewID("hole")
	if err != nil {
		return hole.Hole{}, fmt.Errorf("generate hole id: %w", err)
	}

	created := hole.Hole{
		ID:          holeID,
		EventID:     input.EventID,
		Name:        input.Name,
		Par:         input.Par,
		Description: input.Description,
		Status:      lifecycle.Active,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.holeRepo.Create(ctx, created); err != nil {
		return hole.Hole{}, fmt.Errorf("create hole: %w", err)
	}

	return created, nil
}

func (s *HoleService) UpdateHole(ctx context.Context, input UpdateHoleInput) (hole.Hole, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HoleService.UpdateHole")
	defer span.End()

	input.HoleID = strings.TrimSpace(input.HoleID)
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	if input.HoleID == "" {
		return hole.Hole{}, fmt.Errorf("%w: hole id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return hole.Hole{}, fmt.Errorf("%w: hole name is required", ErrInvalidInput)
	}
	if err := validatePar(input.Par); err != nil {
		return hole.Hole{}, err
	}

	item, exists, err := s.holeRepo.GetByID(ctx, input.HoleID)
	if err != nil {
		return hole.Hole{}, fmt.Errorf("get hole: %w", err)
	}
	if !exists || item.Status.IsArchived() {
		return hole.Hole{}, fmt.Errorf("%w: hole=%s", ErrNotFound, input.HoleID)
	}

	item.Name = input.Name
	item.Par = input.Par
	item.Description = input.Description
	if err := s.holeRepo.Update(ctx, item); err != nil {
		return hole.Hole{}, fmt.Errorf("update hole: %w", err)
	}

	return item, nil
}

func (s *HoleService) ArchiveHole(ctx context.Context, holeID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.HoleService.ArchiveHole")
	defer span.End()

	holeID = strings.TrimSpace(holeID)
	if holeID == "" {
		return fmt.Errorf("%w: hole id is required", ErrInvalidInput)
	}

	_, exists, err := s.holeRepo.GetByID(ctx, holeID)
	if err != nil {
		return fmt.Errorf("get hole: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: hole=%s", ErrNotFound, holeID)
	}

	if err := s.holeRepo.Archive(ctx, holeID); err != nil {
		return fmt.Errorf("archive hole: %w", err)
	}

	return nil
}

// ReplaceHoleClubs swaps the full set of clubs allowed on the hole.
func (s *HoleService) ReplaceHoleClubs(ctx context.Context, holeID string, clubIDs []string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.HoleService.ReplaceHoleClubs")
	defer span.End()

	holeID = strings.TrimSpace(holeID)
	if holeID == "" {
		return fmt.Errorf("%w: hole id is required", ErrInvalidInput)
	}
	clubIDs = dedupeIDs(clubIDs)

	item, exists, err := s.holeRepo.GetByID(ctx, holeID)
	if err != nil {
		return fmt.Errorf("get hole: %w", err)
	}
	if !exists || item.Status.IsArchived() {
		return fmt.Errorf("%w: hole=%s", ErrNotFound, holeID)
	}

	if len(clubIDs) > 0 {
		clubs, err := s.clubRepo.ListByIDs(ctx, clubIDs)
		if err != nil {
			return fmt.Errorf("list clubs for hole assignment: %w", err)
		}
		if len(clubs) != len(clubIDs) {
			return fmt.Errorf("%w: one or more clubs do not exist", ErrInvalidInput)
		}
	}

	if err := s.holeRepo.ReplaceClubs(ctx, holeID, clubIDs); err != nil {
		return fmt.Errorf("replace hole clubs: %w", err)
	}

	return nil
}

func (s *HoleService) ListHoleClubs(ctx context.Context, holeID string) ([]club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HoleService.ListHoleClubs")
	defer span.End()

	holeID = strings.TrimSpace(holeID)
	if holeID == "" {
		return nil, fmt.Errorf("%w: hole id is required", ErrInvalidInput)
	}

	_, exists, err := s.holeRepo.GetByID(ctx, holeID)
	if err != nil {
		return nil, fmt.Errorf("get hole: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: hole=%s", ErrNotFound, holeID)
	}

	clubIDs, err := s.holeRepo.ListClubIDs(ctx, holeID)
	if err != nil {
		return nil, fmt.Errorf("list hole club ids: %w", err)
	}
	if len(clubIDs) == 0 {
		return []club.Club{}, nil
	}

	clubs, err := s.clubRepo.ListByIDs(ctx, clubIDs)
	if err != nil {
		return nil, fmt.Errorf("list clubs by ids: %w", err)
	}

	return clubs, nil
}

func validatePar(par *int) error {
	if par == nil {
		return nil
	}
	if *par < minPar || *par > maxPar {
		return fmt.Errorf("%w: par must be between %d and %d", ErrInvalidInput, minPar, maxPar)
	}
	return nil
}

func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, exists := seen[id]; exists {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
