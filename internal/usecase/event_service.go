package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/event"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/hole"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/lifecycle"
	idgen "github.com/TiaanKleinhans/custom-golf-events/internal/platform/id"
)

type CreateEventInput struct {
	Name      string
	EventDate time.Time
}

type UpdateEventInput struct {
	EventID   string
	Name      string
	EventDate time.Time
}

type EventService struct {
	eventRepo event.Repository
	holeRepo  hole.Repository
	idGen     idgen.Generator
	now       func() time.Time
}

func NewEventService(eventRepo event.Repository, holeRepo hole.Repository, idGen idgen.Generator) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		holeRepo:  holeRepo,
		idGen:     idGen,
		now:       time.Now,
	}
}

func (s *EventService) ListEvents(ctx context.Context) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.ListEvents")
	defer span.End()

	items, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return items, nil
}

func (s *EventService) GetEvent(ctx context.Context, eventID string) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.GetEvent")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return event.Event{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	item, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return event.Event{}, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return event.Event{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	return item, nil
}

func (s *EventService) CreateEvent(ctx context.Context, input CreateEventInput) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.CreateEvent")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return event.Event{}, fmt.Errorf("%w: event name is required", ErrInvalidInput)
	}
	if input.EventDate.IsZero() {
		return event.Event{}, fmt.Errorf("%w: event date is required", ErrInvalidInput)
	}

	eventID, err := s.idGen.NewID("evt")
	if err != nil {
		return event.Event{}, fmt.Errorf("generate event id: %w", err)
	}

	item := event.Event{
		ID:        eventID,
		Name:      input.Name,
		EventDate: input.EventDate,
		Status:    lifecycle.Active,
		CreatedAt: s.now().UTC(),
	}
	if err := s.eventRepo.Create(ctx, item); err != nil {
		return event.Event{}, fmt.Errorf("create event: %w", err)
	}

	return item, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, input UpdateEventInput) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.UpdateEvent")
	defer span.End()

	input.EventID = strings.TrimSpace(input.EventID)
	input.Name = strings.TrimSpace(input.Name)
	if input.EventID == "" {
		return event.Event{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return event.Event{}, fmt.Errorf("%w: event name is required", ErrInvalidInput)
	}
	if input.EventDate.IsZero() {
		return event.Event{}, fmt.Errorf("%w: event date is required", ErrInvalidInput)
	}

	item, exists, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return event.Event{}, fmt.Errorf("get event: %w", err)
	}
	if !exists || item.Status.IsArchived() {
		return event.Event{}, fmt.Errorf("%w: event=%s", ErrNotFound, input.EventID)
	}

	item.Name = input.Name
	item.EventDate = input.EventDate
	if err := s.eventRepo.Update(ctx, item); err != nil {
		return event.Event{}, fmt.Errorf("update event: %w", err)
	}

	return item, nil
}

// ArchiveEvent soft deletes the event together with its holes. Groups
// linked to the archived holes keep their data but drop out of listings
// with the holes.
func (s *EventService) ArchiveEvent(ctx context.Context, eventID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.ArchiveEvent")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	_, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	if err := s.eventRepo.Archive(ctx, eventID); err != nil {
		return fmt.Errorf("archive event: %w", err)
	}
	if err := s.holeRepo.ArchiveByEvent(ctx, eventID); err != nil {
		return fmt.Errorf("archive holes of event=%s: %w", eventID, err)
	}

	return nil
}
