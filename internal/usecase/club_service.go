package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/club"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/lifecycle"
	idgen "github.com/TiaanKleinhans/custom-golf-events/internal/platform/id"
)

type CreateClubInput struct {
	Name    string
	OrderBy *int
}

type UpdateClubInput struct {
	ClubID  string
	Name    string
	OrderBy *int
}

type ClubService struct {
	clubRepo club.Repository
	idGen    idgen.Generator
	now      func() time.Time
}

func NewClubService(clubRepo club.Repository, idGen idgen.Generator) *ClubService {
	return &ClubService{
		clubRepo: clubRepo,
		idGen:    idGen,
		now:      time.Now,
	}
}

func (s *ClubService) ListClubs(ctx context.Context) ([]club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.ListClubs")
	defer span.End()

	items, err := s.clubRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}

	return items, nil
}

func (s *ClubService) CreateClub(ctx context.Context, input CreateClubInput) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.CreateClub")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return club.Club{}, fmt.Errorf("%w: club name is required", ErrInvalidInput)
	}

	clubID, err := s.idGen.NewID("club")
	if err != nil {
		return club.Club{}, fmt.Errorf("generate club id: %w", err)
	}

	item := club.Club{
		ID:        clubID,
		Name:      input.Name,
		OrderBy:   input.OrderBy,
		Status:    lifecycle.Active,
		CreatedAt: s.now().UTC(),
	}
	if err := s.clubRepo.Create(ctx, item); err != nil {
		return club.Club{}, fmt.Errorf("create club: %w", err)
	}

	return item, nil
}

func (s *ClubService) UpdateClub(ctx context.Context, input UpdateClubInput) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.UpdateClub")
	defer span.End()

	input.ClubID = strings.TrimSpace(input.ClubID)
	input.Name = strings.TrimSpace(input.Name)
	if input.ClubID == "" {
		return club.Club{}, fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return club.Club{}, fmt.Errorf("%w: club name is required", ErrInvalidInput)
	}

	item, exists, err := s.clubRepo.GetByID(ctx, input.ClubID)
	if err != nil {
		return club.Club{}, fmt.Errorf("get club: %w", err)
	}
	if !exists || item.Status.IsArchived() {
		return club.Club{}, fmt.Errorf("%w: club=%s", ErrNotFound, input.ClubID)
	}

	item.Name = input.Name
	item.OrderBy = input.OrderBy
	if err := s.clubRepo.Update(ctx, item); err != nil {
		return club.Club{}, fmt.Errorf("update club: %w", err)
	}

	return item, nil
}

func (s *ClubService) ArchiveClub(ctx context.Context, clubID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.ArchiveClub")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}

	_, exists, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return fmt.Errorf("get club: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: club=%s", ErrNotFound, clubID)
	}

	if err := s.clubRepo.Archive(ctx, clubID); err != nil {
		return fmt.Errorf("archive club: %w", err)
	}

	return nil
}
