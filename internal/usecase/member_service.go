package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/lifecycle"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/member"
	idgen "github.com/TiaanKleinhans/custom-golf-events/internal/platform/id"
)

type CreateMemberInput struct {
	Name     string
	Handicap *int
}

type UpdateMemberInput struct {
	MemberID string
	Name     string
	Handicap *int
}

type MemberService struct {
	memberRepo member.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewMemberService(memberRepo member.Repository, idGen idgen.Generator) *MemberService {
	return &MemberService{
		memberRepo: memberRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *MemberService) ListMembers(ctx context.Context) ([]member.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MemberService.ListMembers")
	defer span.End()

	items, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	return items, nil
}

func (s *MemberService) CreateMember(ctx context.Context, input CreateMemberInput) (member.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MemberService.CreateMember")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return member.Member{}, fmt.Errorf("%w: member name is required", ErrInvalidInput)
	}
	if input.Handicap != nil && *input.Handicap < 0 {
		return member.Member{}, fmt.Errorf("%w: handicap cannot be negative", ErrInvalidInput)
	}

	memberID, err := s.idGen.NewID("mbr")
	if err != nil {
		return member.Member{}, fmt.Errorf("generate member id: %w", err)
	}

	item := member.Member{
		ID:        memberID,
		Name:      input.Name,
		Handicap:  input.Handicap,
		Status:    lifecycle.Active,
		CreatedAt: s.now().UTC(),
	}
	if err := s.memberRepo.Create(ctx, item); err != nil {
		return member.Member{}, fmt.Errorf("create member: %w", err)
	}

	return item, nil
}

func (s *MemberService) UpdateMember(ctx context.Context, input UpdateMemberInput) (member.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MemberService.UpdateMember")
	defer span.End()

	input.MemberID = strings.TrimSpace(input.MemberID)
	input.Name = strings.TrimSpace(input.Name)
	if input.MemberID == "" {
		return member.Member{}, fmt.Errorf("%w: member id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return member.Member{}, fmt.Errorf("%w: member name is required", ErrInvalidInput)
	}
	if input.Handicap != nil && *input.Handicap < 0 {
		return member.Member{}, fmt.Errorf("%w: handicap cannot be negative", ErrInvalidInput)
	}

	item, exists, err := s.memberRepo.GetByID(ctx, input.MemberID)
	if err != nil {
		return member.Member{}, fmt.Errorf("get member: %w", err)
	}
	if !exists || item.Status.IsArchived() {
		return member.Member{}, fmt.Errorf("%w: member=%s", ErrNotFound, input.MemberID)
	}

	item.Name = input.Name
	item.Handicap = input.Handicap
	if err := s.memberRepo.Update(ctx, item); err != nil {
		return member.Member{}, fmt.Errorf("update member: %w", err)
	}

	return item, nil
}

// ArchiveMember soft deletes the member. Existing group memberships are
// left in place; archived members simply stop appearing in listings and
// standings.
func (s *MemberService) ArchiveMember(ctx context.Context, memberID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MemberService.ArchiveMember")
	defer span.End()

	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return fmt.Errorf("%w: member id is required", ErrInvalidInput)
	}

	_, exists, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return fmt.Errorf("get member: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: member=%s", ErrNotFound, memberID)
	}

	if err := s.memberRepo.Archive(ctx, memberID); err != nil {
		return fmt.Errorf("archive member: %w", err)
	}

	return nil
}
