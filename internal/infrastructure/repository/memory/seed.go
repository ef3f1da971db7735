package memory

import (
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/club"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/event"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/group"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/hole"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/lifecycle"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/member"
)

const EventIDSpringOpen = "evt-spring-open-2026"

func intValue(v int) *int { return &v }

func SeedEvents() []event.Event {
	return []event.Event{
		{
			ID:        EventIDSpringOpen,
			Name:      "Spring Open",
			EventDate: time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC),
			Status:    lifecycle.Active,
			CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

func SeedHoles() []hole.Hole {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	return []hole.Hole{
		{ID: "hole-01", EventID: EventIDSpringOpen, Name: "Hole 1", Par: intValue(4), Description: "Dogleg left around the pond", Status: lifecycle.Active, CreatedAt: created},
		{ID: "hole-02", EventID: EventIDSpringOpen, Name: "Hole 2", Par: intValue(3), Description: "Short carry over the bunkers", Status: lifecycle.Active, CreatedAt: created.Add(time.Minute)},
		{ID: "hole-03", EventID: EventIDSpringOpen, Name: "Hole 3", Par: intValue(5), Description: "Long straight fairway", Status: lifecycle.Active, CreatedAt: created.Add(2 * time.Minute)},
	}
}

func SeedMembers() []member.Member {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return []member.Member{
		{ID: "mbr-ansie", Name: "Ansie du Toit", Handicap: intValue(12), Status: lifecycle.Active, CreatedAt: created},
		{ID: "mbr-bennie", Name: "Bennie Venter", Handicap: intValue(8), Status: lifecycle.Active, CreatedAt: created},
		{ID: "mbr-carla", Name: "Carla Nel", Handicap: intValue(15), Status: lifecycle.Active, CreatedAt: created},
		{ID: "mbr-dawid", Name: "Dawid Fourie", Handicap: intValue(20), Status: lifecycle.Active, CreatedAt: created},
		{ID: "mbr-elna", Name: "Elna Botha", Status: lifecycle.Active, CreatedAt: created},
		{ID: "mbr-frik", Name: "Frik Steyn", Handicap: intValue(5), Status: lifecycle.Active, CreatedAt: created},
	}
}

func SeedClubs() []club.Club {
	created := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	return []club.Club{
		{ID: "club-driver", Name: "Driver", OrderBy: intValue(1), Status: lifecycle.Active, CreatedAt: created},
		{ID: "club-3-wood", Name: "3 Wood", OrderBy: intValue(2), Status: lifecycle.Active, CreatedAt: created},
		{ID: "club-7-iron", Name: "7 Iron", OrderBy: intValue(3), Status: lifecycle.Active, CreatedAt: created},
		{ID: "club-wedge", Name: "Pitching Wedge", OrderBy: intValue(4), Status: lifecycle.Active, CreatedAt: created},
		{ID: "club-putter", Name: "Putter", Status: lifecycle.Active, CreatedAt: created},
	}
}

func SeedGroups() []group.Group {
	created := time.Date(2026, 4, 18, 8, 0, 0, 0, time.UTC)
	return []group.Group{
		{ID: "grp-eagles", Name: "The Eagles", Status: lifecycle.Active, CreatedAt: created},
		{ID: "grp-birdies", Name: "Birdie Hunters", Status: lifecycle.Active, CreatedAt: created.Add(time.Minute)},
		{ID: "grp-bogeys", Name: "Bogey Brigade", Status: lifecycle.Active, CreatedAt: created.Add(2 * time.Minute)},
	}
}

func SeedAssignments() []group.Assignment {
	return []group.Assignment{
		{HoleID: "hole-01", GroupID: "grp-eagles"},
		{HoleID: "hole-01", GroupID: "grp-birdies"},
		{HoleID: "hole-02", GroupID: "grp-bogeys"},
	}
}

func SeedMemberships() []group.Membership {
	return []group.Membership{
		{GroupID: "grp-eagles", MemberID: "mbr-ansie"},
		{GroupID: "grp-eagles", MemberID: "mbr-bennie"},
		{GroupID: "grp-birdies", MemberID: "mbr-carla"},
		{GroupID: "grp-birdies", MemberID: "mbr-dawid"},
		{GroupID: "grp-bogeys", MemberID: "mbr-elna"},
		{GroupID: "grp-bogeys", MemberID: "mbr-frik"},
	}
}

func SeedHoleClubs() map[string][]string {
	return map[string][]string{
		"hole-01": {"club-driver", "club-putter"},
		"hole-02": {"club-7-iron", "club-wedge", "club-putter"},
		"hole-03": {"club-driver", "club-3-wood", "club-putter"},
	}
}
