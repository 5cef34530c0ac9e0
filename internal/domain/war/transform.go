package war

import (
	"errors"
	"fmt"
	"time"

	"clashberry_api/internal/app"
)

// ErrMissingMapPosition is returned when a roster member has no map position.
// Sorting must be total, so no position is invented.
var ErrMissingMapPosition = errors.New("war member has no map position")

// TransformWar converts a currentwar document into the client-facing report.
// now drives the time remaining computation.
func TransformWar(raw app.CurrentWar, now time.Time) (app.WarReport, error) {
	report := app.WarReport{
		State:    raw.State,
		TeamSize: raw.TeamSize,
	}

	if timestamp, ok := timerSource(WarState(raw.State), raw.StartTime, raw.EndTime); ok {
		if remaining, label, ok := CalculateTimeRemaining(timestamp, now); ok {
			report.TimeRemaining = &remaining
			report.TimeLabel = &label
		}
	}

	report.WarType, report.CWLRound = ClassifyWarType(raw.AttacksPerMember)

	clan, err := TransformClan(raw.Clan)
	if err != nil {
		return app.WarReport{}, fmt.Errorf("failed to transform clan: %w", err)
	}
	report.Clan = clan

	opponent, err := TransformClan(raw.Opponent)
	if err != nil {
		return app.WarReport{}, fmt.Errorf("failed to transform opponent: %w", err)
	}
	report.Opponent = opponent

	return report, nil
}

// TransformClan converts one side of a war into a ClanSummary with its
// members ordered by map position.
func TransformClan(raw app.WarClan) (app.ClanSummary, error) {
	members := make([]app.MemberResult, 0, len(raw.Members))
	for i, member := range raw.Members {
		result, err := transformMember(member)
		if err != nil {
			return app.ClanSummary{}, fmt.Errorf("member %d of %s: %w", i, valueOr(raw.Tag, "unknown clan"), err)
		}
		members = append(members, result)
	}

	return app.ClanSummary{
		Tag:                   raw.Tag,
		Name:                  raw.Name,
		Badge:                 raw.BadgeURLs.Medium,
		Stars:                 raw.Stars,
		Attacks:               raw.Attacks,
		DestructionPercentage: raw.DestructionPercentage,
		Members:               SortMembersByMapPosition(members),
	}, nil
}

func transformMember(member app.WarMember) (app.MemberResult, error) {
	if member.MapPosition == nil {
		return app.MemberResult{}, ErrMissingMapPosition
	}

	attacks := ProjectAttacks(member.Attacks)

	return app.MemberResult{
		Tag:             member.Tag,
		Name:            member.Name,
		TownhallLevel:   member.TownhallLevel,
		Emoji:           TownhallEmoji(member.TownhallLevel),
		MapPosition:     *member.MapPosition,
		Attacks:         attacks,
		AttacksUsed:     len(attacks),
		OpponentAttacks: member.OpponentAttacks,
	}, nil
}

// ProjectAttacks keeps only the defender, stars and destruction of each attack.
// Absent upstream fields stay nil.
func ProjectAttacks(attacks []app.WarAttack) []app.AttackResult {
	results := make([]app.AttackResult, 0, len(attacks))
	for _, attack := range attacks {
		results = append(results, app.AttackResult{
			DefenderTag:           attack.DefenderTag,
			Stars:                 attack.Stars,
			DestructionPercentage: attack.DestructionPercentage,
		})
	}
	return results
}

// PreviewClan builds the partial clan attached to private_war_log and not_in_war errors
func PreviewClan(clan app.Clan) *app.ClanPreview {
	return &app.ClanPreview{
		Name:  clan.Name,
		Tag:   clan.Tag,
		Badge: clan.BadgeURLs.Medium,
	}
}

// ClanInfoFrom builds the body of the clan lookup endpoint
func ClanInfoFrom(clan app.Clan) app.ClanInfo {
	return app.ClanInfo{
		Tag:            clan.Tag,
		Name:           clan.Name,
		Badge:          clan.BadgeURLs.Medium,
		Level:          clan.ClanLevel,
		Members:        clan.Members,
		IsWarLogPublic: clan.IsWarLogPublic,
	}
}

func valueOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
