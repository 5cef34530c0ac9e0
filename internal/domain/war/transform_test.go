package war

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"clashberry_api/internal/app"
)

const currentWarFixture = `{
	"state": "inWar",
	"teamSize": 3,
	"attacksPerMember": 2,
	"preparationStartTime": "20240101T080000.000Z",
	"startTime": "20240101T090000.000Z",
	"endTime": "20240101T123000.000Z",
	"clan": {
		"tag": "#ABC123",
		"name": "Berry Pickers",
		"badgeUrls": {"small": "s.png", "medium": "m.png", "large": "l.png"},
		"attacks": 2,
		"stars": 5,
		"destructionPercentage": 71.5,
		"members": [
			{"tag": "#P3", "name": "Three", "townhallLevel": 14, "mapPosition": 3, "opponentAttacks": 1},
			{"tag": "#P1", "name": "One", "townhallLevel": 16, "mapPosition": 1,
			 "attacks": [
				{"attackerTag": "#P1", "defenderTag": "#E1", "stars": 3, "destructionPercentage": 100, "order": 1},
				{"attackerTag": "#P1", "defenderTag": "#E2", "stars": 2, "destructionPercentage": 64.5, "order": 2}
			 ]},
			{"tag": "#P2", "name": "Two", "townhallLevel": 99, "mapPosition": 2}
		]
	},
	"opponent": {
		"tag": "#XYZ",
		"name": "Rivals",
		"members": [
			{"tag": "#E2", "name": "E Two", "mapPosition": 2, "attacks": [{"defenderTag": "#P3"}]},
			{"tag": "#E1", "name": "E One", "townhallLevel": 13, "mapPosition": 1}
		]
	}
}`

func decodeWar(t *testing.T, data string) app.CurrentWar {
	t.Helper()
	var war app.CurrentWar
	if err := json.Unmarshal([]byte(data), &war); err != nil {
		t.Fatalf("Failed to decode fixture: %v", err)
	}
	return war
}

func TestTransformWar(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	raw := decodeWar(t, currentWarFixture)

	report, err := TransformWar(raw, now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if report.State != "inWar" {
		t.Errorf("Expected state 'inWar', got '%s'", report.State)
	}

	if report.TeamSize == nil || *report.TeamSize != 3 {
		t.Errorf("Expected team size 3, got %v", report.TeamSize)
	}

	if report.WarType != WarTypeRegular || report.CWLRound != nil {
		t.Errorf("Expected regular war without round, got %s/%v", report.WarType, report.CWLRound)
	}

	if report.TimeRemaining == nil || *report.TimeRemaining != "2h 30m" {
		t.Errorf("Expected time remaining '2h 30m' from endTime, got %v", report.TimeRemaining)
	}

	if report.TimeLabel == nil || *report.TimeLabel != "remaining" {
		t.Errorf("Expected time label 'remaining', got %v", report.TimeLabel)
	}

	clan := report.Clan
	if clan.Badge != "m.png" || clan.Stars != 5 || clan.Attacks != 2 || clan.DestructionPercentage != 71.5 {
		t.Errorf("Unexpected clan summary: %+v", clan)
	}

	for i, member := range clan.Members {
		if member.MapPosition != i+1 {
			t.Errorf("Expected member %d at map position %d, got %d", i, i+1, member.MapPosition)
		}
		if member.AttacksUsed != len(member.Attacks) {
			t.Errorf("Member %d: attacksUsed %d does not match %d attacks", i, member.AttacksUsed, len(member.Attacks))
		}
	}

	first := clan.Members[0]
	if *first.Tag != "#P1" || first.AttacksUsed != 2 {
		t.Errorf("Expected #P1 with 2 attacks first, got %s with %d", *first.Tag, first.AttacksUsed)
	}

	if *first.Attacks[1].DestructionPercentage != 64.5 || *first.Attacks[1].DefenderTag != "#E2" {
		t.Errorf("Attack projection lost data: %+v", first.Attacks[1])
	}

	if clan.Members[1].Emoji != TownhallEmoji(intPtr(1)) {
		t.Errorf("Expected out of range townhall to use level 1 symbol, got %s", clan.Members[1].Emoji)
	}

	if clan.Members[2].OpponentAttacks != 1 {
		t.Errorf("Expected opponentAttacks 1, got %d", clan.Members[2].OpponentAttacks)
	}

	opponent := report.Opponent
	if opponent.Badge != "" || opponent.Stars != 0 || opponent.Attacks != 0 || opponent.DestructionPercentage != 0 {
		t.Errorf("Expected zero defaults for sparse opponent, got %+v", opponent)
	}

	sparse := opponent.Members[1].Attacks[0]
	if sparse.Stars != nil || sparse.DestructionPercentage != nil {
		t.Errorf("Expected absent attack fields to stay nil, got %+v", sparse)
	}

	if opponent.Members[1].TownhallLevel != nil {
		t.Errorf("Expected missing townhall level to stay nil")
	}
}

func TestTransformWarStates(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name              string
		state             string
		attacksPerMember  int
		expectedRemaining *string
		expectedWarType   string
	}{
		{"PreparationUsesStartTime", "preparation", 2, strPtr("5m"), WarTypeRegular},
		{"InWarUsesEndTime", "inWar", 2, strPtr("1h 0m"), WarTypeRegular},
		{"WarEndedHasNoTimer", "warEnded", 2, nil, WarTypeRegular},
		{"UnknownStatePassedThrough", "matchmaking", 2, nil, WarTypeRegular},
		{"CWLPreparation", "preparation", 1, strPtr("5m"), WarTypeCWL},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := app.CurrentWar{
				State:            tc.state,
				AttacksPerMember: tc.attacksPerMember,
				StartTime:        "20240101T100500.000Z",
				EndTime:          "20240101T110000.000Z",
			}

			report, err := TransformWar(raw, now)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if report.State != tc.state {
				t.Errorf("Expected state '%s', got '%s'", tc.state, report.State)
			}

			if report.WarType != tc.expectedWarType {
				t.Errorf("Expected war type '%s', got '%s'", tc.expectedWarType, report.WarType)
			}

			if (report.TimeRemaining == nil) != (report.TimeLabel == nil) {
				t.Fatalf("timeRemaining and timeLabel must be set together")
			}

			switch {
			case tc.expectedRemaining == nil && report.TimeRemaining != nil:
				t.Errorf("Expected no time remaining, got %s", *report.TimeRemaining)
			case tc.expectedRemaining != nil && report.TimeRemaining == nil:
				t.Errorf("Expected time remaining %s, got nil", *tc.expectedRemaining)
			case tc.expectedRemaining != nil && *report.TimeRemaining != *tc.expectedRemaining:
				t.Errorf("Expected time remaining %s, got %s", *tc.expectedRemaining, *report.TimeRemaining)
			}
		})
	}
}

func TestTransformWarMalformedTimestamp(t *testing.T) {
	raw := app.CurrentWar{State: "inWar", EndTime: "garbage"}

	report, err := TransformWar(raw, time.Now())
	if err != nil {
		t.Fatalf("Expected malformed timestamp to be tolerated, got %v", err)
	}

	if report.TimeRemaining != nil || report.TimeLabel != nil {
		t.Errorf("Expected no time fields for malformed timestamp")
	}
}

func TestTransformClanMissingMapPosition(t *testing.T) {
	raw := app.WarClan{
		Tag: strPtr("#ABC"),
		Members: []app.WarMember{
			{Tag: strPtr("#P1"), MapPosition: intPtr(1)},
			{Tag: strPtr("#P2")},
		},
	}

	_, err := TransformClan(raw)
	if !errors.Is(err, ErrMissingMapPosition) {
		t.Fatalf("Expected ErrMissingMapPosition, got %v", err)
	}

	_, err = TransformWar(app.CurrentWar{State: "inWar", Opponent: raw}, time.Now())
	if !errors.Is(err, ErrMissingMapPosition) {
		t.Fatalf("Expected wrapped ErrMissingMapPosition from TransformWar, got %v", err)
	}
}

func TestTransformClanEmptyRoster(t *testing.T) {
	summary, err := TransformClan(app.WarClan{Tag: strPtr("#ABC")})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := json.Marshal(summary)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}

	members, ok := decoded["members"].([]any)
	if !ok || len(members) != 0 {
		t.Errorf("Expected members to serialize as an empty array, got %v", decoded["members"])
	}
}

func TestWarReportJSONNulls(t *testing.T) {
	report, err := TransformWar(app.CurrentWar{State: "warEnded", AttacksPerMember: 2}, time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}

	for _, key := range []string{"teamSize", "cwlRound", "timeRemaining", "timeLabel"} {
		value, present := decoded[key]
		if !present || value != nil {
			t.Errorf("Expected key %s to be present and null, got %v (present=%v)", key, value, present)
		}
	}
}

func TestWarClanMissingIdentityIsNull(t *testing.T) {
	raw := decodeWar(t, `{"state": "inWar", "clan": {"members": []}, "opponent": {"tag": "#XYZ"}}`)

	report, err := TransformWar(raw, time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}

	clan := decoded["clan"].(map[string]any)
	for _, key := range []string{"tag", "name"} {
		value, present := clan[key]
		if !present || value != nil {
			t.Errorf("Expected clan %s to be present and null, got %v (present=%v)", key, value, present)
		}
	}

	opponent := decoded["opponent"].(map[string]any)
	if opponent["tag"] != "#XYZ" || opponent["name"] != nil {
		t.Errorf("Expected opponent tag kept and name null, got %v / %v", opponent["tag"], opponent["name"])
	}
}

func TestPreviewAndClanInfo(t *testing.T) {
	clan := app.Clan{
		Tag:            "#ABC",
		Name:           "Berry Pickers",
		BadgeURLs:      app.BadgeURLs{Medium: "m.png"},
		ClanLevel:      12,
		Members:        47,
		IsWarLogPublic: true,
	}

	preview := PreviewClan(clan)
	if preview.Tag != "#ABC" || preview.Name != "Berry Pickers" || preview.Badge != "m.png" {
		t.Errorf("Unexpected preview: %+v", preview)
	}

	info := ClanInfoFrom(clan)
	if info.Level != 12 || info.Members != 47 || !info.IsWarLogPublic || info.Badge != "m.png" {
		t.Errorf("Unexpected clan info: %+v", info)
	}
}

func strPtr(v string) *string { return &v }
