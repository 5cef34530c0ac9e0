package app

// BadgeURLs represents the badge image variants returned by the Clash API
type BadgeURLs struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// Clan represents the response from /v1/clans/{tag}
type Clan struct {
	Tag            string    `json:"tag"`
	Name           string    `json:"name"`
	BadgeURLs      BadgeURLs `json:"badgeUrls"`
	ClanLevel      int       `json:"clanLevel"`
	Members        int       `json:"members"`
	IsWarLogPublic bool      `json:"isWarLogPublic"`
}

// CurrentWar represents the response from /v1/clans/{tag}/currentwar
type CurrentWar struct {
	State            string  `json:"state"`
	TeamSize         *int    `json:"teamSize"`
	AttacksPerMember int     `json:"attacksPerMember"`
	PreparationStart string  `json:"preparationStartTime"`
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
	Clan             WarClan `json:"clan"`
	Opponent         WarClan `json:"opponent"`
}

// WarClan represents one side of a war
type WarClan struct {
	Tag                   *string     `json:"tag"`
	Name                  *string     `json:"name"`
	BadgeURLs             BadgeURLs   `json:"badgeUrls"`
	ClanLevel             int         `json:"clanLevel"`
	Attacks               int         `json:"attacks"`
	Stars                 int         `json:"stars"`
	DestructionPercentage float64     `json:"destructionPercentage"`
	Members               []WarMember `json:"members"`
}

// WarMember represents a member on a war roster.
// Pointer fields distinguish absent values from zero.
type WarMember struct {
	Tag             *string     `json:"tag"`
	Name            *string     `json:"name"`
	TownhallLevel   *int        `json:"townhallLevel"`
	MapPosition     *int        `json:"mapPosition"`
	Attacks         []WarAttack `json:"attacks"`
	OpponentAttacks int         `json:"opponentAttacks"`
}

// WarAttack represents a single attack made by a war member
type WarAttack struct {
	AttackerTag           *string  `json:"attackerTag"`
	DefenderTag           *string  `json:"defenderTag"`
	Stars                 *int     `json:"stars"`
	DestructionPercentage *float64 `json:"destructionPercentage"`
	Order                 *int     `json:"order"`
	Duration              *int     `json:"duration"`
}

// WarReport is the client-facing view of a current war
type WarReport struct {
	State         string      `json:"state"`
	TeamSize      *int        `json:"teamSize"`
	WarType       string      `json:"warType"`
	CWLRound      *int        `json:"cwlRound"`
	TimeRemaining *string     `json:"timeRemaining"`
	TimeLabel     *string     `json:"timeLabel"`
	Clan          ClanSummary `json:"clan"`
	Opponent      ClanSummary `json:"opponent"`
}

// ClanSummary is the client-facing view of one side of a war
type ClanSummary struct {
	Tag                   *string        `json:"tag"`
	Name                  *string        `json:"name"`
	Badge                 string         `json:"badge"`
	Stars                 int            `json:"stars"`
	Attacks               int            `json:"attacks"`
	DestructionPercentage float64        `json:"destructionPercentage"`
	Members               []MemberResult `json:"members"`
}

// MemberResult is the client-facing view of a war member
type MemberResult struct {
	Tag             *string        `json:"tag"`
	Name            *string        `json:"name"`
	TownhallLevel   *int           `json:"townhallLevel"`
	Emoji           string         `json:"thEmoji"`
	MapPosition     int            `json:"mapPosition"`
	Attacks         []AttackResult `json:"attacks"`
	AttacksUsed     int            `json:"attacksUsed"`
	OpponentAttacks int            `json:"opponentAttacks"`
}

// AttackResult is the projection of an upstream attack
type AttackResult struct {
	DefenderTag           *string  `json:"defenderTag"`
	Stars                 *int     `json:"stars"`
	DestructionPercentage *float64 `json:"destructionPercentage"`
}

// ClanInfo is the body of GET /api/clan/{tag}
type ClanInfo struct {
	Tag            string `json:"tag"`
	Name           string `json:"name"`
	Badge          string `json:"badge"`
	Level          int    `json:"level"`
	Members        int    `json:"members"`
	IsWarLogPublic bool   `json:"isWarLogPublic"`
}

// ClanPreview is the partial clan attached to some error responses
type ClanPreview struct {
	Name  string `json:"name"`
	Tag   string `json:"tag"`
	Badge string `json:"badge"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message"`
	Clan    *ClanPreview `json:"clan,omitempty"`
}
