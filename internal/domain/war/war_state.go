package war

// WarState mirrors the "state" field of the currentwar endpoint.
// Upstream values outside these constants are passed through untouched.
type WarState string

const (
	NotInWar    WarState = "notInWar"
	Preparation WarState = "preparation"
	InWar       WarState = "inWar"
	WarEnded    WarState = "warEnded"
)

// War type classification values
const (
	WarTypeRegular = "regular"
	WarTypeCWL     = "cwl"

	// cwlAttacksPerMember is the attack allowance that marks a Clan War League war
	cwlAttacksPerMember = 1

	// placeholderCWLRound is reported for every CWL war. The currentwar
	// document does not carry the league round, so this is an approximation.
	placeholderCWLRound = 1
)

// ClassifyWarType returns the war type and, for CWL wars, the league round
func ClassifyWarType(attacksPerMember int) (string, *int) {
	if attacksPerMember == cwlAttacksPerMember {
		round := placeholderCWLRound
		return WarTypeCWL, &round
	}
	return WarTypeRegular, nil
}

// timerSource returns which timestamp counts down for the given state, if any
func timerSource(state WarState, startTime, endTime string) (string, bool) {
	switch state {
	case Preparation:
		return startTime, true
	case InWar:
		return endTime, true
	default:
		return "", false
	}
}
