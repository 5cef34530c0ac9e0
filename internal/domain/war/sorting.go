package war

import (
	"sort"

	"clashberry_api/internal/app"
)

// SortMembersByMapPosition returns a new slice ordered by map position, ascending.
// Pure function: the input is not modified and ties keep their original order.
func SortMembersByMapPosition(members []app.MemberResult) []app.MemberResult {
	sorted := make([]app.MemberResult, len(members))
	copy(sorted, members)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MapPosition < sorted[j].MapPosition
	})

	return sorted
}
