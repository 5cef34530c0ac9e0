package war

var townhallEmojis = map[int]string{
	1: "🏠", 2: "🏡", 3: "🏘️", 4: "🏢", 5: "🏥", 6: "🏰", 7: "🕌", 8: "🏯",
	9: "🛕", 10: "🏛️", 11: "🗼", 12: "🏟️", 13: "🗽", 14: "🗿", 15: "🏺", 16: "🔧", 17: "🔨",
}

// TownhallEmoji returns the display symbol for a townhall level.
// Unknown or missing levels fall back to the level 1 symbol.
func TownhallEmoji(level *int) string {
	if level == nil {
		return townhallEmojis[1]
	}
	if emoji, ok := townhallEmojis[*level]; ok {
		return emoji
	}
	return townhallEmojis[1]
}
