package schema

// Custom string types for type safety.
type (
	// PatternType labels a contributor's temporal work pattern.
	PatternType string

	// OutputMode represents the format of the output.
	OutputMode string
)

// All work patterns supported.
const (
	DayWorkerPattern   PatternType = "day_worker"
	MoonlighterPattern PatternType = "moonlighter"
	MixedPattern       PatternType = "mixed"
	UnknownPattern     PatternType = "unknown"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// Display limits for text output. JSON output is never truncated.
const (
	TopContributors = 10
	TopFiles        = 20
)

// MonthKeyFormat is the time layout for monthly activity keys.
const MonthKeyFormat = "2006-01"

// Emoji returns the glyph shown next to a pattern label in text output.
func (p PatternType) Emoji() string {
	switch p {
	case DayWorkerPattern:
		return "☀️"
	case MoonlighterPattern:
		return "🌙"
	case MixedPattern:
		return "⚖️"
	default:
		return "❓"
	}
}
