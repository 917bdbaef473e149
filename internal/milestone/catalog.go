// Package milestone tracks which workout-count milestones have been reached
// and celebrated.
package milestone

// Definition is a single milestone of the catalog
type Definition struct {
	Threshold int    `json:"threshold" yaml:"threshold"`
	Title     string `json:"title" yaml:"title"`
	Icon      string `json:"icon" yaml:"icon"`
	Color     string `json:"color" yaml:"color"`
}

// DefaultCatalog returns the standard BeOnTrack milestones
func DefaultCatalog() []Definition {
	return []Definition{
		{Threshold: 1, Title: "First Step!", Icon: "🎯", Color: "#33CC66"},
		{Threshold: 5, Title: "First Week Done!", Icon: "⭐", Color: "#FFD600"},
		{Threshold: 10, Title: "Double Digits!", Icon: "🔥", Color: "#FF6633"},
		{Threshold: 25, Title: "A Month In!", Icon: "💪", Color: "#9933FF"},
		{Threshold: 50, Title: "Halfway Hero!", Icon: "🏆", Color: "#00D4FF"},
		{Threshold: 75, Title: "Unstoppable!", Icon: "⚡", Color: "#FF9900"},
		{Threshold: 100, Title: "Legend!", Icon: "👑", Color: "#FFD600"},
		{Threshold: 150, Title: "Immortal!", Icon: "🌟", Color: "#FF3399"},
		{Threshold: 200, Title: "Two Hundred!", Icon: "💎", Color: "#00FFCC"},
		{Threshold: 365, Title: "A Whole Year!", Icon: "🎉", Color: "#FFFFFF"},
	}
}
