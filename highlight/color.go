package highlight

type Color struct {
	Name string
	// ANSI SGR background code for terminal output
	ANSI int
}

var None = Color{Name: "none", ANSI: 0}

var Palette = []Color{
	{Name: "blue", ANSI: 104},
	{Name: "green", ANSI: 102},
	{Name: "yellow", ANSI: 103},
	{Name: "purple", ANSI: 105},
	{Name: "pink", ANSI: 45},
	{Name: "orange", ANSI: 43},
	{Name: "cyan", ANSI: 106},
	{Name: "red", ANSI: 101},
}

// ColorFor cycles through Palette by pattern rank.
func ColorFor(patternIdx int) Color {
	if patternIdx < 0 {
		return None
	}
	return Palette[patternIdx%len(Palette)]
}
