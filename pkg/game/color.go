package game

// RGB is a display color with components in [0, 1].
type RGB [3]float32

var (
	whiteColor = RGB{1.0, 1.0, 1.0}

	tankColors = map[TeamColor]RGB{
		RogueTeam:  {1.0, 1.0, 0.0},
		RedTeam:    {1.0, 0.0, 0.0},
		GreenTeam:  {0.0, 1.0, 0.0},
		BlueTeam:   {0.1, 0.2, 1.0},
		PurpleTeam: {1.0, 0.0, 1.0},
		RabbitTeam: {0.75, 0.75, 0.75},
		HunterTeam: {1.0, 0.5, 0.0},
	}

	radarColors = map[TeamColor]RGB{
		RogueTeam:  {1.0, 1.0, 0.0},
		RedTeam:    {1.0, 0.15, 0.15},
		GreenTeam:  {0.2, 0.9, 0.2},
		BlueTeam:   {0.08, 0.25, 1.0},
		PurpleTeam: {1.0, 0.3, 1.0},
		RabbitTeam: {0.75, 0.75, 0.75},
		HunterTeam: {1.0, 0.5, 0.0},
	}
)

// TankColor returns the color tanks and flags of the given team are drawn
// with. Teams without a color of their own render white.
func TankColor(t TeamColor) RGB {
	if c, ok := tankColors[t]; ok {
		return c
	}
	return whiteColor
}

// RadarColor returns the color used for the given team on the radar.
func RadarColor(t TeamColor) RGB {
	if c, ok := radarColors[t]; ok {
		return c
	}
	return whiteColor
}
