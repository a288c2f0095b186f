package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbObstacle   = tcell.NewRGBColor(110, 110, 130) // Slate
	RgbCharacter  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbDashing    = tcell.NewRGBColor(255, 255, 200) // Bright yellow-white flash
	RgbHurt       = tcell.NewRGBColor(255, 80, 80)   // Red while invulnerable
	RgbEnemy      = tcell.NewRGBColor(0, 200, 200)   // Vibrant cyan
	RgbShroud     = tcell.NewRGBColor(128, 0, 128)   // Dark purple

	RgbStatusText   = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbScoreBg      = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbHealthBg     = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbHealthLowBg  = tcell.NewRGBColor(200, 50, 50)   // Red at one point left
	RgbPausedBg     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbGameOverText = tcell.NewRGBColor(255, 0, 0)     // Error red
)

// IntensityColor blends the shroud color toward red as music intensity rises
func IntensityColor(level float64) tcell.Color {
	level = max(0, min(1, level))
	r := int32(128 + (255-128)*level)
	g := int32(0)
	b := int32(128 * (1 - level))
	return tcell.NewRGBColor(r, g, b)
}
