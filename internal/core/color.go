package core

// Color is a semantic foreground color for a screen cell.
// The platform layer decides the concrete terminal color for each value.
type Color uint8

// Colors used by the stick hero scene.
const (
	ColorDefault Color = iota
	ColorPlatform
	ColorPerfect
	ColorStick
	ColorHero
	ColorBandana
	ColorHill
	ColorHUD
	ColorAlert
	ColorDim
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorPlatform:
		return "platform"
	case ColorPerfect:
		return "perfect"
	case ColorStick:
		return "stick"
	case ColorHero:
		return "hero"
	case ColorBandana:
		return "bandana"
	case ColorHill:
		return "hill"
	case ColorHUD:
		return "hud"
	case ColorAlert:
		return "alert"
	case ColorDim:
		return "dim"
	default:
		return "unknown"
	}
}
