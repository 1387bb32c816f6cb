package ink

// Tool identifies the drawing instrument a stroke was made with. The zero
// value is the plain default pen. The string value is what gets persisted
// as toolType, so unknown values survive a load/save round trip untouched
// and simply render with the default profile.
type Tool string

const (
	ToolDefault Tool = ""
	ToolPencil  Tool = "pencil"
	ToolMarker  Tool = "marker"
	ToolBrush   Tool = "brush"
	ToolEraser  Tool = "eraser"
)

// Profile is the derived set of visual parameters for a tool. Profiles are
// never persisted; they are a pure function of the tool.
//
// Opacity and width scale are ranges resolved against simulated pressure:
// low pressure (fast motion) lands at the minimum, high pressure (slow
// motion) at the maximum. Smoothness is the minimum segment length worth
// emitting a primitive for; shorter segments are absorbed by their
// neighbours. Corner encodes medium texture from 0 (angular) to 1 (fully
// rounded).
type Profile struct {
	OpacityMin float64
	OpacityMax float64
	WidthMin   float64
	WidthMax   float64
	Smoothness float64
	Corner     float64
}

var profiles = map[Tool]Profile{
	// Graphite: translucent, strongly width-modulated, angular.
	ToolPencil: {OpacityMin: 0.6, OpacityMax: 1.0, WidthMin: 0.5, WidthMax: 1.3, Smoothness: 0.5, Corner: 0.2},
	// Felt tip: near-opaque regardless of speed, steady width, round cap.
	ToolMarker: {OpacityMin: 0.9, OpacityMax: 1.0, WidthMin: 0.8, WidthMax: 1.2, Smoothness: 2.0, Corner: 1.0},
	// Bristle brush: the widest dynamic range of all tools.
	ToolBrush: {OpacityMin: 0.4, OpacityMax: 1.0, WidthMin: 0.3, WidthMax: 1.5, Smoothness: 3.0, Corner: 0.7},
}

var defaultProfile = Profile{OpacityMin: 1, OpacityMax: 1, WidthMin: 1, WidthMax: 1, Smoothness: 0.5, Corner: 1.0}

// Profile resolves the visual profile for the tool. Unrecognized tools,
// the eraser and the explicit "default" name all resolve to the neutral
// default profile.
func (t Tool) Profile() Profile {
	if p, ok := profiles[t]; ok {
		return p
	}
	return defaultProfile
}

// Pressure derives a synthetic 0.1-1.0 pressure value from the distance a
// pointer travelled between two samples. Fast motion yields low pressure
// (thin, light ink), slow motion high pressure, simulating a physical
// medium without hardware pressure input. The same input always yields the
// same value, so re-rendering a committed stroke is stable.
func Pressure(segmentDistance float64) float64 {
	p := 1 / (segmentDistance + 1)
	if p < 0.1 {
		return 0.1
	}
	if p > 1 {
		return 1
	}
	return p
}

// Opacity resolves the profile's opacity range at the given pressure.
func (p Profile) Opacity(pressure float64) float64 {
	return p.OpacityMin + (p.OpacityMax-p.OpacityMin)*pressure
}

// WidthScale resolves the profile's width multiplier at the given pressure.
func (p Profile) WidthScale(pressure float64) float64 {
	return p.WidthMin + (p.WidthMax-p.WidthMin)*pressure
}
