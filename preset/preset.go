// Package preset models a Lumatone .ltn preset file: per-key function and
// color assignments, a block of global options, and an optional set of
// curve tables, together with the INI-style text format those are
// persisted in and their compilation to an ordered command stream.
package preset

import "github.com/lumatone-midi/lumatone"

// EditStrategy is a curve table's edit-mode tag, round-tripped through
// the text form but otherwise inert -- it has no effect on the wire
// encoding of the table it's attached to.
type EditStrategy uint8

const (
	EditFreeDrawing EditStrategy = iota
	EditLinearSegments
	EditQuadraticCurves
)

func (s EditStrategy) String() string {
	switch s {
	case EditLinearSegments:
		return "LinearSegments"
	case EditQuadraticCurves:
		return "QuadraticCurves"
	default:
		return "FreeDrawing"
	}
}

// iniTag is the literal text glued directly in front of a curve table's
// values in the preset file; FreeDrawing has none.
func (s EditStrategy) iniTag() string {
	switch s {
	case EditLinearSegments:
		return "LINEAR"
	case EditQuadraticCurves:
		return "Quadratic"
	default:
		return ""
	}
}

// ConfigTableDefinition pairs a curve table with the edit strategy its
// author used to draw it.
type ConfigTableDefinition struct {
	Table        lumatone.SysexTable
	EditStrategy EditStrategy
}

// ConfigurationTables holds the optional curve/interval tables a preset
// may override; a nil field means "leave the device's current table
// alone" rather than "reset to zero".
type ConfigurationTables struct {
	OnOffVelocity     *ConfigTableDefinition
	Fader             *ConfigTableDefinition
	Aftertouch        *ConfigTableDefinition
	Lumatouch         *ConfigTableDefinition
	VelocityIntervals *lumatone.IntervalTable
}

// GeneralOptions is the preset's global (non-per-key) configuration.
type GeneralOptions struct {
	AftertouchActive                bool
	LightOnKeyStrokes               bool
	InvertFootController            bool
	InvertSustain                   bool
	ExpressionControllerSensitivity uint8

	ConfigTables ConfigurationTables
}

// KeyDefinition is one key's function and LED color.
type KeyDefinition struct {
	Function lumatone.KeyFunction
	Color    lumatone.RGBColor
}

// Preset is the in-memory form of a .ltn file: a sparse per-key map
// (unset keys are absorbed into defaults at render time) plus the
// general options block.
type Preset struct {
	Keys    map[lumatone.KeyLocation]KeyDefinition
	General GeneralOptions
}

// New returns an empty preset with no keys configured and all-default
// general options.
func New() *Preset {
	return &Preset{Keys: make(map[lumatone.KeyLocation]KeyDefinition)}
}

// SetKey assigns a single key's definition.
func (p *Preset) SetKey(loc lumatone.KeyLocation, def KeyDefinition) {
	p.Keys[loc] = def
}

// SetGeneralOptions replaces the preset's general options block.
func (p *Preset) SetGeneralOptions(opts GeneralOptions) {
	p.General = opts
}
