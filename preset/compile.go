package preset

import (
	"sort"

	"github.com/lumatone-midi/lumatone"
)

// Compile renders p as an ordered command stream: global toggles and
// sensitivity first, then the four curve tables (on/off velocity,
// aftertouch, fader, lumatouch -- this order, not alphabetical), then the
// velocity-interval table if present, then every configured key's
// function and color, board-major and key-index-minor.
func Compile(p *Preset) []lumatone.Command {
	var cmds []lumatone.Command

	cmds = append(cmds,
		lumatone.SetAftertouchEnabled(p.General.AftertouchActive),
		lumatone.SetLightOnKeystrokes(p.General.LightOnKeyStrokes),
		lumatone.InvertFootController(p.General.InvertFootController),
		lumatone.InvertSustainPedal(p.General.InvertSustain),
		lumatone.SetExpressionPedalSensitivity(p.General.ExpressionControllerSensitivity),
	)

	if t := p.General.ConfigTables.OnOffVelocity; t != nil {
		cmds = append(cmds, lumatone.SetVelocityConfig(t.Table))
	}
	if t := p.General.ConfigTables.Aftertouch; t != nil {
		cmds = append(cmds, lumatone.SetAftertouchConfig(t.Table))
	}
	if t := p.General.ConfigTables.Fader; t != nil {
		cmds = append(cmds, lumatone.SetFaderConfig(t.Table))
	}
	if t := p.General.ConfigTables.Lumatouch; t != nil {
		cmds = append(cmds, lumatone.SetLumatouchConfig(t.Table))
	}

	if t := p.General.ConfigTables.VelocityIntervals; t != nil {
		cmds = append(cmds, lumatone.SetVelocityIntervals(*t))
	}

	for _, loc := range sortedKeyLocations(p.Keys) {
		def := p.Keys[loc]
		cmds = append(cmds,
			lumatone.SetKeyFunction(loc, def.Function),
			lumatone.SetKeyColor(loc, def.Color),
		)
	}

	return cmds
}

func sortedKeyLocations(keys map[lumatone.KeyLocation]KeyDefinition) []lumatone.KeyLocation {
	locs := make([]lumatone.KeyLocation, 0, len(keys))
	for loc := range keys {
		locs = append(locs, loc)
	}
	sort.Slice(locs, func(i, j int) bool {
		if locs[i].Board != locs[j].Board {
			return locs[i].Board < locs[j].Board
		}
		return locs[i].Key < locs[j].Key
	})
	return locs
}
