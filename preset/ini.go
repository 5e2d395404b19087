package preset

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/lumatone-midi/lumatone"
	"gopkg.in/ini.v1"
)

// boardSectionCount is the number of per-board sections a .ltn file
// carries: Board0..Board4, one per octave board (file index N corresponds
// to lumatone.Octave(N+1) -- the format's off-by-one).
const boardSectionCount = 5

func boardSectionName(fileIndex int) string {
	return fmt.Sprintf("Board%d", fileIndex)
}

func boardIndexForSection(fileIndex int) lumatone.BoardIndex {
	return lumatone.BoardIndex(fileIndex + 1)
}

// generalKeyNames are the keys Parse looks for when deciding whether a
// section carries the preset's general options, spelling (including the
// misspellings) preserved exactly so existing preset files round-trip.
var generalKeyNames = []string{
	"AfterTouchActive",
	"LightOnKeyStrokes",
	"InvertFootController",
	"InvertSustain",
	"ExprCtrlSensivity",
	"VelocityIntrvlTbl",
	"NoteOnOffVelocityCrvTbl",
	"FaderConfig",
	"afterTouchConfig",
	"LumaTouchConfig",
}

func sectionHasGeneralKeys(sec *ini.Section) bool {
	if sec == nil {
		return false
	}
	for _, k := range generalKeyNames {
		if sec.HasKey(k) {
			return true
		}
	}
	return false
}

// Parse decodes a .ltn preset file's text form. General options are
// accepted either from the file's top-level (unnamed) section or from
// the trailing [Board4] section -- some preset-writing tools append them
// there instead -- with the top section winning when both carry them.
func Parse(source string) (*Preset, error) {
	f, err := ini.Load([]byte(source))
	if err != nil {
		return nil, fmt.Errorf("preset: parsing ini: %w", err)
	}

	p := New()

	topSection := f.Section(ini.DefaultSection)
	board4Section, _ := f.GetSection(boardSectionName(boardSectionCount - 1))

	var generalSource *ini.Section
	switch {
	case sectionHasGeneralKeys(topSection):
		generalSource = topSection
		if sectionHasGeneralKeys(board4Section) {
			log.Printf("preset: general options present in both the top section and %s; using the top section", boardSectionName(boardSectionCount-1))
		}
	case sectionHasGeneralKeys(board4Section):
		generalSource = board4Section
	default:
		generalSource = topSection
	}

	general, err := parseGeneralOptions(generalSource)
	if err != nil {
		return nil, err
	}
	p.General = general

	for i := 0; i < boardSectionCount; i++ {
		sec, err := f.GetSection(boardSectionName(i))
		if err != nil {
			continue
		}
		board := boardIndexForSection(i)
		for k := 0; k < lumatone.KeysPerBoard; k++ {
			key, err := lumatone.NewKeyIndex(uint8(k))
			if err != nil {
				return nil, err
			}
			loc, err := lumatone.NewKeyLocation(board, key)
			if err != nil {
				return nil, err
			}
			def, err := parseKeyDefinition(sec, k)
			if err != nil {
				return nil, err
			}
			p.SetKey(loc, def)
		}
	}

	return p, nil
}

func parseKeyDefinition(sec *ini.Section, k int) (KeyDefinition, error) {
	typeCode := getU8Default(sec, fmt.Sprintf("KTyp_%d", k), lumatone.KeyTypeCodeDefault)
	noteOrCC := getU8Default(sec, fmt.Sprintf("Key_%d", k), 0)
	chanRaw := getU8Default(sec, fmt.Sprintf("Chan_%d", k), 1)

	channel, err := lumatone.NewMidiChannel(chanRaw)
	if err != nil {
		channel, _ = lumatone.NewMidiChannel(1)
	}

	fn, validKind := lumatone.KeyFunctionFromINI(typeCode, channel, noteOrCC, false)
	if !validKind {
		log.Printf("preset: unrecognized key type code %d for key %d, treating as disabled", typeCode, k)
	}

	colorKey := fmt.Sprintf("Col_%d", k)
	colorStr := "000000"
	if sec != nil && sec.HasKey(colorKey) {
		colorStr = sec.Key(colorKey).String()
	}
	color, err := lumatone.ParseRGBColor(colorStr)
	if err != nil {
		return KeyDefinition{}, err
	}

	return KeyDefinition{Function: fn, Color: color}, nil
}

func getU8Default(sec *ini.Section, key string, def uint8) uint8 {
	if sec == nil || !sec.HasKey(key) {
		return def
	}
	v, err := strconv.ParseUint(sec.Key(key).String(), 10, 8)
	if err != nil {
		return def
	}
	return uint8(v)
}

func getBoolDefault(sec *ini.Section, key string, def bool) bool {
	if sec == nil || !sec.HasKey(key) {
		return def
	}
	v, err := strconv.ParseInt(sec.Key(key).String(), 10, 64)
	if err != nil {
		return def
	}
	return v != 0
}

func parseGeneralOptions(sec *ini.Section) (GeneralOptions, error) {
	opts := GeneralOptions{
		AftertouchActive:      getBoolDefault(sec, "AfterTouchActive", false),
		LightOnKeyStrokes:     getBoolDefault(sec, "LightOnKeyStrokes", false),
		InvertFootController:  getBoolDefault(sec, "InvertFootController", false),
		InvertSustain:         getBoolDefault(sec, "InvertSustain", false),
	}
	opts.ExpressionControllerSensitivity = getU8Default(sec, "ExprCtrlSensivity", 0)

	if sec != nil && sec.HasKey("VelocityIntrvlTbl") {
		t, err := parseIntervalTable(sec.Key("VelocityIntrvlTbl").String())
		if err != nil {
			return GeneralOptions{}, err
		}
		opts.ConfigTables.VelocityIntervals = &t
	}

	var err error
	if opts.ConfigTables.OnOffVelocity, err = parseOptionalConfigTable(sec, "NoteOnOffVelocityCrvTbl"); err != nil {
		return GeneralOptions{}, err
	}
	if opts.ConfigTables.Fader, err = parseOptionalConfigTable(sec, "FaderConfig"); err != nil {
		return GeneralOptions{}, err
	}
	if opts.ConfigTables.Aftertouch, err = parseOptionalConfigTable(sec, "afterTouchConfig"); err != nil {
		return GeneralOptions{}, err
	}
	if opts.ConfigTables.Lumatouch, err = parseOptionalConfigTable(sec, "LumaTouchConfig"); err != nil {
		return GeneralOptions{}, err
	}

	return opts, nil
}

func parseOptionalConfigTable(sec *ini.Section, key string) (*ConfigTableDefinition, error) {
	if sec == nil || !sec.HasKey(key) {
		return nil, nil
	}
	def, err := parseConfigTable(sec.Key(key).String())
	if err != nil {
		return nil, fmt.Errorf("preset: parsing %s: %w", key, err)
	}
	return &def, nil
}

// parseConfigTable splits off an optional "LINEAR"/"Quadratic" strategy
// tag glued directly onto the front of the value (no separating space)
// before splitting the remaining whitespace-separated decimals into a
// 128-entry table.
func parseConfigTable(raw string) (ConfigTableDefinition, error) {
	strategy := EditFreeDrawing
	rest := raw
	switch {
	case strings.HasPrefix(raw, "LINEAR"):
		strategy = EditLinearSegments
		rest = strings.TrimPrefix(raw, "LINEAR")
	case strings.HasPrefix(raw, "Quadratic"):
		strategy = EditQuadraticCurves
		rest = strings.TrimPrefix(raw, "Quadratic")
	}

	values, err := parseDecimalList(rest, lumatone.TableSize)
	if err != nil {
		return ConfigTableDefinition{}, err
	}
	bytes := make([]uint8, len(values))
	for i, v := range values {
		bytes[i] = uint8(v)
	}
	table, err := lumatone.NewSysexTable(bytes)
	if err != nil {
		return ConfigTableDefinition{}, err
	}
	return ConfigTableDefinition{Table: table, EditStrategy: strategy}, nil
}

func parseIntervalTable(raw string) (lumatone.IntervalTable, error) {
	values, err := parseDecimalList(raw, lumatone.IntervalTableSize)
	if err != nil {
		return lumatone.IntervalTable{}, err
	}
	words := make([]uint16, len(values))
	for i, v := range values {
		words[i] = uint16(v)
	}
	return lumatone.NewIntervalTable(words)
}

func parseDecimalList(raw string, count int) ([]int, error) {
	fields := strings.Fields(raw)
	if len(fields) != count {
		return nil, fmt.Errorf("preset: expected %d whitespace-separated values, got %d", count, len(fields))
	}
	out := make([]int, count)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("preset: value %q at index %d is not an integer: %w", f, i, err)
		}
		out[i] = v
	}
	return out, nil
}

// Render encodes p as the .ltn text form: general options in the
// top-level section, per-board key sections in file order Board0..Board4,
// every one of the 56 keys per board rendered explicitly.
func Render(p *Preset) string {
	f := ini.Empty()
	top := f.Section(ini.DefaultSection)

	top.Key("AfterTouchActive").SetValue(renderBool(p.General.AftertouchActive))
	top.Key("LightOnKeyStrokes").SetValue(renderBool(p.General.LightOnKeyStrokes))
	top.Key("InvertFootController").SetValue(renderBool(p.General.InvertFootController))
	top.Key("InvertSustain").SetValue(renderBool(p.General.InvertSustain))
	top.Key("ExprCtrlSensivity").SetValue(strconv.Itoa(int(p.General.ExpressionControllerSensitivity)))

	if t := p.General.ConfigTables.VelocityIntervals; t != nil {
		top.Key("VelocityIntrvlTbl").SetValue(renderIntervalTable(*t))
	}
	if t := p.General.ConfigTables.OnOffVelocity; t != nil {
		top.Key("NoteOnOffVelocityCrvTbl").SetValue(renderConfigTable(*t))
	}
	if t := p.General.ConfigTables.Fader; t != nil {
		top.Key("FaderConfig").SetValue(renderConfigTable(*t))
	}
	if t := p.General.ConfigTables.Aftertouch; t != nil {
		top.Key("afterTouchConfig").SetValue(renderConfigTable(*t))
	}
	if t := p.General.ConfigTables.Lumatouch; t != nil {
		top.Key("LumaTouchConfig").SetValue(renderConfigTable(*t))
	}

	for i := 0; i < boardSectionCount; i++ {
		board := boardIndexForSection(i)
		sec, _ := f.NewSection(boardSectionName(i))
		for k := 0; k < lumatone.KeysPerBoard; k++ {
			key, _ := lumatone.NewKeyIndex(uint8(k))
			loc, _ := lumatone.NewKeyLocation(board, key)
			def, ok := p.Keys[loc]
			renderKey(sec, k, def, ok)
		}
	}

	var b strings.Builder
	if _, err := f.WriteTo(&b); err != nil {
		// ini.File.WriteTo only fails on the underlying writer; a
		// strings.Builder never returns an error.
		panic(err)
	}
	return b.String()
}

func renderKey(sec *ini.Section, k int, def KeyDefinition, present bool) {
	if !present {
		sec.Key(fmt.Sprintf("Key_%d", k)).SetValue("0")
		sec.Key(fmt.Sprintf("Chan_%d", k)).SetValue("1")
		sec.Key(fmt.Sprintf("Col_%d", k)).SetValue("000000")
		sec.Key(fmt.Sprintf("KTyp_%d", k)).SetValue(strconv.Itoa(int(lumatone.Disabled().INICode())))
		return
	}

	sec.Key(fmt.Sprintf("Key_%d", k)).SetValue(strconv.Itoa(int(def.Function.INIValue())))
	sec.Key(fmt.Sprintf("Chan_%d", k)).SetValue(strconv.Itoa(int(def.Function.Channel.OneIndexed())))
	sec.Key(fmt.Sprintf("Col_%d", k)).SetValue(def.Color.HexString())

	if code := def.Function.INICode(); code != lumatone.KeyTypeCodeDefault {
		sec.Key(fmt.Sprintf("KTyp_%d", k)).SetValue(strconv.Itoa(int(code)))
	}
}

func renderBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func renderIntervalTable(t lumatone.IntervalTable) string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, " ")
}

func renderConfigTable(def ConfigTableDefinition) string {
	parts := make([]string, len(def.Table))
	for i, v := range def.Table {
		parts[i] = strconv.Itoa(int(v))
	}
	return def.EditStrategy.iniTag() + strings.Join(parts, " ")
}
