package preset

import (
	"strings"
	"testing"

	"github.com/lumatone-midi/lumatone"
	"github.com/stretchr/testify/require"
)

func mustLoc(t *testing.T, board lumatone.BoardIndex, key uint8) lumatone.KeyLocation {
	t.Helper()
	idx, err := lumatone.NewKeyIndex(key)
	require.NoError(t, err)
	loc, err := lumatone.NewKeyLocation(board, idx)
	require.NoError(t, err)
	return loc
}

func TestRenderNoteOnOffKeyOmitsKTyp(t *testing.T) {
	p := New()
	loc := mustLoc(t, lumatone.Octave1, 0)
	color, err := lumatone.ParseRGBColor("ff0000")
	require.NoError(t, err)
	ch, err := lumatone.NewMidiChannel(1)
	require.NoError(t, err)
	p.SetKey(loc, KeyDefinition{Function: lumatone.NoteOnOff(ch, 60), Color: color})

	out := Render(p)

	section := extractSection(t, out, "Board0")
	require.Equal(t, "60", section["Key_0"])
	require.Equal(t, "1", section["Chan_0"])
	require.Equal(t, "ff0000", section["Col_0"])
	_, hasType := section["KTyp_0"]
	require.False(t, hasType, "NoteOnOff key should omit KTyp_N")
}

func TestRenderLumaTouchKeyIncludesKTyp(t *testing.T) {
	p := New()
	loc := mustLoc(t, lumatone.Octave1, 0)
	ch, err := lumatone.NewMidiChannel(1)
	require.NoError(t, err)
	p.SetKey(loc, KeyDefinition{Function: lumatone.LumaTouch(ch, 60, false)})

	out := Render(p)

	section := extractSection(t, out, "Board0")
	require.Equal(t, "3", section["KTyp_0"])
}

func TestRenderUnsetKeyUsesDefaults(t *testing.T) {
	p := New()

	out := Render(p)

	section := extractSection(t, out, "Board0")
	require.Equal(t, "0", section["Key_0"])
	require.Equal(t, "1", section["Chan_0"])
	require.Equal(t, "000000", section["Col_0"])
	require.Equal(t, "4", section["KTyp_0"])
}

func TestParseRenderRoundTripsGeneralOptions(t *testing.T) {
	p := New()
	p.SetGeneralOptions(GeneralOptions{
		AftertouchActive:                true,
		LightOnKeyStrokes:                true,
		InvertFootController:             false,
		InvertSustain:                    true,
		ExpressionControllerSensitivity:  42,
	})

	out := Render(p)
	parsed, err := Parse(out)
	require.NoError(t, err)

	require.True(t, parsed.General.AftertouchActive)
	require.True(t, parsed.General.LightOnKeyStrokes)
	require.False(t, parsed.General.InvertFootController)
	require.True(t, parsed.General.InvertSustain)
	require.EqualValues(t, 42, parsed.General.ExpressionControllerSensitivity)
}

func TestParseRenderRoundTripsKeys(t *testing.T) {
	p := New()
	loc := mustLoc(t, lumatone.Octave3, 10)
	ch, err := lumatone.NewMidiChannel(5)
	require.NoError(t, err)
	color, err := lumatone.ParseRGBColor("00ff80")
	require.NoError(t, err)
	p.SetKey(loc, KeyDefinition{Function: lumatone.ContinuousController(ch, 74, true), Color: color})

	out := Render(p)
	parsed, err := Parse(out)
	require.NoError(t, err)

	def, ok := parsed.Keys[loc]
	require.True(t, ok)
	require.Equal(t, color, def.Color)
	require.EqualValues(t, 74, def.Function.CCNum)
	require.Equal(t, ch, def.Function.Channel)
}

func TestCompileOrdersGlobalsBeforeCurvesBeforeKeys(t *testing.T) {
	p := New()
	p.SetGeneralOptions(GeneralOptions{AftertouchActive: true})

	var onOff lumatone.SysexTable
	p.General.ConfigTables.OnOffVelocity = &ConfigTableDefinition{Table: onOff}

	loc := mustLoc(t, lumatone.Octave1, 0)
	ch, _ := lumatone.NewMidiChannel(1)
	p.SetKey(loc, KeyDefinition{Function: lumatone.NoteOnOff(ch, 60)})

	cmds := Compile(p)

	require.Equal(t, lumatone.KindSetAftertouchEnabled, cmds[0].Kind)
	require.Equal(t, lumatone.KindSetLightOnKeystrokes, cmds[1].Kind)
	require.Equal(t, lumatone.KindInvertFootController, cmds[2].Kind)
	require.Equal(t, lumatone.KindInvertSustainPedal, cmds[3].Kind)
	require.Equal(t, lumatone.KindSetExpressionPedalSensitivity, cmds[4].Kind)
	require.Equal(t, lumatone.KindSetVelocityConfig, cmds[5].Kind)

	last := cmds[len(cmds)-2:]
	require.Equal(t, lumatone.KindSetKeyFunction, last[0].Kind)
	require.Equal(t, lumatone.KindSetKeyColor, last[1].Kind)
}

// extractSection is a minimal line-based reader for the rendered .ltn
// text, good enough to assert on individual key=value pairs within a
// named section without pulling the ini parser back in.
func extractSection(t *testing.T, rendered, name string) map[string]string {
	t.Helper()
	lines := strings.Split(rendered, "\n")
	out := map[string]string{}
	inSection := false
	header := "[" + name + "]"
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inSection = line == header
			continue
		}
		if !inSection {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}
