package render

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/Conceptual-Machines/rug-loom/internal/rug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiSeq = regexp.MustCompile("\x1b\\[[0-9;]*m")

func sampleGrid() rug.Grid {
	return rug.Grid{
		{{Char: "█", Role: rug.RoleBorder}, {Char: "█", Role: rug.RoleBorder}, {Char: "❀", Role: rug.RoleAccent}},
		{{Char: "·", Role: rug.RolePrimary}, {Char: "<", Role: rug.RoleSecondary}, {Char: "·", Role: rug.RolePrimary}},
	}
}

func TestRuns(t *testing.T) {
	runs := Runs(sampleGrid())
	require.Len(t, runs, 2)
	assert.Equal(t, []Run{{Text: "██", Role: rug.RoleBorder}, {Text: "❀", Role: rug.RoleAccent}}, runs[0])
	assert.Equal(t, []Run{
		{Text: "·", Role: rug.RolePrimary},
		{Text: "<", Role: rug.RoleSecondary},
		{Text: "·", Role: rug.RolePrimary},
	}, runs[1])

	assert.Empty(t, Runs(rug.Grid{{}})[0])
}

func TestText(t *testing.T) {
	assert.Equal(t, "██❀\n·<·", Text(sampleGrid()))
}

func TestANSI(t *testing.T) {
	cfg := rug.DefaultConfig()
	out := ANSI(sampleGrid(), cfg)

	// Shiraz Garden primary #dc2626 and border #450a0a as truecolor
	assert.Contains(t, out, "38;2;220;38;38")
	assert.Contains(t, out, "38;2;69;10;10")
	assert.Equal(t, Text(sampleGrid()), ansiSeq.ReplaceAllString(out, ""))
}

func TestANSI_FullGridKeepsShape(t *testing.T) {
	cfg := rug.DefaultConfig()
	cfg.Width, cfg.Height = 24, 12
	grid := rug.Generate(cfg, rug.DefaultCharacterSet())

	plain := ansiSeq.ReplaceAllString(ANSI(grid, cfg), "")
	assert.Equal(t, grid.Text(), plain)
	assert.Len(t, strings.Split(plain, "\n"), 12)
}

func TestHTML(t *testing.T) {
	cfg := rug.DefaultConfig()
	var buf bytes.Buffer
	err := HTML(sampleGrid(), cfg, Caption{Name: "Rose <&> Thorn", Description: "A test."}).Render(context.Background(), &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "background:#1a0505")
	assert.Contains(t, out, `<span style="color:#450a0a">██</span>`)
	assert.Contains(t, out, `<span style="color:#10b981">&lt;</span>`)
	assert.Contains(t, out, "Rose &lt;&amp;&gt; Thorn")
	assert.NotContains(t, out, "<&>")
}

func TestHTML_RejectsNonHexColors(t *testing.T) {
	cfg := rug.DefaultConfig()
	cfg.UseCustomColors = true
	cfg.CustomColors.Primary = "red;background:url(x)"

	var buf bytes.Buffer
	require.NoError(t, HTML(sampleGrid(), cfg, Caption{}).Render(context.Background(), &buf))
	assert.NotContains(t, buf.String(), "url(x)")
	assert.NotContains(t, buf.String(), "<header>")
}

func TestHTML_Components(t *testing.T) {
	cfg := rug.DefaultConfig()

	t.Run("caption omitted without a name", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, captionBlock(Caption{Description: "orphan"}).Render(context.Background(), &buf))
		assert.Empty(t, buf.String())
	})

	t.Run("rug block keeps one line per row", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, rugBlock(sampleGrid(), cfg).Render(context.Background(), &buf))
		out := buf.String()
		assert.True(t, strings.HasPrefix(out, `<pre class="rug"`))
		assert.True(t, strings.HasSuffix(out, `</pre>`))
		assert.Equal(t, 1, strings.Count(out, "\n"))
	})

	t.Run("shell wraps children in order", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, HTML(sampleGrid(), cfg, Caption{Name: "Loom"}).Render(context.Background(), &buf))
		out := buf.String()
		assert.Less(t, strings.Index(out, "<body"), strings.Index(out, "<header>"))
		assert.Less(t, strings.Index(out, "<header>"), strings.Index(out, `<pre class="rug"`))
		assert.True(t, strings.HasSuffix(out, `</pre></body></html>`))
	})
}

func TestExportFilename(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	assert.Equal(t, "digital-textile-1700000000123.txt", ExportFilename(at))
}
