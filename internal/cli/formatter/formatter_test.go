package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$1,500", Money(1500))
	assert.Equal(t, "$52,500.5", Money(52500.50))
	assert.Equal(t, "$0", Money(0))
}

func TestRenderProgress(t *testing.T) {
	bar := RenderProgress(0.5, 10)
	assert.Contains(t, bar, " 50%")
	assert.Equal(t, 5, strings.Count(bar, "█"))
	assert.Equal(t, 5, strings.Count(bar, "░"))

	// Out-of-range fractions clamp.
	assert.Contains(t, RenderProgress(1.5, 10), "100%")
	assert.Contains(t, RenderProgress(-0.2, 10), "  0%")
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"Name", "Amount"},
		[][]string{
			{"Lumber", "$40"},
			{"Paint and primer", "$1,200"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[0], "Amount")
	assert.Contains(t, lines[2], "Lumber")
	assert.Contains(t, lines[3], "Paint and primer")

	// Cells in the same column line up.
	assert.Equal(t, strings.Index(lines[2], "$40"), strings.Index(lines[3], "$1,200"))
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}
