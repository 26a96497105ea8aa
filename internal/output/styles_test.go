package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCheckmark(t *testing.T) {
	got := FormatCheckmark("Project created")
	assert.Contains(t, got, "✔")
	assert.Contains(t, got, "Project created")
}

func TestFormatCommand(t *testing.T) {
	assert.Contains(t, FormatCommand("pnpm dev"), "pnpm dev")
}

func TestGetStyles(t *testing.T) {
	styles := GetStyles()
	assert.True(t, styles.Bold.GetBold(), "bold style should be bold")
	assert.True(t, styles.Muted.GetFaint(), "muted style should be faint")
	assert.Equal(t, ColorCyan, styles.Noun.GetForeground())
}
