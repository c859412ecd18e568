package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTerminalConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"whatever\n", false},
	}
	for _, tc := range tests {
		var out strings.Builder
		term := NewTerminal(strings.NewReader(tc.input), &out)
		require.Equal(t, tc.want, term.Confirm("Remove topic 'orders'?", false), "input %q", tc.input)
		require.Contains(t, out.String(), "[y/N]")
	}
}

func TestTerminalConfirmForced(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	term := NewTerminal(strings.NewReader(""), &out)
	require.True(t, term.Confirm("Remove topic 'orders'?", true))
	// forced confirmations never prompt
	require.Empty(t, out.String())
}

func TestTerminalMessages(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	term := NewTerminal(strings.NewReader(""), &out)
	term.Info("Topic added: 'orders'")
	term.Warn("No topics found")
	require.Equal(t, "Topic added: 'orders'\nNo topics found\n", out.String())
}

func TestFormatTable(t *testing.T) {
	t.Parallel()

	table := FormatTable(
		[]string{"Topic Name", "Enqueued", "Dequeued"},
		[][]string{
			{"orders", "5", "2"},
			{"invoices", "10", "1"},
		},
	)

	lines := strings.Split(table, "\n")
	require.Len(t, lines, 4)
	require.Contains(t, lines[0], "Topic Name")
	require.Contains(t, lines[0], "Enqueued")
	require.Contains(t, lines[0], "Dequeued")
	require.Contains(t, lines[1], "----------")
	require.Contains(t, lines[2], "orders")
	require.Contains(t, lines[3], "invoices")

	// columns are aligned
	require.Equal(t, strings.Index(lines[0], "Enqueued"), strings.Index(lines[2], "5"))
}
