package ui_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pokedex/pkg/ui"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		name     string
		format   ui.Format
		expected string
	}{
		{name: "auto format", format: ui.FormatAuto, expected: "auto"},
		{name: "table format", format: ui.FormatTerminal, expected: "table"},
		{name: "plain format", format: ui.FormatText, expected: "plain"},
		{name: "json format", format: ui.FormatJSON, expected: "json"},
		{name: "unknown format", format: ui.Format(999), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{input: "", expected: ui.FormatAuto},
		{input: "auto", expected: ui.FormatAuto},
		{input: "table", expected: ui.FormatTerminal},
		{input: "TERM", expected: ui.FormatTerminal},
		{input: "terminal", expected: ui.FormatTerminal},
		{input: "plain", expected: ui.FormatText},
		{input: " text ", expected: ui.FormatText},
		{input: "json", expected: ui.FormatJSON},
		{input: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseFormatRoundTripsNames(t *testing.T) {
	for _, name := range ui.Formats() {
		f, err := ui.ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}
}

func TestDetectFormatNonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
}

func TestDetectFormatNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
}

func TestResolve(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, ui.FormatJSON, ui.Resolve(ui.FormatJSON, f))
	assert.Equal(t, ui.FormatTerminal, ui.Resolve(ui.FormatTerminal, f))
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatAuto, f))
}
