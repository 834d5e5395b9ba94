package controller

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatText},
		{input: "text", want: FormatText},
		{input: "JSON", want: FormatJSON},
		{input: " yaml ", want: FormatYAML},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewUI(t *testing.T) {
	cmd, _, _ := newTestCommand()

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false, FormatText))
	assert.IsType(t, &TUI{}, NewUI(cmd, true, FormatText))
	assert.IsType(t, &StructuredUI{}, NewUI(cmd, true, FormatJSON))
	assert.IsType(t, &StructuredUI{}, NewUI(cmd, false, FormatYAML))
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)

	defer f.Close()

	assert.False(t, IsTTY(f))
}
