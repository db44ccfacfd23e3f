package task

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"plain description", "Buy milk", "Buy milk", nil},
		{"trims surrounding whitespace", "  Buy milk  ", "Buy milk", nil},
		{"trims tabs and newlines", "\t\nCall dentist\n", "Call dentist", nil},
		{"interior whitespace preserved", "Buy  milk", "Buy  milk", nil},
		{"empty string", "", "", ErrEmptyDescription},
		{"only spaces", "   ", "", ErrEmptyDescription},
		{"only tabs", "\t\t", "", ErrEmptyDescription},
		{"exactly max length", strings.Repeat("a", MaxDescriptionLen), strings.Repeat("a", MaxDescriptionLen), nil},
		{"one over max length", strings.Repeat("a", MaxDescriptionLen+1), "", ErrDescriptionTooLong},
		{"length measured after trim", "  " + strings.Repeat("a", MaxDescriptionLen) + "  ", strings.Repeat("a", MaxDescriptionLen), nil},
		{"single character", "x", "x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.input, false)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Description)
			assert.False(t, got.Complete)
			assert.Zero(t, got.ID, "constructor must not assign ids")
		})
	}
}

func TestNewMultibyte(t *testing.T) {
	// Length is counted in characters, not bytes.
	desc := strings.Repeat("日", MaxDescriptionLen)
	got, err := New(desc, false)
	require.NoError(t, err)
	assert.Equal(t, desc, got.Description)

	_, err = New(desc+"本", false)
	assert.ErrorIs(t, err, ErrDescriptionTooLong)
}

func TestNewCompleteFlag(t *testing.T) {
	got, err := New("done already", true)
	require.NoError(t, err)
	assert.True(t, got.Complete)
}
