package main

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountCharacters(t *testing.T) {
	t.Parallel()

	alphabet, err := NewAlphabet("AB ")
	require.NoError(t, err)

	counts := CountCharacters("AB BA", alphabet)
	assert.Equal(t, FrequencyTable{2, 2, 1}, counts)
	assert.Equal(t, 5, counts.Total())
}

func TestCountCharactersTotal(t *testing.T) {
	t.Parallel()

	alphabet, err := NewAlphabet(DefaultAlphabet)
	require.NoError(t, err)

	tests := []struct {
		name     string
		text     string
		complete bool
	}{
		{"empty", "", true},
		{"all recognized", "Faust. Ja, Gretchen!", true},
		{"unknown letters", "Xaver quält", false},
		{"newlines", "Habe nun\nach", false},
		{"digits", "1808", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := CountCharacters(tt.text, alphabet).Total()
			length := utf8.RuneCountInString(tt.text)
			assert.LessOrEqual(t, total, length)
			assert.Equal(t, tt.complete, total == length)
		})
	}
}

func TestFrequencyAlpha(t *testing.T) {
	t.Parallel()

	counts := FrequencyTable{0, 1, 85, 86, 1000}
	assert.Equal(t, uint8(0), counts.Alpha(0, 3))
	assert.Equal(t, uint8(3), counts.Alpha(1, 3))
	assert.Equal(t, uint8(255), counts.Alpha(2, 3))
	assert.Equal(t, uint8(255), counts.Alpha(3, 3))
	assert.Equal(t, uint8(255), counts.Alpha(4, 3))
	assert.Equal(t, uint8(0), counts.Alpha(9, 3))
}
