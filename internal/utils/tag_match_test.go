package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "alias", input: "angio", want: "Angioplasty"},
		{name: "alias with case and spaces", input: "  Heart   BYPASS ", want: "Bypass Surgery"},
		{name: "acronym alias", input: "ivf", want: "IVF"},
		{name: "unknown tag is title cased", input: "sleep study", want: "Sleep Study"},
		{name: "empty", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTag(tt.input))
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{"angio,knee", "Angioplasty", "", "hip"})
	assert.Equal(t, []string{"Angioplasty", "Knee Replacement", "Hip Replacement"}, got)

	assert.Empty(t, NormalizeTags(nil))
}

func TestTagKey(t *testing.T) {
	assert.Equal(t, TagKey("cabg"), TagKey("Bypass Surgery"))
	assert.Equal(t, TagKey("oncology"), TagKey("cancer"))
	assert.NotEqual(t, TagKey("knee"), TagKey("hip"))
	assert.Equal(t, "robotic surgery", TagKey("  ROBOTIC   surgery "))
}

func TestSetupLogger(t *testing.T) {
	assert.NoError(t, SetupLogger("debug", "text"))
	assert.NoError(t, SetupLogger("warn", "json"))
	assert.Error(t, SetupLogger("verbose", "json"))
	assert.Error(t, SetupLogger("info", "xml"))
	assert.NoError(t, SetupLogger("info", "text"))
}
