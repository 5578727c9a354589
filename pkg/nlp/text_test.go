package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "nodejs and reactjs rock", NormalizeText("  Node.js, and React.JS — rock!! "))
	assert.Equal(t, "snake_case résumé", NormalizeText("snake_case: Résumé"))
	assert.Equal(t, "", NormalizeText(" ... "))
}

func TestCountOccurrences(t *testing.T) {
	tests := []struct {
		text, keyword string
		want          int
	}{
		{"Testing is key", "testing", 1},
		{"testing", "test", 0},
		{"Go, go; GO!", "go", 3},
		{"golang goal go", "go", 1},
		{"React developer, react-developer", "react developer", 1},
		{"résumé résumés", "résumé", 1},
		{"anything", "", 0},
		{"aws_lambda aws", "aws", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CountOccurrences(tt.text, tt.keyword), "%q in %q", tt.keyword, tt.text)
	}
}

func TestSimilar(t *testing.T) {
	assert.True(t, Similar("testing", "test"))
	assert.True(t, Similar("test", "Testing"))
	assert.True(t, Similar("go", "goal"))
	assert.False(t, Similar("docker", "react"))
}
