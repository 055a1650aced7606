package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsScript(t *testing.T) {
	out := Sanitize(`hello <script>alert("x")</script>world`)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "world")
}

func TestSanitizeKeepsPlainText(t *testing.T) {
	in := "Ate dinner mindfully, no screens. Felt calm afterwards."
	assert.Equal(t, in, Sanitize(in))
}

func TestSanitizeStripsEventHandlers(t *testing.T) {
	out := Sanitize(`<b onclick="steal()">bold</b>`)
	assert.NotContains(t, out, "onclick")
	assert.Contains(t, out, "bold")
}
