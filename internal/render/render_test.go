package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"wahactl/internal/render"
)

func TestJSON_Indents(t *testing.T) {
	var buf bytes.Buffer
	render.JSON(&buf, map[string]any{"name": "default"})
	assert.Equal(t, "{\n  \"name\": \"default\"\n}\n", buf.String())
}

func TestJSON_KeepsNonASCIILiteral(t *testing.T) {
	var buf bytes.Buffer
	render.JSON(&buf, map[string]any{"body": "hello 👋 ça va"})
	assert.Contains(t, buf.String(), "hello 👋 ça va")
	assert.NotContains(t, buf.String(), `\u`)
}

func TestJSON_FallsBackForUnencodableValues(t *testing.T) {
	var buf bytes.Buffer
	render.JSON(&buf, make(chan int))
	assert.NotEmpty(t, buf.String())
}
