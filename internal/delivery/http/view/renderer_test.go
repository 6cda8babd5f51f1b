package view

import (
	"bytes"
	"testing"

	"ecycle/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer_ParsesAllTemplates(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)
	require.NotNil(t, renderer)
}

func TestRenderer_RenderHome(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = renderer.Render(&buf, "home.html", map[string]any{
		"Title": "Home",
		"Stats": &usecase.HomeStats{Facilities: 12, Devices: 34, Recyclers: 56},
	}, nil)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "<title>Home | eCycle</title>")
	assert.Contains(t, html, "12")
	assert.Contains(t, html, "Recycling facilities")
	assert.Contains(t, html, "Register")
}

func TestRenderer_RenderError(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = renderer.Render(&buf, "error.html", map[string]any{
		"Title":   "Not Found",
		"Code":    404,
		"Message": "No such facility",
	}, nil)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "404")
	assert.Contains(t, buf.String(), "No such facility")
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = renderer.Render(&buf, "missing.html", nil, nil)
	assert.Error(t, err)
}
