package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterAddress(t *testing.T) {
	cases := map[string]string{
		" example.com/ ":         "http://example.com",
		"127.0.0.1:7860":         "http://127.0.0.1:7860",
		"https://sd.local:7860/": "https://sd.local:7860",
		"http://host//":          "http://host",
	}

	for in, want := range cases {
		assert.Equal(t, want, FilterAddress(in), in)
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("2")
	require.NoError(t, err)
	assert.Equal(t, ModePicturebook, m)

	m, err = ParseMode(" Immersive ")
	require.NoError(t, err)
	assert.Equal(t, ModeInteractive, m)

	_, err = ParseMode("3")
	assert.ErrorIs(t, err, ErrInvalidMode)

	_, err = ParseMode("sometimes")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "Manual", ModeManual.String())
	assert.Equal(t, "Picturebook/Adventure", ModePicturebook.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "http://127.0.0.1:7860", c.Address)
	assert.Equal(t, ModeManual, c.Mode)
	assert.Equal(t, uint(512), c.Width)
	assert.Equal(t, uint(512), c.Height)
	assert.Equal(t, -1, c.Seed)
	assert.Equal(t, "DDIM", c.SamplerName)
	assert.Equal(t, uint(32), c.Steps)
	assert.Equal(t, 7.0, c.CfgScale)
	assert.Equal(t, uint(300), c.ThumbnailSize)
	assert.True(t, c.FilterConversational)
	assert.Equal(t, "/", c.Prefix)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"Address": " sd.example.com/ ",
		"Mode": 1,
		"SaveImages": true,
		"Steps": 20,
		"Persona": "Miku"
	}`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	c := s.Get()
	assert.Equal(t, "http://sd.example.com", c.Address)
	assert.Equal(t, ModeInteractive, c.Mode)
	assert.True(t, c.SaveImages)
	assert.Equal(t, uint(20), c.Steps)
	assert.Equal(t, "Miku", c.Persona)
	assert.Equal(t, "DDIM", c.SamplerName)
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, Default().PromptPrefix, s.Get().PromptPrefix)
}

func TestStoreUpdate(t *testing.T) {
	s := NewStore(Default())
	s.Update(func(c *Config) {
		c.Width = 768
	})

	assert.Equal(t, uint(768), s.Get().Width)
}
