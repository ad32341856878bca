package main

import (
	"bytes"
	"carddeck/internal/config"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrite(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()

	for _, format := range []string{"yaml", "toml"} {
		buf := &bytes.Buffer{}
		a.NoError(write(buf, format, config.DefaultConfig()))

		filename := filepath.Join(dir, "config."+format)
		a.NoError(os.WriteFile(filename, buf.Bytes(), 0644))

		cfg, err := config.LoadFile(filename)
		a.NoError(err)
		a.Equal(config.DefaultConfig().Hands, cfg.Hands)
		a.Equal(config.DefaultConfig().Log.Level, cfg.Log.Level)
	}

	a.EqualError(write(&bytes.Buffer{}, "xml", config.DefaultConfig()), "unknown format: xml")
}
