package main

import (
	"carddeck/internal/config"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

var format = flag.String("format", "yaml", "output format (yaml, toml)")

func main() {
	flag.Parse()

	if err := write(os.Stdout, *format, config.DefaultConfig()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func write(w io.Writer, format string, cfg config.Config) error {
	switch format {
	case "yaml":
		return yaml.NewEncoder(w).Encode(cfg)
	case "toml":
		return toml.NewEncoder(w).Encode(cfg)
	}

	return fmt.Errorf("unknown format: %s", format)
}
