package main

import (
	"carddeck/internal/config"
	"carddeck/internal/util"
	"carddeck/pkg/table"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app holds what the subcommands share
type app struct {
	configFile string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "cardsim",
		Short:         "Shuffle, deal and discard standard playing cards",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default $"+config.FileEnv+" or config.yaml)")
	flags.Int("decks", 0, "number of 52 card sets in the deck")
	flags.Bool("jokers", false, "add two jokers per set")
	flags.Int("hands", 0, "number of hands to deal")
	flags.Int("hand-size", 0, "cards per hand")
	flags.Int64("seed", 0, "seed for reproducible shuffles")

	rootCmd.AddCommand(newDealCmd(a), newPlayCmd(a), newCompareCmd())
	return rootCmd
}

// load reads the config file and environment, then applies any flags that were set
func (a *app) load(cmd *cobra.Command) error {
	configFile := a.configFile
	if configFile == "" {
		configFile = util.Getenv(config.FileEnv, "config.yaml")
	}

	cfg, err := config.LoadFile(configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("decks") {
		cfg.Decks, _ = flags.GetInt("decks")
	}

	if flags.Changed("jokers") {
		cfg.Jokers, _ = flags.GetBool("jokers")
	}

	if flags.Changed("hands") {
		cfg.Hands, _ = flags.GetInt("hands")
	}

	if flags.Changed("hand-size") {
		cfg.HandSize, _ = flags.GetInt("hand-size")
	}

	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}

	if flags.Lookup("rounds") != nil && flags.Changed("rounds") {
		cfg.Rounds, _ = flags.GetInt("rounds")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	return setupLogger(cfg)
}

func (a *app) tableOptions() table.Options {
	return table.Options{
		Decks:    a.cfg.Decks,
		Jokers:   a.cfg.Jokers,
		Seats:    a.cfg.Hands,
		HandSize: a.cfg.HandSize,
		Seed:     a.cfg.Seed,
	}
}

func setupLogger(cfg config.Config) error {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return fmt.Errorf("could not parse log level: %w", err)
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return nil
	}

	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:   term.IsTerminal(int(os.Stderr.Fd())),
		FullTimestamp: true,
	})

	return nil
}
