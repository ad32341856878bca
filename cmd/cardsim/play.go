package main

import (
	"carddeck/pkg/deck"
	"carddeck/pkg/table"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newPlayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run rounds of shuffle, deal and discard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := table.New(logrus.StandardLogger(), a.tableOptions())
			if err != nil {
				return err
			}

			rounds, err := tbl.Play(a.cfg.Rounds)
			out := cmd.OutOrStdout()
			for _, round := range rounds {
				_, _ = fmt.Fprintf(out, "round %d\n", round.Number)
				for _, hand := range round.Hands {
					_, _ = fmt.Fprintf(out, "  %-24s %s\n", hand.Seat, formatCards(deck.CardsFromString(hand.Cards)))
				}
			}

			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, "total cards: %d\n", tbl.Total())
			return nil
		},
	}

	cmd.Flags().Int("rounds", 0, "number of rounds to play")
	return cmd
}
