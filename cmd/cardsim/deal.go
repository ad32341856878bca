package main

import (
	"carddeck/pkg/table"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newDealCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "deal",
		Short: "Shuffle the deck and deal one set of hands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := table.New(logrus.StandardLogger(), a.tableOptions())
			if err != nil {
				return err
			}

			tbl.Deck().Shuffle()
			if err := tbl.Deal(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, seat := range tbl.Seats() {
				_, _ = fmt.Fprintf(out, "%-24s %s\n", seat.Name, formatCards(seat.Hand.Cards()))
			}

			_, _ = fmt.Fprintf(out, "cards left: %d\n", tbl.Deck().CardsLeft())
			return nil
		},
	}
}
