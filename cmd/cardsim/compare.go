package main

import (
	"carddeck/pkg/deck"
	"fmt"

	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "compare <card> <card>",
		Short:   "Compare two cards by rank, then suit (heart > diamond > spade > club)",
		Example: "  cardsim compare 5h 5d\n  cardsim compare 13s jk",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := deck.ParseCard(args[0])
			if err != nil {
				return err
			}

			right, err := deck.ParseCard(args[1])
			if err != nil {
				return err
			}

			op := "="
			switch left.Compare(right) {
			case 1:
				op = ">"
			case -1:
				op = "<"
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", formatCard(left), op, formatCard(right))
			return nil
		},
	}
}
