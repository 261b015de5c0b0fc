package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"go.dw1.io/magicregexp"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the character classes usable as class: in pattern files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPATTERN\tNOT")
			for _, k := range magicregexp.Kinds() {
				not := "-"
				if k.Negatable() {
					not = magicregexp.Not(k).Name()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", k.Name(), k, not)
			}
			return w.Flush()
		},
	}
}
