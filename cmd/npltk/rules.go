package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/npltk/normalize"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the enabled normalization rules in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := normalize.New(activeCfg.Normalize).Rules()
			return encode(cmd.OutOrStdout(), activeCfg.Output.Format, names, func(w io.Writer) error {
				for _, name := range names {
					if _, err := fmt.Fprintln(w, name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
