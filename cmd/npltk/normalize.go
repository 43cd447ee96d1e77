package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/npltk/normalize"
	"github.com/spf13/cobra"
)

func newNormalizeCmd() *cobra.Command {
	var inFile, outFile string

	cmd := &cobra.Command{
		Use:   "normalize [text...]",
		Short: "Normalize text and report the rules applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, inFile)
			if err != nil {
				return err
			}
			res := normalize.New(activeCfg.Normalize).Normalize(text)
			return withOutput(cmd, outFile, func(w io.Writer) error {
				return encode(w, activeCfg.Output.Format, res, func(w io.Writer) error {
					return writeNormResult(w, res)
				})
			})
		},
	}

	cmd.Flags().StringVar(&inFile, "in", "", "Read input from file")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Write output to file")

	return cmd
}

func writeNormResult(w io.Writer, res normalize.Result) error {
	if _, err := fmt.Fprintln(w, res.Text); err != nil {
		return err
	}
	for _, t := range res.Transforms {
		if _, err := fmt.Fprintf(w, "- %s: %v\n", t.Rule, t.Meta); err != nil {
			return err
		}
	}
	return nil
}
