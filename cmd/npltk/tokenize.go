package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/npltk/normalize"
	"github.com/npillmayer/npltk/tokenizer"
	"github.com/spf13/cobra"
)

type tokenizeReport struct {
	Input     string               `json:"input" yaml:"input"`
	Text      string               `json:"text" yaml:"text"`
	Sentences []tokenizer.Sentence `json:"sentences" yaml:"sentences"`
}

func newTokenizeCmd() *cobra.Command {
	var (
		inFile, outFile string
		raw             bool
	)

	cmd := &cobra.Command{
		Use:   "tokenize [text...]",
		Short: "Normalize text, then split it into sentences and tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, inFile)
			if err != nil {
				return err
			}
			report := tokenizeReport{Input: input, Text: input}
			if !raw {
				report.Text = normalize.New(activeCfg.Normalize).Normalize(input).Text
			}
			report.Sentences = tokenizer.New(activeCfg.Tokenize).TokenizeSentences(report.Text)
			return withOutput(cmd, outFile, func(w io.Writer) error {
				return encode(w, activeCfg.Output.Format, report, func(w io.Writer) error {
					return writeTokenizeReport(w, report)
				})
			})
		},
	}

	cmd.Flags().StringVar(&inFile, "in", "", "Read input from file")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Write output to file")
	cmd.Flags().BoolVar(&raw, "raw", false, "Skip normalization")

	return cmd
}

func writeTokenizeReport(w io.Writer, report tokenizeReport) error {
	if _, err := fmt.Fprintf(w, "IN   : %s\nNORM : %s\n", report.Input, report.Text); err != nil {
		return err
	}
	for i, s := range report.Sentences {
		if _, err := fmt.Fprintf(w, "\n[SENT %d] %s  (span=%d:%d)\n", i+1, s.Sentence, s.Start, s.End); err != nil {
			return err
		}
		for _, t := range s.Tokens {
			if _, err := fmt.Fprintf(w, "  - %s\t%s\t(%d,%d)\n", t.Text, t.Type, t.Start, t.End); err != nil {
				return err
			}
		}
	}
	return nil
}
