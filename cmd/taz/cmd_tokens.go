package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/taz/ascii"
	"github.com/dhamidi/taz/scan"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tokens [file]",
		Short:         "Dump the token stream of a file or stdin",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			return dumpTokens(cmd.OutOrStdout(), data)
		},
	}

	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

func dumpTokens(out io.Writer, data []byte) error {
	log := commonlog.GetLogger("taz.tokens")
	s := scan.New(data)

	for !s.IsEmpty() {
		start := s.Position()

		if tok, err := ascii.AcceptToken(s); err == nil {
			fmt.Fprintf(out, "%6d  %s\n", start, tok)
			continue
		}
		if view, err := scan.Recognize[byte](ascii.DigitRun{}, s); err == nil {
			fmt.Fprintf(out, "%6d  Number %q\n", start, view)
			continue
		}
		if view, err := ascii.Text(s); err == nil {
			fmt.Fprintf(out, "%6d  Text %q\n", start, view)
			continue
		}

		log.Debugf("skipping byte %q at offset %d", s.Remaining()[0], start)
		s.BumpBy(1)
	}

	return nil
}
