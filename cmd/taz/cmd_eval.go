package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/taz/expr"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "eval <expression>...",
		Short:         "Evaluate an integer arithmetic expression",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("taz.eval")
			input := strings.Join(args, " ")
			log.Debugf("input: %q", input)

			value, err := expr.Eval(input)
			if err != nil {
				return fmt.Errorf("evaluate %q: %w", input, err)
			}

			fmt.Println(value)
			return nil
		},
	}

	return cmd
}
