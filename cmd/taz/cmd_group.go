package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dhamidi/taz/ascii"
	"github.com/dhamidi/taz/scan"
)

func newGroupCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:           "group [file]",
		Short:         "Extract the first delimited group from a file or stdin",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := groupKinds(kind)
			if err != nil {
				return err
			}
			data, err := readInput(args)
			if err != nil {
				return err
			}
			return extractGroup(cmd.OutOrStdout(), data, kinds)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "any", "group kind: parens, brackets, braces, single, double, or any")

	return cmd
}

func groupKinds(kind string) ([]ascii.GroupKind, error) {
	switch kind {
	case "parens":
		return []ascii.GroupKind{ascii.Parens}, nil
	case "brackets":
		return []ascii.GroupKind{ascii.Brackets}, nil
	case "braces":
		return []ascii.GroupKind{ascii.Braces}, nil
	case "single":
		return []ascii.GroupKind{ascii.SingleQuotes}, nil
	case "double":
		return []ascii.GroupKind{ascii.DoubleQuotes}, nil
	case "any":
		return []ascii.GroupKind{
			ascii.Parens,
			ascii.Brackets,
			ascii.Braces,
			ascii.SingleQuotes,
			ascii.DoubleQuotes,
		}, nil
	default:
		return nil, fmt.Errorf("unknown group kind %q", kind)
	}
}

// extractGroup advances byte by byte until a group of one of the wanted
// kinds opens at the cursor, then prints the group and its interior. A kind
// that opens at the cursor but never closes does not stop the scan; a group
// of another kind may still follow.
func extractGroup(out io.Writer, data []byte, kinds []ascii.GroupKind) error {
	s := scan.New(data)

	peeker := scan.NewPeeker(s)
	for _, kind := range kinds {
		peeker.Add(kind)
	}

	for !s.IsEmpty() {
		peeked, found, err := peeker.Peek()
		if err != nil {
			if errors.Is(err, scan.ErrUnterminatedGroup) {
				s.BumpBy(1)
				continue
			}
			return fmt.Errorf("at offset %d: %w", s.Position(), err)
		}
		if found {
			fmt.Fprintf(out, "offset %d\n", s.Position())
			fmt.Fprintf(out, "raw    %q\n", peeked.Raw())
			fmt.Fprintf(out, "inner  %q\n", peeked.Inner())
			return nil
		}
		s.BumpBy(1)
	}

	return fmt.Errorf("no group found")
}
