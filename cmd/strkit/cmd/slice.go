package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strkit/foundation/utils/stringx"
)

func newLengthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "length <text>",
		Short: "Print the number of characters",
		Args:  cobra.ExactArgs(1),
		RunE: a.timed(func(cmd *cobra.Command, args []string) error {
			a.println(stringx.Length(args[0]))
			return nil
		}),
	}
}

func newCharCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "char <text> <index>",
		Short: "Print the character at an index",
		Args:  cobra.ExactArgs(2),
		RunE: a.timed(func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex("char", args[1])
			if err != nil {
				return err
			}
			r, err := stringx.CharacterAt(args[0], i)
			if err != nil {
				return err
			}
			a.println(string(r))
			return nil
		}),
	}
}

func newSliceCmd(a *app) *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "slice <text> [--from i] [--to j]",
		Short: "Print the characters in [from, to)",
		Long: `Print a substring by character index. --from alone keeps the text from
that index on, --to alone keeps the text before it, both select [from, to).
Indices outside [0, length] are errors.`,
		Args: cobra.ExactArgs(1),
		RunE: a.timed(func(cmd *cobra.Command, args []string) error {
			var (
				result string
				err    error
			)
			hasFrom, hasTo := cmd.Flags().Changed("from"), cmd.Flags().Changed("to")
			switch {
			case hasFrom && hasTo:
				result, err = stringx.SubstringWithRange(args[0], from, to)
			case hasTo:
				result, err = stringx.SubstringToIndex(args[0], to)
			default:
				result, err = stringx.SubstringFromIndex(args[0], from)
			}
			if err != nil {
				return err
			}
			a.println(result)
			return nil
		}),
	}

	cmd.Flags().IntVar(&from, "from", 0, "first character index (inclusive)")
	cmd.Flags().IntVar(&to, "to", 0, "last character index (exclusive)")
	return cmd
}
