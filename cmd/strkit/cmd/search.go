package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strkit/foundation/utils/stringx"
)

func newIndexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "index <text> <char>",
		Short: "Print the index of the first occurrence of a character",
		Args:  cobra.ExactArgs(2),
		RunE: a.timed(func(cmd *cobra.Command, args []string) error {
			c, err := parseRune("index", args[1])
			if err != nil {
				return err
			}
			i, found := stringx.IndexOfCharacter(args[0], c)
			if !found {
				return errNotFound
			}
			a.println(i)
			return nil
		}),
	}
}

func newCutCmd(a *app) *cobra.Command {
	var before bool

	cmd := &cobra.Command{
		Use:   "cut <text> <char>",
		Short: "Print the text from the first occurrence of a character",
		Long: `Print the text starting at the first occurrence of a character, the
character included. With --before print the text preceding it instead.`,
		Args: cobra.ExactArgs(2),
		RunE: a.timed(func(cmd *cobra.Command, args []string) error {
			c, err := parseRune("cut", args[1])
			if err != nil {
				return err
			}

			var (
				result string
				found  bool
			)
			if before {
				result, found = stringx.SubstringToCharacter(args[0], c)
			} else {
				result, found = stringx.SubstringFromCharacter(args[0], c)
			}
			if !found {
				return errNotFound
			}
			a.println(result)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&before, "before", false, "print the text before the character")
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <text> <start> <end>",
		Short: "Print the text between a start and an end character",
		Long: `Print the text between the start and end delimiter characters. Without a
start delimiter the text begins at the first character; without an end
delimiter it runs to the end of the input.`,
		Args: cobra.ExactArgs(3),
		RunE: a.timed(func(cmd *cobra.Command, args []string) error {
			start, err := parseRune("search", args[1])
			if err != nil {
				return err
			}
			end, err := parseRune("search", args[2])
			if err != nil {
				return err
			}
			a.println(stringx.SearchInString(args[0], start, end))
			return nil
		}),
	}
}
