package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/strkit/foundation/utils/stringx"
)

func newHasCmd(a *app) *cobra.Command {
	var ignoreCase bool

	cmd := &cobra.Command{
		Use:   "has <text> <sub>",
		Short: "Print whether text contains sub",
		Args:  cobra.ExactArgs(2),
		RunE: a.timed(func(cmd *cobra.Command, args []string) error {
			a.println(stringx.HasString(args[0], args[1], !ignoreCase))
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "compare case-insensitively")
	return cmd
}

func newEmailCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "email <text>...",
		Short: "Check whether each argument is an e-mail address",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.timed(func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.println(stringx.IsEmail(args[0]))
				return nil
			}
			for _, arg := range args {
				fmt.Fprintf(a.stdout, "%s\t%v\n", arg, stringx.IsEmail(arg))
			}
			return nil
		}),
	}
}

func newCapitalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "capitalize <text>",
		Short: "Upper-case the first character and lower-case the rest",
		Args:  cobra.ExactArgs(1),
		RunE: a.timed(func(cmd *cobra.Command, args []string) error {
			a.println(stringx.SentenceCapitalized(args[0]))
			return nil
		}),
	}
}

func newDateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "date <timestamp>",
		Short:   "Render YYYY-MM-DDTHH:MM... as DD/MM/YYYY HH:MM",
		Example: "  strkit date 2024-03-15T09:45:00Z",
		Args:    cobra.ExactArgs(1),
		RunE: a.timed(func(cmd *cobra.Command, args []string) error {
			s, err := stringx.DateFromTimestamp(args[0])
			if err != nil {
				return err
			}
			a.println(s)
			return nil
		}),
	}
}

func newReplaceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replace <text> <pattern> [template]",
		Short: "Replace every case-insensitive regex match",
		Long: `Replace every case-insensitive match of a regular expression (RE2 syntax).
The template may reference groups as $1 or ${name}; without a template the
matches are removed.`,
		Example: `  strkit replace "John Smith" '(\w+)\s(\w+)' '${2}, ${1}'`,
		Args:    cobra.RangeArgs(2, 3),
		RunE: a.timed(func(cmd *cobra.Command, args []string) error {
			template := ""
			if len(args) == 3 {
				template = args[2]
			}
			s, err := stringx.ReplaceWithRegex(args[0], args[1], template)
			if err != nil {
				return err
			}
			a.println(s)
			return nil
		}),
	}
}

func newFloatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "float <text>",
		Short: "Parse text as a floating point number",
		Args:  cobra.ExactArgs(1),
		RunE: a.timed(func(cmd *cobra.Command, args []string) error {
			f, err := stringx.FloatValue(args[0])
			if err != nil {
				return err
			}
			a.println(strconv.FormatFloat(f, 'g', -1, 64))
			return nil
		}),
	}
}
