package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	skerrors "github.com/msto63/strkit/foundation/core/errors"
	"github.com/msto63/strkit/foundation/utils/stringx"
)

var hashFuncs = map[string]func(string) string{
	"md5":    stringx.MD5,
	"sha1":   stringx.SHA1,
	"sha256": stringx.SHA256,
	"sha512": stringx.SHA512,
}

func newBase64Cmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base64",
		Short: "Encode or decode standard Base64",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "encode <text>",
			Short: "Encode text as padded standard Base64",
			Args:  cobra.ExactArgs(1),
			RunE: a.timed(func(cmd *cobra.Command, args []string) error {
				a.println(stringx.EncodeToBase64(args[0]))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "decode <base64>",
			Short: "Decode padded standard Base64 holding UTF-8 text",
			Args:  cobra.ExactArgs(1),
			RunE: a.timed(func(cmd *cobra.Command, args []string) error {
				s, err := stringx.DecodeBase64(args[0])
				if err != nil {
					return err
				}
				a.println(s)
				return nil
			}),
		},
	)
	return cmd
}

func newURLEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "urlencode <text>",
		Short: "Percent-encode everything outside the URL host-safe set",
		Args:  cobra.ExactArgs(1),
		RunE: a.timed(func(cmd *cobra.Command, args []string) error {
			a.println(stringx.URLEncode(args[0]))
			return nil
		}),
	}
}

func newEntitiesCmd(a *app) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "entities <text>",
		Short: "Replace percent-encoded entities such as %C3%A9",
		Long: `Replace percent-encoded entities with the characters they stand for. The
built-in table can be extended through the [entities] table of the config
file. With --list the active table is printed instead.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: a.timed(func(cmd *cobra.Command, args []string) error {
			if list {
				for _, e := range a.entities.Entries() {
					a.println(e.Token + "\t" + e.Replacement)
				}
				return nil
			}
			a.println(stringx.ConvertEntities(args[0], a.entities))
			return nil
		}),
	}

	cmd.Flags().BoolVar(&list, "list", false, "print the active entity table")
	return cmd
}

func newHashCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "hash <md5|sha1|sha256|sha512> <text>",
		Short:     "Print the hex digest of text",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"md5", "sha1", "sha256", "sha512"},
		RunE: a.timed(func(cmd *cobra.Command, args []string) error {
			fn, ok := hashFuncs[strings.ToLower(args[0])]
			if !ok {
				return skerrors.InvalidInput("cli", "hash", args[0], "md5, sha1, sha256 or sha512")
			}
			a.println(fn(args[1]))
			return nil
		}),
	}
}

func newUUIDCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "uuid [text]",
		Short: "Generate a random UUID, or check whether text is one",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.timed(func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.println(stringx.IsUUID(args[0]))
				return nil
			}
			a.println(stringx.NewUUID())
			return nil
		}),
	}
}
