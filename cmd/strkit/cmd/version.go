package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/strkit/pkg/core/version"
)

func newVersionCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if asJSON {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				a.println(string(data))
				return nil
			}

			s := newStyles(a.stdout, a.color)
			fmt.Fprintln(a.stdout, s.title.Render("strkit v"+info.Version))
			fmt.Fprintf(a.stdout, "  %s %s\n", s.label.Render("Git Commit:"), info.GitCommit)
			fmt.Fprintf(a.stdout, "  %s %s\n", s.label.Render("Build Date:"), info.BuildDate)
			fmt.Fprintf(a.stdout, "  %s %s\n", s.label.Render("Go Version:"), info.GoVersion)
			fmt.Fprintf(a.stdout, "  %s %s\n", s.label.Render("OS/Arch:   "), info.Platform)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
