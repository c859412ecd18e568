package cmd

import (
	"fmt"

	"github.com/mandereck/topicadm/internal/session"
	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func newVersionCmd(_ *session.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the topicadm version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "topicadm version", version)
			return nil
		},
	}
}
