// Package cmd wires the cobra command surface: a root command that
// establishes the broker session and a registry of subcommands gated on
// connection availability.
package cmd

import (
	"fmt"
	"os"

	"github.com/mandereck/topicadm/internal/config"
	"github.com/mandereck/topicadm/internal/console"
	"github.com/mandereck/topicadm/internal/domain"
	"github.com/mandereck/topicadm/internal/infrastructure/kafka"
	"github.com/mandereck/topicadm/internal/session"
	"github.com/mandereck/topicadm/internal/utils"
	"github.com/spf13/cobra"
)

type rootArgs struct {
	configPath string
	cluster    string
	verbose    bool
}

// NewRootCmd builds the root command. The session starts disconnected;
// PersistentPreRunE connects it before any broker-facing subcommand runs.
func NewRootCmd(sess *session.Session, factory domain.ClientFactory) *cobra.Command {
	rtArgs := &rootArgs{}
	cmd := &cobra.Command{
		Use:           "topicadm",
		Short:         "Administer topics of a Kafka cluster: add, remove, list and bulk-remove with filtering.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if rtArgs.verbose {
				utils.SetLogLevel("debug")
			}
			if !requiresBroker(cmd.Name()) {
				return nil
			}
			path := rtArgs.configPath
			if path == "" {
				path = config.FindPath()
			}
			cfg, err := config.ReadConfig(path)
			if err != nil {
				return fmt.Errorf("reading configuration '%s': %w", path, err)
			}
			return sess.Connect(cfg, rtArgs.cluster, factory)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&rtArgs.configPath, "config", "c", "", "path to the configuration file")
	flags.StringVar(&rtArgs.cluster, "cluster", "", "named cluster entry to connect to (default: first entry)")
	flags.BoolVarP(&rtArgs.verbose, "verbose", "v", false, "enable debug logging")

	register(cmd, sess)
	return cmd
}

// Execute runs the CLI.
func Execute() {
	utils.InitLogger()

	sess := session.New(console.NewTerminal(os.Stdin, os.Stdout))
	defer sess.Close()

	root := NewRootCmd(sess, kafka.NewFactory())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
