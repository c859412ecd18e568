package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/mandereck/topicadm/internal/session"
	"github.com/spf13/cobra"
)

func newStatusCmd(sess *session.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show connection and cluster summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.Context(), sess)
		},
	}
}

func runStatus(ctx context.Context, sess *session.Session) error {
	info, err := sess.Client.ClusterInfo(ctx)
	if err != nil {
		return err
	}
	topics, err := sess.Client.ListTopics(ctx, false)
	if err != nil {
		return err
	}

	sess.Console.Info(fmt.Sprintf(
		"Cluster: %s\nBrokers: %s\nAuth: %s\nTopics: %d",
		info.ID,
		strings.Join(info.Brokers, ", "),
		sess.Cluster.GetAuthType(),
		len(topics),
	))
	return nil
}
