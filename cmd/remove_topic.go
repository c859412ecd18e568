package cmd

import (
	"context"
	"fmt"

	"github.com/mandereck/topicadm/internal/application"
	"github.com/mandereck/topicadm/internal/session"
	"github.com/spf13/cobra"
)

type removeTopicArgs struct {
	name  string
	force bool
}

func newRemoveTopicCmd(sess *session.Session) *cobra.Command {
	cmdArgs := &removeTopicArgs{}
	cmd := &cobra.Command{
		Use:   "remove-topic",
		Short: "Remove a topic from the broker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemoveTopic(cmd.Context(), sess, cmdArgs.name, cmdArgs.force)
		},
	}
	cmd.Flags().StringVarP(&cmdArgs.name, "name", "n", "", "topic name (required)")
	cmd.Flags().BoolVarP(&cmdArgs.force, "force", "f", false, "skip the confirmation prompt")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func runRemoveTopic(ctx context.Context, sess *session.Session, name string, force bool) error {
	svc := application.NewTopicService(sess.Client, sess.SortKey)
	if err := svc.ValidateTopicExists(ctx, name); err != nil {
		return err
	}
	// Declining is a silent no-op, not an error.
	if !sess.Console.Confirm(fmt.Sprintf("Remove topic '%s'?", name), force) {
		return nil
	}
	if err := svc.RemoveTopic(ctx, name); err != nil {
		return err
	}
	sess.Console.Info(fmt.Sprintf("Topic removed: '%s'", name))
	return nil
}
