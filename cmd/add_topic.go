package cmd

import (
	"context"
	"fmt"

	"github.com/mandereck/topicadm/internal/application"
	"github.com/mandereck/topicadm/internal/session"
	"github.com/spf13/cobra"
)

type addTopicArgs struct {
	name string
}

func newAddTopicCmd(sess *session.Session) *cobra.Command {
	cmdArgs := &addTopicArgs{}
	cmd := &cobra.Command{
		Use:   "add-topic",
		Short: "Add a topic to the broker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddTopic(cmd.Context(), sess, cmdArgs.name)
		},
	}
	cmd.Flags().StringVarP(&cmdArgs.name, "name", "n", "", "topic name (required)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func runAddTopic(ctx context.Context, sess *session.Session, name string) error {
	svc := application.NewTopicService(sess.Client, sess.SortKey)
	if err := svc.AddTopic(ctx, name); err != nil {
		return err
	}
	sess.Console.Info(fmt.Sprintf("Topic added: '%s'", name))
	return nil
}
