package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mandereck/topicadm/internal/application"
	"github.com/mandereck/topicadm/internal/session"
	"github.com/spf13/cobra"
)

const noTopicsFound = "No topics found"

var topicTableHeaders = []string{"Topic Name", "Enqueued", "Dequeued"}

type listTopicsArgs struct {
	filter   string
	enqueued string
	dequeued string
	internal bool
}

func newListTopicsCmd(sess *session.Session) *cobra.Command {
	cmdArgs := &listTopicsArgs{}
	cmd := &cobra.Command{
		Use:   "list-topics",
		Short: "List topics with their enqueued/dequeued counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListTopics(cmd.Context(), sess, cmdArgs)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&cmdArgs.filter, "filter", "", "keep only topics whose name contains this value (case-insensitive)")
	flags.StringVar(&cmdArgs.enqueued, "enqueued", "", "enqueued count threshold, e.g. '>100' or '=0'")
	flags.StringVar(&cmdArgs.dequeued, "dequeued", "", "dequeued count threshold, e.g. '<=10'")
	flags.BoolVar(&cmdArgs.internal, "internal", false, "include broker internal topics")
	return cmd
}

func runListTopics(ctx context.Context, sess *session.Session, cmdArgs *listTopicsArgs) error {
	crit, err := application.ParseCriteria(cmdArgs.filter, cmdArgs.enqueued, cmdArgs.dequeued)
	if err != nil {
		return err
	}
	crit.IncludeInternal = cmdArgs.internal

	svc := application.NewTopicService(sess.Client, sess.SortKey)
	topics, err := svc.ListTopics(ctx, crit)
	if err != nil {
		return err
	}
	if len(topics) == 0 {
		sess.Console.Warn(noTopicsFound)
		return nil
	}

	rows := make([][]string, len(topics))
	for i, t := range topics {
		rows[i] = []string{t.Name, strconv.FormatInt(t.Enqueued, 10), strconv.FormatInt(t.Dequeued, 10)}
	}
	table := sess.Console.RenderTable(topicTableHeaders, rows)
	sess.Console.Info(fmt.Sprintf("%s\n\nTotal topics: %d", table, len(topics)))
	return nil
}
