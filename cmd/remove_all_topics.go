package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mandereck/topicadm/internal/application"
	"github.com/mandereck/topicadm/internal/session"
	"github.com/spf13/cobra"
)

type removeAllTopicsArgs struct {
	force    bool
	dryRun   bool
	filter   string
	enqueued string
	dequeued string
}

func newRemoveAllTopicsCmd(sess *session.Session) *cobra.Command {
	cmdArgs := &removeAllTopicsArgs{}
	cmd := &cobra.Command{
		Use:   "remove-all-topics",
		Short: "Remove every topic matching the given filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemoveAllTopics(cmd.Context(), sess, cmdArgs)
		},
	}
	flags := cmd.Flags()
	flags.BoolVarP(&cmdArgs.force, "force", "f", false, "skip the confirmation prompt")
	flags.BoolVar(&cmdArgs.dryRun, "dry-run", false, "report what would be removed without removing anything")
	flags.StringVar(&cmdArgs.filter, "filter", "", "keep only topics whose name contains this value (case-insensitive)")
	flags.StringVar(&cmdArgs.enqueued, "enqueued", "", "enqueued count threshold, e.g. '>100' or '=0'")
	flags.StringVar(&cmdArgs.dequeued, "dequeued", "", "dequeued count threshold, e.g. '<=10'")
	return cmd
}

// runRemoveAllTopics gates the whole batch behind one confirmation, then
// removes (or, in dry-run mode, only reports) each matching topic.
func runRemoveAllTopics(ctx context.Context, sess *session.Session, cmdArgs *removeAllTopicsArgs) error {
	crit, err := application.ParseCriteria(cmdArgs.filter, cmdArgs.enqueued, cmdArgs.dequeued)
	if err != nil {
		return err
	}

	if !cmdArgs.dryRun {
		if !sess.Console.Confirm("Remove all matching topics?", cmdArgs.force) {
			return nil
		}
	}

	svc := application.NewTopicService(sess.Client, sess.SortKey)
	names, err := svc.RemoveAll(ctx, crit, cmdArgs.dryRun)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		sess.Console.Warn(noTopicsFound)
		return nil
	}

	lines := make([]string, len(names))
	for i, name := range names {
		if cmdArgs.dryRun {
			lines[i] = fmt.Sprintf("Topic to be removed: '%s'", name)
		} else {
			lines[i] = fmt.Sprintf("Topic removed: '%s'", name)
		}
	}
	sort.Strings(lines)

	fragment := ""
	if cmdArgs.dryRun {
		fragment = "to be "
	}
	sess.Console.Info(fmt.Sprintf("%s\nTotal topics %sremoved: %d", strings.Join(lines, "\n"), fragment, len(names)))
	return nil
}
