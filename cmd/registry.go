package cmd

import (
	"fmt"

	"github.com/mandereck/topicadm/internal/session"
	"github.com/spf13/cobra"
)

// entry describes one registered command: its builder and whether it needs
// an established broker connection to be available.
type entry struct {
	name        string
	build       func(*session.Session) *cobra.Command
	needsBroker bool
}

var commandTable = []entry{
	{name: "add-topic", build: newAddTopicCmd, needsBroker: true},
	{name: "remove-topic", build: newRemoveTopicCmd, needsBroker: true},
	{name: "list-topics", build: newListTopicsCmd, needsBroker: true},
	{name: "remove-all-topics", build: newRemoveAllTopicsCmd, needsBroker: true},
	{name: "status", build: newStatusCmd, needsBroker: true},
	{name: "version", build: newVersionCmd},
}

func requiresBroker(name string) bool {
	for _, e := range commandTable {
		if e.name == name {
			return e.needsBroker
		}
	}
	return false
}

// register adds every table entry to the root, wrapping each handler with
// its availability check.
func register(root *cobra.Command, sess *session.Session) {
	for _, e := range commandTable {
		e := e
		c := e.build(sess)
		run := c.RunE
		c.RunE = func(cmd *cobra.Command, args []string) error {
			if e.needsBroker && !sess.Connected() {
				return fmt.Errorf("command '%s' requires an active broker connection", e.name)
			}
			return run(cmd, args)
		}
		root.AddCommand(c)
	}
}
