package cmd

import (
	"strings"
	"testing"

	"github.com/mandereck/topicadm/internal/session"
	"github.com/mandereck/topicadm/internal/testutil"
	"github.com/mandereck/topicadm/internal/utils"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestRequiresBroker(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"add-topic", "remove-topic", "list-topics", "remove-all-topics", "status"} {
		require.True(t, requiresBroker(name), name)
	}
	require.False(t, requiresBroker("version"))
	require.False(t, requiresBroker("unknown"))
}

func TestRegisterGatesOnConnection(t *testing.T) {
	t.Parallel()
	utils.InitLogger()

	sess := session.New(testutil.NewFakeConsole())
	root := &cobra.Command{Use: "topicadm", SilenceUsage: true, SilenceErrors: true}
	register(root, sess)

	// broker-facing commands are unavailable while disconnected
	root.SetArgs([]string{"list-topics"})
	err := root.Execute()
	require.ErrorContains(t, err, "requires an active broker connection")

	// version works without a connection
	var out strings.Builder
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "topicadm version")
}

func TestRegisterAllCommandsPresent(t *testing.T) {
	t.Parallel()
	utils.InitLogger()

	sess := session.New(testutil.NewFakeConsole())
	root := &cobra.Command{Use: "topicadm"}
	register(root, sess)

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, e := range commandTable {
		require.Contains(t, names, e.name)
	}
}
