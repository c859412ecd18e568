// Package session carries the per-invocation connection state that every
// command handler receives, replacing any ambient global.
package session

import (
	"fmt"

	"github.com/mandereck/topicadm/internal/config"
	"github.com/mandereck/topicadm/internal/console"
	"github.com/mandereck/topicadm/internal/domain"
	"github.com/mandereck/topicadm/internal/utils"
)

// Session is created when a broker connection is established and torn
// down when the invocation ends.
type Session struct {
	Cluster config.ClusterConfig
	Client  domain.BrokerClient
	Console console.Console
	SortKey domain.SortKey
}

// New returns a disconnected session bound to a console.
func New(c console.Console) *Session {
	return &Session{Console: c}
}

// Connect resolves the cluster entry and opens the broker client.
func (s *Session) Connect(cfg config.FileConfig, clusterName string, factory domain.ClientFactory) error {
	cluster, ok := cfg.Cluster(clusterName)
	if !ok {
		if clusterName == "" {
			return fmt.Errorf("no clusters configured")
		}
		return fmt.Errorf("cluster '%s' not found in configuration", clusterName)
	}

	client, err := factory.CreateClient(cluster)
	if err != nil {
		return fmt.Errorf("connecting to cluster '%s': %w", cluster.Name, err)
	}

	s.Cluster = cluster
	s.Client = client
	s.SortKey = domain.SortKeyFromString(cfg.Sort)
	utils.Logger.Debug("session connected", "cluster", cluster.Name, "auth", cluster.GetAuthType())
	return nil
}

// Connected reports whether a broker connection is currently established.
// Commands that talk to the broker are only available when this is true.
func (s *Session) Connected() bool {
	return s != nil && s.Client != nil
}

// Close tears the broker connection down.
func (s *Session) Close() {
	if s.Client != nil {
		s.Client.Close()
		s.Client = nil
	}
}
