package domain

import (
	"context"

	"github.com/mandereck/topicadm/internal/config"
)

// ClientFactory creates broker clients from configuration.
type ClientFactory interface {
	CreateClient(cfg config.ClusterConfig) (BrokerClient, error)
}

// BrokerClient defines the narrow management capability set this tool
// needs from a broker connection. It must be safe for concurrent reads;
// mutations may be serialized by callers.
type BrokerClient interface {
	IsHealthy() bool
	ListTopics(ctx context.Context, includeInternal bool) ([]string, error)
	TopicStats(ctx context.Context, name string) (Topic, error)
	CreateTopic(ctx context.Context, name string) error
	DeleteTopic(ctx context.Context, name string) error
	ClusterInfo(ctx context.Context) (*ClusterInfo, error)
	Close()
}

// ClusterInfo summarizes the cluster a session is connected to.
type ClusterInfo struct {
	ID      string
	Brokers []string
}
