package kafka

import (
	"github.com/mandereck/topicadm/internal/config"
	"github.com/mandereck/topicadm/internal/domain"
)

// Factory creates broker clients from configuration.
type Factory struct{}

// NewFactory creates a new client factory.
func NewFactory() *Factory {
	return &Factory{}
}

// CreateClient creates a new broker client from configuration.
func (f *Factory) CreateClient(cfg config.ClusterConfig) (domain.BrokerClient, error) {
	return NewClient(cfg)
}
