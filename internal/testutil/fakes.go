package testutil

import (
	"context"
	"sync"

	"github.com/mandereck/topicadm/internal/config"
	"github.com/mandereck/topicadm/internal/console"
	"github.com/mandereck/topicadm/internal/domain"
)

// FakeBrokerClient is a test double implementing domain.BrokerClient with
// configurable topics and counters. It records mutation calls.
type FakeBrokerClient struct {
	mu sync.Mutex

	Topics  map[string]domain.Topic
	Healthy bool

	ListErr   error
	StatsErr  error
	CreateErr error
	DeleteErr error

	Created []string
	Deleted []string
}

func NewFakeBrokerClient(topics ...domain.Topic) *FakeBrokerClient {
	f := &FakeBrokerClient{Healthy: true, Topics: map[string]domain.Topic{}}
	for _, t := range topics {
		f.Topics[t.Name] = t
	}
	return f
}

func (f *FakeBrokerClient) IsHealthy() bool { return f.Healthy }

func (f *FakeBrokerClient) ListTopics(_ context.Context, _ bool) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	names := make([]string, 0, len(f.Topics))
	for name := range f.Topics {
		names = append(names, name)
	}
	return names, nil
}

func (f *FakeBrokerClient) TopicStats(_ context.Context, name string) (domain.Topic, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.StatsErr != nil {
		return domain.Topic{}, f.StatsErr
	}
	return f.Topics[name], nil
}

func (f *FakeBrokerClient) CreateTopic(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.Created = append(f.Created, name)
	f.Topics[name] = domain.Topic{Name: name}
	return nil
}

func (f *FakeBrokerClient) DeleteTopic(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.Deleted = append(f.Deleted, name)
	delete(f.Topics, name)
	return nil
}

func (f *FakeBrokerClient) ClusterInfo(_ context.Context) (*domain.ClusterInfo, error) {
	return &domain.ClusterInfo{ID: "fake-cluster", Brokers: []string{"localhost:9092"}}, nil
}

func (f *FakeBrokerClient) Close() {}

// FakeConsole records messages and answers confirmations from a canned
// response.
type FakeConsole struct {
	ConfirmAnswer bool
	Prompts       []string
	Infos         []string
	Warns         []string
}

func NewFakeConsole() *FakeConsole {
	return &FakeConsole{ConfirmAnswer: true}
}

func (c *FakeConsole) Confirm(prompt string, force bool) bool {
	if force {
		return true
	}
	c.Prompts = append(c.Prompts, prompt)
	return c.ConfirmAnswer
}

func (c *FakeConsole) Info(msg string) { c.Infos = append(c.Infos, msg) }
func (c *FakeConsole) Warn(msg string) { c.Warns = append(c.Warns, msg) }

func (c *FakeConsole) RenderTable(headers []string, rows [][]string) string {
	return console.FormatTable(headers, rows)
}

// FakeFactory returns a FakeBrokerClient for any config.
type FakeFactory struct {
	Client domain.BrokerClient
	Err    error
}

func (f *FakeFactory) CreateClient(_ config.ClusterConfig) (domain.BrokerClient, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if f.Client != nil {
		return f.Client, nil
	}
	return NewFakeBrokerClient(), nil
}
