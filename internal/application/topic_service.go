package application

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mandereck/topicadm/internal/domain"
	"github.com/mandereck/topicadm/internal/utils"
)

// statsWorkers bounds the per-topic counter fetch fan-out.
const statsWorkers = 8

// TopicService implements topic administration against a broker client.
type TopicService struct {
	client  domain.BrokerClient
	sortKey domain.SortKey
}

// NewTopicService creates a new topic service.
func NewTopicService(client domain.BrokerClient, sortKey domain.SortKey) *TopicService {
	return &TopicService{client: client, sortKey: sortKey}
}

// ValidateTopicExists fails with ErrTopicNotFound if no topic with that
// exact name is registered on the broker.
func (s *TopicService) ValidateTopicExists(ctx context.Context, name string) error {
	names, err := s.client.ListTopics(ctx, true)
	if err != nil {
		return err
	}
	for _, n := range names {
		if n == name {
			return nil
		}
	}
	return fmt.Errorf("topic '%s': %w", name, ErrTopicNotFound)
}

// ValidateTopicNotExists fails with ErrTopicExists if a topic with that
// exact name is registered on the broker.
func (s *TopicService) ValidateTopicNotExists(ctx context.Context, name string) error {
	names, err := s.client.ListTopics(ctx, true)
	if err != nil {
		return err
	}
	for _, n := range names {
		if n == name {
			return fmt.Errorf("topic '%s': %w", name, ErrTopicExists)
		}
	}
	return nil
}

// AddTopic creates a topic after verifying it does not already exist.
func (s *TopicService) AddTopic(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyTopicName
	}
	if err := s.ValidateTopicNotExists(ctx, name); err != nil {
		return err
	}
	if err := s.client.CreateTopic(ctx, name); err != nil {
		utils.Logger.Error("create topic failed", "topic", name, "err", err)
		return err
	}
	utils.Logger.Info("topic created", "topic", name)
	return nil
}

// RemoveTopic deletes a topic after verifying it exists. Confirmation is
// the caller's concern; this method always mutates.
func (s *TopicService) RemoveTopic(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyTopicName
	}
	if err := s.ValidateTopicExists(ctx, name); err != nil {
		return err
	}
	if err := s.client.DeleteTopic(ctx, name); err != nil {
		utils.Logger.Error("delete topic failed", "topic", name, "err", err)
		return err
	}
	utils.Logger.Info("topic deleted", "topic", name)
	return nil
}

// ListTopics queries the broker, applies the criteria and returns the
// matching topics with their counters, sorted by the configured key.
// Counter fetches fan out across a bounded worker pool and are joined
// before filtering and sorting.
func (s *TopicService) ListTopics(ctx context.Context, crit Criteria) ([]domain.Topic, error) {
	names, err := s.client.ListTopics(ctx, crit.IncludeInternal)
	if err != nil {
		return nil, err
	}

	matched := make([]string, 0, len(names))
	for _, n := range names {
		if crit.matchesName(n) {
			matched = append(matched, n)
		}
	}

	stats := make([]domain.Topic, len(matched))
	errs := make([]error, len(matched))
	sem := make(chan struct{}, statsWorkers)
	var wg sync.WaitGroup
	for i, name := range matched {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			stats[i], errs[i] = s.client.TopicStats(ctx, name)
		}(i, name)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("fetching stats for topic '%s': %w", matched[i], err)
		}
	}

	out := make([]domain.Topic, 0, len(stats))
	for _, t := range stats {
		if crit.Enqueued.Matches(t.Enqueued) && crit.Dequeued.Matches(t.Dequeued) {
			out = append(out, t)
		}
	}

	sortTopics(out, s.sortKey)
	return out, nil
}

// RemoveAll deletes every topic matching the criteria and returns the
// names processed. In dry-run mode no delete call is issued and the
// candidate names are returned as-is. Deletions are serialized; a failure
// aborts the remainder but does not roll back topics already removed.
func (s *TopicService) RemoveAll(ctx context.Context, crit Criteria, dryRun bool) ([]string, error) {
	topics, err := s.ListTopics(ctx, crit)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(topics))
	for _, t := range topics {
		names = append(names, t.Name)
	}
	if dryRun {
		return names, nil
	}

	for i, name := range names {
		if err := s.client.DeleteTopic(ctx, name); err != nil {
			utils.Logger.Error("bulk delete failed", "topic", name, "err", err)
			return names[:i], fmt.Errorf("removing topic '%s': %w", name, err)
		}
		utils.Logger.Info("topic deleted", "topic", name)
	}
	return names, nil
}

func sortTopics(topics []domain.Topic, key domain.SortKey) {
	switch key {
	case domain.SortByEnqueued:
		sort.Slice(topics, func(i, j int) bool { return topics[i].Enqueued < topics[j].Enqueued })
	case domain.SortByDequeued:
		sort.Slice(topics, func(i, j int) bool { return topics[i].Dequeued < topics[j].Dequeued })
	default:
		sort.Slice(topics, func(i, j int) bool { return topics[i].Name < topics[j].Name })
	}
}
