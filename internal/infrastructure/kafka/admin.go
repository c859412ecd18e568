package kafka

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/mandereck/topicadm/internal/domain"
	"github.com/mandereck/topicadm/internal/utils"
	"github.com/twmb/franz-go/pkg/kadm"
)

// AdminClient is the slice of the kadm surface the Admin needs; kept
// narrow so tests can fake it.
type AdminClient interface {
	BrokerMetadata(ctx context.Context) (kadm.Metadata, error)
	ListTopics(ctx context.Context, topics ...string) (kadm.TopicDetails, error)
	ListTopicsWithInternal(ctx context.Context, topics ...string) (kadm.TopicDetails, error)
	ListEndOffsets(ctx context.Context, topics ...string) (kadm.ListedOffsets, error)
	ListGroups(ctx context.Context, filterStates ...string) (kadm.ListedGroups, error)
	FetchOffsetsForTopics(ctx context.Context, group string, topics ...string) (kadm.OffsetResponses, error)
	CreateTopic(ctx context.Context, partitions int32, replicationFactor int16, configs map[string]*string, topic string) (kadm.CreateTopicResponse, error)
	DeleteTopic(ctx context.Context, topic string) (kadm.DeleteTopicResponse, error)
}

type Admin struct {
	client AdminClient
}

// NewAdmin creates a new Admin
func NewAdmin(client AdminClient) *Admin {
	return &Admin{client: client}
}

// BrokerMetadata returns broker metadata (used for health checks)
func (a *Admin) BrokerMetadata(ctx context.Context) (kadm.Metadata, error) {
	return a.client.BrokerMetadata(ctx)
}

// ListTopics returns the sorted topic names, excluding Kafka internal
// topics unless includeInternal is set.
func (a *Admin) ListTopics(ctx context.Context, includeInternal bool) ([]string, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var details kadm.TopicDetails
	var err error
	if includeInternal {
		details, err = a.client.ListTopicsWithInternal(cctx)
	} else {
		details, err = a.client.ListTopics(cctx)
	}
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(details))
	for name := range details {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// TopicStats computes the traffic counters for one topic. Enqueued is the
// sum of partition end offsets; dequeued is the sum over partitions of the
// highest offset committed by any consumer group.
func (a *Admin) TopicStats(ctx context.Context, topic string) (domain.Topic, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	ends, err := a.client.ListEndOffsets(cctx, topic)
	if err != nil {
		return domain.Topic{}, err
	}

	var enqueued int64
	for _, partitions := range ends {
		for _, o := range partitions {
			if o.Err != nil {
				return domain.Topic{}, o.Err
			}
			enqueued += o.Offset
		}
	}

	groups, err := a.client.ListGroups(cctx)
	if err != nil {
		return domain.Topic{}, err
	}

	committed := make(map[int32]int64)
	for group := range groups {
		resps, err := a.client.FetchOffsetsForTopics(cctx, group, topic)
		if err != nil {
			// Groups that cannot be read contribute nothing to the counter.
			utils.Logger.Debug("fetch committed offsets failed", "group", group, "topic", topic, "err", err)
			continue
		}
		for _, partitions := range resps {
			for p, r := range partitions {
				if r.Err != nil || r.At < 0 {
					continue
				}
				if r.At > committed[p] {
					committed[p] = r.At
				}
			}
		}
	}

	var dequeued int64
	for _, at := range committed {
		dequeued += at
	}

	return domain.Topic{Name: topic, Enqueued: enqueued, Dequeued: dequeued}, nil
}

// CreateTopic creates a topic using the broker default partition count and
// replication factor.
func (a *Admin) CreateTopic(ctx context.Context, topic string) error {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resp, err := a.client.CreateTopic(cctx, -1, -1, nil, topic)
	if err != nil {
		return err
	}
	return resp.Err
}

// DeleteTopic deletes a topic.
func (a *Admin) DeleteTopic(ctx context.Context, topic string) error {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resp, err := a.client.DeleteTopic(cctx, topic)
	if err != nil {
		return err
	}
	return resp.Err
}

// ClusterInfo returns cluster id and broker addresses.
func (a *Admin) ClusterInfo(ctx context.Context) (*domain.ClusterInfo, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	meta, err := a.client.BrokerMetadata(cctx)
	if err != nil {
		return nil, err
	}

	brokers := make([]string, len(meta.Brokers))
	for i, b := range meta.Brokers {
		brokers[i] = b.Host + ":" + strconv.Itoa(int(b.Port))
	}

	return &domain.ClusterInfo{
		ID:      meta.Cluster,
		Brokers: brokers,
	}, nil
}
