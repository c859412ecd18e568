package application

import (
	"context"
	"errors"
	"testing"

	"github.com/mandereck/topicadm/internal/domain"
	"github.com/mandereck/topicadm/internal/testutil"
	"github.com/mandereck/topicadm/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestTopicServiceExistenceGuards(t *testing.T) {
	t.Parallel()
	utils.InitLogger()
	ctx := context.Background()

	client := testutil.NewFakeBrokerClient(domain.Topic{Name: "orders"})
	svc := NewTopicService(client, domain.SortByName)

	require.NoError(t, svc.ValidateTopicExists(ctx, "orders"))
	require.ErrorIs(t, svc.ValidateTopicExists(ctx, "missing"), ErrTopicNotFound)

	require.NoError(t, svc.ValidateTopicNotExists(ctx, "missing"))
	require.ErrorIs(t, svc.ValidateTopicNotExists(ctx, "orders"), ErrTopicExists)
}

func TestTopicServiceAddTopic(t *testing.T) {
	t.Parallel()
	utils.InitLogger()
	ctx := context.Background()

	client := testutil.NewFakeBrokerClient(domain.Topic{Name: "orders"})
	svc := NewTopicService(client, domain.SortByName)

	// existing topic: no mutation issued
	err := svc.AddTopic(ctx, "orders")
	require.ErrorIs(t, err, ErrTopicExists)
	require.Empty(t, client.Created)

	require.ErrorIs(t, svc.AddTopic(ctx, ""), ErrEmptyTopicName)

	require.NoError(t, svc.AddTopic(ctx, "invoices"))
	require.Equal(t, []string{"invoices"}, client.Created)
}

func TestTopicServiceRemoveTopic(t *testing.T) {
	t.Parallel()
	utils.InitLogger()
	ctx := context.Background()

	client := testutil.NewFakeBrokerClient(domain.Topic{Name: "orders"})
	svc := NewTopicService(client, domain.SortByName)

	// absent topic: no mutation issued
	err := svc.RemoveTopic(ctx, "missing")
	require.ErrorIs(t, err, ErrTopicNotFound)
	require.Empty(t, client.Deleted)

	require.NoError(t, svc.RemoveTopic(ctx, "orders"))
	require.Equal(t, []string{"orders"}, client.Deleted)
}

func TestTopicServiceListTopicsFiltering(t *testing.T) {
	t.Parallel()
	utils.InitLogger()
	ctx := context.Background()

	client := testutil.NewFakeBrokerClient(
		domain.Topic{Name: "A", Enqueued: 5, Dequeued: 2},
		domain.Topic{Name: "B", Enqueued: 10, Dequeued: 1},
	)
	svc := NewTopicService(client, domain.SortByName)

	crit, err := ParseCriteria("", ">4", "")
	require.NoError(t, err)
	topics, err := svc.ListTopics(ctx, crit)
	require.NoError(t, err)
	require.Len(t, topics, 2)

	crit, err = ParseCriteria("", ">6", "")
	require.NoError(t, err)
	topics, err = svc.ListTopics(ctx, crit)
	require.NoError(t, err)
	require.Len(t, topics, 1)
	require.Equal(t, "B", topics[0].Name)

	// name filter is a case-insensitive substring test
	crit, err = ParseCriteria("b", "", "")
	require.NoError(t, err)
	topics, err = svc.ListTopics(ctx, crit)
	require.NoError(t, err)
	require.Len(t, topics, 1)
	require.Equal(t, "B", topics[0].Name)

	// both thresholds must hold
	crit, err = ParseCriteria("", ">4", ">=2")
	require.NoError(t, err)
	topics, err = svc.ListTopics(ctx, crit)
	require.NoError(t, err)
	require.Len(t, topics, 1)
	require.Equal(t, "A", topics[0].Name)
}

func TestTopicServiceListTopicsSorting(t *testing.T) {
	t.Parallel()
	utils.InitLogger()
	ctx := context.Background()

	// counters beyond 9 digits must still order numerically
	client := testutil.NewFakeBrokerClient(
		domain.Topic{Name: "b", Enqueued: 9, Dequeued: 10000000000},
		domain.Topic{Name: "a", Enqueued: 10, Dequeued: 9},
		domain.Topic{Name: "C", Enqueued: 2, Dequeued: 500},
	)

	byName, err := NewTopicService(client, domain.SortByName).ListTopics(ctx, Criteria{})
	require.NoError(t, err)
	require.Equal(t, []string{"C", "a", "b"}, names(byName))

	byEnqueued, err := NewTopicService(client, domain.SortByEnqueued).ListTopics(ctx, Criteria{})
	require.NoError(t, err)
	require.Equal(t, []string{"C", "b", "a"}, names(byEnqueued))

	byDequeued, err := NewTopicService(client, domain.SortByDequeued).ListTopics(ctx, Criteria{})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "C", "b"}, names(byDequeued))
}

func TestTopicServiceListTopicsErrors(t *testing.T) {
	t.Parallel()
	utils.InitLogger()
	ctx := context.Background()

	client := testutil.NewFakeBrokerClient(domain.Topic{Name: "orders"})
	client.ListErr = errors.New("broker down")
	svc := NewTopicService(client, domain.SortByName)

	_, err := svc.ListTopics(ctx, Criteria{})
	require.Error(t, err)

	client.ListErr = nil
	client.StatsErr = errors.New("stats unavailable")
	_, err = svc.ListTopics(ctx, Criteria{})
	require.ErrorContains(t, err, "orders")
}

func TestTopicServiceRemoveAll(t *testing.T) {
	t.Parallel()
	utils.InitLogger()
	ctx := context.Background()

	client := testutil.NewFakeBrokerClient(
		domain.Topic{Name: "orders", Enqueued: 5},
		domain.Topic{Name: "orders.dead", Enqueued: 0},
		domain.Topic{Name: "invoices", Enqueued: 7},
	)
	svc := NewTopicService(client, domain.SortByName)

	crit, err := ParseCriteria("orders", "", "")
	require.NoError(t, err)

	// dry run never mutates
	names, err := svc.RemoveAll(ctx, crit, true)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"orders", "orders.dead"}, names)
	require.Empty(t, client.Deleted)

	names, err = svc.RemoveAll(ctx, crit, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"orders", "orders.dead"}, names)
	require.ElementsMatch(t, []string{"orders", "orders.dead"}, client.Deleted)

	// untouched topic survives
	remaining, err := client.ListTopics(ctx, true)
	require.NoError(t, err)
	require.Equal(t, []string{"invoices"}, remaining)
}

func names(topics []domain.Topic) []string {
	out := make([]string, len(topics))
	for i, t := range topics {
		out[i] = t.Name
	}
	return out
}
