package jet_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/jet-merchant/internal/jet"
	"github.com/donaldgifford/jet-merchant/internal/jet/mocks"
)

func TestCollector_Collect(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockMerchantClient(t)
	client.EXPECT().
		GetOrders(mock.Anything, jet.OrderReady).
		Return(&jet.OrderURLs{OrderURLs: []string{"/orders/a", "/orders/b"}}, nil)
	client.EXPECT().
		GetOrders(mock.Anything, jet.OrderAcknowledged).
		Return(&jet.OrderURLs{OrderURLs: []string{"/orders/c"}}, nil)
	client.EXPECT().
		GetOrderDetail(mock.Anything, "/orders/a").
		Return(&jet.Order{MerchantOrderID: "a", Status: jet.OrderReady}, nil)
	client.EXPECT().
		GetOrderDetail(mock.Anything, "/orders/c").
		Return(&jet.Order{MerchantOrderID: "c", Status: jet.OrderAcknowledged}, nil)

	checker := mocks.NewMockKnownOrderChecker(t)
	checker.EXPECT().HasOrder(mock.Anything, "/orders/a", jet.OrderReady).Return(false, nil)
	checker.EXPECT().HasOrder(mock.Anything, "/orders/b", jet.OrderReady).Return(true, nil)
	checker.EXPECT().HasOrder(mock.Anything, "/orders/c", jet.OrderAcknowledged).Return(false, nil)

	c := jet.NewCollector(client, jet.WithKnownOrderChecker(checker))

	res, err := c.Collect(context.Background(), jet.OrderReady, jet.OrderAcknowledged)
	require.NoError(t, err)

	assert.Equal(t, 3, res.URLsSeen)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Orders, 2)
	assert.Equal(t, "/orders/a", res.Orders[0].URL)
	assert.Equal(t, "a", res.Orders[0].Order.MerchantOrderID)
	assert.Equal(t, "/orders/c", res.Orders[1].URL)
	assert.Equal(t, map[jet.OrderStatus]int{
		jet.OrderReady:        1,
		jet.OrderAcknowledged: 1,
	}, res.ByStatus)
}

func TestCollector_Collect_AllStatusesByDefault(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockMerchantClient(t)
	for _, s := range jet.AllOrderStatuses {
		client.EXPECT().
			GetOrders(mock.Anything, s).
			Return(&jet.OrderURLs{}, nil).
			Once()
	}

	res, err := jet.NewCollector(client).Collect(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.URLsSeen)
	assert.Empty(t, res.Orders)
}

func TestCollector_Collect_CheckerErrorFetchesAnyway(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockMerchantClient(t)
	client.EXPECT().
		GetOrders(mock.Anything, jet.OrderReady).
		Return(&jet.OrderURLs{OrderURLs: []string{"/orders/a"}}, nil)
	client.EXPECT().
		GetOrderDetail(mock.Anything, "/orders/a").
		Return(&jet.Order{MerchantOrderID: "a"}, nil)

	checker := mocks.NewMockKnownOrderChecker(t)
	checker.EXPECT().
		HasOrder(mock.Anything, "/orders/a", jet.OrderReady).
		Return(false, errors.New("db down"))

	res, err := jet.NewCollector(client, jet.WithKnownOrderChecker(checker)).
		Collect(context.Background(), jet.OrderReady)
	require.NoError(t, err)
	assert.Len(t, res.Orders, 1)
	assert.Zero(t, res.Skipped)
}

func TestCollector_Collect_FailuresAreSteppedOver(t *testing.T) {
	t.Parallel()

	notFound := &jet.RequestError{Path: "/orders/bad", StatusCode: 404, Body: "not found"}
	unavailable := &jet.RequestError{Path: "/orders/ready", StatusCode: 503, Body: "down"}

	client := mocks.NewMockMerchantClient(t)
	client.EXPECT().
		GetOrders(mock.Anything, jet.OrderReady).
		Return(nil, unavailable)
	client.EXPECT().
		GetOrders(mock.Anything, jet.OrderAcknowledged).
		Return(&jet.OrderURLs{OrderURLs: []string{"/orders/a", "/orders/bad", "/orders/b"}}, nil)
	client.EXPECT().
		GetOrderDetail(mock.Anything, "/orders/a").
		Return(&jet.Order{MerchantOrderID: "a"}, nil)
	client.EXPECT().
		GetOrderDetail(mock.Anything, "/orders/bad").
		Return(nil, notFound)
	client.EXPECT().
		GetOrderDetail(mock.Anything, "/orders/b").
		Return(&jet.Order{MerchantOrderID: "b"}, nil)

	res, err := jet.NewCollector(client).
		Collect(context.Background(), jet.OrderReady, jet.OrderAcknowledged)
	require.NoError(t, err)

	require.Len(t, res.Orders, 2)
	assert.Equal(t, "/orders/a", res.Orders[0].URL)
	assert.Equal(t, "/orders/b", res.Orders[1].URL)
	assert.Equal(t, 3, res.URLsSeen)

	require.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0].Error(), "listing ready orders")
	code, ok := jet.StatusCode(res.Errors[0])
	assert.True(t, ok)
	assert.Equal(t, 503, code)

	assert.Contains(t, res.Errors[1].Error(), "fetching order /orders/bad")
	assert.True(t, jet.IsNotFound(res.Errors[1]))
}

func TestCollector_Collect_DailyLimitStopsRun(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockMerchantClient(t)
	client.EXPECT().
		GetOrders(mock.Anything, jet.OrderReady).
		Return(&jet.OrderURLs{OrderURLs: []string{"/orders/a", "/orders/b", "/orders/c"}}, nil)
	client.EXPECT().
		GetOrderDetail(mock.Anything, "/orders/a").
		Return(&jet.Order{MerchantOrderID: "a"}, nil)
	client.EXPECT().
		GetOrderDetail(mock.Anything, "/orders/b").
		Return(nil, jet.ErrDailyLimitReached)

	res, err := jet.NewCollector(client).
		Collect(context.Background(), jet.OrderReady, jet.OrderComplete)
	require.ErrorIs(t, err, jet.ErrDailyLimitReached)
	assert.Contains(t, err.Error(), "fetching order /orders/b")

	require.NotNil(t, res)
	require.Len(t, res.Orders, 1)
	assert.Equal(t, "a", res.Orders[0].Order.MerchantOrderID)
	assert.Empty(t, res.Errors)
}

func TestCollector_Collect_MaxDetailsPerRun(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockMerchantClient(t)
	client.EXPECT().
		GetOrders(mock.Anything, jet.OrderReady).
		Return(&jet.OrderURLs{OrderURLs: []string{"/orders/a", "/orders/b", "/orders/c"}}, nil)
	client.EXPECT().
		GetOrderDetail(mock.Anything, mock.AnythingOfType("string")).
		Return(&jet.Order{}, nil).
		Times(2)

	res, err := jet.NewCollector(client, jet.WithMaxDetailsPerRun(2)).
		Collect(context.Background(), jet.OrderReady, jet.OrderComplete)
	require.NoError(t, err)
	assert.Len(t, res.Orders, 2)
	assert.Equal(t, 3, res.URLsSeen)
}

func TestCollector_Collect_ContextCanceled(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockMerchantClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := jet.NewCollector(client).Collect(ctx, jet.OrderReady)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Empty(t, res.Orders)
}
