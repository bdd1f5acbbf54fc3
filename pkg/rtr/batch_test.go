package rtr_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fivetwenty-io/rtr/pkg/rtr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errLookupFailed = errors.New("lookup failed")

// MockClient overrides the accessors used by the batch tests; the embedded
// interface panics on anything else.
type MockClient struct {
	rtr.Client
	mock.Mock
}

func (m *MockClient) Domains() rtr.DomainsClient {
	args := m.Called()

	return args.Get(0).(rtr.DomainsClient) //nolint:forcetypeassert // test mock
}

func (m *MockClient) Processes() rtr.ProcessesClient {
	args := m.Called()

	return args.Get(0).(rtr.ProcessesClient) //nolint:forcetypeassert // test mock
}

func (m *MockClient) Notifications() rtr.NotificationsClient {
	args := m.Called()

	return args.Get(0).(rtr.NotificationsClient) //nolint:forcetypeassert // test mock
}

type MockDomainsClient struct {
	rtr.DomainsClient
	mock.Mock
}

func (m *MockDomainsClient) Check(ctx context.Context, domainName string) (*rtr.DomainAvailability, error) {
	args := m.Called(ctx, domainName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*rtr.DomainAvailability), args.Error(1) //nolint:forcetypeassert // test mock
}

func (m *MockDomainsClient) Get(ctx context.Context, domainName string, opts *rtr.GetOptions) (*rtr.Domain, error) {
	args := m.Called(ctx, domainName, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*rtr.Domain), args.Error(1) //nolint:forcetypeassert // test mock
}

type MockProcessesClient struct {
	rtr.ProcessesClient
	mock.Mock
}

func (m *MockProcessesClient) Get(ctx context.Context, id int, opts *rtr.GetOptions) (*rtr.Process, error) {
	args := m.Called(ctx, id, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*rtr.Process), args.Error(1) //nolint:forcetypeassert // test mock
}

type MockNotificationsClient struct {
	rtr.NotificationsClient
	mock.Mock
}

func (m *MockNotificationsClient) Ack(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func TestBatchExecutor_Execute(t *testing.T) {
	t.Parallel()

	mockClient := &MockClient{}
	mockDomains := &MockDomainsClient{}
	mockClient.On("Domains").Return(mockDomains)

	mockDomains.On("Check", mock.Anything, "free.com").Return(&rtr.DomainAvailability{Available: true}, nil)
	mockDomains.On("Check", mock.Anything, "taken.com").Return(&rtr.DomainAvailability{Available: false, Reason: "in use"}, nil)

	operations := rtr.NewBatchBuilder().
		AddCheckDomain("op1", "free.com").
		AddCheckDomain("op2", "taken.com").
		Build()

	results, err := rtr.NewBatchExecutor(mockClient, 2).Execute(context.Background(), operations)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "op1", results[0].ID)
	assert.True(t, results[0].Success)
	assert.True(t, results[0].Data.(*rtr.DomainAvailability).Available) //nolint:forcetypeassert // known type

	assert.Equal(t, "op2", results[1].ID)
	assert.True(t, results[1].Success)
	assert.Equal(t, "in use", results[1].Data.(*rtr.DomainAvailability).Reason) //nolint:forcetypeassert // known type

	mockClient.AssertExpectations(t)
	mockDomains.AssertExpectations(t)
}

func TestBatchExecutor_WithCallback(t *testing.T) {
	t.Parallel()

	mockClient := &MockClient{}
	mockProcesses := &MockProcessesClient{}
	mockClient.On("Processes").Return(mockProcesses)
	mockProcesses.On("Get", mock.Anything, 42, (*rtr.GetOptions)(nil)).Return(&rtr.Process{ID: 42}, nil)

	var calls atomic.Int32

	operations := rtr.NewBatchBuilder().AddGetProcess("op1", 42).Build()
	operations[0].Callback = func(result *rtr.BatchResult) {
		calls.Add(1)
		assert.Equal(t, "op1", result.ID)
		assert.True(t, result.Success)
	}

	_, err := rtr.NewBatchExecutor(mockClient, 1).Execute(context.Background(), operations)
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())

	mockProcesses.AssertExpectations(t)
}

func TestBatchExecutor_WithError(t *testing.T) {
	t.Parallel()

	mockClient := &MockClient{}
	mockDomains := &MockDomainsClient{}
	mockNotifications := &MockNotificationsClient{}
	mockClient.On("Domains").Return(mockDomains)
	mockClient.On("Notifications").Return(mockNotifications)

	mockDomains.On("Get", mock.Anything, "missing.com", (*rtr.GetOptions)(nil)).Return(nil, errLookupFailed)
	mockNotifications.On("Ack", mock.Anything, 7).Return(nil)

	operations := rtr.NewBatchBuilder().
		AddGetDomain("get", "missing.com", nil).
		AddAckNotification("ack", 7).
		Build()

	results, err := rtr.NewBatchExecutor(mockClient, 0).Execute(context.Background(), operations)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.False(t, results[0].Success)
	require.ErrorIs(t, results[0].Error, errLookupFailed)

	assert.True(t, results[1].Success)
	assert.Nil(t, results[1].Data)

	mockDomains.AssertExpectations(t)
	mockNotifications.AssertExpectations(t)
}

func TestBatchBuilder(t *testing.T) {
	t.Parallel()

	operations := rtr.NewBatchBuilder().
		AddCheckDomain("check-1", "example.com").
		AddGetDomain("get-1", "example.com", &rtr.GetOptions{Fields: []string{"status"}}).
		AddGetProcess("process-1", 12).
		AddAckNotification("ack-1", 99).
		AddOperation(rtr.BatchOperation{ID: "custom"}).
		Build()

	require.Len(t, operations, 5)

	expected := []struct{ id, kind, target string }{
		{"check-1", "check", "example.com"},
		{"get-1", "get", "example.com"},
		{"process-1", "get", "12"},
		{"ack-1", "ack", "99"},
		{"custom", "", ""},
	}

	for i, want := range expected {
		assert.Equal(t, want.id, operations[i].ID)
		assert.Equal(t, want.kind, operations[i].Kind)
		assert.Equal(t, want.target, operations[i].Target)
	}
}

func TestBatchExecutor_UnsupportedOperation(t *testing.T) {
	t.Parallel()

	results, err := rtr.NewBatchExecutor(&MockClient{}, 1).Execute(context.Background(), []rtr.BatchOperation{{ID: "op1"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	require.ErrorIs(t, results[0].Error, rtr.ErrUnsupportedOperation)
}

func TestBatchExecutor_Timeout(t *testing.T) {
	t.Parallel()

	executor := rtr.NewBatchExecutor(&MockClient{}, 1)
	executor.SetTimeout(time.Millisecond)

	operation := rtr.BatchOperation{
		ID: "slow",
		Run: func(ctx context.Context, _ rtr.Client) (any, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		},
	}

	results, err := executor.Execute(context.Background(), []rtr.BatchOperation{operation})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	require.ErrorIs(t, results[0].Error, context.DeadlineExceeded)
}
