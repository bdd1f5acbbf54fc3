package rtr

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/fivetwenty-io/rtr/internal/constants"
)

// ErrUnsupportedOperation is reported for batch operations without a Run function.
var ErrUnsupportedOperation = errors.New("unsupported batch operation")

// BatchOperation represents a single call in a batch.
type BatchOperation struct {
	ID       string
	Kind     string // "check", "get", "ack", ...
	Target   string // domain name, process id, ...
	Run      func(ctx context.Context, client Client) (any, error)
	Callback func(result *BatchResult)
}

// BatchResult represents the result of a batch operation.
type BatchResult struct {
	ID       string
	Success  bool
	Data     any
	Error    error
	Duration time.Duration
}

// BatchExecutor runs independent operations with bounded concurrency.
type BatchExecutor struct {
	client      Client
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates a new batch executor.
func NewBatchExecutor(client Client, concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = constants.DefaultBatchConcurrency
	}

	return &BatchExecutor{
		client:      client,
		concurrency: concurrency,
		timeout:     constants.DefaultHTTPTimeout,
	}
}

// SetTimeout sets the timeout of each operation.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs operations and returns their results in input order. A failed
// operation does not stop the others.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) ([]BatchResult, error) {
	results := make([]BatchResult, len(operations))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, b.concurrency)

	for index, operation := range operations {
		waitGroup.Add(1)

		go func(index int, operation BatchOperation) {
			defer waitGroup.Done()

			semaphore <- struct{}{}

			defer func() { <-semaphore }()

			opCtx, cancel := context.WithTimeout(ctx, b.timeout)
			defer cancel()

			start := time.Now()
			result := b.executeOperation(opCtx, operation)
			result.Duration = time.Since(start)
			results[index] = *result

			if operation.Callback != nil {
				operation.Callback(result)
			}
		}(index, operation)
	}

	waitGroup.Wait()

	return results, ctx.Err()
}

func (b *BatchExecutor) executeOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	result := &BatchResult{ID: operation.ID}

	if operation.Run == nil {
		result.Error = ErrUnsupportedOperation

		return result
	}

	data, err := operation.Run(ctx, b.client)
	if err != nil {
		result.Error = err

		return result
	}

	result.Success = true
	result.Data = data

	return result
}

// BatchBuilder helps build batch operations.
type BatchBuilder struct {
	operations []BatchOperation
}

// NewBatchBuilder creates a new batch builder.
func NewBatchBuilder() *BatchBuilder {
	return &BatchBuilder{
		operations: make([]BatchOperation, 0),
	}
}

// AddCheckDomain adds an availability check.
func (b *BatchBuilder) AddCheckDomain(id, domainName string) *BatchBuilder {
	return b.AddOperation(BatchOperation{
		ID:     id,
		Kind:   "check",
		Target: domainName,
		Run: func(ctx context.Context, client Client) (any, error) {
			return client.Domains().Check(ctx, domainName)
		},
	})
}

// AddGetDomain adds a domain lookup.
func (b *BatchBuilder) AddGetDomain(id, domainName string, opts *GetOptions) *BatchBuilder {
	return b.AddOperation(BatchOperation{
		ID:     id,
		Kind:   "get",
		Target: domainName,
		Run: func(ctx context.Context, client Client) (any, error) {
			return client.Domains().Get(ctx, domainName, opts)
		},
	})
}

// AddGetProcess adds a process lookup.
func (b *BatchBuilder) AddGetProcess(id string, processID int) *BatchBuilder {
	return b.AddOperation(BatchOperation{
		ID:     id,
		Kind:   "get",
		Target: strconv.Itoa(processID),
		Run: func(ctx context.Context, client Client) (any, error) {
			return client.Processes().Get(ctx, processID, nil)
		},
	})
}

// AddAckNotification adds a notification acknowledgement.
func (b *BatchBuilder) AddAckNotification(id string, notificationID int) *BatchBuilder {
	return b.AddOperation(BatchOperation{
		ID:     id,
		Kind:   "ack",
		Target: strconv.Itoa(notificationID),
		Run: func(ctx context.Context, client Client) (any, error) {
			return nil, client.Notifications().Ack(ctx, notificationID)
		},
	})
}

// AddOperation adds a custom operation.
func (b *BatchBuilder) AddOperation(operation BatchOperation) *BatchBuilder {
	b.operations = append(b.operations, operation)

	return b
}

// Build returns the built operations.
func (b *BatchBuilder) Build() []BatchOperation {
	return b.operations
}
