package task

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// WorkerPool manages a pool of worker goroutines that process tasks
// from a task queue. It handles graceful shutdown and worker lifecycle.
type WorkerPool struct {
	// taskQueue provides read access to the tasks to be processed
	taskQueue TaskQueueReader

	// workerCount is the number of concurrent workers to start
	workerCount int

	// wg tracks active worker goroutines for clean shutdown
	wg sync.WaitGroup

	// ctx is used for cancellation and shutdown signaling
	ctx context.Context

	// cancel is the function to call to cancel the context
	cancel context.CancelFunc

	// logger for structured logging
	logger *slog.Logger

	// errorHandler is called when a task execution fails
	// If nil, errors are only logged
	errorHandler func(task Task, err error)
}

// WorkerPoolConfig holds configuration options for the worker pool
type WorkerPoolConfig struct {
	// WorkerCount determines how many concurrent worker goroutines to start
	// If zero or negative, defaults to 1
	WorkerCount int
}

// DefaultWorkerPoolConfig returns a WorkerPoolConfig with reasonable defaults
func DefaultWorkerPoolConfig() WorkerPoolConfig {
	return WorkerPoolConfig{
		WorkerCount: 2,
	}
}

// NewWorkerPool creates a new worker pool with the specified configuration
func NewWorkerPool(taskQueue TaskQueueReader, config WorkerPoolConfig, logger *slog.Logger) *WorkerPool {
	// Apply defaults for invalid config values
	workerCount := config.WorkerCount
	if workerCount <= 0 {
		workerCount = 1
		logger.Warn("invalid worker count specified, using default",
			"specified_count", config.WorkerCount,
			"default_count", 1)
	}

	// Create a cancelable context for shutdown coordination
	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		taskQueue:    taskQueue,
		workerCount:  workerCount,
		wg:           sync.WaitGroup{},
		ctx:          ctx,
		cancel:       cancel,
		logger:       logger,
		errorHandler: nil, // Default to nil, can be set later with SetErrorHandler
	}
}

// SetErrorHandler allows setting a custom error handler for task execution failures
func (p *WorkerPool) SetErrorHandler(handler func(task Task, err error)) {
	p.errorHandler = handler
}

// Start launches the configured number of worker goroutines. Each worker
// consumes tasks from the queue until the pool is stopped or the queue's
// channel is closed and drained.
func (p *WorkerPool) Start() {
	p.logger.Info("starting worker pool", "worker_count", p.workerCount)

	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.runWorker(i)
	}
}

// Stop signals all workers to shut down and waits for in-flight tasks to
// finish. The pool's context is canceled, so blocking tasks observe
// ctx.Done and can return early.
func (p *WorkerPool) Stop() {
	p.logger.Info("stopping worker pool")
	p.cancel()
	p.wg.Wait()
	p.logger.Info("worker pool stopped")
}

// runWorker is the main loop for a single worker goroutine
func (p *WorkerPool) runWorker(workerID int) {
	defer p.wg.Done()

	logger := p.logger.With("worker_id", workerID)
	logger.Debug("worker started")

	for {
		select {
		case <-p.ctx.Done():
			logger.Debug("worker shutting down")
			return
		case t, ok := <-p.taskQueue.GetChannel():
			if !ok {
				logger.Debug("task channel closed, worker exiting")
				return
			}
			p.processTask(t, logger)
		}
	}
}

// processTask executes a single task, recovering from panics so a
// misbehaving task cannot take down the worker
func (p *WorkerPool) processTask(t Task, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic during task execution: %v", r)
			logger.Error("task panicked",
				"task_id", t.ID(),
				"task_type", t.Type(),
				"error", err)
			if p.errorHandler != nil {
				p.errorHandler(t, err)
			}
		}
	}()

	logger.Debug("processing task",
		"task_id", t.ID(),
		"task_type", t.Type())

	if err := t.Execute(p.ctx); err != nil {
		logger.Error("task execution failed",
			"task_id", t.ID(),
			"task_type", t.Type(),
			"error", err)
		if p.errorHandler != nil {
			p.errorHandler(t, err)
		}
		return
	}

	logger.Debug("task completed",
		"task_id", t.ID(),
		"task_type", t.Type())
}
