package async

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"sprintassign/internal/domain"
)

// Handler consumes a published event on a pool worker.
type Handler func(ctx context.Context, e domain.Event)

type AsyncEventBus struct {
	pool *WorkerPool
	log  *zap.Logger

	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewAsyncEventBus(ctx context.Context, poolSize, queue int, log *zap.Logger) *AsyncEventBus {
	if log == nil {
		log = zap.NewNop()
	}
	return &AsyncEventBus{
		pool:     NewWorkerPool(ctx, poolSize, queue, log),
		log:      log,
		handlers: make(map[string][]Handler),
	}
}

// Subscribe registers h for events of the given type.
func (b *AsyncEventBus) Subscribe(eventType string, h Handler) {
	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], h)
	b.mu.Unlock()
}

func (b *AsyncEventBus) Publish(ctx context.Context, e domain.Event) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[e.Type]...)
	b.mu.RUnlock()

	ok := b.pool.Submit(func(taskCtx context.Context) {
		b.log.Info("domain_event",
			zap.String("type", e.Type),
			zap.Any("payload", e.Payload),
		)
		for _, h := range handlers {
			h(taskCtx, e)
		}
	})
	if !ok {
		b.log.Warn("domain_event dropped", zap.String("type", e.Type))
	}
}

func (b *AsyncEventBus) Close() {
	b.pool.Shutdown()
}
