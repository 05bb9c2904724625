package network

import (
	"sync"
	"sync/atomic"

	"dungeon-arena/pkg/api"
	"dungeon-arena/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SubscriberBuffer - сколько снапшотов копится у медленного зрителя до пропусков.
const SubscriberBuffer = 32

// Broadcaster занимается только рассылкой снапшотов зрителям
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID подписки -> личный канал
	subscribers map[uuid.UUID]chan *api.Snapshot
	dropped     atomic.Uint64
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[uuid.UUID]chan *api.Snapshot),
	}
}

// Register создает личный канал для зрителя
func (b *Broadcaster) Register() (uuid.UUID, <-chan *api.Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.New()
	ch := make(chan *api.Snapshot, SubscriberBuffer)
	b.subscribers[id] = ch

	logger.Log.WithFields(logrus.Fields{
		"component":   "hub",
		"subscriber":  id.String(),
		"subscribers": len(b.subscribers),
	}).Debug("Subscriber registered")
	return id, ch
}

// Unregister удаляет подписчика и закрывает его канал. Повторный вызов безопасен.
func (b *Broadcaster) Unregister(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// Publish отправляет снапшот всем. Не блокируется: полный канал пропускает кадр.
// Снапшот неизменяем, поэтому один указатель раздаётся всем.
func (b *Broadcaster) Publish(s *api.Snapshot) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- s:
		default:
			b.dropped.Add(1)
		}
	}
}

// Dropped - сколько кадров пропущено из-за медленных зрителей.
func (b *Broadcaster) Dropped() uint64 {
	return b.dropped.Load()
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close отписывает всех (остановка сервера).
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, id)
	}
}
