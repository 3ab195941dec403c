package booking

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// MemoryRepository keeps bookings in process memory. It is used when no database is configured.
type MemoryRepository struct {
	mu         sync.RWMutex
	bookings   map[string][]Booking
	references map[string]struct{}
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		bookings:   make(map[string][]Booking),
		references: make(map[string]struct{}),
	}
}

func (m *MemoryRepository) Store(ctx context.Context, sessionId string, booking Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, taken := m.references[booking.Reference]; taken {
		return fmt.Errorf("%w: %s", ErrDuplicateReference, booking.Reference)
	}
	m.references[booking.Reference] = struct{}{}
	m.bookings[sessionId] = append(m.bookings[sessionId], booking)
	return nil
}

func (m *MemoryRepository) Get(ctx context.Context, sessionId string, bookingId string) (Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.bookings[sessionId] {
		if b.Id == bookingId {
			return b, nil
		}
	}
	return Booking{}, ErrBookingNotFound
}

func (m *MemoryRepository) List(ctx context.Context, sessionId string) ([]Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.bookings[sessionId]), nil
}
