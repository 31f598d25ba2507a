package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"brickscapital/types"

	"github.com/redis/go-redis/v9"
)

const calculatorKeyPrefix = "calculator:"

// CalculatorStore keeps the calculator widget state of each visitor.
type CalculatorStore interface {
	Load(ctx context.Context, visitorID string) (types.CalculatorState, bool, error)
	Save(ctx context.Context, visitorID string, state types.CalculatorState) error
}

type memoryEntry struct {
	state     types.CalculatorState
	expiresAt time.Time
}

type memoryCalculatorStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryCalculatorStore(ttl time.Duration) CalculatorStore {
	return &memoryCalculatorStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (m *memoryCalculatorStore) Load(_ context.Context, visitorID string) (types.CalculatorState, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[visitorID]
	if !ok {
		return types.CalculatorState{}, false, nil
	}
	if m.now().After(entry.expiresAt) {
		delete(m.entries, visitorID)
		return types.CalculatorState{}, false, nil
	}
	return entry.state, true, nil
}

func (m *memoryCalculatorStore) Save(_ context.Context, visitorID string, state types.CalculatorState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for id, entry := range m.entries {
		if now.After(entry.expiresAt) {
			delete(m.entries, id)
		}
	}
	m.entries[visitorID] = memoryEntry{state: state, expiresAt: now.Add(m.ttl)}
	return nil
}

type redisCalculatorStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCalculatorStore stores states as JSON under "calculator:<visitor>".
func NewRedisCalculatorStore(client *redis.Client, ttl time.Duration) CalculatorStore {
	return &redisCalculatorStore{client: client, ttl: ttl}
}

func (r *redisCalculatorStore) Load(ctx context.Context, visitorID string) (types.CalculatorState, bool, error) {
	val, err := r.client.Get(ctx, calculatorKeyPrefix+visitorID).Result()
	if errors.Is(err, redis.Nil) {
		return types.CalculatorState{}, false, nil
	}
	if err != nil {
		return types.CalculatorState{}, false, err
	}

	var state types.CalculatorState
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		return types.CalculatorState{}, false, err
	}
	return state, true, nil
}

func (r *redisCalculatorStore) Save(ctx context.Context, visitorID string, state types.CalculatorState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, calculatorKeyPrefix+visitorID, data, r.ttl).Err()
}
