package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Droply-AvailabilityService/internal/availability"
)

// Session снимок сессии с правилами
type Session struct {
	ID         string
	Rules      *availability.Rules
	CreatedAt  time.Time
	LastUsedAt time.Time
}

type entry struct {
	rules      *availability.Rules
	createdAt  time.Time
	lastUsedAt time.Time
}

// Repository хранит правила сессий в памяти процесса.
//
// Читатели получают копию правил, а Update применяет изменение к копии и
// подменяет правила только при успехе, поэтому неудачная операция ничего не меняет.
type Repository struct {
	mu          sync.RWMutex
	sessions    map[string]*entry
	maxSessions int
	idleTTL     time.Duration
	now         func() time.Time
}

// NewRepository создает хранилище сессий
func NewRepository(maxSessions int, idleTTL time.Duration) *Repository {
	return &Repository{
		sessions:    make(map[string]*entry),
		maxSessions: maxSessions,
		idleTTL:     idleTTL,
		now:         time.Now,
	}
}

// Create сохраняет правила в новой сессии
func (r *Repository) Create(ctx context.Context, rules *availability.Rules) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if rules == nil {
		return nil, ErrNilRules
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.maxSessions > 0 && len(r.sessions) >= r.maxSessions {
		r.evictLocked()
	}
	if r.maxSessions > 0 && len(r.sessions) >= r.maxSessions {
		return nil, fmt.Errorf("%w: limit is %d", ErrTooManySessions, r.maxSessions)
	}

	now := r.now()
	id := uuid.NewString()
	r.sessions[id] = &entry{
		rules:      rules.Clone(),
		createdAt:  now,
		lastUsedAt: now,
	}

	return &Session{
		ID:         id,
		Rules:      rules.Clone(),
		CreatedAt:  now,
		LastUsedAt: now,
	}, nil
}

// Get возвращает копию сессии
func (r *Repository) Get(ctx context.Context, id string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateID(id); err != nil {
		return nil, err
	}

	// Обновляем lastUsedAt, поэтому берем блокировку на запись
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok || r.expired(e) {
		return nil, ErrSessionNotFound
	}
	e.lastUsedAt = r.now()

	return &Session{
		ID:         id,
		Rules:      e.rules.Clone(),
		CreatedAt:  e.createdAt,
		LastUsedAt: e.lastUsedAt,
	}, nil
}

// Update атомарно применяет fn к правилам сессии.
// fn получает копию; если fn вернула ошибку, сохраненные правила не меняются.
func (r *Repository) Update(ctx context.Context, id string, fn func(rules *availability.Rules) error) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateID(id); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok || r.expired(e) {
		return nil, ErrSessionNotFound
	}

	draft := e.rules.Clone()
	if err := fn(draft); err != nil {
		return nil, err
	}

	e.rules = draft
	e.lastUsedAt = r.now()

	return &Session{
		ID:         id,
		Rules:      draft.Clone(),
		CreatedAt:  e.createdAt,
		LastUsedAt: e.lastUsedAt,
	}, nil
}

// Delete удаляет сессию
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Count возвращает количество хранимых сессий
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// EvictIdle удаляет сессии, не использовавшиеся дольше idleTTL, и возвращает их количество
func (r *Repository) EvictIdle() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.evictLocked()
}

// Helper methods

// evictLocked вызывается под r.mu
func (r *Repository) evictLocked() int {
	evicted := 0
	for id, e := range r.sessions {
		if r.expired(e) {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (r *Repository) expired(e *entry) bool {
	if r.idleTTL <= 0 {
		return false
	}
	return r.now().Sub(e.lastUsedAt) > r.idleTTL
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidSessionID, id)
	}
	return nil
}
