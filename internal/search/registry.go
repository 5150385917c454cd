package search

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-search/internal/service"
)

type registryEntry struct {
	orchestrator *Orchestrator
	lastSeen     time.Time
}

// Registry keeps one Orchestrator per session and forgets sessions idle longer than ttl
type Registry struct {
	customerSvc service.CustomerSearchService
	ttl         time.Duration
	now         func() time.Time
	mu          sync.Mutex
	entries     map[string]*registryEntry
}

// NewRegistry builds new Registry
func NewRegistry(customerSvc service.CustomerSearchService, ttl time.Duration) *Registry {
	return &Registry{
		customerSvc: customerSvc,
		ttl:         ttl,
		now:         time.Now,
		entries:     make(map[string]*registryEntry),
	}
}

// Orchestrator returns orchestrator of session, creating idle one for unknown session
func (r *Registry) Orchestrator(sessionID string) *Orchestrator {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.evict(now)

	e, ok := r.entries[sessionID]
	if !ok {
		e = &registryEntry{orchestrator: NewOrchestrator(r.customerSvc)}
		r.entries[sessionID] = e
	}
	e.lastSeen = now
	return e.orchestrator
}

// Len returns number of live sessions
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry) evict(now time.Time) {
	if r.ttl <= 0 {
		return
	}

	for id, e := range r.entries {
		if now.Sub(e.lastSeen) > r.ttl {
			delete(r.entries, id)
			logrus.WithField("session", id).Debug("search session expired")
		}
	}
}
