// Package search owns lifecycle of customer searches issued from search page.
package search

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-search/internal/model"
	"github.com/umalmyha/customer-search/internal/service"
)

const defaultFailureMessage = "An error occurred"

// Phase is search lifecycle phase
type Phase int

const (
	// PhaseIdle means nothing has been searched since start or last clear
	PhaseIdle Phase = iota
	// PhaseSearching means search is in flight
	PhaseSearching
	// PhaseSucceeded means last search completed with results
	PhaseSucceeded
	// PhaseFailed means last search failed
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSearching:
		return "searching"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is snapshot of orchestrator
type State struct {
	Phase       Phase
	Results     []model.Customer
	Error       string
	HasSearched bool
}

// Orchestrator runs searches and tracks their outcome.
// The latest issued search wins: completions of superseded searches are discarded.
type Orchestrator struct {
	customerSvc service.CustomerSearchService
	mu          sync.Mutex
	seq         uint64
	state       State
}

// NewOrchestrator builds idle Orchestrator
func NewOrchestrator(customerSvc service.CustomerSearchService) *Orchestrator {
	return &Orchestrator{customerSvc: customerSvc}
}

// Search moves to searching, blocks until customers are fetched and filtered
// and returns state after completion
func (o *Orchestrator) Search(ctx context.Context, criteria model.SearchCriteria) State {
	token := o.begin()
	return o.complete(ctx, token, criteria.Clone())
}

// Start moves to searching and completes the search in background.
// Returned channel receives state after completion and is closed.
func (o *Orchestrator) Start(ctx context.Context, criteria model.SearchCriteria) <-chan State {
	token := o.begin()
	criteria = criteria.Clone()

	done := make(chan State, 1)
	go func() {
		defer close(done)
		done <- o.complete(ctx, token, criteria)
	}()
	return done
}

func (o *Orchestrator) begin() uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.seq++
	o.transition(State{Phase: PhaseSearching, HasSearched: true})
	return o.seq
}

func (o *Orchestrator) complete(ctx context.Context, token uint64, criteria model.SearchCriteria) State {
	customers, err := o.customerSvc.Search(ctx, criteria)

	o.mu.Lock()
	defer o.mu.Unlock()

	if token != o.seq {
		logrus.WithFields(logrus.Fields{"token": token, "latest": o.seq}).Debug("search has been superseded, discarding its outcome")
		return o.snapshot()
	}

	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = defaultFailureMessage
		}
		o.transition(State{Phase: PhaseFailed, Error: msg, HasSearched: true})
		return o.snapshot()
	}

	if customers == nil {
		customers = make([]model.Customer, 0)
	}
	o.transition(State{Phase: PhaseSucceeded, Results: customers, HasSearched: true})
	return o.snapshot()
}

// Clear returns to idle immediately. Search in flight is superseded.
func (o *Orchestrator) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.seq++
	o.transition(State{Phase: PhaseIdle})
}

// State returns current state snapshot
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshot()
}

func (o *Orchestrator) transition(next State) {
	logrus.WithFields(logrus.Fields{"from": o.state.Phase, "to": next.Phase}).Debug("search state transition")
	o.state = next
}

func (o *Orchestrator) snapshot() State {
	s := o.state
	if s.Results != nil {
		s.Results = append(make([]model.Customer, 0, len(s.Results)), s.Results...)
	}
	return s
}
