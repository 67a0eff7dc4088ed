package core

import (
	"sort"
	"sync"
	"time"
)

// pendingStore tracks actions between submission and terminal completion.
// Cross-session safety never relies on it: all shared-entity invariants are
// enforced by the store's unique keys and conditional updates.
type pendingStore struct {
	mu      sync.Mutex
	actions map[string]*PendingAction
}

func newPendingStore() *pendingStore {
	return &pendingStore{
		actions: make(map[string]*PendingAction),
	}
}

func (p *pendingStore) put(action Action) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.actions[action.Identifier] = &PendingAction{
		Identifier: action.Identifier,
		Kind:       action.Kind,
		Action:     action,
		Status:     StatusSubmitted,
		CreatedAt:  time.Now().UTC(),
	}
}

// get returns a copy. All mutation goes through update so that readers never
// observe a torn write.
func (p *pendingStore) get(identifier string) (PendingAction, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pending, ok := p.actions[identifier]
	if !ok {
		return PendingAction{}, false
	}
	return *pending, true
}

func (p *pendingStore) update(identifier string, fn func(*PendingAction)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if pending, ok := p.actions[identifier]; ok {
		fn(pending)
	}
}

func (p *pendingStore) drop(identifier string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.actions, identifier)
}

func (p *pendingStore) list() []PendingAction {
	p.mu.Lock()
	defer p.mu.Unlock()

	actions := make([]PendingAction, 0, len(p.actions))
	for _, pending := range p.actions {
		actions = append(actions, *pending)
	}
	sort.Slice(actions, func(i, j int) bool {
		return actions[i].CreatedAt.Before(actions[j].CreatedAt)
	})
	return actions
}
