// Package registry holds the process-wide catalog of node definitions.
package registry

import (
	"log/slog"
	"sync"

	"github.com/adityasai1234/jam-nodes/internal/domain"
)

// Adapter maps node types to definitions. Lookup order is irrelevant but
// listing preserves registration order.
type Adapter struct {
	defs   map[string]*domain.NodeDefinition
	order  []string
	mu     sync.RWMutex
	logger *slog.Logger
}

func NewAdapter(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}

	return &Adapter{
		defs:   make(map[string]*domain.NodeDefinition),
		logger: logger.With("component", "node-registry"),
	}
}

// Register adds a definition to the catalog. Registering a nil definition,
// an empty type, a definition without an executor, or a type that already
// exists is rejected with a *domain.RegistrationError; the existing entry
// is never touched.
func (r *Adapter) Register(def *domain.NodeDefinition) error {
	if def == nil {
		r.logger.Error("attempted to register nil node definition")
		return &domain.RegistrationError{NodeType: "<nil>", Reason: "definition cannot be nil"}
	}

	if def.Type == "" {
		r.logger.Error("attempted to register node definition with empty type")
		return &domain.RegistrationError{NodeType: def.Type, Reason: "node type cannot be empty"}
	}

	if def.Executor == nil {
		r.logger.Error("attempted to register node definition without executor", "node_type", def.Type)
		return &domain.RegistrationError{NodeType: def.Type, Reason: "executor cannot be nil"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[def.Type]; exists {
		r.logger.Debug("node registration failed - already exists", "node_type", def.Type)
		return &domain.RegistrationError{NodeType: def.Type, Reason: "node type already registered"}
	}

	r.defs[def.Type] = def
	r.order = append(r.order, def.Type)
	r.logger.Debug("node registered", "node_type", def.Type, "total_nodes", len(r.defs))
	return nil
}

func (r *Adapter) Get(nodeType string) (*domain.NodeDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, exists := r.defs[nodeType]
	if !exists {
		return nil, domain.NewNodeError(nodeType, "get", domain.ErrNotFound)
	}

	return def, nil
}

func (r *Adapter) GetAll() []*domain.NodeDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.NodeDefinition, 0, len(r.order))
	for _, nodeType := range r.order {
		out = append(out, r.defs[nodeType])
	}
	return out
}

func (r *Adapter) GetAllMetadata() []domain.NodeMetadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.NodeMetadata, 0, len(r.order))
	for _, nodeType := range r.order {
		out = append(out, r.defs[nodeType].Metadata())
	}
	return out
}

func (r *Adapter) Has(nodeType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.defs[nodeType]
	return exists
}

func (r *Adapter) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.defs)
}
