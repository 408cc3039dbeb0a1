package ports

import (
	"github.com/adityasai1234/jam-nodes/internal/domain"
)

// Registry is the process-wide catalog of node definitions. Populated by
// explicit Register calls at startup, read-only afterward; there is no
// deregistration in the current contract.
type Registry interface {
	Register(def *domain.NodeDefinition) error
	Get(nodeType string) (*domain.NodeDefinition, error)
	GetAll() []*domain.NodeDefinition
	GetAllMetadata() []domain.NodeMetadata
	Has(nodeType string) bool
	Count() int
}
