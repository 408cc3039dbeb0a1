package ports

import (
	"github.com/adityasai1234/jam-nodes/internal/domain"
)

// Credentials maps a service name to its credential fields. Hosts supply
// it per execution; the core never persists or encrypts it.
type Credentials map[string]map[string]string

// ServiceBuilder turns host-supplied credentials into the service handle
// map injected into an ExecutionContext. Services without credentials are
// simply absent from the result.
type ServiceBuilder interface {
	Build(creds Credentials) map[string]domain.Service
}
