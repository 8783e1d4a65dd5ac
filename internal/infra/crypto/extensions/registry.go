package extensions

import (
	"encoding/asn1"
	"sort"
	"sync"

	"signal9.de/certext/internal/domain"
)

// Registry implements domain.ExtensionRegistry with thread-safe
// extension handler registration. Built-in handlers are registered at
// construction; lookups are read-only afterwards.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]domain.ExtensionHandler
	byOID  map[string]domain.ExtensionHandler
}

var _ domain.ExtensionRegistry = (*Registry)(nil)

// NewRegistry creates a new registry with the built-in extension
// handlers pre-registered.
func NewRegistry() *Registry {
	r := &Registry{
		byName: make(map[string]domain.ExtensionHandler),
		byOID:  make(map[string]domain.ExtensionHandler),
	}
	r.registerBuiltinHandlers()
	return r
}

// Register adds a handler under its name and OID.
func (r *Registry) Register(h domain.ExtensionHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byName[h.Name()] = h
	r.byOID[h.OID().String()] = h
}

// ByName looks up a handler by extension type name.
func (r *Registry) ByName(name string) (domain.ExtensionHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.byName[name]
	return h, ok
}

// ByOID looks up a handler by extension OID.
func (r *Registry) ByOID(oid asn1.ObjectIdentifier) (domain.ExtensionHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.byOID[oid.String()]
	return h, ok
}

// ShortName returns the canonical short name registered for an OID.
func (r *Registry) ShortName(oid asn1.ObjectIdentifier) (string, bool) {
	h, ok := r.ByOID(oid)
	if !ok {
		return "", false
	}
	return h.Name(), true
}

// Names returns all registered extension type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) registerBuiltinHandlers() {
	for _, h := range []domain.ExtensionHandler{
		&BasicConstraintsHandler{},
		&KeyUsageHandler{},
		&ExtendedKeyUsageHandler{},
		&SubjectAltNameHandler{},
		&IssuerAltNameHandler{},
		&SubjectKeyIdentifierHandler{},
		&AuthorityKeyIdentifierHandler{},
		&CRLDistributionPointsHandler{},
		&CertificatePoliciesHandler{},
		&NetscapeCommentHandler{},
	} {
		r.Register(h)
	}
}
