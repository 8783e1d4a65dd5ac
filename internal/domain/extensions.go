package domain

import (
	"crypto/x509"
	"encoding/asn1"
)

// Context carries the optional certificates a value-syntax handler may
// consult while encoding an extension value. No configuration database
// is attached; handlers that would need one must fail instead of
// silently defaulting.
type Context struct {
	Subject *x509.Certificate
	Issuer  *x509.Certificate
}

// ExtensionHandler interprets the textual value mini-language for one
// extension OID and renders its DER payload back as text.
type ExtensionHandler interface {
	// Name returns the short extension type name, e.g. "basicConstraints".
	Name() string

	// OID returns the extension's ASN.1 object identifier.
	OID() asn1.ObjectIdentifier

	// Encode parses the textual value (criticality marker already
	// stripped) and returns the DER-encoded extension payload.
	Encode(value string, ctx *Context) ([]byte, error)

	// Print renders a DER-encoded payload as human-readable text.
	Print(payload []byte) (string, error)
}

// ExtensionRegistry resolves extension type names and OIDs to their
// handlers. Implementations are read-only after construction so tests
// can substitute a fake.
type ExtensionRegistry interface {
	ByName(name string) (ExtensionHandler, bool)
	ByOID(oid asn1.ObjectIdentifier) (ExtensionHandler, bool)

	// ShortName returns the canonical short name registered for an OID.
	ShortName(oid asn1.ObjectIdentifier) (string, bool)

	// Names returns all registered extension type names in sorted order.
	Names() []string
}

// ExtensionDisplay is a rendered extension ready for presentation.
type ExtensionDisplay struct {
	Name     string
	OID      string
	Critical bool
	Value    string
}

// ExtensionTypeInfo describes one registered extension type.
type ExtensionTypeInfo struct {
	Name string
	OID  string
}
