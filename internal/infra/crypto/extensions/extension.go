// Package extensions constructs X.509 certificate extensions from
// textual values and renders them back as human-readable text. The
// value syntax follows the OpenSSL configuration-file mini-language,
// including the "critical," prefix convention.
package extensions

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"

	"signal9.de/certext/internal/domain"
)

// shortNameUndef is returned by ShortName when the OID has no
// registered short form.
const shortNameUndef = "UNDEF"

// extensionASN1 mirrors Extension ::= SEQUENCE from RFC 5280 section 4.1.
type extensionASN1 struct {
	ID       asn1.ObjectIdentifier
	Critical bool `asn1:"optional"`
	Value    []byte
}

// Extension is a single X.509 extension. The accessors answer from the
// parsed encoding, so Critical always reflects what was actually
// encoded rather than what a caller asked for.
//
// An Extension is either owned (the encoder allocated its backing
// buffer) or borrowed (the payload aliases a parsed certificate's raw
// encoding). Borrowed views are never copied and never written
// through; the certificate keeps ownership of the bytes.
type Extension struct {
	names    domain.ExtensionRegistry
	raw      extensionASN1
	borrowed bool
}

// Borrow wraps an extension extracted from a parsed certificate
// without copying its payload. ext.Value stays owned by the
// certificate it came from.
func Borrow(names domain.ExtensionRegistry, ext pkix.Extension) (*Extension, error) {
	if len(ext.Id) == 0 {
		return nil, fmt.Errorf("%w: extension has no OID", domain.ErrMalformedPayload)
	}
	return &Extension{
		names: names,
		raw: extensionASN1{
			ID:       ext.Id,
			Critical: ext.Critical,
			Value:    ext.Value,
		},
		borrowed: true,
	}, nil
}

// OID returns the extension's object identifier.
func (e *Extension) OID() asn1.ObjectIdentifier {
	return e.raw.ID
}

// Critical reports whether the critical bit is set in the encoded
// extension structure.
func (e *Extension) Critical() bool {
	return e.raw.Critical
}

// ShortName returns the canonical short name registered for the
// extension's OID, or "UNDEF" when none is registered. It never fails.
func (e *Extension) ShortName() string {
	if e.names != nil {
		if name, ok := e.names.ShortName(e.raw.ID); ok {
			return name
		}
	}
	return shortNameUndef
}

// RawData returns the DER-encoded extension payload (the inner
// extnValue octets, not the full Extension SEQUENCE). The slice is
// length-exact and may contain embedded NUL bytes; callers must never
// treat it as a NUL-terminated string. The returned bytes must not be
// modified.
func (e *Extension) RawData() []byte {
	return e.raw.Value
}

// Borrowed reports whether the payload aliases a certificate's
// encoding instead of a buffer this package allocated.
func (e *Extension) Borrowed() bool {
	return e.borrowed
}

// PKIX converts the extension for use with crypto/x509 certificate
// templates.
func (e *Extension) PKIX() pkix.Extension {
	return pkix.Extension{
		Id:       e.raw.ID,
		Critical: e.raw.Critical,
		Value:    e.raw.Value,
	}
}

// Format renders the extension as display text using the registry it
// was constructed with.
func (e *Extension) Format() (string, error) {
	return NewFormatter(e.names).Format(e)
}
