package extensions

import (
	"crypto/x509"
	"encoding/asn1"
	"fmt"

	"signal9.de/certext/internal/domain"
)

// Encoder builds extensions from textual values.
type Encoder struct {
	reg domain.ExtensionRegistry
}

// NewEncoder creates an encoder over the given registry.
func NewEncoder(reg domain.ExtensionRegistry) *Encoder {
	return &Encoder{reg: reg}
}

// Encode constructs an extension from a type name and textual value.
// subject and issuer are optional context certificates some value
// syntaxes resolve against (key identifiers, copied names); a handler
// that needs one that is absent fails with ErrInvalidValueSyntax. The
// criticality flag is folded into the value string as the "critical,"
// marker before interpretation and stripped back off at this layer, so
// the same mini-language works for values read from configuration
// files. On any failure no Extension is produced.
func (enc *Encoder) Encode(typeName string, critical bool, value string, subject, issuer *x509.Certificate) (*Extension, error) {
	ctx := &domain.Context{Subject: subject, Issuer: issuer}

	spliced := withCritical(critical, value)

	handler, ok := enc.reg.ByName(typeName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownExtensionType, typeName)
	}

	crit, rest := splitCritical(spliced)
	payload, err := handler.Encode(rest, ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrInvalidValueSyntax, typeName, err)
	}

	// Round-trip through the DER encoding so the accessors answer from
	// what was actually encoded.
	der, err := asn1.Marshal(extensionASN1{
		ID:       handler.OID(),
		Critical: crit,
		Value:    payload,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrInvalidValueSyntax, typeName, err)
	}
	var parsed extensionASN1
	if _, err := asn1.Unmarshal(der, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrInvalidValueSyntax, typeName, err)
	}

	return &Extension{names: enc.reg, raw: parsed}, nil
}
