package extensions

import (
	"encoding/asn1"
	"fmt"

	"signal9.de/certext/internal/domain"
)

var oidSubjectAltName = asn1.ObjectIdentifier{2, 5, 29, 17}

// Formatter renders extensions as display text.
type Formatter struct {
	reg domain.ExtensionRegistry
}

// NewFormatter creates a formatter over the given registry.
func NewFormatter(reg domain.ExtensionRegistry) *Formatter {
	return &Formatter{reg: reg}
}

// Format renders an extension's payload as human-readable text.
// subjectAltName takes a dedicated path that writes every name over
// its full byte range: the naive approach of printing names through
// NUL-terminated string routines lets a crafted entry such as
// "safe.example.com\0evil.example.com" display as only the safe
// prefix, a known certificate-spoofing vector. All other OIDs dispatch
// to the printer registered for them. No partial output is returned on
// failure.
func (f *Formatter) Format(ext *Extension) (string, error) {
	if ext.OID().Equal(oidSubjectAltName) {
		return f.formatSubjectAltName(ext)
	}
	handler, ok := f.reg.ByOID(ext.OID())
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrNoPrinter, ext.OID())
	}
	return handler.Print(ext.RawData())
}

func (f *Formatter) formatSubjectAltName(ext *Extension) (string, error) {
	if _, ok := f.reg.ByOID(ext.OID()); !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrNoPrinter, ext.OID())
	}
	return printGeneralNames(ext.RawData())
}
