package extensions

import (
	"encoding/asn1"
	"fmt"

	"signal9.de/certext/internal/domain"
)

// SubjectAltNameHandler implements the X.509 Subject Alternative Name
// extension (RFC 5280 section 4.2.1.6).
type SubjectAltNameHandler struct{}

// Name returns the extension type name as used in textual values.
func (h *SubjectAltNameHandler) Name() string {
	return "subjectAltName"
}

// OID returns the Subject Alternative Name OID.
func (h *SubjectAltNameHandler) OID() asn1.ObjectIdentifier {
	return oidSubjectAltName
}

// Encode parses a comma-separated list of "type:value" names, e.g.
// "DNS:www.example.com,email:a@example.com,URI:https://example.com".
// "email:copy" expands to the rfc822 names found on the subject
// certificate and requires one in the context.
func (h *SubjectAltNameHandler) Encode(value string, ctx *domain.Context) ([]byte, error) {
	var names []GeneralName
	for _, item := range splitList(value) {
		parsed, err := parseGeneralNameItem(item, ctx)
		if err != nil {
			return nil, err
		}
		names = append(names, parsed...)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("empty subjectAltName list")
	}
	return encodeGeneralNames(names)
}

// Print renders the payload with the NUL-safe general name printer.
// The Formatter reaches the same path directly.
func (h *SubjectAltNameHandler) Print(payload []byte) (string, error) {
	return printGeneralNames(payload)
}
