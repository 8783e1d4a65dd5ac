package extensions

import (
	"encoding/asn1"
	"errors"
	"fmt"

	"signal9.de/certext/internal/domain"
)

// IssuerAltNameHandler implements the X.509 Issuer Alternative Name
// extension (RFC 5280 section 4.2.1.7).
type IssuerAltNameHandler struct{}

// Name returns the extension type name as used in textual values.
func (h *IssuerAltNameHandler) Name() string {
	return "issuerAltName"
}

// OID returns the Issuer Alternative Name OID.
func (h *IssuerAltNameHandler) OID() asn1.ObjectIdentifier {
	return asn1.ObjectIdentifier{2, 5, 29, 18}
}

// Encode parses the same name list as subjectAltName, plus the
// "issuer:copy" form, which copies every entry of the issuer
// certificate's subjectAltName and requires an issuer in the context.
func (h *IssuerAltNameHandler) Encode(value string, ctx *domain.Context) ([]byte, error) {
	var names []GeneralName
	for _, item := range splitList(value) {
		if item == "issuer:copy" {
			copied, err := issuerAltNames(ctx)
			if err != nil {
				return nil, err
			}
			names = append(names, copied...)
			continue
		}
		parsed, err := parseGeneralNameItem(item, ctx)
		if err != nil {
			return nil, err
		}
		names = append(names, parsed...)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("empty issuerAltName list")
	}
	return encodeGeneralNames(names)
}

// Print renders the payload with the NUL-safe general name printer.
func (h *IssuerAltNameHandler) Print(payload []byte) (string, error) {
	return printGeneralNames(payload)
}

func issuerAltNames(ctx *domain.Context) ([]GeneralName, error) {
	if ctx == nil || ctx.Issuer == nil {
		return nil, errors.New("issuer:copy requires an issuer certificate")
	}
	for _, ext := range ctx.Issuer.Extensions {
		if ext.Id.Equal(oidSubjectAltName) {
			names, err := decodeGeneralNames(ext.Value)
			if err != nil {
				return nil, fmt.Errorf("issuer subjectAltName: %s", err)
			}
			return names, nil
		}
	}
	return nil, errors.New("issuer certificate has no subjectAltName to copy")
}
