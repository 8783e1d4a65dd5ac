package extensions

import (
	"encoding/asn1"
	"fmt"
	"strings"

	"signal9.de/certext/internal/domain"
)

// ExtendedKeyUsageHandler implements the X.509 Extended Key Usage
// extension (RFC 5280 section 4.2.1.12).
type ExtendedKeyUsageHandler struct{}

// extKeyUsages maps value names to their key purpose OIDs and display
// names. Values not in this table may be given as dotted OIDs.
var extKeyUsages = []struct {
	name    string
	display string
	oid     asn1.ObjectIdentifier
}{
	{"serverAuth", "TLS Web Server Authentication", asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 1}},
	{"clientAuth", "TLS Web Client Authentication", asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 2}},
	{"codeSigning", "Code Signing", asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 3}},
	{"emailProtection", "E-mail Protection", asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 4}},
	{"timeStamping", "Time Stamping", asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 8}},
	{"OCSPSigning", "OCSP Signing", asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 9}},
	{"anyExtendedKeyUsage", "Any Extended Key Usage", asn1.ObjectIdentifier{2, 5, 29, 37, 0}},
}

// Name returns the extension type name as used in textual values.
func (h *ExtendedKeyUsageHandler) Name() string {
	return "extendedKeyUsage"
}

// OID returns the Extended Key Usage OID.
func (h *ExtendedKeyUsageHandler) OID() asn1.ObjectIdentifier {
	return asn1.ObjectIdentifier{2, 5, 29, 37}
}

// Encode parses a comma-separated list of key purpose names or dotted
// OIDs, e.g. "serverAuth,clientAuth" or "1.3.6.1.5.5.7.3.1".
func (h *ExtendedKeyUsageHandler) Encode(value string, _ *domain.Context) ([]byte, error) {
	var oids []asn1.ObjectIdentifier
	for _, item := range splitList(value) {
		oid := lookupExtKeyUsageOID(item)
		if oid == nil {
			parsed, err := parseOID(item)
			if err != nil {
				return nil, fmt.Errorf("unknown key purpose %q", item)
			}
			oid = parsed
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return nil, fmt.Errorf("empty key purpose list")
	}
	return asn1.Marshal(oids)
}

// Print renders the payload as a list of display names, falling back
// to the dotted OID for unknown purposes.
func (h *ExtendedKeyUsageHandler) Print(payload []byte) (string, error) {
	var oids []asn1.ObjectIdentifier
	if rest, err := asn1.Unmarshal(payload, &oids); err != nil || len(rest) > 0 {
		return "", fmt.Errorf("%w: extendedKeyUsage", domain.ErrMalformedPayload)
	}
	parts := make([]string, 0, len(oids))
	for _, oid := range oids {
		parts = append(parts, displayExtKeyUsage(oid))
	}
	return strings.Join(parts, ", "), nil
}

func lookupExtKeyUsageOID(name string) asn1.ObjectIdentifier {
	for _, eku := range extKeyUsages {
		if eku.name == name {
			return eku.oid
		}
	}
	return nil
}

func displayExtKeyUsage(oid asn1.ObjectIdentifier) string {
	for _, eku := range extKeyUsages {
		if eku.oid.Equal(oid) {
			return eku.display
		}
	}
	return oid.String()
}
