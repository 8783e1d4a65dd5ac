package extensions

import (
	"encoding/asn1"
	"fmt"
	"strings"

	"signal9.de/certext/internal/domain"
)

// CertificatePoliciesHandler implements the X.509 Certificate Policies
// extension (RFC 5280 section 4.2.1.4), policy identifiers only.
type CertificatePoliciesHandler struct{}

type policyInformation struct {
	Policy     asn1.ObjectIdentifier
	Qualifiers []asn1.RawValue `asn1:"optional"`
}

var oidAnyPolicy = asn1.ObjectIdentifier{2, 5, 29, 32, 0}

// Name returns the extension type name as used in textual values.
func (h *CertificatePoliciesHandler) Name() string {
	return "certificatePolicies"
}

// OID returns the Certificate Policies OID.
func (h *CertificatePoliciesHandler) OID() asn1.ObjectIdentifier {
	return asn1.ObjectIdentifier{2, 5, 29, 32}
}

// Encode parses a comma-separated list of dotted policy OIDs;
// "anyPolicy" is accepted as a shorthand for 2.5.29.32.0.
func (h *CertificatePoliciesHandler) Encode(value string, _ *domain.Context) ([]byte, error) {
	var policies []policyInformation
	for _, item := range splitList(value) {
		if item == "anyPolicy" {
			policies = append(policies, policyInformation{Policy: oidAnyPolicy})
			continue
		}
		oid, err := parseOID(item)
		if err != nil {
			return nil, err
		}
		policies = append(policies, policyInformation{Policy: oid})
	}
	if len(policies) == 0 {
		return nil, fmt.Errorf("empty policy list")
	}
	return asn1.Marshal(policies)
}

// Print renders the payload as "Policy: <oid>" segments.
func (h *CertificatePoliciesHandler) Print(payload []byte) (string, error) {
	var policies []policyInformation
	if rest, err := asn1.Unmarshal(payload, &policies); err != nil || len(rest) > 0 {
		return "", fmt.Errorf("%w: certificatePolicies", domain.ErrMalformedPayload)
	}
	parts := make([]string, 0, len(policies))
	for _, p := range policies {
		s := p.Policy.String()
		if p.Policy.Equal(oidAnyPolicy) {
			s += " (anyPolicy)"
		}
		parts = append(parts, "Policy: "+s)
	}
	return strings.Join(parts, ", "), nil
}
