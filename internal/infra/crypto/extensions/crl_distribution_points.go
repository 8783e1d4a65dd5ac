package extensions

import (
	"encoding/asn1"
	"fmt"
	"strings"

	"signal9.de/certext/internal/domain"
)

// CRLDistributionPointsHandler implements the X.509 CRL Distribution
// Points extension (RFC 5280 section 4.2.1.13). Only the fullName/URI
// form is supported; relative names and reason flags need a
// configuration section, which this encoder does not carry.
type CRLDistributionPointsHandler struct{}

type distributionPoint struct {
	Name distributionPointName `asn1:"optional,tag:0"`
}

type distributionPointName struct {
	FullName []asn1.RawValue `asn1:"optional,tag:0"`
}

// Name returns the extension type name as used in textual values.
func (h *CRLDistributionPointsHandler) Name() string {
	return "crlDistributionPoints"
}

// OID returns the CRL Distribution Points OID.
func (h *CRLDistributionPointsHandler) OID() asn1.ObjectIdentifier {
	return asn1.ObjectIdentifier{2, 5, 29, 31}
}

// Encode parses a comma-separated list of "URI:..." values, one
// distribution point per URI.
func (h *CRLDistributionPointsHandler) Encode(value string, _ *domain.Context) ([]byte, error) {
	var points []distributionPoint
	for _, item := range splitList(value) {
		tag, val, ok := splitPair(item)
		if !ok || tag != "URI" || val == "" {
			return nil, fmt.Errorf("expected URI:value, got %q", item)
		}
		points = append(points, distributionPoint{
			Name: distributionPointName{
				FullName: []asn1.RawValue{{
					Class: asn1.ClassContextSpecific,
					Tag:   int(NameKindURI),
					Bytes: []byte(val),
				}},
			},
		})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("empty distribution point list")
	}
	return asn1.Marshal(points)
}

// Print renders each distribution point's names joined with ", ".
func (h *CRLDistributionPointsHandler) Print(payload []byte) (string, error) {
	var points []distributionPoint
	if rest, err := asn1.Unmarshal(payload, &points); err != nil || len(rest) > 0 {
		return "", fmt.Errorf("%w: crlDistributionPoints", domain.ErrMalformedPayload)
	}
	var parts []string
	for _, p := range points {
		for _, rv := range p.Name.FullName {
			name, err := decodeGeneralNameElement(rv)
			if err != nil {
				return "", fmt.Errorf("%w: crlDistributionPoints: %s", domain.ErrMalformedPayload, err)
			}
			parts = append(parts, formatGeneralName(name))
		}
	}
	return strings.Join(parts, ", "), nil
}
