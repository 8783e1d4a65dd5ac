package extensions

import (
	"encoding/asn1"
	"fmt"
	"strconv"
	"strings"

	"signal9.de/certext/internal/domain"
)

// BasicConstraintsHandler implements the X.509 Basic Constraints
// extension (RFC 5280 section 4.2.1.9).
type BasicConstraintsHandler struct{}

type basicConstraints struct {
	CA         bool `asn1:"optional"`
	MaxPathLen int  `asn1:"optional,default:-1"`
}

// Name returns the extension type name as used in textual values.
func (h *BasicConstraintsHandler) Name() string {
	return "basicConstraints"
}

// OID returns the Basic Constraints OID.
func (h *BasicConstraintsHandler) OID() asn1.ObjectIdentifier {
	return asn1.ObjectIdentifier{2, 5, 29, 19}
}

// Encode parses "CA:TRUE", "CA:FALSE" or "CA:TRUE,pathlen:N".
func (h *BasicConstraintsHandler) Encode(value string, _ *domain.Context) ([]byte, error) {
	bc := basicConstraints{MaxPathLen: -1}
	for _, item := range splitList(value) {
		tag, val, ok := splitPair(item)
		if !ok {
			return nil, fmt.Errorf("expected tag:value, got %q", item)
		}
		switch tag {
		case "CA":
			switch strings.ToUpper(val) {
			case "TRUE":
				bc.CA = true
			case "FALSE":
				bc.CA = false
			default:
				return nil, fmt.Errorf("CA must be TRUE or FALSE, got %q", val)
			}
		case "pathlen":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid pathlen %q", val)
			}
			bc.MaxPathLen = n
		default:
			return nil, fmt.Errorf("unknown basicConstraints item %q", tag)
		}
	}
	return asn1.Marshal(bc)
}

// Print renders the payload as "CA:TRUE, pathlen:N".
func (h *BasicConstraintsHandler) Print(payload []byte) (string, error) {
	bc := basicConstraints{MaxPathLen: -1}
	if rest, err := asn1.Unmarshal(payload, &bc); err != nil || len(rest) > 0 {
		return "", fmt.Errorf("%w: basicConstraints", domain.ErrMalformedPayload)
	}
	out := "CA:" + strings.ToUpper(strconv.FormatBool(bc.CA))
	if bc.MaxPathLen >= 0 {
		out += fmt.Sprintf(", pathlen:%d", bc.MaxPathLen)
	}
	return out, nil
}
