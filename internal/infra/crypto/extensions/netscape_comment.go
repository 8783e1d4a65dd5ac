package extensions

import (
	"encoding/asn1"
	"fmt"

	"signal9.de/certext/internal/domain"
)

// NetscapeCommentHandler implements the legacy Netscape Certificate
// Comment extension, a free-form IA5String.
type NetscapeCommentHandler struct{}

// Name returns the extension type name as used in textual values.
func (h *NetscapeCommentHandler) Name() string {
	return "nsComment"
}

// OID returns the Netscape Comment OID.
func (h *NetscapeCommentHandler) OID() asn1.ObjectIdentifier {
	return asn1.ObjectIdentifier{2, 16, 840, 1, 113730, 1, 13}
}

// Encode wraps the value string as an IA5String.
func (h *NetscapeCommentHandler) Encode(value string, _ *domain.Context) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("empty comment")
	}
	return asn1.MarshalWithParams(value, "ia5")
}

// Print returns the comment string.
func (h *NetscapeCommentHandler) Print(payload []byte) (string, error) {
	var comment string
	if rest, err := asn1.Unmarshal(payload, &comment); err != nil || len(rest) > 0 {
		return "", fmt.Errorf("%w: nsComment", domain.ErrMalformedPayload)
	}
	return comment, nil
}
