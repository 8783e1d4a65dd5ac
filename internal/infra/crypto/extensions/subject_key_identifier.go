package extensions

import (
	"crypto/sha1"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"fmt"

	"signal9.de/certext/internal/domain"
)

// SubjectKeyIdentifierHandler implements the X.509 Subject Key
// Identifier extension (RFC 5280 section 4.2.1.2).
type SubjectKeyIdentifierHandler struct{}

// Name returns the extension type name as used in textual values.
func (h *SubjectKeyIdentifierHandler) Name() string {
	return "subjectKeyIdentifier"
}

// OID returns the Subject Key Identifier OID.
func (h *SubjectKeyIdentifierHandler) OID() asn1.ObjectIdentifier {
	return asn1.ObjectIdentifier{2, 5, 29, 14}
}

// Encode parses either the literal "hash", which computes the key
// identifier from the subject certificate's public key and requires a
// subject in the context, or an explicit hex value ("DE:AD:BE:EF").
func (h *SubjectKeyIdentifierHandler) Encode(value string, ctx *domain.Context) ([]byte, error) {
	if value == "hash" {
		if ctx == nil || ctx.Subject == nil {
			return nil, errors.New("hash requires a subject certificate")
		}
		id, err := keyIdentifier(ctx.Subject)
		if err != nil {
			return nil, err
		}
		return asn1.Marshal(id)
	}
	id, err := parseHexValue(value)
	if err != nil {
		return nil, err
	}
	return asn1.Marshal(id)
}

// Print renders the payload as uppercase colon-separated hex.
func (h *SubjectKeyIdentifierHandler) Print(payload []byte) (string, error) {
	var id []byte
	if rest, err := asn1.Unmarshal(payload, &id); err != nil || len(rest) > 0 {
		return "", fmt.Errorf("%w: subjectKeyIdentifier", domain.ErrMalformedPayload)
	}
	return formatHexColon(id), nil
}

// keyIdentifier computes the RFC 5280 key identifier: the SHA-1 digest
// of the subjectPublicKey BIT STRING contents (tag, length and unused
// bit count excluded).
func keyIdentifier(cert *x509.Certificate) ([]byte, error) {
	var spki struct {
		Algorithm pkix.AlgorithmIdentifier
		PublicKey asn1.BitString
	}
	if _, err := asn1.Unmarshal(cert.RawSubjectPublicKeyInfo, &spki); err != nil {
		return nil, fmt.Errorf("cannot parse subject public key info: %s", err)
	}
	sum := sha1.Sum(spki.PublicKey.Bytes)
	return sum[:], nil
}
