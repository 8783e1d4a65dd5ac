package extensions

import (
	"encoding/asn1"
	"fmt"
	"strings"

	"signal9.de/certext/internal/domain"
)

// KeyUsageHandler implements the X.509 Key Usage extension (RFC 5280
// section 4.2.1.3).
type KeyUsageHandler struct{}

// keyUsageBits maps value names to their KeyUsage BIT STRING positions
// and display names.
var keyUsageBits = []struct {
	bit     int
	name    string
	display string
}{
	{0, "digitalSignature", "Digital Signature"},
	{1, "nonRepudiation", "Non Repudiation"},
	{2, "keyEncipherment", "Key Encipherment"},
	{3, "dataEncipherment", "Data Encipherment"},
	{4, "keyAgreement", "Key Agreement"},
	{5, "keyCertSign", "Certificate Sign"},
	{6, "cRLSign", "CRL Sign"},
	{7, "encipherOnly", "Encipher Only"},
	{8, "decipherOnly", "Decipher Only"},
}

// Name returns the extension type name as used in textual values.
func (h *KeyUsageHandler) Name() string {
	return "keyUsage"
}

// OID returns the Key Usage OID.
func (h *KeyUsageHandler) OID() asn1.ObjectIdentifier {
	return asn1.ObjectIdentifier{2, 5, 29, 15}
}

// Encode parses a comma-separated list of usage names, e.g.
// "digitalSignature,keyEncipherment".
func (h *KeyUsageHandler) Encode(value string, _ *domain.Context) ([]byte, error) {
	maxBit := -1
	var set []int
	for _, item := range splitList(value) {
		bit := -1
		for _, ku := range keyUsageBits {
			if ku.name == item {
				bit = ku.bit
				break
			}
		}
		if bit < 0 {
			return nil, fmt.Errorf("unknown key usage %q", item)
		}
		set = append(set, bit)
		if bit > maxBit {
			maxBit = bit
		}
	}
	if maxBit < 0 {
		return nil, fmt.Errorf("empty key usage list")
	}

	bits := asn1.BitString{
		Bytes:     make([]byte, maxBit/8+1),
		BitLength: maxBit + 1,
	}
	for _, bit := range set {
		bits.Bytes[bit/8] |= 0x80 >> (bit % 8)
	}
	return asn1.Marshal(bits)
}

// Print renders the payload as a list of display names, e.g.
// "Digital Signature, Key Encipherment".
func (h *KeyUsageHandler) Print(payload []byte) (string, error) {
	var bits asn1.BitString
	if rest, err := asn1.Unmarshal(payload, &bits); err != nil || len(rest) > 0 {
		return "", fmt.Errorf("%w: keyUsage", domain.ErrMalformedPayload)
	}
	var usages []string
	for _, ku := range keyUsageBits {
		if bits.At(ku.bit) == 1 {
			usages = append(usages, ku.display)
		}
	}
	return strings.Join(usages, ", "), nil
}
