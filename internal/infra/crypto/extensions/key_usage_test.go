//go:build !integration && !e2e

package extensions

import (
	"encoding/asn1"
	"testing"
)

func TestKeyUsage_EncodePrint(t *testing.T) {
	h := &KeyUsageHandler{}

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"single usage", "digitalSignature", "Digital Signature"},
		{"leaf pair", "digitalSignature,keyEncipherment", "Digital Signature, Key Encipherment"},
		{"ca usages", "keyCertSign,cRLSign", "Certificate Sign, CRL Sign"},
		{"spaces tolerated", "digitalSignature, keyAgreement", "Digital Signature, Key Agreement"},
		{"order follows bit position", "cRLSign,digitalSignature", "Digital Signature, CRL Sign"},
		{"decipherOnly spans second byte", "decipherOnly", "Decipher Only"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := h.Encode(tt.value, nil)
			if err != nil {
				t.Fatalf("Encode() unexpected error: %v", err)
			}
			got, err := h.Print(payload)
			if err != nil {
				t.Fatalf("Print() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyUsage_BitLayout(t *testing.T) {
	h := &KeyUsageHandler{}

	payload, err := h.Encode("decipherOnly", nil)
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}
	var bits asn1.BitString
	if _, err := asn1.Unmarshal(payload, &bits); err != nil {
		t.Fatalf("payload does not decode: %v", err)
	}
	if bits.BitLength != 9 {
		t.Errorf("BitLength = %d, want 9", bits.BitLength)
	}
	if len(bits.Bytes) != 2 {
		t.Fatalf("len(Bytes) = %d, want 2", len(bits.Bytes))
	}
	if bits.Bytes[0] != 0x00 || bits.Bytes[1] != 0x80 {
		t.Errorf("Bytes = %02X %02X, want 00 80", bits.Bytes[0], bits.Bytes[1])
	}
}

func TestKeyUsage_EncodeErrors(t *testing.T) {
	h := &KeyUsageHandler{}

	for _, value := range []string{"", "digitalSignature,", "DigitalSignature", "signing"} {
		if _, err := h.Encode(value, nil); err == nil {
			t.Errorf("Encode(%q) expected error, got nil", value)
		}
	}
}

func TestKeyUsage_PrintMalformed(t *testing.T) {
	h := &KeyUsageHandler{}

	// An OCTET STRING is not a BIT STRING.
	if _, err := h.Print([]byte{0x04, 0x01, 0x00}); err == nil {
		t.Error("Print() expected error for malformed payload")
	}
}
