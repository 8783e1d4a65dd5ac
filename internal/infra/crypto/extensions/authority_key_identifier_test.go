//go:build !integration && !e2e

package extensions

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"strings"
	"testing"

	"signal9.de/certext/internal/domain"
)

func TestAuthorityKeyIdentifier_KeyIDAndIssuer(t *testing.T) {
	issuer := newTestCertificate(t, &x509.Certificate{
		SerialNumber: big.NewInt(0x0123),
		Subject:      pkix.Name{CommonName: "Example CA", Country: []string{"DE"}},
		SubjectKeyId: []byte{0xde, 0xad, 0xbe, 0xef},
	})
	h := &AuthorityKeyIdentifierHandler{}
	ctx := &domain.Context{Issuer: issuer}

	payload, err := h.Encode("keyid,issuer", ctx)
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}
	got, err := h.Print(payload)
	if err != nil {
		t.Fatalf("Print() unexpected error: %v", err)
	}

	if !strings.Contains(got, "keyid:DE:AD:BE:EF") {
		t.Errorf("Print() = %q, missing key identifier", got)
	}
	if !strings.Contains(got, "DirName:") || !strings.Contains(got, "Example CA") {
		t.Errorf("Print() = %q, missing issuer directory name", got)
	}
	if !strings.Contains(got, "serial:01:23") {
		t.Errorf("Print() = %q, missing serial number", got)
	}
}

func TestAuthorityKeyIdentifier_KeyIDComputedFromPublicKey(t *testing.T) {
	// No subjectKeyIdentifier on the issuer, so the key id falls back
	// to the SHA-1 of the issuer's public key.
	issuer := newTestCertificate(t, &x509.Certificate{
		SerialNumber: big.NewInt(7),
		Subject:      pkix.Name{CommonName: "Example CA"},
	})
	h := &AuthorityKeyIdentifierHandler{}

	payload, err := h.Encode("keyid:always", &domain.Context{Issuer: issuer})
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}

	want, err := keyIdentifier(issuer)
	if err != nil {
		t.Fatalf("keyIdentifier() unexpected error: %v", err)
	}
	got, err := h.Print(payload)
	if err != nil {
		t.Fatalf("Print() unexpected error: %v", err)
	}
	if got != "keyid:"+formatHexColon(want) {
		t.Errorf("Print() = %q, want keyid over %s", got, formatHexColon(want))
	}
}

func TestAuthorityKeyIdentifier_EncodeErrors(t *testing.T) {
	issuer := newTestCertificate(t, &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "Example CA"},
	})

	h := &AuthorityKeyIdentifierHandler{}
	tests := []struct {
		name  string
		value string
		ctx   *domain.Context
	}{
		{"unknown token", "keyid,subject", &domain.Context{Issuer: issuer}},
		{"empty value", "", &domain.Context{Issuer: issuer}},
		{"nil context", "keyid", nil},
		{"missing issuer", "issuer", &domain.Context{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := h.Encode(tt.value, tt.ctx); err == nil {
				t.Error("Encode() expected error, got nil")
			}
		})
	}
}

func TestAuthorityKeyIdentifier_PrintMalformed(t *testing.T) {
	h := &AuthorityKeyIdentifierHandler{}
	if _, err := h.Print([]byte{0x02, 0x01, 0x01}); err == nil {
		t.Error("Print() expected error for malformed payload")
	}
}
