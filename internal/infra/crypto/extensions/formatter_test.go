//go:build !integration && !e2e

package extensions

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"testing"

	"signal9.de/certext/internal/domain"
)

func TestFormat_RoundTrip(t *testing.T) {
	tests := []struct {
		typeName string
		value    string
		want     string
	}{
		{"basicConstraints", "CA:TRUE", "CA:TRUE"},
		{"basicConstraints", "CA:FALSE", "CA:FALSE"},
		{"basicConstraints", "CA:TRUE,pathlen:0", "CA:TRUE, pathlen:0"},
		{"keyUsage", "digitalSignature", "Digital Signature"},
		{"keyUsage", "digitalSignature,keyEncipherment", "Digital Signature, Key Encipherment"},
		{"extendedKeyUsage", "serverAuth,clientAuth", "TLS Web Server Authentication, TLS Web Client Authentication"},
		{"extendedKeyUsage", "1.2.3.4", "1.2.3.4"},
		{"nsComment", "issued for testing", "issued for testing"},
		{"crlDistributionPoints", "URI:http://crl.example.com/ca.crl", "URI:http://crl.example.com/ca.crl"},
		{"certificatePolicies", "1.3.6.1.4.1.44947.1.1.1", "Policy: 1.3.6.1.4.1.44947.1.1.1"},
		{"certificatePolicies", "anyPolicy", "Policy: 2.5.29.32.0 (anyPolicy)"},
	}

	reg := NewRegistry()
	enc := NewEncoder(reg)
	fmtr := NewFormatter(reg)

	for _, tt := range tests {
		t.Run(tt.typeName+"/"+tt.value, func(t *testing.T) {
			ext, err := enc.Encode(tt.typeName, false, tt.value, nil, nil)
			if err != nil {
				t.Fatalf("Encode() unexpected error: %v", err)
			}
			got, err := fmtr.Format(ext)
			if err != nil {
				t.Fatalf("Format() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat_NoPrinterForUnknownOID(t *testing.T) {
	reg := NewRegistry()
	ext, err := Borrow(reg, pkix.Extension{
		Id:    asn1.ObjectIdentifier{1, 2, 3, 4, 5},
		Value: []byte{0x05, 0x00},
	})
	if err != nil {
		t.Fatalf("Borrow() unexpected error: %v", err)
	}

	if _, err := NewFormatter(reg).Format(ext); !errors.Is(err, domain.ErrNoPrinter) {
		t.Errorf("Format() error = %v, want ErrNoPrinter", err)
	}
}

func TestFormat_MalformedPayload(t *testing.T) {
	reg := NewRegistry()
	ext, err := Borrow(reg, pkix.Extension{
		Id:    asn1.ObjectIdentifier{2, 5, 29, 19},
		Value: []byte{0xff, 0xff},
	})
	if err != nil {
		t.Fatalf("Borrow() unexpected error: %v", err)
	}

	if _, err := NewFormatter(reg).Format(ext); !errors.Is(err, domain.ErrMalformedPayload) {
		t.Errorf("Format() error = %v, want ErrMalformedPayload", err)
	}
}

// stubHandler is a minimal handler used to verify that the encoder and
// formatter dispatch through the registry interface rather than any
// built-in table.
type stubHandler struct{}

func (stubHandler) Name() string                { return "stubExtension" }
func (stubHandler) OID() asn1.ObjectIdentifier  { return asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 99999, 1} }
func (stubHandler) Encode(value string, _ *domain.Context) ([]byte, error) {
	return asn1.Marshal(value)
}
func (stubHandler) Print(payload []byte) (string, error) {
	var s string
	if _, err := asn1.Unmarshal(payload, &s); err != nil {
		return "", err
	}
	return "stub=" + s, nil
}

func TestFormat_DispatchesThroughRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Register(stubHandler{})

	ext, err := NewEncoder(reg).Encode("stubExtension", false, "hello", nil, nil)
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}
	if got := ext.ShortName(); got != "stubExtension" {
		t.Errorf("ShortName() = %q, want %q", got, "stubExtension")
	}

	got, err := NewFormatter(reg).Format(ext)
	if err != nil {
		t.Fatalf("Format() unexpected error: %v", err)
	}
	if got != "stub=hello" {
		t.Errorf("Format() = %q, want %q", got, "stub=hello")
	}
}
