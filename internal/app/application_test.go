//go:build !integration && !e2e

package app

import (
	"context"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"signal9.de/certext/internal/domain"
	"signal9.de/certext/internal/infra/crypto/extensions"
)

func TestEncodeExtension(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	ext, err := app.EncodeExtension(ctx, "basicConstraints", true, "CA:TRUE", "", "")
	if err != nil {
		t.Fatalf("EncodeExtension() unexpected error: %v", err)
	}
	if !ext.Critical() {
		t.Error("extension should be critical")
	}
	if got := ext.OID().String(); got != "2.5.29.19" {
		t.Errorf("OID = %s, want 2.5.29.19", got)
	}
}

func TestEncodeExtension_UnknownType(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := app.EncodeExtension(context.Background(), "notAThing", false, "x", "", "")
	if !errors.Is(err, domain.ErrUnknownExtensionType) {
		t.Errorf("error = %v, want ErrUnknownExtensionType", err)
	}
}

func TestEncodeExtension_WithSubjectContext(t *testing.T) {
	app, _ := newTestApp(t)
	certPath := writeCertFile(t, &x509.Certificate{
		Subject: pkix.Name{CommonName: "subject"},
	}, false)

	ext, err := app.EncodeExtension(context.Background(), "subjectKeyIdentifier", false, "hash", certPath, "")
	if err != nil {
		t.Fatalf("EncodeExtension() unexpected error: %v", err)
	}
	if got := ext.OID().String(); got != "2.5.29.14" {
		t.Errorf("OID = %s, want 2.5.29.14", got)
	}
}

func TestEncodeExtension_MissingContextCert(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := app.EncodeExtension(context.Background(), "subjectKeyIdentifier", false, "hash",
		filepath.Join(t.TempDir(), "nope.pem"), "")
	if !errors.Is(err, domain.ErrCertificateNotFound) {
		t.Errorf("error = %v, want ErrCertificateNotFound", err)
	}
}

func TestEncodeProfile(t *testing.T) {
	app, logger := newTestApp(t)

	profilePath := filepath.Join(t.TempDir(), "profile.yaml")
	content := `
name: tls-server
extensions:
  keyUsage:
    critical: true
    value: "digitalSignature,keyEncipherment"
  basicConstraints:
    value: "CA:FALSE"
`
	if err := os.WriteFile(profilePath, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write profile: %v", err)
	}

	name, exts, err := app.EncodeProfile(context.Background(), profilePath, "", "")
	if err != nil {
		t.Fatalf("EncodeProfile() unexpected error: %v", err)
	}
	if name != "tls-server" {
		t.Errorf("profile name = %q, want tls-server", name)
	}
	if len(exts) != 2 {
		t.Fatalf("len(exts) = %d, want 2", len(exts))
	}
	// Name order: basicConstraints before keyUsage.
	if got := exts[0].OID().String(); got != "2.5.29.19" {
		t.Errorf("first extension OID = %s, want basicConstraints", got)
	}
	if !exts[1].Critical() {
		t.Error("keyUsage should carry its critical flag")
	}
	if len(logger.lines) == 0 {
		t.Error("profile encoding should log")
	}
}

func TestEncodeProfile_StopsOnFirstFailure(t *testing.T) {
	app, _ := newTestApp(t)

	profilePath := filepath.Join(t.TempDir(), "profile.yaml")
	content := `
name: broken
extensions:
  keyUsage:
    value: "notAUsage"
`
	if err := os.WriteFile(profilePath, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write profile: %v", err)
	}

	_, exts, err := app.EncodeProfile(context.Background(), profilePath, "", "")
	if !errors.Is(err, domain.ErrInvalidValueSyntax) {
		t.Errorf("error = %v, want ErrInvalidValueSyntax", err)
	}
	if exts != nil {
		t.Error("no extensions should be returned on failure")
	}
}

func TestInspectCertificate(t *testing.T) {
	app, _ := newTestApp(t)

	for _, asDER := range []bool{false, true} {
		name := "pem"
		if asDER {
			name = "der"
		}
		t.Run(name, func(t *testing.T) {
			certPath := writeCertFile(t, &x509.Certificate{
				Subject:               pkix.Name{CommonName: "www.example.com"},
				DNSNames:              []string{"www.example.com", "example.com"},
				BasicConstraintsValid: true,
			}, asDER)

			cert, displays, err := app.InspectCertificate(context.Background(), certPath)
			if err != nil {
				t.Fatalf("InspectCertificate() unexpected error: %v", err)
			}
			if cert.Subject.CommonName != "www.example.com" {
				t.Errorf("CommonName = %q", cert.Subject.CommonName)
			}

			var san *domain.ExtensionDisplay
			for i := range displays {
				if displays[i].OID == "2.5.29.17" {
					san = &displays[i]
				}
			}
			if san == nil {
				t.Fatal("no subjectAltName in display list")
			}
			if san.Name != "subjectAltName" {
				t.Errorf("Name = %q, want subjectAltName", san.Name)
			}
			want := "DNS:www.example.com, DNS:example.com"
			if san.Value != want {
				t.Errorf("Value = %q, want %q", san.Value, want)
			}
		})
	}
}

func TestInspectCertificate_Missing(t *testing.T) {
	app, _ := newTestApp(t)

	_, _, err := app.InspectCertificate(context.Background(), filepath.Join(t.TempDir(), "nope.pem"))
	if !errors.Is(err, domain.ErrCertificateNotFound) {
		t.Errorf("error = %v, want ErrCertificateNotFound", err)
	}
}

func TestDisplayExtensions_HexFallback(t *testing.T) {
	app, _ := newTestApp(t)

	names := extensions.NewRegistry()
	ext, err := extensions.Borrow(names, pkix.Extension{
		Id:    asn1.ObjectIdentifier{1, 2, 3, 4},
		Value: []byte{0xde, 0xad},
	})
	if err != nil {
		t.Fatalf("Borrow() unexpected error: %v", err)
	}

	displays := app.DisplayExtensions([]*extensions.Extension{ext})
	if len(displays) != 1 {
		t.Fatalf("len(displays) = %d, want 1", len(displays))
	}
	d := displays[0]
	if d.Name != "1.2.3.4" {
		t.Errorf("Name = %q, want the dotted OID", d.Name)
	}
	if d.Value != "dead" {
		t.Errorf("Value = %q, want hex fallback %q", d.Value, "dead")
	}
}

func TestListExtensionTypes(t *testing.T) {
	app, _ := newTestApp(t)

	types := app.ListExtensionTypes()
	if len(types) == 0 {
		t.Fatal("no extension types registered")
	}
	if !sort.SliceIsSorted(types, func(i, j int) bool { return types[i].Name < types[j].Name }) {
		t.Error("types are not sorted by name")
	}

	found := false
	for _, info := range types {
		if info.Name == "basicConstraints" {
			found = true
			if info.OID != "2.5.29.19" {
				t.Errorf("basicConstraints OID = %s", info.OID)
			}
		}
	}
	if !found {
		t.Error("basicConstraints missing from type list")
	}
}
