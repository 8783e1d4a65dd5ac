//go:build !integration && !e2e

package app

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"signal9.de/certext/internal/infra/clock"
	"signal9.de/certext/internal/infra/config"
	"signal9.de/certext/internal/infra/crypto/extensions"
)

// testLogger collects log lines for assertions.
type testLogger struct {
	lines []string
}

func (l *testLogger) Info(msg string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(msg, args...))
}

func (l *testLogger) Error(msg string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(msg, args...))
}

func (l *testLogger) Log(msg string) {
	l.lines = append(l.lines, msg)
}

func newTestApp(t *testing.T) (*Application, *testLogger) {
	t.Helper()
	logger := &testLogger{}
	names := extensions.NewRegistry()
	return NewApplication(
		logger,
		config.NewYAMLProfileLoader(),
		names,
		extensions.NewEncoder(names),
		extensions.NewFormatter(names),
		clock.NewService(),
	), logger
}

// writeCertFile generates a self-signed certificate and writes it to a
// temp file, PEM-encoded by default or raw DER.
func writeCertFile(t *testing.T, tmpl *x509.Certificate, asDER bool) string {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("could not generate key: %v", err)
	}
	if tmpl.SerialNumber == nil {
		tmpl.SerialNumber = big.NewInt(1)
	}
	if tmpl.Subject.CommonName == "" {
		tmpl.Subject = pkix.Name{CommonName: "test"}
	}
	tmpl.NotBefore = time.Now().Add(-time.Hour)
	tmpl.NotAfter = time.Now().Add(24 * time.Hour)

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("could not create certificate: %v", err)
	}

	data := der
	name := "cert.der"
	if !asDER {
		data = pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
		name = "cert.pem"
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("could not write certificate: %v", err)
	}
	return path
}
