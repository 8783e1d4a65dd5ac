package app

import (
	"context"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"signal9.de/certext/internal/domain"
	"signal9.de/certext/internal/infra/crypto/extensions"
)

// Application orchestrates the application's use cases.
type Application struct {
	logger       domain.Logger
	configLoader domain.ConfigLoader
	names        domain.ExtensionRegistry
	encoder      *extensions.Encoder
	formatter    *extensions.Formatter
	clock        domain.Clock
}

// NewApplication creates a new Application instance.
func NewApplication(
	logger domain.Logger,
	configLoader domain.ConfigLoader,
	names domain.ExtensionRegistry,
	encoder *extensions.Encoder,
	formatter *extensions.Formatter,
	clock domain.Clock,
) *Application {
	return &Application{
		logger:       logger,
		configLoader: configLoader,
		names:        names,
		encoder:      encoder,
		formatter:    formatter,
		clock:        clock,
	}
}

// EncodeExtension encodes a single extension from its textual value.
// subjectPath and issuerPath are optional certificate files some value
// syntaxes resolve against ("hash", "keyid", copied names).
func (a *Application) EncodeExtension(ctx context.Context, typeName string, critical bool, value, subjectPath, issuerPath string) (*extensions.Extension, error) {
	subject, issuer, err := a.loadContextCerts(subjectPath, issuerPath)
	if err != nil {
		return nil, err
	}

	ext, err := a.encoder.Encode(typeName, critical, value, subject, issuer)
	if err != nil {
		a.logger.Error("Failed to encode %s: %v", typeName, err)
		return nil, err
	}
	a.logger.Log(fmt.Sprintf("Encoded extension %s (%s)", typeName, ext.OID()))
	return ext, nil
}

// EncodeProfile loads an extension profile and encodes everything in
// it, returning the extensions in name order. Encoding stops at the
// first failure so a profile never half-applies.
func (a *Application) EncodeProfile(ctx context.Context, profilePath, subjectPath, issuerPath string) (string, []*extensions.Extension, error) {
	cfg, err := a.configLoader.LoadProfile(profilePath)
	if err != nil {
		return "", nil, err
	}

	subject, issuer, err := a.loadContextCerts(subjectPath, issuerPath)
	if err != nil {
		return "", nil, err
	}

	names := make([]string, 0, len(cfg.Extensions))
	for name := range cfg.Extensions {
		names = append(names, name)
	}
	sort.Strings(names)

	exts := make([]*extensions.Extension, 0, len(names))
	for _, name := range names {
		entry := cfg.Extensions[name]
		ext, err := a.encoder.Encode(name, entry.Critical, entry.Value, subject, issuer)
		if err != nil {
			a.logger.Error("Profile %q: failed to encode %s: %v", cfg.Name, name, err)
			return "", nil, fmt.Errorf("profile %q: %w", cfg.Name, err)
		}
		exts = append(exts, ext)
	}
	a.logger.Log(fmt.Sprintf("Encoded profile %q (%d extensions)", cfg.Name, len(exts)))
	return cfg.Name, exts, nil
}

// DisplayExtensions renders encoded extensions for presentation.
// Extensions without a registered printer fall back to hex.
func (a *Application) DisplayExtensions(exts []*extensions.Extension) []domain.ExtensionDisplay {
	out := make([]domain.ExtensionDisplay, 0, len(exts))
	for _, ext := range exts {
		out = append(out, domain.ExtensionDisplay{
			Name:     a.displayName(ext),
			OID:      ext.OID().String(),
			Critical: ext.Critical(),
			Value:    a.formatValue(ext),
		})
	}
	return out
}

// InspectCertificate loads a certificate and renders all of its
// extensions.
func (a *Application) InspectCertificate(ctx context.Context, path string) (*x509.Certificate, []domain.ExtensionDisplay, error) {
	cert, err := a.loadCertificate(path)
	if err != nil {
		return nil, nil, err
	}

	displays := make([]domain.ExtensionDisplay, 0, len(cert.Extensions))
	for _, raw := range cert.Extensions {
		ext, err := extensions.Borrow(a.names, raw)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
		displays = append(displays, domain.ExtensionDisplay{
			Name:     a.displayName(ext),
			OID:      raw.Id.String(),
			Critical: raw.Critical,
			Value:    a.formatValue(ext),
		})
	}
	a.logger.Log(fmt.Sprintf("Inspected %s (%d extensions)", path, len(displays)))
	return cert, displays, nil
}

// ValidateProfile checks a profile file without encoding anything:
// schema, strict field names, known extension types.
func (a *Application) ValidateProfile(ctx context.Context, path string) error {
	_, err := a.configLoader.LoadProfile(path)
	return err
}

// ListExtensionTypes returns all registered extension types in sorted
// order.
func (a *Application) ListExtensionTypes() []domain.ExtensionTypeInfo {
	names := a.names.Names()
	out := make([]domain.ExtensionTypeInfo, 0, len(names))
	for _, name := range names {
		handler, ok := a.names.ByName(name)
		if !ok {
			continue
		}
		out = append(out, domain.ExtensionTypeInfo{Name: name, OID: handler.OID().String()})
	}
	return out
}

// Now exposes the application clock for presentation code.
func (a *Application) Now() time.Time {
	return a.clock.Now()
}

func (a *Application) displayName(ext *extensions.Extension) string {
	if name, ok := a.names.ShortName(ext.OID()); ok {
		return name
	}
	return ext.OID().String()
}

// formatValue renders an extension's payload, falling back to hex when
// no printer is registered for its OID.
func (a *Application) formatValue(ext *extensions.Extension) string {
	value, err := a.formatter.Format(ext)
	if err == nil {
		return value
	}
	if errors.Is(err, domain.ErrNoPrinter) {
		return hex.EncodeToString(ext.RawData())
	}
	return fmt.Sprintf("<%v>", err)
}

func (a *Application) loadContextCerts(subjectPath, issuerPath string) (subject, issuer *x509.Certificate, err error) {
	if subjectPath != "" {
		if subject, err = a.loadCertificate(subjectPath); err != nil {
			return nil, nil, err
		}
	}
	if issuerPath != "" {
		if issuer, err = a.loadCertificate(issuerPath); err != nil {
			return nil, nil, err
		}
	}
	return subject, issuer, nil
}

// loadCertificate reads a certificate file, accepting PEM or raw DER.
func (a *Application) loadCertificate(path string) (*x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCertificateNotFound, path)
	}

	der := data
	if block, _ := pem.Decode(data); block != nil {
		if block.Type != "CERTIFICATE" {
			return nil, fmt.Errorf("%s: PEM block is %q, want CERTIFICATE", path, block.Type)
		}
		der = block.Bytes
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("could not parse certificate %s: %w", path, err)
	}
	return cert, nil
}
