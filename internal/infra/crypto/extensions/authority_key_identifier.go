package extensions

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"signal9.de/certext/internal/domain"
)

// AuthorityKeyIdentifierHandler implements the X.509 Authority Key
// Identifier extension (RFC 5280 section 4.2.1.1). All of its fields
// are resolved from the issuer certificate in the context.
type AuthorityKeyIdentifierHandler struct{}

type authorityKeyID struct {
	KeyID  []byte        `asn1:"optional,tag:0"`
	Issuer asn1.RawValue `asn1:"optional,tag:1"`
	Serial *big.Int      `asn1:"optional,tag:2"`
}

// Name returns the extension type name as used in textual values.
func (h *AuthorityKeyIdentifierHandler) Name() string {
	return "authorityKeyIdentifier"
}

// OID returns the Authority Key Identifier OID.
func (h *AuthorityKeyIdentifierHandler) OID() asn1.ObjectIdentifier {
	return asn1.ObjectIdentifier{2, 5, 29, 35}
}

// Encode parses a comma-separated list of "keyid" and "issuer" tokens
// (the ":always" suffixes are accepted and ignored, as in the OpenSSL
// syntax). "keyid" copies the issuer's subject key identifier,
// computing it from the public key when the issuer carries none;
// "issuer" embeds the issuer certificate's issuer name and serial
// number. Both require an issuer certificate in the context.
func (h *AuthorityKeyIdentifierHandler) Encode(value string, ctx *domain.Context) ([]byte, error) {
	var wantKeyID, wantIssuer bool
	for _, item := range splitList(value) {
		switch item {
		case "keyid", "keyid:always":
			wantKeyID = true
		case "issuer", "issuer:always":
			wantIssuer = true
		default:
			return nil, fmt.Errorf("unknown authorityKeyIdentifier item %q", item)
		}
	}
	if !wantKeyID && !wantIssuer {
		return nil, errors.New("authorityKeyIdentifier needs keyid or issuer")
	}
	if ctx == nil || ctx.Issuer == nil {
		return nil, errors.New("authorityKeyIdentifier requires an issuer certificate")
	}

	var parts []asn1.RawValue
	if wantKeyID {
		id, err := issuerKeyID(ctx.Issuer)
		if err != nil {
			return nil, err
		}
		parts = append(parts, asn1.RawValue{Class: asn1.ClassContextSpecific, Tag: 0, Bytes: id})
	}
	if wantIssuer {
		var dir pkix.RDNSequence
		if _, err := asn1.Unmarshal(ctx.Issuer.RawIssuer, &dir); err != nil {
			return nil, fmt.Errorf("cannot parse issuer name: %s", err)
		}
		gn, err := encodeGeneralNames([]GeneralName{{Kind: NameKindDirectory, Dir: dir}})
		if err != nil {
			return nil, err
		}
		// Re-tag the GeneralNames sequence as the implicit [1] field.
		var seq asn1.RawValue
		if _, err := asn1.Unmarshal(gn, &seq); err != nil {
			return nil, err
		}
		parts = append(parts, asn1.RawValue{Class: asn1.ClassContextSpecific, Tag: 1, IsCompound: true, Bytes: seq.Bytes})

		serial, err := asn1.Marshal(ctx.Issuer.SerialNumber)
		if err != nil {
			return nil, err
		}
		var rawSerial asn1.RawValue
		if _, err := asn1.Unmarshal(serial, &rawSerial); err != nil {
			return nil, err
		}
		parts = append(parts, asn1.RawValue{Class: asn1.ClassContextSpecific, Tag: 2, Bytes: rawSerial.Bytes})
	}
	return asn1.Marshal(parts)
}

// Print renders the payload as "keyid:...", "DirName:...", "serial:..."
// segments joined with ", ".
func (h *AuthorityKeyIdentifierHandler) Print(payload []byte) (string, error) {
	var akid authorityKeyID
	if rest, err := asn1.Unmarshal(payload, &akid); err != nil || len(rest) > 0 {
		return "", fmt.Errorf("%w: authorityKeyIdentifier", domain.ErrMalformedPayload)
	}
	var parts []string
	if len(akid.KeyID) > 0 {
		parts = append(parts, "keyid:"+formatHexColon(akid.KeyID))
	}
	if len(akid.Issuer.Bytes) > 0 {
		names, err := decodeGeneralNameContents(akid.Issuer.Bytes)
		if err != nil {
			return "", fmt.Errorf("%w: authorityKeyIdentifier issuer: %s", domain.ErrMalformedPayload, err)
		}
		for _, n := range names {
			parts = append(parts, formatGeneralName(n))
		}
	}
	if akid.Serial != nil {
		parts = append(parts, "serial:"+formatHexColon(akid.Serial.Bytes()))
	}
	return strings.Join(parts, ", "), nil
}

// issuerKeyID returns the issuer's subject key identifier, falling
// back to computing it from the issuer's public key when the
// certificate carries no subjectKeyIdentifier extension.
func issuerKeyID(issuer *x509.Certificate) ([]byte, error) {
	if len(issuer.SubjectKeyId) > 0 {
		return issuer.SubjectKeyId, nil
	}
	return keyIdentifier(issuer)
}
