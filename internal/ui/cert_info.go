package ui

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/message"
	"signal9.de/certext/internal/domain"
	"signal9.de/certext/internal/localedate"
)

// formatDurationParts formats a duration into human-readable text
func formatDurationParts(duration time.Duration, p *message.Printer) string {
	days := int64(math.Round(duration.Hours() / 24))
	totalHours := int64(duration.Hours())

	switch {
	case days < 3:
		switch days {
		case 0:
			switch totalHours {
			case 0:
				if duration.Hours() < 0 {
					return "< 0 hours"
				}
				return "0 hours"
			case 1:
				return "1 hour"
			default:
				return p.Sprintf("%d hours", totalHours)
			}
		case 1:
			return p.Sprintf("1 day (%d hours)", totalHours)
		default:
			return p.Sprintf("%d days (%d hours)", days, totalHours)
		}
	case days <= 365:
		return p.Sprintf("%d days", days)
	default:
		now := time.Now()
		oneYearLater := now.AddDate(1, 0, 0)
		daysInYear := oneYearLater.Sub(now).Hours() / 24
		years := float64(days) / daysInYear
		return p.Sprintf("%d days (%.1f years)", days, years)
	}
}

// FormatCertExpiry formats certificate expiry time in a user-friendly way
// with colored status symbols, relative to now.
func FormatCertExpiry(expiryTime, now time.Time) string {
	p := message.NewPrinter(localedate.GetUserLocaleTag())
	duration := expiryTime.Sub(now)

	timeString := formatDurationParts(duration, p)
	days := int64(math.Round(duration.Hours() / 24))
	switch {
	case days < 0:
		return red("✗ " + timeString)
	case days <= 30:
		return yellow("!") + " " + timeString
	default:
		return green("✓") + " " + timeString
	}
}

// PrintCertInfo displays certificate information with its rendered
// extension list. The extensions are pre-formatted by the caller so
// this stays a pure presentation concern.
func PrintCertInfo(cert *x509.Certificate, extensions []domain.ExtensionDisplay, now time.Time) {
	remaining := FormatCertExpiry(cert.NotAfter, now)
	email := extractEmailFromSubject(cert.Subject)
	fingerprint := fmt.Sprintf("%x", sha256.Sum256(cert.Raw))

	fmt.Println()
	header := "CERTIFICATE"
	if cert.IsCA {
		header = "CERTIFICATE AUTHORITY"
	}
	fmt.Printf("%s\n", green(bold(header)))

	if cert.Subject.CommonName != "" {
		printField("Common Name", cert.Subject.CommonName)
	}
	if org := joinNonEmpty(cert.Subject.Organization, cert.Subject.OrganizationalUnit); org != "" {
		printField("Organization", org)
	}
	if email != "" {
		printField("Email", email)
	}
	if loc := joinNonEmpty(cert.Subject.Locality, cert.Subject.Province, cert.Subject.Country); loc != "" {
		printField("Location", loc)
	}

	userLocale := localedate.GetUserLocaleTag().String()
	fmt.Printf("\n%s\n", green(bold("VALIDITY PERIOD")))
	printField("Issued", localedate.FormatDateTime(userLocale, cert.NotBefore, localedate.FormatLong))
	printField("Expires", localedate.FormatDateTime(userLocale, cert.NotAfter, localedate.FormatLong))
	printField("Remaining", remaining)

	fmt.Printf("\n%s\n", green(bold("CRYPTOGRAPHIC DETAILS")))
	printField("Serial", fmt.Sprintf("%x", cert.SerialNumber))
	printField("Fingerprint", "SHA256:"+fingerprint)
	printField("Key", getKeyTypeDetails(cert.PublicKey))
	printField("Signature", cert.SignatureAlgorithm.String())

	if len(extensions) > 0 {
		fmt.Printf("\n%s\n", green(bold("EXTENSIONS")))
		PrintExtensions(extensions)
	}
}

// PrintExtensions displays a rendered extension list, critical ones
// marked with a red exclamation mark.
func PrintExtensions(extensions []domain.ExtensionDisplay) {
	for _, ext := range extensions {
		displayName := cyan(ext.Name)
		if ext.Critical {
			displayName += red(" !")
		}
		// Show the OID only when no short name resolved for it.
		if ext.Name == ext.OID {
			fmt.Printf("   %s\n", displayName)
		} else {
			fmt.Printf("   %s (%s)\n", displayName, ext.OID)
		}
		if strings.Contains(ext.Value, "\n") {
			fmt.Println(indentText(ext.Value, "     "))
		} else {
			fmt.Printf("     %s\n", ext.Value)
		}
	}

	fmt.Printf("\n   %s\n", red("(! = critical)"))
}

func printField(label, value string) {
	fmt.Printf("   %s %s\n", cyan(fmt.Sprintf("%-13s", label)), value)
}

// joinNonEmpty joins the first element of each list, skipping blanks.
func joinNonEmpty(lists ...[]string) string {
	var parts []string
	for _, list := range lists {
		if len(list) > 0 && list[0] != "" {
			parts = append(parts, list[0])
		}
	}
	return strings.Join(parts, ", ")
}

// indentText indents every line of text with the given prefix.
func indentText(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// extractEmailFromSubject extracts email address from certificate subject
func extractEmailFromSubject(subject pkix.Name) string {
	for _, name := range subject.Names {
		// Email address OID: 1.2.840.113549.1.9.1
		if name.Type.Equal(asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 1}) {
			if email, ok := name.Value.(string); ok {
				return email
			}
		}
	}
	return ""
}

// getKeyTypeDetails returns a human-readable description of the public key
func getKeyTypeDetails(pubKey interface{}) string {
	switch key := pubKey.(type) {
	case *rsa.PublicKey:
		return fmt.Sprintf("RSA (%d-bit)", key.Size()*8)
	case *ecdsa.PublicKey:
		return fmt.Sprintf("ECDSA (%s, %d-bit)", key.Curve.Params().Name, key.Curve.Params().BitSize)
	case ed25519.PublicKey:
		return "Ed25519 (256-bit)"
	default:
		return "Unknown"
	}
}
