package extensions

import (
	"encoding/asn1"
	"fmt"
	"strconv"
	"strings"
)

// criticalPrefix is the literal marker the value mini-language uses to
// fold criticality into the value string. The exact marker and comma
// separator are part of the shared configuration-file syntax and must
// not change.
const criticalPrefix = "critical,"

// withCritical splices the critical marker onto a value string. The
// value itself passes through unchanged, including when empty.
func withCritical(critical bool, value string) string {
	if critical {
		return criticalPrefix + value
	}
	return value
}

// splitCritical strips the critical marker back off a spliced value
// string, returning the flag and the remaining value.
func splitCritical(value string) (bool, string) {
	if strings.HasPrefix(value, criticalPrefix) {
		return true, strings.TrimPrefix(value, criticalPrefix)
	}
	return false, value
}

// splitList splits a comma-separated value list, trimming surrounding
// whitespace from each element. Empty elements are preserved so
// handlers can reject them with a position-accurate message.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// splitPair splits a "tag:value" element at the first colon.
func splitPair(item string) (tag, value string, ok bool) {
	return strings.Cut(item, ":")
}

// parseOID parses a dotted object identifier string.
func parseOID(s string) (asn1.ObjectIdentifier, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid OID %q: need at least two arcs", s)
	}
	oid := make(asn1.ObjectIdentifier, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid OID %q: bad arc %q", s, p)
		}
		oid[i] = n
	}
	return oid, nil
}

// parseHexValue decodes a hex string, accepting optional colon
// separators between octets ("DEAD" or "DE:AD").
func parseHexValue(s string) ([]byte, error) {
	clean := strings.ReplaceAll(s, ":", "")
	if len(clean) == 0 || len(clean)%2 != 0 {
		return nil, fmt.Errorf("invalid hex value %q", s)
	}
	out := make([]byte, len(clean)/2)
	for i := 0; i < len(out); i++ {
		n, err := strconv.ParseUint(clean[2*i:2*i+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid hex value %q", s)
		}
		out[i] = byte(n)
	}
	return out, nil
}

// formatHexColon renders bytes as uppercase colon-separated hex, the
// way OpenSSL prints key identifiers.
func formatHexColon(b []byte) string {
	var sb strings.Builder
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(':')
		}
		fmt.Fprintf(&sb, "%02X", c)
	}
	return sb.String()
}
