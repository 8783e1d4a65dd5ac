package extensions

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"fmt"
	"net"
	"strings"

	"signal9.de/certext/internal/domain"
)

// GeneralNameKind enumerates the GeneralName CHOICE alternatives from
// RFC 5280 section 4.2.1.6. The values match the context-specific DER
// tag numbers.
type GeneralNameKind int

const (
	NameKindOtherName GeneralNameKind = iota // [0] otherName
	NameKindEmail                            // [1] rfc822Name
	NameKindDNS                              // [2] dNSName
	NameKindX400                             // [3] x400Address
	NameKindDirectory                        // [4] directoryName
	NameKindEDIParty                         // [5] ediPartyName
	NameKindURI                              // [6] uniformResourceIdentifier
	NameKindIP                               // [7] iPAddress
	NameKindRegisteredID                     // [8] registeredID
)

// GeneralName is one decoded entry of a GeneralNames sequence.
//
// For the string kinds (email, DNS, URI) and IP addresses, Bytes holds
// the exact content octets, embedded NUL bytes included. Directory
// names decode into Dir, registered IDs into ID. The kinds with no
// simple text form keep only their raw element for re-encoding.
type GeneralName struct {
	Kind  GeneralNameKind
	Bytes []byte
	Dir   pkix.RDNSequence
	ID    asn1.ObjectIdentifier
	raw   asn1.RawValue
}

// decodeGeneralNames decodes a DER-encoded GeneralNames sequence. The
// returned names alias the input; they are transient and must not be
// retained past formatting.
func decodeGeneralNames(der []byte) ([]GeneralName, error) {
	var seq asn1.RawValue
	rest, err := asn1.Unmarshal(der, &seq)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, errors.New("trailing data after GeneralNames")
	}
	if seq.Class != asn1.ClassUniversal || seq.Tag != asn1.TagSequence || !seq.IsCompound {
		return nil, errors.New("GeneralNames is not a SEQUENCE")
	}
	return decodeGeneralNameContents(seq.Bytes)
}

// decodeGeneralNameContents decodes the elements inside a GeneralNames
// sequence. Used directly for fields that carry GeneralNames under an
// implicit tag (authorityCertIssuer, distribution point fullName).
func decodeGeneralNameContents(data []byte) ([]GeneralName, error) {
	var names []GeneralName
	for len(data) > 0 {
		var rv asn1.RawValue
		var err error
		data, err = asn1.Unmarshal(data, &rv)
		if err != nil {
			return nil, err
		}
		name, err := decodeGeneralNameElement(rv)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func decodeGeneralNameElement(rv asn1.RawValue) (GeneralName, error) {
	if rv.Class != asn1.ClassContextSpecific {
		return GeneralName{}, fmt.Errorf("GeneralName has class %d, want context-specific", rv.Class)
	}
	name := GeneralName{Kind: GeneralNameKind(rv.Tag), raw: rv}
	switch name.Kind {
	case NameKindEmail, NameKindDNS, NameKindURI, NameKindIP:
		name.Bytes = rv.Bytes
	case NameKindDirectory:
		// The explicit [4] tag wraps the Name SEQUENCE.
		if _, err := asn1.Unmarshal(rv.Bytes, &name.Dir); err != nil {
			return GeneralName{}, fmt.Errorf("directoryName: %s", err)
		}
	case NameKindRegisteredID:
		// Re-tag the content octets as a universal OID so
		// encoding/asn1 can parse them.
		full, err := asn1.Marshal(asn1.RawValue{Tag: asn1.TagOID, Bytes: rv.Bytes})
		if err != nil {
			return GeneralName{}, fmt.Errorf("registeredID: %s", err)
		}
		if _, err := asn1.Unmarshal(full, &name.ID); err != nil {
			return GeneralName{}, fmt.Errorf("registeredID: %s", err)
		}
	case NameKindOtherName, NameKindX400, NameKindEDIParty:
		// Kept raw; rendered by the generic printer.
	default:
		return GeneralName{}, fmt.Errorf("GeneralName has unknown tag %d", rv.Tag)
	}
	return name, nil
}

// encodeGeneralNames encodes names as a DER GeneralNames sequence.
func encodeGeneralNames(names []GeneralName) ([]byte, error) {
	raw := make([]asn1.RawValue, 0, len(names))
	for _, n := range names {
		rv, err := n.rawValue()
		if err != nil {
			return nil, err
		}
		raw = append(raw, rv)
	}
	return asn1.Marshal(raw)
}

func (n GeneralName) rawValue() (asn1.RawValue, error) {
	switch n.Kind {
	case NameKindEmail, NameKindDNS, NameKindURI, NameKindIP:
		return asn1.RawValue{Class: asn1.ClassContextSpecific, Tag: int(n.Kind), Bytes: n.Bytes}, nil
	case NameKindDirectory:
		inner, err := asn1.Marshal(n.Dir)
		if err != nil {
			return asn1.RawValue{}, err
		}
		return asn1.RawValue{Class: asn1.ClassContextSpecific, Tag: int(NameKindDirectory), IsCompound: true, Bytes: inner}, nil
	case NameKindRegisteredID:
		full, err := asn1.Marshal(n.ID)
		if err != nil {
			return asn1.RawValue{}, err
		}
		var rv asn1.RawValue
		if _, err := asn1.Unmarshal(full, &rv); err != nil {
			return asn1.RawValue{}, err
		}
		return asn1.RawValue{Class: asn1.ClassContextSpecific, Tag: int(NameKindRegisteredID), Bytes: rv.Bytes}, nil
	default:
		if len(n.raw.FullBytes) > 0 {
			return n.raw, nil
		}
		return asn1.RawValue{}, fmt.Errorf("cannot encode GeneralName kind %d", n.Kind)
	}
}

// parseGeneralNameItem parses one "type:value" element of a name list
// into general names. The email and issuer "copy" forms expand to the
// names found on the context certificates and may yield several
// entries (or none).
func parseGeneralNameItem(item string, ctx *domain.Context) ([]GeneralName, error) {
	tag, val, ok := splitPair(item)
	if !ok {
		return nil, fmt.Errorf("expected type:value, got %q", item)
	}
	switch tag {
	case "email":
		if val == "copy" {
			if ctx == nil || ctx.Subject == nil {
				return nil, errors.New("email:copy requires a subject certificate")
			}
			var names []GeneralName
			for _, addr := range ctx.Subject.EmailAddresses {
				names = append(names, GeneralName{Kind: NameKindEmail, Bytes: []byte(addr)})
			}
			return names, nil
		}
		return []GeneralName{{Kind: NameKindEmail, Bytes: []byte(val)}}, nil
	case "DNS":
		return []GeneralName{{Kind: NameKindDNS, Bytes: []byte(val)}}, nil
	case "URI":
		return []GeneralName{{Kind: NameKindURI, Bytes: []byte(val)}}, nil
	case "IP":
		ip := net.ParseIP(val)
		if ip == nil {
			return nil, fmt.Errorf("invalid IP address %q", val)
		}
		if v4 := ip.To4(); v4 != nil {
			ip = v4
		}
		return []GeneralName{{Kind: NameKindIP, Bytes: ip}}, nil
	case "RID":
		oid, err := parseOID(val)
		if err != nil {
			return nil, err
		}
		return []GeneralName{{Kind: NameKindRegisteredID, ID: oid}}, nil
	default:
		return nil, fmt.Errorf("unknown general name type %q", tag)
	}
}

// printGeneralNames renders a GeneralNames payload. Each string-typed
// name is written over its full, length-exact byte range so an
// embedded NUL cannot truncate the display; see Formatter for the
// attack this prevents.
func printGeneralNames(payload []byte) (string, error) {
	names, err := decodeGeneralNames(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrMalformedPayload, err)
	}
	var b strings.Builder
	for i, n := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		switch n.Kind {
		case NameKindEmail:
			b.WriteString("email:")
			b.Write(n.Bytes)
		case NameKindDNS:
			b.WriteString("DNS:")
			b.Write(n.Bytes)
		case NameKindURI:
			b.WriteString("URI:")
			b.Write(n.Bytes)
		default:
			b.WriteString(formatGeneralName(n))
		}
	}
	return b.String(), nil
}

// formatGeneralName is the generic single-name printer, covering the
// kinds that have no uniform length-exact text form.
func formatGeneralName(n GeneralName) string {
	switch n.Kind {
	case NameKindOtherName:
		return "othername:<unsupported>"
	case NameKindEmail:
		return "email:" + string(n.Bytes)
	case NameKindDNS:
		return "DNS:" + string(n.Bytes)
	case NameKindX400:
		return "X400Name:<unsupported>"
	case NameKindDirectory:
		return "DirName:" + n.Dir.String()
	case NameKindEDIParty:
		return "EDIPartyName:<unsupported>"
	case NameKindURI:
		return "URI:" + string(n.Bytes)
	case NameKindIP:
		if len(n.Bytes) == net.IPv4len || len(n.Bytes) == net.IPv6len {
			return "IP Address:" + net.IP(n.Bytes).String()
		}
		return "IP Address:<invalid>"
	case NameKindRegisteredID:
		return "Registered ID:" + n.ID.String()
	default:
		return fmt.Sprintf("<unknown name type %d>", n.Kind)
	}
}
