package sui

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/blake2b"
)

// AddressLength is the byte length of a Sui address
const AddressLength = 32

// GasCoinType is the canonical type tag of the chain's native gas coin
const GasCoinType = "0x2::sui::SUI"

// MistPerSui is the number of base units (MIST) in one SUI
const MistPerSui = 1_000_000_000

// Signature scheme flags prepended to the public key when deriving an address
const (
	SchemeED25519   byte = 0x00
	SchemeSecp256k1 byte = 0x01
	SchemeSecp256r1 byte = 0x02
)

// NormalizeAddress rewrites an address to its canonical minimal hex form:
// lowercase, 0x-prefixed, with redundant leading zero digits dropped.
// "0x0000...0002" becomes "0x2"; "0x2" is returned unchanged. The rewrite
// is lossless, so normalize(normalize(x)) == normalize(x).
func NormalizeAddress(address string) (string, error) {
	s := strings.TrimSpace(strings.ToLower(address))
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		return "", fmt.Errorf("empty address")
	}
	if len(s) > 2*AddressLength {
		return "", fmt.Errorf("address too long: %d hex digits, maximum %d", len(s), 2*AddressLength)
	}
	for i, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return "", fmt.Errorf("invalid hex character %q at position %d in address", r, i)
		}
	}

	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	return "0x" + s, nil
}

// ExpandAddress returns the full zero-padded 64-digit form of an address
func ExpandAddress(address string) (string, error) {
	normalized, err := NormalizeAddress(address)
	if err != nil {
		return "", err
	}
	digits := strings.TrimPrefix(normalized, "0x")
	return "0x" + strings.Repeat("0", 2*AddressLength-len(digits)) + digits, nil
}

// ValidateAddress checks that a string is a well-formed Sui address
func ValidateAddress(address string) error {
	_, err := NormalizeAddress(address)
	return err
}

// NormalizeTypeTag canonicalizes the address component of a Move type tag,
// recursing into generic type parameters. Primitive tags (u64, bool, ...)
// pass through unchanged.
func NormalizeTypeTag(tag string) (string, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "", fmt.Errorf("empty type tag")
	}

	base := tag
	var params string
	if i := strings.Index(tag, "<"); i >= 0 {
		if !strings.HasSuffix(tag, ">") {
			return "", fmt.Errorf("unbalanced generic parameters in type tag %q", tag)
		}
		base = tag[:i]
		inner, err := normalizeTypeParams(tag[i+1 : len(tag)-1])
		if err != nil {
			return "", err
		}
		params = "<" + inner + ">"
	}

	// Primitive types and vector have no address component.
	if !strings.Contains(base, "::") {
		return base + params, nil
	}

	parts := strings.SplitN(base, "::", 3)
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return "", fmt.Errorf("malformed type tag %q, want address::module::name", tag)
	}

	addr, err := NormalizeAddress(parts[0])
	if err != nil {
		return "", fmt.Errorf("invalid address in type tag %q: %w", tag, err)
	}
	return addr + "::" + parts[1] + "::" + parts[2] + params, nil
}

// normalizeTypeParams normalizes a comma-separated generic parameter list,
// splitting only at the top nesting level
func normalizeTypeParams(inner string) (string, error) {
	var out []string
	depth := 0
	start := 0
	for i, r := range inner {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, inner[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return "", fmt.Errorf("unbalanced generic parameters in %q", inner)
	}
	out = append(out, inner[start:])

	for i, p := range out {
		normalized, err := NormalizeTypeTag(p)
		if err != nil {
			return "", err
		}
		out[i] = normalized
	}
	return strings.Join(out, ", "), nil
}

// IsGasCoin reports whether a type tag denotes the native gas coin,
// tolerating zero-padded address forms
func IsGasCoin(tag string) bool {
	normalized, err := NormalizeTypeTag(tag)
	if err != nil {
		return false
	}
	return normalized == GasCoinType
}

// AddressFromPublicKey derives the Sui address for a public key:
// blake2b-256 over the signature scheme flag followed by the key bytes
func AddressFromPublicKey(scheme byte, publicKey []byte) string {
	digest := blake2b.Sum256(append([]byte{scheme}, publicKey...))
	return "0x" + hex.EncodeToString(digest[:])
}

// ValidateDigest checks that a string is a well-formed base58 object or
// transaction digest
func ValidateDigest(digest string) error {
	if digest == "" {
		return fmt.Errorf("empty digest")
	}
	raw, err := base58.Decode(digest)
	if err != nil {
		return fmt.Errorf("invalid digest %q: %w", digest, err)
	}
	if len(raw) != 32 {
		return fmt.Errorf("invalid digest %q: got %d bytes, expected 32", digest, len(raw))
	}
	return nil
}

// MistToSui converts base units to a decimal SUI amount
func MistToSui(mist uint64) decimal.Decimal {
	return decimal.NewFromUint64(mist).Shift(-9)
}

// SuiToMist converts a decimal SUI amount string to base units
func SuiToMist(amount string) (uint64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount %q is negative", amount)
	}

	mist := d.Shift(9)
	if !mist.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than 9 decimal places", amount)
	}
	if !mist.BigInt().IsUint64() {
		return 0, fmt.Errorf("amount %q does not fit in 64 bits", amount)
	}
	return mist.BigInt().Uint64(), nil
}

// FormatBalance renders a MIST amount as a SUI string
func FormatBalance(mist uint64) string {
	return MistToSui(mist).StringFixed(9) + " SUI"
}
