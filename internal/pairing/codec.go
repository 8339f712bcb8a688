package pairing

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/text/unicode/norm"
)

// Pairing codes travel as base64 in a URL-safe, unpadded alphabet: standard
// base64 with '+' -> '-', '/' -> '_' and trailing '=' stripped. A code may
// arrive bare or embedded in a pairing URL as a "code" parameter after a
// "#&" fragment or "?" query delimiter.

const codeParam = "code="

const base64BlockSize = 4

// extractCode pulls the code parameter out of a pairing URL. When the input
// does not look like a URL carrying a code parameter, the whole input is
// treated as the code.
func extractCode(raw string) string {
	for _, sep := range []byte{'#', '?'} {
		i := strings.IndexByte(raw, sep)
		if i < 0 {
			continue
		}

		tail := raw[i+1:]
		if sep == '?' {
			// The query portion ends at the fragment delimiter.
			if j := strings.IndexByte(tail, '#'); j >= 0 {
				tail = tail[:j]
			}
		}

		for _, part := range strings.Split(tail, "&") {
			if v, ok := strings.CutPrefix(part, codeParam); ok && v != "" {
				return v
			}
		}
	}

	return raw
}

// decodeTransportBase64 reverses the transport alphabet: '-' -> '+',
// '_' -> '/', re-padded to a multiple of four characters.
func decodeTransportBase64(code string) ([]byte, error) {
	std := strings.NewReplacer("-", "+", "_", "/").Replace(code)
	if rem := len(std) % base64BlockSize; rem != 0 {
		std += strings.Repeat("=", base64BlockSize-rem)
	}

	return base64.StdEncoding.DecodeString(std)
}

// encodeTransportBase64 applies the transport alphabet to raw bytes.
func encodeTransportBase64(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeBase64Code parses a raw pairing code, or a pairing URL containing
// one, into its decoded form. Every structural failure (bad base64, bad
// JSON, no known top-level key, empty fields) maps to
// ErrUnableToRecognizeCode.
func DecodeBase64Code(raw string) (*PairingCode, error) {
	return decodeBareCode(extractCode(strings.TrimSpace(raw)))
}

// decodeBareCode parses a code with no URL extraction step. Used when the
// caller cannot accept URL barcodes.
func decodeBareCode(token string) (*PairingCode, error) {
	data, err := decodeTransportBase64(strings.TrimSpace(token))
	if err != nil {
		return nil, fmt.Errorf("decoding pairing code base64: %w", ErrUnableToRecognizeCode)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("pairing code is not valid JSON: %w", ErrUnableToRecognizeCode)
	}

	// The code kind is determined by which top-level key is present.
	if res := gjson.GetBytes(data, "exchange_key"); res.Exists() {
		var key ExchangeKey
		if err := json.Unmarshal([]byte(res.Raw), &key); err != nil || key.KeyID == "" || len(key.PublicKey) == 0 {
			return nil, fmt.Errorf("malformed exchange_key payload: %w", ErrUnableToRecognizeCode)
		}

		return &PairingCode{Exchange: &key}, nil
	}

	if res := gjson.GetBytes(data, "connect"); res.Exists() {
		var code ConnectCode
		if err := json.Unmarshal([]byte(res.Raw), &code); err != nil || code.DeviceID == "" || len(code.SecretKey) == 0 {
			return nil, fmt.Errorf("malformed connect payload: %w", ErrUnableToRecognizeCode)
		}

		return &PairingCode{Connect: &code}, nil
	}

	if res := gjson.GetBytes(data, "recovery"); res.Exists() {
		var code RecoveryCode
		if err := json.Unmarshal([]byte(res.Raw), &code); err != nil || code.UserID == "" || len(code.PrimaryKey) == 0 {
			return nil, fmt.Errorf("malformed recovery payload: %w", ErrUnableToRecognizeCode)
		}

		return &PairingCode{Recovery: &code}, nil
	}

	return nil, fmt.Errorf("no recognised code kind: %w", ErrUnableToRecognizeCode)
}

// EncodeBase64Code serialises a pairing code to its transport representation.
func EncodeBase64Code(code *PairingCode) (string, error) {
	data, err := json.Marshal(code)
	if err != nil {
		return "", fmt.Errorf("encoding pairing code: %w", err)
	}

	return encodeTransportBase64(data), nil
}

// PairingInfo is the transport envelope handed to the UI for display.
// Constructed fresh per pairing attempt, immutable, never persisted.
type PairingInfo struct {
	Base64Code string
	DeviceName string
}

// NewPairingInfo builds a PairingInfo from an already-encoded code and a
// device name. The name is normalised to NFC so the same name renders to
// identical bytes regardless of how the platform composed it.
func NewPairingInfo(base64Code, deviceName string) PairingInfo {
	return PairingInfo{
		Base64Code: base64Code,
		DeviceName: norm.NFC.String(deviceName),
	}
}

// ToURL renders the pairing URL for QR or link display:
//
//	<base>#&code=<code>&deviceName=<name>
//
// The device name is percent-encoded twice. The outer layer is consumed by
// the peer's URL-fragment extraction, which performs exactly one decode
// pass; the inner layer survives it. Peers depend on this shape, so it is
// preserved exactly.
func (p PairingInfo) ToURL(base string) string {
	name := url.QueryEscape(url.QueryEscape(p.DeviceName))

	return base + "#&" + codeParam + p.Base64Code + "&deviceName=" + name
}

// PairingInfoFromURL reverses ToURL, restoring the exact original
// Base64Code and DeviceName.
func PairingInfoFromURL(rawURL string) (PairingInfo, error) {
	i := strings.IndexByte(rawURL, '#')
	if i < 0 {
		return PairingInfo{}, fmt.Errorf("pairing URL has no fragment")
	}

	var info PairingInfo

	for _, part := range strings.Split(rawURL[i+1:], "&") {
		switch {
		case strings.HasPrefix(part, codeParam):
			info.Base64Code = part[len(codeParam):]
		case strings.HasPrefix(part, "deviceName="):
			once, err := url.QueryUnescape(part[len("deviceName="):])
			if err != nil {
				return PairingInfo{}, fmt.Errorf("decoding device name: %w", err)
			}

			name, err := url.QueryUnescape(once)
			if err != nil {
				return PairingInfo{}, fmt.Errorf("decoding device name: %w", err)
			}

			info.DeviceName = name
		}
	}

	if info.Base64Code == "" {
		return PairingInfo{}, fmt.Errorf("pairing URL has no code parameter")
	}

	return info, nil
}
