package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// numberPrec holds any uint256 exactly.
const numberPrec = 512

// BigInt accepts a JSON number or a decimal/0x-hex string. Numbers written
// with a fraction or an exponent are accepted when their value is whole.
type BigInt struct {
	big.Int
}

func (b *BigInt) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		return fmt.Errorf("null is not an integer")
	}

	s := string(raw)
	quoted := len(raw) > 0 && raw[0] == '"'
	if quoted {
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
	}

	if _, ok := b.SetString(s, 0); ok {
		return nil
	}

	// JSON numbers may carry a fraction or an exponent and still be whole,
	// e.g. 1.0 or 1e2.
	if !quoted {
		f, _, err := big.ParseFloat(s, 10, numberPrec, big.ToNearestEven)
		if err == nil && f.IsInt() {
			f.Int(&b.Int)

			return nil
		}
	}

	return fmt.Errorf("invalid integer %q", s)
}

func (b *BigInt) MarshalJSON() ([]byte, error) {
	return []byte(b.String()), nil
}
