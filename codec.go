package hexint

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput   = errors.New("hexint: empty input")
	ErrInvalidDigit = errors.New("hexint: invalid digit")
)

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

func digitValue(r rune) (d byte, ok bool) {
	switch {
	case '0' <= r && r <= '9':
		return byte(r - '0'), true
	case 'a' <= r && r <= 'f':
		return byte(r-'a') + 10, true
	case 'A' <= r && r <= 'F':
		return byte(r-'A') + 10, true
	}
	return 0, false
}

// FromString parses a hexadecimal string, most significant digit first, with
// no prefix. Upper and lower case digits are accepted.
//
// The text is read as a two's-complement number as wide as the string: if s
// is longer than one character and starts with a digit from 8 to f, the
// result is negative. "7f" is 127, "ff" is -1 and "f" is 15.
//
// An empty string fails with ErrEmptyInput. Any character that is not a hex
// digit fails with an error wrapping ErrInvalidDigit.
func FromString(s string) (out Int, err error) {
	if len(s) == 0 {
		return out, ErrEmptyInput
	}

	var neg bool
	digits := make(nat, len(s))
	for i, r := range s {
		d, ok := digitValue(r)
		if !ok {
			return out, fmt.Errorf("%w %q at offset %d", ErrInvalidDigit, r, i)
		}
		if i == 0 && len(s) > 1 && d >= base/2 {
			neg = true
		}
		if neg {
			d = digitMask - d
		}
		digits[len(s)-1-i] = d
	}

	return Int{digits: digits.norm(), neg: neg}, nil
}

// MustFromString is like FromString but panics if s can not be parsed.
func MustFromString(s string) Int {
	out, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return out
}

// String returns x as lower-case hexadecimal text that FromString reads back
// as x.
//
// A non-negative value is written digit for digit. A negative value is
// written as the complement of each stored digit; if that text would not
// read back as negative (it is a single character or starts with a digit
// below 8) a leading "f" is added, as sign extension would.
func (x Int) String() string {
	return string(x.appendText(nil, lowerDigits))
}

func (x Int) appendText(buf []byte, charset string) []byte {
	n := len(x.digits)
	if !x.neg {
		if n == 0 {
			return append(buf, charset[0])
		}
		for i := n - 1; i >= 0; i-- {
			buf = append(buf, charset[x.digits[i]])
		}
		return buf
	}

	if n == 0 {
		// -1
		return append(buf, charset[digitMask], charset[digitMask])
	}
	if n == 1 || x.digits[n-1] >= base/2 {
		buf = append(buf, charset[digitMask])
	}
	for i := n - 1; i >= 0; i-- {
		buf = append(buf, charset[digitMask-x.digits[i]])
	}
	return buf
}

// Format implements fmt.Formatter. The verbs 's', 'v' and 'x' write the same
// text as String, 'X' writes it in upper case. Any other verb is handed to
// big.Int, so 'd' prints the signed decimal value.
func (x Int) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v', 'x':
		x.writePadded(s, lowerDigits)
	case 'X':
		x.writePadded(s, upperDigits)
	default:
		x.AsBigInt().Format(s, c)
	}
}

func (x Int) writePadded(s fmt.State, charset string) {
	text := x.appendText(nil, charset)
	if w, ok := s.Width(); ok && w > len(text) {
		pad := byte(' ')
		if s.Flag('0') && !s.Flag('-') {
			// Zero padding has to repeat the sign digit to keep the value.
			pad = charset[0]
			if x.neg {
				pad = charset[digitMask]
			}
		}
		padding := make([]byte, w-len(text))
		for i := range padding {
			padding[i] = pad
		}
		if s.Flag('-') {
			text = append(text, padding...)
		} else {
			text = append(padding, text...)
		}
	}
	_, _ = s.Write(text)
}

func (x Int) MarshalText() ([]byte, error) {
	return x.appendText(nil, lowerDigits), nil
}

func (x *Int) UnmarshalText(bts []byte) (err error) {
	v, err := FromString(string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Int) MarshalJSON() ([]byte, error) {
	buf := append([]byte{'"'}, x.appendText(nil, lowerDigits)...)
	return append(buf, '"'), nil
}

func (x *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) == 0 {
		return fmt.Errorf("hexint: invalid JSON: %w", ErrEmptyInput)
	}
	if bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("hexint: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := FromString(string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
