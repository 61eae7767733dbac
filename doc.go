/*
Package hexint provides Int, an arbitrary-precision integer stored as a vector
of base-16 digits, implementing a useful subset of the big.Int API plus the
digit-level operations of a hexadecimal bignum.

Int is a value type; all operations return new values and never modify their
operands, so an Int can be shared between goroutines freely.

Simple example:

	a := hexint.MustFromString("36f028580bb02cc8")
	b := hexint.MustFromString("70983d692f648185")
	fmt.Println(a.Add(b))
	// Output: a78865c13b14ae4d

Ints are written and read as hexadecimal text, most significant digit first,
without a "0x" prefix. Text is two's-complement at the width of the string: a
string longer than one character whose first digit is 8-f is negative.

	hexint.MustFromString("7f")   //  127
	hexint.MustFromString("ff")   //   -1
	hexint.MustFromString("cc31") // -13263
	hexint.MustFromString("f")    //   15 (single characters are never negative)

Internally a negative value keeps the fifteen's complement of its text digits
with the sign held in a separate flag, so the stored digits of a negative Int
are its magnitude minus one.

Ints can be created from a variety of sources:

	FromString(s string) (Int, error)
	FromDigits(digits []byte, neg bool) (Int, error)
	FromInt64(v int64) Int
	FromUint64(v uint64) Int
	FromBigInt(v *big.Int) Int
	FromFloat64(f float64) (out Int, inRange bool)

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package hexint
