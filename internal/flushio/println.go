package flushio

import (
	"fmt"
	"io"
	"strconv"
)

// Println writes each of args in sequence, with no separators, followed by
// a single newline.
//
// Floating point values print with 6 significant digits, trailing zeros
// dropped, the way a default formatted output stream shows them; so 2.0
// prints as "2" and √2 as "1.41421". Everything else prints as by fmt.Fprint.
func Println(w io.Writer, args ...interface{}) error {
	var buf []byte
	for _, arg := range args {
		switch v := arg.(type) {
		case float64:
			buf = appendFloat(buf, v, 64)
		case float32:
			buf = appendFloat(buf, float64(v), 32)
		default:
			buf = fmt.Append(buf, v)
		}
	}
	buf = append(buf, '\n')
	_, err := w.Write(buf)
	return err
}

func appendFloat(buf []byte, v float64, bitSize int) []byte {
	return strconv.AppendFloat(buf, v, 'g', 6, bitSize)
}
