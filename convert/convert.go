// Package convert holds primitive-to-text conversion helpers: booleans,
// signed and unsigned 32- and 64-bit integers, and a bounded formatted
// print into a caller-supplied buffer.
package convert

import (
	"fmt"
	"strconv"
)

// Bool returns "1" for true and "0" for false.
func Bool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// Int32 returns the decimal text of v.
func Int32(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// UInt32 returns the decimal text of v.
func UInt32(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

// Int64 returns the decimal text of v.
func Int64(v int64) string {
	return strconv.FormatInt(v, 10)
}

// UInt64 returns the decimal text of v.
func UInt64(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// AppendInt32 appends the decimal text of v to dst and returns the
// extended slice.
func AppendInt32(dst []byte, v int32) []byte {
	return strconv.AppendInt(dst, int64(v), 10)
}

// AppendUInt32 appends the decimal text of v to dst and returns the
// extended slice.
func AppendUInt32(dst []byte, v uint32) []byte {
	return strconv.AppendUint(dst, uint64(v), 10)
}

// AppendInt64 appends the decimal text of v to dst and returns the
// extended slice.
func AppendInt64(dst []byte, v int64) []byte {
	return strconv.AppendInt(dst, v, 10)
}

// AppendUInt64 appends the decimal text of v to dst and returns the
// extended slice.
func AppendUInt64(dst []byte, v uint64) []byte {
	return strconv.AppendUint(dst, v, 10)
}

// Sprintf formats according to format and copies at most len(dst)
// bytes of the result into dst, returning the number of bytes copied.
// Output that does not fit is truncated; dst is never grown.
func Sprintf(dst []byte, format string, args ...any) int {
	if len(dst) == 0 {
		return 0
	}
	return copy(dst, fmt.Sprintf(format, args...))
}
