// Package integerwidth provides the immutable integer digit settings used
// when formatting numbers.
//
//	w, _ := integerwidth.ZeroFillTo(3) // 7 -> "007"
//	w, _ = w.TruncateAt(4)             // 12345 -> "2345"
package integerwidth
