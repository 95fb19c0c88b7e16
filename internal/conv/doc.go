// Package conv collects tiny helper functions that are not part of the public API
// but aid internal conversions.
//
// The remote API encodes monetary amounts as decimal strings, so `AsFloat` accepts
// strings as well as plain JSON numbers.
package conv
