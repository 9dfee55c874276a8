// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// id_fn.go: vertex naming schemes for generated road networks.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn names the idx-th generated location. Implementations must be pure:
// the same idx always yields the same name.
type IDFn func(idx int) string

// DefaultIDFn names locations by their decimal index ("0", "1", ...).
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// LetterIDFn names locations like map grid squares: 0→"A", 25→"Z", 26→"AA".
// Panics on a negative idx.
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: LetterIDFn(%d)", idx))
	}

	buf := make([]byte, 0, 4)
	for ; idx >= 0; idx = idx/26 - 1 {
		buf = append([]byte{byte('A' + idx%26)}, buf...)
	}

	return string(buf)
}

// PrefixIDFn names locations prefix+index, e.g. PrefixIDFn("stop")(3) = "stop3".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("builder: PrefixIDFn(%q)(%d)", prefix, idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// WithPrefixIDs is shorthand for WithIDScheme(PrefixIDFn(prefix)).
func WithPrefixIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithLetterIDs is shorthand for WithIDScheme(LetterIDFn).
func WithLetterIDs() BuilderOption {
	return WithIDScheme(LetterIDFn)
}
