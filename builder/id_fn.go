// SPDX-License-Identifier: MIT

// Package builder provides helper functions and types for configuring router
// ID schemes in topology constructors.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a router identifier from its zero‐based index.
// It must be a pure, deterministic function: given the same idx, it always returns the same string.
type IDFn func(idx int) string

// RouterIDFn returns "R" followed by the one-based index, e.g. 0→"R1", 4→"R5".
// This is the default scheme.
// Panics if idx < 0.
func RouterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("RouterIDFn: idx must be ≥ 0, got %d", idx))
	}

	return "R" + strconv.Itoa(idx+1)
}

// DecimalIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DecimalIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A", 25→"Z".
// Panics if idx < 0 or idx > 25.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// PrefixIDFn returns prefix + one-based index, e.g. PrefixIDFn("core")(0) → "core1".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx+1)
	}
}

// WithPrefix sets the ID scheme to PrefixIDFn(prefix).
func WithPrefix(prefix string) Option {
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() Option {
	return WithIDScheme(SymbolIDFn)
}

// Named ID schemes accepted by IDSchemeByName.
const (
	IDSchemeRouter  = "router"
	IDSchemeDecimal = "decimal"
	IDSchemeSymbol  = "symbol"
	IDSchemePrefix  = "prefix"
)

// MaxSymbolIDs is the largest router count SymbolIDFn can label.
const MaxSymbolIDs = 26

// IDSchemeByName resolves a named scheme for n routers. The empty name selects
// RouterIDFn; prefix is only read by IDSchemePrefix and must be non-empty there.
func IDSchemeByName(name, prefix string, n int) (IDFn, error) {
	switch name {
	case "", IDSchemeRouter:
		return RouterIDFn, nil
	case IDSchemeDecimal:
		return DecimalIDFn, nil
	case IDSchemeSymbol:
		if n > MaxSymbolIDs {
			return nil, fmt.Errorf("%q labels at most %d routers, got %d: %w", name, MaxSymbolIDs, n, ErrUnknownIDScheme)
		}
		return SymbolIDFn, nil
	case IDSchemePrefix:
		if prefix == "" {
			return nil, fmt.Errorf("%q needs a prefix: %w", name, ErrUnknownIDScheme)
		}
		return PrefixIDFn(prefix), nil
	}

	return nil, fmt.Errorf("%q: %w", name, ErrUnknownIDScheme)
}
