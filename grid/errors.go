// SPDX-License-Identifier: MIT
package grid

import "errors"

var (
	// ErrBadShape indicates text input whose row count or row length differs
	// from Height and Width.
	ErrBadShape = errors.New("grid: text must have Height rows of Width cells")
	// ErrUnknownCell indicates a rune outside the text format.
	ErrUnknownCell = errors.New("grid: unknown cell rune")
)
