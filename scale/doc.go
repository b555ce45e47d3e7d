// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scale defines the estimation scales rooms vote on.

A Scale is an ordered set of estimate tokens plus display metadata:

	registry := scale.BuiltIn()
	s, ok := registry.Lookup(scale.Fibonacci)
	s.Contains("5") // true

# Built-in Scales

	fibonacci: 0 1 2 3 5 8 13 21 ?   (default)
	tshirt:    XS S M L XL XXL ?

The "?" token is a valid vote on both scales — it means "no idea", which
is itself useful information once revealed.

The registry is fixed data. It is built once in main and handed to the
store; nothing registers scales at runtime.
*/
package scale
