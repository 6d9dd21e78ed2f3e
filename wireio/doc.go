// Package wireio implements the session-file, cost-file, and wires-file
// formats of spec.md §6, byte-for-byte compatible with the reference
// implementation's fscanf/fprintf loops (original_source/code/wireroute.cpp).
//
// Every format is a fixed, whitespace-delimited text layout; parsing and
// serialization use bufio.Scanner and fmt.Fprintf directly rather than a
// general-purpose encoding, matching the reference's own hand-rolled
// fscanf/fprintf approach — there is no marshaling concern here broad
// enough to justify a third-party codec.
package wireio
