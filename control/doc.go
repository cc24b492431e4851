// Package control provides the flags byte that leads settlement details.
//
// The flags byte declares the shape of everything that follows it: whether
// the details end in a taking fee block, how many whitelisted resolvers are
// listed, and how many auction points define the rate bump schedule. All
// other offsets in the details are derived from these three values, so the
// flags byte is the only thing that may be read before the details length
// has been validated.
//
// Flags Byte
//
//  | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 || Field     |                                    |
//  |---|---------------|-----------||-----------|------------------------------------|
//  | f |               |           || Fee       | taking fee block present (24 bytes) |
//  |   | r . r . r . r |           || Resolvers | 2^4 = 16 values; 0-15 entries       |
//  |   |               | p . p . p || Points    | 2^3 = 8 values; 0-7 entries         |
//  |---|---------------|-----------||-----------|------------------------------------|
//
// Sizes
//
// Each resolver entry is 3 bytes (1 byte address table index, 2 byte time
// delta) and each auction point is 5 bytes (3 byte rate bump, 2 byte time
// delta). The header is 19 bytes including the flags byte. The total length
// of the details is therefore:
//
//  19 + 3*resolvers + 5*points + 24*fee
//
// The largest possible details are 19 + 45 + 35 + 24 = 123 bytes.
package control
