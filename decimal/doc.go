// Package decimal presents rate bumps and fees as fixed point base 10
// numbers.
//
// Rate bumps are integers in units of 1/10_000_000 (so 10_000_000 is a 100%
// bump). The price a taker receives is scaled by the multiplier:
//
//  multiplier = 1 + bump / 10^7
//
// For example:
//
//  | bump       | percent   | multiplier |
//  |------------|-----------|------------|
//  | 0          | 0         | 1          |
//  | 1          | 0.00001   | 1.0000001  |
//  | 50_000     | 0.5       | 1.005      |
//  | 1_000_000  | 10        | 1.1        |
//  | 16_777_215 | 167.77215 | 2.6777215  |
//  |------------|-----------|------------|
//
// The largest bump a 3 byte field can hold is 16_777_215 (about 167.77%).
//
// Fees are unscaled integers. Fee applies a base 10 exponent to present them
// in whole units:
//
//  fee = amount * 10 ^ -decimals
package decimal
