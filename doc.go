// Package settlement decodes the compact settlement details carried inside a
// settlement transaction.
//
// The details are authored off-chain by the order maker and interpreted at
// settlement time. They answer three questions: which resolver may execute
// the settlement right now, what rate bump the Dutch auction applies at the
// current moment, and what hash the maker actually signed.
//
// Details
//
// All integers are unsigned big-endian. Fields are packed without padding.
//
//  | offset        | size | field           |                                             |
//  |---------------|------|-----------------|---------------------------------------------|
//  | 0             | 1    | flags           | see package control                         |
//  | 1             | 4    | startTime       | seconds                                     |
//  | 5             | 2    | auctionDelay    | auction starts at startTime + auctionDelay  |
//  | 7             | 3    | auctionDuration | auction finishes duration after its start   |
//  | 10            | 3    | initialRateBump | rate bump until the auction starts          |
//  | 13            | 4    | resolverFee     | fixed fee owed per fill                     |
//  | 17            | 2    | publicTimeDelay | anyone may fill after startTime + delay     |
//  | 19            | 3*N  | resolvers       | {index: 1, delta: 2}                        |
//  | 19+3N         | 5*M  | points          | {bump: 3, delta: 2}                         |
//  | len-24        | 24   | taking fee      | {fee: 4, recipient: 20}; only if flagged    |
//  |---------------|------|-----------------|---------------------------------------------|
//
// Time deltas are cumulative: a resolver becomes active at startTime plus
// the sum of its own delta and every delta before it, and auction points are
// placed the same way relative to the auction start.
//
// Whitelist
//
// Resolver entries do not carry identifiers. Their index refers into an
// address table at the end of the interaction:
//
//  | ... | id[0] (10) | id[1] (10) | ... | id[K-1] (10) | K (1) |
//
// Each id is the low 80 bits of a resolver address. The maker signs the
// details with every index replaced by the id it refers to (see Hash).
//
// Errors
//
// Every operation validates the details length before reading past the
// header and fails with TruncatedMessage otherwise. Resolving an index that
// is not in the address table, or an address table that claims more entries
// than the interaction holds, fails with InvalidWhitelistStructure.
package settlement
