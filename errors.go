package settlement

import "github.com/zeebo/errs"

var (
	// Error is the class of encoding errors.
	Error = errs.Class("settlement")

	// TruncatedMessage is returned when the details are shorter than their
	// flags byte declares.
	TruncatedMessage = errs.Class("truncated message")

	// InvalidWhitelistStructure is returned when a resolver index is outside
	// of the address table or the address table does not fit in the
	// interaction.
	InvalidWhitelistStructure = errs.Class("invalid whitelist structure")
)
