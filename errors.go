package papertrade

import "errors"

// Trade and account failures are ordinary validation outcomes: the engine
// wraps these sentinels with context and callers match them with errors.Is
// to produce a user-facing message. Nothing here is fatal.
var (
	ErrUnknownSymbol      = errors.New("unknown symbol")
	ErrInvalidQuantity    = errors.New("quantity must be a positive whole number")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrNoPosition         = errors.New("no position")
	ErrInsufficientShares = errors.New("insufficient shares")

	ErrInvalidAccount = errors.New("invalid account field")
	ErrUsernameTaken  = errors.New("username already exists")
	ErrUnknownUser    = errors.New("username not found")
	ErrWrongPassword  = errors.New("incorrect password")
)
