// Package papertrade implements a paper-trading simulator: a reference
// universe of instruments, a random-walk pricing feed, a trading book with
// average-cost accounting, portfolio valuation, fabricated trade signals,
// and local user accounts.
//
// All state lives in a per-user state directory of human-readable JSON and
// JSONL files. There is no real market data anywhere in this module; prices
// are a bounded one-step random walk and signals are a weighted-random
// scorer. Both exist to make the simulation feel alive, not to predict
// anything.
package papertrade
