package papertrade

import (
	"context"
	"fmt"
	"math/rand"
)

// Desk wires the reference universe, the persistent store and the quote
// table into one trading session. It is the single entry point the CLI
// and the HTTP service operate through; nothing in the module reaches for
// ambient global state.
type Desk struct {
	Universe *Universe
	Store    *Store
	Quotes   QuoteStore
}

// NewDesk creates a trading desk.
func NewDesk(universe *Universe, store *Store, quotes QuoteStore) *Desk {
	return &Desk{Universe: universe, Store: store, Quotes: quotes}
}

// Price returns the current trading price for symbol: the live quote when
// the feed has published one, the instrument's base price otherwise.
func (d *Desk) Price(ctx context.Context, symbol string) (Money, error) {
	inst, ok := d.Universe.Get(symbol)
	if !ok {
		return Money{}, fmt.Errorf("price %q: %w", symbol, ErrUnknownSymbol)
	}
	if q, ok, err := d.Quotes.Quote(ctx, symbol); err != nil {
		return Money{}, fmt.Errorf("price %q: %w", symbol, err)
	} else if ok {
		return q.Price, nil
	}
	return inst.BasePrice, nil
}

// Buy executes a market buy at the current price and logs the trade.
func (d *Desk) Buy(ctx context.Context, symbol string, quantity int64) (TradeRecord, error) {
	return d.trade(ctx, SideBuy, symbol, quantity)
}

// Sell executes a market sell at the current price and logs the trade.
func (d *Desk) Sell(ctx context.Context, symbol string, quantity int64) (TradeRecord, error) {
	return d.trade(ctx, SideSell, symbol, quantity)
}

func (d *Desk) trade(ctx context.Context, side Side, symbol string, quantity int64) (TradeRecord, error) {
	inst, ok := d.Universe.Get(symbol)
	if !ok {
		return TradeRecord{}, fmt.Errorf("%s %q: %w", side, symbol, ErrUnknownSymbol)
	}
	price, err := d.Price(ctx, symbol)
	if err != nil {
		return TradeRecord{}, err
	}

	var rec TradeRecord
	err = d.Store.Update(func(b *Book) error {
		var err error
		switch side {
		case SideBuy:
			rec, err = b.Buy(inst, Q(quantity), price)
		case SideSell:
			rec, err = b.Sell(inst, Q(quantity), price)
		}
		return err
	})
	if err != nil {
		return TradeRecord{}, err
	}
	// The log append sits outside the book's critical section; the store
	// offers no cross-file transaction.
	if err := d.Store.AppendTrade(rec); err != nil {
		return rec, fmt.Errorf("trade executed but not logged: %w", err)
	}
	return rec, nil
}

// Valuation marks the current book to the current quote table.
func (d *Desk) Valuation(ctx context.Context) (Valuation, error) {
	book, err := d.Store.Book()
	if err != nil {
		return Valuation{}, err
	}
	quotes, err := d.Quotes.Snapshot(ctx)
	if err != nil {
		return Valuation{}, fmt.Errorf("valuation: %w", err)
	}
	return Value(book, d.Universe, quotes), nil
}

// Signal scores one instrument against its current quote.
func (d *Desk) Signal(ctx context.Context, symbol string, rng *rand.Rand) (Signal, error) {
	inst, ok := d.Universe.Get(symbol)
	if !ok {
		return Signal{}, fmt.Errorf("signal %q: %w", symbol, ErrUnknownSymbol)
	}
	q, ok, err := d.Quotes.Quote(ctx, symbol)
	if err != nil {
		return Signal{}, fmt.Errorf("signal %q: %w", symbol, err)
	}
	if !ok {
		q = Quote{Price: inst.BasePrice}
	}
	return ScoreSignal(inst, q, rng), nil
}

// Watch adds a symbol to the watchlist.
func (d *Desk) Watch(symbol string) error {
	if !d.Universe.Has(symbol) {
		return fmt.Errorf("watch %q: %w", symbol, ErrUnknownSymbol)
	}
	return d.Store.Update(func(b *Book) error {
		b.Watch(symbol)
		return nil
	})
}

// Unwatch removes a symbol from the watchlist.
func (d *Desk) Unwatch(symbol string) error {
	return d.Store.Update(func(b *Book) error {
		b.Unwatch(symbol)
		return nil
	})
}

// SetTheme persists the display theme.
func (d *Desk) SetTheme(t Theme) error {
	return d.Store.Update(func(b *Book) error {
		b.Theme = t
		return nil
	})
}

// Reset discards the holdings, the watchlist and the trade history and
// restores the starting cash. The display theme and the accounts survive.
func (d *Desk) Reset(startingCash Money) error {
	err := d.Store.Update(func(b *Book) error {
		fresh := NewBook(startingCash)
		fresh.Theme = b.Theme
		*b = *fresh
		return nil
	})
	if err != nil {
		return err
	}
	return d.Store.ClearTrades()
}

// Signup validates the fields, creates the account and makes it the
// active session. The username check is case-sensitive.
func (d *Desk) Signup(username, password, email string) (Account, error) {
	accounts, err := d.Store.Accounts()
	if err != nil {
		return Account{}, err
	}
	if _, taken := FindAccount(accounts, username); taken {
		return Account{}, fmt.Errorf("signup %q: %w", username, ErrUsernameTaken)
	}
	account, err := NewAccount(username, password, email)
	if err != nil {
		return Account{}, err
	}
	if err := d.Store.AppendAccount(account); err != nil {
		return Account{}, err
	}
	return account, d.Store.SetSession(account.Username)
}

// Login authenticates and makes the account the active session.
func (d *Desk) Login(username, password string) (Account, error) {
	accounts, err := d.Store.Accounts()
	if err != nil {
		return Account{}, err
	}
	account, err := Authenticate(accounts, username, password)
	if err != nil {
		return Account{}, err
	}
	return account, d.Store.SetSession(account.Username)
}

// Logout clears the active session.
func (d *Desk) Logout() error {
	return d.Store.SetSession("")
}

// CurrentUser returns the active account, false when logged out.
func (d *Desk) CurrentUser() (Account, bool, error) {
	username, err := d.Store.Session()
	if err != nil || username == "" {
		return Account{}, false, err
	}
	accounts, err := d.Store.Accounts()
	if err != nil {
		return Account{}, false, err
	}
	account, ok := FindAccount(accounts, username)
	return account, ok, nil
}
