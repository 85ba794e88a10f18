package papertrade

import (
	"context"
	"errors"
	"testing"
)

func testDesk(t *testing.T) *Desk {
	t.Helper()
	store, err := Open(t.TempDir(), USD(10000))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return NewDesk(DefaultUniverse(), store, NewMemoryQuotes())
}

func TestDesk_TradesAtQuotePrice(t *testing.T) {
	ctx := context.Background()
	desk := testDesk(t)

	if err := desk.Quotes.Publish(ctx, map[string]Quote{"AAPL": {Price: USD(180)}}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	rec, err := desk.Buy(ctx, "AAPL", 10)
	if err != nil {
		t.Fatalf("Buy() error = %v", err)
	}
	if !rec.Price.Equal(USD(180)) {
		t.Errorf("traded at %s, want the quote 180.00", rec.Price)
	}
	if rec.Name != "Apple Inc." {
		t.Errorf("record name = %q", rec.Name)
	}

	book, err := desk.Store.Book()
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if !book.Cash.Equal(USD(8200)) {
		t.Errorf("cash = %s, want 8200.00", book.Cash)
	}

	trades, err := desk.Store.Trades()
	if err != nil {
		t.Fatalf("Trades() error = %v", err)
	}
	if len(trades) != 1 || trades[0].ID != rec.ID {
		t.Errorf("trade log = %+v", trades)
	}
}

// Without a published quote the desk trades at the base price.
func TestDesk_TradesAtBasePriceWithoutQuote(t *testing.T) {
	ctx := context.Background()
	desk := testDesk(t)

	rec, err := desk.Buy(ctx, "F", 100)
	if err != nil {
		t.Fatalf("Buy() error = %v", err)
	}
	if !rec.Price.Equal(USD(12.80)) {
		t.Errorf("traded at %s, want base 12.80", rec.Price)
	}
}

func TestDesk_RejectsUnknownSymbol(t *testing.T) {
	ctx := context.Background()
	desk := testDesk(t)

	if _, err := desk.Buy(ctx, "NOPE", 1); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("Buy() error = %v, want ErrUnknownSymbol", err)
	}
	if _, err := desk.Signal(ctx, "NOPE", nil); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("Signal() error = %v, want ErrUnknownSymbol", err)
	}
	if err := desk.Watch("NOPE"); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("Watch() error = %v, want ErrUnknownSymbol", err)
	}
}

// A failed trade must leave no trace in the log.
func TestDesk_FailedTradeNotLogged(t *testing.T) {
	ctx := context.Background()
	desk := testDesk(t)

	if _, err := desk.Sell(ctx, "AAPL", 5); !errors.Is(err, ErrNoPosition) {
		t.Fatalf("Sell() error = %v, want ErrNoPosition", err)
	}
	trades, err := desk.Store.Trades()
	if err != nil {
		t.Fatalf("Trades() error = %v", err)
	}
	if len(trades) != 0 {
		t.Errorf("trade log = %+v, want empty", trades)
	}
}

func TestDesk_SignupLoginFlow(t *testing.T) {
	desk := testDesk(t)

	account, err := desk.Signup("bob_99", "secret1", "bob@example.com")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if account.Username != "bob_99" {
		t.Errorf("Signup() username = %q", account.Username)
	}

	// signup logs in
	current, ok, err := desk.CurrentUser()
	if err != nil || !ok {
		t.Fatalf("CurrentUser() = %v, %v", ok, err)
	}
	if current.Username != "bob_99" {
		t.Errorf("current user = %q", current.Username)
	}

	if _, err := desk.Signup("bob_99", "other99", ""); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("duplicate signup error = %v, want ErrUsernameTaken", err)
	}

	if err := desk.Logout(); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, ok, _ := desk.CurrentUser(); ok {
		t.Error("still logged in after Logout()")
	}

	if _, err := desk.Login("bob_99", "wrong99"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("Login() error = %v, want ErrWrongPassword", err)
	}
	if _, err := desk.Login("bob_99", "secret1"); err != nil {
		t.Errorf("Login() error = %v", err)
	}
}

// Reset discards positions, watchlist and history but keeps the chosen
// theme and the registered accounts.
func TestDesk_ResetKeepsThemeAndAccounts(t *testing.T) {
	ctx := context.Background()
	desk := testDesk(t)

	if _, err := desk.Buy(ctx, "AAPL", 10); err != nil {
		t.Fatalf("Buy() error = %v", err)
	}
	if err := desk.Watch("TSLA"); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if err := desk.SetTheme(ThemeNeon); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	if _, err := desk.Signup("bob_99", "secret1", ""); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	if err := desk.Reset(USD(10000)); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	book, err := desk.Store.Book()
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if !book.Cash.Equal(USD(10000)) {
		t.Errorf("cash = %s, want 10000.00", book.Cash)
	}
	if len(book.Holdings) != 0 || len(book.Watchlist) != 0 {
		t.Errorf("holdings = %v, watchlist = %v, want both empty", book.Holdings, book.Watchlist)
	}
	if book.Theme != ThemeNeon {
		t.Errorf("theme = %s, want neon", book.Theme)
	}
	trades, err := desk.Store.Trades()
	if err != nil {
		t.Fatalf("Trades() error = %v", err)
	}
	if len(trades) != 0 {
		t.Errorf("trade log = %+v, want empty", trades)
	}
	if _, err := desk.Login("bob_99", "secret1"); err != nil {
		t.Errorf("Login() after reset error = %v", err)
	}
}

func TestDesk_WatchPersists(t *testing.T) {
	desk := testDesk(t)

	if err := desk.Watch("TSLA"); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if err := desk.Watch("KO"); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if err := desk.Unwatch("TSLA"); err != nil {
		t.Fatalf("Unwatch() error = %v", err)
	}

	book, err := desk.Store.Book()
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if len(book.Watchlist) != 1 || book.Watchlist[0] != "KO" {
		t.Errorf("watchlist = %v, want [KO]", book.Watchlist)
	}
}
