package papertrade

import (
	"testing"
	"time"
)

func TestOpen_InitializesDefaults(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, USD(10000))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	b, err := s.Book()
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if !b.Cash.Equal(USD(10000)) {
		t.Errorf("fresh cash = %s, want 10000.00", b.Cash)
	}
	if len(b.Holdings) != 0 || len(b.Watchlist) != 0 {
		t.Errorf("fresh book not empty: %+v", b)
	}
	if b.Theme != ThemeLight {
		t.Errorf("fresh theme = %s, want light", b.Theme)
	}

	trades, err := s.Trades()
	if err != nil {
		t.Fatalf("Trades() error = %v", err)
	}
	if len(trades) != 0 {
		t.Errorf("fresh trade log has %d entries", len(trades))
	}
	username, err := s.Session()
	if err != nil {
		t.Fatalf("Session() error = %v", err)
	}
	if username != "" {
		t.Errorf("fresh session = %q, want empty", username)
	}
}

// Reopening must never reset existing state.
func TestOpen_KeepsExistingState(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, USD(10000))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	err = s.Update(func(b *Book) error {
		_, err := b.Buy(testInstrument("AAPL"), Q(3), USD(100))
		return err
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	s2, err := Open(dir, USD(5000))
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	b, err := s2.Book()
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if !b.Cash.Equal(USD(9700)) {
		t.Errorf("cash after reopen = %s, want 9700.00", b.Cash)
	}
	if _, ok := b.Holding("AAPL"); !ok {
		t.Error("holding lost on reopen")
	}
}

func TestStore_TradeLogRoundTrip(t *testing.T) {
	s, err := Open(t.TempDir(), USD(10000))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	b := NewBook(USD(10000))
	rec1, err := b.Buy(testInstrument("AAPL"), Q(10), USD(175.50))
	if err != nil {
		t.Fatalf("Buy() error = %v", err)
	}
	rec2, err := b.Sell(testInstrument("AAPL"), Q(4), USD(180))
	if err != nil {
		t.Fatalf("Sell() error = %v", err)
	}
	for _, rec := range []TradeRecord{rec1, rec2} {
		if err := s.AppendTrade(rec); err != nil {
			t.Fatalf("AppendTrade() error = %v", err)
		}
	}

	trades, err := s.Trades()
	if err != nil {
		t.Fatalf("Trades() error = %v", err)
	}
	if len(trades) != 2 {
		t.Fatalf("trade log has %d entries, want 2", len(trades))
	}
	if trades[0].ID != rec1.ID || trades[1].ID != rec2.ID {
		t.Error("trade log out of append order")
	}
	if trades[0].Side != SideBuy || !trades[0].Total.Equal(USD(1755)) {
		t.Errorf("buy record = %+v", trades[0])
	}
	if trades[1].Side != SideSell || !trades[1].RealizedPL.Equal(USD(18)) {
		t.Errorf("sell record = %+v", trades[1])
	}

	if err := s.ClearTrades(); err != nil {
		t.Fatalf("ClearTrades() error = %v", err)
	}
	trades, err = s.Trades()
	if err != nil {
		t.Fatalf("Trades() after clear error = %v", err)
	}
	if len(trades) != 0 {
		t.Errorf("trade log has %d entries after clear", len(trades))
	}
}

func TestStore_AccountsAndSession(t *testing.T) {
	s, err := Open(t.TempDir(), USD(10000))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	a := Account{Username: "bob_99", Password: "secret1", CreatedAt: time.Now().UTC()}
	if err := s.AppendAccount(a); err != nil {
		t.Fatalf("AppendAccount() error = %v", err)
	}
	accounts, err := s.Accounts()
	if err != nil {
		t.Fatalf("Accounts() error = %v", err)
	}
	if len(accounts) != 1 || accounts[0].Username != "bob_99" {
		t.Fatalf("accounts = %+v", accounts)
	}

	if err := s.SetSession("bob_99"); err != nil {
		t.Fatalf("SetSession() error = %v", err)
	}
	username, err := s.Session()
	if err != nil {
		t.Fatalf("Session() error = %v", err)
	}
	if username != "bob_99" {
		t.Errorf("session = %q, want bob_99", username)
	}

	if err := s.SetSession(""); err != nil {
		t.Fatalf("SetSession() error = %v", err)
	}
	if username, _ := s.Session(); username != "" {
		t.Errorf("session after logout = %q, want empty", username)
	}
}

// A failed update must not touch the saved book.
func TestStore_UpdateRollsBackOnError(t *testing.T) {
	s, err := Open(t.TempDir(), USD(100))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	err = s.Update(func(b *Book) error {
		_, err := b.Buy(testInstrument("AAPL"), Q(100), USD(175.50))
		return err
	})
	if err == nil {
		t.Fatal("Update() succeeded on an overdraw")
	}

	b, err := s.Book()
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if !b.Cash.Equal(USD(100)) {
		t.Errorf("cash = %s after failed update, want 100.00", b.Cash)
	}
}
