package papertrade

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// This file persists simulator state in a directory of human-readable
// files:
//
//	book.json    cash, holdings, watchlist and theme (one JSON object)
//	trades.jsonl append-only trade log, one record per line
//	users.jsonl  append-only account list, one account per line
//	session      the active username, empty when logged out
//
// Open creates whatever is absent and never overwrites existing data.
// There are no transactional guarantees; a mutex makes the store safe to
// share between the feed goroutine and command handlers, which is all the
// single-user model needs.

const (
	bookFilename    = "book.json"
	tradesFilename  = "trades.jsonl"
	usersFilename   = "users.jsonl"
	sessionFilename = "session"
)

// Store is the on-disk simulator state.
type Store struct {
	dir string
	mu  sync.Mutex
}

// Open opens (or initializes) the state directory. Absent files are
// populated with defaults: a fresh book holding startingCash, empty trade
// and account logs, and no active session.
func Open(dir string, startingCash Money) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating state dir %q: %w", dir, err)
	}
	s := &Store{dir: dir}

	if _, err := os.Stat(s.path(bookFilename)); os.IsNotExist(err) {
		if err := s.writeBook(NewBook(startingCash)); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("opening state dir %q: %w", dir, err)
	}
	for _, name := range []string{tradesFilename, usersFilename, sessionFilename} {
		if err := touch(s.path(name)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string { return filepath.Join(s.dir, name) }

// touch creates an empty file if it doesn't exist, leaving existing
// content alone.
func touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("initializing %q: %w", path, err)
	}
	return f.Close()
}

// Book reads the current book.
func (s *Store) Book() (*Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readBook()
}

// SaveBook overwrites the book.
func (s *Store) SaveBook(b *Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeBook(b)
}

// Update applies fn to the book under the store lock and saves the result
// when fn succeeds. Trade execution runs through here so that a buy's
// read-validate-write is a single critical section.
func (s *Store) Update(fn func(*Book) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := s.readBook()
	if err != nil {
		return err
	}
	if err := fn(b); err != nil {
		return err
	}
	return s.writeBook(b)
}

func (s *Store) readBook() (*Book, error) {
	data, err := os.ReadFile(s.path(bookFilename))
	if err != nil {
		return nil, fmt.Errorf("reading book: %w", err)
	}
	var b Book
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("format error in %q: %w", bookFilename, err)
	}
	if b.Holdings == nil {
		b.Holdings = make(map[string]Holding)
	}
	return &b, nil
}

func (s *Store) writeBook(b *Book) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding book: %w", err)
	}
	if err := os.WriteFile(s.path(bookFilename), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing book: %w", err)
	}
	return nil
}

// AppendTrade appends one record to the trade log.
func (s *Store) AppendTrade(rec TradeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return appendJSONL(s.path(tradesFilename), rec)
}

// Trades returns the full trade log in append order.
func (s *Store) Trades() ([]TradeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var trades []TradeRecord
	err := decodeJSONL(s.path(tradesFilename), func(line []byte) error {
		var rec TradeRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return err
		}
		trades = append(trades, rec)
		return nil
	})
	return trades, err
}

// ClearTrades truncates the trade log.
func (s *Store) ClearTrades() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.path(tradesFilename), nil, 0644); err != nil {
		return fmt.Errorf("clearing trade log: %w", err)
	}
	return nil
}

// Accounts returns all registered accounts in signup order.
func (s *Store) Accounts() ([]Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var accounts []Account
	err := decodeJSONL(s.path(usersFilename), func(line []byte) error {
		var a Account
		if err := json.Unmarshal(line, &a); err != nil {
			return err
		}
		accounts = append(accounts, a)
		return nil
	})
	return accounts, err
}

// AppendAccount appends one account to the user log.
func (s *Store) AppendAccount(a Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return appendJSONL(s.path(usersFilename), a)
}

// Session returns the active username, "" when logged out.
func (s *Store) Session() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path(sessionFilename))
	if err != nil {
		return "", fmt.Errorf("reading session: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SetSession records the active username; "" logs out.
func (s *Store) SetSession(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.path(sessionFilename), []byte(username), 0644); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// appendJSONL marshals v onto its own line at the end of the file.
func appendJSONL(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding for %q: %w", filepath.Base(path), err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("appending to %q: %w", path, err)
	}
	return f.Close()
}

// decodeJSONL calls fn for every non-blank line of the file.
func decodeJSONL(path string, fn func(line []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for i := 1; scanner.Scan(); i++ {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		if err := fn(line); err != nil {
			return fmt.Errorf("format error in %q on line %d: %w", filepath.Base(path), i, err)
		}
	}
	return scanner.Err()
}
