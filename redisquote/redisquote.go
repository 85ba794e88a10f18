// Package redisquote publishes the quote table to Redis so that several
// processes (a feed daemon, CLI invocations, the HTTP service) can share
// one simulated market.
package redisquote

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/papertrade/papertrade"
)

const hashKey = "papertrade:quotes"

// quoteTTL drops a stale quote table once the feed stops publishing.
const quoteTTL = 2 * time.Minute

// Quotes is a papertrade.QuoteStore backed by a Redis hash, one JSON
// quote per symbol field.
type Quotes struct {
	client *redis.Client
}

// New wraps an existing client.
func New(client *redis.Client) *Quotes {
	return &Quotes{client: client}
}

// Dial connects to Redis and verifies the connection.
func Dial(ctx context.Context, addr, password string, db int) (*Quotes, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}
	return New(client), nil
}

func (q *Quotes) Close() error { return q.client.Close() }

func (q *Quotes) Publish(ctx context.Context, quotes map[string]papertrade.Quote) error {
	if len(quotes) == 0 {
		return nil
	}
	fields := make([]any, 0, 2*len(quotes))
	for symbol, quote := range quotes {
		data, err := json.Marshal(quote)
		if err != nil {
			return fmt.Errorf("encoding quote for %s: %w", symbol, err)
		}
		fields = append(fields, symbol, data)
	}
	if err := q.client.HSet(ctx, hashKey, fields...).Err(); err != nil {
		return fmt.Errorf("publishing quotes: %w", err)
	}
	if err := q.client.Expire(ctx, hashKey, quoteTTL).Err(); err != nil {
		return fmt.Errorf("refreshing quote ttl: %w", err)
	}
	return nil
}

func (q *Quotes) Snapshot(ctx context.Context) (map[string]papertrade.Quote, error) {
	raw, err := q.client.HGetAll(ctx, hashKey).Result()
	if err != nil {
		return nil, fmt.Errorf("reading quote table: %w", err)
	}
	quotes := make(map[string]papertrade.Quote, len(raw))
	for symbol, data := range raw {
		var quote papertrade.Quote
		if err := json.Unmarshal([]byte(data), &quote); err != nil {
			return nil, fmt.Errorf("decoding quote for %s: %w", symbol, err)
		}
		quotes[symbol] = quote
	}
	return quotes, nil
}

func (q *Quotes) Quote(ctx context.Context, symbol string) (papertrade.Quote, bool, error) {
	data, err := q.client.HGet(ctx, hashKey, symbol).Result()
	if err == redis.Nil {
		return papertrade.Quote{}, false, nil
	}
	if err != nil {
		return papertrade.Quote{}, false, fmt.Errorf("reading quote for %s: %w", symbol, err)
	}
	var quote papertrade.Quote
	if err := json.Unmarshal([]byte(data), &quote); err != nil {
		return papertrade.Quote{}, false, fmt.Errorf("decoding quote for %s: %w", symbol, err)
	}
	return quote, true, nil
}
