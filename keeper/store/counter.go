package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/xenartist/memo-token/chain"
	"github.com/xenartist/memo-token/common"
)

// Counter domains. Each id-bearing entity kind owns one monotonic counter.
const (
	CounterDomainChat    = "chat"
	CounterDomainProject = "project"
	CounterDomainForum   = "forum"
)

var (
	ErrCounterNotInitialized = errors.New("counter not initialized")
	ErrCounterOverflow       = errors.New("counter overflow")
)

// InitializeCounter creates the domain counter at zero. It is an admin
// genesis step and fails if the counter already exists.
func (s *SQLite3Store) InitializeCounter(ctx context.Context, domain string, program solana.PublicKey) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer common.Rollback(tx)

	existed, err := s.checkExistence(ctx, tx, "SELECT domain FROM counters WHERE domain=?", domain)
	if err != nil {
		return err
	}
	if existed {
		return fmt.Errorf("store.InitializeCounter(%s) => counter already initialized", domain)
	}
	address := chain.CounterAddress(program)
	cols := []string{"domain", "address", "next_id", "created_at"}
	err = s.execOne(ctx, tx, buildInsertionSQL("counters", cols),
		domain, address.String(), 0, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("INSERT counters %v", err)
	}
	return tx.Commit()
}

func (s *SQLite3Store) ReadCounter(ctx context.Context, domain string) (uint64, error) {
	row := s.db.QueryRowContext(ctx, "SELECT next_id FROM counters WHERE domain=?", domain)
	var next uint64
	err := row.Scan(&next)
	if err == sql.ErrNoRows {
		return 0, ErrCounterNotInitialized
	}
	return next, err
}

// bumpCounter claims the next id for domain inside tx. The caller passes
// the id its memo declared; a stale id fails with mismatchErr so the caller
// surfaces the domain's own error.
func (s *SQLite3Store) bumpCounter(ctx context.Context, tx *sql.Tx, domain string, expected uint64, mismatchErr error) error {
	row := tx.QueryRowContext(ctx, "SELECT next_id FROM counters WHERE domain=?", domain)
	var next uint64
	err := row.Scan(&next)
	if err == sql.ErrNoRows {
		return ErrCounterNotInitialized
	} else if err != nil {
		return err
	}
	if next != expected {
		return mismatchErr
	}
	if next == math.MaxUint64 {
		return ErrCounterOverflow
	}
	err = s.execOne(ctx, tx, "UPDATE counters SET next_id=next_id+1 WHERE domain=? AND next_id=?", domain, expected)
	if err != nil {
		return fmt.Errorf("UPDATE counters %v", err)
	}
	return nil
}
