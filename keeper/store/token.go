package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/xenartist/memo-token/burner"
	"github.com/xenartist/memo-token/chain"
	"github.com/xenartist/memo-token/common"
	"github.com/xenartist/memo-token/minter"
)

var mintCols = []string{"address", "authority", "supply", "decimals", "created_at"}

// WriteMint records the token mint at genesis. The store only ever holds
// one mint row.
func (s *SQLite3Store) WriteMint(ctx context.Context, address solana.PublicKey, decimals uint8) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer common.Rollback(tx)

	existed, err := s.checkExistence(ctx, tx, "SELECT address FROM mints LIMIT 1")
	if err != nil {
		return err
	}
	if existed {
		return fmt.Errorf("store.WriteMint(%s) => mint already initialized", address)
	}
	authority := chain.MintAuthorityAddress()
	vals := []any{address.String(), authority.String(), 0, decimals, time.Now().UTC()}
	err = s.execOne(ctx, tx, buildInsertionSQL("mints", mintCols), vals...)
	if err != nil {
		return fmt.Errorf("INSERT mints %v", err)
	}
	return tx.Commit()
}

func (s *SQLite3Store) ReadMint(ctx context.Context) (*minter.Mint, error) {
	query := fmt.Sprintf("SELECT %s FROM mints LIMIT 1", strings.Join(mintCols[:3], ","))
	row := s.db.QueryRowContext(ctx, query)

	var address, authority string
	var supply uint64
	err := row.Scan(&address, &authority, &supply)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &minter.Mint{
		Address:   solana.MustPublicKeyFromBase58(address),
		Authority: solana.MustPublicKeyFromBase58(authority),
		Supply:    supply,
	}, nil
}

// OpenTokenAccount issues an initial balance to an owner, creating the
// account when needed. This is the genesis and faucet path; normal balance
// growth goes through MintTokens. The issued balance counts toward supply.
func (s *SQLite3Store) OpenTokenAccount(ctx context.Context, owner solana.PublicKey, balance uint64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer common.Rollback(tx)

	mint, err := s.readMintAddress(ctx, tx)
	if err != nil {
		return err
	}
	err = s.creditTokenAccount(ctx, tx, owner, mint, balance)
	if err != nil {
		return err
	}
	err = s.execOne(ctx, tx, "UPDATE mints SET supply=supply+?", balance)
	if err != nil {
		return fmt.Errorf("UPDATE mints %v", err)
	}
	return tx.Commit()
}

func (s *SQLite3Store) ReadTokenAccount(ctx context.Context, owner solana.PublicKey) (*burner.TokenAccount, error) {
	row := s.db.QueryRowContext(ctx, "SELECT owner,mint,balance FROM token_accounts WHERE owner=?", owner.String())

	var o, mint string
	var balance uint64
	err := row.Scan(&o, &mint, &balance)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &burner.TokenAccount{
		Owner:   solana.MustPublicKeyFromBase58(o),
		Mint:    solana.MustPublicKeyFromBase58(mint),
		Balance: balance,
	}, nil
}

// BurnTokens debits the owner's account, shrinks the mint supply and bumps
// the owner's global burn stats in one transaction. Entity writers debit
// through burnTokens inside their own transaction instead.
func (s *SQLite3Store) BurnTokens(ctx context.Context, owner solana.PublicKey, amount uint64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer common.Rollback(tx)

	err = s.burnTokens(ctx, tx, owner, amount)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// MintTokens credits the recipient and grows the supply in one transaction.
// The supply cap is the minter's concern; the store trusts the caller.
func (s *SQLite3Store) MintTokens(ctx context.Context, recipient solana.PublicKey, amount uint64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer common.Rollback(tx)

	err = s.mintTokens(ctx, tx, recipient, amount)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLite3Store) burnTokens(ctx context.Context, tx *sql.Tx, owner solana.PublicKey, amount uint64) error {
	err := s.execOne(ctx, tx, "UPDATE token_accounts SET balance=balance-? WHERE owner=? AND balance>=?",
		amount, owner.String(), amount)
	if err != nil {
		return fmt.Errorf("UPDATE token_accounts %v", err)
	}
	err = s.execOne(ctx, tx, "UPDATE mints SET supply=supply-? WHERE supply>=?", amount, amount)
	if err != nil {
		return fmt.Errorf("UPDATE mints %v", err)
	}
	return s.writeBurnStats(ctx, tx, owner, amount)
}

func (s *SQLite3Store) mintTokens(ctx context.Context, tx *sql.Tx, recipient solana.PublicKey, amount uint64) error {
	mint, err := s.readMintAddress(ctx, tx)
	if err != nil {
		return err
	}
	err = s.creditTokenAccount(ctx, tx, recipient, mint, amount)
	if err != nil {
		return err
	}
	err = s.execOne(ctx, tx, "UPDATE mints SET supply=supply+?", amount)
	if err != nil {
		return fmt.Errorf("UPDATE mints %v", err)
	}
	return nil
}

func (s *SQLite3Store) ReadBurnStats(ctx context.Context, user solana.PublicKey) (*burner.BurnStats, error) {
	row := s.db.QueryRowContext(ctx, "SELECT total_burned,burn_count FROM burn_stats WHERE user=?", user.String())

	stats := &burner.BurnStats{User: user}
	err := row.Scan(&stats.TotalBurned, &stats.BurnCount)
	if err == sql.ErrNoRows {
		return stats, nil
	} else if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *SQLite3Store) readMintAddress(ctx context.Context, tx *sql.Tx) (string, error) {
	row := tx.QueryRowContext(ctx, "SELECT address FROM mints LIMIT 1")
	var address string
	err := row.Scan(&address)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("store.readMintAddress() => mint not initialized")
	}
	return address, err
}

func (s *SQLite3Store) creditTokenAccount(ctx context.Context, tx *sql.Tx, owner solana.PublicKey, mint string, amount uint64) error {
	existed, err := s.checkExistence(ctx, tx, "SELECT owner FROM token_accounts WHERE owner=?", owner.String())
	if err != nil {
		return err
	}
	if existed {
		err = s.execOne(ctx, tx, "UPDATE token_accounts SET balance=balance+? WHERE owner=?", amount, owner.String())
		if err != nil {
			return fmt.Errorf("UPDATE token_accounts %v", err)
		}
		return nil
	}
	cols := []string{"owner", "mint", "balance", "created_at"}
	err = s.execOne(ctx, tx, buildInsertionSQL("token_accounts", cols),
		owner.String(), mint, amount, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("INSERT token_accounts %v", err)
	}
	return nil
}

func (s *SQLite3Store) writeBurnStats(ctx context.Context, tx *sql.Tx, user solana.PublicKey, amount uint64) error {
	existed, err := s.checkExistence(ctx, tx, "SELECT user FROM burn_stats WHERE user=?", user.String())
	if err != nil {
		return err
	}
	if existed {
		err = s.execOne(ctx, tx, "UPDATE burn_stats SET total_burned=total_burned+?, burn_count=burn_count+1, updated_at=? WHERE user=?",
			amount, time.Now().UTC(), user.String())
		if err != nil {
			return fmt.Errorf("UPDATE burn_stats %v", err)
		}
		return nil
	}
	address := chain.UserBurnStatsAddress(user)
	cols := []string{"user", "address", "total_burned", "burn_count", "updated_at"}
	err = s.execOne(ctx, tx, buildInsertionSQL("burn_stats", cols),
		user.String(), address.String(), amount, 1, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("INSERT burn_stats %v", err)
	}
	return nil
}
