package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/xenartist/memo-token/chain"
	"github.com/xenartist/memo-token/common"
	"github.com/xenartist/memo-token/memo"
)

var (
	ErrBlogExists   = errors.New("blog already exists")
	ErrBlogNotFound = errors.New("blog not found")
)

type Blog struct {
	Creator      solana.PublicKey
	Address      solana.PublicKey
	Name         string
	Description  string
	Image        string
	MemoCount    uint64
	BurnedAmount uint64
	LastMemoTime int64
	CreatedAt    int64
	LastUpdated  int64
}

const blogQuery = "SELECT creator,address,name,description,image,memo_count,burned_amount,last_memo_time,created_at,last_updated FROM blogs WHERE creator=?"

func (s *SQLite3Store) ReadBlog(ctx context.Context, creator solana.PublicKey) (*Blog, error) {
	return blogFromRow(s.db.QueryRowContext(ctx, blogQuery, creator.String()))
}

// WriteBlogCreation records a new blog keyed by its creator. Blogs carry no
// numeric id and no leaderboard standing.
func (s *SQLite3Store) WriteBlogCreation(ctx context.Context, data *memo.BlogCreationData, amount uint64, timestamp int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer common.Rollback(tx)

	existed, err := s.checkExistence(ctx, tx, "SELECT creator FROM blogs WHERE creator=?", data.Creator)
	if err != nil {
		return err
	}
	if existed {
		return ErrBlogExists
	}
	creator := solana.MustPublicKeyFromBase58(data.Creator)
	err = s.burnTokens(ctx, tx, creator, amount)
	if err != nil {
		return err
	}

	address := chain.BlogAddress(creator)
	cols := []string{"creator", "address", "name", "description", "image", "memo_count", "burned_amount", "last_memo_time", "created_at", "last_updated"}
	vals := []any{data.Creator, address.String(), data.Name, data.Description, data.Image, 0, amount, 0, timestamp, timestamp}
	err = s.execOne(ctx, tx, buildInsertionSQL("blogs", cols), vals...)
	if err != nil {
		return fmt.Errorf("INSERT blogs %v", err)
	}

	err = s.writeBlogEvent(ctx, tx, data.Operation, data.Creator, data, amount, amount, timestamp)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLite3Store) WriteBlogUpdate(ctx context.Context, data *memo.BlogUpdateData, amount uint64, timestamp int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer common.Rollback(tx)

	b, err := blogFromRow(tx.QueryRowContext(ctx, blogQuery, data.Creator))
	if err != nil {
		return err
	}
	if b == nil {
		return ErrBlogNotFound
	}
	err = s.burnTokens(ctx, tx, b.Creator, amount)
	if err != nil {
		return err
	}
	if data.Name != nil {
		b.Name = *data.Name
	}
	if data.Description != nil {
		b.Description = *data.Description
	}
	if data.Image != nil {
		b.Image = *data.Image
	}
	total := b.BurnedAmount + amount
	err = s.execOne(ctx, tx, "UPDATE blogs SET name=?, description=?, image=?, burned_amount=?, last_updated=? WHERE creator=?",
		b.Name, b.Description, b.Image, total, timestamp, data.Creator)
	if err != nil {
		return fmt.Errorf("UPDATE blogs %v", err)
	}

	err = s.writeBlogEvent(ctx, tx, data.Operation, data.Creator, data, amount, total, timestamp)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// WriteBlogBurn accounts a supporter burn against the blog keyed by the
// burner's own pubkey.
func (s *SQLite3Store) WriteBlogBurn(ctx context.Context, data *memo.BlogBurnData, amount uint64, timestamp int64) error {
	return s.writeBlogMemo(ctx, data.Operation, data.Burner, data, amount, true, timestamp)
}

// WriteBlogMint bumps the blog's memo counters after a successful mint; the
// minted amount does not add to the burned total.
func (s *SQLite3Store) WriteBlogMint(ctx context.Context, data *memo.BlogMintData, minted uint64, timestamp int64) error {
	return s.writeBlogMemo(ctx, data.Operation, data.Minter, data, minted, false, timestamp)
}

func (s *SQLite3Store) writeBlogMemo(ctx context.Context, operation, creator string, data any, amount uint64, burned bool, timestamp int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer common.Rollback(tx)

	b, err := blogFromRow(tx.QueryRowContext(ctx, blogQuery, creator))
	if err != nil {
		return err
	}
	if b == nil {
		return ErrBlogNotFound
	}
	if burned {
		err = s.burnTokens(ctx, tx, solana.MustPublicKeyFromBase58(creator), amount)
	} else {
		err = s.mintTokens(ctx, tx, solana.MustPublicKeyFromBase58(creator), amount)
	}
	if err != nil {
		return err
	}
	total := b.BurnedAmount
	if burned {
		total += amount
	}
	err = s.execOne(ctx, tx, "UPDATE blogs SET memo_count=memo_count+1, burned_amount=?, last_memo_time=? WHERE creator=?",
		total, timestamp, creator)
	if err != nil {
		return fmt.Errorf("UPDATE blogs %v", err)
	}

	err = s.writeBlogEvent(ctx, tx, operation, creator, data, amount, total, timestamp)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLite3Store) writeBlogEvent(ctx context.Context, tx *sql.Tx, operation, creator string, data any, amount, total uint64, timestamp int64) error {
	snapshot, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.writeEvent(ctx, tx, &Event{
		Category:    memo.CategoryBlog,
		Operation:   operation,
		Entity:      creator,
		Subject:     creator,
		Snapshot:    string(snapshot),
		Amount:      amount,
		TotalBurned: total,
		Timestamp:   timestamp,
	})
}

func blogFromRow(row *sql.Row) (*Blog, error) {
	var creator, address string
	var b Blog
	err := row.Scan(&creator, &address, &b.Name, &b.Description, &b.Image,
		&b.MemoCount, &b.BurnedAmount, &b.LastMemoTime, &b.CreatedAt, &b.LastUpdated)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	b.Creator = solana.MustPublicKeyFromBase58(creator)
	b.Address = solana.MustPublicKeyFromBase58(address)
	return &b, nil
}
