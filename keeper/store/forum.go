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

var ErrPostNotFound = errors.New("post not found")

type Post struct {
	PostID        uint64
	Address       solana.PublicKey
	Creator       solana.PublicKey
	Title         string
	Content       string
	Image         string
	ReplyCount    uint64
	BurnedAmount  uint64
	LastReplyTime int64
	CreatedAt     int64
	LastUpdated   int64
}

const postQuery = "SELECT post_id,address,creator,title,content,image,reply_count,burned_amount,last_reply_time,created_at,last_updated FROM posts WHERE post_id=?"

func (s *SQLite3Store) ReadPost(ctx context.Context, id uint64) (*Post, error) {
	return postFromRow(s.db.QueryRowContext(ctx, postQuery, id))
}

// WritePostCreation claims the post id from the forum counter and records
// the post.
func (s *SQLite3Store) WritePostCreation(ctx context.Context, data *memo.PostCreationData, amount uint64, timestamp int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer common.Rollback(tx)

	err = s.bumpCounter(ctx, tx, CounterDomainForum, data.PostID, memo.ErrPostIdMismatch)
	if err != nil {
		return err
	}
	err = s.burnTokens(ctx, tx, solana.MustPublicKeyFromBase58(data.Creator), amount)
	if err != nil {
		return err
	}

	address := chain.PostAddress(data.PostID)
	cols := []string{"post_id", "address", "creator", "title", "content", "image", "reply_count", "burned_amount", "last_reply_time", "created_at", "last_updated"}
	vals := []any{data.PostID, address.String(), data.Creator, data.Title, data.Content, data.Image, 0, amount, 0, timestamp, timestamp}
	err = s.execOne(ctx, tx, buildInsertionSQL("posts", cols), vals...)
	if err != nil {
		return fmt.Errorf("INSERT posts %v", err)
	}

	err = s.writeForumEvent(ctx, tx, data.Operation, data.PostID, data.Creator, data, amount, amount, timestamp)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// WritePostBurn accounts a reply burn against the post.
func (s *SQLite3Store) WritePostBurn(ctx context.Context, data *memo.PostBurnData, amount uint64, timestamp int64) error {
	return s.writePostReply(ctx, data.Operation, data.PostID, data.User, data, amount, true, timestamp)
}

// WritePostMint bumps the post's reply counters after a successful mint;
// the minted amount does not add to the burned total.
func (s *SQLite3Store) WritePostMint(ctx context.Context, data *memo.PostMintData, minted uint64, timestamp int64) error {
	return s.writePostReply(ctx, data.Operation, data.PostID, data.User, data, minted, false, timestamp)
}

func (s *SQLite3Store) writePostReply(ctx context.Context, operation string, id uint64, user string, data any, amount uint64, burned bool, timestamp int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer common.Rollback(tx)

	p, err := postFromRow(tx.QueryRowContext(ctx, postQuery, id))
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPostNotFound
	}
	if burned {
		err = s.burnTokens(ctx, tx, solana.MustPublicKeyFromBase58(user), amount)
	} else {
		err = s.mintTokens(ctx, tx, solana.MustPublicKeyFromBase58(user), amount)
	}
	if err != nil {
		return err
	}
	total := p.BurnedAmount
	if burned {
		total += amount
	}
	err = s.execOne(ctx, tx, "UPDATE posts SET reply_count=reply_count+1, burned_amount=?, last_reply_time=? WHERE post_id=?",
		total, timestamp, id)
	if err != nil {
		return fmt.Errorf("UPDATE posts %v", err)
	}

	err = s.writeForumEvent(ctx, tx, operation, id, user, data, amount, total, timestamp)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLite3Store) writeForumEvent(ctx context.Context, tx *sql.Tx, operation string, id uint64, subject string, data any, amount, total uint64, timestamp int64) error {
	snapshot, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.writeEvent(ctx, tx, &Event{
		Category:    memo.CategoryForum,
		Operation:   operation,
		Entity:      fmt.Sprint(id),
		Subject:     subject,
		Snapshot:    string(snapshot),
		Amount:      amount,
		TotalBurned: total,
		Timestamp:   timestamp,
	})
}

func postFromRow(row *sql.Row) (*Post, error) {
	var address, creator string
	var p Post
	err := row.Scan(&p.PostID, &address, &creator, &p.Title, &p.Content, &p.Image,
		&p.ReplyCount, &p.BurnedAmount, &p.LastReplyTime, &p.CreatedAt, &p.LastUpdated)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	p.Address = solana.MustPublicKeyFromBase58(address)
	p.Creator = solana.MustPublicKeyFromBase58(creator)
	return &p, nil
}
