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
	ErrGroupNotFound   = errors.New("chat group not found")
	ErrMemoTooFrequent = errors.New("memo interval not elapsed")
)

type ChatGroup struct {
	GroupID         uint64
	Address         solana.PublicKey
	Creator         solana.PublicKey
	Name            string
	Description     string
	Image           string
	Tags            []string
	MinMemoInterval int64
	MemoCount       uint64
	BurnedAmount    uint64
	LastMemoTime    int64
	CreatedAt       int64
}

const chatGroupQuery = "SELECT group_id,address,creator,name,description,image,tags,min_memo_interval,memo_count,burned_amount,last_memo_time,created_at FROM chat_groups WHERE group_id=?"

func (s *SQLite3Store) ReadChatGroup(ctx context.Context, id uint64) (*ChatGroup, error) {
	return chatGroupFromRow(s.db.QueryRowContext(ctx, chatGroupQuery, id))
}

// WriteGroupCreation claims the group id from the chat counter, records the
// group and seeds its leaderboard entry from the creation burn.
func (s *SQLite3Store) WriteGroupCreation(ctx context.Context, data *memo.GroupCreationData, amount uint64, timestamp int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer common.Rollback(tx)

	err = s.bumpCounter(ctx, tx, CounterDomainChat, data.GroupID, memo.ErrGroupIdMismatch)
	if err != nil {
		return err
	}
	creator := solana.MustPublicKeyFromBase58(data.Creator)
	err = s.burnTokens(ctx, tx, creator, amount)
	if err != nil {
		return err
	}

	interval := int64(memo.DefaultMemoInterval)
	if data.MinMemoInterval != nil {
		interval = *data.MinMemoInterval
	}
	tags, err := json.Marshal(data.Tags)
	if err != nil {
		return err
	}
	address := chain.ChatGroupAddress(data.GroupID)
	cols := []string{"group_id", "address", "creator", "name", "description", "image", "tags", "min_memo_interval", "memo_count", "burned_amount", "last_memo_time", "created_at"}
	vals := []any{data.GroupID, address.String(), data.Creator, data.Name, data.Description, data.Image, string(tags), interval, 0, amount, 0, timestamp}
	err = s.execOne(ctx, tx, buildInsertionSQL("chat_groups", cols), vals...)
	if err != nil {
		return fmt.Errorf("INSERT chat_groups %v", err)
	}

	err = s.updateLeaderboard(ctx, tx, BoardDomainChat, data.GroupID, amount)
	if err != nil {
		return err
	}
	err = s.writeChatEvent(ctx, tx, data.Operation, data.GroupID, data.Creator, data, amount, amount, timestamp)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// WriteGroupMessage enforces the group's memo interval, then accounts the
// message burn against the group.
func (s *SQLite3Store) WriteGroupMessage(ctx context.Context, data *memo.GroupMessageData, amount uint64, timestamp int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer common.Rollback(tx)

	g, err := chatGroupFromRow(tx.QueryRowContext(ctx, chatGroupQuery, data.GroupID))
	if err != nil {
		return err
	}
	if g == nil {
		return ErrGroupNotFound
	}
	if g.LastMemoTime > 0 && timestamp-g.LastMemoTime < g.MinMemoInterval {
		return ErrMemoTooFrequent
	}
	err = s.burnTokens(ctx, tx, solana.MustPublicKeyFromBase58(data.Sender), amount)
	if err != nil {
		return err
	}

	total := g.BurnedAmount + amount
	err = s.burnForGroup(ctx, tx, data.GroupID, total, timestamp)
	if err != nil {
		return err
	}
	err = s.writeChatEvent(ctx, tx, data.Operation, data.GroupID, data.Sender, data, amount, total, timestamp)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// WriteGroupBurn accounts a plain burn against the group. No interval check
// applies; only messages are rate limited.
func (s *SQLite3Store) WriteGroupBurn(ctx context.Context, data *memo.GroupBurnData, amount uint64, timestamp int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer common.Rollback(tx)

	g, err := chatGroupFromRow(tx.QueryRowContext(ctx, chatGroupQuery, data.GroupID))
	if err != nil {
		return err
	}
	if g == nil {
		return ErrGroupNotFound
	}
	err = s.burnTokens(ctx, tx, solana.MustPublicKeyFromBase58(data.Burner), amount)
	if err != nil {
		return err
	}

	total := g.BurnedAmount + amount
	err = s.burnForGroup(ctx, tx, data.GroupID, total, timestamp)
	if err != nil {
		return err
	}
	err = s.writeChatEvent(ctx, tx, data.Operation, data.GroupID, data.Burner, data, amount, total, timestamp)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLite3Store) burnForGroup(ctx context.Context, tx *sql.Tx, id, total uint64, timestamp int64) error {
	err := s.execOne(ctx, tx, "UPDATE chat_groups SET memo_count=memo_count+1, burned_amount=?, last_memo_time=? WHERE group_id=?",
		total, timestamp, id)
	if err != nil {
		return fmt.Errorf("UPDATE chat_groups %v", err)
	}
	return s.updateLeaderboard(ctx, tx, BoardDomainChat, id, total)
}

func (s *SQLite3Store) writeChatEvent(ctx context.Context, tx *sql.Tx, operation string, id uint64, subject string, data any, amount, total uint64, timestamp int64) error {
	snapshot, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.writeEvent(ctx, tx, &Event{
		Category:    memo.CategoryChat,
		Operation:   operation,
		Entity:      fmt.Sprint(id),
		Subject:     subject,
		Snapshot:    string(snapshot),
		Amount:      amount,
		TotalBurned: total,
		Timestamp:   timestamp,
	})
}

func chatGroupFromRow(row *sql.Row) (*ChatGroup, error) {
	var address, creator, tags string
	var g ChatGroup
	err := row.Scan(&g.GroupID, &address, &creator, &g.Name, &g.Description, &g.Image, &tags,
		&g.MinMemoInterval, &g.MemoCount, &g.BurnedAmount, &g.LastMemoTime, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	g.Address = solana.MustPublicKeyFromBase58(address)
	g.Creator = solana.MustPublicKeyFromBase58(creator)
	err = json.Unmarshal([]byte(tags), &g.Tags)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
