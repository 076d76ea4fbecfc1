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
	ErrProjectNotFound    = errors.New("project not found")
	ErrUnauthorizedUpdate = errors.New("only the creator may update")
)

type Project struct {
	ProjectID    uint64
	Address      solana.PublicKey
	Creator      solana.PublicKey
	Name         string
	Description  string
	Image        string
	Website      string
	Tags         []string
	MemoCount    uint64
	BurnedAmount uint64
	LastMemoTime int64
	CreatedAt    int64
	LastUpdated  int64
}

const projectQuery = "SELECT project_id,address,creator,name,description,image,website,tags,memo_count,burned_amount,last_memo_time,created_at,last_updated FROM projects WHERE project_id=?"

func (s *SQLite3Store) ReadProject(ctx context.Context, id uint64) (*Project, error) {
	return projectFromRow(s.db.QueryRowContext(ctx, projectQuery, id))
}

// WriteProjectCreation claims the project id from the project counter,
// records the project and seeds its leaderboard entry from the creation
// burn.
func (s *SQLite3Store) WriteProjectCreation(ctx context.Context, data *memo.ProjectCreationData, amount uint64, timestamp int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer common.Rollback(tx)

	err = s.bumpCounter(ctx, tx, CounterDomainProject, data.ProjectID, memo.ErrProjectIdMismatch)
	if err != nil {
		return err
	}
	err = s.burnTokens(ctx, tx, solana.MustPublicKeyFromBase58(data.Creator), amount)
	if err != nil {
		return err
	}

	tags, err := json.Marshal(data.Tags)
	if err != nil {
		return err
	}
	address := chain.ProjectAddress(data.ProjectID)
	cols := []string{"project_id", "address", "creator", "name", "description", "image", "website", "tags", "memo_count", "burned_amount", "last_memo_time", "created_at", "last_updated"}
	vals := []any{data.ProjectID, address.String(), data.Creator, data.Name, data.Description, data.Image, data.Website, string(tags), 0, amount, 0, timestamp, timestamp}
	err = s.execOne(ctx, tx, buildInsertionSQL("projects", cols), vals...)
	if err != nil {
		return fmt.Errorf("INSERT projects %v", err)
	}

	err = s.updateLeaderboard(ctx, tx, BoardDomainProject, data.ProjectID, amount)
	if err != nil {
		return err
	}
	err = s.writeProjectEvent(ctx, tx, data.Operation, data.ProjectID, data.Creator, data, amount, amount, timestamp)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// WriteProjectUpdate applies the optional field overrides after verifying
// the updater is the recorded creator. The update burn accumulates into the
// project's total but does not count as a memo.
func (s *SQLite3Store) WriteProjectUpdate(ctx context.Context, data *memo.ProjectUpdateData, amount uint64, timestamp int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer common.Rollback(tx)

	p, err := projectFromRow(tx.QueryRowContext(ctx, projectQuery, data.ProjectID))
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProjectNotFound
	}
	if p.Creator.String() != data.Updater {
		return ErrUnauthorizedUpdate
	}
	err = s.burnTokens(ctx, tx, p.Creator, amount)
	if err != nil {
		return err
	}
	if data.Name != nil {
		p.Name = *data.Name
	}
	if data.Description != nil {
		p.Description = *data.Description
	}
	if data.Image != nil {
		p.Image = *data.Image
	}
	if data.Website != nil {
		p.Website = *data.Website
	}
	if data.Tags != nil {
		p.Tags = *data.Tags
	}
	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return err
	}
	total := p.BurnedAmount + amount
	err = s.execOne(ctx, tx, "UPDATE projects SET name=?, description=?, image=?, website=?, tags=?, burned_amount=?, last_updated=? WHERE project_id=?",
		p.Name, p.Description, p.Image, p.Website, string(tags), total, timestamp, data.ProjectID)
	if err != nil {
		return fmt.Errorf("UPDATE projects %v", err)
	}

	err = s.updateLeaderboard(ctx, tx, BoardDomainProject, data.ProjectID, total)
	if err != nil {
		return err
	}
	err = s.writeProjectEvent(ctx, tx, data.Operation, data.ProjectID, data.Updater, data, amount, total, timestamp)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// WriteProjectBurn accounts a burn against the project, bumping its memo
// counters and leaderboard standing.
func (s *SQLite3Store) WriteProjectBurn(ctx context.Context, data *memo.ProjectBurnData, amount uint64, timestamp int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer common.Rollback(tx)

	p, err := projectFromRow(tx.QueryRowContext(ctx, projectQuery, data.ProjectID))
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProjectNotFound
	}
	err = s.burnTokens(ctx, tx, solana.MustPublicKeyFromBase58(data.Burner), amount)
	if err != nil {
		return err
	}

	total := p.BurnedAmount + amount
	err = s.execOne(ctx, tx, "UPDATE projects SET memo_count=memo_count+1, burned_amount=?, last_memo_time=? WHERE project_id=?",
		total, timestamp, data.ProjectID)
	if err != nil {
		return fmt.Errorf("UPDATE projects %v", err)
	}

	err = s.updateLeaderboard(ctx, tx, BoardDomainProject, data.ProjectID, total)
	if err != nil {
		return err
	}
	err = s.writeProjectEvent(ctx, tx, data.Operation, data.ProjectID, data.Burner, data, amount, total, timestamp)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLite3Store) writeProjectEvent(ctx context.Context, tx *sql.Tx, operation string, id uint64, subject string, data any, amount, total uint64, timestamp int64) error {
	snapshot, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.writeEvent(ctx, tx, &Event{
		Category:    memo.CategoryProject,
		Operation:   operation,
		Entity:      fmt.Sprint(id),
		Subject:     subject,
		Snapshot:    string(snapshot),
		Amount:      amount,
		TotalBurned: total,
		Timestamp:   timestamp,
	})
}

func projectFromRow(row *sql.Row) (*Project, error) {
	var address, creator, tags string
	var p Project
	err := row.Scan(&p.ProjectID, &address, &creator, &p.Name, &p.Description, &p.Image, &p.Website, &tags,
		&p.MemoCount, &p.BurnedAmount, &p.LastMemoTime, &p.CreatedAt, &p.LastUpdated)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	p.Address = solana.MustPublicKeyFromBase58(address)
	p.Creator = solana.MustPublicKeyFromBase58(creator)
	err = json.Unmarshal([]byte(tags), &p.Tags)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
