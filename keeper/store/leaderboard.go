package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/xenartist/memo-token/leaderboard"
)

// Leaderboard domains. Only the id-bearing burn targets rank: chat groups
// and projects by cumulative burned amount.
const (
	BoardDomainChat    = "chat"
	BoardDomainProject = "project"
)

var ErrBoardNotInitialized = errors.New("leaderboard not initialized")

// InitializeLeaderboard marks the domain board as live. Boards start empty;
// the property row records the admin genesis step and its derived address.
func (s *SQLite3Store) InitializeLeaderboard(ctx context.Context, domain string, address solana.PublicKey) error {
	return s.WriteProperty(ctx, boardPropertyKey(domain), address.String())
}

func (s *SQLite3Store) ReadLeaderboard(ctx context.Context, domain string) (*leaderboard.Board, error) {
	live, err := s.ReadProperty(ctx, boardPropertyKey(domain))
	if err != nil {
		return nil, err
	}
	if live == "" {
		return nil, ErrBoardNotInitialized
	}
	rows, err := s.db.QueryContext(ctx, "SELECT entity_id,burned_amount FROM leaderboards WHERE domain=?", domain)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	board := &leaderboard.Board{}
	for rows.Next() {
		var e leaderboard.Entry
		err = rows.Scan(&e.EntityID, &e.BurnedAmount)
		if err != nil {
			return nil, err
		}
		board.Entries = append(board.Entries, e)
	}
	return board, rows.Err()
}

// updateLeaderboard folds an entity's new cumulative burned amount into the
// domain board inside tx. A board that has not been initialized is skipped,
// matching the genesis window before the admin enables rankings.
func (s *SQLite3Store) updateLeaderboard(ctx context.Context, tx *sql.Tx, domain string, entityID, burnedAmount uint64) error {
	row := tx.QueryRowContext(ctx, "SELECT value FROM properties WHERE key=?", boardPropertyKey(domain))
	var live string
	err := row.Scan(&live)
	if err == sql.ErrNoRows {
		return nil
	} else if err != nil {
		return err
	}

	rows, err := tx.QueryContext(ctx, "SELECT entity_id,burned_amount FROM leaderboards WHERE domain=?", domain)
	if err != nil {
		return err
	}
	board := &leaderboard.Board{}
	for rows.Next() {
		var e leaderboard.Entry
		err = rows.Scan(&e.EntityID, &e.BurnedAmount)
		if err != nil {
			rows.Close()
			return err
		}
		board.Entries = append(board.Entries, e)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return err
	}

	result, ejected := board.Update(entityID, burnedAmount)
	switch result {
	case leaderboard.Rejected:
		return nil
	case leaderboard.Updated:
		err = s.execOne(ctx, tx, "UPDATE leaderboards SET burned_amount=? WHERE domain=? AND entity_id=?",
			burnedAmount, domain, entityID)
		if err != nil {
			return fmt.Errorf("UPDATE leaderboards %v", err)
		}
		return nil
	case leaderboard.Replaced:
		err = s.execOne(ctx, tx, "DELETE FROM leaderboards WHERE domain=? AND entity_id=?",
			domain, ejected.EntityID)
		if err != nil {
			return fmt.Errorf("DELETE leaderboards %v", err)
		}
	}
	cols := []string{"domain", "entity_id", "burned_amount"}
	err = s.execOne(ctx, tx, buildInsertionSQL("leaderboards", cols), domain, entityID, burnedAmount)
	if err != nil {
		return fmt.Errorf("INSERT leaderboards %v", err)
	}
	return nil
}

func boardPropertyKey(domain string) string {
	return "leaderboard-" + domain
}
