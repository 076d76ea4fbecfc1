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
	ErrProfileExists   = errors.New("profile already exists")
	ErrProfileNotFound = errors.New("profile not found")
)

type Profile struct {
	User        solana.PublicKey
	Address     solana.PublicKey
	Username    string
	Image       *string
	AboutMe     *string
	CreatedAt   int64
	LastUpdated int64
}

const profileQuery = "SELECT user,address,username,image,about_me,created_at,last_updated FROM profiles WHERE user=?"

func (s *SQLite3Store) ReadProfile(ctx context.Context, user solana.PublicKey) (*Profile, error) {
	return profileFromRow(s.db.QueryRowContext(ctx, profileQuery, user.String()))
}

// WriteProfileCreation records a new profile together with its creation
// burn and event. The burn only commits when the whole mutation does.
func (s *SQLite3Store) WriteProfileCreation(ctx context.Context, data *memo.ProfileCreationData, amount uint64, timestamp int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer common.Rollback(tx)

	user := solana.MustPublicKeyFromBase58(data.User)
	existed, err := s.checkExistence(ctx, tx, "SELECT user FROM profiles WHERE user=?", data.User)
	if err != nil {
		return err
	}
	if existed {
		return ErrProfileExists
	}
	err = s.burnTokens(ctx, tx, user, amount)
	if err != nil {
		return err
	}

	address := chain.ProfileAddress(user)
	cols := []string{"user", "address", "username", "image", "about_me", "created_at", "last_updated"}
	vals := []any{data.User, address.String(), data.Username, data.Image, data.AboutMe, timestamp, timestamp}
	err = s.execOne(ctx, tx, buildInsertionSQL("profiles", cols), vals...)
	if err != nil {
		return fmt.Errorf("INSERT profiles %v", err)
	}

	err = s.writeProfileEvent(ctx, tx, data.Operation, data.User, data, amount, timestamp)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// WriteProfileUpdate applies the optional field overrides the memo carried
// and refreshes last_updated, debiting the update burn in the same
// transaction.
func (s *SQLite3Store) WriteProfileUpdate(ctx context.Context, data *memo.ProfileUpdateData, amount uint64, timestamp int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer common.Rollback(tx)

	p, err := profileFromRow(tx.QueryRowContext(ctx, profileQuery, data.User))
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProfileNotFound
	}
	err = s.burnTokens(ctx, tx, p.User, amount)
	if err != nil {
		return err
	}
	if data.Username != nil {
		p.Username = *data.Username
	}
	if data.Image != nil {
		p.Image = data.Image
	}
	if data.AboutMe != nil {
		p.AboutMe = data.AboutMe
	}
	err = s.execOne(ctx, tx, "UPDATE profiles SET username=?, image=?, about_me=?, last_updated=? WHERE user=?",
		p.Username, p.Image, p.AboutMe, timestamp, data.User)
	if err != nil {
		return fmt.Errorf("UPDATE profiles %v", err)
	}

	err = s.writeProfileEvent(ctx, tx, data.Operation, data.User, data, amount, timestamp)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// WriteProfileDeletion closes the signer's profile record. Deletion burns
// nothing; the event snapshots the record as it was closed.
func (s *SQLite3Store) WriteProfileDeletion(ctx context.Context, user solana.PublicKey, timestamp int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer common.Rollback(tx)

	p, err := profileFromRow(tx.QueryRowContext(ctx, profileQuery, user.String()))
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProfileNotFound
	}
	err = s.execOne(ctx, tx, "DELETE FROM profiles WHERE user=?", user.String())
	if err != nil {
		return fmt.Errorf("DELETE profiles %v", err)
	}

	snapshot := map[string]string{"user": user.String(), "username": p.Username}
	err = s.writeProfileEvent(ctx, tx, memo.OperationDeleteProfile, user.String(), snapshot, 0, timestamp)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLite3Store) writeProfileEvent(ctx context.Context, tx *sql.Tx, operation, user string, data any, amount uint64, timestamp int64) error {
	row := tx.QueryRowContext(ctx, "SELECT total_burned FROM burn_stats WHERE user=?", user)
	var total uint64
	err := row.Scan(&total)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	snapshot, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.writeEvent(ctx, tx, &Event{
		Category:    memo.CategoryProfile,
		Operation:   operation,
		Entity:      user,
		Subject:     user,
		Snapshot:    string(snapshot),
		Amount:      amount,
		TotalBurned: total,
		Timestamp:   timestamp,
	})
}

func profileFromRow(row *sql.Row) (*Profile, error) {
	var user, address string
	var image, aboutMe sql.NullString
	var p Profile
	err := row.Scan(&user, &address, &p.Username, &image, &aboutMe, &p.CreatedAt, &p.LastUpdated)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	p.User = solana.MustPublicKeyFromBase58(user)
	p.Address = solana.MustPublicKeyFromBase58(address)
	if image.Valid {
		p.Image = &image.String
	}
	if aboutMe.Valid {
		p.AboutMe = &aboutMe.String
	}
	return &p, nil
}
