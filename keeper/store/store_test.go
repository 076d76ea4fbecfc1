package store

import (
	"context"
	"os"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
	"github.com/xenartist/memo-token/chain"
	"github.com/xenartist/memo-token/leaderboard"
	"github.com/xenartist/memo-token/memo"
)

func testStore(t *testing.T) (*SQLite3Store, func()) {
	require := require.New(t)
	root, err := os.MkdirTemp("", "memo-token-store-test")
	require.Nil(err)
	s, err := OpenSQLite3Store(root + "/memo.sqlite3")
	require.Nil(err)
	return s, func() {
		s.Close()
		os.RemoveAll(root)
	}
}

func TestProperties(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	s, cleanup := testStore(t)
	defer cleanup()

	v, err := s.ReadProperty(ctx, "missing")
	require.Nil(err)
	require.Equal("", v)

	require.Nil(s.WriteProperty(ctx, "genesis", "done"))
	v, err = s.ReadProperty(ctx, "genesis")
	require.Nil(err)
	require.Equal("done", v)
}

func TestCounter(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	s, cleanup := testStore(t)
	defer cleanup()

	_, err := s.ReadCounter(ctx, CounterDomainProject)
	require.ErrorIs(err, ErrCounterNotInitialized)

	require.Nil(s.InitializeCounter(ctx, CounterDomainProject, chain.ProjectProgramID))
	next, err := s.ReadCounter(ctx, CounterDomainProject)
	require.Nil(err)
	require.Equal(uint64(0), next)

	// double init fails
	err = s.InitializeCounter(ctx, CounterDomainProject, chain.ProjectProgramID)
	require.NotNil(err)

	tx, err := s.db.BeginTx(ctx, nil)
	require.Nil(err)
	err = s.bumpCounter(ctx, tx, CounterDomainProject, 1, memo.ErrProjectIdMismatch)
	require.ErrorIs(err, memo.ErrProjectIdMismatch)
	require.Nil(s.bumpCounter(ctx, tx, CounterDomainProject, 0, memo.ErrProjectIdMismatch))
	require.Nil(tx.Commit())

	next, err = s.ReadCounter(ctx, CounterDomainProject)
	require.Nil(err)
	require.Equal(uint64(1), next)
}

func TestLeaderboardPersistence(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	s, cleanup := testStore(t)
	defer cleanup()

	_, err := s.ReadLeaderboard(ctx, BoardDomainProject)
	require.ErrorIs(err, ErrBoardNotInitialized)

	require.Nil(s.InitializeLeaderboard(ctx, BoardDomainProject, chain.LeaderboardAddress(chain.ProjectProgramID)))

	apply := func(entityID, amount uint64) {
		tx, err := s.db.BeginTx(ctx, nil)
		require.Nil(err)
		require.Nil(s.updateLeaderboard(ctx, tx, BoardDomainProject, entityID, amount))
		require.Nil(tx.Commit())
	}

	for i := uint64(0); i < leaderboard.Capacity; i++ {
		apply(i, (i+1)*1000)
	}
	board, err := s.ReadLeaderboard(ctx, BoardDomainProject)
	require.Nil(err)
	require.Len(board.Entries, leaderboard.Capacity)
	require.Equal(uint64(1000), board.Min())

	// rejected amounts leave the rows untouched
	apply(7000, 1000)
	board, err = s.ReadLeaderboard(ctx, BoardDomainProject)
	require.Nil(err)
	require.Len(board.Entries, leaderboard.Capacity)
	require.Equal(uint64(1000), board.Min())

	// a strictly greater amount replaces the minimum row
	apply(7000, 1001)
	board, err = s.ReadLeaderboard(ctx, BoardDomainProject)
	require.Nil(err)
	require.Len(board.Entries, leaderboard.Capacity)
	require.Equal(uint64(1001), board.Min())
	found := false
	for _, e := range board.Entries {
		// entity 0 held the old minimum and must be gone
		require.NotEqual(uint64(0), e.EntityID)
		if e.EntityID == 7000 {
			found = true
		}
	}
	require.True(found)

	// update in place for an incumbent
	apply(7000, 9_999_999)
	board, err = s.ReadLeaderboard(ctx, BoardDomainProject)
	require.Nil(err)
	require.Len(board.Entries, leaderboard.Capacity)
}

func TestTokenLedger(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	s, cleanup := testStore(t)
	defer cleanup()

	mint := solana.NewWallet().PublicKey()
	require.Nil(s.WriteMint(ctx, mint, 6))
	m, err := s.ReadMint(ctx)
	require.Nil(err)
	require.Equal(mint, m.Address)
	require.Equal(chain.MintAuthorityAddress(), m.Authority)
	require.Equal(uint64(0), m.Supply)

	// double init fails
	require.NotNil(s.WriteMint(ctx, mint, 6))

	owner := solana.NewWallet().PublicKey()
	require.Nil(s.OpenTokenAccount(ctx, owner, 5_000_000))
	ta, err := s.ReadTokenAccount(ctx, owner)
	require.Nil(err)
	require.Equal(mint, ta.Mint)
	require.Equal(uint64(5_000_000), ta.Balance)
	m, _ = s.ReadMint(ctx)
	require.Equal(uint64(5_000_000), m.Supply)

	require.Nil(s.BurnTokens(ctx, owner, 2_000_000))
	ta, _ = s.ReadTokenAccount(ctx, owner)
	require.Equal(uint64(3_000_000), ta.Balance)
	m, _ = s.ReadMint(ctx)
	require.Equal(uint64(3_000_000), m.Supply)

	stats, err := s.ReadBurnStats(ctx, owner)
	require.Nil(err)
	require.Equal(uint64(2_000_000), stats.TotalBurned)
	require.Equal(uint64(1), stats.BurnCount)

	// a burn past the balance fails and mutates nothing
	require.NotNil(s.BurnTokens(ctx, owner, 4_000_000))
	ta, _ = s.ReadTokenAccount(ctx, owner)
	require.Equal(uint64(3_000_000), ta.Balance)
	stats, _ = s.ReadBurnStats(ctx, owner)
	require.Equal(uint64(1), stats.BurnCount)

	require.Nil(s.MintTokens(ctx, owner, 1_000_000))
	ta, _ = s.ReadTokenAccount(ctx, owner)
	require.Equal(uint64(4_000_000), ta.Balance)
	m, _ = s.ReadMint(ctx)
	require.Equal(uint64(4_000_000), m.Supply)
}
