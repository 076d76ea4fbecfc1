package cmd

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

func tokens(units uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(units), -6)
}

// LeaderboardCmd prints a domain leaderboard sorted by burned amount. The
// store keeps entries unordered; ranking is a display concern.
func LeaderboardCmd(c *cli.Context) error {
	ctx := context.Background()
	s, err := readOnlyStore(c)
	if err != nil {
		return err
	}
	defer s.Close()

	board, err := s.ReadLeaderboard(ctx, c.String("domain"))
	if err != nil {
		return err
	}
	entries := board.Entries
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].BurnedAmount > entries[j].BurnedAmount
	})
	for i, e := range entries {
		fmt.Printf("%d\t%d\t%s\n", i+1, e.EntityID, tokens(e.BurnedAmount))
	}
	return nil
}

// EventsCmd prints the most recent events of a category.
func EventsCmd(c *cli.Context) error {
	ctx := context.Background()
	s, err := readOnlyStore(c)
	if err != nil {
		return err
	}
	defer s.Close()

	events, err := s.ListEvents(ctx, c.String("category"), c.Int("limit"))
	if err != nil {
		return err
	}
	for _, e := range events {
		fmt.Printf("%d\t%s\t%s\t%s\t%s\t%s\n", e.Timestamp, e.Operation, e.Entity, e.Subject, tokens(e.Amount), e.Snapshot)
	}
	return nil
}

// AccountCmd prints a user's token balance and global burn stats.
func AccountCmd(c *cli.Context) error {
	ctx := context.Background()
	user, err := solana.PublicKeyFromBase58(c.String("user"))
	if err != nil {
		return err
	}
	s, err := readOnlyStore(c)
	if err != nil {
		return err
	}
	defer s.Close()

	ta, err := s.ReadTokenAccount(ctx, user)
	if err != nil {
		return err
	}
	if ta != nil {
		fmt.Printf("balance:\t%s\n", tokens(ta.Balance))
	}
	stats, err := s.ReadBurnStats(ctx, user)
	if err != nil {
		return err
	}
	fmt.Printf("burned:\t%s\n", tokens(stats.TotalBurned))
	fmt.Printf("burns:\t%d\n", stats.BurnCount)
	return nil
}
