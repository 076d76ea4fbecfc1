package cmd

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/urfave/cli/v2"
	"github.com/xenartist/memo-token/config"
	"github.com/xenartist/memo-token/keeper"
	"github.com/xenartist/memo-token/keeper/store"
)

func keeperNode(c *cli.Context) (*keeper.Node, error) {
	mc, err := config.ReadConfiguration(c.String("config"))
	if err != nil {
		return nil, err
	}
	config.HandleDevConfig(mc.Dev)

	kd, err := store.OpenSQLite3Store(mc.Keeper.StoreDir + "/memo.sqlite3")
	if err != nil {
		return nil, err
	}
	return keeper.NewNode(mc.Keeper, kd)
}

func readOnlyStore(c *cli.Context) (*store.SQLite3Store, error) {
	mc, err := config.ReadConfiguration(c.String("config"))
	if err != nil {
		return nil, err
	}
	return store.OpenSQLite3ReadOnlyStore(mc.Keeper.StoreDir + "/memo.sqlite3")
}

// GenesisBootCmd initializes the mint, the per-domain id counters and the
// leaderboards, acting as the configured admin.
func GenesisBootCmd(c *cli.Context) error {
	ctx := context.Background()

	mc, err := config.ReadConfiguration(c.String("config"))
	if err != nil {
		return err
	}
	node, err := keeperNode(c)
	if err != nil {
		return err
	}
	defer node.Store().Close()

	admin, err := solana.PublicKeyFromBase58(mc.Keeper.Admin)
	if err != nil {
		return err
	}
	err = node.InitializeMint(ctx, admin, 6)
	if err != nil {
		return err
	}
	for _, domain := range []string{store.CounterDomainChat, store.CounterDomainProject, store.CounterDomainForum} {
		err = node.InitializeCounter(ctx, admin, domain)
		if err != nil {
			return err
		}
	}
	for _, domain := range []string{store.BoardDomainChat, store.BoardDomainProject} {
		err = node.InitializeLeaderboard(ctx, admin, domain)
		if err != nil {
			return err
		}
	}
	return nil
}
