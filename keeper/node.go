// Package keeper orchestrates module instructions. Every operation runs the
// same shape: locate and decode the memo, validate the typed payload against
// the batch signer, reconcile amounts, verify the token movement, then
// persist the entity mutation, the token movement and the event in one
// store transaction.
package keeper

import (
	"context"
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/xenartist/memo-token/burner"
	"github.com/xenartist/memo-token/chain"
	"github.com/xenartist/memo-token/keeper/store"
	"github.com/xenartist/memo-token/memo"
	"github.com/xenartist/memo-token/minter"
)

// Per-operation burn minimums in whole tokens.
const (
	MinBurnProfile        = 420
	MinBurnProjectManage  = 42069
	MinBurnProjectSupport = 420
	MinBurnDefault        = 1
)

var ErrUnauthorizedAdmin = errors.New("unauthorized admin")

type Configuration struct {
	StoreDir string `toml:"store-dir"`
	Admin    string `toml:"admin"`
	Mint     string `toml:"mint"`
}

type Node struct {
	conf   *Configuration
	store  *store.SQLite3Store
	burner *burner.Module
	minter *minter.Module
	admin  solana.PublicKey
	mint   solana.PublicKey
}

func NewNode(conf *Configuration, s *store.SQLite3Store) (*Node, error) {
	admin, err := solana.PublicKeyFromBase58(conf.Admin)
	if err != nil {
		return nil, err
	}
	mint, err := solana.PublicKeyFromBase58(conf.Mint)
	if err != nil {
		return nil, err
	}
	return &Node{
		conf:   conf,
		store:  s,
		burner: burner.NewModule(mint, s),
		minter: minter.NewModule(mint, s),
		admin:  admin,
		mint:   mint,
	}, nil
}

func (node *Node) Store() *store.SQLite3Store {
	return node.store
}

// InitializeMint records the token mint at genesis. Admin only.
func (node *Node) InitializeMint(ctx context.Context, signer solana.PublicKey, decimals uint8) error {
	if signer != node.admin {
		return ErrUnauthorizedAdmin
	}
	return node.store.WriteMint(ctx, node.mint, decimals)
}

// InitializeCounter creates a domain id counter at zero. Admin only.
func (node *Node) InitializeCounter(ctx context.Context, signer solana.PublicKey, domain string) error {
	if signer != node.admin {
		return ErrUnauthorizedAdmin
	}
	program, err := counterProgram(domain)
	if err != nil {
		return err
	}
	return node.store.InitializeCounter(ctx, domain, program)
}

// InitializeLeaderboard enables rankings for a domain. Admin only.
func (node *Node) InitializeLeaderboard(ctx context.Context, signer solana.PublicKey, domain string) error {
	if signer != node.admin {
		return ErrUnauthorizedAdmin
	}
	program, err := boardProgram(domain)
	if err != nil {
		return err
	}
	return node.store.InitializeLeaderboard(ctx, domain, chain.LeaderboardAddress(program))
}

func counterProgram(domain string) (solana.PublicKey, error) {
	switch domain {
	case store.CounterDomainChat:
		return chain.ChatProgramID, nil
	case store.CounterDomainProject:
		return chain.ProjectProgramID, nil
	case store.CounterDomainForum:
		return chain.ForumProgramID, nil
	}
	return solana.PublicKey{}, errors.New("unknown counter domain " + domain)
}

func boardProgram(domain string) (solana.PublicKey, error) {
	switch domain {
	case store.BoardDomainChat:
		return chain.ChatProgramID, nil
	case store.BoardDomainProject:
		return chain.ProjectProgramID, nil
	}
	return solana.PublicKey{}, errors.New("unknown leaderboard domain " + domain)
}

// readPayload runs the shared front half of every operation: locate the
// memo, decode its envelope and return the inner payload with the envelope.
func (node *Node) readPayload(batch *chain.Batch, index int, pos memo.Position) (*memo.Envelope, error) {
	data, err := memo.FindMemo(batch, index, pos)
	if err != nil {
		return nil, err
	}
	return memo.DecodeEnvelope(data)
}

// checkMintEnvelope enforces the zero declared amount on mint-bearing
// operations.
func checkMintEnvelope(env *memo.Envelope) error {
	if env.Amount != 0 {
		return memo.ErrInvalidMintMemoFormat
	}
	return nil
}
