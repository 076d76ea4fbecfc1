// Package minter implements the shared mint primitive. The amount minted is
// never chosen by the caller: it follows a discrete schedule driven by the
// current supply, under a module-derived mint authority.
package minter

import (
	"context"
	"errors"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/gagliardetto/solana-go"
	"github.com/xenartist/memo-token/chain"
)

const (
	decimalFactor = 1_000_000

	// MaxSupply is the hard cap: ten trillion tokens in base units.
	MaxSupply = 10_000_000_000_000 * decimalFactor
)

var (
	ErrUnauthorizedMint     = errors.New("unauthorized mint")
	ErrInvalidMintAuthority = errors.New("mint authority does not match the module-derived address")
	ErrSupplyLimitReached   = errors.New("supply limit reached")
)

// Mint is the minter's view of the token mint record.
type Mint struct {
	Address   solana.PublicKey
	Authority solana.PublicKey
	Supply    uint64
}

// Ledger is the token-ledger surface the minter requires for its read-only
// checks. The credit happens in the caller's store transaction together with
// the entity mutation.
type Ledger interface {
	ReadMint(ctx context.Context) (*Mint, error)
}

// IssueAmount computes the supply-dependent mint amount in base units. The
// reward decays by decade of supply, from one whole token down to a single
// base unit, and the hard cap is enforced on both sides of the mint.
func IssueAmount(supply uint64) (uint64, error) {
	if supply >= MaxSupply {
		return 0, ErrSupplyLimitReached
	}
	var amount uint64
	switch {
	case supply <= 100_000_000*decimalFactor:
		amount = 1_000_000
	case supply <= 1_000_000_000*decimalFactor:
		amount = 100_000
	case supply <= 10_000_000_000*decimalFactor:
		amount = 10_000
	case supply <= 100_000_000_000*decimalFactor:
		amount = 1_000
	case supply <= 1_000_000_000_000*decimalFactor:
		amount = 100
	default:
		amount = 1
	}
	if supply+amount > MaxSupply {
		return 0, ErrSupplyLimitReached
	}
	return amount, nil
}

type Module struct {
	mint   solana.PublicKey
	ledger Ledger
}

func NewModule(mint solana.PublicKey, ledger Ledger) *Module {
	return &Module{mint: mint, ledger: ledger}
}

// Authority returns the program-derived mint authority for the minter
// module.
func (m *Module) Authority() solana.PublicKey {
	return chain.MintAuthorityAddress()
}

// VerifyMint checks the mint record and its derived authority, then returns
// the scheduled amount for the current supply. The memo presence and shape
// are the caller's concern; the caller credits the returned amount
// atomically with the entity mutation.
func (m *Module) VerifyMint(ctx context.Context) (uint64, error) {
	mint, err := m.ledger.ReadMint(ctx)
	if err != nil {
		return 0, err
	}
	if mint == nil || mint.Address != m.mint {
		return 0, ErrUnauthorizedMint
	}
	if mint.Authority != m.Authority() {
		return 0, ErrInvalidMintAuthority
	}

	amount, err := IssueAmount(mint.Supply)
	logger.Verbosef("minter.VerifyMint(%d) => %d %v", mint.Supply, amount, err)
	return amount, err
}
