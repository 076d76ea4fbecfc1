// Package burner implements the shared burn primitive. Module instructions
// delegate here after their own payload validation; the burner re-checks the
// numeric rules and the signer's token account, while the debit itself
// settles inside the same store transaction as the entity mutation.
package burner

import (
	"context"
	"errors"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/gagliardetto/solana-go"
	"github.com/xenartist/memo-token/memo"
)

const (
	// DecimalFactor converts whole tokens to base units.
	DecimalFactor = 1_000_000

	// MinBurnTokens is the burner's own floor; domains layer their
	// per-operation minimums on top.
	MinBurnTokens = 1

	// MaxBurnPerTx caps a single burn at one trillion tokens.
	MaxBurnPerTx = 1_000_000_000_000 * DecimalFactor
)

var (
	ErrBurnAmountTooSmall       = errors.New("burn amount too small")
	ErrBurnAmountTooLarge       = errors.New("burn amount too large: maximum 1,000,000,000,000 tokens per transaction")
	ErrInvalidBurnAmount        = errors.New("invalid burn amount: whole tokens only")
	ErrInvalidTokenAccount      = errors.New("invalid token account for this mint")
	ErrUnauthorizedTokenAccount = errors.New("token account not owned by the signer")
	ErrInsufficientBalance      = errors.New("token balance below burn amount")
)

// TokenAccount is the burner's view of a per-owner token account.
type TokenAccount struct {
	Owner   solana.PublicKey
	Mint    solana.PublicKey
	Balance uint64
}

// BurnStats aggregates a user's burns across every domain.
type BurnStats struct {
	User        solana.PublicKey
	TotalBurned uint64
	BurnCount   uint64
}

// Ledger is the token-ledger surface the burner requires for its read-only
// checks. The debit happens in the caller's store transaction so a failed
// entity mutation never leaves a committed burn behind.
type Ledger interface {
	ReadTokenAccount(ctx context.Context, owner solana.PublicKey) (*TokenAccount, error)
}

// ValidateAmount runs the numeric burn rules with a per-operation minimum
// expressed in whole tokens.
func ValidateAmount(amount, minTokens uint64) error {
	if amount < minTokens*DecimalFactor {
		return ErrBurnAmountTooSmall
	}
	if amount > MaxBurnPerTx {
		return ErrBurnAmountTooLarge
	}
	if amount%DecimalFactor != 0 {
		return ErrInvalidBurnAmount
	}
	return nil
}

type Module struct {
	mint   solana.PublicKey
	ledger Ledger
}

func NewModule(mint solana.PublicKey, ledger Ledger) *Module {
	return &Module{mint: mint, ledger: ledger}
}

// VerifyBurn checks every burn precondition without moving tokens: the
// numeric rules, the envelope's declared amount against the instruction
// argument, and the signer's token account. The caller debits the verified
// amount atomically with the entity mutation.
func (m *Module) VerifyBurn(ctx context.Context, signer solana.PublicKey, env *memo.Envelope, amount uint64) error {
	err := ValidateAmount(amount, MinBurnTokens)
	if err != nil {
		return err
	}
	if env.Amount != amount {
		return memo.ErrBurnAmountMismatch
	}

	ta, err := m.ledger.ReadTokenAccount(ctx, signer)
	if err != nil {
		return err
	}
	if ta == nil || ta.Mint != m.mint {
		return ErrInvalidTokenAccount
	}
	if ta.Owner != signer {
		return ErrUnauthorizedTokenAccount
	}
	if ta.Balance < amount {
		return ErrInsufficientBalance
	}
	logger.Verbosef("burner.VerifyBurn(%s, %d) => balance %d", signer, amount, ta.Balance)
	return nil
}
