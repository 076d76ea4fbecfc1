package minter

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
	"github.com/xenartist/memo-token/chain"
)

type testLedger struct {
	mint *Mint
}

func (l *testLedger) ReadMint(ctx context.Context) (*Mint, error) {
	return l.mint, nil
}

func TestIssueAmount(t *testing.T) {
	require := require.New(t)

	token := uint64(decimalFactor)
	cases := []struct {
		supply uint64
		amount uint64
	}{
		{0, token},
		{100_000_000 * token, token},
		{100_000_000*token + 1, token / 10},
		{1_000_000_000 * token, token / 10},
		{1_000_000_000*token + 1, token / 100},
		{10_000_000_000 * token, token / 100},
		{100_000_000_000 * token, token / 1000},
		{1_000_000_000_000 * token, token / 10000},
		{1_000_000_000_000*token + 1, 1},
		{MaxSupply - 1, 1},
	}
	for _, c := range cases {
		amount, err := IssueAmount(c.supply)
		require.Nil(err)
		require.Equal(c.amount, amount, "supply %d", c.supply)
	}

	_, err := IssueAmount(MaxSupply)
	require.ErrorIs(err, ErrSupplyLimitReached)
}

func TestVerifyMint(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	mint := solana.NewWallet().PublicKey()
	ledger := &testLedger{mint: &Mint{
		Address:   mint,
		Authority: chain.MintAuthorityAddress(),
		Supply:    0,
	}}
	module := NewModule(mint, ledger)

	amount, err := module.VerifyMint(ctx)
	require.Nil(err)
	require.Equal(uint64(decimalFactor), amount)
	// verification never grows the supply
	require.Equal(uint64(0), ledger.mint.Supply)

	// wrong mint record
	other := NewModule(solana.NewWallet().PublicKey(), ledger)
	_, err = other.VerifyMint(ctx)
	require.ErrorIs(err, ErrUnauthorizedMint)

	// authority must be the derived address
	ledger.mint.Authority = solana.NewWallet().PublicKey()
	_, err = module.VerifyMint(ctx)
	require.ErrorIs(err, ErrInvalidMintAuthority)
	ledger.mint.Authority = chain.MintAuthorityAddress()

	// the cap rejects before any credit
	ledger.mint.Supply = MaxSupply
	_, err = module.VerifyMint(ctx)
	require.ErrorIs(err, ErrSupplyLimitReached)
}
