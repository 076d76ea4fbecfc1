package chain

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func TestDerivedAddresses(t *testing.T) {
	require := require.New(t)

	user := solana.NewWallet().PublicKey()
	require.Equal(ProfileAddress(user), ProfileAddress(user))
	require.NotEqual(ProfileAddress(user), ProfileAddress(solana.NewWallet().PublicKey()))
	require.NotEqual(ProfileAddress(user), BlogAddress(user))
	require.NotEqual(ProfileAddress(user), UserBurnStatsAddress(user))

	require.Equal(ChatGroupAddress(7), ChatGroupAddress(7))
	require.NotEqual(ChatGroupAddress(7), ChatGroupAddress(8))
	require.NotEqual(ChatGroupAddress(7), ProjectAddress(7))
	require.NotEqual(ProjectAddress(7), PostAddress(7))

	require.NotEqual(CounterAddress(ChatProgramID), CounterAddress(ProjectProgramID))
	require.NotEqual(LeaderboardAddress(ChatProgramID), LeaderboardAddress(ProjectProgramID))
	require.Equal(MintAuthorityAddress(), MintAuthorityAddress())
}
