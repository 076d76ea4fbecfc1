package memo

import (
	"bytes"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
	"github.com/xenartist/memo-token/chain"
)

func TestFindMemoStrict(t *testing.T) {
	require := require.New(t)

	data := testMemoData()
	batch := &chain.Batch{
		Instructions: []*chain.Instruction{
			{Program: MemoProgramID, Data: data},
			{Program: chain.ProjectProgramID},
		},
		Signer: solana.NewWallet().PublicKey(),
	}

	found, err := FindMemo(batch, 1, PositionStrict)
	require.Nil(err)
	require.Equal(data, found)

	// the module instruction itself can never be at index 0
	_, err = FindMemo(batch, 0, PositionStrict)
	require.ErrorIs(err, ErrMemoRequired)

	// memo not in slot 0
	batch.Instructions[0].Program = chain.BurnProgramID
	_, err = FindMemo(batch, 1, PositionStrict)
	require.ErrorIs(err, ErrMemoRequired)
}

func TestFindMemoCompat(t *testing.T) {
	require := require.New(t)

	data := testMemoData()
	batch := &chain.Batch{
		Instructions: []*chain.Instruction{
			{Program: chain.BurnProgramID},
			{Program: MemoProgramID, Data: data},
			{Program: chain.ChatProgramID},
		},
	}

	found, err := FindMemo(batch, 2, PositionCompat)
	require.Nil(err)
	require.Equal(data, found)

	// strict mode never looks at slot 1
	_, err = FindMemo(batch, 2, PositionStrict)
	require.ErrorIs(err, ErrMemoRequired)

	// compat still requires the module instruction past the memo
	_, err = FindMemo(batch, 1, PositionCompat)
	require.ErrorIs(err, ErrMemoRequired)
}

func TestFindMemoLength(t *testing.T) {
	require := require.New(t)

	batch := &chain.Batch{
		Instructions: []*chain.Instruction{
			{Program: MemoProgramID, Data: bytes.Repeat([]byte{'A'}, MemoMinLength-1)},
			{Program: chain.ProjectProgramID},
		},
	}
	_, err := FindMemo(batch, 1, PositionStrict)
	require.ErrorIs(err, ErrMemoTooShort)

	batch.Instructions[0].Data = bytes.Repeat([]byte{'A'}, MemoMaxLength+1)
	_, err = FindMemo(batch, 1, PositionStrict)
	require.ErrorIs(err, ErrMemoTooLong)

	batch.Instructions[0].Data = bytes.Repeat([]byte{'A'}, MemoMaxLength)
	found, err := FindMemo(batch, 1, PositionStrict)
	require.Nil(err)
	require.Len(found, MemoMaxLength)
}

func testMemoData() []byte {
	env := &Envelope{Version: EnvelopeVersion, Amount: 1_000_000, Payload: bytes.Repeat([]byte{7}, 64)}
	return env.Encode()
}
