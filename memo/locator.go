package memo

import (
	"github.com/gagliardetto/solana-go"
	"github.com/xenartist/memo-token/chain"
)

// MemoProgramID identifies the well-known memo program whose instruction
// carries the envelope text.
var MemoProgramID = solana.MustPublicKeyFromBase58("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")

// Position selects the positional rule a module enforces when locating the
// memo among its siblings.
type Position int

const (
	// PositionStrict requires the memo at index 0 with the module
	// instruction at index 1 or later. New modules use this.
	PositionStrict Position = iota

	// PositionCompat additionally accepts the memo at index 1 when the
	// module instruction is at index 2 or later, tolerating a compute-budget
	// preamble in slot 0. Compatibility shim for the chat domain.
	PositionCompat
)

// FindMemo locates and length-validates the memo instruction relative to the
// module instruction executing at current. The returned bytes are the raw
// memo transport text, still Base64-encoded.
func FindMemo(batch *chain.Batch, current int, pos Position) ([]byte, error) {
	if current < 1 {
		return nil, ErrMemoRequired
	}
	ix, err := batch.InstructionAt(0)
	if err != nil {
		return nil, ErrMemoRequired
	}
	if ix.Program == MemoProgramID {
		return validateMemoLength(ix.Data)
	}
	if pos == PositionCompat && current >= 2 {
		ix, err = batch.InstructionAt(1)
		if err != nil {
			return nil, ErrMemoRequired
		}
		if ix.Program == MemoProgramID {
			return validateMemoLength(ix.Data)
		}
	}
	return nil, ErrMemoRequired
}

func validateMemoLength(data []byte) ([]byte, error) {
	if len(data) < MemoMinLength {
		return nil, ErrMemoTooShort
	}
	if len(data) > MemoMaxLength {
		return nil, ErrMemoTooLong
	}
	return data, nil
}
