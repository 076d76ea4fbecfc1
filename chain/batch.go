package chain

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Instruction is one sibling instruction inside an atomic batch, reduced to
// what the memo protocol can observe through the instructions sysvar.
type Instruction struct {
	Program solana.PublicKey
	Data    []byte
}

// Batch models a single atomic multi-instruction transaction as seen by a
// module instruction: the ordered siblings, the fee-payer signer, and the
// cluster clock at execution time.
type Batch struct {
	Instructions []*Instruction
	Signer       solana.PublicKey
	Timestamp    int64
}

func (b *Batch) InstructionAt(index int) (*Instruction, error) {
	if index < 0 || index >= len(b.Instructions) {
		return nil, fmt.Errorf("chain.InstructionAt(%d) => out of range %d", index, len(b.Instructions))
	}
	return b.Instructions[index], nil
}

func (b *Batch) Size() int {
	return len(b.Instructions)
}
