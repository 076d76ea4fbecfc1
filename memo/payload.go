package memo

import (
	"github.com/gagliardetto/solana-go"
)

// Domain category literals. Every inner record carries its category and
// operation as strings which must match the executing module exactly.
const (
	CategoryProfile = "profile"
	CategoryChat    = "chat"
	CategoryProject = "project"
	CategoryBlog    = "blog"
	CategoryForum   = "forum"
)

// The literal comparisons check value and byte length separately. String
// equality in Go already implies equal length, so the length branch runs
// first to keep the dedicated error reachable.
func checkLiteral(got, want string, errValue, errLength error) error {
	if len(got) != len(want) {
		return errLength
	}
	if got != want {
		return errValue
	}
	return nil
}

// checkPubkey re-parses a payload-embedded base58 pubkey string and compares
// it to the runtime-observed signer. Binding the string form to the signer
// defeats memo reuse across transactions.
func checkPubkey(s string, expected solana.PublicKey, errFormat, errMismatch error) error {
	pub, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return errFormat
	}
	if pub != expected {
		return errMismatch
	}
	return nil
}
