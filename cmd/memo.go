package cmd

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"github.com/xenartist/memo-token/memo"
)

var decimalFactor = decimal.New(1, 6)

// EncodeMemoCmd wraps a payload in the transport envelope. The amount flag
// is in whole or fractional tokens and must land on a whole base unit.
func EncodeMemoCmd(c *cli.Context) error {
	amount, err := decimal.NewFromString(c.String("amount"))
	if err != nil {
		return err
	}
	units := amount.Mul(decimalFactor)
	if !units.IsInteger() || units.IsNegative() {
		return fmt.Errorf("invalid amount %s", amount)
	}
	payload := []byte(c.String("payload"))
	if len(payload) > memo.MaxPayloadLength {
		return memo.ErrPayloadTooLong
	}
	env := &memo.Envelope{
		Version: memo.EnvelopeVersion,
		Amount:  units.BigInt().Uint64(),
		Payload: payload,
	}
	fmt.Println(string(env.Encode()))
	return nil
}

// DecodeMemoCmd reverses EncodeMemoCmd and prints the envelope fields.
func DecodeMemoCmd(c *cli.Context) error {
	env, err := memo.DecodeEnvelope([]byte(c.String("data")))
	if err != nil {
		return err
	}
	amount := decimal.NewFromBigInt(new(big.Int).SetUint64(env.Amount), -6)
	fmt.Printf("version:\t%d\n", env.Version)
	fmt.Printf("amount:\t%s\n", amount)
	fmt.Printf("payload:\t%d bytes\n", len(env.Payload))
	fmt.Printf("%x\n", env.Payload)
	return nil
}
