package keeper

import (
	"context"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/xenartist/memo-token/burner"
	"github.com/xenartist/memo-token/chain"
	"github.com/xenartist/memo-token/memo"
)

// CreateBlog handles the blog creation instruction at index in batch. A
// signer owns at most one blog, keyed by their pubkey.
func (node *Node) CreateBlog(ctx context.Context, batch *chain.Batch, index int, amount uint64) error {
	err := node.createBlog(ctx, batch, index, amount)
	logger.Printf("keeper.CreateBlog(%s, %d) => %v", batch.Signer, amount, err)
	return err
}

func (node *Node) createBlog(ctx context.Context, batch *chain.Batch, index int, amount uint64) error {
	env, err := node.readPayload(batch, index, memo.PositionStrict)
	if err != nil {
		return err
	}
	data, err := memo.DecodeBlogCreation(env.Payload)
	if err != nil {
		return err
	}
	err = data.Validate(batch.Signer)
	if err != nil {
		return err
	}
	err = burner.ValidateAmount(amount, MinBurnDefault)
	if err != nil {
		return err
	}
	err = node.burner.VerifyBurn(ctx, batch.Signer, env, amount)
	if err != nil {
		return err
	}
	return node.store.WriteBlogCreation(ctx, data, amount, batch.Timestamp)
}

// UpdateBlog handles the blog update instruction at index in batch.
func (node *Node) UpdateBlog(ctx context.Context, batch *chain.Batch, index int, amount uint64) error {
	err := node.updateBlog(ctx, batch, index, amount)
	logger.Printf("keeper.UpdateBlog(%s, %d) => %v", batch.Signer, amount, err)
	return err
}

func (node *Node) updateBlog(ctx context.Context, batch *chain.Batch, index int, amount uint64) error {
	env, err := node.readPayload(batch, index, memo.PositionStrict)
	if err != nil {
		return err
	}
	data, err := memo.DecodeBlogUpdate(env.Payload)
	if err != nil {
		return err
	}
	err = data.Validate(batch.Signer)
	if err != nil {
		return err
	}
	err = burner.ValidateAmount(amount, MinBurnDefault)
	if err != nil {
		return err
	}
	err = node.burner.VerifyBurn(ctx, batch.Signer, env, amount)
	if err != nil {
		return err
	}
	return node.store.WriteBlogUpdate(ctx, data, amount, batch.Timestamp)
}

// BurnForBlog handles the blog burn instruction at index in batch.
func (node *Node) BurnForBlog(ctx context.Context, batch *chain.Batch, index int, amount uint64) error {
	err := node.burnForBlog(ctx, batch, index, amount)
	logger.Printf("keeper.BurnForBlog(%s, %d) => %v", batch.Signer, amount, err)
	return err
}

func (node *Node) burnForBlog(ctx context.Context, batch *chain.Batch, index int, amount uint64) error {
	env, err := node.readPayload(batch, index, memo.PositionStrict)
	if err != nil {
		return err
	}
	data, err := memo.DecodeBlogBurn(env.Payload)
	if err != nil {
		return err
	}
	err = data.Validate(batch.Signer)
	if err != nil {
		return err
	}
	err = burner.ValidateAmount(amount, MinBurnDefault)
	if err != nil {
		return err
	}
	err = node.burner.VerifyBurn(ctx, batch.Signer, env, amount)
	if err != nil {
		return err
	}
	return node.store.WriteBlogBurn(ctx, data, amount, batch.Timestamp)
}

// MintForBlog handles the blog mint instruction at index in batch. The
// minted amount follows the supply schedule and the memo must declare a zero
// amount.
func (node *Node) MintForBlog(ctx context.Context, batch *chain.Batch, index int) error {
	err := node.mintForBlog(ctx, batch, index)
	logger.Printf("keeper.MintForBlog(%s) => %v", batch.Signer, err)
	return err
}

func (node *Node) mintForBlog(ctx context.Context, batch *chain.Batch, index int) error {
	env, err := node.readPayload(batch, index, memo.PositionStrict)
	if err != nil {
		return err
	}
	err = checkMintEnvelope(env)
	if err != nil {
		return err
	}
	data, err := memo.DecodeBlogMint(env.Payload)
	if err != nil {
		return err
	}
	err = data.Validate(batch.Signer)
	if err != nil {
		return err
	}
	minted, err := node.minter.VerifyMint(ctx)
	if err != nil {
		return err
	}
	return node.store.WriteBlogMint(ctx, data, minted, batch.Timestamp)
}
