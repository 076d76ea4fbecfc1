package keeper

import (
	"context"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/xenartist/memo-token/burner"
	"github.com/xenartist/memo-token/chain"
	"github.com/xenartist/memo-token/memo"
)

// CreatePost handles the post creation instruction at index in batch,
// claiming postID from the forum counter.
func (node *Node) CreatePost(ctx context.Context, batch *chain.Batch, index int, postID, amount uint64) error {
	err := node.createPost(ctx, batch, index, postID, amount)
	logger.Printf("keeper.CreatePost(%s, %d, %d) => %v", batch.Signer, postID, amount, err)
	return err
}

func (node *Node) createPost(ctx context.Context, batch *chain.Batch, index int, postID, amount uint64) error {
	env, err := node.readPayload(batch, index, memo.PositionStrict)
	if err != nil {
		return err
	}
	data, err := memo.DecodePostCreation(env.Payload)
	if err != nil {
		return err
	}
	err = data.Validate(batch.Signer, postID)
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
	return node.store.WritePostCreation(ctx, data, amount, batch.Timestamp)
}

// BurnForPost handles the reply burn instruction at index in batch.
func (node *Node) BurnForPost(ctx context.Context, batch *chain.Batch, index int, postID, amount uint64) error {
	err := node.burnForPost(ctx, batch, index, postID, amount)
	logger.Printf("keeper.BurnForPost(%s, %d, %d) => %v", batch.Signer, postID, amount, err)
	return err
}

func (node *Node) burnForPost(ctx context.Context, batch *chain.Batch, index int, postID, amount uint64) error {
	env, err := node.readPayload(batch, index, memo.PositionStrict)
	if err != nil {
		return err
	}
	data, err := memo.DecodePostBurn(env.Payload)
	if err != nil {
		return err
	}
	err = data.Validate(batch.Signer, postID)
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
	return node.store.WritePostBurn(ctx, data, amount, batch.Timestamp)
}

// MintForPost handles the reply mint instruction at index in batch.
func (node *Node) MintForPost(ctx context.Context, batch *chain.Batch, index int, postID uint64) error {
	err := node.mintForPost(ctx, batch, index, postID)
	logger.Printf("keeper.MintForPost(%s, %d) => %v", batch.Signer, postID, err)
	return err
}

func (node *Node) mintForPost(ctx context.Context, batch *chain.Batch, index int, postID uint64) error {
	env, err := node.readPayload(batch, index, memo.PositionStrict)
	if err != nil {
		return err
	}
	err = checkMintEnvelope(env)
	if err != nil {
		return err
	}
	data, err := memo.DecodePostMint(env.Payload)
	if err != nil {
		return err
	}
	err = data.Validate(batch.Signer, postID)
	if err != nil {
		return err
	}
	minted, err := node.minter.VerifyMint(ctx)
	if err != nil {
		return err
	}
	return node.store.WritePostMint(ctx, data, minted, batch.Timestamp)
}
