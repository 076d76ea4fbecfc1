package keeper

import (
	"context"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/xenartist/memo-token/burner"
	"github.com/xenartist/memo-token/chain"
	"github.com/xenartist/memo-token/memo"
)

// CreateProfile handles the profile creation instruction at index in batch,
// burning amount from the signer.
func (node *Node) CreateProfile(ctx context.Context, batch *chain.Batch, index int, amount uint64) error {
	err := node.createProfile(ctx, batch, index, amount)
	logger.Printf("keeper.CreateProfile(%s, %d) => %v", batch.Signer, amount, err)
	return err
}

func (node *Node) createProfile(ctx context.Context, batch *chain.Batch, index int, amount uint64) error {
	env, err := node.readPayload(batch, index, memo.PositionStrict)
	if err != nil {
		return err
	}
	data, err := memo.DecodeProfileCreation(env.Payload)
	if err != nil {
		return err
	}
	err = data.Validate(batch.Signer)
	if err != nil {
		return err
	}
	err = burner.ValidateAmount(amount, MinBurnProfile)
	if err != nil {
		return err
	}
	err = node.burner.VerifyBurn(ctx, batch.Signer, env, amount)
	if err != nil {
		return err
	}
	return node.store.WriteProfileCreation(ctx, data, amount, batch.Timestamp)
}

// UpdateProfile handles the profile update instruction at index in batch.
func (node *Node) UpdateProfile(ctx context.Context, batch *chain.Batch, index int, amount uint64) error {
	err := node.updateProfile(ctx, batch, index, amount)
	logger.Printf("keeper.UpdateProfile(%s, %d) => %v", batch.Signer, amount, err)
	return err
}

func (node *Node) updateProfile(ctx context.Context, batch *chain.Batch, index int, amount uint64) error {
	env, err := node.readPayload(batch, index, memo.PositionStrict)
	if err != nil {
		return err
	}
	data, err := memo.DecodeProfileUpdate(env.Payload)
	if err != nil {
		return err
	}
	err = data.Validate(batch.Signer)
	if err != nil {
		return err
	}
	err = burner.ValidateAmount(amount, MinBurnProfile)
	if err != nil {
		return err
	}
	err = node.burner.VerifyBurn(ctx, batch.Signer, env, amount)
	if err != nil {
		return err
	}
	return node.store.WriteProfileUpdate(ctx, data, amount, batch.Timestamp)
}

// DeleteProfile closes the signer's own profile record. Unlike the other
// operations it carries no memo and no burn; the signer alone scopes it.
func (node *Node) DeleteProfile(ctx context.Context, batch *chain.Batch) error {
	err := node.store.WriteProfileDeletion(ctx, batch.Signer, batch.Timestamp)
	logger.Printf("keeper.DeleteProfile(%s) => %v", batch.Signer, err)
	return err
}
