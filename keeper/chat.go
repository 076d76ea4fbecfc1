package keeper

import (
	"context"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/xenartist/memo-token/burner"
	"github.com/xenartist/memo-token/chain"
	"github.com/xenartist/memo-token/memo"
)

// Chat is the one domain whose clients predate the strict memo layout, so
// every chat operation locates the memo in compatibility mode.

// CreateChatGroup handles the group creation instruction at index in batch,
// claiming groupID from the chat counter.
func (node *Node) CreateChatGroup(ctx context.Context, batch *chain.Batch, index int, groupID, amount uint64) error {
	err := node.createChatGroup(ctx, batch, index, groupID, amount)
	logger.Printf("keeper.CreateChatGroup(%s, %d, %d) => %v", batch.Signer, groupID, amount, err)
	return err
}

func (node *Node) createChatGroup(ctx context.Context, batch *chain.Batch, index int, groupID, amount uint64) error {
	env, err := node.readPayload(batch, index, memo.PositionCompat)
	if err != nil {
		return err
	}
	data, err := memo.DecodeGroupCreation(env.Payload)
	if err != nil {
		return err
	}
	err = data.Validate(batch.Signer, groupID)
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
	return node.store.WriteGroupCreation(ctx, data, amount, batch.Timestamp)
}

// SendMessage handles the message instruction at index in batch. The group's
// memo interval applies to this operation only.
func (node *Node) SendMessage(ctx context.Context, batch *chain.Batch, index int, groupID, amount uint64) error {
	err := node.sendMessage(ctx, batch, index, groupID, amount)
	logger.Printf("keeper.SendMessage(%s, %d, %d) => %v", batch.Signer, groupID, amount, err)
	return err
}

func (node *Node) sendMessage(ctx context.Context, batch *chain.Batch, index int, groupID, amount uint64) error {
	env, err := node.readPayload(batch, index, memo.PositionCompat)
	if err != nil {
		return err
	}
	data, err := memo.DecodeGroupMessage(env.Payload)
	if err != nil {
		return err
	}
	err = data.Validate(batch.Signer, groupID)
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
	return node.store.WriteGroupMessage(ctx, data, amount, batch.Timestamp)
}

// BurnForGroup handles the plain group burn instruction at index in batch.
func (node *Node) BurnForGroup(ctx context.Context, batch *chain.Batch, index int, groupID, amount uint64) error {
	err := node.burnForGroup(ctx, batch, index, groupID, amount)
	logger.Printf("keeper.BurnForGroup(%s, %d, %d) => %v", batch.Signer, groupID, amount, err)
	return err
}

func (node *Node) burnForGroup(ctx context.Context, batch *chain.Batch, index int, groupID, amount uint64) error {
	env, err := node.readPayload(batch, index, memo.PositionCompat)
	if err != nil {
		return err
	}
	data, err := memo.DecodeGroupBurn(env.Payload)
	if err != nil {
		return err
	}
	err = data.Validate(batch.Signer, groupID)
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
	return node.store.WriteGroupBurn(ctx, data, amount, batch.Timestamp)
}
