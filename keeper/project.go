package keeper

import (
	"context"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/xenartist/memo-token/burner"
	"github.com/xenartist/memo-token/chain"
	"github.com/xenartist/memo-token/memo"
)

// CreateProject handles the project creation instruction at index in batch,
// claiming projectID from the project counter. Creation carries the highest
// burn floor in the family.
func (node *Node) CreateProject(ctx context.Context, batch *chain.Batch, index int, projectID, amount uint64) error {
	err := node.createProject(ctx, batch, index, projectID, amount)
	logger.Printf("keeper.CreateProject(%s, %d, %d) => %v", batch.Signer, projectID, amount, err)
	return err
}

func (node *Node) createProject(ctx context.Context, batch *chain.Batch, index int, projectID, amount uint64) error {
	env, err := node.readPayload(batch, index, memo.PositionStrict)
	if err != nil {
		return err
	}
	data, err := memo.DecodeProjectCreation(env.Payload)
	if err != nil {
		return err
	}
	err = data.Validate(batch.Signer, projectID)
	if err != nil {
		return err
	}
	err = burner.ValidateAmount(amount, MinBurnProjectManage)
	if err != nil {
		return err
	}
	err = node.burner.VerifyBurn(ctx, batch.Signer, env, amount)
	if err != nil {
		return err
	}
	return node.store.WriteProjectCreation(ctx, data, amount, batch.Timestamp)
}

// UpdateProject handles the project update instruction at index in batch.
// Only the recorded creator may update.
func (node *Node) UpdateProject(ctx context.Context, batch *chain.Batch, index int, projectID, amount uint64) error {
	err := node.updateProject(ctx, batch, index, projectID, amount)
	logger.Printf("keeper.UpdateProject(%s, %d, %d) => %v", batch.Signer, projectID, amount, err)
	return err
}

func (node *Node) updateProject(ctx context.Context, batch *chain.Batch, index int, projectID, amount uint64) error {
	env, err := node.readPayload(batch, index, memo.PositionStrict)
	if err != nil {
		return err
	}
	data, err := memo.DecodeProjectUpdate(env.Payload)
	if err != nil {
		return err
	}
	err = data.Validate(batch.Signer, projectID)
	if err != nil {
		return err
	}
	err = burner.ValidateAmount(amount, MinBurnProjectManage)
	if err != nil {
		return err
	}
	err = node.burner.VerifyBurn(ctx, batch.Signer, env, amount)
	if err != nil {
		return err
	}
	return node.store.WriteProjectUpdate(ctx, data, amount, batch.Timestamp)
}

// BurnForProject handles the supporter burn instruction at index in batch.
func (node *Node) BurnForProject(ctx context.Context, batch *chain.Batch, index int, projectID, amount uint64) error {
	err := node.burnForProject(ctx, batch, index, projectID, amount)
	logger.Printf("keeper.BurnForProject(%s, %d, %d) => %v", batch.Signer, projectID, amount, err)
	return err
}

func (node *Node) burnForProject(ctx context.Context, batch *chain.Batch, index int, projectID, amount uint64) error {
	env, err := node.readPayload(batch, index, memo.PositionStrict)
	if err != nil {
		return err
	}
	data, err := memo.DecodeProjectBurn(env.Payload)
	if err != nil {
		return err
	}
	err = data.Validate(batch.Signer, projectID)
	if err != nil {
		return err
	}
	err = burner.ValidateAmount(amount, MinBurnProjectSupport)
	if err != nil {
		return err
	}
	err = node.burner.VerifyBurn(ctx, batch.Signer, env, amount)
	if err != nil {
		return err
	}
	return node.store.WriteProjectBurn(ctx, data, amount, batch.Timestamp)
}
