package dynfee

import (
	dynamicfee "github.com/halcyonfi/dynfee-go/dynamic_fee"
)

// NewClient creates a new dynamic fee client.
//
// Example:
//
// feeClient := NewClient(rpcClient, rpc.CommitmentFinalized, maxAdjustmentRate)
//
// feeClient.PokeQuote(ctx, config, pool, currentRatio)
var NewClient = dynamicfee.NewDynFee
