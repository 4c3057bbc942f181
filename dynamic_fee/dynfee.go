package dynamicfee

import (
	"bytes"
	"context"
	"errors"
	"math/big"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"

	"github.com/halcyonfi/dynfee-go/dynamic_fee/helpers"
	"github.com/halcyonfi/dynfee-go/dynamic_fee/math"
	"github.com/halcyonfi/dynfee-go/dynamic_fee/shared"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidDiscriminator = errors.New("unexpected account discriminator")
	ErrRatioOutOfRange      = errors.New("current ratio exceeds configured maximum")
)

// DynFee is the SDK class to interact with the dynamic fee program.
type DynFee struct {
	Client            *rpc.Client
	Commitment        rpc.CommitmentType
	MaxAdjustmentRate *big.Int
}

func NewDynFee(client *rpc.Client, commitment rpc.CommitmentType, maxAdjustmentRate *big.Int) *DynFee {
	return &DynFee{
		Client:            client,
		Commitment:        commitment,
		MaxAdjustmentRate: maxAdjustmentRate,
	}
}

// FeeState is the decoded per-pool fee state.
type FeeState struct {
	CurrentFee   uint64
	TargetRatio  *big.Int
	LastUpdateAt uint64
	Oob          shared.OobState
}

// PokeResult is an off-chain preview of one fee-update trigger.
type PokeResult struct {
	NewFee     uint64
	NewTarget  *big.Int
	Oob        shared.OobState
	FeeBefore  decimal.Decimal
	FeeAfter   decimal.Decimal
	NextTarget decimal.Decimal
}

func (c *DynFee) fetchAccount(ctx context.Context, address solanago.PublicKey, discriminator [8]byte) ([]byte, error) {
	out, err := c.Client.GetAccountInfoWithOpts(ctx, address, &rpc.GetAccountInfoOpts{Commitment: c.Commitment})
	if err != nil {
		if err == rpc.ErrNotFound {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if out == nil || out.Value == nil {
		return nil, ErrAccountNotFound
	}
	data := out.Value.Data.GetBinary()
	if len(data) < accountDiscriminatorSize || !bytes.Equal(data[:accountDiscriminatorSize], discriminator[:]) {
		return nil, ErrInvalidDiscriminator
	}
	return data[accountDiscriminatorSize:], nil
}

// GetPoolTypeParams fetches and decodes a pool-type fee configuration.
func (c *DynFee) GetPoolTypeParams(ctx context.Context, config solanago.PublicKey) (shared.PoolTypeParams, error) {
	data, err := c.fetchAccount(ctx, config, DynamicFeeConfigDiscriminator)
	if err != nil {
		return shared.PoolTypeParams{}, err
	}
	pod, err := helpers.DecodePodDynamicFeeParams(data)
	if err != nil {
		return shared.PoolTypeParams{}, err
	}
	return pod.PoolTypeParams(), nil
}

// GetFeeState fetches and decodes the per-pool fee state.
func (c *DynFee) GetFeeState(ctx context.Context, pool solanago.PublicKey) (FeeState, error) {
	feeState, err := DeriveFeeStatePDA(pool)
	if err != nil {
		return FeeState{}, err
	}
	data, err := c.fetchAccount(ctx, feeState, DynamicFeeStateDiscriminator)
	if err != nil {
		return FeeState{}, err
	}
	pod, err := helpers.DecodePodFeeState(data)
	if err != nil {
		return FeeState{}, err
	}
	return FeeState{
		CurrentFee:   pod.CurrentFee,
		TargetRatio:  pod.TargetRatioBig(),
		LastUpdateAt: pod.LastUpdateAt,
		Oob:          pod.OobState(),
	}, nil
}

// PokeQuote previews the fee and target the program would produce if the
// pool were poked now with the given observed ratio. It performs no writes;
// the program itself persists the returned (fee, streak, target) triple.
func (c *DynFee) PokeQuote(ctx context.Context, config, pool solanago.PublicKey, currentRatio *big.Int) (PokeResult, error) {
	params, err := c.GetPoolTypeParams(ctx, config)
	if err != nil {
		return PokeResult{}, err
	}
	state, err := c.GetFeeState(ctx, pool)
	if err != nil {
		return PokeResult{}, err
	}
	if currentRatio.Cmp(params.MaxCurrentRatio) > 0 {
		return PokeResult{}, ErrRatioOutOfRange
	}
	newFee, newOob := math.ComputeNewFee(state.CurrentFee, currentRatio, state.TargetRatio, c.MaxAdjustmentRate, params, state.Oob)
	newTarget := math.Ema(currentRatio, state.TargetRatio, params.LookbackPeriod)
	return PokeResult{
		NewFee:     newFee,
		NewTarget:  newTarget,
		Oob:        newOob,
		FeeBefore:  helpers.FeePercent(state.CurrentFee),
		FeeAfter:   helpers.FeePercent(newFee),
		NextTarget: helpers.RatioDecimal(newTarget),
	}, nil
}
