package helpers

import (
	"bytes"
	"math/big"

	binary "github.com/gagliardetto/binary"

	"github.com/halcyonfi/dynfee-go/dynamic_fee/shared"
	"github.com/halcyonfi/dynfee-go/u128"
)

// PodDynamicFeeParams is the pod-aligned account layout of a pool-type fee
// configuration. Ratio-valued fields are One-scaled u128.
type PodDynamicFeeParams struct {
	MinFee          uint64
	MaxFee          uint64
	BaseMaxFeeDelta uint64
	LookbackPeriod  uint64
	MinPeriod       uint64
	RatioTolerance  binary.Uint128
	LinearSlope     binary.Uint128
	MaxCurrentRatio binary.Uint128
	UpperSideFactor binary.Uint128
	LowerSideFactor binary.Uint128
	Padding         [8]byte
}

// PodFeeState is the pod-aligned per-pool fee state account: the current
// fee, the EMA target ratio, the poke timestamp and the out-of-band streak.
type PodFeeState struct {
	CurrentFee      uint64
	TargetRatio     binary.Uint128
	LastUpdateAt    uint64
	LastWasUpper    uint8
	Padding         [3]byte
	ConsecutiveHits uint32
}

func DecodePodDynamicFeeParams(data []byte) (PodDynamicFeeParams, error) {
	var out PodDynamicFeeParams
	if err := binary.NewBorshDecoder(data).Decode(&out); err != nil {
		return PodDynamicFeeParams{}, err
	}
	return out, nil
}

func EncodePodDynamicFeeParams(pod PodDynamicFeeParams) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.NewBorshEncoder(&buf).Encode(pod); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodePodFeeState(data []byte) (PodFeeState, error) {
	var out PodFeeState
	if err := binary.NewBorshDecoder(data).Decode(&out); err != nil {
		return PodFeeState{}, err
	}
	return out, nil
}

func EncodePodFeeState(pod PodFeeState) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.NewBorshEncoder(&buf).Encode(pod); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PoolTypeParams widens the pod layout into the math-layer value struct.
func (p PodDynamicFeeParams) PoolTypeParams() shared.PoolTypeParams {
	return shared.PoolTypeParams{
		MinFee:          p.MinFee,
		MaxFee:          p.MaxFee,
		BaseMaxFeeDelta: p.BaseMaxFeeDelta,
		LookbackPeriod:  p.LookbackPeriod,
		MinPeriod:       p.MinPeriod,
		RatioTolerance:  p.RatioTolerance.BigInt(),
		LinearSlope:     p.LinearSlope.BigInt(),
		MaxCurrentRatio: p.MaxCurrentRatio.BigInt(),
		UpperSideFactor: p.UpperSideFactor.BigInt(),
		LowerSideFactor: p.LowerSideFactor.BigInt(),
	}
}

// PodFromPoolTypeParams narrows a math-layer config back into the pod
// layout, rejecting ratio fields that overflow u128.
func PodFromPoolTypeParams(params shared.PoolTypeParams) (PodDynamicFeeParams, error) {
	ratioTolerance, err := u128.FromBig(params.RatioTolerance)
	if err != nil {
		return PodDynamicFeeParams{}, err
	}
	linearSlope, err := u128.FromBig(params.LinearSlope)
	if err != nil {
		return PodDynamicFeeParams{}, err
	}
	maxCurrentRatio, err := u128.FromBig(params.MaxCurrentRatio)
	if err != nil {
		return PodDynamicFeeParams{}, err
	}
	upperSideFactor, err := u128.FromBig(params.UpperSideFactor)
	if err != nil {
		return PodDynamicFeeParams{}, err
	}
	lowerSideFactor, err := u128.FromBig(params.LowerSideFactor)
	if err != nil {
		return PodDynamicFeeParams{}, err
	}
	return PodDynamicFeeParams{
		MinFee:          params.MinFee,
		MaxFee:          params.MaxFee,
		BaseMaxFeeDelta: params.BaseMaxFeeDelta,
		LookbackPeriod:  params.LookbackPeriod,
		MinPeriod:       params.MinPeriod,
		RatioTolerance:  ratioTolerance,
		LinearSlope:     linearSlope,
		MaxCurrentRatio: maxCurrentRatio,
		UpperSideFactor: upperSideFactor,
		LowerSideFactor: lowerSideFactor,
	}, nil
}

// OobState extracts the caller-persisted streak tracker.
func (s PodFeeState) OobState() shared.OobState {
	return shared.OobState{
		LastWasUpper:    s.LastWasUpper != 0,
		ConsecutiveHits: s.ConsecutiveHits,
	}
}

// TargetRatioBig widens the stored EMA target.
func (s PodFeeState) TargetRatioBig() *big.Int {
	return s.TargetRatio.BigInt()
}

// PodFromFeeState narrows a computed (fee, target, streak) triple back into
// the account layout.
func PodFromFeeState(currentFee uint64, targetRatio *big.Int, lastUpdateAt uint64, oob shared.OobState) (PodFeeState, error) {
	target, err := u128.FromBig(targetRatio)
	if err != nil {
		return PodFeeState{}, err
	}
	lastWasUpper := uint8(0)
	if oob.LastWasUpper {
		lastWasUpper = 1
	}
	return PodFeeState{
		CurrentFee:      currentFee,
		TargetRatio:     target,
		LastUpdateAt:    lastUpdateAt,
		LastWasUpper:    lastWasUpper,
		ConsecutiveHits: oob.ConsecutiveHits,
	}, nil
}
