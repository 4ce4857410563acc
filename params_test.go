// Copyright (c) 2026 OpenFPE Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package fast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() Params {
	return Params{Radix: 10, Length: 8, Pool: 256, Layers: 64, Branch1: 3, Branch2: 2, Security: 128}
}

func TestParamsValidateAccepts(t *testing.T) {
	require.NoError(t, validParams().Validate())
}

func TestParamsValidateMinimum(t *testing.T) {
	p := Params{Radix: 4, Length: 2, Pool: 256, Layers: 4, Branch1: 0, Branch2: 1}
	assert.NoError(t, p.Validate())
}

func TestParamsValidateRejectsRadix(t *testing.T) {
	p := validParams()
	p.Radix = 3
	assert.ErrorIs(t, p.Validate(), ErrInvalidParams)

	p = validParams()
	p.Radix = 257
	assert.ErrorIs(t, p.Validate(), ErrInvalidParams)
}

func TestParamsValidateRejectsLength(t *testing.T) {
	p := validParams()
	p.Length = 1
	assert.ErrorIs(t, p.Validate(), ErrInvalidParams)
}

func TestParamsValidateRejectsLayersNotMultiple(t *testing.T) {
	p := validParams()
	p.Layers = 65
	assert.ErrorIs(t, p.Validate(), ErrInvalidParams)

	p = validParams()
	p.Layers = 0
	assert.ErrorIs(t, p.Validate(), ErrInvalidParams)
}

func TestParamsValidateRejectsZeroPool(t *testing.T) {
	p := validParams()
	p.Pool = 0
	assert.ErrorIs(t, p.Validate(), ErrInvalidParams)
}

func TestParamsValidateRejectsBranch1(t *testing.T) {
	p := validParams()
	p.Branch1 = p.Length - 1
	assert.ErrorIs(t, p.Validate(), ErrInvalidParams)
}

func TestParamsValidateRejectsBranch2(t *testing.T) {
	p := validParams()
	p.Branch2 = 0
	assert.ErrorIs(t, p.Validate(), ErrInvalidParams)

	p = validParams()
	p.Branch2 = p.Length
	assert.ErrorIs(t, p.Validate(), ErrInvalidParams)
}

func TestParamsValidateRejectsBranchSum(t *testing.T) {
	p := validParams()
	p.Branch1 = 4
	p.Branch2 = 4 // 4+4 = 8 > length-1 = 7
	assert.ErrorIs(t, p.Validate(), ErrInvalidParams)
}

func TestRecommendRejectsBadInputs(t *testing.T) {
	_, err := Recommend(3, 8)
	assert.True(t, errors.Is(err, ErrInvalidParams))

	_, err = Recommend(10, 1)
	assert.True(t, errors.Is(err, ErrInvalidParams))
}

func TestRecommendProducesValidParams(t *testing.T) {
	cases := []struct {
		radix, length uint32
	}{
		{4, 2}, {10, 8}, {16, 5}, {256, 8}, {100, 200},
	}

	for _, c := range cases {
		p, err := Recommend(c.radix, c.length)
		require.NoError(t, err)
		assert.NoError(t, p.Validate())
		assert.Equal(t, c.radix, p.Radix)
		assert.Equal(t, c.length, p.Length)
		assert.Equal(t, uint32(DefaultPoolSize), p.Pool)
		assert.Equal(t, uint32(DefaultSecurityLevel), p.Security)
		assert.Zero(t, p.Layers%p.Length)
	}
}

func TestRecommendMinimumLengthHasZeroBranch1(t *testing.T) {
	p, err := Recommend(10, 2)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), p.Branch1)
	assert.Equal(t, uint32(1), p.Branch2)
}

func TestRecommendRejectsRadixAboveMax(t *testing.T) {
	_, err := Recommend(65536, 8)
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestRecommendBranchDistancesFollowFormula(t *testing.T) {
	p, err := Recommend(10, 9)
	require.NoError(t, err)
	// w = min(ceil(sqrt(9)), 9-2) = min(3, 7) = 3; w' = max(1, 2) = 2.
	assert.Equal(t, uint32(3), p.Branch1)
	assert.Equal(t, uint32(2), p.Branch2)
}
