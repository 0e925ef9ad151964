package value_test

import (
	"math/big"
	"testing"

	"github.com/plclang/plc/value"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArbitraryPrecisionMultiplicationIsExact(t *testing.T) {
	a := value.FromInt64(1_000_000)
	b := value.FromInt64(1_000_000)
	result, err := value.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, "1000000000000", result.Int.String())
}

func TestIntegerDivisionByZeroFails(t *testing.T) {
	_, err := value.Div(value.FromInt64(1), value.FromInt64(0))
	assert.Error(t, err)
}

func TestDecimalBankersRounding(t *testing.T) {
	half, err := decimal.NewFromString("2.5")
	require.NoError(t, err)
	two, err := decimal.NewFromString("2.0")
	require.NoError(t, err)

	result, err := value.Div(value.FromDecimal(half), value.FromDecimal(two))
	require.NoError(t, err)
	assert.Equal(t, "1.25", result.Dec.String())

	// 0.0000000005 / 2 = 0.00000000025, a tie at the 10-digit scale: it
	// rounds to the even neighbour 0.0000000002, not up to 0.0000000003.
	tiny, err := decimal.NewFromString("0.0000000005")
	require.NoError(t, err)
	result, err = value.Div(value.FromDecimal(tiny), value.FromDecimal(two))
	require.NoError(t, err)
	assert.Equal(t, "0.0000000002", result.Dec.String())
}

func TestAddConcatenatesWhenEitherSideIsString(t *testing.T) {
	result, err := value.Add(value.FromString("x="), value.FromInt64(1))
	require.NoError(t, err)
	assert.Equal(t, "x=1", result.Str)
}

func TestAddRejectsCrossKindNumerics(t *testing.T) {
	_, err := value.Add(value.FromInt64(1), value.FromDecimal(decimal.NewFromInt(1)))
	assert.Error(t, err)
}

func TestEqualNeverCrossesKind(t *testing.T) {
	assert.False(t, value.FromInt64(1).Equal(value.FromDecimal(decimal.NewFromInt(1))))
	assert.True(t, value.FromInt64(1).Equal(value.FromInt64(1)))
}

func TestFromHostSharesFieldsMapAcrossCopies(t *testing.T) {
	v := value.FromHost("Point", map[string]value.Value{"x": value.FromInt64(1)})
	other := v
	other.Fields["x"] = value.FromInt64(2)
	assert.Equal(t, "2", v.Fields["x"].Int.String())
}

func TestToDisplayOmitsTypeDecoration(t *testing.T) {
	assert.Equal(t, "5", value.FromInt(big.NewInt(5)).ToDisplay())
	assert.Equal(t, "nil", value.Nil().ToDisplay())
	assert.Equal(t, "true", value.FromBool(true).ToDisplay())
}

func TestLessOrdersEachComparableKind(t *testing.T) {
	assert.True(t, value.FromInt64(1).Less(value.FromInt64(2)))
	assert.True(t, value.FromString("a").Less(value.FromString("b")))
	assert.True(t, value.FromChar('a').Less(value.FromChar('b')))
}
