package ringelem

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/snarkmr"
	"github.com/npillmayer/snarkmr/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 97 and 193 are primes ≡ 1 mod 2·16
func testAlgebra(t *testing.T) *Algebra {
	t.Helper()
	alg, err := New(16, 97, 193)
	require.NoError(t, err)
	return alg
}

func TestRingAddition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snarkmr")
	defer teardown()
	//
	alg := testAlgebra(t)
	assert.Equal(t, 16, alg.Degree())
	x := alg.Monomial(90, 3)
	y := alg.Monomial(10, 3)
	sum := alg.Add(x, y)
	assert.Equal(t, uint64(3), sum.Coeffs[0][3], "100 mod 97")
	assert.Equal(t, uint64(100), sum.Coeffs[1][3], "100 mod 193")
	assert.True(t, alg.Equal(alg.Add(alg.Zero(), x), x))
	assert.True(t, alg.Equal(x, alg.Monomial(90, 3)), "operands must be unchanged")
	assert.False(t, alg.Equal(x, y))
}

func TestPolyRecord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snarkmr")
	defer teardown()
	//
	alg := testAlgebra(t)
	x := alg.Add(alg.Monomial(5, 0), alg.Monomial(150, 15))
	var buf bytes.Buffer
	w := record.NewWriter(&buf)
	require.NoError(t, alg.WriteElement(w, x))
	require.NoError(t, w.Flush())
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Len(t, strings.Fields(buf.String()), 32)
	//
	y, err := alg.ReadElement(record.NewReader(&buf))
	require.NoError(t, err)
	assert.True(t, alg.Equal(x, y))
}

func TestPolyRecordFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snarkmr")
	defer teardown()
	//
	alg := testAlgebra(t)
	unreduced := "97" + strings.Repeat(" 0", 31)
	_, err := alg.ReadElement(record.NewReader(strings.NewReader(unreduced)))
	assert.ErrorIs(t, err, snarkmr.ErrNotInGroup)
	_, err = alg.ReadElement(record.NewReader(strings.NewReader("1 2 3")))
	assert.ErrorIs(t, err, record.ErrShortRead)
}

func TestIllegalRing(t *testing.T) {
	_, err := New(15, 97)
	assert.ErrorIs(t, err, snarkmr.ErrIllegalArguments)
}
