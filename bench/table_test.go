package bench_test

import (
	"testing"
	"time"

	"github.com/on-the-ground/sieve_ive_go/bench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table := bench.DefaultTable()
	require.Len(t, table, 7)
	assert.Equal(t, bench.Case{Limit: 0, Duration: time.Second, Samples: 2_500}, table[0])
	assert.Equal(t, bench.Case{Limit: 1_000_000, Duration: 280 * time.Second, Samples: 400}, table[6])
	for _, c := range table {
		assert.NoError(t, c.Validate())
	}
}

func TestSlice(t *testing.T) {
	table := bench.DefaultTable()

	tail, err := bench.Slice(table, 5, -1)
	require.NoError(t, err)
	assert.Equal(t, []int{100_000, 1_000_000}, []int{tail[0].Limit, tail[1].Limit})

	head, err := bench.Slice(table, 0, 3)
	require.NoError(t, err)
	assert.Len(t, head, 3)

	_, err = bench.Slice(table, 4, 3)
	assert.ErrorIs(t, err, bench.ErrInvalidCase)
	_, err = bench.Slice(table, 0, 8)
	assert.ErrorIs(t, err, bench.ErrInvalidCase)
}

func TestCase_Validate(t *testing.T) {
	assert.ErrorIs(t, bench.Case{Limit: -1, Duration: time.Second, Samples: 1}.Validate(), bench.ErrInvalidCase)
	assert.ErrorIs(t, bench.Case{Limit: 1, Samples: 1}.Validate(), bench.ErrInvalidCase)
	assert.ErrorIs(t, bench.Case{Limit: 1, Duration: time.Second}.Validate(), bench.ErrInvalidCase)
}
