package rsdoc_test

import (
	"testing"

	"github.com/fwojciec/rsdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectExample(t *testing.T) {
	t.Parallel()

	examples := []string{"let a = 1;", "let b = 2;"}

	t.Run("returns the n-th example", func(t *testing.T) {
		t.Parallel()

		got, err := rsdoc.SelectExample("std::vec::Vec", examples, 2)

		require.NoError(t, err)
		assert.Equal(t, "let b = 2;", got)
	})

	t.Run("rejects n past the last example", func(t *testing.T) {
		t.Parallel()

		_, err := rsdoc.SelectExample("std::vec::Vec", examples, 3)

		assert.Equal(t, rsdoc.EINVALID, rsdoc.ErrorCode(err))
		assert.Equal(t, "example 3 out of range: `std::vec::Vec` has 2 examples", rsdoc.ErrorMessage(err))
	})

	t.Run("rejects n below one", func(t *testing.T) {
		t.Parallel()

		_, err := rsdoc.SelectExample("std::vec::Vec", examples, 0)

		assert.Equal(t, rsdoc.EINVALID, rsdoc.ErrorCode(err))
	})
}
