package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/rsdoc/bloom"
	"github.com/stretchr/testify/assert"
)

func TestNameSet_Add(t *testing.T) {
	t.Parallel()

	s := bloom.NewNameSet(1000, 0.01)

	assert.False(t, s.MayContainAny("sync::Mutex"))

	s.Add("sync::Mutex", "Mutex")

	assert.True(t, s.MayContainAny("sync::Mutex"))
	assert.True(t, s.MayContainAny("Mutex"))
	assert.False(t, s.MayContainAny("RwLock"))
}

func TestNameSet_MayContainAny(t *testing.T) {
	t.Parallel()

	s := bloom.NewNameSet(100, 0.01)
	s.Add("Mutex")

	assert.True(t, s.MayContainAny("sync::Mutex", "Mutex"))
	assert.False(t, s.MayContainAny("net::TcpStream", "TcpStream"))
	assert.False(t, s.MayContainAny())
}

func TestNameSet_ZeroSizeIsUsable(t *testing.T) {
	t.Parallel()

	s := bloom.NewNameSet(0, 0)
	s.Add("only")

	assert.True(t, s.MayContainAny("only"))
}

func TestNameSet_NoFalseNegatives(t *testing.T) {
	t.Parallel()

	s := bloom.NewNameSet(500, 0.01)
	for i := 0; i < 500; i++ {
		s.Add(fmt.Sprintf("mod%d::Item%d", i, i))
	}

	for i := 0; i < 500; i++ {
		assert.True(t, s.MayContainAny(fmt.Sprintf("mod%d::Item%d", i, i)))
	}
}
