package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer", func(t *testing.T) {
		c, err := NewCustomer("C00042", "Jordan Lee", "555-0134")
		require.NoError(t, err)
		assert.Equal(t, "C00042", c.CustomerNumber)
		assert.Equal(t, "Jordan Lee", c.Name)
		assert.Equal(t, 1, c.Version)
	})

	t.Run("fails with empty customer number", func(t *testing.T) {
		c, err := NewCustomer("", "Jordan Lee", "555-0134")
		assert.Nil(t, c)
		assert.Error(t, err)
	})

	t.Run("fails with blank name", func(t *testing.T) {
		c, err := NewCustomer("C00042", "   ", "555-0134")
		assert.Nil(t, c)
		assert.Error(t, err)
	})
}

func TestCustomer_Update(t *testing.T) {
	c, err := NewCustomer("C00042", "Jordan Lee", "555-0134")
	require.NoError(t, err)

	t.Run("updates contact details", func(t *testing.T) {
		require.NoError(t, c.Update("Jordan A. Lee", "555-0199", "jordan@example.com", "12 Main St"))
		assert.Equal(t, "Jordan A. Lee", c.Name)
		assert.Equal(t, "jordan@example.com", c.Email)
		assert.Equal(t, 2, c.Version)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		assert.Error(t, c.Update("", "555-0199", "", ""))
	})
}
