package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRegion(t *testing.T) {
	t.Run("Should upper-case two-character tokens as codes", func(t *testing.T) {
		assert.Equal(t, "CA", NormalizeRegion("ca"))
		assert.Equal(t, "CA", NormalizeRegion("CA"))
		assert.Equal(t, "OR", NormalizeRegion("or"))
	})

	t.Run("Should resolve full names regardless of case", func(t *testing.T) {
		assert.Equal(t, "CA", NormalizeRegion("california"))
		assert.Equal(t, "CA", NormalizeRegion("California"))
		assert.Equal(t, "QC", NormalizeRegion("Quebec"))
		assert.Equal(t, "NY", NormalizeRegion("NEW YORK"))
	})

	t.Run("Should treat hyphens as spaces in names", func(t *testing.T) {
		assert.Equal(t, "NH", NormalizeRegion("new-hampshire"))
		assert.Equal(t, "BC", NormalizeRegion("british-columbia"))
		assert.Equal(t, "PE", NormalizeRegion("prince-edward-island"))
	})

	t.Run("Should pass unknown regions through upper-cased", func(t *testing.T) {
		assert.Equal(t, "NARNIA", NormalizeRegion("narnia"))
		assert.Equal(t, "OUTER-RIM", NormalizeRegion("outer-rim"))
	})

	t.Run("Should never fail on degenerate input", func(t *testing.T) {
		assert.Equal(t, "", NormalizeRegion(""))
		assert.Equal(t, "X", NormalizeRegion("x"))
	})

	t.Run("Should round-trip every table entry through its own name and code", func(t *testing.T) {
		table := RegionTable()
		require.NotEmpty(t, table)
		for name, code := range table {
			assert.Equal(t, code, NormalizeRegion(name), "name %q", name)
			assert.Equal(t, code, NormalizeRegion(code), "code %q", code)
		}
	})

	t.Run("Should return a defensive copy of the table", func(t *testing.T) {
		table := RegionTable()
		table["california"] = "XX"
		assert.Equal(t, "CA", NormalizeRegion("california"))
	})
}
