package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorOf(t *testing.T) {
	tests := []struct {
		value    any
		expected Selector
	}{
		{nil, All()},
		{"Sheet1", ByName("Sheet1")},
		{"", ByName("")},
		{0, ByIndex(0)},
		{int64(3), ByIndex(3)},
		{uint8(2), ByIndex(2)},
		{ByIndex(7), ByIndex(7)},
	}

	for _, test := range tests {
		selector, err := SelectorOf(test.value)

		require.NoError(t, err)
		assert.Equal(t, test.expected, selector)
	}
}

func TestSelectorOfInvalidType(t *testing.T) {
	for _, v := range []any{1.2, float32(1), true, []string{"Sheet1"}} {
		_, err := SelectorOf(v)

		assert.ErrorIsf(t, err, ErrInvalidArgumentType, "%T", v)
	}
}

func TestSelectorZeroValueSelectsAll(t *testing.T) {
	var selector Selector

	assert.False(t, selector.Explicit())
	assert.Equal(t, All(), selector)
	assert.True(t, ByName("Sheet1").Explicit())
	assert.True(t, ByIndex(0).Explicit())
}

func TestResolve(t *testing.T) {
	names := []string{"ACL", "Report", "Log"}

	tests := map[string]struct {
		selector Selector
		expected []string
	}{
		"all":         {All(), []string{"ACL", "Report", "Log"}},
		"by name":     {ByName("Report"), []string{"Report"}},
		"first":       {ByIndex(0), []string{"ACL"}},
		"last":        {ByIndex(2), []string{"Log"}},
		"blank sheet": {ByName("Log"), []string{"Log"}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			selected, err := Resolve(names, test.selector)

			require.NoError(t, err)
			assert.Equal(t, test.expected, selected)
		})
	}
}

func TestResolveIsCaseSensitive(t *testing.T) {
	_, err := Resolve([]string{"ACL"}, ByName("acl"))

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveIndexOutOfRange(t *testing.T) {
	names := []string{"ACL", "Report", "Log"}

	for _, index := range []int{3, 4, -1} {
		_, err := Resolve(names, ByIndex(index))

		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		var e *IndexOutOfRangeError
		if assert.ErrorAs(t, err, &e) {
			assert.Equal(t, index, e.Index)
			assert.Equal(t, 3, e.Count)
		}
	}
}

func TestResolveWithNoSheets(t *testing.T) {
	selected, err := Resolve([]string{}, All())
	require.NoError(t, err)
	assert.Empty(t, selected)

	_, err = Resolve([]string{}, ByIndex(0))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestNotFoundErrorMessage(t *testing.T) {
	_, err := Resolve([]string{"ACL", "Report"}, ByName("Log"))

	assert.EqualError(t, err, "sheet 'Log' not found - available sheets are: ['ACL', 'Report']")
}
