package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComparePostIDsNumeric(t *testing.T) {
	assert.Equal(t, 0, comparePostIDs("100", "100"))
	assert.Equal(t, -1, comparePostIDs("99", "100"), "numeric order, not lexicographic")
	assert.Equal(t, 1, comparePostIDs("100", "99"))
	assert.Equal(t, 1, comparePostIDs("18446744073709551615", "2"), "full uint64 range")
}

func TestComparePostIDsEmptyWatermark(t *testing.T) {
	assert.Equal(t, 1, comparePostIDs("1", ""))
	assert.Equal(t, -1, comparePostIDs("", "1"))
	assert.Equal(t, 0, comparePostIDs("", ""))
}

func TestComparePostIDsNonNumeric(t *testing.T) {
	// Length-then-lexicographic keeps zero-padded and ULID-style schemes ordered.
	assert.Equal(t, -1, comparePostIDs("abc", "abd"))
	assert.Equal(t, -1, comparePostIDs("zz", "aaa"), "shorter sorts first")
	assert.Equal(t, 1, comparePostIDs("01H9ZB", "01H9ZA"))
}
