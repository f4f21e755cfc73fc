//go:build unit

package constant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeMetricLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", SanitizeMetricLabel("short"))

	exact := strings.Repeat("a", MaxMetricLabelLength)
	assert.Equal(t, exact, SanitizeMetricLabel(exact))

	long := strings.Repeat("b", MaxMetricLabelLength+10)
	assert.Len(t, SanitizeMetricLabel(long), MaxMetricLabelLength)
}
