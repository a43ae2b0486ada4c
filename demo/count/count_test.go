package count_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ixilminiussi/multithreading-learning/demo/count"
)

func Test_Parallel(t *testing.T) {
	t.Parallel()

	const end = 1000

	expected := strings.Builder{}
	for i := range end {
		fmt.Fprintf(&expected, "%d, ", i)
	}

	buf := &bytes.Buffer{}
	count.Parallel(buf, end)

	assert.Equal(t, expected.String(), buf.String())
}

func Test_Parallel_Empty(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	count.Parallel(buf, 0)

	assert.Empty(t, buf.String())
}
