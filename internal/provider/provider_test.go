package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFail(t *testing.T) {
	assert.NoError(t, Fail("yahoo", "chart", "AAPL", nil))

	err := Fail("yahoo", "chart", "AAPL", context.DeadlineExceeded)
	var f *Failure
	assert.True(t, errors.As(err, &f))
	assert.Equal(t, "AAPL", f.Key)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "yahoo chart AAPL: context deadline exceeded", err.Error())
}
