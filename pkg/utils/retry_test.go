package utils_test

import (
	"errors"
	"testing"
	"time"

	"github.com/petshop/checkout-service/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	cfg := utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}

	t.Run("succeeds on a later attempt", func(t *testing.T) {
		calls := 0
		err := utils.Retry(cfg, func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		wantErr := errors.New("broker down")
		err := utils.Retry(cfg, func() error {
			calls++
			return wantErr
		})

		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, 3, calls)
	})

	t.Run("non-retryable errors return immediately", func(t *testing.T) {
		calls := 0
		fatal := errors.New("bad payload")
		err := utils.Retry(cfg, func() error {
			calls++
			return fatal
		}, fatal)

		assert.ErrorIs(t, err, fatal)
		assert.Equal(t, 1, calls)
	})
}
