package locator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/storelocator/pkg/locator"
)

func TestError_MessageIncludesProviderAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := locator.E("googlemaps", locator.KindProviderError, "geocode request failed").WithCause(cause)

	assert.Contains(t, err.Error(), "googlemaps")
	assert.Contains(t, err.Error(), "geocode request failed")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestError_IsMatchesOnKind(t *testing.T) {
	err := locator.E("viacep", locator.KindNotFound, "postal code not found")

	assert.ErrorIs(t, err, locator.E("", locator.KindNotFound, ""))
	assert.NotErrorIs(t, err, locator.E("", locator.KindProviderError, ""))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, locator.KindNotFound, locator.KindOf(locator.E("x", locator.KindNotFound, "")))
	assert.Equal(t, locator.KindInternal, locator.KindOf(errors.New("plain")))

	wrapped := fmt.Errorf("evaluating store: %w", locator.E("correios", locator.KindProviderError, "quote failed"))
	assert.Equal(t, locator.KindProviderError, locator.KindOf(wrapped))
}

func TestIsClientFault(t *testing.T) {
	require.True(t, locator.IsClientFault(locator.E("", locator.KindEmpty, "")))
	require.True(t, locator.IsClientFault(locator.E("", locator.KindInvalidFormat, "")))
	require.False(t, locator.IsClientFault(locator.E("", locator.KindNotFound, "")))
	require.False(t, locator.IsClientFault(locator.E("", locator.KindProviderError, "")))
}
