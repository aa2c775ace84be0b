package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("create transaction: %w", NotFound("transaction %s not found", "abc"))

	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindStore))
}

func TestKindOf_Untagged(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.False(t, IsKind(nil, KindUnknown))
}

func TestStore_KeepsExistingKind(t *testing.T) {
	validation := Validation("at least one service is required")

	err := Store("UpdateTransaction", fmt.Errorf("perform: %w", validation))

	assert.Equal(t, KindValidation, KindOf(err))
}

func TestStore_TagsDriverError(t *testing.T) {
	driverErr := errors.New("connection refused")

	err := Store("ListTransactions", driverErr)

	assert.Equal(t, KindStore, KindOf(err))
	assert.ErrorIs(t, err, driverErr)
	assert.Equal(t, "ListTransactions: connection refused", err.Error())
}

func TestStore_Nil(t *testing.T) {
	assert.NoError(t, Store("op", nil))
}

func TestMissingDateRange_IsValidation(t *testing.T) {
	assert.True(t, IsKind(ErrMissingDateRange, KindValidation))
	assert.ErrorIs(t, fmt.Errorf("report: %w", ErrMissingDateRange), ErrMissingDateRange)
}

func TestInvalidPeriod_Message(t *testing.T) {
	err := InvalidPeriod("hourly")

	assert.Equal(t, KindInvalidPeriod, KindOf(err))
	assert.Contains(t, err.Error(), `"hourly"`)
}
