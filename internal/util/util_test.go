package util

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULID(t *testing.T) {
	a := NewULID()
	b := NewULID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
	assert.True(t, IsULID(a))
	assert.False(t, IsULID("not-a-ulid"))
}

func TestStringToNullString(t *testing.T) {
	assert.Equal(t, sql.NullString{}, StringToNullString(""))
	assert.Equal(t, sql.NullString{String: "x", Valid: true}, StringToNullString("x"))
}

func TestNullTimeConversions(t *testing.T) {
	assert.False(t, TimePtrToNullTime(nil).Valid)
	assert.Nil(t, NullTimeToTimePtr(sql.NullTime{}))

	now := time.Now()
	nt := TimePtrToNullTime(&now)
	require.True(t, nt.Valid)
	back := NullTimeToTimePtr(nt)
	require.NotNil(t, back)
	assert.True(t, now.Equal(*back))
}
