package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartOfDay(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	in := time.Date(2024, 2, 29, 23, 59, 59, 999, tokyo)
	require.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, tokyo), StartOfDay(in))
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("", nil)
	require.NoError(t, err)
	require.Equal(t, time.UTC, loc)

	loc, err = LoadLocation(" Europe/Paris ", time.UTC)
	require.NoError(t, err)
	require.Equal(t, "Europe/Paris", loc.String())

	loc, err = LoadLocation("Mars/Olympus", time.UTC)
	require.Error(t, err)
	require.Equal(t, time.UTC, loc)
}
