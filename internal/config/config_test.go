package config_test

import (
	"testing"

	"github.com/clouds-game/gems/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsByPlayerCount(t *testing.T) {
	cases := []struct {
		numPlayers int
		wantCoin   int
	}{
		{1, 4},
		{2, 4},
		{3, 5},
		{4, 7},
	}

	for _, tc := range cases {
		c, err := config.New(tc.numPlayers)
		require.NoError(t, err)
		assert.Equal(t, tc.wantCoin, c.CoinInit)
		assert.Equal(t, 5, c.CoinGoldInit)
		assert.Equal(t, 10, c.CoinMaxPerPlayer)
		assert.Equal(t, 12, c.CardVisibleTotal())
	}
}

func TestNew_RejectsBadPlayerCount(t *testing.T) {
	_, err := config.New(0)
	require.Error(t, err)

	_, err = config.New(5)
	require.Error(t, err)
}

func TestNew_WithCoinInitOverride(t *testing.T) {
	c, err := config.New(2, config.WithCoinInit(9))
	require.NoError(t, err)
	assert.Equal(t, 9, c.CoinInit)
}
