package radio

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openrtt/rttd/rtt"
)

func TestConfigFromPeer(t *testing.T) {
	t.Run("5ghz two-sided", func(t *testing.T) {
		peer := rtt.Peer{
			Addr:         net.HardwareAddr{0x02, 0x11, 0x22, 0x33, 0x44, 0x55},
			TwoSided:     true,
			FrequencyMhz: 5180,
			Width:        rtt.Width80,
		}
		config, err := configFromPeer(&peer)
		require.NoError(t, err)
		require.Equal(t, TwoSided, config.Type)
		require.Equal(t, PreambleVHT, config.Preamble)
		require.Equal(t, Bw80, config.Bandwidth)
		require.Equal(t, 80, config.Channel.WidthMhz)
		require.Equal(t, 5180, config.Channel.CenterFreq)
		require.Equal(t, 8, config.FramesPerBurst)
		require.Equal(t, 15, config.BurstDuration)
	})

	t.Run("2.4ghz one-sided", func(t *testing.T) {
		peer := rtt.Peer{
			Addr:         net.HardwareAddr{0x02, 0, 0, 0, 0, 1},
			FrequencyMhz: 2437,
			Width:        rtt.Width20,
		}
		config, err := configFromPeer(&peer)
		require.NoError(t, err)
		require.Equal(t, OneSided, config.Type)
		require.Equal(t, PreambleHT, config.Preamble)
		require.Equal(t, Bw20, config.Bandwidth)
	})

	t.Run("80+80 maps to 160", func(t *testing.T) {
		peer := rtt.Peer{
			Addr:         net.HardwareAddr{0x02, 0, 0, 0, 0, 2},
			TwoSided:     true,
			FrequencyMhz: 5210,
			Width:        rtt.Width80Plus80,
			CenterFreq0:  5210,
			CenterFreq1:  5775,
		}
		config, err := configFromPeer(&peer)
		require.NoError(t, err)
		require.Equal(t, Bw160, config.Bandwidth)
		require.Equal(t, 160, config.Channel.WidthMhz)
		require.Equal(t, 5210, config.Channel.CenterFreq0)
		require.Equal(t, 5775, config.Channel.CenterFreq1)
	})

	t.Run("truncated address", func(t *testing.T) {
		peer := rtt.Peer{
			Addr:         net.HardwareAddr{0x02, 0x11},
			FrequencyMhz: 2437,
			Width:        rtt.Width20,
		}
		_, err := configFromPeer(&peer)
		require.Error(t, err)
	})

	t.Run("bad width", func(t *testing.T) {
		peer := rtt.Peer{
			Addr:         net.HardwareAddr{0x02, 0, 0, 0, 0, 3},
			FrequencyMhz: 5180,
			Width:        rtt.ChannelWidth(200),
		}
		_, err := configFromPeer(&peer)
		require.Error(t, err)
	})
}
