package rtt

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReconcile(t *testing.T) {
	addr := func(last byte) net.HardwareAddr {
		return net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, last}
	}
	request := RangingRequest{Peers: []Peer{
		{Addr: addr(1)}, {Addr: addr(2)}, {Addr: addr(3)},
	}}

	t.Run("full response keeps request order", func(t *testing.T) {
		out := reconcile(request, ResultSet{
			{Addr: addr(3), Status: StatusSuccess, DistanceMm: 3000},
			{Addr: addr(1), Status: StatusSuccess, DistanceMm: 1000},
			{Addr: addr(2), Status: StatusFail},
		})
		require.Len(t, out, 3)
		require.Equal(t, addr(1), out[0].Addr)
		require.Equal(t, addr(2), out[1].Addr)
		require.Equal(t, addr(3), out[2].Addr)
		require.Equal(t, 1000, out[0].DistanceMm)
		require.Equal(t, 3000, out[2].DistanceMm)
	})

	t.Run("missing peers get synthesized failures", func(t *testing.T) {
		out := reconcile(request, ResultSet{
			{Addr: addr(2), Status: StatusSuccess, DistanceMm: 2000},
		})
		require.Len(t, out, 3)
		require.Equal(t, RangingResult{Addr: addr(1), Status: StatusFail}, out[0])
		require.Equal(t, 2000, out[1].DistanceMm)
		require.Equal(t, RangingResult{Addr: addr(3), Status: StatusFail}, out[2])
	})

	t.Run("unrequested peers are dropped", func(t *testing.T) {
		out := reconcile(request, ResultSet{
			{Addr: addr(1), Status: StatusSuccess},
			{Addr: addr(9), Status: StatusSuccess},
		})
		require.Len(t, out, 3)
		for _, r := range out {
			require.NotEqual(t, addr(9), r.Addr)
		}
	})

	t.Run("empty response fails every peer", func(t *testing.T) {
		out := reconcile(request, nil)
		require.Len(t, out, 3)
		for i, r := range out {
			require.Equal(t, request.Peers[i].Addr, r.Addr)
			require.Equal(t, StatusFail, r.Status)
		}
	})
}
