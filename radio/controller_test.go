package radio_test

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/openrtt/rttd/radio"
	"github.com/openrtt/rttd/radio/mocks"
	"github.com/openrtt/rttd/rtt"
)

type capturedResults struct {
	cmdID   uint32
	results rtt.ResultSet
}

type captureHandler struct {
	got []capturedResults
}

func (h *captureHandler) HandleResults(cmdID uint32, results rtt.ResultSet) {
	h.got = append(h.got, capturedResults{cmdID: cmdID, results: results})
}

func testPeer() rtt.Peer {
	return rtt.Peer{
		Addr:         net.HardwareAddr{0x02, 0x11, 0x22, 0x33, 0x44, 0x55},
		TwoSided:     true,
		FrequencyMhz: 5180,
		Width:        rtt.Width80,
	}
}

func TestSubmitRegistersCallbackOnce(t *testing.T) {
	hal := mocks.NewMockHAL(gomock.NewController(t))
	ctrl := radio.NewController(hal, radio.WithLogger(zaptest.NewLogger(t)))
	ctrl.SetHandler(&captureHandler{})

	hal.EXPECT().RegisterEventCallback(gomock.Any()).Return(nil)
	hal.EXPECT().RangeRequest(uint32(1000), gomock.Any()).Return(nil).Times(2)

	require.True(t, ctrl.Submit(1000, []rtt.Peer{testPeer()}))
	require.True(t, ctrl.Submit(1000, []rtt.Peer{testPeer()}))
}

func TestSubmitFailures(t *testing.T) {
	t.Run("callback registration refused", func(t *testing.T) {
		hal := mocks.NewMockHAL(gomock.NewController(t))
		ctrl := radio.NewController(hal, radio.WithLogger(zaptest.NewLogger(t)))
		hal.EXPECT().RegisterEventCallback(gomock.Any()).Return(errors.New("busy"))
		require.False(t, ctrl.Submit(1000, []rtt.Peer{testPeer()}))
	})

	t.Run("no valid peers", func(t *testing.T) {
		hal := mocks.NewMockHAL(gomock.NewController(t))
		ctrl := radio.NewController(hal, radio.WithLogger(zaptest.NewLogger(t)))
		hal.EXPECT().RegisterEventCallback(gomock.Any()).Return(nil)
		bad := testPeer()
		bad.Addr = net.HardwareAddr{0x02, 0x11} // truncated
		require.False(t, ctrl.Submit(1000, []rtt.Peer{bad}))
	})

	t.Run("hal rejects the request", func(t *testing.T) {
		hal := mocks.NewMockHAL(gomock.NewController(t))
		ctrl := radio.NewController(hal, radio.WithLogger(zaptest.NewLogger(t)))
		hal.EXPECT().RegisterEventCallback(gomock.Any()).Return(nil)
		hal.EXPECT().RangeRequest(uint32(1000), gomock.Any()).Return(errors.New("nope"))
		require.False(t, ctrl.Submit(1000, []rtt.Peer{testPeer()}))
	})
}

func TestInvalidPeersAreSkipped(t *testing.T) {
	hal := mocks.NewMockHAL(gomock.NewController(t))
	ctrl := radio.NewController(hal, radio.WithLogger(zaptest.NewLogger(t)))
	hal.EXPECT().RegisterEventCallback(gomock.Any()).Return(nil)

	var got []radio.Config
	hal.EXPECT().RangeRequest(uint32(42), gomock.Any()).DoAndReturn(
		func(_ uint32, configs []radio.Config) error {
			got = configs
			return nil
		})

	good := testPeer()
	bad := testPeer()
	bad.Width = rtt.ChannelWidth(99)
	require.True(t, ctrl.Submit(42, []rtt.Peer{bad, good}))
	require.Len(t, got, 1)
	require.Equal(t, good.Addr, got[0].Addr)
}

func TestResultConversion(t *testing.T) {
	hal := mocks.NewMockHAL(gomock.NewController(t))
	ctrl := radio.NewController(hal, radio.WithLogger(zaptest.NewLogger(t)))
	handler := &captureHandler{}
	ctrl.SetHandler(handler)

	var cb radio.ResultCallback
	hal.EXPECT().RegisterEventCallback(gomock.Any()).DoAndReturn(
		func(f radio.ResultCallback) error {
			cb = f
			return nil
		})
	hal.EXPECT().RangeRequest(uint32(7), gomock.Any()).Return(nil)
	require.True(t, ctrl.Submit(7, []rtt.Peer{testPeer()}))

	addr := testPeer().Addr
	cb(7, []radio.Result{
		{Addr: addr, Status: radio.ResultOK, DistanceMm: 5400, DistanceStdDevMm: 130, Rssi: -55, TimestampUs: 9},
		{Addr: addr, Status: radio.ResultFailed},
	})

	require.Len(t, handler.got, 1)
	require.Equal(t, uint32(7), handler.got[0].cmdID)
	results := handler.got[0].results
	require.Len(t, results, 2)
	require.Equal(t, rtt.StatusSuccess, results[0].Status)
	require.Equal(t, 5400, results[0].DistanceMm)
	require.Equal(t, rtt.StatusFail, results[1].Status)
}

func TestCancelIsBestEffort(t *testing.T) {
	hal := mocks.NewMockHAL(gomock.NewController(t))
	ctrl := radio.NewController(hal, radio.WithLogger(zaptest.NewLogger(t)))
	addrs := []net.HardwareAddr{testPeer().Addr}
	hal.EXPECT().RangeCancel(uint32(3), addrs).Return(errors.New("already gone"))
	ctrl.Cancel(3, addrs)
}
