package clients

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const waitFor = 5 * time.Second

func TestWatchFiresOnDeath(t *testing.T) {
	r := New(WithLogger(zaptest.NewLogger(t)))
	t.Cleanup(r.Close)

	done := make(chan struct{})
	fired := make(chan struct{})
	r.Watch(done, func() { close(fired) })
	require.Equal(t, 1, r.Len())

	close(done)
	select {
	case <-fired:
	case <-time.After(waitFor):
		t.Fatal("watch never fired")
	}
	require.Eventually(t, func() bool { return r.Len() == 0 },
		waitFor, 10*time.Millisecond)
}

func TestWatchFiresAtMostOnce(t *testing.T) {
	r := New(WithLogger(zaptest.NewLogger(t)))
	t.Cleanup(r.Close)

	done := make(chan struct{})
	fired := make(chan struct{}, 2)
	r.Watch(done, func() { fired <- struct{}{} })
	close(done)

	select {
	case <-fired:
	case <-time.After(waitFor):
		t.Fatal("watch never fired")
	}
	select {
	case <-fired:
		t.Fatal("watch fired twice")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnwatchCancels(t *testing.T) {
	r := New(WithLogger(zaptest.NewLogger(t)))
	t.Cleanup(r.Close)

	done := make(chan struct{})
	fired := make(chan struct{}, 1)
	token := r.Watch(done, func() { fired <- struct{}{} })
	r.Unwatch(token)
	require.Equal(t, 0, r.Len())

	close(done)
	select {
	case <-fired:
		t.Fatal("cancelled watch fired")
	case <-time.After(50 * time.Millisecond):
	}

	// unknown token is ignored
	r.Unwatch(token)
}

func TestIndependentWatches(t *testing.T) {
	r := New(WithLogger(zaptest.NewLogger(t)))
	t.Cleanup(r.Close)

	done1 := make(chan struct{})
	done2 := make(chan struct{})
	fired1 := make(chan struct{})
	fired2 := make(chan struct{}, 1)
	r.Watch(done1, func() { close(fired1) })
	r.Watch(done2, func() { fired2 <- struct{}{} })
	require.Equal(t, 2, r.Len())

	close(done1)
	select {
	case <-fired1:
	case <-time.After(waitFor):
		t.Fatal("watch never fired")
	}
	select {
	case <-fired2:
		t.Fatal("unrelated watch fired")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCloseStopsEverything(t *testing.T) {
	r := New(WithLogger(zaptest.NewLogger(t)))

	done := make(chan struct{})
	fired := make(chan struct{}, 1)
	r.Watch(done, func() { fired <- struct{}{} })
	r.Close()
	require.Equal(t, 0, r.Len())

	close(done)
	select {
	case <-fired:
		t.Fatal("watch fired after close")
	case <-time.After(50 * time.Millisecond):
	}

	// watches registered after close are inert
	r.Watch(make(chan struct{}), func() { t.Error("fired") })
	require.Equal(t, 0, r.Len())

	// second close is fine
	r.Close()
}
