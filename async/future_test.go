package async

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFutureResolves(t *testing.T) {
	f := Go(func() (int, error) { return 42, nil })
	v, err := f.Wait()
	require.NoError(t, err)
	require.Equal(t, 42, v)

	// settled futures answer repeatedly
	v, err = f.Wait()
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestFutureRejects(t *testing.T) {
	boom := errors.New("boom")
	_, err := Go(func() (int, error) { return 0, boom }).Wait()
	require.ErrorIs(t, err, boom)
}

func TestFutureRecoversPanics(t *testing.T) {
	t.Run("error panic becomes the rejection", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := Go(func() (int, error) { panic(boom) }).Wait()
		require.ErrorIs(t, err, boom)
	})

	t.Run("non-error panic is wrapped", func(t *testing.T) {
		_, err := Go(func() (int, error) { panic("oops") }).Wait()
		require.Error(t, err)
		require.Contains(t, err.Error(), "oops")
	})
}

func TestFuturePreSettled(t *testing.T) {
	v, err := Resolved(7).Wait()
	require.NoError(t, err)
	require.Equal(t, 7, v)

	boom := errors.New("boom")
	_, err = Rejected[int](boom).Wait()
	require.ErrorIs(t, err, boom)
}

func TestFutureWaitContext(t *testing.T) {
	t.Run("settled future wins", func(t *testing.T) {
		v, err := Resolved(1).WaitContext(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, v)
	})

	t.Run("cancellation abandons the wait", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		block := make(chan struct{})
		defer close(block)
		f := Go(func() (int, error) { <-block; return 0, nil })
		_, err := f.WaitContext(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestFutureDone(t *testing.T) {
	f := Go(func() (int, error) { return 1, nil })
	select {
	case <-f.Done():
	case <-time.After(time.Second):
		t.Fatal("future did not settle")
	}
}
