package resource

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusErr struct{ code int }

func (e *statusErr) Error() string   { return fmt.Sprintf("status %d", e.code) }
func (e *statusErr) HTTPStatus() int { return e.code }

func TestReason_Buckets(t *testing.T) {
	cases := map[int]string{
		401: ReasonUnauthorized,
		404: ReasonNotFound,
		409: ReasonConflict,
		408: ReasonRequestTimeout,
		413: ReasonPayloadTooLarge,
		500: ReasonServerError,
		503: ReasonServerError,
		599: ReasonServerError,
		400: ReasonUnknown,
		403: ReasonUnknown,
		302: ReasonUnknown,
	}
	for code, want := range cases {
		assert.Equal(t, want, Reason(code), "code %d", code)
	}
}

func TestCall_Success(t *testing.T) {
	res, err := Call(context.Background(), func(context.Context) (string, error) {
		return "photo", nil
	})
	require.NoError(t, err)
	require.Equal(t, KindSuccess, res.Kind())

	v, ok := res.Value()
	require.True(t, ok)
	require.Equal(t, "photo", v)
}

func TestCall_StatusErrors(t *testing.T) {
	for _, tc := range []struct {
		code   int
		reason string
	}{
		{401, "Unauthorized"},
		{503, "Internal server error"},
		{409, "Conflict"},
	} {
		res, err := Call(context.Background(), func(context.Context) (int, error) {
			return 0, fmt.Errorf("get /photos: %w", &statusErr{code: tc.code})
		})
		require.NoError(t, err)
		require.True(t, res.IsError())

		code, ok := res.Code()
		require.True(t, ok)
		require.Equal(t, tc.code, code)
		reason, _ := res.Reason()
		require.Equal(t, tc.reason, reason)

		_, hasValue := res.Value()
		require.False(t, hasValue)
	}
}

func TestCall_TransportFaultHasNoCode(t *testing.T) {
	res, err := Call(context.Background(), func(context.Context) (int, error) {
		return 0, errors.New("dial tcp: connection refused")
	})
	require.NoError(t, err)
	require.True(t, res.IsError())

	_, ok := res.Code()
	require.False(t, ok)
	reason, _ := res.Reason()
	require.Equal(t, "dial tcp: connection refused", reason)
}

func TestCall_CancellationPropagates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Call(ctx, func(ctx context.Context) (int, error) {
		return 0, fmt.Errorf("get /photos: %w", ctx.Err())
	})
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, res.IsError())
}

func TestCall_CancelledContextWinsOverStatus(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	res, err := Call(ctx, func(context.Context) (int, error) {
		cancel()
		return 0, &statusErr{code: 500}
	})
	require.Error(t, err)
	require.False(t, res.IsError())
}

func TestStream_LoadingThenTerminal(t *testing.T) {
	ch := Stream(context.Background(), func(context.Context) (int, error) { return 7, nil })

	var kinds []Kind
	for r := range ch {
		kinds = append(kinds, r.Kind())
	}
	require.Equal(t, []Kind{KindLoading, KindSuccess}, kinds)
}

func TestStream_CancellationEmitsNoError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})

	ch := Stream(ctx, func(ctx context.Context) (int, error) {
		close(started)
		<-ctx.Done()
		return 0, ctx.Err()
	})
	<-started
	cancel()

	for r := range ch {
		require.NotEqual(t, KindError, r.Kind())
	}
}

func TestMap_KeepsErrorPayload(t *testing.T) {
	code := 404
	reason := Reason(code)
	res := Map(Error[int](&code, &reason), func(i int) string { return fmt.Sprint(i) })

	require.True(t, res.IsError())
	got, _ := res.Code()
	require.Equal(t, 404, got)

	ok := Map(Success(3), func(i int) int { return i * 2 })
	v, _ := ok.Value()
	require.Equal(t, 6, v)

	require.Equal(t, KindLoading, Map(Loading[int](), func(i int) int { return i }).Kind())
	require.Equal(t, KindEmpty, Map(Empty[int](), func(i int) int { return i }).Kind())
}
