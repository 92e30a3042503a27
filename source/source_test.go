package source_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/flapboard/flapboard/render"
	"github.com/flapboard/flapboard/source"
	"github.com/stretchr/testify/require"
)

// failing is a provider whose upstream is down.
type failing struct {
	id  string
	err error
}

func (f failing) ID() string { return f.id }

func (f failing) Fetch(context.Context) (map[string]any, error) {
	return nil, f.err
}

//------------------------------------------------------------------------//

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := source.NewRegistry()
	w := source.NewStatic("weather", map[string]any{"temperature": 72.0})
	require.NoError(t, r.Register(w))

	got, err := r.Lookup("weather")
	require.NoError(t, err)
	require.Equal(t, "weather", got.ID())

	_, err = r.Lookup("transit")
	require.ErrorIs(t, err, source.ErrUnknownSource)
}

func TestRegistry_DuplicateIdentifier(t *testing.T) {
	r := source.NewRegistry()
	require.NoError(t, r.Register(source.NewStatic("weather", nil)))
	err := r.Register(source.NewStatic("weather", nil))
	require.ErrorIs(t, err, source.ErrDuplicateSource)
	require.Contains(t, err.Error(), `"weather"`)
}

func TestRegistry_IDsSorted(t *testing.T) {
	r := source.NewRegistry()
	for _, id := range []string{"transit", "calendar", "weather"} {
		require.NoError(t, r.Register(source.NewStatic(id, nil)))
	}
	require.Equal(t, []string{"calendar", "transit", "weather"}, r.IDs())
}

// TestRegistry_Context assembles every provider's fields under its
// identifier.
func TestRegistry_Context(t *testing.T) {
	r := source.NewRegistry()
	require.NoError(t, r.Register(source.NewStatic("weather", map[string]any{
		"temperature": 72.0,
		"summary":     "clear",
	})))
	require.NoError(t, r.Register(source.NewStatic("transit", map[string]any{
		"trains": []string{"12 MIN"},
	})))

	ctx, err := r.Context(context.Background())
	require.NoError(t, err)
	require.Len(t, ctx, 2)
	require.Equal(t, "clear", ctx["weather"].(map[string]any)["summary"])
}

// TestRegistry_ContextPartialFailure keeps the healthy sources and joins
// the failures.
func TestRegistry_ContextPartialFailure(t *testing.T) {
	upstream := errors.New("503")
	r := source.NewRegistry()
	require.NoError(t, r.Register(source.NewStatic("weather", map[string]any{"summary": "clear"})))
	require.NoError(t, r.Register(failing{id: "transit", err: upstream}))

	ctx, err := r.Context(context.Background())
	require.ErrorIs(t, err, upstream)
	require.Contains(t, err.Error(), `"transit"`)
	require.Contains(t, ctx, "weather")
	require.NotContains(t, ctx, "transit")

	// The degraded context still renders; the dead source shows as a
	// placeholder.
	rows := render.Render([]string{"{{transit.trains}}"}, ctx)
	require.Contains(t, rows[0], "???")
}

func TestRegistry_Concurrent(t *testing.T) {
	r := source.NewRegistry()
	require.NoError(t, r.Register(source.NewStatic("weather", map[string]any{"n": 1})))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.Lookup("weather")
			_ = r.IDs()
			_, _ = r.Context(context.Background())
		}()
	}
	wg.Wait()
}

// TestStatic_FetchIsStable returns the same fields every call.
func TestStatic_FetchIsStable(t *testing.T) {
	s := source.NewStatic("config", map[string]any{"label": "LOBBY"})
	for i := 0; i < 3; i++ {
		fields, err := s.Fetch(context.Background())
		require.NoError(t, err)
		require.Equal(t, "LOBBY", fields["label"])
	}
}
