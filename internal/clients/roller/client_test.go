package roller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dnderr "github.com/archaosrpg/archaos-bot/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(&Config{
		BaseURL:    srv.URL,
		HttpClient: srv.Client(),
	})
	require.NoError(t, err)

	return c, srv
}

func TestRoll_GroupArray(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3d20+15", r.URL.Path)
		_, _ = w.Write([]byte(`[{"info":"3d20+15","results":[12,7,20],"mods":[5,5,5],"dicesSumWMod":54}]`))
	})

	groups, err := c.Roll(context.Background(), "3d20+15")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "3d20+15", groups[0].Info)
	assert.Equal(t, []int{12, 7, 20}, groups[0].Results)
	assert.Equal(t, []int{5, 5, 5}, groups[0].Mods)
	assert.Equal(t, 54, groups[0].Total)
}

func TestRoll_SingleGroupObject(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"info":"1d6","results":[4],"mods":[],"dicesSumWMod":4}`))
	})

	groups, err := c.Roll(context.Background(), "1d6")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, 4, groups[0].Total)
}

func TestRoll_Non200(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := c.Roll(context.Background(), "not-dice")
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestRoll_MalformedBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})

	_, err := c.Roll(context.Background(), "1d6")
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestRoll_EmptyArray(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := c.Roll(context.Background(), "1d6")
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestRoll_ServiceUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // reuse the now-dead address

	c, err := New(&Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.Roll(context.Background(), "1d6")
	require.Error(t, err)
	assert.True(t, dnderr.IsUnavailable(err))
}

func TestRoll_DeadlineExceeded(t *testing.T) {
	blocked := make(chan struct{})
	defer close(blocked)

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.Roll(ctx, "1d6")
	require.Error(t, err)
	assert.True(t, dnderr.IsTimeout(err))
}

func TestFormatGroups_WithMods(t *testing.T) {
	out := FormatGroups([]RollGroup{
		{Info: "3d20+15", Results: []int{12, 7, 20}, Mods: []int{5, 5, 5}, Total: 54},
	})

	assert.Contains(t, out, "3d20+15")
	assert.Contains(t, out, "12 +5 = 17")
	assert.Contains(t, out, "7 +5 = 12")
	assert.Contains(t, out, "20 +5 = 25")
	assert.Contains(t, out, "**54**")
}

func TestFormatGroups_NoMods(t *testing.T) {
	out := FormatGroups([]RollGroup{
		{Info: "2d6", Results: []int{3, 5}, Total: 8},
	})

	assert.Contains(t, out, "[3, 5]")
	assert.Contains(t, out, "**8**")
}

func TestFormatGroups_MultipleGroups(t *testing.T) {
	out := FormatGroups([]RollGroup{
		{Info: "1d20", Results: []int{11}, Total: 11},
		{Info: "2d4+1", Results: []int{2, 3}, Mods: []int{1, 0}, Total: 6},
	})

	assert.Len(t, strings.Split(out, "\n"), 2)
}
