package notify_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"smoke-server/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAlert_PostsFormWithBearerToken(t *testing.T) {
	var gotAuth, gotMessage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		gotAuth = r.Header.Get("Authorization")
		gotMessage = r.FormValue("message")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := notify.NewLineNotifier("secret-token", srv.URL)
	n.SendAlert(450, "DANGER")

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Contains(t, gotMessage, "DANGER")
	assert.Contains(t, gotMessage, "450.0")
}

func TestSendAlert_EmptyTokenSkipsRequest(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	n := notify.NewLineNotifier("", srv.URL)
	n.SendAlert(800, "FIRE")

	assert.Equal(t, int32(0), hits.Load(), "no token means no outbound call")
}

// Transport and API failures are swallowed; SendAlert never panics or blocks.
func TestSendAlert_FailuresAreSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	n := notify.NewLineNotifier("bad-token", srv.URL)
	n.SendAlert(450, "DANGER")

	srv.Close()

	// Endpoint is gone now; the transport error must also be swallowed.
	n.SendAlert(451, "FIRE")
}
