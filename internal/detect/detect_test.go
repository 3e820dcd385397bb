package detect

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hostPort(t *testing.T, rawURL string) (string, int) {
	t.Helper()
	host, portStr, err := net.SplitHostPort(rawURL[len("http://"):])
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return host, port
}

func newProber(host string, ports []int, out *bytes.Buffer) *Prober {
	return &Prober{
		Client: &http.Client{Timeout: 2 * time.Second},
		Host:   host,
		Ports:  ports,
		Out:    out,
	}
}

// closedPort returns a port nothing is listening on.
func closedPort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func TestProbeDetectsInstance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case optionsPath:
			fmt.Fprint(w, `{}`)
		case modelsPath:
			fmt.Fprint(w, `[{"title":"v1-5-pruned.safetensors"},{"title":"sdxl"}]`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	host, port := hostPort(t, srv.URL)
	var out bytes.Buffer
	p := newProber(host, []int{port}, &out)

	d := p.Probe(context.Background())
	require.True(t, d.Found)
	assert.Equal(t, srv.URL, d.URL)
	assert.Contains(t, out.String(), "✅ Automatic1111 detected at "+srv.URL)
	assert.Contains(t, out.String(), "   Status: 200")
	assert.Contains(t, out.String(), "   Available models: 2")
	assert.Contains(t, out.String(), "   Current model: v1-5-pruned.safetensors")

	out.Reset()
	assert.Equal(t, 0, p.Summarize(d))
	assert.Contains(t, out.String(), "🎉 Automatic1111 is ready at: "+srv.URL)
}

func TestProbeSkipsNon200AndRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	host, port := hostPort(t, srv.URL)
	refused := closedPort(t)
	var out bytes.Buffer
	p := newProber(host, []int{refused, port}, &out)

	d := p.Probe(context.Background())
	assert.False(t, d.Found)
	assert.Contains(t, out.String(), fmt.Sprintf("❌ Connection refused at http://%s:%d%s", host, refused, optionsPath))
	assert.Contains(t, out.String(), fmt.Sprintf("❌ HTTP 503 at %s%s", srv.URL, optionsPath))
	assert.Contains(t, out.String(), "❌ No Automatic1111 instance detected")
	assert.Contains(t, out.String(), "To start Automatic1111:")

	out.Reset()
	assert.Equal(t, 1, p.Summarize(d))
	assert.Contains(t, out.String(), "💡 Automatic1111 not found. Please start it first.")
}

func TestProbeModelsFailureIsNotFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == modelsPath {
			fmt.Fprint(w, `not json`)
			return
		}
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	host, port := hostPort(t, srv.URL)
	var out bytes.Buffer
	d := newProber(host, []int{port}, &out).Probe(context.Background())

	assert.True(t, d.Found)
	assert.Contains(t, out.String(), "   Could not fetch models:")
}

func TestProbeTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	host, port := hostPort(t, srv.URL)
	var out bytes.Buffer
	p := newProber(host, []int{port}, &out)
	p.Client.Timeout = 50 * time.Millisecond

	d := p.Probe(context.Background())
	assert.False(t, d.Found)
	assert.Contains(t, out.String(), "❌ Timeout at ")
}
