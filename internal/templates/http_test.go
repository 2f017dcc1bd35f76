package templates

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"benefit-engine/internal/forms"
)

func serve(t *testing.T, h fasthttp.RequestHandler) *HTTPSource {
	t.Helper()
	ln := fasthttputil.NewInmemoryListener()
	srv := &fasthttp.Server{Handler: h}
	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(func() { _ = srv.Shutdown() })

	src := NewHTTPSource("http://forms.local/", time.Second)
	src.client.Dial = func(string) (net.Conn, error) { return ln.Dial() }
	return src
}

func TestHTTPSource(t *testing.T) {
	src := serve(t, func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case "/hauptantrag.pdf":
			ctx.SetBodyString("%PDF-main")
		case "/anlage-vm.pdf":
			ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		default:
			ctx.SetStatusCode(fasthttp.StatusNotFound)
		}
	})

	data, err := src.Load(context.Background(), forms.TemplateMainApplication)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-main"), data)

	_, err = src.Load(context.Background(), forms.TemplateChild)
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	_, err = src.Load(context.Background(), forms.TemplateAssets)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTemplateNotFound)
}
