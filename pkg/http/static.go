package xhttp

import (
	"github.com/valyala/fasthttp"
)

// StaticHandler serves files from root, falling back to index.html for the
// bare "/" path. Intended to be installed as the router NotFound handler so
// API routes keep precedence over front-end assets.
func StaticHandler(root string) RequestHandler {
	fs := &fasthttp.FS{
		Root:               root,
		IndexNames:         []string{"index.html"},
		GenerateIndexPages: false,
		AcceptByteRange:    true,
		PathNotFound: func(ctx *RequestCtx) {
			ctx.Error(StatusText(StatusNotFound), StatusNotFound)
		},
	}
	return fs.NewRequestHandler()
}
