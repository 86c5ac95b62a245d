package xhttp

import (
	"net"
	"os"
	"os/signal"
	"reflect"
	"runtime"
	"slices"
	"syscall"
	"time"

	"github.com/pingui001/Crud-y-DB/pkg/logger"
	"github.com/valyala/fasthttp"
)

var DefaultServerOption = ServerOption{
	Handler: func(ctx *RequestCtx) {
		ctx.Error(StatusText(StatusNotFound), StatusNotFound)
	},
	IdleTimeout:           time.Second * 10,
	MaxIdleWorkerDuration: time.Minute * 1,
	TCPKeepalivePeriod:    time.Minute * 120,
	MaxRequestBodySize:    32 * 1024 * 1024, // CSV uploads can be a few MB each
	ReadBufferSize:        1024 * 4,
	WriteBufferSize:       1024 * 4,
	ReadTimeout:           time.Second * 30,
	WriteTimeout:          time.Second * 30,
	Concurrency:           30_000,
	MaxConnsPerIP:         10_000,
	MaxRequestsPerConn:    0,
	ErrorHandler: func(ctx *RequestCtx, err error) {
		ctx.Logger().Printf("[xhttp] error: %s", err)
	},
	TCPKeepalive:                 true,
	DisablePreParseMultipartForm: true,
	LogAllErrors:                 true,
	NoDefaultServerHeader:        true,
	NoDefaultDate:                true,
	NoDefaultContentType:         true,
	CloseOnShutdown:              true,
	CompressionLevel:             fasthttp.CompressBestSpeed,
}

type RequestHeader = fasthttp.RequestHeader
type ResponseHeader = fasthttp.ResponseHeader
type Server = fasthttp.Server

type ServerOption struct {
	Handler RequestHandler

	// idle connections held open too long exhaust file descriptors
	IdleTimeout           time.Duration
	MaxIdleWorkerDuration time.Duration
	TCPKeepalivePeriod    time.Duration
	MaxRequestBodySize    int
	ReadBufferSize        int
	WriteBufferSize       int
	ReadTimeout           time.Duration
	WriteTimeout          time.Duration

	// Concurrency caps in-flight requests; excess connections queue at
	// accept time instead of piling work onto the database pool.
	Concurrency        int
	MaxConnsPerIP      int
	MaxRequestsPerConn int

	ErrorHandler                 func(ctx *RequestCtx, err error)
	Name                         string
	DisableKeepalive             bool
	TCPKeepalive                 bool
	ReduceMemoryUsage            bool
	DisablePreParseMultipartForm bool
	LogAllErrors                 bool
	NoDefaultServerHeader        bool
	NoDefaultDate                bool
	NoDefaultContentType         bool
	CloseOnShutdown              bool
	ConnState                    func(net.Conn, fasthttp.ConnState)
	Logger                       logger.Logger
	CompressionLevel             int
}

type Engine struct {
	*Router
	*Server
	option ServerOption
	middle []MiddlewareFunc
}

func newServer(options ServerOption) *fasthttp.Server {
	return &fasthttp.Server{
		Handler:                      options.Handler,
		ErrorHandler:                 options.ErrorHandler,
		Name:                         options.Name,
		Concurrency:                  options.Concurrency,
		ReadBufferSize:               options.ReadBufferSize,
		WriteBufferSize:              options.WriteBufferSize,
		ReadTimeout:                  options.ReadTimeout,
		WriteTimeout:                 options.WriteTimeout,
		IdleTimeout:                  options.IdleTimeout,
		MaxConnsPerIP:                options.MaxConnsPerIP,
		MaxRequestsPerConn:           options.MaxRequestsPerConn,
		MaxIdleWorkerDuration:        options.MaxIdleWorkerDuration,
		TCPKeepalivePeriod:           options.TCPKeepalivePeriod,
		MaxRequestBodySize:           options.MaxRequestBodySize,
		DisableKeepalive:             options.DisableKeepalive,
		TCPKeepalive:                 options.TCPKeepalive,
		ReduceMemoryUsage:            options.ReduceMemoryUsage,
		DisablePreParseMultipartForm: options.DisablePreParseMultipartForm,
		LogAllErrors:                 options.LogAllErrors,
		NoDefaultServerHeader:        options.NoDefaultServerHeader,
		NoDefaultDate:                options.NoDefaultDate,
		NoDefaultContentType:         options.NoDefaultContentType,
		CloseOnShutdown:              options.CloseOnShutdown,
		ConnState:                    options.ConnState,
		Logger:                       options.Logger,
	}
}

func NewServer(options ServerOption) *Engine {
	if options.Logger == nil {
		options.Logger = logger.GetLogger()
	}
	return &Engine{
		Server: newServer(options),
		Router: NewRouter(),
		option: options,
	}
}

func CreateServer() *Engine {
	s := NewServer(DefaultServerOption)
	s.Router = CreateDefaultRouter()
	s.Server.Logger = logger.GetLogger()
	return s
}

func (e *Engine) ListenAndServe(addr string) error {
	if err := e.DoRouting(); err != nil {
		return err
	}
	e.Server.Logger.Printf("[xhttp] server is listening on %s", addr)
	return e.Server.ListenAndServe(addr)
}

// DoRouting installs the router as the server handler and wraps it with the
// registered middleware chain, first registered running outermost.
func (e *Engine) DoRouting() error {
	for method, route := range e.Router.List() {
		for _, r := range route {
			e.Server.Logger.Printf("[xhttp] method: %s, path: %s", method, r)
		}
	}
	e.Server.Handler = e.Router.Handler
	slices.Reverse(e.middle)
	for i, m := range e.middle {
		e.Server.Handler = m(e.Server.Handler)
		e.Server.Logger.Printf("[xhttp] middleware %d registered - %s", i+1, runtime.FuncForPC(reflect.ValueOf(m).Pointer()).Name())
	}
	return nil
}

func (e *Engine) CloseOnSignal() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig
		e.Shutdown()
	}()
}

// Use adds middleware which runs for every request, in registration order.
func (e *Engine) Use(middleware MiddlewareFunc) {
	e.middle = append(e.middle, middleware)
}

// Shutdown gracefully shuts down the server without interrupting any active
// connections.
func (e *Engine) Shutdown() {
	e.Server.Logger.Printf("[xhttp] server is shutting down, process id: %d", os.Getpid())
	if err := e.Server.Shutdown(); err != nil {
		e.Server.Logger.Printf("[xhttp] error while shutting down: %v", err)
	}
}
