package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/midbel/calc/calc"
	"github.com/midbel/cli"
	"github.com/segmentio/fasthash/fnv1a"
	"github.com/tevino/abool/v2"
	"github.com/valyala/fasthttp"
)

var serveCmd = cli.Command{
	Name:    "serve",
	Summary: "evaluate expressions received over http",
	Handler: &ServeCmd{},
}

type ServeOptions struct {
	ListenAddr string
	CacheSize  int
	Timeout    time.Duration
}

type ServeCmd struct {
	ServeOptions
}

func (s *ServeCmd) Run(args []string) error {
	set := cli.NewFlagSet("serve")
	set.StringVar(&s.ListenAddr, "addr", ":8080", "address to listen on")
	set.IntVar(&s.CacheSize, "cache", 1024, "number of results kept in memory")
	set.DurationVar(&s.Timeout, "timeout", 10*time.Second, "read and write timeout")
	if err := set.Parse(args); err != nil {
		return err
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	srv := Serve(s.ServeOptions, stdioLogger())
	go func() {
		<-ctx.Done()
		srv.Shutdown()
	}()
	return srv.ListenAndServe(s.ListenAddr)
}

func stdioLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

type evalServer struct {
	*fasthttp.Server

	cache   *resultCache
	logger  *slog.Logger
	running *abool.AtomicBool
}

func Serve(opts ServeOptions, logger *slog.Logger) *evalServer {
	es := evalServer{
		cache:   newCache(opts.CacheSize),
		logger:  logger,
		running: abool.New(),
	}
	es.Server = &fasthttp.Server{
		Name:         "calc",
		Handler:      es.handle,
		ReadTimeout:  opts.Timeout,
		WriteTimeout: opts.Timeout,
	}
	return &es
}

func (s *evalServer) ListenAndServe(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

func (s *evalServer) Serve(ln net.Listener) error {
	s.running.Set()
	defer s.running.UnSet()
	s.logger.Info("start listening", "addr", ln.Addr().String())
	return s.Server.Serve(ln)
}

func (s *evalServer) Shutdown() error {
	s.logger.Info("shutting down")
	return s.Server.Shutdown()
}

func (s *evalServer) handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/eval":
		s.evaluate(ctx)
	case "/health":
		s.health(ctx)
	default:
		ctx.Error("not found", fasthttp.StatusNotFound)
	}
}

func (s *evalServer) health(ctx *fasthttp.RequestCtx) {
	if !s.running.IsSet() {
		ctx.Error("not running", fasthttp.StatusServiceUnavailable)
		return
	}
	ctx.Success("text/plain; charset=utf-8", []byte("ok"))
}

func (s *evalServer) evaluate(ctx *fasthttp.RequestCtx) {
	var expr []byte
	switch {
	case ctx.IsGet():
		expr = ctx.QueryArgs().Peek("expr")
	case ctx.IsPost():
		expr = ctx.PostBody()
	default:
		ctx.Error("method not allowed", fasthttp.StatusMethodNotAllowed)
		return
	}
	if len(expr) == 0 {
		ctx.Error(errMissing.Error(), fasthttp.StatusBadRequest)
		return
	}
	str := string(expr)
	res, err := s.cache.Eval(str)
	if err != nil {
		s.logger.Debug("evaluation failed", "expr", str, "err", err)
		ctx.Error(err.Error(), statusOf(err))
		return
	}
	ctx.SetContentType("text/plain; charset=utf-8")
	ctx.SetStatusCode(fasthttp.StatusOK)
	fmt.Fprintln(ctx, res)
}

func statusOf(err error) int {
	if errors.Is(err, calc.ErrZero) {
		return fasthttp.StatusUnprocessableEntity
	}
	return fasthttp.StatusBadRequest
}

type result struct {
	expr  string
	value int64
	err   error
}

// resultCache remembers the outcome of the last evaluated expressions. It
// is emptied once it holds limit entries.
type resultCache struct {
	mu      sync.Mutex
	limit   int
	results map[uint64]result
}

func newCache(limit int) *resultCache {
	return &resultCache{
		limit:   limit,
		results: make(map[uint64]result),
	}
}

func (c *resultCache) Eval(expr string) (int64, error) {
	key := fnv1a.HashString64(expr)

	c.mu.Lock()
	r, ok := c.results[key]
	c.mu.Unlock()
	if ok && r.expr == expr {
		return r.value, r.err
	}

	r = result{expr: expr}
	r.value, r.err = calc.Evaluate(expr)
	if c.limit <= 0 {
		return r.value, r.err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.results) >= c.limit {
		clear(c.results)
	}
	c.results[key] = r
	return r.value, r.err
}

func (c *resultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}
