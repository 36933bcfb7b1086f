package main

import (
	"io"
	"log/slog"
	"net"
	"net/url"
	"strings"
	"testing"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

func startServer(t *testing.T, opts ServeOptions) (*evalServer, *fasthttp.Client) {
	t.Helper()
	var (
		ln  = fasthttputil.NewInmemoryListener()
		srv = Serve(opts, slog.New(slog.NewTextHandler(io.Discard, nil)))
	)
	go srv.Serve(ln)
	t.Cleanup(func() {
		srv.Shutdown()
	})
	client := fasthttp.Client{
		Dial: func(_ string) (net.Conn, error) {
			return ln.Dial()
		},
	}
	return srv, &client
}

func TestServeEval(t *testing.T) {
	tests := []struct {
		Expr   string
		Status int
		Body   string
	}{
		{
			Expr:   "2 + 3 * 4",
			Status: fasthttp.StatusOK,
			Body:   "14",
		},
		{
			Expr:   "5 + 9 * 89 - 23 + 65 * 4 + 42 - 23 * 2 * 3",
			Status: fasthttp.StatusOK,
			Body:   "947",
		},
		{
			Expr:   "5 / 0",
			Status: fasthttp.StatusUnprocessableEntity,
			Body:   "division by zero",
		},
		{
			Expr:   "2 3",
			Status: fasthttp.StatusBadRequest,
			Body:   "trailing tokens",
		},
		{
			Expr:   "2 $ 3",
			Status: fasthttp.StatusBadRequest,
			Body:   "unsupported character",
		},
		{
			Expr:   "",
			Status: fasthttp.StatusBadRequest,
			Body:   errMissing.Error(),
		},
	}
	_, client := startServer(t, ServeOptions{CacheSize: 16})
	for _, tt := range tests {
		uri := "http://calc/eval?expr=" + url.QueryEscape(tt.Expr)
		code, body, err := client.Get(nil, uri)
		if err != nil {
			t.Errorf("%q: request failed: %s", tt.Expr, err)
			continue
		}
		if code != tt.Status {
			t.Errorf("%q: status mismatched! want %d, got %d", tt.Expr, tt.Status, code)
		}
		if !strings.Contains(string(body), tt.Body) {
			t.Errorf("%q: body mismatched! want %q in %q", tt.Expr, tt.Body, body)
		}
	}
}

func TestServePost(t *testing.T) {
	_, client := startServer(t, ServeOptions{})

	var (
		req = fasthttp.AcquireRequest()
		res = fasthttp.AcquireResponse()
	)
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(res)

	req.SetRequestURI("http://calc/eval")
	req.Header.SetMethod(fasthttp.MethodPost)
	req.SetBodyString("(2 + 3) * 4")
	if err := client.Do(req, res); err != nil {
		t.Fatalf("request failed: %s", err)
	}
	if res.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status mismatched! want 200, got %d", res.StatusCode())
	}
	if got := strings.TrimSpace(string(res.Body())); got != "20" {
		t.Errorf("body mismatched! want 20, got %q", got)
	}
}

func TestServeHealth(t *testing.T) {
	_, client := startServer(t, ServeOptions{})
	code, body, err := client.Get(nil, "http://calc/health")
	if err != nil {
		t.Fatalf("request failed: %s", err)
	}
	if code != fasthttp.StatusOK || string(body) != "ok" {
		t.Errorf("server not healthy: %d %q", code, body)
	}
	code, _, err = client.Get(nil, "http://calc/unknown")
	if err != nil {
		t.Fatalf("request failed: %s", err)
	}
	if code != fasthttp.StatusNotFound {
		t.Errorf("status mismatched! want 404, got %d", code)
	}
}

func TestResultCache(t *testing.T) {
	cache := newCache(2)
	for _, expr := range []string{"1 + 1", "1 + 1", "2 * 2"} {
		if _, err := cache.Eval(expr); err != nil {
			t.Fatalf("%s: fail to evaluate: %s", expr, err)
		}
	}
	if n := cache.Len(); n != 2 {
		t.Errorf("cache size mismatched! want 2, got %d", n)
	}
	if _, err := cache.Eval("3 - 3"); err != nil {
		t.Fatalf("fail to evaluate: %s", err)
	}
	if n := cache.Len(); n != 1 {
		t.Errorf("full cache should have been emptied! got %d entries", n)
	}
	res, err := cache.Eval("2 * 2")
	if err != nil || res != 4 {
		t.Errorf("cached result mismatched! got %d, %v", res, err)
	}

	nocache := newCache(0)
	if _, err := nocache.Eval("1"); err != nil || nocache.Len() != 0 {
		t.Errorf("disabled cache should stay empty")
	}
}
