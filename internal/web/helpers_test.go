package web_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"Storefront/internal/cart"
	"Storefront/internal/catalog"
	"Storefront/internal/checkout"
	"Storefront/internal/money"
	"Storefront/internal/storage"
	"Storefront/internal/web"
	"Storefront/pkg/kit"
)

const testSecret = "test-secret-test-secret-test-secret"

type testEnv struct {
	ts       *httptest.Server
	kv       *storage.MemStore
	receipts *checkout.MemStore
}

type envOpts struct {
	checkoutLimit int
	metricsToken  string
}

func newEnv(t *testing.T, opts envOpts) *testEnv {
	t.Helper()

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	tokens, err := web.NewVisitorTokens(testSecret)
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}

	reg := prometheus.NewRegistry()
	metrics := kit.NewMetrics(reg)
	kv := storage.NewMemStore()
	receipts := checkout.NewMemStore()

	carts := &cart.Service{
		Store:    cart.NewStore(kv, "", zap.NewNop()),
		Renderer: &cart.Renderer{Catalog: cat, Currency: money.BDT, ShippingFee: cart.DefaultShippingFee},
		Metrics:  metrics,
		Log:      zap.NewNop(),
	}

	s := &web.Server{
		Catalog: cat,
		Carts:   carts,
		Checkout: &checkout.Service{
			Carts:    carts,
			Gateway:  checkout.StubGateway{},
			Receipts: receipts,
			Metrics:  metrics,
		},
		Visitors: tokens,
		Log:      zap.NewNop(),
	}

	if opts.checkoutLimit == 0 {
		opts.checkoutLimit = 100
	}
	h := web.NewHandler(s, web.HTTPDeps{
		Log:                 zap.NewNop(),
		Service:             "storefront",
		Registry:            reg,
		Metrics:             metrics,
		MetricsEnabled:      true,
		MetricsToken:        opts.metricsToken,
		CheckoutLimitPerMin: opts.checkoutLimit,
	})

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return &testEnv{ts: ts, kv: kv, receipts: receipts}
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return &http.Client{Jar: jar}
}

func getDoc(t *testing.T, c *http.Client, url string) *goquery.Document {
	t.Helper()

	resp, err := c.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get %s: status=%d", url, resp.StatusCode)
	}
	return parseDoc(t, resp.Body)
}

func postForm(t *testing.T, c *http.Client, u string, form url.Values) *goquery.Document {
	t.Helper()

	resp, err := c.PostForm(u, form)
	if err != nil {
		t.Fatalf("post %s: %v", u, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("post %s: status=%d", u, resp.StatusCode)
	}
	return parseDoc(t, resp.Body)
}

func parseDoc(t *testing.T, r io.Reader) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func badge(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("[data-cart-count]").First().Text())
}

func doJSON(t *testing.T, c *http.Client, method, url string, body any, headers map[string]string) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}
