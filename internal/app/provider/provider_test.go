package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"wallet_intel/internal/app/analysis"
	"wallet_intel/internal/client"
	"wallet_intel/internal/domain/entity"
	"wallet_intel/internal/pkg/logger"
	"wallet_intel/internal/pkg/metrics"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAddress = "SP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ7"

func newUpstream(t *testing.T, routes map[string]http.HandlerFunc) client.Options {
	t.Helper()
	mux := http.NewServeMux()
	for path, h := range routes {
		mux.HandleFunc(path, h)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return client.Options{BaseURL: srv.URL, Timeout: time.Second}
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func counting(n *atomic.Int32, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n.Add(1)
		h(w, r)
	}
}

func TestMarketProvider(t *testing.T) {
	nop := zap.NewNop()
	log := logger.FromZap(nop, "MarketProvider")
	ctx := context.Background()

	t.Run("coingecko price is cached", func(t *testing.T) {
		var cgHits, teneroHits atomic.Int32
		cg := newUpstream(t, map[string]http.HandlerFunc{
			"/api/v3/simple/price": counting(&cgHits, respond(http.StatusOK, `{"blockstack":{"usd":1.25}}`)),
		})
		tn := newUpstream(t, map[string]http.HandlerFunc{
			"/v1/stacks/tokens/" + wrappedSTXContract: counting(&teneroHits, respond(http.StatusOK, `{"data":{"price_usd":"2"}}`)),
		})
		p := NewMarketProvider(client.NewCoinGeckoClient(cg, "", nop), client.NewTeneroClient(tn, nop), time.Minute, 0.85, log)

		require.Equal(t, 1.25, p.STXPrice(ctx))
		require.Equal(t, 1.25, p.STXPrice(ctx))
		require.Equal(t, int32(1), cgHits.Load())
		require.Equal(t, int32(0), teneroHits.Load())
	})

	t.Run("tenero is the second source", func(t *testing.T) {
		cg := newUpstream(t, map[string]http.HandlerFunc{
			"/api/v3/simple/price": respond(http.StatusTooManyRequests, `{}`),
		})
		tn := newUpstream(t, map[string]http.HandlerFunc{
			"/v1/stacks/tokens/" + wrappedSTXContract: respond(http.StatusOK, `{"data":{"symbol":"wSTX","price_usd":0.91}}`),
		})
		before := testutil.ToFloat64(metrics.UpstreamFallbacks.WithLabelValues(sourceCoinGecko))
		p := NewMarketProvider(client.NewCoinGeckoClient(cg, "", nop), client.NewTeneroClient(tn, nop), time.Minute, 0.85, log)

		require.Equal(t, 0.91, p.STXPrice(ctx))
		require.Equal(t, before+1, testutil.ToFloat64(metrics.UpstreamFallbacks.WithLabelValues(sourceCoinGecko)))
	})

	t.Run("zero price is not accepted", func(t *testing.T) {
		cg := newUpstream(t, map[string]http.HandlerFunc{
			"/api/v3/simple/price": respond(http.StatusOK, `{"blockstack":{"usd":0}}`),
		})
		tn := newUpstream(t, map[string]http.HandlerFunc{
			"/v1/stacks/tokens/" + wrappedSTXContract: respond(http.StatusOK, `{"data":null}`),
		})
		p := NewMarketProvider(client.NewCoinGeckoClient(cg, "", nop), client.NewTeneroClient(tn, nop), time.Minute, 0.5, log)

		require.Equal(t, 0.5, p.STXPrice(ctx))
	})

	t.Run("last known price survives expiry", func(t *testing.T) {
		var fail atomic.Bool
		cg := newUpstream(t, map[string]http.HandlerFunc{
			"/api/v3/simple/price": func(w http.ResponseWriter, r *http.Request) {
				if fail.Load() {
					respond(http.StatusInternalServerError, `{}`)(w, r)
					return
				}
				respond(http.StatusOK, `{"blockstack":{"usd":1.7}}`)(w, r)
			},
		})
		tn := newUpstream(t, map[string]http.HandlerFunc{})
		p := NewMarketProvider(client.NewCoinGeckoClient(cg, "", nop), client.NewTeneroClient(tn, nop), 20*time.Millisecond, 0.85, log)

		require.Equal(t, 1.7, p.STXPrice(ctx))
		fail.Store(true)
		time.Sleep(50 * time.Millisecond)
		require.Equal(t, 1.7, p.STXPrice(ctx))
	})

	t.Run("fallback price without any answer", func(t *testing.T) {
		empty := newUpstream(t, map[string]http.HandlerFunc{})
		p := NewMarketProvider(client.NewCoinGeckoClient(empty, "", nop), client.NewTeneroClient(empty, nop), 0, 0, log)

		require.Equal(t, DefaultFallbackPrice, p.STXPrice(ctx))
	})
}

func TestAccountProvider(t *testing.T) {
	nop := zap.NewNop()
	log := logger.FromZap(nop, "AccountProvider")
	ctx := context.Background()

	t.Run("balance and name", func(t *testing.T) {
		opts := newUpstream(t, map[string]http.HandlerFunc{
			"/extended/v1/address/" + testAddress + "/stx": respond(http.StatusOK, `{"balance":"2500000000"}`),
			"/v1/addresses/stacks/" + testAddress:          respond(http.StatusOK, `{"names":["alice.btc","bob.btc"]}`),
		})
		p := NewAccountProvider(client.NewHiroClient(opts, nop), log)

		require.Equal(t, 2500.0, p.STXBalance(ctx, testAddress))
		name := p.BNSName(ctx, testAddress)
		require.NotNil(t, name)
		require.Equal(t, "alice.btc", *name)
	})

	t.Run("failures collapse to defaults", func(t *testing.T) {
		opts := newUpstream(t, map[string]http.HandlerFunc{
			"/extended/v1/address/" + testAddress + "/stx": respond(http.StatusBadGateway, ``),
		})
		before := testutil.ToFloat64(metrics.UpstreamFallbacks.WithLabelValues(sourceBalance))
		p := NewAccountProvider(client.NewHiroClient(opts, nop), log)

		require.Equal(t, 0.0, p.STXBalance(ctx, testAddress))
		require.Nil(t, p.BNSName(ctx, testAddress))
		require.Equal(t, before+1, testutil.ToFloat64(metrics.UpstreamFallbacks.WithLabelValues(sourceBalance)))
	})

	t.Run("no names", func(t *testing.T) {
		opts := newUpstream(t, map[string]http.HandlerFunc{
			"/v1/addresses/stacks/" + testAddress: respond(http.StatusOK, `{"names":[]}`),
		})
		p := NewAccountProvider(client.NewHiroClient(opts, nop), log)
		require.Nil(t, p.BNSName(ctx, testAddress))
	})
}

func TestHoldingsProvider(t *testing.T) {
	nop := zap.NewNop()
	log := logger.FromZap(nop, "HoldingsProvider")
	ctx := context.Background()
	tables := analysis.DefaultTables()

	t.Run("tokens and nfts", func(t *testing.T) {
		var nftQuery string
		tenero := newUpstream(t, map[string]http.HandlerFunc{
			"/v1/stacks/wallets/" + testAddress + "/holdings": respond(http.StatusOK, `{"data":{"rows":[
				{"token":{"symbol":"ALEX","name":"Alex","price_usd":"0.1","change_24h":-2.5},"token_address":"SP3K8BC0PPEVCV7NZ6QSRWPQ2JE9E5B6N3PA0KBR9.token-alex","balance":"100000000","balance_formatted":"1000","value_usd":"100"},
				{"token":null,"token_address":"SP1.mystery","balance":"5","balance_formatted":"5","value_usd":null}
			]}}`),
		})
		hiro := newUpstream(t, map[string]http.HandlerFunc{
			"/extended/v1/tokens/nft/holdings": func(w http.ResponseWriter, r *http.Request) {
				nftQuery = r.URL.Query().Get("limit")
				respond(http.StatusOK, `{"results":[
					{"asset_identifier":"SP1.punks::punk","value":{"repr":"u3"}},
					{"asset_identifier":"SP1.punks::punk","value":{"repr":"u9"}},
					{"asset_identifier":"SP2.apes::ape","value":{"repr":"u1"}}
				]}`)(w, r)
			},
		})
		p := NewHoldingsProvider(client.NewTeneroClient(tenero, nop), client.NewHiroClient(hiro, nop), tables, log)

		tokens := p.TokenHoldings(ctx, testAddress)
		require.Len(t, tokens, 2)
		require.Equal(t, "ALEX", tokens[0].Symbol)
		require.Equal(t, 100.0, tokens[0].ValueUSD)
		require.NotNil(t, tokens[0].Change24h)
		require.Equal(t, -2.5, *tokens[0].Change24h)
		require.Equal(t, "UNKNOWN", tokens[1].Symbol)
		require.Equal(t, 0.0, tokens[1].ValueUSD)
		require.Nil(t, tokens[1].Change24h)

		want := []entity.NFTHolding{
			{Collection: "SP1.punks", CollectionName: "punks", TokenID: 3, Count: 2},
			{Collection: "SP2.apes", CollectionName: "apes", TokenID: 1, Count: 1},
		}
		require.Equal(t, "", cmp.Diff(want, p.NFTHoldings(ctx, testAddress)))
		require.Equal(t, "100", nftQuery)
	})

	t.Run("missing data is an empty list", func(t *testing.T) {
		tenero := newUpstream(t, map[string]http.HandlerFunc{
			"/v1/stacks/wallets/" + testAddress + "/holdings": respond(http.StatusOK, `{"data":null}`),
		})
		hiro := newUpstream(t, map[string]http.HandlerFunc{})
		p := NewHoldingsProvider(client.NewTeneroClient(tenero, nop), client.NewHiroClient(hiro, nop), tables, log)

		require.Empty(t, p.TokenHoldings(ctx, testAddress))
		require.NotNil(t, p.TokenHoldings(ctx, testAddress))
		nfts := p.NFTHoldings(ctx, testAddress)
		require.NotNil(t, nfts)
		require.Empty(t, nfts)
	})
}

func TestActivityProvider(t *testing.T) {
	nop := zap.NewNop()
	log := logger.FromZap(nop, "ActivityProvider")
	ctx := context.Background()

	t.Run("history", func(t *testing.T) {
		opts := newUpstream(t, map[string]http.HandlerFunc{
			"/extended/v1/address/" + testAddress + "/transactions": respond(http.StatusOK, `{"results":[
				{"tx_id":"0x01","tx_type":"contract_call","tx_status":"success","sender_address":"`+testAddress+`","burn_block_time_iso":"2026-09-30T12:00:00Z","contract_call":{"contract_id":"SP1.velar-v2-swap"}},
				{"tx_id":"0x02","tx_type":"token_transfer","tx_status":"success","sender_address":"`+testAddress+`","burn_block_time_iso":"bogus"}
			]}`),
		})
		p := NewActivityProvider(client.NewHiroClient(opts, nop), log)

		want := []entity.Transaction{
			{
				TxID: "0x01", Type: "contract_call", Status: "success", Sender: testAddress,
				ContractID: "SP1.velar-v2-swap", Timestamp: time.Date(2026, 9, 30, 12, 0, 0, 0, time.UTC),
				TimestampISO: "2026-09-30T12:00:00Z",
			},
			{TxID: "0x02", Type: "token_transfer", Status: "success", Sender: testAddress, TimestampISO: "bogus"},
		}
		require.Equal(t, "", cmp.Diff(want, p.Transactions(ctx, testAddress)))
	})

	t.Run("failure is an empty history", func(t *testing.T) {
		opts := newUpstream(t, map[string]http.HandlerFunc{})
		p := NewActivityProvider(client.NewHiroClient(opts, nop), log)
		txs := p.Transactions(ctx, testAddress)
		require.NotNil(t, txs)
		require.Empty(t, txs)
	})
}
