package analysis

import (
	"fmt"
	"math"
	"testing"
	"time"

	"wallet_intel/internal/domain/entity"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

func testTx(id, txType, contract string, age time.Duration) entity.Transaction {
	ts := testNow.Add(-age)
	return entity.Transaction{
		TxID:         id,
		Type:         txType,
		Status:       "success",
		ContractID:   contract,
		Timestamp:    ts,
		TimestampISO: ts.Format(time.RFC3339),
	}
}

func TestComputeAllocation(t *testing.T) {
	t.Run("fractions sum to one", func(t *testing.T) {
		tokens := []entity.TokenHolding{
			{Symbol: "sBTC", ValueUSD: 1234.56, Category: entity.CategoryBlueChip},
			{Symbol: "ALEX", ValueUSD: 77.7, Category: entity.CategoryBlueChip},
			{Symbol: "ATALEX", ValueUSD: 10.01, Category: entity.CategoryDeFi},
			{Symbol: "WELSH", ValueUSD: 333.3, Category: entity.CategoryMeme},
			{Symbol: "FOO", ValueUSD: 0.123, Category: entity.CategoryOther},
		}
		totals := ComputeTotals(tokens, 4321.987, 0.6173)
		allocation := ComputeAllocation(tokens, totals)

		sum := allocation.STX + allocation.BlueChip + allocation.DeFi + allocation.Meme + allocation.Other
		require.InDelta(t, 1.0, sum, 1e-9)
		require.InDelta(t, (1234.56+77.7)/totals.TotalValueUSD, allocation.BlueChip, 1e-12)
		require.InDelta(t, 4321.987*0.6173, totals.STXValueUSD, 1e-9)
	})

	t.Run("zero total yields zero fractions", func(t *testing.T) {
		tokens := []entity.TokenHolding{{Symbol: "DUST", ValueUSD: 0, Category: entity.CategoryOther}}
		allocation := ComputeAllocation(tokens, ComputeTotals(tokens, 0, 0.85))

		require.Equal(t, entity.Allocation{}, allocation)
		for _, v := range []float64{allocation.STX, allocation.BlueChip, allocation.DeFi, allocation.Meme, allocation.Other} {
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		}
	})
}

func TestSummarizeActivity(t *testing.T) {
	tables := DefaultTables()
	const (
		alexVault   = "SP3K8BC0PPEVCV7NZ6QSRWPQ2JE9E5B6N3PA0KBR9.alex-vault"
		alexReserve = "SP3K8BC0PPEVCV7NZ6QSRWPQ2JE9E5B6N3PA0KBR9.alex-reserve-pool"
		velarSwap   = "SP1Y5YSTAHZ88XYK1VPDH24GY0HPX5J4JECTMY4A1.velar-v2-swap"
		game        = "SP000000000000000000002Q6VF78.some-game"
	)
	day := 24 * time.Hour

	t.Run("unsorted history", func(t *testing.T) {
		txs := []entity.Transaction{
			testTx("velar-old", entity.TxTypeContractCall, velarSwap, 40*day),
			testTx("alex-newest", entity.TxTypeContractCall, alexVault, 1*day),
			testTx("transfer", "token_transfer", "", 2*day),
			testTx("game-recent", entity.TxTypeContractCall, game, 5*day),
			testTx("alex-reserve", entity.TxTypeContractCall, alexReserve, 3*day),
			testTx("game-old", entity.TxTypeContractCall, game, 50*day),
		}

		got := SummarizeActivity(txs, tables, testNow)

		newest := testNow.Add(-1 * day).Format(time.RFC3339)
		velarAt := testNow.Add(-40 * day).Format(time.RFC3339)
		want := ActivitySummary{
			Positions: []entity.DeFiPosition{
				{Protocol: "ALEX", Type: entity.PositionVault, Interactions: 2, LastInteraction: &newest},
				{Protocol: "Velar", Type: entity.PositionDEX, Interactions: 1, LastInteraction: &velarAt},
			},
			TopInteractions: []string{game, alexVault, alexReserve, velarSwap},
			TxCount30d:      4,
			LastActive:      &newest,
		}
		require.Equal(t, "", cmp.Diff(want, got))
	})

	t.Run("window boundary is exclusive", func(t *testing.T) {
		txs := []entity.Transaction{
			testTx("edge", "token_transfer", "", ActivityWindow),
			testTx("inside", "token_transfer", "", ActivityWindow-time.Second),
		}
		require.Equal(t, 1, SummarizeActivity(txs, tables, testNow).TxCount30d)
	})

	t.Run("top interactions keep first encountered order on ties", func(t *testing.T) {
		var txs []entity.Transaction
		for i := 0; i < 7; i++ {
			txs = append(txs, testTx(fmt.Sprint(i), entity.TxTypeContractCall, fmt.Sprintf("SPX.contract-%d", i), time.Duration(i+1)*time.Hour))
		}

		got := SummarizeActivity(txs, tables, testNow)
		require.Equal(t, []string{"SPX.contract-0", "SPX.contract-1", "SPX.contract-2", "SPX.contract-3", "SPX.contract-4"}, got.TopInteractions)
		require.Empty(t, got.Positions)
	})

	t.Run("empty history", func(t *testing.T) {
		got := SummarizeActivity(nil, tables, testNow)
		require.Equal(t, 0, got.TxCount30d)
		require.Nil(t, got.LastActive)
		require.NotNil(t, got.Positions)
		require.NotNil(t, got.TopInteractions)
	})

	t.Run("missing timestamp leaves last active unset", func(t *testing.T) {
		got := SummarizeActivity([]entity.Transaction{{TxID: "pending", Type: "token_transfer"}}, tables, testNow)
		require.Nil(t, got.LastActive)
	})
}

func TestSortHelpers(t *testing.T) {
	tokens := []entity.TokenHolding{
		{Symbol: "A", ValueUSD: 1},
		{Symbol: "B", ValueUSD: 5},
		{Symbol: "C", ValueUSD: 1},
		{Symbol: "D", ValueUSD: 3},
	}
	sorted := SortTokensByValue(tokens)
	var symbols []string
	for _, s := range sorted {
		symbols = append(symbols, s.Symbol)
	}
	require.Equal(t, []string{"B", "D", "A", "C"}, symbols)
	require.Equal(t, "A", tokens[0].Symbol)

	nfts := SortNFTsByCount([]entity.NFTHolding{{Collection: "x", Count: 1}, {Collection: "y", Count: 4}})
	require.Equal(t, "y", nfts[0].Collection)
	require.Equal(t, 5, CountNFTs(nfts))

	require.NotNil(t, SortTokensByValue(nil))
	require.NotNil(t, SortNFTsByCount(nil))
}
