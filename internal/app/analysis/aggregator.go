package analysis

import (
	"sort"
	"time"

	"wallet_intel/internal/domain/entity"
)

const (
	// ActivityWindow is the look-back window of the recent transaction count.
	ActivityWindow = 30 * 24 * time.Hour
	// TopInteractionsLimit caps the number of most-called contracts reported.
	TopInteractionsLimit = 5
)

// Totals holds the USD valuation of a wallet.
type Totals struct {
	TokenValueUSD float64
	STXValueUSD   float64
	TotalValueUSD float64
}

// ComputeTotals values the token holdings plus the native balance at the given unit price.
func ComputeTotals(tokens []entity.TokenHolding, stxBalance, stxPrice float64) Totals {
	var tokenValue float64
	for _, t := range tokens {
		tokenValue += t.ValueUSD
	}
	stxValue := stxBalance * stxPrice
	return Totals{
		TokenValueUSD: tokenValue,
		STXValueUSD:   stxValue,
		TotalValueUSD: tokenValue + stxValue,
	}
}

// ComputeAllocation splits the total value into native and per-category shares.
// With a non-positive total every share is 0.
func ComputeAllocation(tokens []entity.TokenHolding, totals Totals) entity.Allocation {
	if totals.TotalValueUSD <= 0 {
		return entity.Allocation{}
	}

	byCategory := make(map[entity.TokenCategory]float64, 4)
	for _, t := range tokens {
		byCategory[t.Category] += t.ValueUSD
	}

	total := totals.TotalValueUSD
	return entity.Allocation{
		STX:      totals.STXValueUSD / total,
		BlueChip: byCategory[entity.CategoryBlueChip] / total,
		DeFi:     byCategory[entity.CategoryDeFi] / total,
		Meme:     byCategory[entity.CategoryMeme] / total,
		Other:    byCategory[entity.CategoryOther] / total,
	}
}

// ActivitySummary is what the transaction history tells about a wallet.
type ActivitySummary struct {
	Positions       []entity.DeFiPosition
	TopInteractions []string
	TxCount30d      int
	LastActive      *string
}

// SummarizeActivity counts recent transactions, finds the most called contracts
// and detects DeFi protocol usage. The history is ordered newest first before
// it is scanned, so LastActive and each position's LastInteraction are the most
// recent timestamps seen; ties in call counts keep first-encountered order.
func SummarizeActivity(txs []entity.Transaction, tables *ClassificationTables, now time.Time) ActivitySummary {
	ordered := newestFirst(txs)
	cutoff := now.Add(-ActivityWindow)

	summary := ActivitySummary{
		Positions:       []entity.DeFiPosition{},
		TopInteractions: []string{},
	}
	if len(ordered) > 0 && ordered[0].TimestampISO != "" {
		lastActive := ordered[0].TimestampISO
		summary.LastActive = &lastActive
	}

	type callCount struct {
		contract string
		count    int
	}
	var calls []callCount
	callIndex := make(map[string]int)
	positionIndex := make(map[string]int)

	for _, tx := range ordered {
		if tx.Timestamp.After(cutoff) {
			summary.TxCount30d++
		}
		if tx.Type != entity.TxTypeContractCall || tx.ContractID == "" {
			continue
		}

		if i, ok := callIndex[tx.ContractID]; ok {
			calls[i].count++
		} else {
			callIndex[tx.ContractID] = len(calls)
			calls = append(calls, callCount{contract: tx.ContractID, count: 1})
		}

		info, ok := tables.DetectProtocol(tx.ContractID)
		if !ok {
			continue
		}
		i, seen := positionIndex[info.Name]
		if !seen {
			last := tx.TimestampISO
			summary.Positions = append(summary.Positions, entity.DeFiPosition{
				Protocol:        info.Name,
				Type:            info.Type,
				LastInteraction: &last,
			})
			i = len(summary.Positions) - 1
			positionIndex[info.Name] = i
		}
		summary.Positions[i].Interactions++
	}

	sort.SliceStable(calls, func(i, j int) bool { return calls[i].count > calls[j].count })
	for i := 0; i < len(calls) && i < TopInteractionsLimit; i++ {
		summary.TopInteractions = append(summary.TopInteractions, calls[i].contract)
	}
	return summary
}

// SortTokensByValue returns the holdings ordered by USD value, largest first.
func SortTokensByValue(tokens []entity.TokenHolding) []entity.TokenHolding {
	sorted := make([]entity.TokenHolding, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ValueUSD > sorted[j].ValueUSD })
	return sorted
}

// SortNFTsByCount returns the collections ordered by item count, largest first.
func SortNFTsByCount(nfts []entity.NFTHolding) []entity.NFTHolding {
	sorted := make([]entity.NFTHolding, len(nfts))
	copy(sorted, nfts)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Count > sorted[j].Count })
	return sorted
}

// CountNFTs sums the items held across all collections.
func CountNFTs(nfts []entity.NFTHolding) int {
	var n int
	for _, c := range nfts {
		n += c.Count
	}
	return n
}

func newestFirst(txs []entity.Transaction) []entity.Transaction {
	ordered := append([]entity.Transaction(nil), txs...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Timestamp.After(ordered[j].Timestamp) })
	return ordered
}
