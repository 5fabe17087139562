package analysis

import (
	"math"
	"strconv"
	"strings"
	"time"

	"wallet_intel/internal/domain/entity"
	upstream "wallet_intel/internal/entity"
	"wallet_intel/internal/pkg/utils"
)

const (
	unknownSymbol     = "UNKNOWN"
	unknownTokenName  = "Unknown Token"
	unknownCollection = "Unknown"

	assetIdentifierSeparator = "::"
)

// NormalizeTokenHolding maps a holdings row to a TokenHolding and classifies it.
// Missing metadata falls back to placeholders and unparsable numbers to 0.
func NormalizeTokenHolding(row upstream.TeneroHolding, tables *ClassificationTables) entity.TokenHolding {
	symbol, name := unknownSymbol, unknownTokenName
	var price, change string
	if row.Token != nil {
		if row.Token.Symbol != "" {
			symbol = row.Token.Symbol
		}
		if row.Token.Name != "" {
			name = row.Token.Name
		}
		price = row.Token.PriceUSD.String()
		change = row.Token.Change24h.String()
	}

	return entity.TokenHolding{
		Symbol:           symbol,
		Name:             name,
		Contract:         row.TokenAddress,
		Balance:          row.Balance.String(),
		BalanceFormatted: utils.ParseFloatOrZero(row.BalanceFormatted.String()),
		ValueUSD:         utils.ParseFloatOrZero(row.ValueUSD.String()),
		PriceUSD:         utils.ParseFloatOrZero(price),
		Change24h:        parseOptionalFloat(change),
		Category:         tables.Categorize(symbol, row.TokenAddress),
	}
}

// NormalizeTokenHoldings maps every row, keeping provider order.
func NormalizeTokenHoldings(rows []upstream.TeneroHolding, tables *ClassificationTables) []entity.TokenHolding {
	holdings := make([]entity.TokenHolding, 0, len(rows))
	for _, row := range rows {
		holdings = append(holdings, NormalizeTokenHolding(row, tables))
	}
	return holdings
}

// GroupNFTHoldings collapses individual NFT assets into one record per collection.
// Collections appear in the order they were first seen; the representative token
// id of a collection is the first one the provider listed for it.
func GroupNFTHoldings(assets []upstream.HiroNFTHolding) []entity.NFTHolding {
	index := make(map[string]int)
	groups := make([]entity.NFTHolding, 0)

	for _, asset := range assets {
		collection, _, _ := strings.Cut(asset.AssetIdentifier, assetIdentifierSeparator)
		if collection == "" {
			collection = unknownCollection
		}

		i, seen := index[collection]
		if !seen {
			groups = append(groups, entity.NFTHolding{
				Collection:     collection,
				CollectionName: collectionName(collection),
				TokenID:        parseClarityUint(asset.Value.Repr),
			})
			i = len(groups) - 1
			index[collection] = i
		}
		groups[i].Count++
	}
	return groups
}

// NormalizeSTXBalance converts the micro-STX balance to STX.
func NormalizeSTXBalance(raw upstream.HiroSTXBalance) float64 {
	return utils.FromBaseUnits(raw.Balance.String(), utils.MicroUnitDecimals)
}

// NormalizeBNSName returns the first registered name, or nil.
func NormalizeBNSName(raw upstream.HiroNames) *string {
	if len(raw.Names) == 0 || raw.Names[0] == "" {
		return nil
	}
	name := raw.Names[0]
	return &name
}

// NormalizeTransactions maps history entries, keeping provider order.
// Unparsable timestamps become the zero time.
func NormalizeTransactions(raw []upstream.HiroTransaction) []entity.Transaction {
	txs := make([]entity.Transaction, 0, len(raw))
	for _, tx := range raw {
		normalized := entity.Transaction{
			TxID:         tx.TxID,
			Type:         tx.TxType,
			Status:       tx.TxStatus,
			Sender:       tx.SenderAddress,
			TimestampISO: tx.BurnBlockTimeISO,
		}
		if ts, err := time.Parse(time.RFC3339, tx.BurnBlockTimeISO); err == nil {
			normalized.Timestamp = ts
		}
		if tx.ContractCall != nil {
			normalized.ContractID = tx.ContractCall.ContractID
		}
		txs = append(txs, normalized)
	}
	return txs
}

func collectionName(collection string) string {
	if i := strings.LastIndex(collection, "."); i >= 0 {
		if name := collection[i+1:]; name != "" {
			return name
		}
		return unknownCollection
	}
	return collection
}

// parseClarityUint reads a Clarity uint repr such as "u42"; anything else yields 0.
func parseClarityUint(repr string) int64 {
	v, err := strconv.ParseInt(strings.Replace(strings.TrimSpace(repr), "u", "", 1), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
