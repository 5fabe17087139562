// Package analysis turns normalized wallet data into the derived judgments of a
// wallet report: token categories, allocation, activity, risk, health and insights.
// Everything in this package is pure; upstream I/O lives in the provider adapters.
package analysis

import (
	"strings"

	"wallet_intel/internal/domain/entity"
)

// ProtocolEntry maps a known contract identifier to the protocol it belongs to.
type ProtocolEntry struct {
	Contract string              `json:"contract"`
	Info     entity.ProtocolInfo `json:"info"`
}

// ClassificationTables are the read-only lookup tables used to classify tokens
// and contract interactions. Build them once with NewClassificationTables and share freely.
type ClassificationTables struct {
	blueChip      map[string]struct{}
	meme          map[string]struct{}
	defiFragments []string
	protocols     []ProtocolEntry
	yieldAsset    string
}

var (
	defaultBlueChipSymbols = []string{"STX", "sBTC", "xBTC", "USDA", "sUSDT", "ALEX", "VELAR"}
	defaultMemeSymbols     = []string{"WELSH", "LEO", "PEPE", "NOT", "DROID", "ODIN", "ROO", "GIGA", "MOON"}
	defaultDeFiFragments   = []string{"alex", "velar", "arkadiko"}
	defaultProtocols       = []ProtocolEntry{
		{Contract: "SP3K8BC0PPEVCV7NZ6QSRWPQ2JE9E5B6N3PA0KBR9.alex-vault", Info: entity.ProtocolInfo{Name: "ALEX", Type: entity.PositionVault}},
		{Contract: "SP3K8BC0PPEVCV7NZ6QSRWPQ2JE9E5B6N3PA0KBR9.alex-reserve-pool", Info: entity.ProtocolInfo{Name: "ALEX", Type: entity.PositionStaking}},
		{Contract: "SP3K8BC0PPEVCV7NZ6QSRWPQ2JE9E5B6N3PA0KBR9.alex-launchpad", Info: entity.ProtocolInfo{Name: "ALEX", Type: entity.PositionStaking}},
		{Contract: "SP1Y5YSTAHZ88XYK1VPDH24GY0HPX5J4JECTMY4A1.velar-v2-swap", Info: entity.ProtocolInfo{Name: "Velar", Type: entity.PositionDEX}},
		{Contract: "SP2C2YFP12AJZB4MABJBAJ55XECVS7E4PMMZ89YZR.arkadiko-swap-v2-1", Info: entity.ProtocolInfo{Name: "Arkadiko", Type: entity.PositionDEX}},
		{Contract: "SP2C2YFP12AJZB4MABJBAJ55XECVS7E4PMMZ89YZR.arkadiko-vaults-v1-1", Info: entity.ProtocolInfo{Name: "Arkadiko", Type: entity.PositionVault}},
		{Contract: "SP2C2YFP12AJZB4MABJBAJ55XECVS7E4PMMZ89YZR.arkadiko-stake-pool-v2-1", Info: entity.ProtocolInfo{Name: "Arkadiko", Type: entity.PositionStaking}},
		{Contract: "SP4SZE494VC2YC5JYG7AYFQ44F5Q4PYV7DVMDPBG.stacking-dao-core-v1", Info: entity.ProtocolInfo{Name: "StackingDAO", Type: entity.PositionStaking}},
		{Contract: "SM3KNVZS30WM7F89SXKVVFY4SN9RMPZZ9FX929N0V.sbtc-deposit", Info: entity.ProtocolInfo{Name: "sBTC", Type: entity.PositionVault}},
		{Contract: "SP3DX3H4FEYZJZ586MFBS25ZW3HZDMEW92260R2PR.Wrapped-Bitcoin", Info: entity.ProtocolInfo{Name: "xBTC", Type: entity.PositionVault}},
	}
)

// DefaultYieldAsset is the symbol of the yield-bearing asset suggested to blue-chip heavy wallets.
const DefaultYieldAsset = "sBTC"

// NewClassificationTables builds lookup tables. Symbol sets are matched
// case-insensitively, fragments against the lower-cased contract identifier.
// Protocol entries keep their order: the first matching entry wins.
func NewClassificationTables(blueChip, meme, defiFragments []string, protocols []ProtocolEntry, yieldAsset string) *ClassificationTables {
	t := &ClassificationTables{
		blueChip:   toUpperSet(blueChip),
		meme:       toUpperSet(meme),
		protocols:  append([]ProtocolEntry(nil), protocols...),
		yieldAsset: yieldAsset,
	}
	for _, f := range defiFragments {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			t.defiFragments = append(t.defiFragments, f)
		}
	}
	if t.yieldAsset == "" {
		t.yieldAsset = DefaultYieldAsset
	}
	return t
}

// DefaultTables returns the built-in classification tables.
func DefaultTables() *ClassificationTables {
	return NewClassificationTables(defaultBlueChipSymbols, defaultMemeSymbols, defaultDeFiFragments, defaultProtocols, DefaultYieldAsset)
}

// DefaultProtocols returns a copy of the built-in protocol table.
func DefaultProtocols() []ProtocolEntry {
	return append([]ProtocolEntry(nil), defaultProtocols...)
}

// DefaultBlueChipSymbols returns a copy of the built-in blue-chip symbols.
func DefaultBlueChipSymbols() []string { return append([]string(nil), defaultBlueChipSymbols...) }

// DefaultMemeSymbols returns a copy of the built-in meme symbols.
func DefaultMemeSymbols() []string { return append([]string(nil), defaultMemeSymbols...) }

// DefaultDeFiFragments returns a copy of the built-in DeFi contract fragments.
func DefaultDeFiFragments() []string { return append([]string(nil), defaultDeFiFragments...) }

// Categorize assigns a token category. Blue-chip membership wins over meme
// membership, which wins over a DeFi contract match.
func (t *ClassificationTables) Categorize(symbol, contract string) entity.TokenCategory {
	upper := strings.ToUpper(symbol)
	if _, ok := t.blueChip[upper]; ok {
		return entity.CategoryBlueChip
	}
	if _, ok := t.meme[upper]; ok {
		return entity.CategoryMeme
	}
	lowerContract := strings.ToLower(contract)
	for _, fragment := range t.defiFragments {
		if strings.Contains(lowerContract, fragment) {
			return entity.CategoryDeFi
		}
	}
	return entity.CategoryOther
}

// DetectProtocol reports the protocol a contract call belongs to. A call matches an
// entry when it contains the entry's deployer address (the part before the '.').
func (t *ClassificationTables) DetectProtocol(contractID string) (entity.ProtocolInfo, bool) {
	if contractID == "" {
		return entity.ProtocolInfo{}, false
	}
	for _, p := range t.protocols {
		deployer, _, _ := strings.Cut(p.Contract, ".")
		if deployer != "" && strings.Contains(contractID, deployer) {
			return p.Info, true
		}
	}
	return entity.ProtocolInfo{}, false
}

// IsYieldAsset reports whether symbol is the designated yield-bearing asset.
func (t *ClassificationTables) IsYieldAsset(symbol string) bool {
	return strings.EqualFold(symbol, t.yieldAsset)
}

// YieldAsset returns the designated yield-bearing asset symbol.
func (t *ClassificationTables) YieldAsset() string {
	return t.yieldAsset
}

func toUpperSet(symbols []string) map[string]struct{} {
	set := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		if s = strings.TrimSpace(s); s != "" {
			set[strings.ToUpper(s)] = struct{}{}
		}
	}
	return set
}
