package entity

// CoinGeckoSimplePrice is the response of /simple/price, keyed by coin id then currency.
type CoinGeckoSimplePrice map[string]map[string]float64
