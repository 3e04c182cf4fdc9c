package coingecko

// CoinInfo pairs a display name with its CoinGecko API identifier.
type CoinInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SupportedCoins is the catalog of coins the dashboard can track, keyed
// by display name. Values are CoinGecko API identifiers.
var SupportedCoins = map[string]string{
	"Bitcoin":         "bitcoin",
	"Ethereum":        "ethereum",
	"Cardano":         "cardano",
	"Solana":          "solana",
	"Ripple (XRP)":    "ripple",
	"Dogecoin":        "dogecoin",
	"Polkadot":        "polkadot",
	"Chainlink":       "chainlink",
	"Avalanche":       "avalanche-2",
	"Polygon (MATIC)": "matic-network",
	"Litecoin":        "litecoin",
	"Uniswap":         "uniswap",
	"Stellar":         "stellar",
	"Cosmos":          "cosmos",
	"Tron":            "tron",
	"Near Protocol":   "near",
	"Algorand":        "algorand",
	"VeChain":         "vechain",
	"Fantom":          "fantom",
	"Aave":            "aave",
	"Tezos":           "tezos",
	"The Sandbox":     "the-sandbox",
}

// coinNamesByID is the reverse index of SupportedCoins.
var coinNamesByID = func() map[string]string {
	m := make(map[string]string, len(SupportedCoins))
	for name, id := range SupportedCoins {
		m[id] = name
	}
	return m
}()

// IsSupported reports whether the given CoinGecko ID is in the catalog.
func IsSupported(coinID string) bool {
	_, ok := coinNamesByID[coinID]
	return ok
}

// CoinName returns the display name for a supported coin ID, or the ID
// itself when unknown.
func CoinName(coinID string) string {
	if name, ok := coinNamesByID[coinID]; ok {
		return name
	}
	return coinID
}
