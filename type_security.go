package networth

import "strings"

// AssetType classifies a ticker for display.
type AssetType int

const (
	Unknown AssetType = iota
	Stock
	ETF
	Fund
	Crypto
	Index
	Other
)

func (t AssetType) String() string {
	switch t {
	case Stock:
		return "Stock"
	case ETF:
		return "ETF"
	case Fund:
		return "Fund"
	case Crypto:
		return "Crypto"
	case Index:
		return "Index"
	case Other:
		return "Other"
	default:
		return "Unknown"
	}
}

// ParseAssetType maps a provider type string to an AssetType.
//
// Both Yahoo quote types (EQUITY, MUTUALFUND, ...) and EODHD types
// (Common Stock, Mutual Fund, ...) are recognized. An empty string is Unknown,
// anything else unrecognized is Other.
func ParseAssetType(s string) AssetType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return Unknown
	case "EQUITY", "COMMON STOCK", "PREFERRED STOCK", "STOCK":
		return Stock
	case "ETF", "ETC":
		return ETF
	case "MUTUALFUND", "MUTUAL FUND", "FUND":
		return Fund
	case "CRYPTOCURRENCY", "CRYPTO":
		return Crypto
	case "INDEX":
		return Index
	default:
		return Other
	}
}
