package entity

import "strings"

// Stacks mainnet principals start with one of these prefixes.
var stacksAddressPrefixes = []string{"SP", "SM"}

// Wallet is an address queued for analysis.
type Wallet struct {
	Address string `json:"address"`
}

// HasStacksPrefix reports whether address starts with a mainnet prefix.
// The check is case-sensitive and does not validate the checksum.
func HasStacksPrefix(address string) bool {
	for _, p := range stacksAddressPrefixes {
		if strings.HasPrefix(address, p) {
			return true
		}
	}
	return false
}
