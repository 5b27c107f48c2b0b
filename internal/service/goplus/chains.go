package goplus

import "strings"

var chainIDs = map[string]string{
	"ethereum":  "1",
	"bsc":       "56",
	"polygon":   "137",
	"arbitrum":  "42161",
	"optimism":  "10",
	"avalanche": "43114",
	"fantom":    "250",
	"base":      "8453",
}

// ChainID maps a chain name to the numeric id GoPlus expects.
func ChainID(chain string) (string, bool) {
	id, ok := chainIDs[strings.ToLower(strings.TrimSpace(chain))]
	return id, ok
}
