package types

import (
	"fmt"
	"regexp"
	"strings"
)

type SupportedChain string

const (
	ChainEthereum SupportedChain = "ethereum"
	ChainPolygon  SupportedChain = "polygon"
	ChainArbitrum SupportedChain = "arbitrum"
	ChainFantom   SupportedChain = "fantom"
)

func (c SupportedChain) String() string {
	return string(c)
}

var supportedChains = map[string]SupportedChain{
	"ethereum": ChainEthereum,
	"polygon":  ChainPolygon,
	"arbitrum": ChainArbitrum,
	"fantom":   ChainFantom,
}

var addressRegexp = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

func ParseChain(s string) (SupportedChain, error) {
	chain, ok := supportedChains[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unsupported chain: %q", s)
	}
	return chain, nil
}

// NormalizeAddress validates an EVM address and returns it lower-cased,
// which is the form addresses are stored in.
func NormalizeAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !addressRegexp.MatchString(address) {
		return "", fmt.Errorf("invalid address: %q", address)
	}
	return strings.ToLower(address), nil
}

// EntityID identifies a token, pool or vault.
type EntityID struct {
	Chain   SupportedChain
	Address string
}

func (id EntityID) String() string {
	return id.Chain.String() + ":" + id.Address
}

// ParseEntityID validates and normalises a chain and address pair.
func ParseEntityID(chain, address string) (EntityID, error) {
	c, err := ParseChain(chain)
	if err != nil {
		return EntityID{}, err
	}
	a, err := NormalizeAddress(address)
	if err != nil {
		return EntityID{}, err
	}
	return EntityID{Chain: c, Address: a}, nil
}
