package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainEthereumMainnet Chain = "eip155:1"
	ChainEthereumSepolia Chain = "eip155:11155111"
	ChainOptimismMainnet Chain = "eip155:10"
	ChainPolygonMainnet  Chain = "eip155:137"
	ChainBaseMainnet     Chain = "eip155:8453"
	ChainArbitrumOne     Chain = "eip155:42161"
)

const eip155Prefix = "eip155:"

// ChainFromID returns the CAIP-2 identifier of an EVM chain id
func ChainFromID(chainID uint64) Chain {
	return Chain(eip155Prefix + strconv.FormatUint(chainID, 10))
}

// ID returns the numeric EVM chain id
func (c Chain) ID() (uint64, error) {
	s := string(c)
	if !strings.HasPrefix(s, eip155Prefix) {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedChain, s)
	}

	id, err := strconv.ParseUint(strings.TrimPrefix(s, eip155Prefix), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedChain, s)
	}

	return id, nil
}

// Valid reports whether the chain is a well formed EVM chain identifier
func (c Chain) Valid() bool {
	_, err := c.ID()
	return err == nil
}

// SurveyContract is one statically configured (contract address, chain) pair
type SurveyContract struct {
	Address string `mapstructure:"address" json:"address"`
	Chain   Chain  `mapstructure:"chain" json:"chain"`
}

// Key returns the checksummed contract address, which is also the poll id
func (c SurveyContract) Key() string {
	return common.HexToAddress(c.Address).Hex()
}

// Valid reports whether the address and the chain are well formed
func (c SurveyContract) Valid() bool {
	return common.IsHexAddress(c.Address) && c.Chain.Valid()
}

// ShortAddress renders an address as 0x1234...abcd
func ShortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}

	return address[:6] + "..." + address[len(address)-4:]
}

// IsZeroAddress reports whether the address is empty or the zero address
func IsZeroAddress(address string) bool {
	return address == "" || strings.EqualFold(address, ETHEREUM_ZERO_ADDRESS)
}
