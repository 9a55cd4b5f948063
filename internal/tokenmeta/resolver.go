package tokenmeta

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/feral-file/ff-survey/internal/domain"
	"github.com/feral-file/ff-survey/internal/logger"
)

const trustWalletAssetURL = "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/%s/assets/%s/logo.png"

// trustWalletChains maps chain ids to Trust Wallet asset directories.
// Sepolia shares the mainnet assets.
var trustWalletChains = map[uint64]string{
	1:        "ethereum",
	11155111: "ethereum",
	137:      "polygon",
	42161:    "arbitrum",
	8453:     "base",
	10:       "optimism",
}

// LogoURL derives the logo URL of a token, empty for unknown chains
func LogoURL(chainID uint64, tokenAddress string) string {
	dir, ok := trustWalletChains[chainID]
	if !ok {
		return ""
	}
	return fmt.Sprintf(trustWalletAssetURL, dir, tokenAddress)
}

// SymbolReader reads the ERC20 symbol of a token
type SymbolReader interface {
	ERC20Symbol(ctx context.Context, tokenAddress string) (string, error)
}

//go:generate mockgen -source=resolver.go -destination=../mocks/tokenmeta.go -package=mocks -mock_names=Resolver=MockTokenResolver,SymbolReader=MockSymbolReader
type Resolver interface {
	// Resolve returns the token metadata or nil when the token address is empty or zero.
	// Symbol lookup failures degrade to the placeholder symbol.
	Resolve(ctx context.Context, reader SymbolReader, chainID uint64, tokenAddress string) *domain.TokenInfo
}

type resolver struct{}

func NewResolver() Resolver {
	return &resolver{}
}

func (r *resolver) Resolve(ctx context.Context, reader SymbolReader, chainID uint64, tokenAddress string) *domain.TokenInfo {
	if domain.IsZeroAddress(tokenAddress) {
		return nil
	}
	address := common.HexToAddress(tokenAddress).Hex()

	symbol, err := reader.ERC20Symbol(ctx, address)
	if err != nil || symbol == "" {
		logger.WarnCtx(ctx, "failed to resolve token symbol, using placeholder",
			zap.Error(err),
			zap.String("token", address),
			zap.Uint64("chainID", chainID))
		symbol = domain.DEFAULT_TOKEN_SYMBOL
	}

	return &domain.TokenInfo{
		Address: address,
		Symbol:  symbol,
		Logo:    LogoURL(chainID, address),
	}
}
