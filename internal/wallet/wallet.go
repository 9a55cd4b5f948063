package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/feral-file/ff-survey/internal/adapter"
	"github.com/feral-file/ff-survey/internal/domain"
	"github.com/feral-file/ff-survey/internal/logger"
)

// Wallet signs and submits transactions on one active chain at a time
//
//go:generate mockgen -source=wallet.go -destination=../mocks/wallet.go -package=mocks -mock_names=Wallet=MockWallet
type Wallet interface {
	// Address returns the checksummed account address
	Address() string

	// ChainID returns the active chain id
	ChainID(ctx context.Context) (uint64, error)

	// SwitchChain makes chainID the active chain
	SwitchChain(ctx context.Context, chainID uint64) error

	// SendTransaction signs a call to the contract on the active chain and submits it.
	// It returns the transaction hash.
	SendTransaction(ctx context.Context, to string, data []byte) (string, error)

	// TransactionReceipt returns the receipt of a transaction on the given chain,
	// ethereum.NotFound while it is pending
	TransactionReceipt(ctx context.Context, chainID uint64, txHash string) (*types.Receipt, error)
}

type localWallet struct {
	mu      sync.RWMutex
	key     *ecdsa.PrivateKey
	address common.Address
	clients map[uint64]adapter.EthClient
	active  uint64
}

// NewLocalWallet creates a wallet signing with a hex encoded private key.
// clients holds one RPC client per reachable chain id; activeChainID is the initial chain.
func NewLocalWallet(privateKeyHex string, clients map[uint64]adapter.EthClient, activeChainID uint64) (Wallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	if _, ok := clients[activeChainID]; !ok {
		return nil, fmt.Errorf("%w: no rpc client for active chain %d", domain.ErrUnsupportedChain, activeChainID)
	}

	return &localWallet{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		clients: clients,
		active:  activeChainID,
	}, nil
}

func (w *localWallet) Address() string {
	return w.address.Hex()
}

func (w *localWallet) ChainID(_ context.Context) (uint64, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.active, nil
}

func (w *localWallet) SwitchChain(ctx context.Context, chainID uint64) error {
	client, ok := w.clients[chainID]
	if !ok {
		return fmt.Errorf("%w: chain %d: %w", domain.ErrNetworkSwitchFailed, chainID, domain.ErrUnsupportedChain)
	}

	remote, err := client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to query chain id: %w", domain.ErrNetworkSwitchFailed, err)
	}
	if remote.Uint64() != chainID {
		return fmt.Errorf("%w: rpc reports chain %s, want %d", domain.ErrNetworkSwitchFailed, remote, chainID)
	}

	w.mu.Lock()
	previous := w.active
	w.active = chainID
	w.mu.Unlock()

	logger.InfoCtx(ctx, "Switched wallet chain",
		zap.Uint64("from", previous),
		zap.Uint64("to", chainID))
	return nil
}

func (w *localWallet) activeClient() (uint64, adapter.EthClient) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.active, w.clients[w.active]
}

func (w *localWallet) SendTransaction(ctx context.Context, to string, data []byte) (string, error) {
	if !common.IsHexAddress(to) {
		return "", fmt.Errorf("invalid recipient address: %s", to)
	}
	chainID, client := w.activeClient()
	recipient := common.HexToAddress(to)

	nonce, err := client.PendingNonceAt(ctx, w.address)
	if err != nil {
		return "", fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to suggest gas price: %w", err)
	}

	gas, err := client.EstimateGas(ctx, ethereum.CallMsg{
		From: w.address,
		To:   &recipient,
		Data: data,
	})
	if err != nil {
		return "", fmt.Errorf("failed to estimate gas: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &recipient,
		Value:    big.NewInt(0),
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(new(big.Int).SetUint64(chainID)), w.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := client.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	return signed.Hash().Hex(), nil
}

func (w *localWallet) TransactionReceipt(ctx context.Context, chainID uint64, txHash string) (*types.Receipt, error) {
	client, ok := w.clients[chainID]
	if !ok {
		return nil, fmt.Errorf("%w: chain %d", domain.ErrUnsupportedChain, chainID)
	}
	return client.TransactionReceipt(ctx, common.HexToHash(txHash))
}
