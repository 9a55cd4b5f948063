package wallet_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-survey/internal/adapter"
	"github.com/feral-file/ff-survey/internal/domain"
	"github.com/feral-file/ff-survey/internal/mocks"
	"github.com/feral-file/ff-survey/internal/wallet"
)

// well known development key, never funded on real networks
const testKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

const surveyAddress = "0x31d695C8a1a50340C3005FA53846019991D5b2E8"

type testWalletMocks struct {
	ctrl    *gomock.Controller
	mainnet *mocks.MockEthClient
	sepolia *mocks.MockEthClient
	wallet  wallet.Wallet
}

func setupTestWallet(t *testing.T) *testWalletMocks {
	ctrl := gomock.NewController(t)
	tm := &testWalletMocks{
		ctrl:    ctrl,
		mainnet: mocks.NewMockEthClient(ctrl),
		sepolia: mocks.NewMockEthClient(ctrl),
	}

	w, err := wallet.NewLocalWallet(testKey, map[uint64]adapter.EthClient{
		1:        tm.mainnet,
		11155111: tm.sepolia,
	}, 1)
	require.NoError(t, err)
	tm.wallet = w
	return tm
}

func TestNewLocalWallet(t *testing.T) {
	tm := setupTestWallet(t)
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", tm.wallet.Address())

	_, err := wallet.NewLocalWallet("not-a-key", nil, 1)
	require.Error(t, err)

	_, err = wallet.NewLocalWallet(testKey, map[uint64]adapter.EthClient{}, 1)
	require.ErrorIs(t, err, domain.ErrUnsupportedChain)
}

func TestSwitchChain(t *testing.T) {
	tm := setupTestWallet(t)
	ctx := context.Background()

	tm.sepolia.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(11155111), nil)
	require.NoError(t, tm.wallet.SwitchChain(ctx, 11155111))

	chainID, err := tm.wallet.ChainID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(11155111), chainID)
}

func TestSwitchChain_Unsupported(t *testing.T) {
	tm := setupTestWallet(t)

	err := tm.wallet.SwitchChain(context.Background(), 137)
	require.ErrorIs(t, err, domain.ErrNetworkSwitchFailed)
	require.ErrorIs(t, err, domain.ErrUnsupportedChain)

	chainID, _ := tm.wallet.ChainID(context.Background())
	assert.Equal(t, uint64(1), chainID)
}

func TestSwitchChain_RPCMismatch(t *testing.T) {
	tm := setupTestWallet(t)

	tm.sepolia.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(5), nil)
	err := tm.wallet.SwitchChain(context.Background(), 11155111)
	require.ErrorIs(t, err, domain.ErrNetworkSwitchFailed)
}

func TestSendTransaction(t *testing.T) {
	tm := setupTestWallet(t)
	ctx := context.Background()
	from := common.HexToAddress(tm.wallet.Address())
	data := []byte{0x01, 0x02}

	tm.mainnet.EXPECT().PendingNonceAt(gomock.Any(), from).Return(uint64(7), nil)
	tm.mainnet.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1_000_000_000), nil)
	tm.mainnet.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg ethereum.CallMsg) (uint64, error) {
			assert.Equal(t, from, msg.From)
			assert.Equal(t, data, msg.Data)
			return 50_000, nil
		})

	var sent *types.Transaction
	tm.mainnet.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
			sent = tx
			return nil
		})

	hash, err := tm.wallet.SendTransaction(ctx, surveyAddress, data)
	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, sent.Hash().Hex(), hash)
	assert.Equal(t, uint64(7), sent.Nonce())
	assert.Equal(t, uint64(50_000), sent.Gas())
	assert.Equal(t, common.HexToAddress(surveyAddress), *sent.To())

	signer := types.LatestSignerForChainID(big.NewInt(1))
	sender, err := types.Sender(signer, sent)
	require.NoError(t, err)
	assert.Equal(t, from, sender)
}

func TestSendTransaction_EstimateFails(t *testing.T) {
	tm := setupTestWallet(t)

	tm.mainnet.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(0), nil)
	tm.mainnet.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1), nil)
	tm.mainnet.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(0), errors.New("execution reverted: already voted"))

	_, err := tm.wallet.SendTransaction(context.Background(), surveyAddress, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already voted")
}

func TestTransactionReceipt(t *testing.T) {
	tm := setupTestWallet(t)
	hash := crypto.Keccak256Hash([]byte("tx"))

	tm.sepolia.EXPECT().TransactionReceipt(gomock.Any(), hash).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	receipt, err := tm.wallet.TransactionReceipt(context.Background(), 11155111, hash.Hex())
	require.NoError(t, err)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)

	_, err = tm.wallet.TransactionReceipt(context.Background(), 137, hash.Hex())
	require.ErrorIs(t, err, domain.ErrUnsupportedChain)
}
