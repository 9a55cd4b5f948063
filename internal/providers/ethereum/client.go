package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-survey/internal/adapter"
	"github.com/feral-file/ff-survey/internal/domain"
)

const surveyABIJSON = `[
{"inputs":[],"name":"title","outputs":[{"internalType":"string","name":"","type":"string"}],"stateMutability":"view","type":"function"},
{"inputs":[],"name":"tokenContractAddress","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
{"inputs":[],"name":"isOpen","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"view","type":"function"},
{"inputs":[],"name":"getSurvey","outputs":[{"components":[{"internalType":"uint256","name":"questionId","type":"uint256"},{"internalType":"string","name":"questionText","type":"string"},{"components":[{"internalType":"uint256","name":"id","type":"uint256"},{"internalType":"string","name":"text","type":"string"}],"internalType":"struct TokenGatedVoting.AnswerOption[]","name":"answers","type":"tuple[]"}],"internalType":"struct TokenGatedVoting.Question[]","name":"","type":"tuple[]"}],"stateMutability":"view","type":"function"},
{"inputs":[],"name":"getSurveyResults","outputs":[{"components":[{"internalType":"uint256","name":"questionId","type":"uint256"},{"internalType":"string","name":"questionText","type":"string"},{"components":[{"internalType":"uint256","name":"id","type":"uint256"},{"internalType":"string","name":"text","type":"string"},{"internalType":"uint256","name":"voteCount","type":"uint256"}],"internalType":"struct TokenGatedVoting.Answer[]","name":"answers","type":"tuple[]"}],"internalType":"struct TokenGatedVoting.QuestionResult[]","name":"","type":"tuple[]"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"uint256[]","name":"_answerIds","type":"uint256[]"}],"name":"vote","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

const erc20SymbolABIJSON = `[{"inputs":[],"name":"symbol","outputs":[{"internalType":"string","name":"","type":"string"}],"stateMutability":"view","type":"function"}]`

var (
	// SurveyABI is the parsed ABI of the token gated survey contract
	SurveyABI = mustParseABI(surveyABIJSON)

	// ERC20SymbolABI is the parsed ABI of the ERC20 symbol getter
	ERC20SymbolABI = mustParseABI(erc20SymbolABIJSON)
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("failed to parse ABI: %v", err))
	}
	return parsed
}

// SurveyAnswer is an answer of a survey question as exposed by the contract.
// VoteCount is always zero when read from the open-state getter.
type SurveyAnswer struct {
	ID        uint64
	Text      string
	VoteCount uint64
}

// SurveyQuestion is a survey question as exposed by the contract
type SurveyQuestion struct {
	ID      uint64
	Text    string
	Answers []SurveyAnswer
}

// raw ABI shapes, field names follow the camel-cased component names
type rawAnswerOption struct {
	Id   *big.Int
	Text string
}

type rawQuestion struct {
	QuestionId   *big.Int
	QuestionText string
	Answers      []rawAnswerOption
}

type rawAnswerResult struct {
	Id        *big.Int
	Text      string
	VoteCount *big.Int
}

type rawQuestionResult struct {
	QuestionId   *big.Int
	QuestionText string
	Answers      []rawAnswerResult
}

//go:generate mockgen -source=client.go -destination=../../mocks/survey_client.go -package=mocks -mock_names=SurveyClient=MockSurveyClient
type SurveyClient interface {
	// Chain returns the chain the client reads from
	Chain() domain.Chain

	// Title reads the survey title
	Title(ctx context.Context, contractAddress string) (string, error)

	// TokenContractAddress reads the address of the gating token
	TokenContractAddress(ctx context.Context, contractAddress string) (string, error)

	// IsOpen reads whether the survey is accepting votes
	IsOpen(ctx context.Context, contractAddress string) (bool, error)

	// GetSurvey reads the questions and answers of an open survey
	GetSurvey(ctx context.Context, contractAddress string) ([]SurveyQuestion, error)

	// GetSurveyResults reads the questions, answers and vote counts of a survey
	GetSurveyResults(ctx context.Context, contractAddress string) ([]SurveyQuestion, error)

	// ERC20Symbol reads the symbol of an ERC20 token
	ERC20Symbol(ctx context.Context, tokenAddress string) (string, error)

	// Close closes the connection
	Close()
}

type surveyClient struct {
	chain  domain.Chain
	client adapter.EthClient
}

func NewSurveyClient(chain domain.Chain, client adapter.EthClient) SurveyClient {
	return &surveyClient{chain: chain, client: client}
}

func (c *surveyClient) Chain() domain.Chain {
	return c.chain
}

func (c *surveyClient) Close() {
	c.client.Close()
}

// call packs the method, calls the contract at the latest block and unpacks the outputs
func (c *surveyClient) call(ctx context.Context, contractABI abi.ABI, contractAddress, method string) ([]interface{}, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("invalid contract address: %s", contractAddress)
	}

	data, err := contractABI.Pack(method)
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	contractAddr := common.HexToAddress(contractAddress)
	result, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s on %s: %w", method, contractAddress, err)
	}

	out, err := contractABI.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty %s result", method)
	}

	return out, nil
}

func (c *surveyClient) Title(ctx context.Context, contractAddress string) (string, error) {
	out, err := c.call(ctx, SurveyABI, contractAddress, "title")
	if err != nil {
		return "", err
	}

	title, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("unexpected title type %T", out[0])
	}
	return title, nil
}

func (c *surveyClient) TokenContractAddress(ctx context.Context, contractAddress string) (string, error) {
	out, err := c.call(ctx, SurveyABI, contractAddress, "tokenContractAddress")
	if err != nil {
		return "", err
	}

	addr, ok := out[0].(common.Address)
	if !ok {
		return "", fmt.Errorf("unexpected token address type %T", out[0])
	}
	return addr.Hex(), nil
}

func (c *surveyClient) IsOpen(ctx context.Context, contractAddress string) (bool, error) {
	out, err := c.call(ctx, SurveyABI, contractAddress, "isOpen")
	if err != nil {
		return false, err
	}

	open, ok := out[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected isOpen type %T", out[0])
	}
	return open, nil
}

func (c *surveyClient) GetSurvey(ctx context.Context, contractAddress string) ([]SurveyQuestion, error) {
	out, err := c.call(ctx, SurveyABI, contractAddress, "getSurvey")
	if err != nil {
		return nil, err
	}

	raw := *abi.ConvertType(out[0], new([]rawQuestion)).(*[]rawQuestion)

	questions := make([]SurveyQuestion, 0, len(raw))
	for _, q := range raw {
		questionID, err := toUint64("question id", q.QuestionId)
		if err != nil {
			return nil, err
		}
		answers := make([]SurveyAnswer, 0, len(q.Answers))
		for _, a := range q.Answers {
			answerID, err := toUint64("answer id", a.Id)
			if err != nil {
				return nil, err
			}
			answers = append(answers, SurveyAnswer{
				ID:   answerID,
				Text: a.Text,
			})
		}
		questions = append(questions, SurveyQuestion{
			ID:      questionID,
			Text:    q.QuestionText,
			Answers: answers,
		})
	}
	return questions, nil
}

func (c *surveyClient) GetSurveyResults(ctx context.Context, contractAddress string) ([]SurveyQuestion, error) {
	out, err := c.call(ctx, SurveyABI, contractAddress, "getSurveyResults")
	if err != nil {
		return nil, err
	}

	raw := *abi.ConvertType(out[0], new([]rawQuestionResult)).(*[]rawQuestionResult)

	questions := make([]SurveyQuestion, 0, len(raw))
	for _, q := range raw {
		questionID, err := toUint64("question id", q.QuestionId)
		if err != nil {
			return nil, err
		}
		answers := make([]SurveyAnswer, 0, len(q.Answers))
		for _, a := range q.Answers {
			answerID, err := toUint64("answer id", a.Id)
			if err != nil {
				return nil, err
			}
			votes, err := toUint64("vote count", a.VoteCount)
			if err != nil {
				return nil, err
			}
			answers = append(answers, SurveyAnswer{
				ID:        answerID,
				Text:      a.Text,
				VoteCount: votes,
			})
		}
		questions = append(questions, SurveyQuestion{
			ID:      questionID,
			Text:    q.QuestionText,
			Answers: answers,
		})
	}
	return questions, nil
}

func (c *surveyClient) ERC20Symbol(ctx context.Context, tokenAddress string) (string, error) {
	out, err := c.call(ctx, ERC20SymbolABI, tokenAddress, "symbol")
	if err != nil {
		return "", err
	}

	symbol, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("unexpected symbol type %T", out[0])
	}
	return symbol, nil
}

// PackVote encodes the calldata of vote(uint256[]) for the given answer ids
func PackVote(answerIDs []uint64) ([]byte, error) {
	ids := make([]*big.Int, 0, len(answerIDs))
	for _, id := range answerIDs {
		ids = append(ids, new(big.Int).SetUint64(id))
	}

	data, err := SurveyABI.Pack("vote", ids)
	if err != nil {
		return nil, fmt.Errorf("failed to pack vote: %w", err)
	}
	return data, nil
}

// toUint64 rejects values that do not fit in 64 bits, ids are echoed back in vote calldata
func toUint64(field string, v *big.Int) (uint64, error) {
	if v == nil {
		return 0, nil
	}
	if v.Sign() < 0 || !v.IsUint64() {
		return 0, fmt.Errorf("%s %s does not fit in uint64", field, v.String())
	}
	return v.Uint64(), nil
}
