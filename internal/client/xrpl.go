package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	ErrAccountNotFound = errors.New("xrpl account not found")
	ErrTxNotFound      = errors.New("xrpl transaction not found")
)

// XRPLError is an error result returned by rippled.
type XRPLError struct {
	Method  string
	Code    string
	Message string
}

func (e *XRPLError) Error() string {
	return fmt.Sprintf("xrpl %s: %s: %s", e.Method, e.Code, e.Message)
}

// XRPLClient talks to a rippled node over its JSON-RPC interface.
type XRPLClient struct {
	rest *RESTClient
}

// NewXRPLClient creates a client for the rippled endpoint at rpcURL.
func NewXRPLClient(rpcURL string, opts ...RESTOption) *XRPLClient {
	opts = append([]RESTOption{WithBaseURL(rpcURL), WithTimeout(15 * time.Second)}, opts...)
	return &XRPLClient{rest: NewRESTClient(opts...)}
}

type rpcRequest struct {
	Method string `json:"method"`
	Params []any  `json:"params"`
}

type rpcStatus struct {
	Status       string `json:"status"`
	Error        string `json:"error"`
	ErrorMessage string `json:"error_message"`
}

// call issues one rippled command and decodes its result object into out.
func (c *XRPLClient) call(ctx context.Context, method string, params map[string]any, out any) error {
	var resp struct {
		Result json.RawMessage `json:"result"`
	}
	if err := c.rest.PostJSON(ctx, "", rpcRequest{Method: method, Params: []any{params}}, &resp); err != nil {
		return fmt.Errorf("xrpl %s: %w", method, err)
	}

	var st rpcStatus
	if err := json.Unmarshal(resp.Result, &st); err != nil {
		return fmt.Errorf("xrpl %s: decode result: %w", method, err)
	}
	if st.Status != "success" {
		switch st.Error {
		case "actNotFound":
			return ErrAccountNotFound
		case "txnNotFound":
			return ErrTxNotFound
		}
		return &XRPLError{Method: method, Code: st.Error, Message: st.ErrorMessage}
	}

	if err := json.Unmarshal(resp.Result, out); err != nil {
		return fmt.Errorf("xrpl %s: decode result: %w", method, err)
	}
	return nil
}

// AccountInfo is the subset of account_info used for autofill and balances.
type AccountInfo struct {
	Balance  uint64
	Sequence uint32
}

// AccountInfo returns the validated state of address.
func (c *XRPLClient) AccountInfo(ctx context.Context, address string) (*AccountInfo, error) {
	var result struct {
		AccountData struct {
			Balance  string `json:"Balance"`
			Sequence uint32 `json:"Sequence"`
		} `json:"account_data"`
	}
	err := c.call(ctx, "account_info", map[string]any{
		"account":      address,
		"ledger_index": "validated",
	}, &result)
	if err != nil {
		return nil, err
	}

	drops, err := strconv.ParseUint(result.AccountData.Balance, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid balance %q: %w", result.AccountData.Balance, err)
	}
	return &AccountInfo{Balance: drops, Sequence: result.AccountData.Sequence}, nil
}

// GetBalance returns the balance of address in drops. An unfunded account
// has a zero balance.
func (c *XRPLClient) GetBalance(ctx context.Context, address string) (uint64, error) {
	info, err := c.AccountInfo(ctx, address)
	if errors.Is(err, ErrAccountNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return info.Balance, nil
}

// Fee returns the open ledger fee in drops, never below the base fee.
func (c *XRPLClient) Fee(ctx context.Context) (uint64, error) {
	var result struct {
		Drops struct {
			BaseFee       string `json:"base_fee"`
			OpenLedgerFee string `json:"open_ledger_fee"`
		} `json:"drops"`
	}
	if err := c.call(ctx, "fee", map[string]any{}, &result); err != nil {
		return 0, err
	}

	base, err := strconv.ParseUint(result.Drops.BaseFee, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid base_fee %q: %w", result.Drops.BaseFee, err)
	}
	open, err := strconv.ParseUint(result.Drops.OpenLedgerFee, 10, 64)
	if err != nil || open < base {
		return base, nil
	}
	return open, nil
}

// LedgerCurrent returns the index of the current open ledger.
func (c *XRPLClient) LedgerCurrent(ctx context.Context) (uint32, error) {
	var result struct {
		LedgerCurrentIndex uint32 `json:"ledger_current_index"`
	}
	if err := c.call(ctx, "ledger_current", map[string]any{}, &result); err != nil {
		return 0, err
	}
	return result.LedgerCurrentIndex, nil
}

// SubmitResult is the preliminary result of submitting a signed blob.
type SubmitResult struct {
	EngineResult        string
	EngineResultMessage string
	Hash                string
}

// Submit sends a signed transaction blob (hex).
func (c *XRPLClient) Submit(ctx context.Context, txBlob string) (*SubmitResult, error) {
	var result struct {
		EngineResult        string `json:"engine_result"`
		EngineResultMessage string `json:"engine_result_message"`
		TxJSON              struct {
			Hash string `json:"hash"`
		} `json:"tx_json"`
	}
	if err := c.call(ctx, "submit", map[string]any{"tx_blob": txBlob}, &result); err != nil {
		return nil, err
	}
	return &SubmitResult{
		EngineResult:        result.EngineResult,
		EngineResultMessage: result.EngineResultMessage,
		Hash:                result.TxJSON.Hash,
	}, nil
}

// TxStatus is the lookup result of a submitted transaction.
type TxStatus struct {
	Validated         bool
	TransactionResult string
	LedgerIndex       uint32
}

// Tx looks up a transaction by hash.
func (c *XRPLClient) Tx(ctx context.Context, hash string) (*TxStatus, error) {
	var result struct {
		Validated   bool   `json:"validated"`
		LedgerIndex uint32 `json:"ledger_index"`
		Meta        struct {
			TransactionResult string `json:"TransactionResult"`
		} `json:"meta"`
	}
	if err := c.call(ctx, "tx", map[string]any{"transaction": hash, "binary": false}, &result); err != nil {
		return nil, err
	}
	return &TxStatus{
		Validated:         result.Validated,
		TransactionResult: result.Meta.TransactionResult,
		LedgerIndex:       result.LedgerIndex,
	}, nil
}
