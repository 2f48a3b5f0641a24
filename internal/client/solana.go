package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
)

// SolanaClient is a client for working with Solana RPC
type SolanaClient struct {
	rpcClient *rpc.Client
	rpcURL    string
}

// NewSolanaClient creates a new Solana client for the given RPC endpoint.
func NewSolanaClient(rpcURL string) *SolanaClient {
	return &SolanaClient{
		rpcClient: rpc.New(rpcURL),
		rpcURL:    rpcURL,
	}
}

// GetBalance gets SOL balance in lamports for address
func (c *SolanaClient) GetBalance(ctx context.Context, address string) (uint64, error) {
	owner, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return 0, fmt.Errorf("invalid Solana address: %w", err)
	}

	balance, err := c.rpcClient.GetBalance(ctx, owner, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to get SOL balance: %w", err)
	}
	return balance.Value, nil
}

// SendSOL creates, signs and sends a SOL transfer transaction.
// privateKeyBytes must be full 64-byte Solana private key (caller should zero it after use)
func (c *SolanaClient) SendSOL(ctx context.Context, privateKeyBytes []byte, toAddress string, lamports uint64) (string, error) {
	toPubkey, err := solana.PublicKeyFromBase58(toAddress)
	if err != nil {
		return "", fmt.Errorf("invalid to address: %w", err)
	}

	// Validate private key (full 64-byte key)
	if len(privateKeyBytes) != 64 {
		return "", fmt.Errorf("invalid private key length: expected 64 bytes")
	}
	wallet := solana.PrivateKey(privateKeyBytes)
	from := wallet.PublicKey()

	// Get latest blockhash
	recent, err := c.rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return "", fmt.Errorf("failed to get recent blockhash: %w", err)
	}

	transferInstruction := system.NewTransferInstruction(
		lamports,
		from,
		toPubkey,
	).Build()

	tx, err := solana.NewTransaction(
		[]solana.Instruction{transferInstruction},
		recent.Value.Blockhash,
		solana.TransactionPayer(from),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create transaction: %w", err)
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if from.Equals(key) {
			return &wallet
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	// Preflight stays on: a simulation failure is reported before anything
	// reaches the leader.
	sig, err := c.rpcClient.SendTransactionWithOpts(
		ctx,
		tx,
		rpc.TransactionOpts{
			SkipPreflight:       false,
			PreflightCommitment: rpc.CommitmentFinalized,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	return sig.String(), nil
}

// SignatureState is the confirmation state of a sent transaction.
type SignatureState struct {
	Confirmed bool
	Failed    bool
	Err       string
}

// WaitForSignature polls the signature status until it reaches confirmed
// commitment, fails, or timeout elapses. An unconfirmed result is not an error.
func (c *SolanaClient) WaitForSignature(ctx context.Context, signature string, timeout, interval time.Duration) (*SignatureState, error) {
	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		return nil, fmt.Errorf("invalid signature: %w", err)
	}

	deadline := time.Now().Add(timeout)
	for {
		out, err := c.rpcClient.GetSignatureStatuses(ctx, true, sig)
		if err != nil && !errors.Is(err, rpc.ErrNotFound) {
			return nil, fmt.Errorf("failed to get signature status: %w", err)
		}
		if out != nil && len(out.Value) > 0 && out.Value[0] != nil {
			st := out.Value[0]
			if st.Err != nil {
				return &SignatureState{Failed: true, Err: fmt.Sprint(st.Err)}, nil
			}
			if st.ConfirmationStatus == rpc.ConfirmationStatusConfirmed ||
				st.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
				return &SignatureState{Confirmed: true}, nil
			}
		}

		if time.Now().Add(interval).After(deadline) {
			return &SignatureState{}, nil
		}
		select {
		case <-ctx.Done():
			return &SignatureState{}, nil
		case <-time.After(interval):
		}
	}
}

// IsRPCRejection reports whether err is an error response from the node,
// as opposed to a transport failure. Preflight failures are rejections.
func IsRPCRejection(err error) bool {
	var rpcErr *jsonrpc.RPCError
	return errors.As(err, &rpcErr)
}
