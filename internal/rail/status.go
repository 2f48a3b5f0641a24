package rail

import (
	"strings"

	"github.com/AlexZinkM/rail-wallet/internal/model"
)

// NormalizeStatus maps a provider status string onto the shared enumeration.
// Unknown values are treated as PENDING: they are not known to be terminal.
func NormalizeStatus(raw string) model.TransferStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "complete", "completed", "success", "succeeded", "confirmed", "settled", "active":
		return model.TransferCompleted
	case "failed", "failure", "rejected", "declined", "cancelled", "canceled", "error", "expired":
		return model.TransferFailed
	case "simulated":
		return model.TransferSimulated
	default:
		return model.TransferPending
	}
}
