package booking

import (
	"strings"

	"github.com/BruksfildServices01/gamers-hub/internal/httperr"
	"github.com/BruksfildServices01/gamers-hub/internal/receipt"
)

type VerifyReceipt struct {
	receipts *receipt.Signer
}

func NewVerifyReceipt(receipts *receipt.Signer) *VerifyReceipt {
	return &VerifyReceipt{receipts: receipts}
}

func (uc *VerifyReceipt) Execute(token string) (*receipt.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, httperr.ErrBusiness("invalid_receipt")
	}

	claims, err := uc.receipts.Verify(token)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_receipt")
	}
	return claims, nil
}
