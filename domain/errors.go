package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
	ErrInvalidChainId   = errors.New("invalid chain id")

	ErrInvalidNumberFormat = errors.New("invalid number format")

	// ledger errors, one per rejected precondition
	ErrInvalidPrice  = errors.New("price must be above zero")
	ErrNotApproved   = errors.New("marketplace not approved for token")
	ErrNotOwner      = errors.New("caller is not the owner")
	ErrAlreadyListed = errors.New("token already listed")
	ErrNotListed     = errors.New("token not listed")
	ErrPriceNotMet   = errors.New("payment does not meet listing price")
	ErrNoProceeds    = errors.New("no proceeds to withdraw")
	// ErrTransferFailed covers failures of the registry transfer or the
	// outbound payout; the ledger mutations are rolled back before it is
	// returned
	ErrTransferFailed = errors.New("transfer failed")
)
