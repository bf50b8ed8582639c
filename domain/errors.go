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
	// ErrForbidden will throw if the caller is authenticated but does not own the resource
	ErrForbidden = errors.New("Forbidden")

	// ErrPaymentNotVerified is the single outcome for every failed payment
	// check. Which check failed is logged server side only.
	ErrPaymentNotVerified = errors.New("payment not verified")
	// ErrTxReverted will throw if the submitted transaction exists but failed on chain
	ErrTxReverted = errors.New("transaction failed")
	// ErrUpstream will throw if a chain rpc or price oracle call failed
	ErrUpstream = errors.New("upstream service unavailable")

	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrInvalidNumberFormat    = errors.New("invalid number format")
)
