package activity

import "errors"

// Engine operations reject invalid requests with sentinel errors instead of
// panicking; a rejected call never mutates engine state.
var (
	ErrFinalized     = errors.New("activity already submitted")
	ErrOutOfRange    = errors.New("index out of range")
	ErrUnknownToken  = errors.New("unknown token")
	ErrNotInPool     = errors.New("token not in pool")
	ErrEmptySlot     = errors.New("slot is empty")
	ErrUnknownEngine = errors.New("unknown engine tag")
)
