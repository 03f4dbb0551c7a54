package domain

import "errors"

var (
	ErrUnknownTankerType = errors.New("unknown tanker type")
	ErrInvalidTankerType = errors.New("invalid tanker type")
	ErrInvalidDemand     = errors.New("demand must be a non-negative number")
	ErrInvalidScenario   = errors.New("scenario must be between 0 and 100")
	ErrInvalidQuantity   = errors.New("volume and distance must be non-negative numbers")
)
