package usecase

import "errors"

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrInvalidProjectID  = errors.New("invalid project id")
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrUnknownState      = errors.New("unknown state")
	ErrRollupNotFound    = errors.New("state rollup not found")
	ErrLawNotFound       = errors.New("law not found")
	ErrInvalidLaw        = errors.New("invalid law")
	ErrInvalidSponsor    = errors.New("invalid sponsor")
	ErrNoMunicipalities  = errors.New("no municipalities selected")
	ErrAggregationFailed = errors.New("state aggregation failed")
)
