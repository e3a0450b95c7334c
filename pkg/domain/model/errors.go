package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrNoMatches      = goerr.New("no matching records")
	ErrReportNotFound = goerr.New("report not found")
)
