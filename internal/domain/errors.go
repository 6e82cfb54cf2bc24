package domain

import "errors"

var (
	ErrNoActivities        = errors.New("no activities found")
	ErrUnknownProvider     = errors.New("unknown coaching provider")
	ErrUnknownDataKind     = errors.New("unknown data type")
	ErrUnknownCoachingKind = errors.New("unknown coaching type")
)
