package almanac

import "errors"

var (
	ErrMissingSeeds         = errors.New("almanac: input does not start with a seeds: line")
	ErrNoSeeds              = errors.New("almanac: seeds: line lists no seeds")
	ErrOddSeeds             = errors.New("almanac: seed ranges need an even number of values")
	ErrMalformedTranslation = errors.New("almanac: malformed translation")
	ErrEmptyTranslation     = errors.New("almanac: translation with zero length")
	ErrOverflow             = errors.New("almanac: value overflows 64 bits")
	ErrOrphanTranslation    = errors.New("almanac: translation outside of a map")
	ErrExtraHeader          = errors.New("almanac: second header in one map")
	ErrOverlappingSources   = errors.New("almanac: map has overlapping source ranges")
)
