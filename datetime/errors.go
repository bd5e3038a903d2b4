package datetime

import (
	"errors"
	"fmt"
)

/***** VARIABLE ********************************/

var (
	// ErrCarry flags a Gregorian tuple whose fields are out of range
	// (invalid day/month/hour/minute/second/nanosecond combination).
	ErrCarry = errors.New("gregorian field out of range")
	// ErrOverflow flags a narrowing accessor whose result does not fit the
	// requested width.
	ErrOverflow = errors.New("duration overflow")

	// ErrParse and its refinements cover external data ingestion.
	ErrParse         = errors.New("parsing error")
	ErrParseNumber   = fmt.Errorf("%w: malformed numeric literal", ErrParse)
	ErrParseUnit     = fmt.Errorf("%w: unknown or missing unit", ErrParse)
	ErrParseScale    = fmt.Errorf("%w: unknown time scale", ErrParse)
	ErrParseWeekday  = fmt.Errorf("%w: unknown weekday", ErrParse)
	ErrParseIO       = fmt.Errorf("%w: i/o failure", ErrParse)
	ErrParseDownload = fmt.Errorf("%w: download failure", ErrParse)
)
