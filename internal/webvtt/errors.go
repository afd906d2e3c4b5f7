package webvtt

import "errors"

var (
	// source file does not exist
	ErrInputMissing = errors.New("input file not found")

	// header lacks the WEBVTT token or a timing line is unparseable
	ErrMalformedFile = errors.New("not a valid WebVTT file")

	// timestamp text does not match (HH:)MM:SS.mmm
	ErrMalformedTimestamp = errors.New("invalid WebVTT timestamp format")

	// value is neither a millisecond count nor a timestamp string
	ErrInvalidArgument = errors.New("invalid argument")
)
