package models

import "fmt"

// ArgumentError reports malformed or missing command-line input.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

// NotFoundError reports that the input path does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

// NotAFileError reports that the input path exists but is not a
// regular file.
type NotAFileError struct {
	Path string
}

func (e *NotAFileError) Error() string {
	return fmt.Sprintf("not a file: %s", e.Path)
}

// ProcessingError reports a failure while reading, decoding or
// serializing content.
type ProcessingError struct {
	Err error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing error: %v", e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
