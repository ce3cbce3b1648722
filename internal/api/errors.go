package api

import "fmt"

// ValidationError reports bad form or file input. It is resolved inline and
// never reaches the network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// BusinessRuleError reports input that is well-formed but breaks a platform
// rule, e.g. a payout that exceeds the available balance.
type BusinessRuleError struct {
	Rule    string
	Message string
}

func (e *BusinessRuleError) Error() string {
	return e.Message
}

// DataFormatError reports a response whose shape the decoder does not
// recognize. The affected view is cleared and a banner shown; sibling views
// are unaffected.
type DataFormatError struct {
	Endpoint string
	Detail   string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("unexpected response format from %s: %s", e.Endpoint, e.Detail)
}

// NetworkError reports a failed request. Views keep their prior state where
// safe and offer a user-initiated retry; there is no automatic retry.
type NetworkError struct {
	Endpoint   string
	StatusCode int // 0 when the request never completed
	Message    string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("request to %s failed with status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
