package order

import (
	"fmt"
	"strings"

	"shop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Ordered ──> Cancelled
//
// Cancelled is final. Status is persisted and exposed by its string form.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Ordered is the status of a placed order.
	Ordered

	// Cancelled is the status of an order whose stock has been returned.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Ordered:   "ORDER",
		Cancelled: "CANCEL",
	}
}

// ParseStatus resolves the persisted or requested form ("ORDER", "CANCEL").
// Matching ignores case and surrounding whitespace.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the status is Ordered or Cancelled.
func (s Status) Validate() error {
	if s != Ordered && s != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns "ORDER" or "CANCEL", and "UNKNOWN" for anything else.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Ordered -> Cancelled
//
// Any other current status yields an errs.IllegalStateError.
func (s Status) Cancel() (Status, error) {
	if s != Ordered {
		return Unknown, errs.NewIllegalStateError("order", s.String())
	}
	return Cancelled, nil
}
