package order

import (
	"fmt"
	"strings"

	"shop/internal/pkg/errs"
)

// DeliveryStatus is the shipping state of an order's delivery.
type DeliveryStatus int

const (
	DeliveryUnknown DeliveryStatus = iota
	DeliveryReady
	DeliveryCompleted
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryUnknown:   "UNKNOWN",
		DeliveryReady:     "READY",
		DeliveryCompleted: "COMP",
	}
}

// ParseDeliveryStatus resolves "READY" or "COMP".
func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getDeliveryStatusStrings() {
		if status != DeliveryUnknown && str == normalized {
			return status, nil
		}
	}
	return DeliveryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery status is invalid",
		fmt.Errorf("%q is not a valid delivery status", s),
	)
}

func (s DeliveryStatus) Validate() error {
	if s != DeliveryReady && s != DeliveryCompleted {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status is invalid",
			fmt.Errorf("%d is not a valid delivery status", s),
		)
	}
	return nil
}

func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
