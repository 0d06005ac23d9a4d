package domain

import (
	"encoding/json"
	"fmt"
)

// DeliveryStatus is the coarse delivery phase, encoded as the 1..5 step of the
// carrier's timeline. Ordering follows the step value.
type DeliveryStatus int

const (
	DeliveryReadyToBeCollected DeliveryStatus = iota + 1
	DeliveryCollectedByCarrier
	DeliveryInTransit
	DeliveryReadyForDelivery
	DeliveryDelivered
)

var deliveryStatusNames = map[DeliveryStatus]string{
	DeliveryReadyToBeCollected: "ready_to_be_collected_by_carrier",
	DeliveryCollectedByCarrier: "collected_by_carrier",
	DeliveryInTransit:          "in_transit",
	DeliveryReadyForDelivery:   "ready_for_delivery",
	DeliveryDelivered:          "delivered",
}

// DeliveryStatusFromStep maps a timeline step id to its phase.
func DeliveryStatusFromStep(step int) (DeliveryStatus, error) {
	s := DeliveryStatus(step)
	if _, ok := deliveryStatusNames[s]; !ok {
		return 0, fmt.Errorf("%w: step %d", ErrNoProgress, step)
	}
	return s, nil
}

// InferDeliveryStatus returns the phase of the last contiguous completed step.
// Steps are read in the given order and scanning stops at the first step that
// is not completed, so a completed step after a gap is ignored. An empty
// timeline resolves to step 1.
func InferDeliveryStatus(steps []TimelineStep) (DeliveryStatus, error) {
	last := 1
	for _, step := range steps {
		if !step.Completed {
			break
		}
		last = step.ID
	}
	return DeliveryStatusFromStep(last)
}

func (s DeliveryStatus) Step() int {
	return int(s)
}

func (s DeliveryStatus) String() string {
	if name, ok := deliveryStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s DeliveryStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
