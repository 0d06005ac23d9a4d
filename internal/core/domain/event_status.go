package domain

import (
	"fmt"
	"slices"
)

// EventStatus is a carrier milestone. Each status maps to exactly one
// three-character La Poste event code.
type EventStatus string

const (
	EventDeclared                           EventStatus = "declared"
	EventCollectedByCarrier                 EventStatus = "collected_by_carrier"
	EventCollectedInShippingCountry         EventStatus = "collected_in_shipping_country"
	EventUnderTreatment                     EventStatus = "under_treatment"
	EventUnderTreatmentInShippingCountry    EventStatus = "under_treatment_in_shipping_country"
	EventUnderTreatmentInDestinationCountry EventStatus = "under_treatment_in_destination_country"
	EventUnderTreatmentInTransitCountry     EventStatus = "under_treatment_in_transit_country"
	EventWaitingForPresentation             EventStatus = "waiting_for_presentation"
	EventHandedToCustoms                    EventStatus = "handed_to_customs"
	EventReleasedByCustoms                  EventStatus = "released_by_customs"
	EventHeldByCustoms                      EventStatus = "held_by_customs"
	EventProblemOccurring                   EventStatus = "problem_occurring"
	EventProblemSolved                      EventStatus = "problem_solved"
	EventSetForDistribution                 EventStatus = "set_for_distribution"
	EventCannotDistribute                   EventStatus = "cannot_distribute"
	EventWaitingInPostOffice                EventStatus = "waiting_in_post_office"
	EventReturnedToSender                   EventStatus = "returned_to_sender"
	EventDelivered                          EventStatus = "delivered"
	EventDeliveredToSender                  EventStatus = "delivered_to_sender"
)

// orderedEventStatuses lists every status in carrier lifecycle order.
var orderedEventStatuses = []EventStatus{
	EventDeclared,
	EventCollectedByCarrier,
	EventCollectedInShippingCountry,
	EventUnderTreatment,
	EventUnderTreatmentInShippingCountry,
	EventUnderTreatmentInDestinationCountry,
	EventUnderTreatmentInTransitCountry,
	EventWaitingForPresentation,
	EventHandedToCustoms,
	EventReleasedByCustoms,
	EventHeldByCustoms,
	EventProblemOccurring,
	EventProblemSolved,
	EventSetForDistribution,
	EventCannotDistribute,
	EventWaitingInPostOffice,
	EventReturnedToSender,
	EventDelivered,
	EventDeliveredToSender,
}

var eventStatusByCode = map[string]EventStatus{
	"DR1": EventDeclared,
	"PC1": EventCollectedByCarrier,
	"PC2": EventCollectedInShippingCountry,
	"ET1": EventUnderTreatment,
	"ET2": EventUnderTreatmentInShippingCountry,
	"ET3": EventUnderTreatmentInDestinationCountry,
	"ET4": EventUnderTreatmentInTransitCountry,
	"EP1": EventWaitingForPresentation,
	"DO1": EventHandedToCustoms,
	"DO2": EventReleasedByCustoms,
	"DO3": EventHeldByCustoms,
	"PB1": EventProblemOccurring,
	"PB2": EventProblemSolved,
	"MD2": EventSetForDistribution,
	"ND1": EventCannotDistribute,
	"AG1": EventWaitingInPostOffice,
	"RE1": EventReturnedToSender,
	"DI1": EventDelivered,
	"DI2": EventDeliveredToSender,
}

var codeByEventStatus = func() map[EventStatus]string {
	m := make(map[EventStatus]string, len(eventStatusByCode))
	for code, status := range eventStatusByCode {
		m[status] = code
	}
	return m
}()

// ParseEventStatus decodes a carrier event code. Matching is exact and
// case-sensitive.
func ParseEventStatus(code string) (EventStatus, error) {
	status, ok := eventStatusByCode[code]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEventCode, code)
	}
	return status, nil
}

// EventStatuses returns every known status in lifecycle order.
func EventStatuses() []EventStatus {
	return slices.Clone(orderedEventStatuses)
}

// Code returns the carrier code for s, or "" when s is not a known status.
func (s EventStatus) Code() string {
	return codeByEventStatus[s]
}

func (s EventStatus) Valid() bool {
	_, ok := codeByEventStatus[s]
	return ok
}

func (s EventStatus) String() string {
	return string(s)
}
