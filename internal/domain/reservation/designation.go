package reservation

// Classify proposes the designation for a new reservation. A repeat customer
// asking for a nomination is upgraded to a confirmed nomination; every other
// request is left alone. The result is advisory and callers may override it.
func Classify(hasPriorReservation bool, requested DesignationType) DesignationType {
	if hasPriorReservation && requested == DesignationNomination {
		return DesignationConfirmed
	}
	return requested
}

// SuggestDesignation is the default offered when a therapist is picked for a customer.
func SuggestDesignation(hasPriorReservation bool) DesignationType {
	if hasPriorReservation {
		return DesignationConfirmed
	}
	return DesignationNomination
}
