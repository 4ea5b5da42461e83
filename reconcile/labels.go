package reconcile

import "strings"

type Severity string

const (
	SeverityNeutral Severity = "neutral"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
	SeveritySuccess Severity = "success"
)

// Label pairs a presentation string with a severity tier. Unrecognized
// backend values pass through literally at neutral severity rather
// than failing.
type Label struct {
	Text     string
	Severity Severity
}

func SlotLabel(status SlotStatus) Label {
	switch status {
	case SlotFree:
		return Label{Text: "Free", Severity: SeveritySuccess}
	case SlotOccupied:
		return Label{Text: "Occupied", Severity: SeverityDanger}
	case SlotUnavailable:
		return Label{Text: "Unavailable", Severity: SeverityWarning}
	case SlotInactive:
		return Label{Text: "Inactive", Severity: SeverityNeutral}
	}
	return Label{Text: status.String(), Severity: SeverityNeutral}
}

func ReservationLabel(status string) Label {
	switch strings.ToLower(status) {
	case "pendiente":
		return Label{Text: "Pending", Severity: SeverityWarning}
	case "confirmada":
		return Label{Text: "Confirmed", Severity: SeverityInfo}
	case "pagada":
		return Label{Text: "Paid", Severity: SeveritySuccess}
	case "usada":
		return Label{Text: "Used", Severity: SeverityNeutral}
	case "cancelada":
		return Label{Text: "Cancelled", Severity: SeverityDanger}
	}
	return Label{Text: status, Severity: SeverityNeutral}
}

func ChargeLabel(status string) Label {
	switch strings.ToLower(status) {
	case "pendiente":
		return Label{Text: "Pending", Severity: SeverityWarning}
	case "pagado":
		return Label{Text: "Paid", Severity: SeveritySuccess}
	case "vencido":
		return Label{Text: "Overdue", Severity: SeverityDanger}
	case "cancelado":
		return Label{Text: "Cancelled", Severity: SeverityNeutral}
	}
	return Label{Text: status, Severity: SeverityNeutral}
}

func ConceptLabel(state string) Label {
	switch strings.ToLower(state) {
	case "activo", "activa":
		return Label{Text: "Active", Severity: SeveritySuccess}
	case "inactivo", "inactiva":
		return Label{Text: "Inactive", Severity: SeverityNeutral}
	}
	return Label{Text: state, Severity: SeverityNeutral}
}
