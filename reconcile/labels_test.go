package reconcile

import "testing"

func TestSlotLabel_Exhaustive(t *testing.T) {
	cases := []struct {
		status   SlotStatus
		text     string
		severity Severity
	}{
		{SlotFree, "Free", SeveritySuccess},
		{SlotOccupied, "Occupied", SeverityDanger},
		{SlotUnavailable, "Unavailable", SeverityWarning},
		{SlotInactive, "Inactive", SeverityNeutral},
	}
	for _, tc := range cases {
		got := SlotLabel(tc.status)
		if got.Text != tc.text || got.Severity != tc.severity {
			t.Errorf("SlotLabel(%v) = %+v, want {%s %s}", tc.status, got, tc.text, tc.severity)
		}
	}
}

func TestReservationLabel(t *testing.T) {
	cases := []struct {
		status   string
		text     string
		severity Severity
	}{
		{"pendiente", "Pending", SeverityWarning},
		{"confirmada", "Confirmed", SeverityInfo},
		{"pagada", "Paid", SeveritySuccess},
		{"usada", "Used", SeverityNeutral},
		{"cancelada", "Cancelled", SeverityDanger},
		{"PENDIENTE", "Pending", SeverityWarning},
	}
	for _, tc := range cases {
		got := ReservationLabel(tc.status)
		if got.Text != tc.text || got.Severity != tc.severity {
			t.Errorf("ReservationLabel(%q) = %+v, want {%s %s}", tc.status, got, tc.text, tc.severity)
		}
	}
}

func TestReservationLabel_UnknownPassesThrough(t *testing.T) {
	got := ReservationLabel("en_revision")
	if got.Text != "en_revision" {
		t.Errorf("unknown status text = %q, want literal passthrough", got.Text)
	}
	if got.Severity != SeverityNeutral {
		t.Errorf("unknown status severity = %q, want neutral", got.Severity)
	}
}

func TestChargeLabel(t *testing.T) {
	if got := ChargeLabel("vencido"); got.Text != "Overdue" || got.Severity != SeverityDanger {
		t.Errorf("ChargeLabel(vencido) = %+v", got)
	}
	if got := ChargeLabel("pagado"); got.Severity != SeveritySuccess {
		t.Errorf("ChargeLabel(pagado) severity = %q, want success", got.Severity)
	}
	if got := ChargeLabel("parcial"); got.Text != "parcial" || got.Severity != SeverityNeutral {
		t.Errorf("unknown charge status should pass through neutral, got %+v", got)
	}
}

func TestConceptLabel(t *testing.T) {
	if got := ConceptLabel("activo"); got.Text != "Active" {
		t.Errorf("ConceptLabel(activo) = %+v", got)
	}
	if got := ConceptLabel("activa"); got.Text != "Active" {
		t.Errorf("ConceptLabel(activa) = %+v", got)
	}
	if got := ConceptLabel("suspendido"); got.Text != "suspendido" || got.Severity != SeverityNeutral {
		t.Errorf("unknown concept state should pass through neutral, got %+v", got)
	}
}
