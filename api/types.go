package api

import "strings"

type Area struct {
	ID               string  `json:"id"`
	Name             string  `json:"nombre"`
	Description      string  `json:"descripcion"`
	State            string  `json:"estado"` // "activa" or "inactiva"
	CapacityMax      int     `json:"capacidad_maxima"`
	CostPerHour      float64 `json:"costo_por_hora"`
	MinDurationHours float64 `json:"duracion_minima_horas"`
	MaxDurationHours float64 `json:"duracion_maxima_horas"`
	MinAdvanceHours  float64 `json:"anticipacion_minima_horas"`
}

const (
	AreaStateActive   = "activa"
	AreaStateInactive = "inactiva"
)

func (a Area) IsActive() bool {
	return strings.EqualFold(a.State, AreaStateActive)
}

type AvailabilitySlot struct {
	StartTime string `json:"hora_inicio"`
	EndTime   string `json:"hora_fin"`
	Available bool   `json:"disponible"`
}

type AvailabilityResponse struct {
	Slots []AvailabilitySlot `json:"slots"`
}

const (
	ReservationPending   = "pendiente"
	ReservationConfirmed = "confirmada"
	ReservationPaid      = "pagada"
	ReservationUsed      = "usada"
	ReservationCancelled = "cancelada"
)

type Reservation struct {
	ID        string  `json:"id"`
	AreaID    string  `json:"area_id"`
	AreaName  string  `json:"area_nombre"`
	Date      string  `json:"fecha"`
	StartTime string  `json:"hora_inicio"`
	EndTime   string  `json:"hora_fin"`
	People    int     `json:"numero_personas"`
	Notes     string  `json:"observaciones"`
	Status    string  `json:"estado"`
	TotalCost float64 `json:"costo_total"`
	CreatedAt string  `json:"creado_en"`
}

// IsActive reports whether the reservation occupies its slot. A
// cancelled reservation never blocks a slot.
func (r Reservation) IsActive() bool {
	switch strings.ToLower(r.Status) {
	case ReservationPending, ReservationConfirmed, ReservationPaid, ReservationUsed:
		return true
	}
	return false
}

type ReservationRequest struct {
	Date      string `json:"fecha"`
	StartTime string `json:"hora_inicio"`
	EndTime   string `json:"hora_fin"`
	People    int    `json:"numero_personas"`
	Notes     string `json:"observaciones,omitempty"`
}

type Concept struct {
	ID          string  `json:"id"`
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Type        string  `json:"tipo"` // "cuota", "multa", "extraordinaria"
	Amount      float64 `json:"monto"`
	State       string  `json:"estado"`
}

type ConceptRequest struct {
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion,omitempty"`
	Type        string  `json:"tipo"`
	Amount      float64 `json:"monto"`
	State       string  `json:"estado,omitempty"`
}

type Charge struct {
	ID        string  `json:"id"`
	UnitID    string  `json:"vivienda_id"`
	UnitLabel string  `json:"vivienda"`
	ConceptID string  `json:"concepto_id"`
	Concept   string  `json:"concepto"`
	Amount    float64 `json:"monto"`
	DueDate   string  `json:"fecha_vencimiento"`
	Status    string  `json:"estado"` // "pendiente", "pagado", "vencido", "cancelado"
}

type ChargeRequest struct {
	UnitID    string  `json:"vivienda_id"`
	ConceptID string  `json:"concepto_id"`
	Amount    float64 `json:"monto"`
	DueDate   string  `json:"fecha_vencimiento"`
}

type Payment struct {
	ID        string  `json:"id"`
	ChargeID  string  `json:"cargo_id"`
	Amount    float64 `json:"monto"`
	Method    string  `json:"metodo_pago"`
	Reference string  `json:"referencia"`
	PaidAt    string  `json:"fecha_pago"`
}

type PaymentRequest struct {
	Amount    float64 `json:"monto"`
	Method    string  `json:"metodo_pago"`
	Reference string  `json:"referencia,omitempty"`
}

type Announcement struct {
	ID          string `json:"id"`
	Title       string `json:"titulo"`
	Body        string `json:"contenido"`
	Priority    string `json:"prioridad"`
	PublishedAt string `json:"fecha_publicacion"`
	ExpiresAt   string `json:"fecha_expiracion,omitempty"`
}

type AnnouncementRequest struct {
	Title    string `json:"titulo"`
	Body     string `json:"contenido"`
	Priority string `json:"prioridad,omitempty"`
}
