package model

// Notification priorities, as the backend names them. They drive visual
// urgency only; the server decides ordering.
const (
	PrioridadCritica = "critica"
	PrioridadAlta    = "alta"
	PrioridadMedia   = "media"
	PrioridadBaja    = "baja"
)

// Notificacion is an alert surfaced to the user about the state of a
// batch, its schedule, credits, or mortality. The client never
// constructs one; it only requests state transitions.
type Notificacion struct {
	// ID is the server-assigned identifier.
	ID int `json:"id_notificacion"`

	// LoteID references the batch that triggered the notification,
	// zero when the notification is not batch-specific.
	LoteID int `json:"id_lote"`

	// Tipo is the server-side trigger classification
	// (e.g. "alerta_mortalidad_alta", "recordatorio_vitaminas").
	Tipo string `json:"tipo_notificacion"`

	// Prioridad is one of the Prioridad* constants.
	Prioridad string `json:"prioridad"`

	// Titulo and Mensaje are the display text.
	Titulo  string `json:"titulo"`
	Mensaje string `json:"mensaje"`

	// Leida is the server-authoritative read flag.
	Leida bool `json:"leida"`

	// CreatedAt is used for relative-age display only.
	CreatedAt Timestamp `json:"fecha_creacion"`

	// ReadAt is set once the notification has been marked read.
	ReadAt Timestamp `json:"fecha_leida"`
}
