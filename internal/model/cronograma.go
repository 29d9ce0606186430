package model

// Server-side schedule event states. The client derives a finer display
// status (see internal/schedule) but never persists it.
const (
	EventoPendiente  = "pendiente"
	EventoCompletado = "completado"
	EventoVencido    = "vencido"
)

// EventoCronograma is one care event in a batch's raising schedule
// (vitamin doses, feed changes, molasses, estimated exit).
type EventoCronograma struct {
	// ID is the server-assigned event identifier.
	ID int `json:"id_evento"`

	// LoteID references the owning batch.
	LoteID int `json:"id_lote"`

	// TipoEvento classifies the event (e.g. "vitaminas_dia3",
	// "cambio_engorde", "aplicacion_melaza"). Matched against an ordered
	// rule table for display tagging only.
	TipoEvento string `json:"tipo_evento"`

	// Description is the display text for the event.
	Description string `json:"descripcion"`

	// ScheduledDate is the calendar date the event targets.
	ScheduledDate Date `json:"fecha_programada"`

	// ExecutedDate is set if and only if Estado is "completado".
	ExecutedDate Date `json:"fecha_ejecutada"`

	// Estado is the server-authoritative state.
	Estado string `json:"estado"`

	// CycleDay is the day offset within the batch's life cycle.
	CycleDay int `json:"dias_lote"`
}

// Completed reports whether the server considers the event done.
func (e EventoCronograma) Completed() bool {
	return e.Estado == EventoCompletado
}

// EventoPendienteLote is a pending event joined with its batch name and
// the server-precomputed days-until value, as returned by the
// all-batches pending listing.
type EventoPendienteLote struct {
	EventoCronograma
	LoteNombre     string `json:"nombre_lote"`
	DiasParaEvento int    `json:"dias_para_evento"`
}
