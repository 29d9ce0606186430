package model

// Batch (lote) lifecycle states.
const (
	LoteActivo  = "activo"
	LoteCerrado = "cerrado"
)

// Lote is a cohort of poultry raised together from a start date to an
// exit date. Financial and mortality aggregates belong to the backend;
// the client only redisplays what the server returns.
type Lote struct {
	// ID is the server-assigned batch identifier.
	ID int `json:"id_lote"`

	// Name is the display name of the batch.
	Name string `json:"nombre_lote"`

	// InitialQuantity is the number of birds the batch started with.
	InitialQuantity int `json:"cantidad_inicial"`

	// StartDate is the first day of the raising cycle.
	StartDate Date `json:"fecha_inicio"`

	// EstimatedExitDate is the planned end of the cycle. Absent when the
	// exit has not been scheduled; cycle progress is undefined without it.
	EstimatedExitDate Date `json:"fecha_estimada_salida"`

	// CloseDate is set once the batch has been closed.
	CloseDate Date `json:"fecha_cierre"`

	// Estado is either "activo" or "cerrado".
	Estado string `json:"estado"`

	CreatedAt Timestamp `json:"created_at"`
}

// CapitalLote is the capital assigned to a batch. All deltas are
// computed server-side.
type CapitalLote struct {
	ID             int     `json:"id_capital"`
	LoteID         int     `json:"id_lote"`
	CapitalInicial float64 `json:"capital_inicial"`
	CapitalActual  float64 `json:"capital_actual"`
	AssignedDate   Date    `json:"fecha_asignacion"`
}

// Capital movement kinds.
const (
	MovimientoCompra  = "compra"
	MovimientoGasto   = "gasto"
	MovimientoIngreso = "ingreso"
	MovimientoRetiro  = "retiro"
)

// MovimientoCapital is a single entry in a batch's capital ledger.
type MovimientoCapital struct {
	ID          int     `json:"id_movimiento"`
	LoteID      int     `json:"id_lote"`
	Tipo        string  `json:"tipo_movimiento"`
	Valor       float64 `json:"valor"`
	Description string  `json:"descripcion"`
	Date        Date    `json:"fecha_movimiento"`
}

// DashboardStats is the server-computed headline summary.
type DashboardStats struct {
	LotesActivos  int     `json:"lotes_activos"`
	PollosActivos int     `json:"pollos_activos"`
	CapitalTotal  float64 `json:"capital_total"`
	GastosMes     float64 `json:"gastos_mes"`
}

// ResumenLote is one row of the per-batch summary view computed by the
// backend. The field set mirrors the server's vista_resumen_lotes.
type ResumenLote struct {
	LoteID          int     `json:"id_lote"`
	Name            string  `json:"nombre_lote"`
	Estado          string  `json:"estado"`
	InitialQuantity int     `json:"cantidad_inicial"`
	StartDate       Date    `json:"fecha_inicio"`
	CapitalInicial  float64 `json:"capital_inicial"`
	CapitalActual   float64 `json:"capital_actual"`
	TotalCompras    float64 `json:"total_compras"`
	TotalVentas     float64 `json:"total_ventas"`
}
