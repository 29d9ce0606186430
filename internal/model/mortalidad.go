package model

// Mortalidad is a dated death count reducing a batch's live count.
// Percentages and running totals are computed server-side.
type Mortalidad struct {
	ID            int     `json:"id_mortalidad"`
	LoteID        int     `json:"id_lote"`
	Date          Date    `json:"fecha_registro"`
	Muertos       int     `json:"cantidad_muertos"`
	VivosActual   int     `json:"cantidad_vivos_actual"`
	PorcentajeDia float64 `json:"porcentaje_mortalidad"`
	Causa         string  `json:"causa"`
	Observaciones string  `json:"observaciones"`
}

// MortalidadStats summarizes a batch's accumulated mortality.
type MortalidadStats struct {
	CantidadInicial int     `json:"cantidad_inicial"`
	TotalMuertos    int     `json:"total_muertos"`
	PollosVivos     int     `json:"pollos_vivos"`
	PorcentajeTotal float64 `json:"porcentaje_mortalidad_total"`
}
