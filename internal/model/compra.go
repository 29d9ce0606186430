package model

// Compra is a purchase of feed or other supplies charged to a batch.
// CostoTotal is computed server-side; the client only previews it.
type Compra struct {
	ID            int     `json:"id_compra"`
	LoteID        int     `json:"id_lote"`
	TipoMateria   string  `json:"tipo_materia"`
	Cantidad      float64 `json:"cantidad"`
	Unidad        string  `json:"unidad"`
	CostoUnitario float64 `json:"costo_unitario"`
	CostoTotal    float64 `json:"costo_total"`
	Date          Date    `json:"fecha_compra"`
	Observaciones string  `json:"observaciones"`
}
