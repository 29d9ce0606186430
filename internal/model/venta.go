package model

// Payment terms for a sale.
const (
	PagoContado = "contado"
	PagoCredito = "credito"
)

// Debt states for a credit sale.
const (
	DeudaPendiente = "pendiente"
	DeudaParcial   = "parcial"
	DeudaPagada    = "pagado"
)

// Venta is a sale of birds from a batch to a customer. ValorTotal is
// computed server-side from kilos and price; the client only previews it.
type Venta struct {
	ID             int     `json:"id_venta"`
	LoteID         int     `json:"id_lote"`
	ClienteID      int     `json:"id_cliente"`
	CantidadPollos int     `json:"cantidad_pollos"`
	CantidadKilos  float64 `json:"cantidad_kilos"`
	PrecioKilo     float64 `json:"precio_kilo"`
	ValorTotal     float64 `json:"valor_total"`
	Date           Date    `json:"fecha_venta"`
}

// VentaCredito tracks the outstanding balance of a credit sale.
type VentaCredito struct {
	ID             int     `json:"id_credito"`
	VentaID        int     `json:"id_venta"`
	ValorTotal     float64 `json:"valor_total"`
	ValorPagado    float64 `json:"valor_pagado"`
	ValorPendiente float64 `json:"valor_pendiente"`
	EstadoDeuda    string  `json:"estado_deuda"`
}

// CreditoPendiente is a pending credit joined with its sale and the
// display names the list views need.
type CreditoPendiente struct {
	VentaCredito
	Venta         Venta  `json:"venta"`
	ClienteNombre string `json:"cliente_nombre"`
	LoteNombre    string `json:"lote_nombre"`
}

// PagoCliente is a payment applied against a credit.
type PagoCliente struct {
	ID            int     `json:"id_pago"`
	CreditoID     int     `json:"id_credito"`
	Valor         float64 `json:"valor_pago"`
	Date          Date    `json:"fecha_pago"`
	Metodo        string  `json:"metodo_pago"`
	Observaciones string  `json:"observaciones"`
}
