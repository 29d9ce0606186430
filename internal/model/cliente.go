package model

// Customer states.
const (
	ClienteActivo   = "activo"
	ClienteInactivo = "inactivo"
)

// Cliente is a customer record.
type Cliente struct {
	ID      int    `json:"id_cliente"`
	Name    string `json:"nombre"`
	Phone   string `json:"telefono"`
	Address string `json:"direccion"`
	Estado  string `json:"estado"`
}
