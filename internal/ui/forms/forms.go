// Package forms holds the huh-based input forms for registering
// batches, customers, sales, purchases, mortality, and credit
// payments. Each form emits a typed message carrying a ready-to-send
// API request; the root model owns the actual round trip.
package forms

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jfarias/avicontrol/internal/api"
	"github.com/jfarias/avicontrol/internal/model"
)

// Kind identifies which form is active.
type Kind int

const (
	KindNone Kind = iota
	KindVenta
	KindCompra
	KindMortalidad
	KindPago
	KindLote
	KindCliente
)

// Submission messages. Each carries the request the root model should
// send on the user's behalf.
type (
	VentaMsg      struct{ Req api.CreateVentaRequest }
	CompraMsg     struct{ Req api.CreateCompraRequest }
	MortalidadMsg struct{ Req api.CreateMortalidadRequest }
	PagoMsg       struct{ Req api.CreatePagoRequest }
	LoteMsg       struct{ Req api.CreateLoteRequest }
	ClienteMsg    struct{ Req api.ClienteRequest }

	// CancelMsg is dispatched when the user abandons the form.
	CancelMsg struct{}
)

// bindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type bindings struct {
	loteID    string
	clienteID string

	// venta
	pollos      string
	kilos       string
	precio      string
	tipoPago    string
	pagoInicial string

	// compra
	tipoMateria string
	cantidad    string
	unidad      string
	costo       string

	// mortalidad
	muertos string
	causa   string

	// pago
	valorPago string
	metodo    string

	// lote
	nombreLote      string
	cantidadInicial string
	fechaInicio     string
	fechaSalida     string
	capital         string

	// cliente
	nombre    string
	telefono  string
	direccion string

	fecha         string
	observaciones string
}

// Model is the Bubble Tea model for the active form, if any.
type Model struct {
	form      *huh.Form
	fb        *bindings
	kind      Kind
	creditoID int
	width     int
	height    int
}

// New creates an idle form model.
func New(width, height int) Model {
	return Model{fb: &bindings{}, width: width, height: height}
}

// Kind returns the active form kind, KindNone when idle.
func (m Model) Kind() Kind {
	return m.kind
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.form != nil {
		m.form = m.form.WithWidth(width).WithHeight(height)
	}
}

// StartVenta opens the sale form. The batch and customer selectors are
// populated from the catalog cache.
func (m *Model) StartVenta(lotes []model.Lote, clientes []model.Cliente) tea.Cmd {
	fb := m.fb
	*fb = bindings{tipoPago: model.PagoContado, fecha: model.Today().String()}
	m.kind = KindVenta

	m.form = m.newForm(
		huh.NewSelect[string]().
			Title("Batch").
			Options(loteOptions(lotes)...).
			Value(&fb.loteID),
		huh.NewSelect[string]().
			Title("Customer").
			Options(clienteOptions(clientes)...).
			Value(&fb.clienteID),
		huh.NewInput().
			Title("Birds sold").
			Validate(validInt).
			Value(&fb.pollos),
		huh.NewInput().
			Title("Kilos").
			Validate(validFloat).
			Value(&fb.kilos),
		huh.NewInput().
			Title("Price per kilo").
			Validate(validFloat).
			Value(&fb.precio),
		huh.NewNote().
			Title("Total").
			DescriptionFunc(func() string {
				return previewTotal(fb.kilos, fb.precio)
			}, fb),
		huh.NewSelect[string]().
			Title("Payment").
			Options(
				huh.NewOption("Cash", model.PagoContado),
				huh.NewOption("Credit", model.PagoCredito),
			).
			Value(&fb.tipoPago),
		huh.NewInput().
			Title("Initial payment (credit only)").
			Validate(validOptionalFloat).
			Value(&fb.pagoInicial),
		huh.NewInput().
			Title("Date (YYYY-MM-DD)").
			Validate(validDate).
			Value(&fb.fecha),
	)
	return m.form.Init()
}

// StartCompra opens the supply purchase form.
func (m *Model) StartCompra(lotes []model.Lote) tea.Cmd {
	fb := m.fb
	*fb = bindings{unidad: "kg", fecha: model.Today().String()}
	m.kind = KindCompra

	m.form = m.newForm(
		huh.NewSelect[string]().
			Title("Batch").
			Options(loteOptions(lotes)...).
			Value(&fb.loteID),
		huh.NewInput().
			Title("Supply type").
			Validate(required).
			Value(&fb.tipoMateria),
		huh.NewInput().
			Title("Quantity").
			Validate(validFloat).
			Value(&fb.cantidad),
		huh.NewInput().
			Title("Unit").
			Validate(required).
			Value(&fb.unidad),
		huh.NewInput().
			Title("Unit cost").
			Validate(validFloat).
			Value(&fb.costo),
		huh.NewNote().
			Title("Total").
			DescriptionFunc(func() string {
				return previewTotal(fb.cantidad, fb.costo)
			}, fb),
		huh.NewInput().
			Title("Date (YYYY-MM-DD)").
			Validate(validDate).
			Value(&fb.fecha),
		huh.NewInput().
			Title("Notes").
			Value(&fb.observaciones),
	)
	return m.form.Init()
}

// StartMortalidad opens the daily mortality form.
func (m *Model) StartMortalidad(lotes []model.Lote) tea.Cmd {
	fb := m.fb
	*fb = bindings{fecha: model.Today().String()}
	m.kind = KindMortalidad

	m.form = m.newForm(
		huh.NewSelect[string]().
			Title("Batch").
			Options(loteOptions(lotes)...).
			Value(&fb.loteID),
		huh.NewInput().
			Title("Deaths").
			Validate(validInt).
			Value(&fb.muertos),
		huh.NewInput().
			Title("Date (YYYY-MM-DD)").
			Validate(validDate).
			Value(&fb.fecha),
		huh.NewInput().
			Title("Cause").
			Value(&fb.causa),
		huh.NewInput().
			Title("Notes").
			Value(&fb.observaciones),
	)
	return m.form.Init()
}

// StartPago opens the credit payment form.
func (m *Model) StartPago(credito model.CreditoPendiente) tea.Cmd {
	fb := m.fb
	*fb = bindings{fecha: model.Today().String()}
	m.kind = KindPago
	m.creditoID = credito.ID

	m.form = m.newForm(
		huh.NewNote().
			Title(fmt.Sprintf("Credit #%d / %s", credito.ID, credito.ClienteNombre)).
			Description(fmt.Sprintf("Outstanding: %.2f", credito.ValorPendiente)),
		huh.NewInput().
			Title("Payment amount").
			Validate(validFloat).
			Value(&fb.valorPago),
		huh.NewInput().
			Title("Date (YYYY-MM-DD)").
			Validate(validDate).
			Value(&fb.fecha),
		huh.NewInput().
			Title("Method").
			Value(&fb.metodo),
		huh.NewInput().
			Title("Notes").
			Value(&fb.observaciones),
	)
	return m.form.Init()
}

// StartLote opens the new batch form.
func (m *Model) StartLote() tea.Cmd {
	fb := m.fb
	*fb = bindings{fechaInicio: model.Today().String()}
	m.kind = KindLote

	m.form = m.newForm(
		huh.NewInput().
			Title("Batch name").
			Validate(required).
			Value(&fb.nombreLote),
		huh.NewInput().
			Title("Initial bird count").
			Validate(validInt).
			Value(&fb.cantidadInicial),
		huh.NewInput().
			Title("Start date (YYYY-MM-DD)").
			Validate(validDate).
			Value(&fb.fechaInicio),
		huh.NewInput().
			Title("Estimated exit date (optional)").
			Validate(validOptionalDate).
			Value(&fb.fechaSalida),
		huh.NewInput().
			Title("Initial capital").
			Validate(validFloat).
			Value(&fb.capital),
	)
	return m.form.Init()
}

// StartCliente opens the new customer form.
func (m *Model) StartCliente() tea.Cmd {
	fb := m.fb
	*fb = bindings{}
	m.kind = KindCliente

	m.form = m.newForm(
		huh.NewInput().
			Title("Name").
			Validate(required).
			Value(&fb.nombre),
		huh.NewInput().
			Title("Phone").
			Value(&fb.telefono),
		huh.NewInput().
			Title("Address").
			Value(&fb.direccion),
	)
	return m.form.Init()
}

// newForm wraps fields in a single-group form sized to the view.
func (m *Model) newForm(fields ...huh.Field) *huh.Form {
	return huh.NewForm(huh.NewGroup(fields...)).
		WithWidth(m.width).
		WithHeight(m.height).
		WithShowHelp(true)
}

// Update drives the active form and emits the submission message once
// the form completes.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.reset()
		return m, func() tea.Msg { return CancelMsg{} }
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		submitMsg := m.buildMsg()
		m.reset()
		return m, func() tea.Msg { return submitMsg }
	}

	return m, cmd
}

// View renders the active form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}
	return m.form.View()
}

func (m *Model) reset() {
	m.form = nil
	m.kind = KindNone
}

// buildMsg assembles the typed submission message from the validated
// field values.
func (m Model) buildMsg() tea.Msg {
	fb := m.fb
	switch m.kind {
	case KindVenta:
		return VentaMsg{Req: api.CreateVentaRequest{
			LoteID:         atoi(fb.loteID),
			ClienteID:      atoi(fb.clienteID),
			CantidadPollos: atoi(fb.pollos),
			CantidadKilos:  atof(fb.kilos),
			PrecioKilo:     atof(fb.precio),
			Date:           atodate(fb.fecha),
			TipoPago:       fb.tipoPago,
			PagoInicial:    atof(fb.pagoInicial),
		}}
	case KindCompra:
		return CompraMsg{Req: api.CreateCompraRequest{
			LoteID:        atoi(fb.loteID),
			TipoMateria:   fb.tipoMateria,
			Cantidad:      atof(fb.cantidad),
			Unidad:        fb.unidad,
			CostoUnitario: atof(fb.costo),
			Date:          atodate(fb.fecha),
			Observaciones: fb.observaciones,
		}}
	case KindMortalidad:
		return MortalidadMsg{Req: api.CreateMortalidadRequest{
			LoteID:        atoi(fb.loteID),
			Muertos:       atoi(fb.muertos),
			Date:          atodate(fb.fecha),
			Causa:         fb.causa,
			Observaciones: fb.observaciones,
		}}
	case KindPago:
		return PagoMsg{Req: api.CreatePagoRequest{
			CreditoID:     m.creditoID,
			Valor:         atof(fb.valorPago),
			Date:          atodate(fb.fecha),
			Metodo:        fb.metodo,
			Observaciones: fb.observaciones,
		}}
	case KindLote:
		return LoteMsg{Req: api.CreateLoteRequest{
			Name:              fb.nombreLote,
			InitialQuantity:   atoi(fb.cantidadInicial),
			StartDate:         atodate(fb.fechaInicio),
			EstimatedExitDate: atooptdate(fb.fechaSalida),
			CapitalInicial:    atof(fb.capital),
		}}
	case KindCliente:
		return ClienteMsg{Req: api.ClienteRequest{
			Name:    fb.nombre,
			Phone:   fb.telefono,
			Address: fb.direccion,
		}}
	default:
		return CancelMsg{}
	}
}
