package forms

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/jfarias/avicontrol/internal/model"
)

// loteOptions builds selector options from the active batch cache.
func loteOptions(lotes []model.Lote) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(lotes))
	for _, l := range lotes {
		opts = append(opts, huh.NewOption(l.Name, strconv.Itoa(l.ID)))
	}
	return opts
}

// clienteOptions builds selector options from the customer cache.
func clienteOptions(clientes []model.Cliente) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(clientes))
	for _, c := range clientes {
		opts = append(opts, huh.NewOption(c.Name, strconv.Itoa(c.ID)))
	}
	return opts
}

// previewTotal is the live quantity x unit-price preview shown while
// typing. Purely cosmetic; the server computes the real total.
func previewTotal(qty, price string) string {
	q, errQ := strconv.ParseFloat(qty, 64)
	p, errP := strconv.ParseFloat(price, 64)
	if errQ != nil || errP != nil {
		return "—"
	}
	return fmt.Sprintf("%.2f", q*p)
}

func required(s string) error {
	if s == "" {
		return errors.New("required")
	}
	return nil
}

func validInt(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return errors.New("enter a whole number")
	}
	return nil
}

func validFloat(s string) error {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return errors.New("enter a number")
	}
	return nil
}

func validOptionalFloat(s string) error {
	if s == "" {
		return nil
	}
	return validFloat(s)
}

func validDate(s string) error {
	if _, err := model.ParseDate(s); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

func validOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	return validDate(s)
}

// Conversion helpers used after validation has passed.

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func atof(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func atodate(s string) model.Date {
	d, err := model.ParseDate(s)
	if err != nil {
		return model.Today()
	}
	return d
}

func atooptdate(s string) model.Date {
	if s == "" {
		return model.Date{}
	}
	return atodate(s)
}
