// Package quotation computes the price breakdown of a home-service laboratory
// proforma from a selection of catalog exams.
package quotation

import (
	"errors"

	"healthathome/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	DefaultRecargoTotal   = decimal.NewFromInt(120)
	DefaultCostoDomicilio = decimal.Zero
	DefaultMarkup         = decimal.RequireFromString("1.2")
)

var ErrInvalidConfig = errors.New("invalid quote config")

// Config is the pricing policy of a deployment.
//
// RecargoTotal is the flat home-service surcharge split evenly across the
// exams of a quote, CostoDomicilio the home-visit fee and Markup the factor
// applied to every catalog price.
type Config struct {
	RecargoTotal   decimal.Decimal
	CostoDomicilio decimal.Decimal
	Markup         decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		RecargoTotal:   DefaultRecargoTotal,
		CostoDomicilio: DefaultCostoDomicilio,
		Markup:         DefaultMarkup,
	}
}

// Validate rejects policies under which a quote could charge less than the
// catalog price.
func (c Config) Validate() error {
	switch {
	case c.RecargoTotal.IsNegative():
		return errors.Join(ErrInvalidConfig, errors.New("recargo total must not be negative"))
	case c.CostoDomicilio.IsNegative():
		return errors.Join(ErrInvalidConfig, errors.New("costo domicilio must not be negative"))
	case c.Markup.LessThan(decimal.NewFromInt(1)):
		return errors.Join(ErrInvalidConfig, errors.New("markup must be at least 1"))
	}
	return nil
}

// CalculateQuote prices exams under cfg. It never fails: unreadable catalog
// prices count as zero. Examenes keeps the input order; the monetary fields do
// not depend on it.
//
// The surcharge lives inside PrecioCliente: every exam's client price carries
// RecargoUnitario. RecargoTotal is reported next to it and is not added to
// TotalFinal a second time.
func CalculateQuote(exams []entities.LaboratoryExam, cfg Config) entities.ExamQuote {
	quote := entities.ExamQuote{
		Examenes:        append([]entities.LaboratoryExam{}, exams...),
		PrecioOriginal:  decimal.Zero,
		PrecioCliente:   decimal.Zero,
		RecargoTotal:    cfg.RecargoTotal,
		RecargoUnitario: decimal.Zero,
		CostoDomicilio:  decimal.Zero,
		TotalFinal:      decimal.Zero,
	}
	if len(exams) == 0 {
		return quote
	}

	quote.RecargoUnitario = cfg.RecargoTotal.Div(decimal.NewFromInt(int64(len(exams))))
	for _, exam := range exams {
		price := ParsePrice(exam.Precio)
		quote.PrecioOriginal = quote.PrecioOriginal.Add(price)
		quote.PrecioCliente = quote.PrecioCliente.Add(ClientPrice(price, quote.RecargoUnitario, cfg))
	}
	quote.CostoDomicilio = cfg.CostoDomicilio
	quote.TotalFinal = quote.PrecioCliente.Add(cfg.CostoDomicilio)
	return quote
}

// ClientPrice is the amount one exam contributes to PrecioCliente.
func ClientPrice(price, recargoUnitario decimal.Decimal, cfg Config) decimal.Decimal {
	return price.Mul(cfg.Markup).Add(recargoUnitario)
}

// Lines breaks a quote computed under cfg into one line per exam.
func Lines(quote entities.ExamQuote, cfg Config) []entities.QuoteLine {
	lines := make([]entities.QuoteLine, 0, len(quote.Examenes))
	for _, exam := range quote.Examenes {
		price := ParsePrice(exam.Precio)
		lines = append(lines, entities.QuoteLine{
			Codigo:         exam.Codigo,
			Nombre:         exam.Nombre,
			PrecioCatalogo: price,
			PrecioCliente:  ClientPrice(price, quote.RecargoUnitario, cfg),
		})
	}
	return lines
}
