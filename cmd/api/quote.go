package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"healthathome/internal/config"
	"healthathome/internal/domain/entities"
	"healthathome/internal/domain/quotation"
	"healthathome/internal/infrastructure/catalogfile"

	"github.com/spf13/cobra"
)

func quoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote --catalog FILE CODE [CODE...]",
		Short: "Price exam codes against a catalog file without touching storage",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogPath, _ := cmd.Flags().GetString("catalog")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			quoteCfg, err := cfg.Quote()
			if err != nil {
				return err
			}

			f, err := os.Open(catalogPath)
			if err != nil {
				return err
			}
			defer f.Close()

			return runQuote(cmd.OutOrStdout(), f, catalogPath, args, quoteCfg)
		},
	}
	cmd.Flags().String("catalog", "", "catalog file (.csv or .xlsx)")
	_ = cmd.MarkFlagRequired("catalog")
	return cmd
}

// runQuote prices codigos, in order, from the catalog in r and prints one
// line per exam followed by the quote summary.
func runQuote(out io.Writer, r io.Reader, filename string, codigos []string, cfg quotation.Config) error {
	rows, err := catalogfile.Parse(r, filename)
	if err != nil {
		return err
	}
	byCode := make(map[string]entities.LaboratoryExam, len(rows))
	for _, row := range rows {
		codigo := strings.TrimSpace(row.Codigo)
		if _, dup := byCode[codigo]; dup {
			continue
		}
		byCode[codigo] = entities.LaboratoryExam{Codigo: codigo, Nombre: strings.TrimSpace(row.Nombre), Precio: row.Precio, Activo: true}
	}

	exams := make([]entities.LaboratoryExam, 0, len(codigos))
	for _, c := range codigos {
		e, ok := byCode[strings.TrimSpace(c)]
		if !ok {
			return fmt.Errorf("exam %q is not in %s", c, filename)
		}
		exams = append(exams, e)
	}

	q := quotation.CalculateQuote(exams, cfg)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "CODIGO\tEXAMEN\tPRECIO LISTA\tPRECIO CLIENTE\t")
	for _, l := range quotation.Lines(q, cfg) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", l.Codigo, l.Nombre, quotation.FormatPrice(l.PrecioCatalogo), quotation.FormatPrice(l.PrecioCliente))
	}
	fmt.Fprintln(tw, "\t\t\t\t")
	fmt.Fprintf(tw, "\t\tPrecio de lista\t%s\t\n", quotation.FormatPrice(q.PrecioOriginal))
	fmt.Fprintf(tw, "\t\tRecargo por servicio\t%s\t\n", quotation.FormatPrice(q.RecargoTotal))
	fmt.Fprintf(tw, "\t\tPrecio cliente\t%s\t\n", quotation.FormatPrice(q.PrecioCliente))
	fmt.Fprintf(tw, "\t\tCosto de domicilio\t%s\t\n", quotation.FormatPrice(q.CostoDomicilio))
	fmt.Fprintf(tw, "\t\tTotal\t%s\t\n", quotation.FormatPrice(q.TotalFinal))
	return tw.Flush()
}
