package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papilon-app/papilon-cli/internal/cli/client"
)

// NewFacturasCmd creates the facturas command group.
func NewFacturasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facturas",
		Short: "Register and review invoices",
	}

	cmd.AddCommand(newFacturasLsCmd())
	cmd.AddCommand(newFacturasRegisterCmd())
	cmd.AddCommand(newFacturasSetEstadoCmd())
	cmd.AddCommand(newFacturasDeleteCmd())

	return cmd
}

func newFacturasLsCmd() *cobra.Command {
	var byLocal bool

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List your invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			return runFacturasLs(d, byLocal)
		},
	}

	cmd.Flags().BoolVar(&byLocal, "local", false, "List every invoice of your local, not just the ones you registered")

	return cmd
}

func runFacturasLs(d *deps, byLocal bool) error {
	sess, err := d.requireSession()
	if err != nil {
		return err
	}

	ctx := context.Background()
	var facturas []client.Factura
	if byLocal {
		idLocal, err := d.api.LocalByUsuario(ctx, sess.UserID)
		if err != nil {
			return err
		}
		facturas, err = d.api.FacturasByLocal(ctx, idLocal)
		if err != nil {
			return err
		}
	} else {
		facturas, err = d.api.FacturasByUsuario(ctx, sess.UserID)
		if err != nil {
			return err
		}
	}

	if len(facturas) == 0 {
		fmt.Fprintln(d.out, "No invoices found.")
		return nil
	}

	w := tabwriter.NewWriter(d.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCLIENTE\tTOTAL\tESTADO\tLÍNEAS")
	for _, f := range facturas {
		fmt.Fprintf(w, "%d\t%d\t$%.2f\t%s\t%d\n", f.IDFactura, f.IDCliente, f.Total, f.Estado, len(f.DetalleFacturas))
	}
	return w.Flush()
}

func newFacturasRegisterCmd() *cobra.Command {
	var (
		idCliente int
		estado    string
		items     []string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new invoice",
		Long: `Register an invoice for a client against your local's catalog.

Each --item is producto:cantidad; the unit price is the product's current
price and the invoice total is the sum over all lines.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			return runFacturasRegister(d, idCliente, estado, items)
		},
	}

	cmd.Flags().IntVar(&idCliente, "cliente", 0, "Client id (required)")
	cmd.Flags().StringVar(&estado, "estado", "", "Initial status (prompted from the backend's values if omitted)")
	cmd.Flags().StringArrayVar(&items, "item", nil, "Line item as producto:cantidad (repeatable, required)")

	return cmd
}

func runFacturasRegister(d *deps, idCliente int, estado string, items []string) error {
	sess, err := d.requireSession()
	if err != nil {
		return err
	}

	// Form validation before any network call.
	if idCliente <= 0 {
		return fmt.Errorf("--cliente is required")
	}
	if len(items) == 0 {
		return fmt.Errorf("at least one --item is required")
	}
	lines := make([]facturaLine, 0, len(items))
	for _, item := range items {
		line, err := parseFacturaLine(item)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	ctx := context.Background()

	productos, err := d.api.ProductosByUsuario(ctx, sess.UserID)
	if err != nil {
		return err
	}
	precios := make(map[int]float64, len(productos))
	malformados := make(map[int]string)
	for _, p := range productos {
		precio, err := strconv.ParseFloat(p.Precio, 64)
		if err != nil {
			malformados[p.IDProducto] = p.Precio
			continue
		}
		precios[p.IDProducto] = precio
	}

	estados, err := d.api.EstadosFactura(ctx)
	if err != nil {
		return err
	}
	estado, err = chooseEstado(estado, estados)
	if err != nil {
		return err
	}

	var total float64
	detalles := make([]client.DetalleFactura, 0, len(lines))
	for _, line := range lines {
		precio, ok := precios[line.idProducto]
		if !ok {
			if raw, found := malformados[line.idProducto]; found {
				return fmt.Errorf("product %d has a malformed price %q", line.idProducto, raw)
			}
			return fmt.Errorf("product %d is not in your catalog", line.idProducto)
		}
		detalles = append(detalles, client.DetalleFactura{
			IDProducto:     line.idProducto,
			PrecioUnitario: precio,
			Cantidad:       line.cantidad,
		})
		total += precio * float64(line.cantidad)
	}

	factura, err := d.api.CreateFactura(ctx, client.CreateFacturaRequest{
		IDCliente:       idCliente,
		IDUsuarioLocal:  sess.UserID,
		Estado:          estado,
		Total:           total,
		DetalleFacturas: detalles,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "✓ Invoice registered (id %d, total $%.2f)\n", factura.IDFactura, total)
	return nil
}

type facturaLine struct {
	idProducto int
	cantidad   int
}

// parseFacturaLine parses one --item value of the form producto:cantidad.
func parseFacturaLine(s string) (facturaLine, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return facturaLine{}, fmt.Errorf("invalid item %q (expected producto:cantidad)", s)
	}
	idProducto, err := strconv.Atoi(parts[0])
	if err != nil || idProducto <= 0 {
		return facturaLine{}, fmt.Errorf("invalid product id in item %q", s)
	}
	cantidad, err := strconv.Atoi(parts[1])
	if err != nil || cantidad < 1 {
		return facturaLine{}, fmt.Errorf("invalid cantidad in item %q (must be at least 1)", s)
	}
	return facturaLine{idProducto: idProducto, cantidad: cantidad}, nil
}

func newFacturasSetEstadoCmd() *cobra.Command {
	var estado string

	cmd := &cobra.Command{
		Use:   "set-estado <id>",
		Short: "Change an invoice's status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			return runFacturasSetEstado(d, args[0], estado)
		},
	}

	cmd.Flags().StringVar(&estado, "estado", "", "New status (prompted from the backend's values if omitted)")

	return cmd
}

func runFacturasSetEstado(d *deps, arg, estado string) error {
	if _, err := d.requireSession(); err != nil {
		return err
	}

	idFactura, err := parseID(arg, "invoice")
	if err != nil {
		return err
	}

	ctx := context.Background()
	estados, err := d.api.EstadosFactura(ctx)
	if err != nil {
		return err
	}
	estado, err = chooseEstado(estado, estados)
	if err != nil {
		return err
	}

	if _, err := d.api.UpdateFacturaEstado(ctx, idFactura, estado); err != nil {
		return err
	}

	fmt.Fprintf(d.out, "✓ Invoice %d is now %q\n", idFactura, estado)
	return nil
}

func newFacturasDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an invoice",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			return runFacturasDelete(d, args[0], yes)
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func runFacturasDelete(d *deps, arg string, yes bool) error {
	if _, err := d.requireSession(); err != nil {
		return err
	}

	idFactura, err := parseID(arg, "invoice")
	if err != nil {
		return err
	}

	if !yes {
		fmt.Fprintf(d.out, "Delete invoice %d? Re-run with --yes to confirm.\n", idFactura)
		return nil
	}

	if err := d.api.DeleteFactura(context.Background(), idFactura); err != nil {
		return err
	}

	fmt.Fprintf(d.out, "✓ Invoice %d deleted\n", idFactura)
	return nil
}
