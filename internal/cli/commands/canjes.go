package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewCanjesCmd creates the canjes command group.
func NewCanjesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canjes",
		Short: "Review point redemptions at your local",
	}

	cmd.AddCommand(newCanjesLsCmd())
	cmd.AddCommand(newCanjesSetEstadoCmd())

	return cmd
}

func newCanjesLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List redemptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			return runCanjesLs(d)
		},
	}
}

func runCanjesLs(d *deps) error {
	sess, err := d.requireSession()
	if err != nil {
		return err
	}

	ctx := context.Background()
	canjes, err := d.api.CanjesByUsuario(ctx, sess.UserID)
	if err != nil {
		return err
	}

	if len(canjes) == 0 {
		fmt.Fprintln(d.out, "No redemptions found.")
		return nil
	}

	// One name lookup per distinct client; a failed lookup falls back to the
	// numeric id rather than failing the listing.
	nombres := make(map[int]string)
	for _, canje := range canjes {
		if _, seen := nombres[canje.IDCliente]; seen {
			continue
		}
		nombre, err := d.api.ClienteNombre(ctx, canje.IDCliente)
		if err != nil {
			nombre = fmt.Sprintf("#%d", canje.IDCliente)
		}
		nombres[canje.IDCliente] = nombre
	}

	w := tabwriter.NewWriter(d.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCLIENTE\tPUNTOS\tESTADO\tFECHA\tPRODUCTOS")
	for _, canje := range canjes {
		productos := ""
		for i, detalle := range canje.Detalles {
			if i > 0 {
				productos += ", "
			}
			productos += fmt.Sprintf("%s x%d", detalle.Producto.Nombre, detalle.Cantidad)
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\n",
			canje.IDCanje, nombres[canje.IDCliente], canje.PuntosUtilizados, canje.Estado, canje.Fecha, productos)
	}
	return w.Flush()
}

func newCanjesSetEstadoCmd() *cobra.Command {
	var estado string

	cmd := &cobra.Command{
		Use:   "set-estado <id>",
		Short: "Change a redemption's status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			return runCanjesSetEstado(d, args[0], estado)
		},
	}

	cmd.Flags().StringVar(&estado, "estado", "", "New status (prompted from the backend's values if omitted)")

	return cmd
}

func runCanjesSetEstado(d *deps, arg, estado string) error {
	if _, err := d.requireSession(); err != nil {
		return err
	}

	idCanje, err := parseID(arg, "redemption")
	if err != nil {
		return err
	}

	ctx := context.Background()
	estados, err := d.api.EstadosCanje(ctx)
	if err != nil {
		return err
	}
	estado, err = chooseEstado(estado, estados)
	if err != nil {
		return err
	}

	if err := d.api.UpdateCanjeEstado(ctx, idCanje, estado); err != nil {
		return err
	}

	fmt.Fprintf(d.out, "✓ Redemption %d is now %q\n", idCanje, estado)
	return nil
}
