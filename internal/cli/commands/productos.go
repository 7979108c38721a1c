package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papilon-app/papilon-cli/internal/cli/client"
)

// NewProductosCmd creates the productos command group.
func NewProductosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "productos",
		Short: "Manage the product catalog of your local",
	}

	cmd.AddCommand(newProductosLsCmd())
	cmd.AddCommand(newProductosCreateCmd())
	cmd.AddCommand(newProductosUpdateCmd())
	cmd.AddCommand(newProductosDeleteCmd())

	return cmd
}

func newProductosLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List your products",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			return runProductosLs(d)
		},
	}
}

func runProductosLs(d *deps) error {
	sess, err := d.requireSession()
	if err != nil {
		return err
	}

	productos, err := d.api.ProductosByUsuario(context.Background(), sess.UserID)
	if err != nil {
		return err
	}

	if len(productos) == 0 {
		fmt.Fprintln(d.out, "No products found.")
		return nil
	}

	w := tabwriter.NewWriter(d.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tPRECIO\tPUNTOS\tDISPONIBLE")
	for _, p := range productos {
		puntos := "-"
		if p.PuntosNecesario != nil {
			puntos = fmt.Sprintf("%d", *p.PuntosNecesario)
		}
		disponible := "no"
		if p.Disponibilidad {
			disponible = "sí"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", p.IDProducto, p.Nombre, p.Precio, puntos, disponible)
	}
	return w.Flush()
}

// productoFlags registers the shared create/update flags and returns a builder
// that turns them into a payload for the resolved local.
func productoFlags(cmd *cobra.Command) func(idLocal int) client.ProductoPayload {
	var (
		nombre, precio, descripcion, fotoURL, descuento string
		categoria, puntos                               int
		noDisponible                                    bool
	)

	cmd.Flags().StringVar(&nombre, "nombre", "", "Product name (required)")
	cmd.Flags().StringVar(&precio, "precio", "", "Price as a decimal string, e.g. 100.50 (required)")
	cmd.Flags().StringVar(&descripcion, "descripcion", "", "Description")
	cmd.Flags().IntVar(&categoria, "categoria", 0, "Category id")
	cmd.Flags().IntVar(&puntos, "puntos", 0, "Points needed to redeem")
	cmd.Flags().StringVar(&fotoURL, "foto-url", "", "Photo URL")
	cmd.Flags().StringVar(&descuento, "descuento", "", "Discount as a decimal string")
	cmd.Flags().BoolVar(&noDisponible, "no-disponible", false, "Mark the product as unavailable")

	return func(idLocal int) client.ProductoPayload {
		payload := client.ProductoPayload{
			IDLocal:        idLocal,
			Nombre:         nombre,
			Precio:         precio,
			Disponibilidad: !noDisponible,
		}
		if cmd.Flags().Changed("descripcion") {
			payload.Descripcion = &descripcion
		}
		if cmd.Flags().Changed("categoria") {
			payload.IDCategoria = &categoria
		}
		if cmd.Flags().Changed("puntos") {
			payload.PuntosNecesario = &puntos
		}
		if cmd.Flags().Changed("foto-url") {
			payload.FotoURL = &fotoURL
		}
		if cmd.Flags().Changed("descuento") {
			payload.Descuento = &descuento
		}
		return payload
	}
}

func newProductosCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
	}
	buildPayload := productoFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}
		return runProductosCreate(d, buildPayload)
	}
	return cmd
}

func runProductosCreate(d *deps, buildPayload func(idLocal int) client.ProductoPayload) error {
	sess, err := d.requireSession()
	if err != nil {
		return err
	}

	ctx := context.Background()
	idLocal, err := d.api.LocalByUsuario(ctx, sess.UserID)
	if err != nil {
		return err
	}

	producto, err := d.api.CreateProducto(ctx, buildPayload(idLocal))
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "✓ Product created (id %d)\n", producto.IDProducto)
	return nil
}

func newProductosUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
	}
	buildPayload := productoFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		sess, err := d.requireSession()
		if err != nil {
			return err
		}

		idProducto, err := parseID(args[0], "product")
		if err != nil {
			return err
		}

		ctx := context.Background()
		idLocal, err := d.api.LocalByUsuario(ctx, sess.UserID)
		if err != nil {
			return err
		}

		if _, err := d.api.UpdateProducto(ctx, idProducto, buildPayload(idLocal)); err != nil {
			return err
		}

		fmt.Fprintf(d.out, "✓ Product %d updated\n", idProducto)
		return nil
	}
	return cmd
}

func newProductosDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a product",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}

			if _, err := d.requireSession(); err != nil {
				return err
			}

			idProducto, err := parseID(args[0], "product")
			if err != nil {
				return err
			}

			if !yes {
				fmt.Fprintf(d.out, "Delete product %d? Re-run with --yes to confirm.\n", idProducto)
				return nil
			}

			if err := d.api.DeleteProducto(context.Background(), idProducto); err != nil {
				return err
			}

			fmt.Fprintf(d.out, "✓ Product %d deleted\n", idProducto)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
