package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papilon-app/papilon-cli/internal/cli/client"
)

// NewCategoriasCmd creates the categorias command group.
func NewCategoriasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categorias",
		Short: "Manage the platform's product categories",
	}

	cmd.AddCommand(newCategoriasLsCmd())
	cmd.AddCommand(newCategoriasShowCmd())
	cmd.AddCommand(newCategoriasCreateCmd())
	cmd.AddCommand(newCategoriasUpdateCmd())
	cmd.AddCommand(newCategoriasDeleteCmd())

	return cmd
}

func newCategoriasLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			return runCategoriasLs(d)
		},
	}
}

func runCategoriasLs(d *deps) error {
	if _, err := d.requireSession(); err != nil {
		return err
	}

	categorias, err := d.api.Categorias(context.Background())
	if err != nil {
		return err
	}

	if len(categorias) == 0 {
		fmt.Fprintln(d.out, "No categories found.")
		return nil
	}

	w := tabwriter.NewWriter(d.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tDESCRIPCIÓN")
	for _, c := range categorias {
		descripcion := ""
		if c.Descripcion != nil {
			descripcion = *c.Descripcion
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", c.IDCategoria, c.Nombre, descripcion)
	}
	return w.Flush()
}

func newCategoriasShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			return runCategoriasShow(d, args[0])
		},
	}
}

func runCategoriasShow(d *deps, arg string) error {
	if _, err := d.requireSession(); err != nil {
		return err
	}

	idCategoria, err := parseID(arg, "category")
	if err != nil {
		return err
	}

	categoria, err := d.api.CategoriaByID(context.Background(), idCategoria)
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "ID:     %d\n", categoria.IDCategoria)
	fmt.Fprintf(d.out, "Nombre: %s\n", categoria.Nombre)
	if categoria.Descripcion != nil {
		fmt.Fprintf(d.out, "Descripción: %s\n", *categoria.Descripcion)
	}
	if categoria.URLImg != nil {
		fmt.Fprintf(d.out, "Imagen: %s\n", *categoria.URLImg)
	}
	return nil
}

// categoriaFlags registers the shared create/update flags and returns a
// builder that turns them into a payload.
func categoriaFlags(cmd *cobra.Command) func() client.CategoriaPayload {
	var nombre, descripcion, urlImg string

	cmd.Flags().StringVar(&nombre, "nombre", "", "Category name (required)")
	cmd.Flags().StringVar(&descripcion, "descripcion", "", "Description")
	cmd.Flags().StringVar(&urlImg, "url-img", "", "Image URL")

	return func() client.CategoriaPayload {
		payload := client.CategoriaPayload{Nombre: nombre}
		if cmd.Flags().Changed("descripcion") {
			payload.Descripcion = &descripcion
		}
		if cmd.Flags().Changed("url-img") {
			payload.URLImg = &urlImg
		}
		return payload
	}
}

func newCategoriasCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
	}
	buildPayload := categoriaFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}
		return runCategoriasCreate(d, buildPayload())
	}
	return cmd
}

func runCategoriasCreate(d *deps, payload client.CategoriaPayload) error {
	if _, err := d.requireSession(); err != nil {
		return err
	}

	categoria, err := d.api.CreateCategoria(context.Background(), payload)
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "✓ Category created (id %d)\n", categoria.IDCategoria)
	return nil
}

func newCategoriasUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category",
		Args:  cobra.ExactArgs(1),
	}
	buildPayload := categoriaFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}
		return runCategoriasUpdate(d, args[0], buildPayload())
	}
	return cmd
}

func runCategoriasUpdate(d *deps, arg string, payload client.CategoriaPayload) error {
	if _, err := d.requireSession(); err != nil {
		return err
	}

	idCategoria, err := parseID(arg, "category")
	if err != nil {
		return err
	}

	if _, err := d.api.UpdateCategoria(context.Background(), idCategoria, payload); err != nil {
		return err
	}

	fmt.Fprintf(d.out, "✓ Category %d updated\n", idCategoria)
	return nil
}

func newCategoriasDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a category",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			return runCategoriasDelete(d, args[0], yes)
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func runCategoriasDelete(d *deps, arg string, yes bool) error {
	if _, err := d.requireSession(); err != nil {
		return err
	}

	idCategoria, err := parseID(arg, "category")
	if err != nil {
		return err
	}

	if !yes {
		fmt.Fprintf(d.out, "Delete category %d? Re-run with --yes to confirm.\n", idCategoria)
		return nil
	}

	if err := d.api.DeleteCategoria(context.Background(), idCategoria); err != nil {
		return err
	}

	fmt.Fprintf(d.out, "✓ Category %d deleted\n", idCategoria)
	return nil
}
