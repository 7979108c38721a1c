package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewClientesCmd creates the clientes command group.
func NewClientesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clientes",
		Short: "Browse the platform's registered clients",
	}

	cmd.AddCommand(newClientesLsCmd())
	cmd.AddCommand(newClientesShowCmd())

	return cmd
}

func newClientesLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			return runClientesLs(d)
		},
	}
}

func runClientesLs(d *deps) error {
	if _, err := d.requireSession(); err != nil {
		return err
	}

	clientes, err := d.api.Clientes(context.Background())
	if err != nil {
		return err
	}

	if len(clientes) == 0 {
		fmt.Fprintln(d.out, "No clients found.")
		return nil
	}

	w := tabwriter.NewWriter(d.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE")
	for _, c := range clientes {
		fmt.Fprintf(w, "%d\t%s\n", c.IDCliente, c.Nombre)
	}
	return w.Flush()
}

func newClientesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			return runClientesShow(d, args[0])
		},
	}
}

func runClientesShow(d *deps, arg string) error {
	if _, err := d.requireSession(); err != nil {
		return err
	}

	idCliente, err := parseID(arg, "client")
	if err != nil {
		return err
	}

	cliente, err := d.api.ClienteByID(context.Background(), idCliente)
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "ID:     %d\n", cliente.IDCliente)
	fmt.Fprintf(d.out, "Nombre: %s\n", cliente.Nombre)
	return nil
}
