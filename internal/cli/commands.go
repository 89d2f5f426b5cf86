package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"cat-registry/internal/domain/cats"
)

// Columnas de la vista de tabla, en el orden de siempre.
var columns = []string{"Id", "Name", "Age", "Gender", "Color", "Mother", "Father", "Breed", "Notes", "Vaccinated"}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every cat as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.reg.List(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, strings.Join(columns, "\t"))
			for _, c := range items {
				fmt.Fprintln(tw, strings.Join(row(c), "\t"))
			}
			return tw.Flush()
		},
	}
}

func newAddCommand(a *app) *cobra.Command {
	var f cats.Form
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a cat with a generated id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.reg.Add(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "added %s (%s)\n", c.ID, c.Name)
			return nil
		},
	}
	bindForm(cmd.Flags(), &f)
	return cmd
}

func newEditCommand(a *app) *cobra.Command {
	var f cats.Form
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a cat; flags not given keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.reg.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			// Igual que el formulario: se parte de los valores actuales.
			merged := cats.FormFrom(current)
			overlay(cmd.Flags(), &merged, f)

			c, err := a.reg.Edit(cmd.Context(), current.ID, merged)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "edited %s (%s)\n", c.ID, c.Name)
			return nil
		},
	}
	bindForm(cmd.Flags(), &f)
	return cmd
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete every cat with that id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.reg.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "deleted %s (%d)\n", args[0], n)
			return nil
		},
	}
}

func newChangeIDCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "change-id <id> <new-id>",
		Short: "Set a manual id (10 chars, C/A/T/0-9)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.reg.ChangeID(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s -> %s\n", args[0], c.ID)
			return nil
		},
	}
}

func newRegenerateIDCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "regenerate-id <id>",
		Short: "Give a cat a new random id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.reg.RegenerateID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s -> %s\n", args[0], c.ID)
			return nil
		},
	}
}

func bindForm(fs *pflag.FlagSet, f *cats.Form) {
	fs.StringVar(&f.Name, "name", "", "name")
	fs.StringVar(&f.Age, "age", "", "age")
	fs.StringVar(&f.Gender, "gender", "", "Male|Female (default Male)")
	fs.StringVar(&f.Color, "color", "", "color")
	fs.StringVar(&f.Mother, "mother", "", "mother")
	fs.StringVar(&f.Father, "father", "", "father")
	fs.StringVar(&f.Breed, "breed", "", "breed")
	fs.StringVar(&f.Notes, "notes", "", "notes")
	fs.StringVar(&f.Vaccinated, "vaccinated", "", "Yes|No (default No)")
}

// overlay copia a dst solo los flags que el usuario pasó.
func overlay(fs *pflag.FlagSet, dst *cats.Form, src cats.Form) {
	set := map[string]func(){
		"name":       func() { dst.Name = src.Name },
		"age":        func() { dst.Age = src.Age },
		"gender":     func() { dst.Gender = src.Gender },
		"color":      func() { dst.Color = src.Color },
		"mother":     func() { dst.Mother = src.Mother },
		"father":     func() { dst.Father = src.Father },
		"breed":      func() { dst.Breed = src.Breed },
		"notes":      func() { dst.Notes = src.Notes },
		"vaccinated": func() { dst.Vaccinated = src.Vaccinated },
	}
	for name, apply := range set {
		if fs.Changed(name) {
			apply()
		}
	}
}

func row(c cats.Cat) []string {
	return []string{
		c.ID,
		c.Name,
		c.Age,
		string(c.Gender),
		c.Color,
		c.Mother,
		c.Father,
		c.Breed,
		c.Notes,
		string(c.Vaccinated),
	}
}
