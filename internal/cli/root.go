// Package cli implementa catctl: los comandos del menú (Add, Edit, Delete,
// Change ID, Regenerate ID) sobre el archivo local o contra la API.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"cat-registry/internal/adapters/storage/jsonfile"
	"cat-registry/internal/client"
	"cat-registry/internal/domain/activity"
	"cat-registry/internal/domain/cats"
	"cat-registry/internal/platform/logger"
)

// Registry es lo que necesitan los comandos; lo cumplen cats.Service (archivo
// local) y client.Client (--server).
type Registry interface {
	List(ctx context.Context) ([]cats.Cat, error)
	Get(ctx context.Context, id string) (cats.Cat, error)
	Add(ctx context.Context, f cats.Form) (cats.Cat, error)
	Edit(ctx context.Context, id string, f cats.Form) (cats.Cat, error)
	Delete(ctx context.Context, id string) (int, error)
	ChangeID(ctx context.Context, id, newID string) (cats.Cat, error)
	RegenerateID(ctx context.Context, id string) (cats.Cat, error)
}

var (
	_ Registry = (*cats.Service)(nil)
	_ Registry = (*client.Client)(nil)
)

type app struct {
	file    string
	server  string
	timeout time.Duration
	verbose bool

	out io.Writer
	reg Registry
}

// NewRootCommand arma el árbol de comandos. out recibe la salida normal;
// los logs van a stderr.
func NewRootCommand(out io.Writer, errOut io.Writer) *cobra.Command {
	a := &app{out: out}

	cmd := &cobra.Command{
		Use:           "catctl",
		Short:         "Cat population registry",
		Long:          `catctl lists and edits the cat registry stored in a JSON file, directly or through a running API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// help y completion no tocan el archivo
			if skipsRegistry(cmd) {
				return nil
			}
			return a.open(errOut)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVarP(&a.file, "file", "f", jsonfile.DefaultPath, "data file")
	cmd.PersistentFlags().StringVar(&a.server, "server", "", "API base URL (e.g. http://localhost:8080); overrides --file")
	cmd.PersistentFlags().DurationVar(&a.timeout, "timeout", 10*time.Second, "API request timeout")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logs")

	cmd.AddCommand(
		newListCommand(a),
		newAddCommand(a),
		newEditCommand(a),
		newDeleteCommand(a),
		newChangeIDCommand(a),
		newRegenerateIDCommand(a),
	)
	return cmd
}

func skipsRegistry(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "help" || c.Name() == "completion" {
			return true
		}
	}
	return false
}

// Execute corre catctl y devuelve el código de salida.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	cmd := NewRootCommand(out, errOut)
	cmd.SetArgs(args)

	ctx = activity.WithSource(ctx, activity.SourceCLI)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(errOut, describe(err))
		return 1
	}
	return 0
}

func (a *app) open(errOut io.Writer) error {
	if a.reg != nil {
		return nil
	}

	if a.server != "" {
		c, err := client.New(a.server, a.timeout)
		if err != nil {
			return err
		}
		a.reg = c
		return nil
	}

	lvl := logger.Warn
	if a.verbose {
		lvl = logger.Debug
	}
	log := logger.New(logger.Options{Level: lvl, Format: logger.FormatText, App: "catctl", Out: errOut})

	store, err := jsonfile.Open(a.file)
	if err != nil {
		return err
	}
	// sin recorder: en modo archivo la actividad sólo queda en el log
	a.reg = cats.NewService(store, nil, log)
	return nil
}

// describe arma el mensaje que ve el usuario, como los diálogos de aviso.
func describe(err error) string {
	switch {
	case errors.Is(err, cats.ErrNoSelection):
		return "No Selection: Please select a cat first!"
	case errors.Is(err, cats.ErrInvalidID):
		return "Invalid ID: ID must be 10 characters long, using only C/A/T and digits."
	case errors.Is(err, cats.ErrNotFound):
		return "Error: Selected cat not found!"
	default:
		return "Error: " + err.Error()
	}
}
