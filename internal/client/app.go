package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-empanadas/internal/adapter"
	"github.com/MKhiriev/go-empanadas/internal/config"
	"github.com/MKhiriev/go-empanadas/internal/logger"
	"github.com/MKhiriev/go-empanadas/models"
)

// Usage lists the supported commands.
const Usage = `usage: client [-s address] [-u username -p password | -t token] <command>

commands:
  token                                   print a new access token
  list [-id ID] [-name NAME]              list empanadas
  create NAME QUANTITY                    create an empanada
  update [-name NAME] [-quantity N] ID    update an empanada
  delete ID                               delete an empanada
  version                                 print the server version
  build-info                              print the client build info`

type App struct {
	adapter adapter.ServerAdapter
	auth    config.ClientAuth

	out io.Writer

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, auth config.ClientAuth, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter: serverAdapter,
		auth:    auth,
		out:     out,
		logger:  logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	command, args := args[0], args[1:]
	a.logger.Debug().Str("command", command).Strs("args", args).Msg("running command")

	switch command {
	case "token":
		return a.token(ctx)
	case "list":
		return a.list(ctx, args)
	case "create":
		return a.create(ctx, args)
	case "update":
		return a.update(ctx, args)
	case "delete":
		return a.delete(ctx, args)
	case "version":
		return a.version(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) token(ctx context.Context) error {
	if a.auth.Username == "" {
		return ErrNoCredentials
	}

	token, err := a.login(ctx)
	if err != nil {
		return err
	}

	return a.print(models.TokenResponse{AccessToken: token.String(), TokenType: models.TokenTypeBearer})
}

func (a *App) list(ctx context.Context, args []string) error {
	var (
		filter models.EmpanadaFilter
		id     int64
		name   string
	)

	fs := newFlagSet("list")
	fs.Int64Var(&id, "id", 0, "filter by id")
	fs.StringVar(&name, "name", "", "filter by name")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "id":
			filter.ID = models.Some(id)
		case "name":
			filter.Name = models.Some(name)
		}
	})

	empanadas, err := a.adapter.List(ctx, filter)
	if err != nil {
		return err
	}

	return a.print(empanadas)
}

func (a *App) create(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: create NAME QUANTITY", ErrUsage)
	}

	quantity, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: quantity must be an integer", ErrUsage)
	}

	if err = a.authorize(ctx); err != nil {
		return err
	}

	created, err := a.adapter.Create(ctx, args[0], quantity)
	if err != nil {
		return err
	}

	return a.print(created)
}

func (a *App) update(ctx context.Context, args []string) error {
	var (
		update   models.UpdateEmpanada
		name     string
		quantity int64
	)

	fs := newFlagSet("update")
	fs.StringVar(&name, "name", "", "new name")
	fs.Int64Var(&quantity, "quantity", 0, "new quantity")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			update.Name = models.Some(name)
		case "quantity":
			update.Quantity = models.Some(quantity)
		}
	})

	id, err := parseID(fs.Args())
	if err != nil {
		return err
	}

	if err = a.authorize(ctx); err != nil {
		return err
	}

	updated, err := a.adapter.Update(ctx, id, update)
	if err != nil {
		return err
	}

	return a.print(updated)
}

func (a *App) delete(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	if err = a.authorize(ctx); err != nil {
		return err
	}

	return a.adapter.Delete(ctx, id)
}

func (a *App) version(ctx context.Context) error {
	version, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, version)
	return err
}

// authorize prefers a configured token and falls back to logging in.
func (a *App) authorize(ctx context.Context) error {
	if a.auth.Token != "" {
		a.adapter.SetToken(a.auth.Token)
		return nil
	}
	if a.auth.Username == "" {
		return ErrNoCredentials
	}

	_, err := a.login(ctx)
	return err
}

func (a *App) login(ctx context.Context) (models.Token, error) {
	token, err := a.adapter.Login(ctx, models.Credentials{
		Username: a.auth.Username,
		Password: a.auth.Password,
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("login: %w", err)
	}
	return token, nil
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: exactly one ID expected", ErrUsage)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: ID must be an integer", ErrUsage)
	}
	return id, nil
}
