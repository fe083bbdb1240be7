package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/internal/service"
)

const prompt = "mdmfd> "

// App is the line-based interactive client shell. It reads one command per
// line, dispatches it to the client service layer, and prints the result.
type App struct {
	services *service.ClientServices
	logger   *logger.Logger

	in  *bufio.Scanner
	out io.Writer

	// userID of the logged-in user, 0 while signed out. Used to key the
	// local cache; authorization itself rides on the adapter's bearer token.
	userID int64
}

// NewApp constructs the client shell reading commands from in and writing
// results to out.
func NewApp(services *service.ClientServices, in io.Reader, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errNoServicesProvided
	}

	return &App{
		services: services,
		logger:   logger,
		in:       bufio.NewScanner(in),
		out:      out,
	}, nil
}

// Run implements [Client]. It blocks reading commands until "quit", EOF, or
// an input error.
func (a *App) Run() error {
	ctx := context.Background()

	fmt.Fprintln(a.out, "mdmfd client. Type 'help' for commands.")

	for {
		fmt.Fprint(a.out, prompt)
		if !a.in.Scan() {
			fmt.Fprintln(a.out)
			return a.in.Err()
		}

		line := strings.TrimSpace(a.in.Text())
		if line == "" {
			continue
		}

		name, args := splitCommand(line)
		if name == "quit" || name == "exit" {
			a.services.AuthService.Logout()
			return nil
		}

		if err := a.dispatch(ctx, name, args); err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
	}
}

func (a *App) dispatch(ctx context.Context, name string, args []string) error {
	switch name {
	case "help":
		a.printHelp()
		return nil
	case "register":
		return a.cmdRegister(ctx, args)
	case "login":
		return a.cmdLogin(ctx, args)
	case "logout":
		return a.cmdLogout()
	case "setup-encryption":
		return a.cmdSetupEncryption(ctx, args)
	case "change-password":
		return a.cmdChangePassword(ctx, args)
	case "check-recovery":
		return a.cmdCheckRecovery(ctx, args)
	case "reset-password":
		return a.cmdResetPassword(ctx, args)
	case "recovery-key":
		return a.cmdRecoveryKey(ctx)
	case "desks":
		return a.cmdDesks(ctx)
	case "desk-create":
		return a.cmdDeskCreate(ctx, args)
	case "desk-rename":
		return a.cmdDeskRename(ctx, args)
	case "desk-delete":
		return a.cmdDeskDelete(ctx, args)
	case "items":
		return a.cmdItems(ctx, args)
	case "item-add":
		return a.cmdItemAdd(ctx, args)
	case "item-show":
		return a.cmdItemShow(ctx, args)
	case "item-edit":
		return a.cmdItemEdit(ctx, args)
	case "item-delete":
		return a.cmdItemDelete(ctx, args)
	case "reorder":
		return a.cmdReorder(ctx, args)
	case "move":
		return a.cmdMove(ctx, args)
	case "version":
		return a.cmdVersion(ctx)
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, name)
	}
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `Account:
  register <username> <email> <password> [full name]
  login <email> <password>
  logout
  setup-encryption <password>
  change-password <current> <new>
  check-recovery <email>
  reset-password <email> <recovery-code> <new-password>
  recovery-key                  show (and copy) the pending recovery code

Desks:
  desks
  desk-create <slug> <name...>
  desk-rename <desk-id> <slug> <name...>
  desk-delete <desk-id>

Items:
  items <desk-id>
  item-add <desk-id> <title> [url]
  item-show <item-id>
  item-edit <item-id> title|content|url <value...>
  item-delete <item-id>
  reorder <desk-id> <item-id...>
  move <item-id> <desk-id> <position>

Other:
  version
  quit
`)
}

// splitCommand separates the command word from its arguments.
func splitCommand(line string) (string, []string) {
	fields := strings.Fields(line)
	return strings.ToLower(fields[0]), fields[1:]
}
