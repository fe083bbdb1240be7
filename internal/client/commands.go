package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/webuxmotion/mdmfd-com/models"
)

func (a *App) cmdRegister(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: register <username> <email> <password> [full name]", errUsage)
	}

	req := models.RegisterRequest{
		Username: args[0],
		Email:    args[1],
		Password: args[2],
		FullName: strings.Join(args[3:], " "),
	}

	user, err := a.services.AuthService.Register(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "registered %s <%s>\n", user.Username, user.Email)
	fmt.Fprintln(a.out, "run 'login' to sign in")
	return nil
}

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: login <email> <password>", errUsage)
	}

	userID, err := a.services.AuthService.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	a.userID = userID

	if a.services.AuthService.IsUnlocked() {
		fmt.Fprintln(a.out, "logged in; encryption unlocked")
	} else {
		fmt.Fprintln(a.out, "logged in; encryption not set up — run 'setup-encryption'")
	}

	// First login after provisioning stages a one-time recovery code reveal.
	a.revealPendingRecoveryKey(ctx)

	return nil
}

func (a *App) cmdLogout() error {
	a.services.AuthService.Logout()
	a.userID = 0
	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *App) cmdSetupEncryption(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: setup-encryption <password>", errUsage)
	}

	resp, err := a.services.AuthService.SetupEncryption(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "encryption is set up and unlocked")
	a.showRecoveryKey(resp.RecoveryKey)
	return nil
}

func (a *App) cmdChangePassword(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: change-password <current> <new>", errUsage)
	}

	if err := a.services.AuthService.ChangePassword(ctx, args[0], args[1]); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "password changed; envelope re-wrapped")
	return nil
}

func (a *App) cmdCheckRecovery(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: check-recovery <email>", errUsage)
	}

	has, err := a.services.AuthService.CheckRecovery(ctx, args[0])
	if err != nil {
		return err
	}

	if has {
		fmt.Fprintln(a.out, "account has a recovery key; 'reset-password' is available")
	} else {
		fmt.Fprintln(a.out, "no recovery key on file for this account")
	}
	return nil
}

func (a *App) cmdResetPassword(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: reset-password <email> <recovery-code> <new-password>", errUsage)
	}

	if err := a.services.AuthService.ResetPassword(ctx, args[0], args[1], args[2]); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "password reset; log in with the new password")
	return nil
}

func (a *App) cmdRecoveryKey(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	code, found, err := a.services.AuthService.FetchPendingRecoveryKey(ctx)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(a.out, "no recovery key is pending reveal")
		return nil
	}

	a.showRecoveryKey(code)

	fmt.Fprint(a.out, "stored safely? acknowledge to discard the server copy [y/N]: ")
	if a.in.Scan() && strings.EqualFold(strings.TrimSpace(a.in.Text()), "y") {
		if err := a.services.AuthService.AcknowledgeRecoveryKey(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "acknowledged")
	}
	return nil
}

// showRecoveryKey prints the one-time code and tries to put it on the
// clipboard. Clipboard access fails on headless machines; the printed copy
// is the fallback.
func (a *App) showRecoveryKey(code string) {
	fmt.Fprintf(a.out, "\nrecovery key (shown once, store it safely):\n\n  %s\n\n", code)

	if err := clipboard.WriteAll(code); err != nil {
		a.logger.Debug().Err(err).Msg("clipboard unavailable")
		return
	}
	fmt.Fprintln(a.out, "copied to clipboard")
}

// revealPendingRecoveryKey is the login-time variant of cmdRecoveryKey: it
// is quiet when nothing is pending and never fails the login.
func (a *App) revealPendingRecoveryKey(ctx context.Context) {
	code, found, err := a.services.AuthService.FetchPendingRecoveryKey(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("could not check for a pending recovery key")
		return
	}
	if !found {
		return
	}

	a.showRecoveryKey(code)
	fmt.Fprintln(a.out, "run 'recovery-key' again to acknowledge once stored")
}

func (a *App) cmdDesks(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	desks, err := a.services.DeskService.GetDesks(ctx, a.userID)
	if err != nil {
		return err
	}

	if len(desks) == 0 {
		fmt.Fprintln(a.out, "no desks yet; 'desk-create <slug> <name>' makes one")
		return nil
	}

	for _, desk := range desks {
		fmt.Fprintf(a.out, "%-38s %-20s %s\n", desk.DeskID, desk.Slug, desk.Name)
	}
	return nil
}

func (a *App) cmdDeskCreate(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: desk-create <slug> <name...>", errUsage)
	}

	desk, err := a.services.DeskService.CreateDesk(ctx, a.userID, strings.Join(args[1:], " "), args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "created desk %s (%s)\n", desk.DeskID, desk.Slug)
	return nil
}

func (a *App) cmdDeskRename(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) < 3 {
		return fmt.Errorf("%w: desk-rename <desk-id> <slug> <name...>", errUsage)
	}

	desk, err := a.services.DeskService.UpdateDesk(ctx, a.userID, args[0], strings.Join(args[2:], " "), args[1])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "updated desk %s (%s)\n", desk.DeskID, desk.Slug)
	return nil
}

func (a *App) cmdDeskDelete(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: desk-delete <desk-id>", errUsage)
	}

	if err := a.services.DeskService.DeleteDesk(ctx, args[0], a.userID); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "desk deleted")
	return nil
}

func (a *App) cmdItems(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: items <desk-id>", errUsage)
	}

	items, err := a.services.ItemService.GetDeskItems(ctx, args[0], a.userID)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "desk is empty; 'item-add' puts something on it")
		return nil
	}

	for _, item := range items {
		marker := " "
		if item.URL != "" {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%-38s %s %s\n", item.ItemID, marker, item.Title)
	}
	return nil
}

func (a *App) cmdItemAdd(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: item-add <desk-id> <title> [url]", errUsage)
	}

	url := ""
	if len(args) > 2 {
		url = args[2]
	}

	item, err := a.services.ItemService.CreateItem(ctx, a.userID, args[0], args[1], "", url)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "created item %s\n", item.ItemID)
	return nil
}

func (a *App) cmdItemShow(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: item-show <item-id>", errUsage)
	}

	item, err := a.services.ItemService.GetItem(ctx, args[0], a.userID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "title:    %s\n", item.Title)
	if item.URL != "" {
		fmt.Fprintf(a.out, "url:      %s\n", item.URL)
	}
	fmt.Fprintf(a.out, "desk:     %s\n", item.DeskID)
	fmt.Fprintf(a.out, "position: %d\n", item.Position)
	if item.Content != "" {
		fmt.Fprintf(a.out, "\n%s\n", item.Content)
	}
	return nil
}

func (a *App) cmdItemEdit(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) < 3 {
		return fmt.Errorf("%w: item-edit <item-id> title|content|url <value...>", errUsage)
	}

	value := strings.Join(args[2:], " ")
	update := models.ItemUpdate{ItemID: args[0]}

	switch strings.ToLower(args[1]) {
	case "title":
		update.Title = &value
	case "content":
		update.Content = &value
	case "url":
		update.URL = &value
	default:
		return fmt.Errorf("%w: item-edit <item-id> title|content|url <value...>", errUsage)
	}

	item, err := a.services.ItemService.UpdateItem(ctx, a.userID, update)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "updated item %s\n", item.ItemID)
	return nil
}

func (a *App) cmdItemDelete(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: item-delete <item-id>", errUsage)
	}

	if err := a.services.ItemService.DeleteItem(ctx, args[0], a.userID); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "item deleted")
	return nil
}

func (a *App) cmdReorder(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: reorder <desk-id> <item-id...>", errUsage)
	}

	if err := a.services.ItemService.ReorderItems(ctx, a.userID, args[0], args[1:]); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "order saved")
	return nil
}

func (a *App) cmdMove(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: move <item-id> <desk-id> <position>", errUsage)
	}

	position, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("%w: move <item-id> <desk-id> <position>", errUsage)
	}

	item, err := a.services.ItemService.MoveItem(ctx, a.userID, args[0], args[1], position)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "moved item %s to desk %s\n", item.ItemID, item.DeskID)
	return nil
}

func (a *App) cmdVersion(ctx context.Context) error {
	version, err := a.services.AppInfoService.GetServerVersion(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "server version: %s\n", version)
	return nil
}

func (a *App) requireLogin() error {
	if a.userID == 0 {
		return errNotLoggedIn
	}
	return nil
}
