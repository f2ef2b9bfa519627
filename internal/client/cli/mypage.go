package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/minseo-k/fridgekeeper/internal/client/models"
)

// MyPage shows the current profile.
func (a *App) MyPage(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	notifications := "off"
	if u.NotificationsEnabled {
		notifications = "on"
	}
	fmt.Printf("Login id:      %s\n", u.LoginID)
	fmt.Printf("Nickname:      %s\n", u.Username)
	fmt.Printf("Notifications: %s\n", notifications)
	return nil
}

// ChangeNickname prompts for a new display name and saves it.
func (a *App) ChangeNickname(ctx context.Context) error {
	nickname, err := getSimpleText(a.reader, "New nickname", os.Stdout)
	if err != nil {
		return err
	}
	if nickname == "" {
		fmt.Println("Please enter a nickname.")
		return nil
	}

	if err := a.session.UpdateUser(ctx, models.UserPatch{Username: &nickname}); err != nil {
		printOpError(err)
		return err
	}
	fmt.Println("Nickname changed.")
	return nil
}

// ToggleNotifications flips the notification preference.
func (a *App) ToggleNotifications(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	enabled := !u.NotificationsEnabled
	if err := a.session.UpdateUser(ctx, models.UserPatch{NotificationsEnabled: &enabled}); err != nil {
		printOpError(err)
		return err
	}
	if enabled {
		fmt.Println("Notifications on.")
	} else {
		fmt.Println("Notifications off.")
	}
	return nil
}

// DeleteAccount asks for confirmation and the current password, then
// removes the account. A successful deletion ends the session.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "This permanently deletes your account and items. Continue? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		fmt.Println("Cancelled.")
		return nil
	}

	password, err := getPassword("Current password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if len(password) == 0 {
		fmt.Println("Please enter your password.")
		return nil
	}

	if err := a.session.DeleteAccount(ctx, string(password)); err != nil {
		printOpError(err)
		return err
	}
	fmt.Println("Your account has been deleted.")
	return nil
}
