package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) status() string {
	if u := a.session.CurrentUser(); u != nil {
		return fmt.Sprintf("(%s)", u.LoginID)
	}
	return ""
}

func (a *App) root(ctx context.Context) {
	fmt.Println("Welcome to fridgekeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("fridge %s> ", a.status())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.session.IsAuthenticated() {
				fmt.Println("Available commands: list, delete, mypage, nickname, notify, deleteaccount, logout, exit")
			} else {
				fmt.Println("Available commands: login, signup, exit")
			}
		case "login":
			_ = a.Login(ctx)
		case "signup":
			_ = a.Signup(ctx)
		case "list":
			_ = a.List(ctx)
		case "delete":
			_ = a.Delete(ctx, args)
		case "mypage":
			_ = a.MyPage(ctx)
		case "nickname":
			_ = a.ChangeNickname(ctx)
		case "notify":
			_ = a.ToggleNotifications(ctx)
		case "deleteaccount":
			_ = a.DeleteAccount(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
