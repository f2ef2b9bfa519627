package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
)

// List prints the user's inventory, soonest expiry first.
func (a *App) List(ctx context.Context) error {
	items, err := a.inventory.List(ctx)
	if err != nil {
		fmt.Println("Could not load your items:", err)
		return err
	}
	if len(items) == 0 {
		fmt.Println("Your fridge is empty.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEXPIRES\tCATEGORY")
	for _, it := range items {
		category := ""
		if it.Category != nil {
			category = it.Category.CategoryMajorName + "/" + it.Category.CategorySubName
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", it.ItemID, it.ItemName, it.ExpiryDate, category)
	}
	return w.Flush()
}

// Delete removes the given items after an explicit confirmation. Ids come
// from the command arguments, or from a prompt when none were given.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		line, err := getSimpleText(a.reader, "Item ids to delete (space separated)", os.Stdout)
		if err != nil {
			return err
		}
		args = strings.Fields(line)
	}

	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			fmt.Printf("Not an item id: %q\n", arg)
			return nil
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		fmt.Println("Nothing to delete.")
		return nil
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete %d item(s)? (y/N)", len(ids)), os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := a.inventory.DeleteItems(ctx, ids); err != nil {
		fmt.Println("Some items could not be deleted:", err)
		return err
	}
	fmt.Println("Deleted.")
	return nil
}
