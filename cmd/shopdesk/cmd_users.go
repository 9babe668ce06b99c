package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/danghq/shopdesk/app/models"
	"github.com/danghq/shopdesk/app/services"
	"github.com/danghq/shopdesk/pkg/listing"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage dashboard accounts",
}

func userTable() listing.Table[models.User] {
	return listing.Table[models.User]{
		SearchText: func(u models.User) string { return u.Name },
		Columns: map[string]listing.Comparator[models.User]{
			"name":   listing.String(func(u models.User) string { return u.Name }),
			"email":  listing.String(func(u models.User) string { return u.Email }),
			"role":   listing.Number(func(u models.User) int { return u.Role }),
			"locked": listing.Bool(func(u models.User) bool { return u.Locked }),
		},
	}
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		search, _ := flags.GetString("search")
		sortBy, _ := flags.GetString("sort")
		desc, _ := flags.GetBool("desc")
		page, _ := flags.GetInt("page")
		perPage, _ := flags.GetInt("per-page")

		users := services.NewUserService().List(cmd.Context())

		q := listing.Query{
			Search:   search,
			Category: listing.AllCategories,
			SortBy:   sortBy,
			Page:     page,
			PerPage:  perPage,
		}
		if desc {
			q.Dir = listing.Desc
		}

		result, q := derivePage(users, userTable(), q)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tROLE\tLOCKED")
		for _, u := range result.Items {
			role := "user"
			if u.IsAdmin() {
				role = "admin"
			}
			locked := ""
			if u.Locked {
				locked = "yes"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				u.ID, u.Name, u.Email, u.Phone, role, locked)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\n%d account(s), page %d of %d\n", result.Total, q.Page, result.TotalPages)
		return nil
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		u := services.NewUserService().Find(cmd.Context(), id)
		if u == nil {
			return fmt.Errorf("account %d not found", id)
		}
		role := "user"
		if u.IsAdmin() {
			role = "admin"
		}
		fmt.Printf("#%d %s\n", u.ID, u.Name)
		fmt.Printf("  email:  %s\n", u.Email)
		if u.Phone != "" {
			fmt.Printf("  phone:  %s\n", u.Phone)
		}
		if u.Address != "" {
			fmt.Printf("  address: %s\n", u.Address)
		}
		fmt.Printf("  role:   %s\n", role)
		fmt.Printf("  locked: %v\n", u.Locked)
		return nil
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		created, errs := services.NewUserService().Create(cmd.Context(), userInputFromFlags(cmd))
		return reportSubmit("create account", created, errs)
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		updated, errs := services.NewUserService().Update(cmd.Context(), id, userInputFromFlags(cmd))
		return reportSubmit("update account", updated, errs)
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if !services.NewUserService().Delete(cmd.Context(), id) {
			return fmt.Errorf("delete account %d failed", id)
		}
		fmt.Printf("Deleted account %d.\n", id)
		return nil
	},
}

func userInputFromFlags(cmd *cobra.Command) services.UserInput {
	flags := cmd.Flags()
	email, _ := flags.GetString("email")
	password, _ := flags.GetString("password")
	name, _ := flags.GetString("name")
	address, _ := flags.GetString("address")
	phone, _ := flags.GetString("phone")
	admin, _ := flags.GetBool("admin")
	locked, _ := flags.GetBool("locked")
	avatar, _ := flags.GetString("avatar")

	role := models.RoleStandard
	if admin {
		role = models.RoleAdmin
	}
	return services.UserInput{
		Email:    email,
		Password: password,
		Name:     name,
		Address:  address,
		Phone:    phone,
		Role:     role,
		Locked:   locked,
		Avatar:   avatar,
	}
}

func init() {
	usersListCmd.Flags().String("search", "", "search by name")
	usersListCmd.Flags().String("sort", "", "sort column: name|email|role|locked")
	usersListCmd.Flags().Bool("desc", false, "sort descending")
	usersListCmd.Flags().Int("page", 1, "page number (1-based)")
	usersListCmd.Flags().Int("per-page", listing.DefaultPerPage, "rows per page")

	for _, c := range []*cobra.Command{usersCreateCmd, usersUpdateCmd} {
		c.Flags().String("email", "", "email address")
		c.Flags().String("password", "", "password (required on create)")
		c.Flags().String("name", "", "full name")
		c.Flags().String("address", "", "postal address")
		c.Flags().String("phone", "", "phone number")
		c.Flags().Bool("admin", false, "grant the admin role")
		c.Flags().Bool("locked", false, "lock the account")
		c.Flags().String("avatar", "", "avatar URL")
	}

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersGetCmd)
	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersUpdateCmd)
	usersCmd.AddCommand(usersDeleteCmd)
}
