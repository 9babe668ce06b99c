package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/danghq/shopdesk/app/models"
	"github.com/danghq/shopdesk/app/services"
	"github.com/danghq/shopdesk/pkg/collection"
	"github.com/danghq/shopdesk/pkg/listing"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage catalog categories",
}

func categoryTable() listing.Table[models.Category] {
	return listing.Table[models.Category]{
		SearchText: func(c models.Category) string { return c.Name },
		Columns: map[string]listing.Comparator[models.Category]{
			"name":   listing.String(func(c models.Category) string { return c.Name }),
			"slug":   listing.NullableString(func(c models.Category) *string { return c.Slug }),
			"order":  listing.Number(func(c models.Category) int { return c.Order }),
			"active": listing.Bool(func(c models.Category) bool { return c.Active }),
		},
	}
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with product counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		search, _ := flags.GetString("search")
		sortBy, _ := flags.GetString("sort")
		desc, _ := flags.GetBool("desc")
		page, _ := flags.GetInt("page")
		perPage, _ := flags.GetInt("per-page")

		ctx := cmd.Context()
		categories := services.NewCategoryService().List(ctx)
		products := services.NewProductService().List(ctx)
		counts := collection.CountBy(products, func(p models.Product) int { return p.CategoryID })

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

		result, q := derivePage(categories, categoryTable(), q)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSLUG\tORDER\tACTIVE\tPRODUCTS")
		for _, c := range result.Items {
			slug := "-"
			if c.Slug != nil {
				slug = *c.Slug
			}
			active := ""
			if c.Active {
				active = "yes"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%d\n",
				c.ID, c.Name, slug, c.Order, active, counts[c.ID])
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\n%d categor(ies), page %d of %d\n", result.Total, q.Page, result.TotalPages)
		return nil
	},
}

var categoriesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		c := services.NewCategoryService().Find(cmd.Context(), id)
		if c == nil {
			return fmt.Errorf("category %d not found", id)
		}
		fmt.Printf("#%d %s\n", c.ID, c.Name)
		if c.Slug != nil {
			fmt.Printf("  slug:   %s\n", *c.Slug)
		}
		fmt.Printf("  order:  %d\n", c.Order)
		fmt.Printf("  active: %v\n", c.Active)
		return nil
	},
}

var categoriesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a category",
	RunE: func(cmd *cobra.Command, args []string) error {
		created, errs := services.NewCategoryService().Create(cmd.Context(), categoryInputFromFlags(cmd))
		return reportSubmit("create category", created, errs)
	},
}

var categoriesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		updated, errs := services.NewCategoryService().Update(cmd.Context(), id, categoryInputFromFlags(cmd))
		return reportSubmit("update category", updated, errs)
	},
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if !services.NewCategoryService().Delete(cmd.Context(), id) {
			return fmt.Errorf("delete category %d failed", id)
		}
		fmt.Printf("Deleted category %d.\n", id)
		return nil
	},
}

func categoryInputFromFlags(cmd *cobra.Command) services.CategoryInput {
	flags := cmd.Flags()
	name, _ := flags.GetString("name")
	slug, _ := flags.GetString("slug")
	order, _ := flags.GetInt("order")
	active, _ := flags.GetBool("active")

	in := services.CategoryInput{
		Name:   name,
		Order:  order,
		Active: active,
	}
	if slug != "" {
		in.Slug = &slug
	}
	return in
}

func init() {
	categoriesListCmd.Flags().String("search", "", "search by name")
	categoriesListCmd.Flags().String("sort", "", "sort column: name|slug|order|active")
	categoriesListCmd.Flags().Bool("desc", false, "sort descending")
	categoriesListCmd.Flags().Int("page", 1, "page number (1-based)")
	categoriesListCmd.Flags().Int("per-page", listing.DefaultPerPage, "rows per page")

	for _, c := range []*cobra.Command{categoriesCreateCmd, categoriesUpdateCmd} {
		c.Flags().String("name", "", "category name")
		c.Flags().String("slug", "", "URL slug (optional)")
		c.Flags().Int("order", 0, "display order")
		c.Flags().Bool("active", true, "visible on the storefront")
	}

	categoriesCmd.AddCommand(categoriesListCmd)
	categoriesCmd.AddCommand(categoriesGetCmd)
	categoriesCmd.AddCommand(categoriesCreateCmd)
	categoriesCmd.AddCommand(categoriesUpdateCmd)
	categoriesCmd.AddCommand(categoriesDeleteCmd)
}
