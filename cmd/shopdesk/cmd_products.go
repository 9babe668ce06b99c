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

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage catalog products",
}

// productTable wires the product columns into the listing pipeline.
// Sort keys mirror the table headers in the dashboard.
func productTable() listing.Table[models.Product] {
	return listing.Table[models.Product]{
		SearchText: func(p models.Product) string { return p.Name },
		CategoryID: func(p models.Product) int { return p.CategoryID },
		Columns: map[string]listing.Comparator[models.Product]{
			"name":   listing.String(func(p models.Product) string { return p.Name }),
			"price":  listing.Number(func(p models.Product) float64 { return p.Price }),
			"sale":   listing.Number(func(p models.Product) float64 { return p.SalePrice }),
			"views":  listing.Number(func(p models.Product) int { return p.Views }),
			"date":   listing.String(func(p models.Product) string { return p.Date }),
			"hot":    listing.Bool(func(p models.Product) bool { return p.Hot }),
			"status": listing.String(func(p models.Product) string { return string(p.Status) }),
		},
	}
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products with search, filter, sort and paging",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		search, _ := flags.GetString("search")
		categoryID, _ := flags.GetInt("category")
		sortBy, _ := flags.GetString("sort")
		desc, _ := flags.GetBool("desc")
		page, _ := flags.GetInt("page")
		perPage, _ := flags.GetInt("per-page")

		ctx := cmd.Context()
		products := services.NewProductService().List(ctx)
		categories := services.NewCategoryService().List(ctx)
		byID := collection.KeyBy(categories, func(c models.Category) int { return c.ID })

		q := listing.Query{
			Search:   search,
			Category: listing.AllCategories,
			SortBy:   sortBy,
			Page:     page,
			PerPage:  perPage,
		}
		if categoryID > 0 {
			q.Category = listing.CategoryFilter(categoryID)
		}
		if desc {
			q.Dir = listing.Desc
		}

		result, q := derivePage(products, productTable(), q)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tSALE\tCATEGORY\tVIEWS\tHOT\tSTATUS")
		for _, p := range result.Items {
			category := fmt.Sprintf("#%d", p.CategoryID)
			if c, ok := byID[p.CategoryID]; ok {
				category = c.Name
			}
			hot := ""
			if p.Hot {
				hot = "yes"
			}
			fmt.Fprintf(w, "%d\t%s\t%.0f\t%.0f\t%s\t%d\t%s\t%s\n",
				p.ID, p.Name, p.Price, p.SalePrice, category, p.Views, hot, p.Status)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\n%d product(s), page %d of %d\n", result.Total, q.Page, result.TotalPages)
		return nil
	},
}

var productsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		p := services.NewProductService().Find(cmd.Context(), id)
		if p == nil {
			return fmt.Errorf("product %d not found", id)
		}
		fmt.Printf("#%d %s\n", p.ID, p.Name)
		fmt.Printf("  price:    %.0f (sale %.0f)\n", p.Price, p.SalePrice)
		fmt.Printf("  category: %d\n", p.CategoryID)
		fmt.Printf("  views:    %d\n", p.Views)
		fmt.Printf("  hot:      %v\n", p.Hot)
		fmt.Printf("  status:   %s\n", p.Status)
		if p.Image != "" {
			fmt.Printf("  image:    %s\n", p.Image)
		}
		return nil
	},
}

var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		created, errs := services.NewProductService().Create(cmd.Context(), productInputFromFlags(cmd))
		return reportSubmit("create product", created, errs)
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		updated, errs := services.NewProductService().Update(cmd.Context(), id, productInputFromFlags(cmd))
		return reportSubmit("update product", updated, errs)
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if !services.NewProductService().Delete(cmd.Context(), id) {
			return fmt.Errorf("delete product %d failed", id)
		}
		fmt.Printf("Deleted product %d.\n", id)
		return nil
	},
}

var productsUploadCmd = &cobra.Command{
	Use:   "upload-image <file>",
	Short: "Upload a product image to the configured disk",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		url, err := services.NewProductService().UploadImage(args[0], f)
		if err != nil {
			return err
		}
		fmt.Println(url)
		return nil
	},
}

func productInputFromFlags(cmd *cobra.Command) services.ProductInput {
	flags := cmd.Flags()
	name, _ := flags.GetString("name")
	price, _ := flags.GetFloat64("price")
	sale, _ := flags.GetFloat64("sale-price")
	category, _ := flags.GetInt("category")
	image, _ := flags.GetString("image")
	hot, _ := flags.GetBool("hot")
	status, _ := flags.GetString("status")

	return services.ProductInput{
		Name:       name,
		Price:      price,
		SalePrice:  sale,
		CategoryID: category,
		Image:      image,
		Hot:        hot,
		Status:     status,
	}
}

func init() {
	productsListCmd.Flags().String("search", "", "search by name (punctuation-insensitive)")
	productsListCmd.Flags().Int("category", 0, "filter by category id (0 = all)")
	productsListCmd.Flags().String("sort", "", "sort column: name|price|sale|views|date|hot|status")
	productsListCmd.Flags().Bool("desc", false, "sort descending")
	productsListCmd.Flags().Int("page", 1, "page number (1-based)")
	productsListCmd.Flags().Int("per-page", listing.DefaultPerPage, "rows per page")

	for _, c := range []*cobra.Command{productsCreateCmd, productsUpdateCmd} {
		c.Flags().String("name", "", "product name")
		c.Flags().Float64("price", 0, "list price")
		c.Flags().Float64("sale-price", 0, "sale price")
		c.Flags().Int("category", 0, "category id")
		c.Flags().String("image", "", "image URL")
		c.Flags().Bool("hot", false, "featured flag")
		c.Flags().String("status", string(models.InStock), "stock status")
	}

	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsGetCmd)
	productsCmd.AddCommand(productsCreateCmd)
	productsCmd.AddCommand(productsUpdateCmd)
	productsCmd.AddCommand(productsDeleteCmd)
	productsCmd.AddCommand(productsUploadCmd)
}
