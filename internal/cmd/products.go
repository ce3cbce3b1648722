package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nexodus-tech/vendor-console/internal/console"
	"github.com/nexodus-tech/vendor-console/internal/status"
	"github.com/nexodus-tech/vendor-console/internal/upload"
	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage product listings",
}

var (
	productsPage   int
	productsSearch string
	productsStatus string
)

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List product listings",
	RunE:  runProductsList,
}

var (
	addName       string
	addDesc       string
	addPrice      string
	addComparePx  string
	addSKU        string
	addCategoryID string
	addFilePath   string
	addFileMIME   string
	addThumbPath  string
	addThumbMIME  string
)

var productsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a product listing with a digital file and optional thumbnail",
	RunE:  runProductsAdd,
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product listing",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsDelete,
}

func init() {
	productsListCmd.Flags().IntVar(&productsPage, "page", 1, "page to show")
	productsListCmd.Flags().StringVar(&productsSearch, "search", "", "search term")
	productsListCmd.Flags().StringVar(&productsStatus, "status", "", "status filter: published or draft")

	productsAddCmd.Flags().StringVar(&addName, "name", "", "product name")
	productsAddCmd.Flags().StringVar(&addDesc, "description", "", "product description")
	productsAddCmd.Flags().StringVar(&addPrice, "price", "", "price, e.g. 19.99")
	productsAddCmd.Flags().StringVar(&addComparePx, "compare-at-price", "", "optional compare-at price")
	productsAddCmd.Flags().StringVar(&addSKU, "sku", "", "optional SKU")
	productsAddCmd.Flags().StringVar(&addCategoryID, "category", "", "category id")
	productsAddCmd.Flags().StringVar(&addFilePath, "file", "", "path to the digital product file")
	productsAddCmd.Flags().StringVar(&addFileMIME, "file-type", "", "MIME type of the digital file")
	productsAddCmd.Flags().StringVar(&addThumbPath, "thumbnail", "", "optional path to a thumbnail image")
	productsAddCmd.Flags().StringVar(&addThumbMIME, "thumbnail-type", "", "MIME type of the thumbnail")

	productsCmd.AddCommand(productsListCmd, productsAddCmd, productsDeleteCmd)
	rootCmd.AddCommand(productsCmd)
}

func runProductsList(cmd *cobra.Command, args []string) error {
	app, _, err := newConsole()
	if err != nil {
		return err
	}

	ctrl := app.Products
	if err := ctrl.Sync(cmd.Context(), productsPage, productsSearch, productsStatus); err != nil {
		return fmt.Errorf("failed to fetch products: %w", err)
	}

	items := ctrl.Items()
	if len(items) == 0 {
		fmt.Println("No products found")
		return nil
	}

	for _, p := range items {
		badge := status.Product(p.IsPublished, p.IsActive)
		rating := "No ratings"
		if p.AverageRating != nil {
			rating = fmt.Sprintf("%.1f (%d)", *p.AverageRating, p.ReviewsCount)
		}
		fmt.Printf("#%-6d %-32s $%-9.2f %-10s %s\n", p.ID, p.Name, p.Price, badge.Label, rating)
	}
	fmt.Printf("\nPage %d of %d (%d products)\n", ctrl.Page(), ctrl.TotalPages(), ctrl.TotalCount())
	return nil
}

func runProductsAdd(cmd *cobra.Command, args []string) error {
	app, _, err := newConsole()
	if err != nil {
		return err
	}

	form := console.ProductForm{
		Name:           addName,
		Description:    addDesc,
		Price:          addPrice,
		CompareAtPrice: addComparePx,
		SKU:            addSKU,
		CategoryID:     addCategoryID,
	}

	if addFilePath != "" {
		file, info, err := openUpload(addFilePath, addFileMIME)
		if err != nil {
			return err
		}
		defer file.Close()
		form.File = info
		form.FileContent = file
	}
	if addThumbPath != "" {
		thumb, info, err := openUpload(addThumbPath, addThumbMIME)
		if err != nil {
			return err
		}
		defer thumb.Close()
		form.Thumbnail = &info
		form.ThumbnailContent = thumb
	}

	if err := app.AddProduct(cmd.Context(), form); err != nil {
		return fmt.Errorf("failed to add product: %w", err)
	}
	fmt.Println("Product added successfully!")
	return nil
}

func runProductsDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id: %s", args[0])
	}

	app, _, err := newConsole()
	if err != nil {
		return err
	}

	if err := app.DeleteProduct(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	fmt.Printf("Product %d deleted\n", id)
	return nil
}

func openUpload(path, mimeType string) (*os.File, upload.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, upload.File{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, upload.File{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return file, upload.File{
		Name: filepath.Base(path),
		MIME: mimeType,
		Size: stat.Size(),
	}, nil
}
