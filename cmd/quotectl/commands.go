package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/handyline/handyline-api/libs/go/catalog"
	"github.com/handyline/handyline-api/libs/go/constants"
	"github.com/handyline/handyline-api/libs/go/db"
	"github.com/handyline/handyline-api/libs/go/helpers"
	"github.com/handyline/handyline-api/libs/go/interfaces"
	"github.com/handyline/handyline-api/libs/go/quote"
	"github.com/handyline/handyline-api/libs/go/render"
	"github.com/handyline/handyline-api/libs/go/services"

	"github.com/spf13/cobra"
)

type storeOptions struct {
	kind        string
	databaseURL string
	projectID   string
}

// storeOpener returns an invoice store and a function releasing it.
type storeOpener func(ctx context.Context, opts storeOptions) (interfaces.InvoiceStore, func(), error)

func defaultStoreOpener(ctx context.Context, opts storeOptions) (interfaces.InvoiceStore, func(), error) {
	switch opts.kind {
	case constants.StorePostgres:
		if opts.databaseURL == "" {
			return nil, nil, fmt.Errorf("--database-url or DATABASE_URL is required")
		}
		pool, err := db.NewPool(ctx, opts.databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return db.NewPostgresInvoiceStore(pool), pool.Close, nil
	case constants.StoreFirestore:
		if opts.projectID == "" {
			return nil, nil, fmt.Errorf("--project or FIRESTORE_PROJECT_ID is required")
		}
		client, err := db.NewFirestoreClient(ctx, opts.projectID)
		if err != nil {
			return nil, nil, err
		}
		return db.NewFirestoreInvoiceStore(client), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store %q", opts.kind)
	}
}

func rootCmd(open storeOpener) *cobra.Command {
	opts := storeOptions{}

	cmd := &cobra.Command{
		Use:           "quotectl",
		Short:         "Operate the Handyline quote engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.kind, "store",
		helpers.GetEnvOrDefault("INVOICE_STORE", constants.StorePostgres), "Invoice store (postgres, firestore)")
	cmd.PersistentFlags().StringVar(&opts.databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection string")
	cmd.PersistentFlags().StringVar(&opts.projectID, "project", os.Getenv("FIRESTORE_PROJECT_ID"), "Firestore project ID")

	cmd.AddCommand(
		migrateCmd(&opts),
		renderCmd(&opts, open),
		catalogCmd(),
		extractCmd(),
	)
	return cmd
}

func migrateCmd(opts *storeOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the Postgres invoice schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.databaseURL == "" {
				return fmt.Errorf("--database-url or DATABASE_URL is required")
			}
			pool, err := db.NewPool(cmd.Context(), opts.databaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := db.InitSchema(cmd.Context(), pool); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
			return nil
		},
	}
}

func renderCmd(opts *storeOptions, open storeOpener) *cobra.Command {
	var (
		format  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "render <invoice-id>",
		Short: "Render a stored invoice as text, HTML or PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, closeStore, err := open(ctx, *opts)
			if err != nil {
				return fmt.Errorf("failed to open invoice store: %w", err)
			}
			defer closeStore()

			svc := services.NewRenderService(store, render.Options{
				BusinessName:        helpers.GetEnvOrDefault("BUSINESS_NAME", "Handyline Home Services"),
				PaymentInstructions: render.DefaultPaymentInstructions,
			}, os.Getenv("PUBLIC_SITE_URL"))

			inv, err := svc.RenderInvoice(ctx, args[0])
			if err != nil {
				return err
			}

			var out io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				file, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", outPath, err)
				}
				defer file.Close()
				out = file
			}
			return render.Write(out, inv, f)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(render.FormatText), "Output format (text, html, pdf)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to file instead of stdout")
	return cmd
}

func catalogCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the service price catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Default()
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(c.Categories())
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, category := range c.Categories() {
				fmt.Fprintf(w, "%s\n", category.Name)
				for _, e := range category.Entries {
					fmt.Fprintf(w, "  %s\t%s - %s\t%s\n", e.ServiceName,
						helpers.FormatCurrency(e.MinPrice), helpers.FormatCurrency(e.MaxPrice), e.Note)
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract",
		Short: "Extract the [TOTAL: $x] marker from generated text on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			result := quote.Extract(string(text))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "status: %s\n", result.Status)
			fmt.Fprintf(out, "total: %s\n", helpers.FormatAmount(result.Total))
			fmt.Fprintf(out, "content:\n%s\n", result.Content)
			return nil
		},
	}
}
