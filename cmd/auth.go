package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/teemow/gdrive-mcp/internal/google"
	"github.com/teemow/gdrive-mcp/internal/logging"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize access to Google Drive and Sheets",
		Long: `Authorize gdrive-mcp with a Google account.

Requires GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET of an OAuth client.
First open the URL printed by "auth url", then pass the code Google shows
to "auth save-code". The token is stored in the user cache directory and
refreshed automatically.`,
	}

	cmd.AddCommand(newAuthURLCmd())
	cmd.AddCommand(newAuthSaveCodeCmd())

	return cmd
}

func newAuthURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "url",
		Short: "Print the Google consent URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := google.OAuthConfigFromEnv()
			if err := cfg.Validate(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Visit this URL to authorize gdrive-mcp:")
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), google.GetAuthURL(cfg))
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), "Then run: gdrive-mcp auth save-code <code>")
			return nil
		},
	}
}

func newAuthSaveCodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save-code <code>",
		Short: "Exchange an authorization code and save the token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := google.OAuthConfigFromEnv()
			if err := cfg.Validate(); err != nil {
				return err
			}

			store := google.DefaultTokenStore()
			slog.Debug("exchanging authorization code", "code", logging.SanitizeToken(args[0]))

			if err := google.SaveToken(context.Background(), cfg, store, args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Token saved to %s\n", store.Path())
			return nil
		},
	}
}
