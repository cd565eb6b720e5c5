package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Exchange the configured credentials for a bearer token",
		Long: "Exchanges jet.api_user and jet.secret at the token endpoint and reports\n" +
			"when the resulting token expires. Useful for checking credentials.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := jetClientFromConfig()
			if err != nil {
				return err
			}

			cred, err := client.Credentials().Credential(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput() {
				out := map[string]any{
					"token_type": cred.TokenType,
					"expires_on": cred.ExpiresOn,
				}
				if show {
					out["id_token"] = cred.Token
				}
				return outputJSON(out)
			}

			tw := newTabWriter(cmd.OutOrStdout())
			tw.writef("Type:\t%s\n", cred.TokenType)
			tw.writef("Expires:\t%s (in %s)\n",
				cred.ExpiresOn.Format(time.RFC3339),
				time.Until(cred.ExpiresOn).Round(time.Minute),
			)
			if show {
				tw.writef("Token:\t%s\n", cred.Token)
			}
			if err := tw.finish(); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "print the bearer token itself")

	return cmd
}
