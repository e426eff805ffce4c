package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mareurs/thunderbird-mcp/internal/auth"
	"github.com/mareurs/thunderbird-mcp/internal/bridge"
)

const checkTimeout = 10 * time.Second

func newCheckCmd() *cobra.Command {
	var bridgeURL string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the connection to Thunderbird",
		Long: `Check that the Thunderbird MCP extension is reachable and that the
auth token on disk is accepted. Lists the accounts visible through the
extension on success.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(bridgeURL)
		},
	}

	cmd.Flags().StringVar(&bridgeURL, "bridge-url", "", "Thunderbird extension endpoint. Defaults to "+bridge.DefaultBaseURL+". Can also use THUNDERBIRD_MCP_URL env var.")

	return cmd
}

func runCheck(bridgeURL string) error {
	token, err := auth.FindToken()
	if err != nil {
		fmt.Println("✗ Auth token: not found")
		return err
	}
	fmt.Println("✓ Auth token: found")

	var client *bridge.Client
	if bridgeURL != "" {
		client = bridge.NewWithBaseURL(token, bridgeURL)
	} else {
		client = bridge.New(token)
	}
	fmt.Printf("  Endpoint: %s\n", client.BaseURL())

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	result, err := client.Call(ctx, "/accounts/list", nil)
	if err != nil {
		var bridgeErr *bridge.Error
		if errors.As(err, &bridgeErr) {
			switch bridgeErr.Kind {
			case bridge.KindUnreachable:
				fmt.Println("✗ Thunderbird: not reachable")
				fmt.Println("  Is Thunderbird running with the MCP extension installed?")
			case bridge.KindUnauthorized:
				fmt.Println("✓ Thunderbird: reachable")
				fmt.Println("✗ Auth token: rejected by the extension")
				fmt.Println("  The token on disk is stale. Restart Thunderbird to regenerate it.")
			default:
				fmt.Println("✓ Thunderbird: reachable")
				fmt.Println("✗ Account listing failed")
			}
		}
		return err
	}

	fmt.Println("✓ Thunderbird: reachable")
	fmt.Println("✓ Auth token: accepted")

	if accounts := accountsFromResult(result); accounts != nil {
		fmt.Printf("✓ Accounts visible: %d\n", len(accounts))
		for _, a := range accounts {
			if obj, ok := a.(map[string]interface{}); ok {
				if name, ok := obj["name"].(string); ok {
					fmt.Printf("  - %s\n", name)
				}
			}
		}
	}

	return nil
}

// accountsFromResult extracts the account list from the /accounts/list
// response. The extension wraps it as {"accounts": [...]}; a bare array
// is accepted as a fallback.
func accountsFromResult(result interface{}) []interface{} {
	switch v := result.(type) {
	case map[string]interface{}:
		if list, ok := v["accounts"].([]interface{}); ok {
			return list
		}
	case []interface{}:
		return v
	}
	return nil
}
