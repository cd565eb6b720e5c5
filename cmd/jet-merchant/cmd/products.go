package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/jet-merchant/internal/jet"
)

func inventoryCmd() *cobra.Command {
	invRoot := &cobra.Command{
		Use:   "inventory",
		Short: "Read and replace SKU inventory",
	}

	invRoot.AddCommand(
		&cobra.Command{
			Use:   "get <sku>",
			Short: "Show per-node stock for a SKU",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := jetClientFromConfig()
				if err != nil {
					return err
				}
				inv, err := client.GetInventory(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(inv)
				}
				return printInventory(inv)
			},
		},
		inventorySetCmd(),
	)

	return invRoot
}

func inventorySetCmd() *cobra.Command {
	var nodes []string

	cmd := &cobra.Command{
		Use:     "set <sku>",
		Short:   "Replace per-node stock for a SKU",
		Args:    cobra.ExactArgs(1),
		Example: `  jet-merchant inventory set sku-1 --node 7a3b1c=12 --node 9f2e4d=0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := parseNodeQuantities(nodes)
			if err != nil {
				return err
			}
			client, err := jetClientFromConfig()
			if err != nil {
				return err
			}
			if err := client.UpdateInventory(cmd.Context(), args[0], inv); err != nil {
				return err
			}
			fmt.Printf("Inventory for %s updated across %d node(s).\n", args[0], len(inv.FulfillmentNodes))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&nodes, "node", nil, "fulfillment node stock as node_id=qty (repeatable)")

	return cmd
}

func priceCmd() *cobra.Command {
	priceRoot := &cobra.Command{
		Use:   "price",
		Short: "Read and set SKU prices",
	}

	priceRoot.AddCommand(
		&cobra.Command{
			Use:   "get <sku>",
			Short: "Show the selling price of a SKU",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := jetClientFromConfig()
				if err != nil {
					return err
				}
				p, err := client.GetPrice(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(p)
				}
				fmt.Printf("%s\t$%.2f\n", args[0], p.Price)
				return nil
			},
		},
		&cobra.Command{
			Use:     "set <sku> <price>",
			Short:   "Set the selling price of a SKU",
			Args:    cobra.ExactArgs(2),
			Example: `  jet-merchant price set sku-1 19.99`,
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := strconv.ParseFloat(args[1], 64)
				if err != nil || v < 0 {
					return fmt.Errorf("price %q must be a non-negative number", args[1])
				}
				client, err := jetClientFromConfig()
				if err != nil {
					return err
				}
				if err := client.UpdatePrice(cmd.Context(), args[0], &jet.Price{Price: v}); err != nil {
					return err
				}
				fmt.Printf("Price for %s set to $%.2f.\n", args[0], v)
				return nil
			},
		},
	)

	return priceRoot
}

func jetClientFromConfig() (*jet.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	client, _ := newJetClient(cfg, newLogger(cfg))
	return client, nil
}
