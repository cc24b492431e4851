package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/calebcase/settlement"
	"github.com/calebcase/settlement/decimal"
)

// CommandError is the class of errors returned by the subcommands.
var CommandError = errs.Class("command")

func (a *app) lengthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "length",
		Short: "Print the length the details declare.",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			details, err := a.cfg.DetailsBytes()
			if err != nil {
				return err
			}

			n, err := settlement.Length(details)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "length: %d\n", n)

			return nil
		}),
	}
}

func (a *app) feeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fee",
		Short: "Print the taking fee.",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			details, err := a.cfg.DetailsBytes()
			if err != nil {
				return err
			}

			fee, err := settlement.TakingFeeOf(details)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if fee.IsZero() {
				fmt.Fprintln(out, "taking fee: none")

				return nil
			}

			fmt.Fprintf(out, "amount: %s\n", decimal.Fee(uint64(fee.Amount), a.cfg.Decimals))
			fmt.Fprintf(out, "recipient: %s\n", fee.Recipient.Hex())
			fmt.Fprintf(out, "packed: %s\n", hexutil.EncodeBig(fee.Packed()))

			return nil
		}),
	}
}

func (a *app) resolverFeeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolver-fee",
		Short: "Print the fixed fee owed per fill.",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			details, err := a.cfg.DetailsBytes()
			if err != nil {
				return err
			}

			fee, err := settlement.ResolverFee(details)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "resolver fee: %s\n", decimal.Fee(uint64(fee), a.cfg.Decimals))

			return nil
		}),
	}
}

func (a *app) hashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash",
		Short: "Print the hash the maker signed.",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			details, err := a.cfg.DetailsBytes()
			if err != nil {
				return err
			}

			interaction, err := a.cfg.InteractionBytes()
			if err != nil {
				return err
			}

			h, err := settlement.Hash(details, interaction)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "hash: %s\n", h.Hex())

			return nil
		}),
	}
}

func (a *app) allowedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allowed",
		Short: "Print whether the resolver may fill now.",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			details, err := a.cfg.DetailsBytes()
			if err != nil {
				return err
			}

			interaction, err := a.cfg.InteractionBytes()
			if err != nil {
				return err
			}

			resolver, err := a.cfg.ResolverAddress()
			if err != nil {
				return err
			}

			now := a.cfg.Time()

			ok, err := settlement.Allowed(details, interaction, resolver, now)
			if err != nil {
				return err
			}

			a.log.Debug("checked resolver",
				zap.String("resolver", resolver.Hex()),
				zap.Uint64("now", now),
				zap.Bool("allowed", ok),
			)

			fmt.Fprintf(cmd.OutOrStdout(), "allowed: %t\n", ok)

			return nil
		}),
	}

	cmd.Flags().String("resolver", "", "resolver address")
	_ = a.v.BindPFlag("resolver", cmd.Flags().Lookup("resolver"))

	return cmd
}

func (a *app) bumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bump",
		Short: "Print the auction rate bump now.",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			details, err := a.cfg.DetailsBytes()
			if err != nil {
				return err
			}

			bump, err := settlement.RateBump(details, a.cfg.Time())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rate bump: %d\n", bump)
			fmt.Fprintf(out, "percent: %s\n", decimal.Percent(bump))
			fmt.Fprintf(out, "multiplier: %s\n", decimal.RateBump(bump))

			return nil
		}),
	}
}

func (a *app) inspectCommand() *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print every decoded section of the details.",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			details, err := a.cfg.DetailsBytes()
			if err != nil {
				return err
			}

			interaction, err := a.cfg.InteractionBytes()
			if err != nil {
				return err
			}

			h, err := settlement.ParseHeader(details)
			if err != nil {
				return err
			}

			points, err := settlement.Points(details)
			if err != nil {
				return err
			}

			fee, err := settlement.TakingFeeOf(details)
			if err != nil {
				return err
			}

			var resolvers []settlement.Resolver
			if h.Flags.Resolvers > 0 {
				resolvers, err = settlement.Resolvers(details, interaction)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()

			if dump {
				spew.Fdump(out, h, resolvers, points, fee)

				return nil
			}

			fmt.Fprintf(out, "flags: %s\n", h.Flags)
			fmt.Fprintf(out, "start time: %d\n", h.StartTime)
			fmt.Fprintf(out, "auction: %d - %d\n", h.AuctionStart(), h.AuctionFinish())
			fmt.Fprintf(out, "initial rate bump: %d (%s%%)\n", h.InitialRateBump, decimal.Percent(uint64(h.InitialRateBump)))
			fmt.Fprintf(out, "resolver fee: %s\n", decimal.Fee(uint64(h.ResolverFee), a.cfg.Decimals))
			fmt.Fprintf(out, "public time: %d\n", h.PublicTime())

			for i, r := range resolvers {
				fmt.Fprintf(out, "resolver[%d]: %s after %d\n", i, r.ID, r.Time)
			}

			for i, p := range points {
				fmt.Fprintf(out, "point[%d]: %d at %d\n", i, p.Bump, p.Time)
			}

			if !fee.IsZero() {
				fmt.Fprintf(out, "taking fee: %s to %s\n", decimal.Fee(uint64(fee.Amount), a.cfg.Decimals), fee.Recipient.Hex())
			}

			return nil
		}),
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "dump the decoded structures")

	return cmd
}

func (a *app) encodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode a JSON message into details and address table.",
		Long:  "Encode a JSON message into details and address table. Reads stdin when the file is - or missing.",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) (err error) {
			var r io.Reader = cmd.InOrStdin()

			if len(args) == 1 && args[0] != "-" {
				f, openErr := os.Open(args[0])
				if openErr != nil {
					return CommandError.Wrap(openErr)
				}
				defer func() { err = errs.Combine(err, f.Close()) }()

				r = f
			}

			m := &settlement.Message{}

			err = json.NewDecoder(r).Decode(m)
			if err != nil {
				return CommandError.New("decode message: %v", err)
			}

			details, table, err := m.Encode()
			if err != nil {
				return err
			}

			h, err := m.Hash()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "details: %s\n", hexutil.Encode(details))
			fmt.Fprintf(out, "address table: %s\n", hexutil.Encode(table))
			fmt.Fprintf(out, "hash: %s\n", h.Hex())

			return nil
		}),
	}
}
