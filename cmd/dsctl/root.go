package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dense-identity/domainselection/internal/rpc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const (
	flagAddr    = "addr"
	flagTimeout = "timeout"
)

type dialFunc func(addr string) (*rpc.Client, error)

func dialServer(addr string) (*rpc.Client, error) {
	return rpc.NewClient(addr)
}

// cli carries the settings shared by every subcommand.
type cli struct {
	v    *viper.Viper
	dial dialFunc
}

func newRootCmd(dial dialFunc) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("DSCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	c := &cli{v: v, dial: dial}

	rootCmd := &cobra.Command{
		Use:           "dsctl",
		Short:         "Drive a domainselectiond instance",
		Long:          "dsctl pushes platform state into domainselectiond and runs SMS and emergency call domain selections against it.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().String(flagAddr, "localhost:50061", "domainselectiond gRPC address")
	rootCmd.PersistentFlags().Duration(flagTimeout, 5*time.Second, "Timeout of unary calls")
	_ = v.BindPFlag(flagAddr, rootCmd.PersistentFlags().Lookup(flagAddr))
	_ = v.BindPFlag(flagTimeout, rootCmd.PersistentFlags().Lookup(flagTimeout))

	rootCmd.AddCommand(
		newUpdateCmd(c),
		newSelectCmd(c),
		newFinishCmd(c),
		newCancelCmd(c),
		newScanResultCmd(c),
	)
	return rootCmd
}

// withClient dials the server and runs fn with a bounded context.
func (c *cli) withClient(cmd *cobra.Command, fn func(ctx context.Context, client *rpc.Client) error) error {
	client, err := c.dial(c.v.GetString(flagAddr))
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), c.v.GetDuration(flagTimeout))
	defer cancel()
	return fn(ctx, client)
}

// readJSON decodes the protojson file at path, or stdin for "-", into m.
// Field names may be given in proto or JSON form.
func readJSON(cmd *cobra.Command, path string, m proto.Message) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := protojson.Unmarshal(data, m); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// writeJSON prints m as one protojson line.
func writeJSON(cmd *cobra.Command, m proto.Message) error {
	data, err := protojson.MarshalOptions{UseProtoNames: true}.Marshal(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
