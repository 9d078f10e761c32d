package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joshuapare/rcolkit/pkg/store"
	"github.com/joshuapare/rcolkit/pkg/tgi"
)

var (
	storeGetOutput string
	storeTimeout   time.Duration
)

func init() {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Move containers in and out of a resource store",
		Long: `The store commands keep containers in the configured backend
(store.backend: memory, bolt or object), addressed by resource key.

Example:
  rcolctl store put model.rcol 0x015A1849-0x00000000-0x0000000000001234
  rcolctl store ls
  RCOL_STORE_BACKEND=object rcolctl store get 0x015A1849-0x00000000-0x0000000000001234 -o model.rcol`,
	}
	cmd.PersistentFlags().DurationVar(&storeTimeout, "timeout", time.Minute, "Deadline for store operations")

	get := newStoreGetCmd()
	get.Flags().StringVarP(&storeGetOutput, "output", "o", "", "Write the container to this file instead of stdout")
	cmd.AddCommand(newStorePutCmd(), get, newStoreLsCmd())
	rootCmd.AddCommand(cmd)
}

func newStorePutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put <file> <key>",
		Short: "Validate a container and store it under key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStorePut(cmd.Context(), args)
		},
	}
}

func newStoreGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Fetch and validate the container stored under key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreGet(cmd.Context(), args)
		},
	}
}

func newStoreLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List stored keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreLs(cmd.Context())
		},
	}
}

// openStore builds the configured backend. The returned close func is never
// nil.
func openStore(ctx context.Context) (store.Store, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Store.Backend {
	case "memory":
		return store.NewMemory(), noop, nil
	case "bolt", "":
		b, err := store.OpenBolt(cfg.Store.BoltPath, store.BoltOptions{})
		if err != nil {
			return nil, noop, err
		}
		return b, b.Close, nil
	case "object":
		client, err := store.NewObjectClient(cfg.Store.Object)
		if err != nil {
			return nil, noop, err
		}
		o := store.NewObject(client, cfg.Store.Object.Bucket, cfg.Store.Object.Prefix)
		if err := o.EnsureBucket(ctx, cfg.Store.Object.Region); err != nil {
			return nil, noop, err
		}
		return o, noop, nil
	default:
		return nil, noop, fmt.Errorf("store.backend %q: want memory, bolt or object", cfg.Store.Backend)
	}
}

func storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, storeTimeout)
}

func runStorePut(ctx context.Context, args []string) error {
	key, err := tgi.Parse(args[1])
	if err != nil {
		return err
	}
	c, _, err := loadContainer(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := storeContext(ctx)
	defer cancel()
	s, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := store.Save(ctx, s, key, c); err != nil {
		return err
	}
	logger.Info("stored container", zap.Stringer("key", key), zap.String("backend", cfg.Store.Backend))
	printInfo("Stored %s as %s\n", args[0], key)
	return nil
}

func runStoreGet(ctx context.Context, args []string) error {
	key, err := tgi.Parse(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := storeContext(ctx)
	defer cancel()
	s, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	c, err := store.Load(ctx, s, key, opts)
	if err != nil {
		return err
	}
	data, err := c.Bytes()
	if err != nil {
		return err
	}
	logger.Info("fetched container", zap.Stringer("key", key), zap.Int("size", len(data)))
	return sinkFor(storeGetOutput).Emit(data)
}

func runStoreLs(ctx context.Context) error {
	ctx, cancel := storeContext(ctx)
	defer cancel()
	s, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	keys, err := s.Keys(ctx)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(map[string]any{"keys": keys, "count": len(keys)})
	}
	for _, k := range keys {
		printInfo("%s\n", k)
	}
	printVerbose("Total: %d keys\n", len(keys))
	return nil
}
