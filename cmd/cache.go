package cmd

import (
	"errors"
	"fmt"

	"faredash/service"

	"github.com/spf13/cobra"
)

var (
	cacheForce bool
	cachePath  string
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Maintain the on-disk dataset cache",
}

var cacheBackupCmd = &cobra.Command{
	Use:   "backup [file]",
	Short: "Write a backup of the dataset cache",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCache(cmd)
		if err != nil {
			return err
		}
		file := ""
		if len(args) == 1 {
			file = args[0]
		}
		_, err = c.Backup(file)
		return err
	},
}

var cacheRestoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Replace the dataset cache with a backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCache(cmd)
		if err != nil {
			return err
		}
		return ignoreCancel(c.Restore(args[0]))
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCache(cmd)
		if err != nil {
			return err
		}
		return ignoreCancel(c.Clear())
	},
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the keys of cached datasets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCache(cmd)
		if err != nil {
			return err
		}
		_, err = c.List()
		return err
	},
}

func init() {
	cacheCmd.PersistentFlags().BoolVarP(&cacheForce, "force", "y", false, "Do not ask for confirmation")
	cacheCmd.PersistentFlags().StringVar(&cachePath, "path", "", "Cache directory, overrides store.path")

	cacheCmd.AddCommand(cacheBackupCmd)
	cacheCmd.AddCommand(cacheRestoreCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheListCmd)
}

func newCache(cmd *cobra.Command) (*service.Cache, error) {
	path := cachePath
	if path == "" {
		cfg, err := loadConfig()
		if err != nil {
			return nil, err
		}
		path = cfg.Store.Path
	}
	if path == "" {
		return nil, fmt.Errorf("no cache directory: set store.path or pass --path")
	}
	c := service.NewCache(path, cmd.InOrStdin(), cmd.OutOrStdout())
	c.Force = cacheForce
	return c, nil
}

// ignoreCancel treats a declined prompt as success.
func ignoreCancel(err error) error {
	if errors.Is(err, service.ErrCancelled) {
		return nil
	}
	return err
}
