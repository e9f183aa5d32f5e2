package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/erdgraph/pkg/cache"
)

// cacheCommand groups the subcommands that manage the on-disk layout
// cache. A Redis cache selected by ERDGRAPH_REDIS_URL is not touched.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local layout cache",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "clear",
			Short: "Remove all cached layouts",
			Args:  cobra.NoArgs,
			RunE:  func(*cobra.Command, []string) error { return runCacheClear() },
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the cache directory path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				dir, err := cacheDir()
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), dir)
				return nil
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Show how many layouts are cached and their size on disk",
			Args:  cobra.NoArgs,
			RunE:  func(*cobra.Command, []string) error { return runCacheStats() },
		},
	)
	return cmd
}

func runCacheClear() error {
	dir, err := cacheDir()
	if err != nil {
		return fmt.Errorf("get cache dir: %w", err)
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		printInfo("Cache is empty")
		return nil
	}

	n, err := clearCacheDir(dir)
	if err != nil {
		return err
	}
	printSuccess("Cleared %d cached layouts", n)
	printDetail("Directory: %s", dir)
	return nil
}

func runCacheStats() error {
	dir, err := cacheDir()
	if err != nil {
		return fmt.Errorf("get cache dir: %w", err)
	}
	u, err := scanCacheDir(dir)
	if err != nil {
		return err
	}
	printKeyValue("Directory", dir)
	printKeyValue("Layouts", fmt.Sprint(u.entries))
	printKeyValue("Size", formatBytes(u.bytes))
	return nil
}

// cacheUsage summarizes the entry files below a cache root.
type cacheUsage struct {
	entries int
	bytes   int64
}

// scanCacheDir walks dir and counts entry files. A missing dir is empty.
func scanCacheDir(dir string) (cacheUsage, error) {
	var u cacheUsage
	err := filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		u.entries++
		u.bytes += info.Size()
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return cacheUsage{}, nil
	}
	if err != nil {
		return cacheUsage{}, fmt.Errorf("scan cache dir: %w", err)
	}
	return u, nil
}

// clearCacheDir empties the file cache at dir and reports how many
// entries it held.
func clearCacheDir(dir string) (int, error) {
	u, err := scanCacheDir(dir)
	if err != nil {
		return 0, err
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return 0, err
	}
	if err := fc.Clear(); err != nil {
		return 0, fmt.Errorf("clear cache: %w", err)
	}
	return u.entries, nil
}

// formatBytes renders n with a binary unit, e.g. "1.5 KiB".
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
