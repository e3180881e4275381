package cli

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tessera/pkg/cache"
	"github.com/matzehuels/tessera/pkg/canvas"
	"github.com/matzehuels/tessera/pkg/codec"
	"github.com/matzehuels/tessera/pkg/merger"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the pack search cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached search results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}
			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			count, err := fc.Clear()
			if err != nil {
				return err
			}
			printSuccess("Cleared %d cached entries", count)
			printKeyValue("Directory", dir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

// cacheDir returns the cache directory using XDG standard (~/.cache/tessera/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// openCache returns the search cache, or a NullCache when caching is
// disabled or the cache directory is unusable.
func openCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err == nil {
		var fc *cache.FileCache
		if fc, err = cache.NewFileCache(dir); err == nil {
			return fc
		}
	}
	loggerFromContext(ctx).Debug("cache disabled", "error", err)
	return cache.NewNullCache()
}

// digest hashes the size and every cell of c.
func digest(c *codec.Pixels) string {
	buf := make([]byte, 0, 8+5*c.Len())
	buf = binary.BigEndian.AppendUint32(buf, uint32(c.Width()))
	buf = binary.BigEndian.AppendUint32(buf, uint32(c.Length()))
	for _, cell := range c.Cells() {
		v, ok := cell.Value()
		if !ok {
			buf = append(buf, 0, 0, 0, 0, 0)
			continue
		}
		buf = append(buf, 1, v.R, v.G, v.B, v.A)
	}
	return cache.Hash(buf)
}

func tilingKey(sources []*codec.Pixels, opts packOpts, limit int) string {
	digests := make([]string, len(sources))
	for i, s := range sources {
		digests[i] = digest(s)
	}
	return cache.TilingKey(digests, cache.TilingKeyOpts{
		Width:           opts.width,
		Length:          opts.length,
		MaxPermutations: opts.maxPerms,
		Timeout:         opts.timeout,
		DistinctShapes:  opts.distinctShapes,
		Solutions:       limit,
	})
}

// cachedTiling is the stored form of a tiling: enough to replay it.
type cachedTiling struct {
	Size       canvas.Size   `json:"size"`
	Order      []int         `json:"order"`
	Placements []image.Point `json:"placements"`
}

// loadTilings replays cached tilings for key. It returns nil on a miss or
// when any entry no longer replays.
func loadTilings(ctx context.Context, store cache.Cache, key string, m *merger.Merger[color.NRGBA]) []tiling {
	logger := loggerFromContext(ctx)
	data, hit, err := store.Get(ctx, key)
	if err != nil || !hit {
		return nil
	}
	var entries []cachedTiling
	if err := json.Unmarshal(data, &entries); err != nil || len(entries) == 0 {
		logger.Debug("discarding cache entry", "error", err)
		_ = store.Delete(ctx, key)
		return nil
	}
	found := make([]tiling, 0, len(entries))
	for _, e := range entries {
		t, err := m.Replay(canvas.FromEmptySize[color.NRGBA](e.Size), e.Order, e.Placements)
		if err != nil {
			logger.Debug("discarding cache entry", "error", err)
			_ = store.Delete(ctx, key)
			return nil
		}
		found = append(found, t)
	}
	logger.Debug("cache hit", "tilings", len(found))
	return found
}

// storeTilings records found under key. Failures are logged and ignored.
func storeTilings(ctx context.Context, store cache.Cache, key string, found []tiling) {
	entries := make([]cachedTiling, len(found))
	for i, t := range found {
		entries[i] = cachedTiling{Size: t.Canvas.Size(), Order: t.Order, Placements: t.Placements}
	}
	data, err := json.Marshal(entries)
	if err == nil {
		err = store.Set(ctx, key, data, cache.TTLTiling)
	}
	if err != nil {
		loggerFromContext(ctx).Debug("cache write failed", "error", err)
	}
}
