// Command tstl transpiles SL source files into TL source text.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GlassBricks/TypeScriptToLua/pkg/cache"
	"github.com/GlassBricks/TypeScriptToLua/pkg/config"
	"github.com/GlassBricks/TypeScriptToLua/pkg/driver"
	"github.com/GlassBricks/TypeScriptToLua/pkg/log"
	"github.com/GlassBricks/TypeScriptToLua/pkg/transpile"
	"github.com/GlassBricks/TypeScriptToLua/pkg/watch"
)

var rootCmd = &cobra.Command{
	Use:   "tstl",
	Short: "tstl transpiles SL source into TL source text",
	Long: `tstl - a source-to-source transpiler.

Available commands:
  build  - transpile a file or directory, through the cache
  watch  - watch a directory and retranspile on save
  emit   - transpile a source snippet given on the command line`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Initialize(false)
	},
}

var emitExpr string

var emitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Transpile a source snippet from the command line",
	RunE: func(cmd *cobra.Command, args []string) error {
		if emitExpr == "" {
			return fmt.Errorf("emit requires -e '<source>'")
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		result, err := driver.Transpile(emitExpr, transpile.WithBitOpLibrary(cfg.Emit.BitOpLibrary))
		if err != nil {
			return err
		}
		fmt.Println(result.Output)
		return nil
	},
}

var buildCmd = &cobra.Command{
	Use:   "build <file|dir>",
	Short: "Transpile a file or every source file in a directory, through the cache",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		target := args[0]

		info, err := os.Stat(target)
		if err != nil {
			return err
		}

		var c *cache.Cache
		if cfg.Cache.Enabled {
			c, err = cache.Open(cfg.Cache.Path)
			if err != nil {
				return err
			}
			defer c.Close()
		}

		if info.IsDir() {
			return filepath.Walk(target, func(path string, fi os.FileInfo, err error) error {
				if err != nil || fi.IsDir() || !strings.HasSuffix(path, cfg.Watch.SourceSuffix) {
					return err
				}
				return buildFile(path, cfg.Emit.OutputSuffix, c, transpile.WithBitOpLibrary(cfg.Emit.BitOpLibrary))
			})
		}
		return buildFile(target, cfg.Emit.OutputSuffix, c, transpile.WithBitOpLibrary(cfg.Emit.BitOpLibrary))
	},
}

func buildFile(path, outputSuffix string, c *cache.Cache, opts ...transpile.Option) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var result driver.Result
	if c != nil {
		result, _, err = c.Transpile(string(source), time.Now().Unix(), opts...)
	} else {
		result, err = driver.Transpile(string(source), opts...)
	}
	if err != nil {
		return err
	}

	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + outputSuffix
	log.Logger.Info("wrote output", zap.String("source", path), zap.String("output", outPath))
	return os.WriteFile(outPath, []byte(result.Output), 0o644)
}

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and retranspile changed files on save",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dir := args[0]

		var c *cache.Cache
		if cfg.Cache.Enabled {
			c, err = cache.Open(cfg.Cache.Path)
			if err != nil {
				return err
			}
			defer c.Close()
		}

		w, err := watch.New(dir, cfg.Watch.SourceSuffix, time.Duration(cfg.Watch.DebounceMillis)*time.Millisecond, func(path string) {
			if err := buildFile(path, cfg.Emit.OutputSuffix, c, transpile.WithBitOpLibrary(cfg.Emit.BitOpLibrary)); err != nil {
				log.Logger.Warn("build failed", zap.String("path", path), zap.Error(err))
			}
		})
		if err != nil {
			return err
		}
		defer w.Stop()

		log.Logger.Info("watching", zap.String("dir", dir))
		w.Run()
		return nil
	},
}

func init() {
	emitCmd.Flags().StringVarP(&emitExpr, "expr", "e", "", "SL source snippet to transpile")
	rootCmd.AddCommand(buildCmd, watchCmd, emitCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
