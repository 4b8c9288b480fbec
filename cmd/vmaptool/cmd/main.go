// Package cmd assembles vmaptool's subcommands, grounded on
// github.com/grailbio/bio/cmd/bio-pamtool's cmdline layout.
package cmd

import (
	"fmt"

	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"
)

func newCmdCat() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "cat",
		Short:    "Stream a file's contents through a vmap region cache to stdout",
		ArgsName: "path",
	}
	flags := catFlags{
		commonFlags: commonFlags{
			minBufferSize: cmd.Flags.Int64("min-buffer-size", 0, "Minimum region size in bytes (0 selects the library default)"),
			maxBufferSize: cmd.Flags.Int64("max-buffer-size", 0, "Maximum region size in bytes (0 selects the library default)"),
			maxRegions:    cmd.Flags.Int("max-regions", 0, "Maximum simultaneously resident regions (0 selects the library default)"),
		},
		initialPosition: cmd.Flags.Int64("initial-position", 0, "Cursor position to start streaming from"),
		chunkSize:       cmd.Flags.Int("chunk-size", 1<<20, "Size in bytes of each Get call issued while streaming"),
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("cat takes one pathname argument, but got %v", argv)
		}
		return cat(flags, argv[0])
	})
	return cmd
}

func newCmdStat() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "stat",
		Short:    "Print vmap region table occupancy after reading a file once, front to back",
		ArgsName: "path",
	}
	flags := statFlags{
		commonFlags: commonFlags{
			minBufferSize: cmd.Flags.Int64("min-buffer-size", 0, "Minimum region size in bytes (0 selects the library default)"),
			maxBufferSize: cmd.Flags.Int64("max-buffer-size", 0, "Maximum region size in bytes (0 selects the library default)"),
			maxRegions:    cmd.Flags.Int("max-regions", 0, "Maximum simultaneously resident regions (0 selects the library default)"),
		},
		chunkSize: cmd.Flags.Int("chunk-size", 1<<20, "Size in bytes of each Get call issued while walking"),
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("stat takes one pathname argument, but got %v", argv)
		}
		return stat(flags, argv[0])
	})
	return cmd
}

// Run parses argv and dispatches to the selected subcommand. It does not
// return.
func Run() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(&cmdline.Command{
		Name:     "vmaptool",
		Short:    "Exercise the vmap region cache against a local or remote file",
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdCat(),
			newCmdStat(),
		},
	})
}
