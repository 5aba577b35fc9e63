// Package version reports build metadata for the command-line tools.
package version

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// 构建时通过 ldflags 注入
var (
	version = ""
	commit  = ""
	date    = ""
)

// Get 返回版本号，优先级：ldflags > debug.ReadBuildInfo > "(devel)"
func Get() string {
	if version != "" {
		return version
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		if buildInfo.Main.Version != "" {
			return buildInfo.Main.Version
		}
	}
	return "(devel)"
}

// Commit 返回提交哈希（短）
func Commit() string {
	if commit != "" {
		return commit
	}
	return buildSetting("vcs.revision", 7)
}

// Date 返回构建时间
func Date() string {
	if date != "" {
		return date
	}
	return buildSetting("vcs.time", 0)
}

func buildSetting(key string, maxLen int) string {
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range buildInfo.Settings {
			if setting.Key != key {
				continue
			}
			if maxLen > 0 && len(setting.Value) > maxLen {
				return setting.Value[:maxLen]
			}
			return setting.Value
		}
	}
	return "unknown"
}

// NewCommand 创建 version 子命令
func NewCommand(name string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  fmt.Sprintf("Print the version, commit hash, and build date of %s.", name),
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", name, Get())
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", Commit())
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", Date())
		},
	}
}
