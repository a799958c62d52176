// Package cmd wires configuration, collaborators, and the agent loop
// behind the CLI entry point.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nextlevelbuilder/miniagent/internal/agent"
	"github.com/nextlevelbuilder/miniagent/internal/config"
	"github.com/nextlevelbuilder/miniagent/internal/memory"
	"github.com/nextlevelbuilder/miniagent/internal/providers"
	"github.com/nextlevelbuilder/miniagent/internal/summarize"
	"github.com/nextlevelbuilder/miniagent/internal/tokens"
	"github.com/nextlevelbuilder/miniagent/internal/tools"
	"github.com/nextlevelbuilder/miniagent/internal/ui"
)

const tokenEncoding = "cl100k_base"

// Execute runs the root command. Every terminal path exits 0: usage
// errors, fatal backend errors, and normal completion alike.
func Execute() {
	root := &cobra.Command{
		Use:   `miniagent "<objective>"`,
		Short: "Autonomous agent that works toward an objective step by step",
		Args:  cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			run(args)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	_ = root.Execute()
}

func run(args []string) {
	if len(args) != 1 {
		fmt.Println(`Usage: miniagent "<objective>"`)
		return
	}
	objective := args[0]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	console := ui.New()

	workDir, err := cfg.ResolveWorkDir()
	if err != nil {
		console.Error(err.Error() + "\nSet WORK_DIR to an existing directory or leave it blank.")
		return
	}
	// The working directory is fixed for the process lifetime; all
	// relative file and shell operations resolve against it.
	if err := os.Chdir(workDir); err != nil {
		console.Error("Cannot enter work dir: " + err.Error())
		return
	}
	console.Info("Working directory is " + workDir)

	counter := tokens.NewCounter(tokenEncoding)

	history, err := memory.NewSQLiteStore(filepath.Join(workDir, ".miniagent-history.db"), counter)
	if err != nil {
		console.Error("Cannot open history store: " + err.Error())
		return
	}
	defer history.Close()

	provider := providers.NewOpenAIProvider(cfg.APIKey, cfg.APIBase)
	summarizer := summarize.New(provider, cfg.SummarizerModel, counter, cfg.SummarizerChunkSize)

	registry := buildRegistry(cfg, objective, workDir, summarizer, console)

	loop := agent.New(objective, cfg, provider, summarizer, history, registry, console)
	// Fatal errors are printed by the loop; the process still exits 0.
	_ = loop.Run(context.Background())
}

func buildRegistry(cfg *config.Config, objective, workDir string, summarizer *summarize.Summarizer, console *ui.Console) *tools.Registry {
	hint := agent.ContentHint(objective)

	registry := tools.NewRegistry()
	registry.Register(tools.NewPythonTool(workDir))
	registry.Register(tools.NewShellTool(workDir))
	registry.Register(tools.NewReadFileTool(summarizer, cfg.MaxMemoryItemSize, hint))
	registry.Register(tools.NewWebSearchTool(os.Getenv("BRAVE_API_KEY")))
	registry.Register(tools.NewWebScrapeTool(summarizer, cfg.MaxMemoryItemSize, hint))
	registry.Register(tools.NewTalkTool(console))

	if rl := tools.NewRateLimiter(cfg.ToolRateLimit); rl != nil {
		registry.SetRateLimiter(rl)
	}
	return registry
}
