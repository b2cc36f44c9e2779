package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/authsim/internal/logger"
	"github.com/glorpus-work/authsim/pkg/account"
	"github.com/glorpus-work/authsim/pkg/audit"
	"github.com/glorpus-work/authsim/pkg/config"
	"github.com/glorpus-work/authsim/pkg/engine"
	"github.com/glorpus-work/authsim/pkg/fsutil"
	"github.com/glorpus-work/authsim/pkg/group"
	"github.com/glorpus-work/authsim/pkg/hook"
	"github.com/glorpus-work/authsim/pkg/permission"
	"github.com/glorpus-work/authsim/pkg/registry"
	"github.com/glorpus-work/authsim/pkg/script"
	"github.com/glorpus-work/authsim/pkg/session"
	"github.com/glorpus-work/authsim/pkg/snapshot"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	var (
		stateDir   string
		bundlePath string
		hookScript string
	)

	cmd := &cobra.Command{
		Use:   "run SCRIPT",
		Short: "Replay an instruction script",
		Long: `Replay a scripted sequence of administrative and file-access
commands against a fresh in-memory model, producing an audit trail of
accepted and rejected operations. The first command must create the
root account.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd.Context(), args[0], stateDir, bundlePath, hookScript)
		},
	}

	cmd.Flags().StringVar(&stateDir, "state-dir", "", "state directory (default from config)")
	cmd.Flags().StringVar(&bundlePath, "bundle", "", "write a tar.gz bundle of the final state directory")
	cmd.Flags().StringVar(&hookScript, "hook", "", "Tengo script run after the replay")

	return cmd
}

func runRun(ctx context.Context, scriptPath, stateDir, bundlePath, hookScript string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if stateDir != "" {
		cfg.Settings.StateDir = stateDir
	}
	if bundlePath != "" {
		cfg.Settings.BundlePath = bundlePath
	}
	if hookScript != "" {
		cfg.Settings.HookScript = hookScript
	}

	logger.InitLogger(cfg.Settings.LogLevel)

	if err := fsutil.EnsureDir(cfg.Settings.StateDir); err != nil {
		return err
	}

	src, closeSrc, err := script.Open(scriptPath)
	if err != nil {
		return err
	}
	defer func() { _ = closeSrc() }()

	eng := buildEngine(cfg, os.Stdout)

	res, err := eng.Run(ctx, src)
	if err != nil {
		return err
	}

	logger.Info("replay finished", logger.Fields{
		"commands": res.Commands,
		"accepted": res.Accepted,
		"rejected": res.Rejected,
		"ignored":  res.Ignored,
		"ended":    res.Ended,
	})

	if cfg.Settings.HookScript != "" {
		if err := runHook(ctx, cfg.Settings.HookScript, scriptPath, res); err != nil {
			// A broken hook script must not fail an otherwise clean replay.
			logger.Warn("post-run hook failed", logger.Fields{"error": err.Error()})
		}
	}

	if cfg.Settings.BundlePath != "" {
		if err := snapshot.Bundle(ctx, cfg.Settings.StateDir, cfg.Settings.BundlePath); err != nil {
			return err
		}
		logger.Info("state bundle written", logger.Fields{"path": cfg.Settings.BundlePath})
	}

	return nil
}

// buildEngine wires the stores, evaluator, session, audit trail and
// persistence sink for one replay over the configured state directory.
func buildEngine(cfg *config.Config, transcript io.Writer) *engine.Engine {
	accounts := account.NewManager(cfg.TablePath(cfg.Settings.AccountsFile))
	groups := group.NewManager(accounts)
	eval := permission.NewEvaluator(groups)
	files := registry.NewManager(cfg.Settings.StateDir, cfg.ProtectedNames(), accounts, groups, eval)

	return &engine.Engine{
		Accounts: accounts,
		Groups:   groups,
		Files:    files,
		Session:  session.New(accounts),
		Audit:    audit.NewLogger(cfg.TablePath(cfg.Settings.AuditFile), transcript),
		Sink:     snapshot.NewWriter(cfg.TablePath(cfg.Settings.GroupsFile), cfg.TablePath(cfg.Settings.FilesFile)),
	}
}

func runHook(ctx context.Context, hookPath, scriptPath string, res engine.Result) error {
	exec, err := hook.Load(hookPath)
	if err != nil {
		return err
	}
	return exec.Execute(ctx, hook.Context{
		ScriptPath: scriptPath,
		Commands:   res.Commands,
		Accepted:   res.Accepted,
		Rejected:   res.Rejected,
		Ignored:    res.Ignored,
		Ended:      res.Ended,
	})
}
