package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/commands"
	"github.com/sandeepkv93/todo/internal/config"
	"github.com/sandeepkv93/todo/internal/logging"
	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/storage"
	"github.com/sandeepkv93/todo/internal/store"
	"github.com/sandeepkv93/todo/internal/update"
	"github.com/sandeepkv93/todo/internal/views"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session is everything a command needs once flags are resolved.
type session struct {
	cfg    config.RuntimeConfig
	slot   storage.Slot
	store  *store.Store
	logger *zap.Logger
}

func (s *session) Close() {
	if s.slot != nil {
		_ = s.slot.Close()
	}
	if s.logger != nil {
		_ = s.logger.Sync()
	}
}

type rootOptions struct {
	backend string
	dataDir string
	key     string
	logFile string
	debug   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "A small persisted todo list",
		Long: `todo keeps a list of items with a completion flag and saves it after every change.

Run without arguments to start the interactive list.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd.Context(), cmd, opts)
			if err != nil {
				return err
			}
			defer sess.Close()
			program := tea.NewProgram(
				update.NewModel(sess.store, update.WithLogger(sess.logger), update.WithContext(cmd.Context())),
				tea.WithAltScreen(),
			)
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("run ui: %w", err)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.backend, "backend", "", "storage backend: file, sqlite, diskv or memory (env TODO_BACKEND)")
	flags.StringVar(&opts.dataDir, "data-dir", "", "directory for stored items (env TODO_DATA_DIR)")
	flags.StringVar(&opts.key, "key", "", "storage key holding the list (env TODO_STORAGE_KEY)")
	flags.StringVar(&opts.logFile, "log-file", "", "log file path (env TODO_LOG_FILE)")
	flags.BoolVar(&opts.debug, "debug", false, "debug logging (env TODO_DEBUG)")

	cmd.AddCommand(
		newAddCmd(opts),
		newListCmd(opts),
		newTargetCmd(opts, commands.TypeToggle, "toggle <id>", "Flip an item between open and completed"),
		newTargetCmd(opts, commands.TypeDelete, "rm <id>", "Delete an item"),
		newClearCmd(opts),
	)
	return cmd
}

func resolveConfig(cmd *cobra.Command, opts *rootOptions) (config.RuntimeConfig, error) {
	cfg := config.RuntimeConfigFromEnv(config.DefaultRuntimeConfig())
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = storage.Backend(strings.ToLower(opts.backend))
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = opts.dataDir
	}
	if flags.Changed("key") {
		cfg.StorageKey = opts.key
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	return cfg.Resolve()
}

func openSession(ctx context.Context, cmd *cobra.Command, opts *rootOptions) (*session, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return nil, err
	}
	slot, err := storage.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open %s storage: %w", cfg.Backend, err)
	}
	st := store.New(slot, store.WithKey(cfg.StorageKey), store.WithLogger(logger))
	st.Load(ctx)
	logger.Debug("session opened",
		zap.String("backend", string(cfg.Backend)),
		zap.String("data_dir", cfg.DataDir),
		zap.Int("items", len(st.Items())))
	return &session{cfg: cfg, slot: slot, store: st, logger: logger}, nil
}

// runCommand executes a parsed command against the session's store and
// prints the outcome.
func runCommand(ctx context.Context, w io.Writer, sess *session, c commands.Command) error {
	res, err := commands.Execute(c, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			it, ok := sess.store.Add(ctx, a.Text)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "add requires text"}
			}
			return commands.Result{Message: fmt.Sprintf("added %s %q", it.ID, it.Text)}, nil
		},
		Toggle: func(a commands.TargetArgs) (commands.Result, error) {
			if !sess.store.Toggle(ctx, a.ID) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no item with id %s", a.ID)}
			}
			return commands.Result{Message: "toggled " + a.ID}, nil
		},
		Delete: func(a commands.TargetArgs) (commands.Result, error) {
			if !sess.store.Delete(ctx, a.ID) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no item with id %s", a.ID)}
			}
			return commands.Result{Message: "deleted " + a.ID}, nil
		},
		Clear: func() (commands.Result, error) {
			n := sess.store.ClearCompleted(ctx)
			return commands.Result{Message: fmt.Sprintf("cleared %d completed", n)}, nil
		},
	})
	if err != nil {
		return err
	}
	if err := sess.store.LastSaveErr(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w, res.Message)
	return nil
}

func rowsFor(items []model.Item) []views.RowData {
	rows := make([]views.RowData, 0, len(items))
	for _, it := range items {
		rows = append(rows, views.RowData{ID: it.ID, Text: it.Text, Completed: it.Completed})
	}
	return rows
}
