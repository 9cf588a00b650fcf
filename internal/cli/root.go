package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/tgienger/dgboard/internal/config"
	"github.com/tgienger/dgboard/internal/db"
	"github.com/tgienger/dgboard/internal/logger"
	"github.com/tgienger/dgboard/internal/models"
	"github.com/tgienger/dgboard/internal/store"
	"github.com/tgienger/dgboard/internal/tasks"
	"github.com/tgienger/dgboard/internal/ui"
	"go.uber.org/zap"
)

// BuildInfo is stamped in by the linker
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Execute runs the root command
func Execute(info BuildInfo) error {
	if err := NewRootCmd(info).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func NewRootCmd(info BuildInfo) *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:   "dgboard",
		Short: "A local-first task board for the terminal",
		Long: `dgboard keeps a small team's tasks on a four column board
(Backlog, In Progress, Review, Done) stored on this machine.

Run without a subcommand to open the board.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cfgPath)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default $XDG_CONFIG_HOME/dgboard/config.yaml)")

	root.AddCommand(newVersionCmd(info))
	root.AddCommand(newListCmd(&cfgPath))
	root.Version = info.Version
	return root
}

// session is an opened board: storage, the repository and its logger
type session struct {
	log   *zap.Logger
	db    *db.DB
	store *store.Store
	repo  *tasks.Repository
}

// open loads config, opens the slot database and fills the repository.
// Every repository mutation is written back to the store.
func open(cfgPath string) (*session, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	database, err := db.New(cfg.DBPath())
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("open database: %w", err)
	}

	st := store.New(database, log)
	repo := tasks.NewRepository(log)
	repo.Replace(st.Load())
	repo.Subscribe(func(snapshot []models.Task) {
		// A failed save is already logged; the board keeps working in memory
		_ = st.Save(snapshot)
	})

	log.Info("board opened", zap.String("db", cfg.DBPath()), zap.Int("tasks", repo.Len()))
	return &session{log: log, db: database, store: st, repo: repo}, nil
}

func (s *session) Close() {
	if err := s.db.Close(); err != nil {
		s.log.Warn("closing database failed", zap.Error(err))
	}
	_ = s.log.Sync()
}

func runBoard(cfgPath string) error {
	s, err := open(cfgPath)
	if err != nil {
		return err
	}
	defer s.Close()

	app := ui.NewApp(s.repo, s.store, s.log)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	return nil
}
