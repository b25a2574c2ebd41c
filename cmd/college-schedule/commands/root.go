package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ytget/college-schedule/internal/api"
	"github.com/ytget/college-schedule/internal/config"
	"github.com/ytget/college-schedule/internal/favorites"
	"github.com/ytget/college-schedule/internal/model"
	"github.com/ytget/college-schedule/internal/present"
	"github.com/ytget/college-schedule/internal/storage"
	"github.com/ytget/college-schedule/internal/week"
)

// EnvAPI overrides the default service address
const EnvAPI = "COLLEGE_SCHEDULE_API"

// lastGroupKey stores the most recently viewed group next to the favorites
const lastGroupKey = "last_group"

// options holds the persistent flags
type options struct {
	apiURL    string
	dbPath    string
	weekStart string
	timeout   int
	lang      string
	now       func() time.Time
}

// appContext is built once per invocation from the flags
type appContext struct {
	db           *storage.SQLite
	favorites    *favorites.Store
	client       *api.Client
	weekStart    time.Weekday
	localization *present.Localization
	now          func() time.Time
}

// Execute runs the root command with os.Args
func Execute() error {
	root, closeApp := newRootCommand(&options{now: time.Now})
	defer closeApp()
	return root.Execute()
}

// newRootCommand builds the command tree. The returned func releases what
// the persistent pre-run opened, even when a command fails.
func newRootCommand(opts *options) (*cobra.Command, func() error) {
	app := &appContext{}

	root := &cobra.Command{
		Use:   "college-schedule",
		Short: "Weekly college schedule for a group",
		Long:  `college-schedule shows the current week's classes for a study group, exports them to .ics and keeps a list of favorite groups.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.open(opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.apiURL, "api", "", fmt.Sprintf("schedule service base URL (env %s, default %s)", EnvAPI, api.DefaultBaseURL))
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "favorites database (default <config dir>/college-schedule/favorites.db)")
	root.PersistentFlags().StringVar(&opts.weekStart, "week-start", "monday", "first day of the week: monday or sunday")
	root.PersistentFlags().IntVar(&opts.timeout, "timeout", config.DefaultRequestTimeout, "request timeout in seconds (1-120)")
	root.PersistentFlags().StringVar(&opts.lang, "lang", present.DefaultLanguage, "output language: ru or en")

	root.AddCommand(
		scheduleCmd(app),
		favoritesCmd(app),
		groupsCmd(app),
		pickCmd(app),
	)
	return root, app.close
}

func (a *appContext) open(opts *options) error {
	start, err := week.ParseWeekStart(opts.weekStart)
	if err != nil {
		return err
	}

	apiURL := opts.apiURL
	if apiURL == "" {
		apiURL = os.Getenv(EnvAPI)
	}

	dbPath := opts.dbPath
	if dbPath == "" {
		if dbPath, err = storage.DefaultDatabasePath(); err != nil {
			return err
		}
	}
	db, err := storage.OpenSQLite(dbPath)
	if err != nil {
		return err
	}
	store, err := favorites.New(db)
	if err != nil {
		db.Close()
		return err
	}

	a.db = db
	a.favorites = store
	a.client = api.NewClient(apiURL, clampTimeout(opts.timeout))
	a.weekStart = start
	a.localization = present.NewLocalization()
	a.localization.SetLanguage(opts.lang)
	a.now = opts.now
	return nil
}

func (a *appContext) close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

// lastGroup returns the most recently viewed group, DefaultGroup if none
func (a *appContext) lastGroup() model.GroupID {
	values, err := a.db.ReadSet(lastGroupKey)
	if err != nil || len(values) == 0 || !model.GroupID(values[0]).Valid() {
		return model.DefaultGroup
	}
	return model.GroupID(values[0])
}

func (a *appContext) rememberGroup(group model.GroupID) error {
	return a.db.WriteSet(lastGroupKey, []string{group.String()})
}

func clampTimeout(seconds int) time.Duration {
	if seconds < config.MinRequestTimeout {
		seconds = config.MinRequestTimeout
	}
	if seconds > config.MaxRequestTimeout {
		seconds = config.MaxRequestTimeout
	}
	return time.Duration(seconds) * time.Second
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
