package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/starpathlabs/starpath/internal/bus"
	"github.com/starpathlabs/starpath/internal/cosmetics"
	"github.com/starpathlabs/starpath/internal/curriculum"
	"github.com/starpathlabs/starpath/internal/logger"
	"github.com/starpathlabs/starpath/internal/notify"
	"github.com/starpathlabs/starpath/internal/progress"
	"github.com/starpathlabs/starpath/internal/progression"
	"github.com/starpathlabs/starpath/internal/rewards"
	"github.com/starpathlabs/starpath/internal/store"
	"github.com/starpathlabs/starpath/internal/streak"
	"github.com/starpathlabs/starpath/internal/ui/theme"
)

// app holds the wired services behind every command. Commands open it,
// do their work, and close it; Close drains the reward queue so no
// token grant is lost to process exit.
type app struct {
	log    *logger.Logger
	store  *store.Store
	bus    *bus.Bus
	queue  *rewards.Queue
	boxes  *rewards.Service
	svc    *progression.Service
	streak *streak.Tracker
	shop   *cosmetics.Service
	graph  *curriculum.Graph
	wallet string

	toasts     *notify.Deduper
	events     <-chan bus.Event
	stopEvents func()

	closeProgress func() error
}

func openApp(cmd *cobra.Command) (*app, error) {
	log, err := logger.New(os.Getenv("STARPATH_LOG"))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open voyage log: %w", err)
	}
	events := st.EventRepo()
	snapshots := st.SnapshotRepo()

	prog, closeProgress := openProgressStore(log)

	b := bus.New(log, 64)
	queue := rewards.NewQueue(openRail(), events, log, rewards.DefaultQueueConfig())
	boxes := rewards.NewService(rewards.Config{
		Queue:    queue,
		Events:   events,
		Progress: prog,
		Bus:      b,
		Log:      log,
		Rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())),
	})

	graph := curriculum.Default()
	svc := progression.NewService(progression.Config{
		Graph:     graph,
		Progress:  prog,
		Events:    events,
		Snapshots: snapshots,
		Bus:       b,
		Queue:     queue,
		Boxes:     boxes,
		Log:       log,
	})
	tracker := streak.NewTracker(streak.Config{
		Progress: prog,
		Rewards:  boxes,
		Events:   events,
		Bus:      b,
		Log:      log,
	})
	shop := cosmetics.NewService(cosmetics.Config{
		Progress: prog,
		Events:   events,
		Bus:      b,
		Log:      log,
	})

	a := &app{
		log:           log,
		store:         st,
		bus:           b,
		queue:         queue,
		boxes:         boxes,
		svc:           svc,
		streak:        tracker,
		shop:          shop,
		graph:         graph,
		wallet:        resolveWallet(cmd),
		toasts:        notify.NewDeduper(),
		closeProgress: closeProgress,
	}
	a.events, a.stopEvents = b.Subscribe()
	return a, nil
}

func (a *app) Close() {
	a.stopEvents()
	a.queue.Close()
	a.bus.Close()
	if a.closeProgress != nil {
		if err := a.closeProgress(); err != nil {
			a.log.Warn("close progress store", "err", err)
		}
	}
	if err := a.store.Close(); err != nil {
		a.log.Warn("close voyage log", "err", err)
	}
	a.log.Sync()
}

// openProgressStore connects the hosted progress store when one is
// configured and falls back to the in-memory store otherwise. Either way
// the store is wrapped with retries and call logging.
func openProgressStore(log *logger.Logger) (progress.Store, func() error) {
	var (
		s         progress.Store
		closeFunc func() error
	)
	cfg := progress.DefaultRedisConfig()
	switch {
	case cfg.Addr == "":
		fmt.Fprintln(os.Stderr, "STARPATH_REDIS_ADDR not set: progress stays on this machine.")
		s = progress.NewMemStore()
	default:
		rs, err := progress.NewRedisStore(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Progress store unreachable, starting offline:", err)
			s = progress.NewMemStore()
		} else {
			s = rs
			closeFunc = rs.Close
		}
	}
	return progress.WithRetry(progress.WithLogging(s, log), progress.DefaultRetryConfig()), closeFunc
}

// openRail returns the token rail client, or the no-op rail when no
// rail endpoint is configured.
func openRail() rewards.Granter {
	base := strings.TrimSpace(os.Getenv("STARPATH_RAIL_URL"))
	if base == "" {
		return rewards.NopRail{}
	}
	var opts []rewards.RailOption
	if token := strings.TrimSpace(os.Getenv("STARPATH_RAIL_TOKEN")); token != "" {
		opts = append(opts, rewards.WithToken(token))
	}
	return rewards.NewHTTPRail(base, opts...)
}

// checkIn applies the daily streak transition after a learning action.
// Failures degrade to a log line; the streak never blocks a completion.
func (a *app) checkIn(ctx context.Context, doc *progress.UserProgress) {
	if _, err := a.streak.CheckIn(ctx, doc); err != nil {
		a.log.Warn("streak check-in", "err", err)
	}
}

// drainToasts prints celebration lines for the events the command just
// produced. Publish hands events to the subscriber channel before the
// service call returns, so a non-blocking drain sees them all.
func (a *app) drainToasts() {
	for {
		select {
		case e, ok := <-a.events:
			if !ok {
				return
			}
			if line := a.renderToast(e); line != "" {
				fmt.Println(line)
			}
		default:
			return
		}
	}
}

// renderToast turns a session event into a celebration line. Events whose
// command already printed the outcome render nothing here.
func (a *app) renderToast(e bus.Event) string {
	switch e.Type {
	case bus.GalaxyUnlocked:
		p := e.Payload.(bus.GalaxyUnlockedPayload)
		return theme.GalaxyName.Render(fmt.Sprintf("🌌 New galaxy unlocked: %s", p.Name))
	case bus.LevelUp:
		p := e.Payload.(bus.LevelUpPayload)
		return theme.Current.Render(fmt.Sprintf("⬆ Level %d!", p.Level))
	case bus.DailyStreakChecked:
		p := e.Payload.(bus.StreakCheckedPayload)
		if !p.Counted || !a.toasts.FirstToday("streak", e.At) {
			return ""
		}
		line := theme.Current.Render(fmt.Sprintf("🔥 Day %d streak!", p.Count))
		if p.Milestone > 0 {
			line += "\n" + theme.Hint.Render(fmt.Sprintf("Milestone reached: run `starpath streak claim %d` for a mystery box.", p.Milestone))
		}
		return line
	default:
		return ""
	}
}
