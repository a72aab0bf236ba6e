package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/voidshard/cooker/internal/utils"
	"github.com/voidshard/cooker/pkg/api"
	"github.com/voidshard/cooker/pkg/asset"
	"github.com/voidshard/cooker/pkg/engine/sim"
	"github.com/voidshard/cooker/pkg/journal"
	"github.com/voidshard/cooker/pkg/notify"
	"github.com/voidshard/cooker/pkg/structs"
)

const (
	// default to local redis no pass
	defaultRedisURL = "localhost:6379"
)

type optsGeneral struct {
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

type optsJournal struct {
	DatabaseURL string `long:"database-url" env:"DATABASE_URL" description:"Journal database connection string (no journal if unset)"`
	Migrate     bool   `long:"migrate" env:"MIGRATE" description:"Apply journal migrations on start"`
}

type optsNotify struct {
	RedisURL       string `long:"redis-url" env:"REDIS_URL" description:"Redis address notifications are published to (log only if unset)"`
	RedisTLSCaCert string `long:"redis-tls-ca-cert" env:"REDIS_TLS_CA_CERT" description:"Path to redis TLS CA certificate"`
	RedisTLSCert   string `long:"redis-tls-cert" env:"REDIS_TLS_CERT" description:"Path to redis TLS certificate"`
	RedisTLSKey    string `long:"redis-tls-key" env:"REDIS_TLS_KEY" description:"Path to redis TLS key"`
}

func (o *optsNotify) options() (*notify.Options, error) {
	tlsCfg, err := utils.TLSConfig(o.RedisTLSCaCert, o.RedisTLSCert, o.RedisTLSKey)
	if err != nil {
		return nil, err
	}
	return &notify.Options{URL: o.RedisURL, TLSConfig: tlsCfg}, nil
}

type optsManager struct {
	CookTimeLimit      float64       `long:"cook-time-limit" env:"COOK_TIME_LIMIT" default:"1" description:"Seconds per frame spent processing assets (<= 0 is unlimited)"`
	FrameInterval      time.Duration `long:"frame-interval" env:"FRAME_INTERVAL" default:"33ms" description:"Time between frames"`
	NoCooking          bool          `long:"no-cooking" env:"NO_COOKING" description:"Start with cooking disabled"`
	NoAutoStart        bool          `long:"no-auto-start" env:"NO_AUTO_START" description:"Do not start a session automatically"`
	SessionSync        bool          `long:"session-sync" env:"SESSION_SYNC" description:"Follow cooks triggered outside the manager"`
	SyncWithEngineCook bool          `long:"sync-with-engine-cook" env:"SYNC_WITH_ENGINE_COOK" description:"Recook clients whose node was cooked elsewhere"`
	Quiet              bool          `long:"quiet" env:"QUIET" description:"Do not log progress notifications"`
	SimCookTime        time.Duration `long:"sim-cook-time" env:"SIM_COOK_TIME" default:"50ms" description:"How long each simulated cook takes"`

	Args struct {
		Assets []string `positional-arg-name:"asset" description:"Asset library paths, optionally suffixed with :<asset name>"`
	} `positional-args:"yes"`
}

func (o *optsManager) options(g *optsGeneral) *api.Options {
	opts := api.OptionsDefault()
	opts.CookTimeLimit = time.Duration(o.CookTimeLimit * float64(time.Second))
	opts.AutoStartSession = !o.NoAutoStart
	opts.CookingEnabled = !o.NoCooking
	opts.SessionSync = o.SessionSync
	opts.SyncWithEngineCook = o.SyncWithEngineCook
	opts.Debug = g.Debug
	return opts
}

// runtime is everything a frame loop needs; close releases it in reverse order.
type runtime struct {
	svc   *api.Service
	redis *notify.Asynq
}

func (r *runtime) close() error {
	err := r.svc.Close()
	if r.redis != nil {
		rerr := r.redis.Close()
		if err == nil {
			err = rerr
		}
	}
	return err
}

func newRuntime(g *optsGeneral, m *optsManager, j *optsJournal, n *optsNotify) (*runtime, error) {
	rt := &runtime{}

	sinks := []notify.Notifier{notify.NewLog(!m.Quiet)}
	if n.RedisURL != "" {
		nopts, err := n.options()
		if err != nil {
			return nil, err
		}
		rt.redis = notify.NewAsynq(nopts)
		sinks = append(sinks, rt.redis)
	}

	var jnl journal.Journal
	if j.DatabaseURL != "" {
		pg, err := journal.NewPostgres(&journal.Options{URL: j.DatabaseURL, Migrate: j.Migrate})
		if err != nil {
			if rt.redis != nil {
				rt.redis.Close()
			}
			return nil, err
		}
		jnl = pg
	}

	eng := sim.New(&sim.Options{CookTime: m.SimCookTime})
	rt.svc = api.New(eng, asset.NopCollaborators{}, notify.NewMulti(sinks...), jnl, m.options(g))

	for _, arg := range m.Args.Assets {
		def := parseDefinition(arg)
		err := rt.svc.Register(asset.New(assetName(def), def, nil))
		if err != nil {
			rt.close()
			return nil, err
		}
	}

	return rt, nil
}

// parseDefinition reads "path/to/lib.hda:name" into a definition.
func parseDefinition(arg string) *structs.Definition {
	def := &structs.Definition{Path: arg}
	i := strings.LastIndex(arg, ":")
	if i > 0 && i < len(arg)-1 && !strings.ContainsAny(arg[i+1:], `/\`) {
		def.Path = arg[:i]
		def.Name = arg[i+1:]
	}
	return def
}

func assetName(def *structs.Definition) string {
	if def.Name != "" {
		return def.Name
	}
	return strings.TrimSuffix(filepath.Base(def.Path), filepath.Ext(def.Path))
}

func main() {
	var parser = flags.NewParser(&struct{}{}, flags.Default)

	parser.AddCommand("run", docRun, docRun, &optsRun{})
	parser.AddCommand("api", docApi, docApi, &optsAPI{})
	parser.AddCommand("status", docStatus, docStatus, &optsStatus{})
	parser.AddCommand("watch", docWatch, docWatch, &optsWatch{})

	if _, err := parser.Parse(); err != nil {
		switch flagsErr := err.(type) {
		case *flags.Error:
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		default:
			os.Exit(1)
		}
	}
}
