package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/hibiken/asynq"

	"github.com/voidshard/cooker/pkg/structs"
)

const (
	asyncNotifyQueue = "cooker:notify"
	asyncTaskPrefix  = "cooker:notify:"
	asyncAggMaxSize  = 100
	asyncAggMaxDelay = 1 * time.Second
	asyncAggRune     = '\n'
	asyncRetention   = 10 * time.Minute
)

// Asynq publishes notifications as tasks on a redis backed asynq queue, so editor UIs in
// other processes can show them.
//
// Progress notifications are grouped & delivered in batches; they're frequent & only the
// latest per client matters. License & session notifications are delivered one by one.
type Asynq struct {
	opts *Options

	cli *asynq.Client

	// set if Subscribe is called
	lock sync.Mutex
	mux  *asynq.ServeMux
	srv  *asynq.Server
}

func NewAsynq(opts *Options) *Asynq {
	return &Asynq{
		opts: opts,
		cli:  asynq.NewClient(redisOpts(opts)),
	}
}

func redisOpts(opts *Options) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: opts.URL, TLSConfig: opts.TLSConfig}
}

// Notify enqueues the notification.
func (a *Asynq) Notify(n *structs.Notification) error {
	if n == nil {
		return nil
	}
	task, opts, err := toTask(n)
	if err != nil {
		return err
	}
	_, err = a.cli.Enqueue(task, opts...)
	return err
}

// Subscribe registers a handler for all notification kinds. Call Run to start receiving.
func (a *Asynq) Subscribe(handler func([]*structs.Notification) error) {
	a.buildServer()

	fn := func(ctx context.Context, t *asynq.Task) error {
		ns, err := fromPayload(t.Payload())
		if err != nil {
			return err
		}
		if len(ns) == 0 {
			return nil
		}
		return handler(ns)
	}

	a.mux.HandleFunc(aggregatedTask(taskType(structs.NotifyProgress)), fn)
	a.mux.HandleFunc(taskType(structs.NotifyProgress), fn)
	a.mux.HandleFunc(taskType(structs.NotifyLicense), fn)
	a.mux.HandleFunc(taskType(structs.NotifySession), fn)
}

// Run processes notifications until Close is called.
func (a *Asynq) Run() error {
	if a.srv == nil {
		return fmt.Errorf("no subscribers registered")
	}
	return a.srv.Run(a.mux)
}

func (a *Asynq) Close() error {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.srv != nil {
		a.srv.Stop()
		a.srv.Shutdown()
	}
	return a.cli.Close()
}

func (a *Asynq) buildServer() {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.mux != nil {
		return
	}
	a.srv = asynq.NewServer(
		redisOpts(a.opts),
		asynq.Config{
			Queues:          map[string]int{asyncNotifyQueue: 1},
			GroupAggregator: asynq.GroupAggregatorFunc(aggregate),
			GroupMaxSize:    asyncAggMaxSize,
			GroupMaxDelay:   asyncAggMaxDelay,
		},
	)
	a.mux = asynq.NewServeMux()
}

// toTask builds the asynq task (& enqueue options) for a notification.
func toTask(n *structs.Notification) (*asynq.Task, []asynq.Option, error) {
	payload, err := json.Marshal(n)
	if err != nil {
		return nil, nil, err
	}

	typ := taskType(n.Kind)
	opts := []asynq.Option{
		asynq.Queue(asyncNotifyQueue),
		asynq.MaxRetry(0),
		asynq.Retention(asyncRetention),
	}
	if n.Kind == structs.NotifyProgress {
		opts = append(opts, asynq.Group(aggregatedTask(typ)))
	}
	return asynq.NewTask(typ, payload), opts, nil
}

// fromPayload decodes a single or aggregated payload.
func fromPayload(payload []byte) ([]*structs.Notification, error) {
	out := []*structs.Notification{}
	for _, line := range bytes.Split(payload, []byte{asyncAggRune}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		n := &structs.Notification{}
		err := json.Unmarshal(line, n)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func aggregate(group string, tasks []*asynq.Task) *asynq.Task {
	var b bytes.Buffer
	for _, t := range tasks {
		if t == nil || t.Payload() == nil {
			continue
		}
		b.Write(t.Payload())
		b.WriteRune(asyncAggRune)
	}
	return asynq.NewTask(group, b.Bytes())
}

func taskType(kind structs.NotificationKind) string {
	return asyncTaskPrefix + string(kind)
}

func aggregatedTask(group string) string {
	return fmt.Sprintf("aggregated:%s", group)
}
