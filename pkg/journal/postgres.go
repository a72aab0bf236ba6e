package journal

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voidshard/cooker/pkg/structs"
)

const (
	tableJournal  = "journal"
	journalFields = "id, client_id, client_name, kind, state, result, node_id, status_text, created_at"
	journalArgs   = 9
)

// Postgres is a journal that writes to postgres.
//
// Entries are written asynchronously in batches by a background routine.
type Postgres struct {
	opts *Options
	pool *pgxpool.Pool

	entries chan *structs.JournalEntry
	errs    chan error
	wg      sync.WaitGroup
	once    sync.Once

	// guards sends on entries against Close
	lock   sync.RWMutex
	closed bool
}

// NewPostgres returns a new Postgres journal.
func NewPostgres(opts *Options) (*Postgres, error) {
	opts.setDefaults()
	if opts.Migrate {
		err := Migrate(opts)
		if err != nil {
			return nil, err
		}
	}

	pool, err := pgxpool.New(context.Background(), opts.url())
	if err != nil {
		return nil, err
	}

	p := &Postgres{
		opts:    opts,
		pool:    pool,
		entries: make(chan *structs.JournalEntry, opts.BufferSize),
		errs:    make(chan error),
	}

	p.wg.Add(2)
	go p.logErrors()
	go p.writer()

	return p, nil
}

// Record queues an entry. If the buffer is full the entry is dropped.
func (p *Postgres) Record(e *structs.JournalEntry) {
	if e == nil {
		return
	}

	p.lock.RLock()
	defer p.lock.RUnlock()
	if p.closed {
		log.Println("[Journal] closed, dropping entry", e.ID)
		return
	}

	select {
	case p.entries <- e:
	default:
		log.Println("[Journal] buffer full, dropping entry", e.ID)
	}
}

// Close flushes queued entries & shuts down the pool.
func (p *Postgres) Close() error {
	p.once.Do(func() {
		p.lock.Lock()
		p.closed = true
		close(p.entries)
		p.lock.Unlock()

		p.wg.Wait()
		if p.pool != nil {
			p.pool.Close()
		}
	})
	return nil
}

// Entries returns entries matching the given query
func (p *Postgres) Entries(q *structs.Query) ([]*structs.JournalEntry, error) {
	q.Sanitize()
	where, args := toSqlQuery(map[string][]string{
		"client_id": q.ClientIDs,
		"id":        q.RequestIDs,
		"kind":      kindsToStrings(q.Kinds),
		"state":     statesToStrings(q.States),
	},
		q.CreatedBefore, q.CreatedAfter,
	)
	args = append(args, q.Limit, q.Offset)

	qstr := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d;`,
		journalFields, tableJournal, where, len(args)-1, len(args),
	)

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, qstr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*structs.JournalEntry{}
	for rows.Next() {
		e := structs.JournalEntry{}
		err = rows.Scan(
			&e.ID,
			&e.ClientID,
			&e.ClientName,
			&e.Kind,
			&e.State,
			&e.Result,
			&e.NodeID,
			&e.StatusText,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, &e)
	}

	return out, rows.Err()
}

// writer batches queued entries into inserts until the entries channel is closed.
func (p *Postgres) writer() {
	defer p.wg.Done()
	defer close(p.errs)

	ticker := time.NewTicker(p.opts.FlushInterval)
	defer ticker.Stop()

	batch := []*structs.JournalEntry{}
	flush := func() {
		if len(batch) == 0 {
			return
		}
		err := p.insert(batch)
		if err != nil {
			p.errs <- err
		}
		batch = []*structs.JournalEntry{}
	}

	for {
		select {
		case e, ok := <-p.entries:
			if !ok {
				flush()
				return
			}
			batch = append(batch, e)
			if len(batch) >= p.opts.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

func (p *Postgres) logErrors() {
	defer p.wg.Done()
	for err := range p.errs {
		log.Println("[Journal]", err)
	}
}

// insert writes the given entries in a single statement
func (p *Postgres) insert(in []*structs.JournalEntry) error {
	qstr, args := toInsertSql(in)

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, qstr, args...)
	return err
}

// toInsertSql builds a multi row insert for the given entries
func toInsertSql(in []*structs.JournalEntry) (string, []interface{}) {
	strs, args := []string{}, []interface{}{}
	for _, e := range in {
		s, a := toEntrySqlArgs(len(args)+1, e)
		strs = append(strs, s)
		args = append(args, a...)
	}
	return fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES %s ON CONFLICT (id) DO NOTHING;`,
		tableJournal, journalFields, strings.Join(strs, ","), // join so its (),(),() etc
	), args
}

// toSqlQuery converts query data into a SQL WHERE clause & args
func toSqlQuery(in map[string][]string, crB, crA int64) (string, []interface{}) {
	if in == nil {
		in = map[string][]string{}
	}

	// sort keys so the generated SQL is stable
	keys := []string{}
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	and := []string{}
	args := []interface{}{}
	for _, k := range keys {
		v := in[k]
		if len(v) == 0 {
			continue
		}
		s, a := toSqlIn(len(args)+1, k, v)
		and = append(and, s)
		args = append(args, a...)
	}
	if crB > 0 { // created before
		args = append(args, crB)
		and = append(and, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	if crA > 0 { // created after
		args = append(args, crA)
		and = append(and, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if len(and) == 0 {
		return "", args
	}
	return fmt.Sprintf("WHERE %s", strings.Join(and, " AND ")), args
}

// toSqlIn converts a list of strings into a SQL IN clause
func toSqlIn(offset int, field string, args []string) (string, []interface{}) {
	if len(args) == 0 {
		return "", []interface{}{}
	}
	vals := []string{}
	ifargs := []interface{}{}
	for i, a := range args {
		vals = append(vals, fmt.Sprintf("$%d", i+offset))
		ifargs = append(ifargs, a)
	}
	return fmt.Sprintf("%s IN (%s)", field, strings.Join(vals, ", ")), ifargs
}

// toEntrySqlArgs converts an entry into a SQL values string & args (for an insert)
func toEntrySqlArgs(offset int, e *structs.JournalEntry) (string, []interface{}) {
	vals := []string{}
	for i := offset; i < journalArgs+offset; i++ {
		vals = append(vals, fmt.Sprintf("$%d", i))
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = timeNow()
	}
	return fmt.Sprintf("(%s)", strings.Join(vals, ", ")), []interface{}{
		e.ID,
		e.ClientID,
		e.ClientName,
		string(e.Kind),
		string(e.State),
		int32(e.Result),
		int32(e.NodeID),
		e.StatusText,
		e.CreatedAt,
	}
}

func kindsToStrings(in []structs.TaskKind) []string {
	if len(in) == 0 {
		return nil
	}
	out := []string{}
	for _, k := range in {
		out = append(out, string(k))
	}
	return out
}

func statesToStrings(in []structs.TaskState) []string {
	if len(in) == 0 {
		return nil
	}
	out := []string{}
	for _, s := range in {
		out = append(out, string(s))
	}
	return out
}

// timeNow returns the current time in unix seconds
var timeNow = func() int64 {
	return time.Now().Unix()
}
