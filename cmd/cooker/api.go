package main

import (
	"sync"
	"time"

	"github.com/voidshard/cooker/pkg/api/http/server"
)

const (
	docApi = `Tick a simulated engine & serve the status / control API over HTTP`
)

type optsAPI struct {
	optsGeneral
	optsJournal
	optsNotify
	optsManager

	Addr string `long:"addr" env:"ADDR" description:"Address to bind to" default:"localhost:8100"`
}

func (c *optsAPI) Execute(args []string) error {
	// Unlike run this never stops on idle; assets are driven over the API.
	rt, err := newRuntime(&c.optsGeneral, &c.optsManager, &c.optsJournal, &c.optsNotify)
	if err != nil {
		return err
	}
	defer rt.close()

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(c.FrameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				rt.svc.Tick()
			}
		}
	}()

	s := server.NewServer(c.Addr, c.Debug)
	err = s.ServeForever(rt.svc)

	close(done)
	wg.Wait()

	return err
}
