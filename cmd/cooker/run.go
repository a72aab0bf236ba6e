package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"
)

const (
	docRun = `Register assets against a simulated engine and tick frames until everything is cooked`
)

type optsRun struct {
	optsGeneral
	optsJournal
	optsNotify
	optsManager

	Frames int64 `long:"frames" env:"FRAMES" description:"Stop after this many frames (0 waits for idle)"`
}

func (c *optsRun) Execute(args []string) error {
	if len(c.Args.Assets) == 0 {
		return fmt.Errorf("at least one asset is required")
	}

	rt, err := newRuntime(&c.optsGeneral, &c.optsManager, &c.optsJournal, &c.optsNotify)
	if err != nil {
		return err
	}
	defer rt.close()

	exit := make(chan os.Signal, 1)
	signal.Notify(exit, os.Interrupt)

	ticker := time.NewTicker(c.FrameInterval)
	defer ticker.Stop()

	var frames int64
	for {
		select {
		case <-exit:
			log.Println("[Run] interrupted after", frames, "frames")
			return report(rt)
		case <-ticker.C:
		}

		rt.svc.Tick()
		frames++

		if c.Frames > 0 && frames >= c.Frames {
			break
		}
		if c.Frames <= 0 && rt.svc.Idle() {
			break
		}
	}

	log.Println("[Run] stopped after", frames, "frames")
	return report(rt)
}

func report(rt *runtime) error {
	assets, err := rt.svc.Assets()
	if err != nil {
		return err
	}
	for _, a := range assets {
		fmt.Printf("%s\t%s\tnode=%d\tcooks=%d\tok=%v\n", a.Name, a.State, a.NodeID, a.CookCount, a.LastCookOK)
	}
	return nil
}
