package main

import (
	"log"
	"os"
	"os/signal"

	"github.com/voidshard/cooker/pkg/notify"
	"github.com/voidshard/cooker/pkg/structs"
)

const (
	docWatch = `Print notifications published to redis by run / api processes`
)

type optsWatch struct {
	optsNotify

	Progress bool `long:"progress" description:"Also print non-final progress updates"`
}

func (c *optsWatch) Execute(args []string) error {
	nopts, err := c.options()
	if err != nil {
		return err
	}
	if nopts.URL == "" {
		nopts.URL = defaultRedisURL
	}

	out := notify.NewLog(c.Progress)
	sub := notify.NewAsynq(nopts)
	defer sub.Close()

	sub.Subscribe(func(ns []*structs.Notification) error {
		for _, n := range ns {
			out.Notify(n)
		}
		return nil
	})

	errs := make(chan error, 1)
	go func() {
		errs <- sub.Run()
	}()

	exit := make(chan os.Signal, 1)
	signal.Notify(exit, os.Interrupt)

	select {
	case <-exit:
		log.Println("[Watch] interrupted")
		return nil
	case err := <-errs:
		return err
	}
}
