package main

import (
	"encoding/json"
	"fmt"

	"github.com/voidshard/cooker/pkg/api/http/client"
	"github.com/voidshard/cooker/pkg/structs"
)

const (
	docStatus = `Print the session, assets & (optionally) task journal of a running api server`
)

type optsStatus struct {
	Addr string `long:"addr" env:"ADDR" description:"Address of the api server" default:"http://localhost:8100"`

	Tasks     bool     `long:"tasks" description:"Include task journal entries"`
	Limit     int      `long:"limit" description:"Max journal entries" default:"20"`
	ClientIDs []string `long:"client-id" description:"Only journal entries of this client (repeatable)"`
	Kinds     []string `long:"kind" description:"Only journal entries of this task kind (repeatable)"`
}

type statusReport struct {
	Session *structs.SessionInfo     `json:"session"`
	Assets  []*structs.AssetSnapshot `json:"assets"`
	Tasks   []*structs.JournalEntry  `json:"tasks,omitempty"`
}

func (c *optsStatus) Execute(args []string) error {
	cli, err := client.New(c.Addr)
	if err != nil {
		return err
	}

	report := &statusReport{}

	report.Session, err = cli.Session()
	if err != nil {
		return err
	}

	report.Assets, err = cli.Assets()
	if err != nil {
		return err
	}

	if c.Tasks {
		q := &structs.Query{Limit: c.Limit, ClientIDs: c.ClientIDs}
		for _, k := range c.Kinds {
			q.Kinds = append(q.Kinds, structs.TaskKind(k))
		}
		report.Tasks, err = cli.Tasks(q)
		if err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
