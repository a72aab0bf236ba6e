// Package client talks to a cooker HTTP server.
package client

import (
	"net/url"

	"github.com/voidshard/cooker/pkg/api/http/common"
	"github.com/voidshard/cooker/pkg/structs"
)

type Client struct {
	url *url.URL
}

func New(address string) (*Client, error) {
	u, err := url.Parse(address)
	return &Client{url: u}, err
}

func (c *Client) Recook(in []*structs.AssetRef) (int64, error) {
	addr := c.addr(common.API_RECOOK)
	var out common.UpdateResponse
	return out.Updated, genericPatch(addr, in, &out)
}

func (c *Client) Rebuild(in []*structs.AssetRef) (int64, error) {
	addr := c.addr(common.API_REBUILD)
	var out common.UpdateResponse
	return out.Updated, genericPatch(addr, in, &out)
}

func (c *Client) Delete(in []*structs.AssetRef) (int64, error) {
	addr := c.addr(common.API_DELETE)
	var out common.UpdateResponse
	return out.Updated, genericPatch(addr, in, &out)
}

func (c *Client) SetCookingEnabled(in *structs.CookingRequest) error {
	addr := c.addr(common.API_COOKING)
	var out structs.CookingRequest
	return genericPatch(addr, in, &out)
}

func (c *Client) Assets() ([]*structs.AssetSnapshot, error) {
	addr := c.addr(common.API_ASSETS)
	var out []*structs.AssetSnapshot
	return out, genericGet(addr, &out)
}

func (c *Client) Session() (*structs.SessionInfo, error) {
	addr := c.addr(common.API_SESSION)
	var out structs.SessionInfo
	return &out, genericGet(addr, &out)
}

func (c *Client) Tasks(q *structs.Query) ([]*structs.JournalEntry, error) {
	addr := c.addr(common.API_TASKS)
	setQueryString(addr, q)
	var out []*structs.JournalEntry
	return out, genericGet(addr, &out)
}

func (c *Client) Health() error {
	addr := c.addr(common.API_HEALTH)
	out := map[string]bool{}
	return genericGet(addr, &out)
}

func (c *Client) addr(path string) *url.URL {
	return &url.URL{Scheme: c.url.Scheme, Host: c.url.Host, Path: path}
}
