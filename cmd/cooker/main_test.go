package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/cooker/pkg/structs"
)

func TestParseDefinition(t *testing.T) {
	cases := []struct {
		Name   string
		Given  string
		Expect *structs.Definition
		Asset  string
	}{
		{"PathOnly", "libs/rock.hda", &structs.Definition{Path: "libs/rock.hda"}, "rock"},
		{"Named", "libs/rock.hda:boulder", &structs.Definition{Path: "libs/rock.hda", Name: "boulder"}, "boulder"},
		{"TrailingColon", "libs/rock.hda:", &structs.Definition{Path: "libs/rock.hda:"}, "rock"},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			def := parseDefinition(c.Given)

			assert.Equal(t, c.Expect, def)
			assert.Equal(t, c.Asset, assetName(def))
		})
	}
}

func TestManagerOptions(t *testing.T) {
	m := &optsManager{CookTimeLimit: 0.25, NoCooking: true, SessionSync: true}

	opts := m.options(&optsGeneral{Debug: true})

	assert.Equal(t, 250*time.Millisecond, opts.CookTimeLimit)
	assert.False(t, opts.CookingEnabled)
	assert.True(t, opts.AutoStartSession)
	assert.True(t, opts.SessionSync)
	assert.True(t, opts.Debug)
}
