package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoster(t *testing.T) {
	got, err := parseRoster("goblin:3, orc ,skeleton_archer:0,,")
	require.NoError(t, err)
	assert.Equal(t, []rosterEntry{
		{classID: "goblin", count: 3},
		{classID: "orc", count: 1},
		{classID: "skeleton_archer", count: 0},
	}, got)

	_, err = parseRoster("goblin:many")
	assert.Error(t, err)

	_, err = parseRoster("goblin:-2")
	assert.Error(t, err)

	empty, err := parseRoster("")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"warrior", "mage"}, splitList(" warrior,, mage "))
	assert.Nil(t, splitList(""))
}
