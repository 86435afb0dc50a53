package mcpnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesAny(t *testing.T) {
	assert.True(t, matchesAny([]string{"search_records"}, "search_records"))
	assert.True(t, matchesAny([]string{"search_*"}, "search_records"))
	assert.True(t, matchesAny([]string{"nope", "*_records"}, "search_records"))
	assert.False(t, matchesAny([]string{"search_*"}, "create_record"))
	assert.False(t, matchesAny(nil, "anything"))
}

func TestToolFilter(t *testing.T) {
	all := toolFilter{}
	assert.True(t, all.keep("anything"))

	include := toolFilter{include: []string{"search_*"}}
	assert.True(t, include.keep("search_records"))
	assert.False(t, include.keep("create_record"))

	exclude := toolFilter{exclude: []string{"delete_*"}}
	assert.True(t, exclude.keep("search_records"))
	assert.False(t, exclude.keep("delete_record"))

	// Exclude wins over include.
	both := toolFilter{include: []string{"*_record"}, exclude: []string{"delete_*"}}
	assert.True(t, both.keep("create_record"))
	assert.False(t, both.keep("delete_record"))
}
