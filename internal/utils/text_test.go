package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
	assert.Equal(t, NormalizeEmail("BOB@x.io"), NormalizeEmail("bob@X.IO"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestUUIDGenerator(t *testing.T) {
	g := NewUUIDGenerator()
	id := g.Generate()

	assert.True(t, IsValidUUID(id))
	assert.NotEqual(t, id, g.Generate())
	assert.False(t, IsValidUUID("42"))
}
