package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteStyle_FollowsWriter(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, " o ", routeStyle(&buf, false)(" o "))
	assert.Equal(t, " o ", routeStyle(&buf, true)(" o "), "non-terminal writers stay plain")
}
