package http_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/axlwolf/task-manager/internal/adapter/http"
)

func TestCorsConfig(t *testing.T) {
	all := httpadapter.CorsConfig([]string{"*"})
	assert.True(t, all.AllowAllOrigins)
	require.NoError(t, all.Validate())

	empty := httpadapter.CorsConfig(nil)
	assert.True(t, empty.AllowAllOrigins)

	listed := httpadapter.CorsConfig([]string{"http://localhost:4200"})
	assert.False(t, listed.AllowAllOrigins)
	assert.Equal(t, []string{"http://localhost:4200"}, listed.AllowOrigins)
	assert.Contains(t, listed.AllowHeaders, "Accept-Language")
	require.NoError(t, listed.Validate())
}
