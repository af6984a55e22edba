package services

import (
	"strings"
	"testing"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusrent/services/logger"
)

func Test_ImageResolver(t *testing.T) {
	cld, err := cloudinary.NewFromParams("demo", "key", "secret")
	require.NoError(t, err)
	r := NewImageResolver(cld, logger.NewDefaultLogger(logger.ErrorLevel))

	url := r.Resolve("rooms/r1")
	assert.True(t, strings.HasPrefix(url, "https://"), url)
	assert.Contains(t, url, "demo")
	assert.True(t, strings.HasSuffix(url, "rooms/r1"), url)

	assert.Equal(t, "https://cdn.example.com/a.jpg", r.Resolve("https://cdn.example.com/a.jpg"))
	assert.Equal(t, "", r.Resolve("  "))

	refs := []string{"rooms/r1", "http://x/y.png"}
	out := r.ResolveAll(refs)
	assert.Equal(t, "rooms/r1", refs[0], "input is not modified")
	assert.Equal(t, "http://x/y.png", out[1])
}

func Test_ImageResolver_WithoutCloudinary(t *testing.T) {
	r := NewImageResolver(nil, logger.NewDefaultLogger(logger.ErrorLevel))
	assert.Equal(t, "rooms/r1", r.Resolve("rooms/r1"))

	var nilResolver *ImageResolver
	assert.Equal(t, []string{"a"}, nilResolver.ResolveAll([]string{"a"}))
}
