package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		path string
		want RouteClass
	}{
		{name: "live segment", path: "/cameras/cam1/stream/seg1.ts", want: RouteLive},
		{name: "live playlist", path: "/cameras/cam1/stream/index.m3u8", want: RouteLive},
		{name: "nested live segment", path: "/cameras/cam1/stream/2024/01/seg1.ts", want: RouteLive},
		{name: "archive segment", path: "/cameras/cam1/archive/seg1.ts", want: RouteArchive},
		{name: "archive uuid camera", path: "/cameras/550e8400-e29b-41d4-a716-446655440000/archive/day1/seg9.ts", want: RouteArchive},
		{name: "camera root", path: "/cameras/cam1", want: RouteOther},
		{name: "unknown kind", path: "/cameras/cam1/snapshot/latest.jpg", want: RouteOther},
		{name: "stream without segment", path: "/cameras/cam1/stream/", want: RouteOther},
		{name: "missing camera id", path: "/cameras//stream/seg1.ts", want: RouteOther},
		{name: "outside media namespace", path: "/events", want: RouteOther},
		{name: "empty path", path: "", want: RouteOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.path))
		})
	}
}

func TestRouteClass_Policy(t *testing.T) {
	live := RouteLive.Policy()
	if assert.NotNil(t, live) {
		assert.Equal(t, "no-cache, no-store, must-revalidate", live.CacheControl)
		assert.Equal(t, "*", live.AllowOrigin)
	}

	archive := RouteArchive.Policy()
	if assert.NotNil(t, archive) {
		assert.Equal(t, "public, max-age=86400", archive.CacheControl)
		assert.Equal(t, "*", archive.AllowOrigin)
	}

	assert.Nil(t, RouteOther.Policy())
}

func TestRouteClass_String(t *testing.T) {
	assert.Equal(t, "live", RouteLive.String())
	assert.Equal(t, "archive", RouteArchive.String())
	assert.Equal(t, "other", RouteOther.String())
}
