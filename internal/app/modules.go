package app

import (
	"github.com/vk/goidioms/internal/registry"
	"github.com/vk/goidioms/modules/cleanup"
	"github.com/vk/goidioms/modules/concurrency"
	"github.com/vk/goidioms/modules/copysem"
	"github.com/vk/goidioms/modules/errorsafety"
	"github.com/vk/goidioms/modules/generics"
	"github.com/vk/goidioms/modules/interfaces"
	"github.com/vk/goidioms/modules/ordering"
	"github.com/vk/goidioms/modules/pipelines"
	"github.com/vk/goidioms/modules/solid"
	"github.com/vk/goidioms/modules/streams"
	"github.com/vk/goidioms/modules/typeswitch"
)

// coreSamples is the definitive list of all sample modules compiled into
// the binary. Adding a demonstration means adding its package here and
// nothing else; each module owns its display name and order key.
var coreSamples = []registry.Module{
	&cleanup.Module{},
	&generics.Module{},
	&interfaces.Module{},
	&typeswitch.Module{},
	&copysem.Module{},
	&errorsafety.Module{},
	&concurrency.Module{},
	&pipelines.Module{},
	&solid.Module{},
	&ordering.Module{},
	&streams.Module{},
}
