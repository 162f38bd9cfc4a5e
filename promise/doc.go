/*
Package promise implements values which become available later.

A Thenable is anything with a Then method in the style of a JavaScript
promise: it calls one of two reactions once its value is known or its
computation failed. Element construction accepts Thenables as children;
clients may use their own implementations or the Promise type of this
package.

    p, resolve, _ := promise.WithResolvers()
    go func() {
        resolve(fetch())
    }()
    v, err := p.Await(ctx)

Promises settle exactly once. Resolving a promise with another Thenable
makes it follow that Thenable. The outcome of a settled promise is a
result.Result.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package promise

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'dombuilder.promise'
func tracer() tracing.Trace {
	return tracing.Select("dombuilder.promise")
}
