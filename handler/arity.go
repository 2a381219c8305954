// Copyright 2025 The Helix Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package handler

import (
	"github.com/helixweb/helix/respond"
	"github.com/helixweb/helix/router"
)

// H0 adapts a handler with no extractor parameters.
func H0[R respond.Responder](fn func(*router.Context) (R, error)) *Typed {
	spec := buildSpec(nil, responderName[R]())
	return &Typed{spec: spec, fn: func(c *router.Context) {
		r, err := fn(c)
		finish(c, r, err)
	}}
}

// H1 adapts a typed handler with one extractor parameter.
func H1[P1 any, R respond.Responder, PP1 Param[P1]](fn func(*router.Context, P1) (R, error)) *Typed {
	spec := buildSpec([]param{paramOf[P1, PP1]()}, responderName[R]())
	return &Typed{spec: spec, fn: func(c *router.Context) {
		var p1 P1
		if !run(c, PP1(&p1)) {
			return
		}
		r, err := fn(c, p1)
		finish(c, r, err)
	}}
}

// H2 adapts a typed handler with two extractor parameters.
func H2[P1, P2 any, R respond.Responder, PP1 Param[P1], PP2 Param[P2]](fn func(*router.Context, P1, P2) (R, error)) *Typed {
	spec := buildSpec([]param{paramOf[P1, PP1](), paramOf[P2, PP2]()}, responderName[R]())
	return &Typed{spec: spec, fn: func(c *router.Context) {
		var p1 P1
		var p2 P2
		if !run(c, PP1(&p1)) {
			return
		}
		if !run(c, PP2(&p2)) {
			return
		}
		r, err := fn(c, p1, p2)
		finish(c, r, err)
	}}
}

// H3 adapts a typed handler with three extractor parameters.
func H3[P1, P2, P3 any, R respond.Responder, PP1 Param[P1], PP2 Param[P2], PP3 Param[P3]](fn func(*router.Context, P1, P2, P3) (R, error)) *Typed {
	spec := buildSpec([]param{paramOf[P1, PP1](), paramOf[P2, PP2](), paramOf[P3, PP3]()}, responderName[R]())
	return &Typed{spec: spec, fn: func(c *router.Context) {
		var p1 P1
		var p2 P2
		var p3 P3
		if !run(c, PP1(&p1)) {
			return
		}
		if !run(c, PP2(&p2)) {
			return
		}
		if !run(c, PP3(&p3)) {
			return
		}
		r, err := fn(c, p1, p2, p3)
		finish(c, r, err)
	}}
}

// H4 adapts a typed handler with four extractor parameters.
func H4[P1, P2, P3, P4 any, R respond.Responder, PP1 Param[P1], PP2 Param[P2], PP3 Param[P3], PP4 Param[P4]](fn func(*router.Context, P1, P2, P3, P4) (R, error)) *Typed {
	spec := buildSpec([]param{paramOf[P1, PP1](), paramOf[P2, PP2](), paramOf[P3, PP3](), paramOf[P4, PP4]()}, responderName[R]())
	return &Typed{spec: spec, fn: func(c *router.Context) {
		var p1 P1
		var p2 P2
		var p3 P3
		var p4 P4
		if !run(c, PP1(&p1)) {
			return
		}
		if !run(c, PP2(&p2)) {
			return
		}
		if !run(c, PP3(&p3)) {
			return
		}
		if !run(c, PP4(&p4)) {
			return
		}
		r, err := fn(c, p1, p2, p3, p4)
		finish(c, r, err)
	}}
}

// H5 adapts a typed handler with five extractor parameters.
func H5[P1, P2, P3, P4, P5 any, R respond.Responder, PP1 Param[P1], PP2 Param[P2], PP3 Param[P3], PP4 Param[P4], PP5 Param[P5]](fn func(*router.Context, P1, P2, P3, P4, P5) (R, error)) *Typed {
	spec := buildSpec([]param{paramOf[P1, PP1](), paramOf[P2, PP2](), paramOf[P3, PP3](), paramOf[P4, PP4](), paramOf[P5, PP5]()}, responderName[R]())
	return &Typed{spec: spec, fn: func(c *router.Context) {
		var p1 P1
		var p2 P2
		var p3 P3
		var p4 P4
		var p5 P5
		if !run(c, PP1(&p1)) {
			return
		}
		if !run(c, PP2(&p2)) {
			return
		}
		if !run(c, PP3(&p3)) {
			return
		}
		if !run(c, PP4(&p4)) {
			return
		}
		if !run(c, PP5(&p5)) {
			return
		}
		r, err := fn(c, p1, p2, p3, p4, p5)
		finish(c, r, err)
	}}
}

// H6 adapts a typed handler with six extractor parameters.
func H6[P1, P2, P3, P4, P5, P6 any, R respond.Responder, PP1 Param[P1], PP2 Param[P2], PP3 Param[P3], PP4 Param[P4], PP5 Param[P5], PP6 Param[P6]](fn func(*router.Context, P1, P2, P3, P4, P5, P6) (R, error)) *Typed {
	spec := buildSpec([]param{paramOf[P1, PP1](), paramOf[P2, PP2](), paramOf[P3, PP3](), paramOf[P4, PP4](), paramOf[P5, PP5](), paramOf[P6, PP6]()}, responderName[R]())
	return &Typed{spec: spec, fn: func(c *router.Context) {
		var p1 P1
		var p2 P2
		var p3 P3
		var p4 P4
		var p5 P5
		var p6 P6
		if !run(c, PP1(&p1)) {
			return
		}
		if !run(c, PP2(&p2)) {
			return
		}
		if !run(c, PP3(&p3)) {
			return
		}
		if !run(c, PP4(&p4)) {
			return
		}
		if !run(c, PP5(&p5)) {
			return
		}
		if !run(c, PP6(&p6)) {
			return
		}
		r, err := fn(c, p1, p2, p3, p4, p5, p6)
		finish(c, r, err)
	}}
}

// H7 adapts a typed handler with seven extractor parameters.
func H7[P1, P2, P3, P4, P5, P6, P7 any, R respond.Responder, PP1 Param[P1], PP2 Param[P2], PP3 Param[P3], PP4 Param[P4], PP5 Param[P5], PP6 Param[P6], PP7 Param[P7]](fn func(*router.Context, P1, P2, P3, P4, P5, P6, P7) (R, error)) *Typed {
	spec := buildSpec([]param{paramOf[P1, PP1](), paramOf[P2, PP2](), paramOf[P3, PP3](), paramOf[P4, PP4](), paramOf[P5, PP5](), paramOf[P6, PP6](), paramOf[P7, PP7]()}, responderName[R]())
	return &Typed{spec: spec, fn: func(c *router.Context) {
		var p1 P1
		var p2 P2
		var p3 P3
		var p4 P4
		var p5 P5
		var p6 P6
		var p7 P7
		if !run(c, PP1(&p1)) {
			return
		}
		if !run(c, PP2(&p2)) {
			return
		}
		if !run(c, PP3(&p3)) {
			return
		}
		if !run(c, PP4(&p4)) {
			return
		}
		if !run(c, PP5(&p5)) {
			return
		}
		if !run(c, PP6(&p6)) {
			return
		}
		if !run(c, PP7(&p7)) {
			return
		}
		r, err := fn(c, p1, p2, p3, p4, p5, p6, p7)
		finish(c, r, err)
	}}
}

// H8 adapts a typed handler with eight extractor parameters.
func H8[P1, P2, P3, P4, P5, P6, P7, P8 any, R respond.Responder, PP1 Param[P1], PP2 Param[P2], PP3 Param[P3], PP4 Param[P4], PP5 Param[P5], PP6 Param[P6], PP7 Param[P7], PP8 Param[P8]](fn func(*router.Context, P1, P2, P3, P4, P5, P6, P7, P8) (R, error)) *Typed {
	spec := buildSpec([]param{paramOf[P1, PP1](), paramOf[P2, PP2](), paramOf[P3, PP3](), paramOf[P4, PP4](), paramOf[P5, PP5](), paramOf[P6, PP6](), paramOf[P7, PP7](), paramOf[P8, PP8]()}, responderName[R]())
	return &Typed{spec: spec, fn: func(c *router.Context) {
		var p1 P1
		var p2 P2
		var p3 P3
		var p4 P4
		var p5 P5
		var p6 P6
		var p7 P7
		var p8 P8
		if !run(c, PP1(&p1)) {
			return
		}
		if !run(c, PP2(&p2)) {
			return
		}
		if !run(c, PP3(&p3)) {
			return
		}
		if !run(c, PP4(&p4)) {
			return
		}
		if !run(c, PP5(&p5)) {
			return
		}
		if !run(c, PP6(&p6)) {
			return
		}
		if !run(c, PP7(&p7)) {
			return
		}
		if !run(c, PP8(&p8)) {
			return
		}
		r, err := fn(c, p1, p2, p3, p4, p5, p6, p7, p8)
		finish(c, r, err)
	}}
}

// H9 adapts a typed handler with nine extractor parameters.
func H9[P1, P2, P3, P4, P5, P6, P7, P8, P9 any, R respond.Responder, PP1 Param[P1], PP2 Param[P2], PP3 Param[P3], PP4 Param[P4], PP5 Param[P5], PP6 Param[P6], PP7 Param[P7], PP8 Param[P8], PP9 Param[P9]](fn func(*router.Context, P1, P2, P3, P4, P5, P6, P7, P8, P9) (R, error)) *Typed {
	spec := buildSpec([]param{paramOf[P1, PP1](), paramOf[P2, PP2](), paramOf[P3, PP3](), paramOf[P4, PP4](), paramOf[P5, PP5](), paramOf[P6, PP6](), paramOf[P7, PP7](), paramOf[P8, PP8](), paramOf[P9, PP9]()}, responderName[R]())
	return &Typed{spec: spec, fn: func(c *router.Context) {
		var p1 P1
		var p2 P2
		var p3 P3
		var p4 P4
		var p5 P5
		var p6 P6
		var p7 P7
		var p8 P8
		var p9 P9
		if !run(c, PP1(&p1)) {
			return
		}
		if !run(c, PP2(&p2)) {
			return
		}
		if !run(c, PP3(&p3)) {
			return
		}
		if !run(c, PP4(&p4)) {
			return
		}
		if !run(c, PP5(&p5)) {
			return
		}
		if !run(c, PP6(&p6)) {
			return
		}
		if !run(c, PP7(&p7)) {
			return
		}
		if !run(c, PP8(&p8)) {
			return
		}
		if !run(c, PP9(&p9)) {
			return
		}
		r, err := fn(c, p1, p2, p3, p4, p5, p6, p7, p8, p9)
		finish(c, r, err)
	}}
}

// H10 adapts a typed handler with ten extractor parameters.
func H10[P1, P2, P3, P4, P5, P6, P7, P8, P9, P10 any, R respond.Responder, PP1 Param[P1], PP2 Param[P2], PP3 Param[P3], PP4 Param[P4], PP5 Param[P5], PP6 Param[P6], PP7 Param[P7], PP8 Param[P8], PP9 Param[P9], PP10 Param[P10]](fn func(*router.Context, P1, P2, P3, P4, P5, P6, P7, P8, P9, P10) (R, error)) *Typed {
	spec := buildSpec([]param{paramOf[P1, PP1](), paramOf[P2, PP2](), paramOf[P3, PP3](), paramOf[P4, PP4](), paramOf[P5, PP5](), paramOf[P6, PP6](), paramOf[P7, PP7](), paramOf[P8, PP8](), paramOf[P9, PP9](), paramOf[P10, PP10]()}, responderName[R]())
	return &Typed{spec: spec, fn: func(c *router.Context) {
		var p1 P1
		var p2 P2
		var p3 P3
		var p4 P4
		var p5 P5
		var p6 P6
		var p7 P7
		var p8 P8
		var p9 P9
		var p10 P10
		if !run(c, PP1(&p1)) {
			return
		}
		if !run(c, PP2(&p2)) {
			return
		}
		if !run(c, PP3(&p3)) {
			return
		}
		if !run(c, PP4(&p4)) {
			return
		}
		if !run(c, PP5(&p5)) {
			return
		}
		if !run(c, PP6(&p6)) {
			return
		}
		if !run(c, PP7(&p7)) {
			return
		}
		if !run(c, PP8(&p8)) {
			return
		}
		if !run(c, PP9(&p9)) {
			return
		}
		if !run(c, PP10(&p10)) {
			return
		}
		r, err := fn(c, p1, p2, p3, p4, p5, p6, p7, p8, p9, p10)
		finish(c, r, err)
	}}
}

// H11 adapts a typed handler with eleven extractor parameters.
func H11[P1, P2, P3, P4, P5, P6, P7, P8, P9, P10, P11 any, R respond.Responder, PP1 Param[P1], PP2 Param[P2], PP3 Param[P3], PP4 Param[P4], PP5 Param[P5], PP6 Param[P6], PP7 Param[P7], PP8 Param[P8], PP9 Param[P9], PP10 Param[P10], PP11 Param[P11]](fn func(*router.Context, P1, P2, P3, P4, P5, P6, P7, P8, P9, P10, P11) (R, error)) *Typed {
	spec := buildSpec([]param{paramOf[P1, PP1](), paramOf[P2, PP2](), paramOf[P3, PP3](), paramOf[P4, PP4](), paramOf[P5, PP5](), paramOf[P6, PP6](), paramOf[P7, PP7](), paramOf[P8, PP8](), paramOf[P9, PP9](), paramOf[P10, PP10](), paramOf[P11, PP11]()}, responderName[R]())
	return &Typed{spec: spec, fn: func(c *router.Context) {
		var p1 P1
		var p2 P2
		var p3 P3
		var p4 P4
		var p5 P5
		var p6 P6
		var p7 P7
		var p8 P8
		var p9 P9
		var p10 P10
		var p11 P11
		if !run(c, PP1(&p1)) {
			return
		}
		if !run(c, PP2(&p2)) {
			return
		}
		if !run(c, PP3(&p3)) {
			return
		}
		if !run(c, PP4(&p4)) {
			return
		}
		if !run(c, PP5(&p5)) {
			return
		}
		if !run(c, PP6(&p6)) {
			return
		}
		if !run(c, PP7(&p7)) {
			return
		}
		if !run(c, PP8(&p8)) {
			return
		}
		if !run(c, PP9(&p9)) {
			return
		}
		if !run(c, PP10(&p10)) {
			return
		}
		if !run(c, PP11(&p11)) {
			return
		}
		r, err := fn(c, p1, p2, p3, p4, p5, p6, p7, p8, p9, p10, p11)
		finish(c, r, err)
	}}
}

// H12 adapts a typed handler with twelve extractor parameters.
func H12[P1, P2, P3, P4, P5, P6, P7, P8, P9, P10, P11, P12 any, R respond.Responder, PP1 Param[P1], PP2 Param[P2], PP3 Param[P3], PP4 Param[P4], PP5 Param[P5], PP6 Param[P6], PP7 Param[P7], PP8 Param[P8], PP9 Param[P9], PP10 Param[P10], PP11 Param[P11], PP12 Param[P12]](fn func(*router.Context, P1, P2, P3, P4, P5, P6, P7, P8, P9, P10, P11, P12) (R, error)) *Typed {
	spec := buildSpec([]param{paramOf[P1, PP1](), paramOf[P2, PP2](), paramOf[P3, PP3](), paramOf[P4, PP4](), paramOf[P5, PP5](), paramOf[P6, PP6](), paramOf[P7, PP7](), paramOf[P8, PP8](), paramOf[P9, PP9](), paramOf[P10, PP10](), paramOf[P11, PP11](), paramOf[P12, PP12]()}, responderName[R]())
	return &Typed{spec: spec, fn: func(c *router.Context) {
		var p1 P1
		var p2 P2
		var p3 P3
		var p4 P4
		var p5 P5
		var p6 P6
		var p7 P7
		var p8 P8
		var p9 P9
		var p10 P10
		var p11 P11
		var p12 P12
		if !run(c, PP1(&p1)) {
			return
		}
		if !run(c, PP2(&p2)) {
			return
		}
		if !run(c, PP3(&p3)) {
			return
		}
		if !run(c, PP4(&p4)) {
			return
		}
		if !run(c, PP5(&p5)) {
			return
		}
		if !run(c, PP6(&p6)) {
			return
		}
		if !run(c, PP7(&p7)) {
			return
		}
		if !run(c, PP8(&p8)) {
			return
		}
		if !run(c, PP9(&p9)) {
			return
		}
		if !run(c, PP10(&p10)) {
			return
		}
		if !run(c, PP11(&p11)) {
			return
		}
		if !run(c, PP12(&p12)) {
			return
		}
		r, err := fn(c, p1, p2, p3, p4, p5, p6, p7, p8, p9, p10, p11, p12)
		finish(c, r, err)
	}}
}

// H13 adapts a typed handler with thirteen extractor parameters.
func H13[P1, P2, P3, P4, P5, P6, P7, P8, P9, P10, P11, P12, P13 any, R respond.Responder, PP1 Param[P1], PP2 Param[P2], PP3 Param[P3], PP4 Param[P4], PP5 Param[P5], PP6 Param[P6], PP7 Param[P7], PP8 Param[P8], PP9 Param[P9], PP10 Param[P10], PP11 Param[P11], PP12 Param[P12], PP13 Param[P13]](fn func(*router.Context, P1, P2, P3, P4, P5, P6, P7, P8, P9, P10, P11, P12, P13) (R, error)) *Typed {
	spec := buildSpec([]param{paramOf[P1, PP1](), paramOf[P2, PP2](), paramOf[P3, PP3](), paramOf[P4, PP4](), paramOf[P5, PP5](), paramOf[P6, PP6](), paramOf[P7, PP7](), paramOf[P8, PP8](), paramOf[P9, PP9](), paramOf[P10, PP10](), paramOf[P11, PP11](), paramOf[P12, PP12](), paramOf[P13, PP13]()}, responderName[R]())
	return &Typed{spec: spec, fn: func(c *router.Context) {
		var p1 P1
		var p2 P2
		var p3 P3
		var p4 P4
		var p5 P5
		var p6 P6
		var p7 P7
		var p8 P8
		var p9 P9
		var p10 P10
		var p11 P11
		var p12 P12
		var p13 P13
		if !run(c, PP1(&p1)) {
			return
		}
		if !run(c, PP2(&p2)) {
			return
		}
		if !run(c, PP3(&p3)) {
			return
		}
		if !run(c, PP4(&p4)) {
			return
		}
		if !run(c, PP5(&p5)) {
			return
		}
		if !run(c, PP6(&p6)) {
			return
		}
		if !run(c, PP7(&p7)) {
			return
		}
		if !run(c, PP8(&p8)) {
			return
		}
		if !run(c, PP9(&p9)) {
			return
		}
		if !run(c, PP10(&p10)) {
			return
		}
		if !run(c, PP11(&p11)) {
			return
		}
		if !run(c, PP12(&p12)) {
			return
		}
		if !run(c, PP13(&p13)) {
			return
		}
		r, err := fn(c, p1, p2, p3, p4, p5, p6, p7, p8, p9, p10, p11, p12, p13)
		finish(c, r, err)
	}}
}

// H14 adapts a typed handler with fourteen extractor parameters.
func H14[P1, P2, P3, P4, P5, P6, P7, P8, P9, P10, P11, P12, P13, P14 any, R respond.Responder, PP1 Param[P1], PP2 Param[P2], PP3 Param[P3], PP4 Param[P4], PP5 Param[P5], PP6 Param[P6], PP7 Param[P7], PP8 Param[P8], PP9 Param[P9], PP10 Param[P10], PP11 Param[P11], PP12 Param[P12], PP13 Param[P13], PP14 Param[P14]](fn func(*router.Context, P1, P2, P3, P4, P5, P6, P7, P8, P9, P10, P11, P12, P13, P14) (R, error)) *Typed {
	spec := buildSpec([]param{paramOf[P1, PP1](), paramOf[P2, PP2](), paramOf[P3, PP3](), paramOf[P4, PP4](), paramOf[P5, PP5](), paramOf[P6, PP6](), paramOf[P7, PP7](), paramOf[P8, PP8](), paramOf[P9, PP9](), paramOf[P10, PP10](), paramOf[P11, PP11](), paramOf[P12, PP12](), paramOf[P13, PP13](), paramOf[P14, PP14]()}, responderName[R]())
	return &Typed{spec: spec, fn: func(c *router.Context) {
		var p1 P1
		var p2 P2
		var p3 P3
		var p4 P4
		var p5 P5
		var p6 P6
		var p7 P7
		var p8 P8
		var p9 P9
		var p10 P10
		var p11 P11
		var p12 P12
		var p13 P13
		var p14 P14
		if !run(c, PP1(&p1)) {
			return
		}
		if !run(c, PP2(&p2)) {
			return
		}
		if !run(c, PP3(&p3)) {
			return
		}
		if !run(c, PP4(&p4)) {
			return
		}
		if !run(c, PP5(&p5)) {
			return
		}
		if !run(c, PP6(&p6)) {
			return
		}
		if !run(c, PP7(&p7)) {
			return
		}
		if !run(c, PP8(&p8)) {
			return
		}
		if !run(c, PP9(&p9)) {
			return
		}
		if !run(c, PP10(&p10)) {
			return
		}
		if !run(c, PP11(&p11)) {
			return
		}
		if !run(c, PP12(&p12)) {
			return
		}
		if !run(c, PP13(&p13)) {
			return
		}
		if !run(c, PP14(&p14)) {
			return
		}
		r, err := fn(c, p1, p2, p3, p4, p5, p6, p7, p8, p9, p10, p11, p12, p13, p14)
		finish(c, r, err)
	}}
}

// H15 adapts a typed handler with fifteen extractor parameters.
func H15[P1, P2, P3, P4, P5, P6, P7, P8, P9, P10, P11, P12, P13, P14, P15 any, R respond.Responder, PP1 Param[P1], PP2 Param[P2], PP3 Param[P3], PP4 Param[P4], PP5 Param[P5], PP6 Param[P6], PP7 Param[P7], PP8 Param[P8], PP9 Param[P9], PP10 Param[P10], PP11 Param[P11], PP12 Param[P12], PP13 Param[P13], PP14 Param[P14], PP15 Param[P15]](fn func(*router.Context, P1, P2, P3, P4, P5, P6, P7, P8, P9, P10, P11, P12, P13, P14, P15) (R, error)) *Typed {
	spec := buildSpec([]param{paramOf[P1, PP1](), paramOf[P2, PP2](), paramOf[P3, PP3](), paramOf[P4, PP4](), paramOf[P5, PP5](), paramOf[P6, PP6](), paramOf[P7, PP7](), paramOf[P8, PP8](), paramOf[P9, PP9](), paramOf[P10, PP10](), paramOf[P11, PP11](), paramOf[P12, PP12](), paramOf[P13, PP13](), paramOf[P14, PP14](), paramOf[P15, PP15]()}, responderName[R]())
	return &Typed{spec: spec, fn: func(c *router.Context) {
		var p1 P1
		var p2 P2
		var p3 P3
		var p4 P4
		var p5 P5
		var p6 P6
		var p7 P7
		var p8 P8
		var p9 P9
		var p10 P10
		var p11 P11
		var p12 P12
		var p13 P13
		var p14 P14
		var p15 P15
		if !run(c, PP1(&p1)) {
			return
		}
		if !run(c, PP2(&p2)) {
			return
		}
		if !run(c, PP3(&p3)) {
			return
		}
		if !run(c, PP4(&p4)) {
			return
		}
		if !run(c, PP5(&p5)) {
			return
		}
		if !run(c, PP6(&p6)) {
			return
		}
		if !run(c, PP7(&p7)) {
			return
		}
		if !run(c, PP8(&p8)) {
			return
		}
		if !run(c, PP9(&p9)) {
			return
		}
		if !run(c, PP10(&p10)) {
			return
		}
		if !run(c, PP11(&p11)) {
			return
		}
		if !run(c, PP12(&p12)) {
			return
		}
		if !run(c, PP13(&p13)) {
			return
		}
		if !run(c, PP14(&p14)) {
			return
		}
		if !run(c, PP15(&p15)) {
			return
		}
		r, err := fn(c, p1, p2, p3, p4, p5, p6, p7, p8, p9, p10, p11, p12, p13, p14, p15)
		finish(c, r, err)
	}}
}

// H16 adapts a typed handler with sixteen extractor parameters.
func H16[P1, P2, P3, P4, P5, P6, P7, P8, P9, P10, P11, P12, P13, P14, P15, P16 any, R respond.Responder, PP1 Param[P1], PP2 Param[P2], PP3 Param[P3], PP4 Param[P4], PP5 Param[P5], PP6 Param[P6], PP7 Param[P7], PP8 Param[P8], PP9 Param[P9], PP10 Param[P10], PP11 Param[P11], PP12 Param[P12], PP13 Param[P13], PP14 Param[P14], PP15 Param[P15], PP16 Param[P16]](fn func(*router.Context, P1, P2, P3, P4, P5, P6, P7, P8, P9, P10, P11, P12, P13, P14, P15, P16) (R, error)) *Typed {
	spec := buildSpec([]param{paramOf[P1, PP1](), paramOf[P2, PP2](), paramOf[P3, PP3](), paramOf[P4, PP4](), paramOf[P5, PP5](), paramOf[P6, PP6](), paramOf[P7, PP7](), paramOf[P8, PP8](), paramOf[P9, PP9](), paramOf[P10, PP10](), paramOf[P11, PP11](), paramOf[P12, PP12](), paramOf[P13, PP13](), paramOf[P14, PP14](), paramOf[P15, PP15](), paramOf[P16, PP16]()}, responderName[R]())
	return &Typed{spec: spec, fn: func(c *router.Context) {
		var p1 P1
		var p2 P2
		var p3 P3
		var p4 P4
		var p5 P5
		var p6 P6
		var p7 P7
		var p8 P8
		var p9 P9
		var p10 P10
		var p11 P11
		var p12 P12
		var p13 P13
		var p14 P14
		var p15 P15
		var p16 P16
		if !run(c, PP1(&p1)) {
			return
		}
		if !run(c, PP2(&p2)) {
			return
		}
		if !run(c, PP3(&p3)) {
			return
		}
		if !run(c, PP4(&p4)) {
			return
		}
		if !run(c, PP5(&p5)) {
			return
		}
		if !run(c, PP6(&p6)) {
			return
		}
		if !run(c, PP7(&p7)) {
			return
		}
		if !run(c, PP8(&p8)) {
			return
		}
		if !run(c, PP9(&p9)) {
			return
		}
		if !run(c, PP10(&p10)) {
			return
		}
		if !run(c, PP11(&p11)) {
			return
		}
		if !run(c, PP12(&p12)) {
			return
		}
		if !run(c, PP13(&p13)) {
			return
		}
		if !run(c, PP14(&p14)) {
			return
		}
		if !run(c, PP15(&p15)) {
			return
		}
		if !run(c, PP16(&p16)) {
			return
		}
		r, err := fn(c, p1, p2, p3, p4, p5, p6, p7, p8, p9, p10, p11, p12, p13, p14, p15, p16)
		finish(c, r, err)
	}}
}
