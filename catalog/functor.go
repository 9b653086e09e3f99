package catalog

import (
	"lawcheck/algebra"
	"lawcheck/law"
	"lawcheck/value"
)

func Functor() []law.Law {
	return []law.Law{
		{
			Name: "Functor: Identity",
			Evaluator: law.For(func(T algebra.Functor) law.Check {
				return func(args value.Values) law.Outcome {
					a := args["a"]
					return law.Outcome{Left: T.Map(identity, a), Right: a}
				}
			}),
		},
		{
			Name: "Functor: Composition",
			Evaluator: law.For(func(T algebra.Functor) law.Check {
				return func(args value.Values) law.Outcome {
					a, f, g := args["a"], fn(args, "f"), fn(args, "g")
					return law.Outcome{
						Left:  T.Map(compose(f, g), a),
						Right: T.Map(f, T.Map(g, a)),
					}
				}
			}),
		},
	}
}

func Alt() []law.Law {
	return []law.Law{
		{
			Name: "Alt: Associativity",
			Evaluator: law.For(func(T algebra.Alt) law.Check {
				return func(args value.Values) law.Outcome {
					a, b, c := args["a"], args["b"], args["c"]
					return law.Outcome{
						Left:  T.Alt(T.Alt(a, b), c),
						Right: T.Alt(a, T.Alt(b, c)),
					}
				}
			}),
		},
		{
			Name: "Alt: Distributivity",
			Evaluator: law.For(func(T algebra.Alt) law.Check {
				return func(args value.Values) law.Outcome {
					a, b, f := args["a"], args["b"], fn(args, "f")
					return law.Outcome{
						Left:  T.Map(f, T.Alt(a, b)),
						Right: T.Alt(T.Map(f, a), T.Map(f, b)),
					}
				}
			}),
		},
	}
}

func Plus() []law.Law {
	return []law.Law{
		{
			Name: "Plus: Right identity",
			Evaluator: law.For(func(T algebra.Plus) law.Check {
				return func(args value.Values) law.Outcome {
					a := args["a"]
					return law.Outcome{Left: T.Alt(a, T.Zero()), Right: a}
				}
			}),
		},
		{
			Name: "Plus: Left identity",
			Evaluator: law.For(func(T algebra.Plus) law.Check {
				return func(args value.Values) law.Outcome {
					a := args["a"]
					return law.Outcome{Left: T.Alt(T.Zero(), a), Right: a}
				}
			}),
		},
		{
			Name: "Plus: Annihilation",
			Evaluator: law.For(func(T algebra.Plus) law.Check {
				return func(args value.Values) law.Outcome {
					f := fn(args, "f")
					return law.Outcome{Left: T.Map(f, T.Zero()), Right: T.Zero()}
				}
			}),
		},
	}
}

// Unlike Static Land, u and v hold functions and a holds values.
func Apply() []law.Law {
	return []law.Law{
		{
			Name: "Apply: Composition",
			Evaluator: law.For(func(T algebra.Apply) law.Check {
				curriedCompose := func(f any) any {
					return algebra.Func(func(g any) any {
						return compose(f.(algebra.Func), g.(algebra.Func))
					})
				}
				return func(args value.Values) law.Outcome {
					a, u, v := args["a"], args["u"], args["v"]
					return law.Outcome{
						Left:  T.Ap(T.Ap(T.Map(curriedCompose, u), v), a),
						Right: T.Ap(u, T.Ap(v, a)),
					}
				}
			}),
		},
	}
}

func Applicative() []law.Law {
	return []law.Law{
		{
			Name: "Applicative: Identity",
			Evaluator: law.For(func(T algebra.Applicative) law.Check {
				return func(args value.Values) law.Outcome {
					a := args["a"]
					return law.Outcome{Left: T.Ap(T.Of(identity), a), Right: a}
				}
			}),
		},
		{
			Name: "Applicative: Homomorphism",
			Evaluator: law.For(func(T algebra.Applicative) law.Check {
				return func(args value.Values) law.Outcome {
					f, x := fn(args, "f"), args["x"]
					return law.Outcome{
						Left:  T.Ap(T.Of(f), T.Of(x)),
						Right: T.Of(f(x)),
					}
				}
			}),
		},
		{
			Name: "Applicative: Interchange",
			Evaluator: law.For(func(T algebra.Applicative) law.Check {
				return func(args value.Values) law.Outcome {
					x, u := args["x"], args["u"]
					applyTo := algebra.Func(func(f any) any { return f.(algebra.Func)(x) })
					return law.Outcome{
						Left:  T.Ap(u, T.Of(x)),
						Right: T.Ap(T.Of(applyTo), u),
					}
				}
			}),
		},
	}
}

func Chain() []law.Law {
	return []law.Law{
		{
			Name: "Chain: Associativity",
			Evaluator: law.For(func(T algebra.Chain) law.Check {
				return func(args value.Values) law.Outcome {
					f, g, u := fn(args, "f"), fn(args, "g"), args["u"]
					return law.Outcome{
						Left: T.Chain(g, T.Chain(f, u)),
						Right: T.Chain(func(x any) any {
							return T.Chain(g, f(x))
						}, u),
					}
				}
			}),
		},
	}
}

func Alternative() []law.Law {
	return []law.Law{
		{
			Name: "Alternative: Distributivity",
			Evaluator: law.For(func(T algebra.Alternative) law.Check {
				return func(args value.Values) law.Outcome {
					a, b, c := args["a"], args["b"], args["c"]
					return law.Outcome{
						Left:  T.Ap(T.Alt(a, b), c),
						Right: T.Alt(T.Ap(a, c), T.Ap(b, c)),
					}
				}
			}),
		},
		{
			Name: "Alternative: Annihilation",
			Evaluator: law.For(func(T algebra.Alternative) law.Check {
				return func(args value.Values) law.Outcome {
					c := args["c"]
					return law.Outcome{Left: T.Ap(T.Zero(), c), Right: T.Zero()}
				}
			}),
		},
	}
}

func Monad() []law.Law {
	return []law.Law{
		{
			Name: "Monad: Left identity",
			Evaluator: law.For(func(T algebra.Monad) law.Check {
				return func(args value.Values) law.Outcome {
					f, a := fn(args, "f"), args["a"]
					return law.Outcome{Left: T.Chain(f, T.Of(a)), Right: f(a)}
				}
			}),
		},
		{
			Name: "Monad: Right identity",
			Evaluator: law.For(func(T algebra.Monad) law.Check {
				return func(args value.Values) law.Outcome {
					u := args["u"]
					return law.Outcome{Left: T.Chain(T.Of, u), Right: u}
				}
			}),
		},
	}
}

func Extend() []law.Law {
	return []law.Law{
		{
			Name: "Extend: Associativity",
			Evaluator: law.For(func(T algebra.Extend) law.Check {
				return func(args value.Values) law.Outcome {
					f, g, w := fn(args, "f"), fn(args, "g"), args["w"]
					return law.Outcome{
						Left: T.Extend(f, T.Extend(g, w)),
						Right: T.Extend(func(x any) any {
							return f(T.Extend(g, x))
						}, w),
					}
				}
			}),
		},
	}
}

func Comonad() []law.Law {
	return []law.Law{
		{
			Name: "Comonad: Left Identity",
			Evaluator: law.For(func(T algebra.Comonad) law.Check {
				return func(args value.Values) law.Outcome {
					w := args["w"]
					return law.Outcome{Left: T.Extend(T.Extract, w), Right: w}
				}
			}),
		},
		{
			Name: "Comonad: Right Identity",
			Evaluator: law.For(func(T algebra.Comonad) law.Check {
				return func(args value.Values) law.Outcome {
					f, w := fn(args, "f"), args["w"]
					return law.Outcome{Left: T.Extract(T.Extend(f, w)), Right: f(w)}
				}
			}),
		},
	}
}

func Bifunctor() []law.Law {
	return []law.Law{
		{
			Name: "Bifunctor: Identity",
			Evaluator: law.For(func(T algebra.Bifunctor) law.Check {
				return func(args value.Values) law.Outcome {
					a := args["a"]
					return law.Outcome{Left: T.Bimap(identity, identity, a), Right: a}
				}
			}),
		},
		{
			Name: "Bifunctor: Composition",
			Evaluator: law.For(func(T algebra.Bifunctor) law.Check {
				return func(args value.Values) law.Outcome {
					f, g, h, i, a := fn(args, "f"), fn(args, "g"), fn(args, "h"), fn(args, "i"), args["a"]
					return law.Outcome{
						Left:  T.Bimap(compose(f, g), compose(h, i), a),
						Right: T.Bimap(f, h, T.Bimap(g, i, a)),
					}
				}
			}),
		},
	}
}

// Profunctor values are usually functions. Configure an input to compare them by application.
func Profunctor() []law.Law {
	return []law.Law{
		{
			Name: "Profunctor: Identity",
			Evaluator: law.For(func(T algebra.Profunctor) law.Check {
				return func(args value.Values) law.Outcome {
					g := args["g"]
					return law.Outcome{Left: T.Promap(identity, identity, g), Right: g}
				}
			}),
		},
		{
			Name: "Profunctor: Composition",
			Evaluator: law.For(func(T algebra.Profunctor) law.Check {
				return func(args value.Values) law.Outcome {
					f, g, h, i, a := fn(args, "f"), fn(args, "g"), fn(args, "h"), fn(args, "i"), args["a"]
					return law.Outcome{
						Left:  T.Promap(compose(f, g), compose(h, i), a),
						Right: T.Promap(g, h, T.Promap(f, i, a)),
					}
				}
			}),
		},
	}
}

func Contravariant() []law.Law {
	return []law.Law{
		{
			Name: "Contravariant: Identity",
			Evaluator: law.For(func(T algebra.Contravariant) law.Check {
				return func(args value.Values) law.Outcome {
					a := args["a"]
					return law.Outcome{Left: T.Contramap(identity, a), Right: a}
				}
			}),
		},
		{
			Name: "Contravariant: Composition",
			Evaluator: law.For(func(T algebra.Contravariant) law.Check {
				return func(args value.Values) law.Outcome {
					a, f, g := args["a"], fn(args, "f"), fn(args, "g")
					return law.Outcome{
						Left:  T.Contramap(compose(f, g), a),
						Right: T.Contramap(g, T.Contramap(f, a)),
					}
				}
			}),
		},
	}
}

func Filterable() []law.Law {
	always := func(any) bool { return true }
	never := func(any) bool { return false }
	return []law.Law{
		{
			Name: "Filterable: Distributivity",
			Evaluator: law.For(func(T algebra.Filterable) law.Check {
				return func(args value.Values) law.Outcome {
					a := args["a"]
					f, g := args["f"].(func(any) bool), args["g"].(func(any) bool)
					return law.Outcome{
						Left: T.Filter(func(x any) bool {
							return f(x) && g(x)
						}, a),
						Right: T.Filter(f, T.Filter(g, a)),
					}
				}
			}),
		},
		{
			Name: "Filterable: Identity",
			Evaluator: law.For(func(T algebra.Filterable) law.Check {
				return func(args value.Values) law.Outcome {
					a := args["a"]
					return law.Outcome{Left: T.Filter(always, a), Right: a}
				}
			}),
		},
		{
			Name: "Filterable: Annihilation",
			Evaluator: law.For(func(T algebra.Filterable) law.Check {
				return func(args value.Values) law.Outcome {
					a, b := args["a"], args["b"]
					return law.Outcome{Left: T.Filter(never, a), Right: T.Filter(never, b)}
				}
			}),
		},
	}
}
