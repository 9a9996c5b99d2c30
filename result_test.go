package optres

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestResultMapPreservesStructure(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Map on Ok returns Ok(fn(value))", prop.ForAll(
		func(n int) bool {
			fn := func(x int) int { return x * 2 }
			mapped := MapResult(Ok[int, string](n), fn)
			return mapped.IsOk() && mapped.Unwrap() == fn(n)
		},
		gen.Int(),
	))

	properties.Property("Map on Err keeps the payload and skips fn", prop.ForAll(
		func(msg string) bool {
			called := false
			mapped := MapResult(Err[int](msg), func(x int) int {
				called = true
				return x
			})
			return mapped.IsErr() && mapped.UnwrapErr() == msg && !called
		},
		gen.AnyString(),
	))

	properties.Property("MapErr leaves Ok untouched", prop.ForAll(
		func(n int) bool {
			mapped := MapResultErr(Ok[int, string](n), func(s string) int { return len(s) })
			return mapped.IsOk() && mapped.Unwrap() == n
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestResultChainLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Chain on Ok equals applying fn", prop.ForAll(
		func(n int) bool {
			fn := func(x int) Result[int, error] { return Ok[int, error](x + 1) }
			chained := ChainResult(Ok[int, string](n), fn)
			return chained.IsOk() && chained.Unwrap() == n+1
		},
		gen.Int(),
	))

	properties.Property("Chain on Err passes the payload through without calling fn", prop.ForAll(
		func(msg string) bool {
			called := false
			chained := ChainResult(Err[int](msg), func(x int) Result[int, error] {
				called = true
				return Ok[int, error](x)
			})
			return chained.IsErr() && chained.UnwrapErr() == any(msg) && !called
		},
		gen.AnyString(),
	))

	properties.Property("Chain carries the callback's failure payload", prop.ForAll(
		func(n int) bool {
			chained := ChainResult(Ok[int, string](n), func(x int) Result[int, int] {
				return Err[int](x)
			})
			return chained.IsErr() && chained.UnwrapErr() == any(n)
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestResultFlatMapMonadLaw(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	f := func(x int) Result[int, string] {
		if x%2 == 0 {
			return Ok[int, string](x + 1)
		}
		return Err[int]("odd")
	}
	g := func(x int) Result[int, string] { return Ok[int, string](x * 3) }

	properties.Property("associativity", prop.ForAll(
		func(n int, ok bool) bool {
			r := Err[int]("seed")
			if ok {
				r = Ok[int, string](n)
			}
			left := FlatMapResult(FlatMapResult(r, f), g)
			right := FlatMapResult(r, func(x int) Result[int, string] {
				return FlatMapResult(f(x), g)
			})
			return left == right
		},
		gen.Int(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestResultBasicOperations(t *testing.T) {
	t.Run("Ok creates a successful result", func(t *testing.T) {
		r := Ok[int, string](42)
		if !r.IsOk() || r.IsErr() {
			t.Error("expected successful result")
		}
		if r.Unwrap() != 42 {
			t.Errorf("expected 42, got %d", r.Unwrap())
		}
	})

	t.Run("Err creates a failed result", func(t *testing.T) {
		r := Err[int]("boom")
		if r.IsOk() || !r.IsErr() {
			t.Error("expected failed result")
		}
		if r.UnwrapErr() != "boom" {
			t.Errorf("expected boom, got %v", r.UnwrapErr())
		}
	})

	t.Run("predicate-gated checks", func(t *testing.T) {
		if !Ok[int, string](4).IsOkAnd(func(x int) bool { return x > 0 }) {
			t.Error("expected true")
		}
		called := false
		if Err[int]("e").IsOkAnd(func(int) bool { called = true; return true }) {
			t.Error("expected false on Err")
		}
		if called {
			t.Error("predicate must not run on Err")
		}
		if !Err[int]("e").IsErrAnd(func(s string) bool { return s == "e" }) {
			t.Error("expected true")
		}
		if Ok[int, string](1).IsErrAnd(func(string) bool { return true }) {
			t.Error("expected false on Ok")
		}
	})

	t.Run("UnwrapOr and UnwrapOrElse", func(t *testing.T) {
		if Err[int]("e").UnwrapOr(7) != 7 {
			t.Error("expected default")
		}
		if Ok[int, string](3).UnwrapOr(7) != 3 {
			t.Error("expected value")
		}
		if Err[int]("abc").UnwrapOrElse(func(s string) int { return len(s) }) != 3 {
			t.Error("expected computed default")
		}
	})

	t.Run("Inspect and InspectErr touch the right side", func(t *testing.T) {
		seen := 0
		Ok[int, string](5).Inspect(func(v int) { seen = v }).InspectErr(func(string) {
			t.Error("InspectErr must not run on Ok")
		})
		if seen != 5 {
			t.Error("expected Inspect on Ok")
		}
		var msg string
		Err[int]("bad").InspectErr(func(s string) { msg = s }).Inspect(func(int) {
			t.Error("Inspect must not run on Err")
		})
		if msg != "bad" {
			t.Error("expected InspectErr on Err")
		}
	})

	t.Run("Ok and Err projections", func(t *testing.T) {
		if Ok[int, string](2).Ok() != Some(2) {
			t.Error("expected Some(2)")
		}
		if !Ok[int, string](2).Err().IsNone() {
			t.Error("expected None")
		}
		if Err[int]("e").Err() != Some("e") {
			t.Error("expected Some(e)")
		}
		if !Err[int]("e").Ok().IsNone() {
			t.Error("expected None")
		}
	})

	t.Run("Or and OrElse prefer success", func(t *testing.T) {
		if Ok[int, string](1).Or(Ok[int, string](2)) != Ok[int, string](1) {
			t.Error("expected Ok(1)")
		}
		if Err[int]("e").Or(Ok[int, string](2)) != Ok[int, string](2) {
			t.Error("expected Ok(2)")
		}
		got := Err[int]("abc").OrElse(func(s string) Result[int, string] {
			return Ok[int, string](len(s))
		})
		if got != Ok[int, string](3) {
			t.Error("expected Ok(3)")
		}
	})

	t.Run("And short-circuits on Err", func(t *testing.T) {
		if AndResult(Ok[int, string](1), Ok[string, string]("a")) != Ok[string, string]("a") {
			t.Error("expected Ok(a)")
		}
		got := AndResult(Err[int]("e"), Ok[string, string]("a"))
		if !got.IsErr() || got.UnwrapErr() != "e" {
			t.Error("expected Err(e)")
		}
	})

	t.Run("MapOr and MapOrElse fold", func(t *testing.T) {
		double := func(x int) int { return x * 2 }
		if MapResultOr(Ok[int, string](3), 0, double) != 6 {
			t.Error("expected 6")
		}
		if MapResultOr(Err[int]("e"), 9, double) != 9 {
			t.Error("expected default 9")
		}
		if MapResultOrElse(Err[int]("abc"), func(s string) int { return len(s) }, double) != 3 {
			t.Error("expected computed default 3")
		}
	})

	t.Run("Try captures conventional calls", func(t *testing.T) {
		r := Try(func() (int, error) { return 5, nil })
		if r != Ok[int, error](5) {
			t.Error("expected Ok(5)")
		}
		failure := errors.New("io")
		r = Try(func() (int, error) { return 0, failure })
		if !r.IsErr() || !errors.Is(r.UnwrapErr(), failure) {
			t.Error("expected Err(io)")
		}
		if TryFunc(7, nil) != Ok[int, error](7) {
			t.Error("expected Ok(7)")
		}
	})

	t.Run("iteration yields the success value only", func(t *testing.T) {
		var got []int
		for v := range Ok[int, string](3).All() {
			got = append(got, v)
		}
		if len(got) != 1 || got[0] != 3 {
			t.Errorf("expected [3], got %v", got)
		}
		for range Err[int]("e").All() {
			t.Error("expected empty sequence")
		}
		if len(Err[int]("e").ToSlice()) != 0 {
			t.Error("expected empty slice")
		}
	})

	t.Run("String formats both states", func(t *testing.T) {
		if Ok[int, string](3).String() != "Ok(3)" {
			t.Errorf("got %q", Ok[int, string](3).String())
		}
		if Err[int]("e").String() != "Err(e)" {
			t.Errorf("got %q", Err[int]("e").String())
		}
	})
}

func TestResultMatchTotality(t *testing.T) {
	t.Run("Ok invokes the Ok arm exactly once", func(t *testing.T) {
		okCalls, errCalls := 0, 0
		Ok[int, string](1).Match(func(int) { okCalls++ }, func(string) { errCalls++ })
		if okCalls != 1 || errCalls != 0 {
			t.Errorf("got okCalls=%d errCalls=%d", okCalls, errCalls)
		}
	})

	t.Run("Err invokes the Err arm exactly once", func(t *testing.T) {
		okCalls, errCalls := 0, 0
		Err[int]("e").Match(func(int) { okCalls++ }, func(string) { errCalls++ })
		if okCalls != 0 || errCalls != 1 {
			t.Errorf("got okCalls=%d errCalls=%d", okCalls, errCalls)
		}
	})

	t.Run("MatchResult returns the chosen arm's value", func(t *testing.T) {
		got := MatchResult(Ok[int, string](2), func(int) string { return "ok" }, func(string) string { return "err" })
		if got != "ok" {
			t.Errorf("expected ok, got %q", got)
		}
		got = MatchResult(Err[int]("e"), func(int) string { return "ok" }, func(string) string { return "err" })
		if got != "err" {
			t.Errorf("expected err, got %q", got)
		}
	})
}

func TestResultUnwrapPanicPayloads(t *testing.T) {
	t.Run("Unwrap on Err carries the failure payload", func(t *testing.T) {
		ue := recoverUnwrap(t, func() { Err[int]("boom").Unwrap() })
		if ue.Payload != any("boom") {
			t.Errorf("expected boom payload, got %v", ue.Payload)
		}
	})

	t.Run("UnwrapErr on Ok carries the success value", func(t *testing.T) {
		ue := recoverUnwrap(t, func() { Ok[int, string](5).UnwrapErr() })
		if ue.Payload != any(5) {
			t.Errorf("expected payload 5, got %v", ue.Payload)
		}
	})

	t.Run("Expect and ExpectErr override the message", func(t *testing.T) {
		ue := recoverUnwrap(t, func() { Err[int]("boom").Expect("config must load") })
		if ue.Message != "config must load" || ue.Payload != any("boom") {
			t.Errorf("got message=%q payload=%v", ue.Message, ue.Payload)
		}
		ue = recoverUnwrap(t, func() { Ok[int, string](5).ExpectErr("want failure") })
		if ue.Message != "want failure" || ue.Payload != any(5) {
			t.Errorf("got message=%q payload=%v", ue.Message, ue.Payload)
		}
	})
}
