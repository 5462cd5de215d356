package rail

import (
	"errors"
	"testing"
)

func TestSuccess_Accessors(t *testing.T) {
	t.Parallel()

	r := Success(42)

	if !r.IsSuccess() || r.IsFailure() {
		t.Fatalf("expected success lane")
	}
	if r.Value() != 42 {
		t.Fatalf("expected value 42, got %d", r.Value())
	}
	if r.Err() != nil {
		t.Fatalf("expected nil error, got %v", r.Err())
	}
	if r.ID().String() == "" {
		t.Fatalf("expected a result id")
	}
	if r.CreatedAt().IsZero() {
		t.Fatalf("expected a creation time")
	}
}

func TestFail_Accessors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := Fail[int](boom)

	if r.IsSuccess() || !r.IsFailure() {
		t.Fatalf("expected failure lane")
	}
	if r.Err() != boom {
		t.Fatalf("expected original error, got %v", r.Err())
	}
	if r.Value() != 0 {
		t.Fatalf("expected zero value on failure, got %d", r.Value())
	}
}

func TestFailFrom_PreservesIdentity(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	from := Fail[string](boom)

	to := FailFrom[string, int](from)

	if !to.IsFailure() {
		t.Fatalf("expected failure after retyping")
	}
	if to.Err() != boom {
		t.Fatalf("expected error preserved, got %v", to.Err())
	}
	if to.ID() != from.ID() {
		t.Fatalf("expected id preserved across retyping")
	}
	if !to.CreatedAt().Equal(from.CreatedAt()) {
		t.Fatalf("expected creation time preserved across retyping")
	}
}

func TestMatch_InvokesExactlyOneProjection(t *testing.T) {
	t.Parallel()

	successCalls, failureCalls := 0, 0

	out := Match(Success("v"),
		func(v string) string { successCalls++; return v },
		func(err error) string { failureCalls++; return "fail" })

	if out != "v" || successCalls != 1 || failureCalls != 0 {
		t.Fatalf("expected only onSuccess once, got success=%d failure=%d out=%q",
			successCalls, failureCalls, out)
	}

	successCalls, failureCalls = 0, 0

	out = Match(Fail[string](errors.New("boom")),
		func(v string) string { successCalls++; return v },
		func(err error) string { failureCalls++; return "fail" })

	if out != "fail" || successCalls != 0 || failureCalls != 1 {
		t.Fatalf("expected only onFailure once, got success=%d failure=%d out=%q",
			successCalls, failureCalls, out)
	}
}
