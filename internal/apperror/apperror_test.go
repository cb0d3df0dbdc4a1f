package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindMissingSymbol, http.StatusBadRequest},
		{KindMissingBenchmark, http.StatusBadRequest},
		{KindInvalidDateFormat, http.StatusBadRequest},
		{KindFutureDate, http.StatusBadRequest},
		{KindInvalidRange, http.StatusBadRequest},
		{KindRangeTooLong, http.StatusBadRequest},
		{KindSeriesLengthMismatch, http.StatusBadRequest},
		{KindNoDataInRange, http.StatusNotFound},
		{KindUpstreamNotFound, http.StatusNotFound},
		{KindUpstreamFailure, http.StatusBadGateway},
		{KindInternal, http.StatusInternalServerError},
		{Kind("unknown"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := StatusFor(c.kind); got != c.want {
			t.Fatalf("StatusFor(%s)=%d, want %d", c.kind, got, c.want)
		}
	}
}

func TestError_StatusOverride(t *testing.T) {
	e := New(KindUpstreamFailure, "Request failed: Forbidden").WithStatus(http.StatusForbidden)
	if e.HTTPStatus() != http.StatusForbidden {
		t.Fatalf("want 403 got %d", e.HTTPStatus())
	}
}

func TestError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	e := Wrap(KindInternal, "msg", cause)
	if e.Error() != "msg: boom" {
		t.Fatalf("unexpected Error(): %q", e.Error())
	}
	if !errors.Is(e, cause) {
		t.Fatalf("expected errors.Is to reach the cause")
	}
	if New(KindNoDataInRange, "none").Error() != "none" {
		t.Fatalf("unexpected Error() without cause")
	}
}

func TestAs(t *testing.T) {
	orig := New(KindRangeTooLong, "Date range exceeds 30 days.")
	wrapped := fmt.Errorf("context: %w", orig)
	if got := As(wrapped); got != orig {
		t.Fatalf("As should unwrap to the original error")
	}

	plain := As(errors.New("db down"))
	if plain.Kind != KindInternal || plain.Message != InternalMessage {
		t.Fatalf("plain errors must become generic internal errors, got %+v", plain)
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("x: %w", New(KindNoDataInRange, "none"))
	if !IsKind(err, KindNoDataInRange) {
		t.Fatalf("expected kind match")
	}
	if IsKind(err, KindInternal) || IsKind(errors.New("x"), KindNoDataInRange) {
		t.Fatalf("unexpected kind match")
	}
}
