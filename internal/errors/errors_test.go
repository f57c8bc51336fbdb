package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("registered code", func(t *testing.T) {
		err := New("E201")
		if err.Code != "E201" {
			t.Errorf("Code = %v, want E201", err.Code)
		}
		if err.Category != CategoryRender {
			t.Errorf("Category = %v, want render", err.Category)
		}
		if err.Message == "" {
			t.Error("Message should not be empty")
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		err := New("E999")
		if err.Message != "Unknown error" {
			t.Errorf("Message = %v, want Unknown error", err.Message)
		}
	})
}

func TestErrorString(t *testing.T) {
	err := New("E301")
	if got := err.Error(); !strings.HasPrefix(got, "E301: ") {
		t.Errorf("Error() = %v, want E301 prefix", got)
	}

	err = Newf(CategoryDataset, "poll failed for %s", "scenario-a")
	if got := err.Error(); got != "poll failed for scenario-a" {
		t.Errorf("Error() = %v", got)
	}
}

func TestWrapUnwrap(t *testing.T) {
	inner := stderrors.New("connection refused")
	err := New("E302").Wrap(inner)

	if !stderrors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}

	var ee *EastError
	if !stderrors.As(err, &ee) {
		t.Error("errors.As should find EastError")
	}
}

func TestFromError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if FromError(nil, "E301") != nil {
			t.Error("FromError(nil) should be nil")
		}
	})

	t.Run("already structured", func(t *testing.T) {
		orig := New("E101")
		if got := FromError(orig, "E302"); got != orig {
			t.Error("FromError should pass through EastError unchanged")
		}
	})

	t.Run("plain error", func(t *testing.T) {
		err := FromError(stderrors.New("boom"), "E302")
		if err.Code != "E302" {
			t.Errorf("Code = %v, want E302", err.Code)
		}
		if err.Wrapped == nil {
			t.Error("plain error should be wrapped")
		}
	})
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E202").
		WithSuggestion("Register a comparator for the column").
		Wrap(stderrors.New("missing comparator"))

	out := err.Format()
	for _, want := range []string{"ERROR E202", "Hint:", "Caused by: missing comparator", "Learn more:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
}
