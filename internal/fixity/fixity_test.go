package fixity

import "testing"

func TestStandardFixities(t *testing.T) {
	env := New()

	f, ok := env.Lookup("+")
	if !ok || f.Precedence != 6 || f.Assoc != Left {
		t.Fatalf("unexpected fixity for +: %+v ok=%v", f, ok)
	}

	f, ok = env.Lookup("::")
	if !ok || f.Precedence != 5 || f.Assoc != Right {
		t.Fatalf("unexpected fixity for ::: %+v ok=%v", f, ok)
	}

	if _, ok := env.Lookup("frobnicate"); ok {
		t.Fatal("expected frobnicate to have no fixity")
	}
}

func TestExtendShadowsInInnerScope(t *testing.T) {
	env := New()
	env.PushFrame()
	env.Extend("@@", Fixity{Precedence: 6, Assoc: Left})

	f, ok := env.Lookup("@@")
	if !ok || f.Precedence != 6 {
		t.Fatalf("expected @@ visible in inner scope, got %+v ok=%v", f, ok)
	}

	env.PopFrame()
	if _, ok := env.Lookup("@@"); ok {
		t.Fatal("expected @@ to no longer be visible after pop")
	}
}

func TestNonfixOverridesStandard(t *testing.T) {
	env := New()
	env.SetNonfix("+")

	f, ok := env.Lookup("+")
	if !ok || !f.IsNonfix() {
		t.Fatalf("expected + to be nonfix, got %+v ok=%v", f, ok)
	}
}

func TestPopFrameBalance(t *testing.T) {
	env := New()
	if env.Depth() != 1 {
		t.Fatalf("expected base depth 1, got %d", env.Depth())
	}
	env.PushFrame()
	env.PushFrame()
	if env.Depth() != 3 {
		t.Fatalf("expected depth 3, got %d", env.Depth())
	}
	env.PopFrame()
	env.PopFrame()
	if env.Depth() != 1 {
		t.Fatalf("expected depth 1 after pops, got %d", env.Depth())
	}
}

func TestPopFrameUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unbalanced PopFrame")
		}
	}()
	New().PopFrame()
}
