package version

import "testing"

func TestGet_NonEmptyAndStable(t *testing.T) {
	first := Get()
	if first == "" {
		t.Fatal("Get() returned an empty version")
	}

	for i := 0; i < 10; i++ {
		if got := Get(); got != first {
			t.Fatalf("Get() call %d = %q, want %q", i, got, first)
		}
	}
}

func TestGet_ReflectsInjectedVersion(t *testing.T) {
	original := Version
	t.Cleanup(func() { Version = original })

	Version = "1.2.3"
	if got := Get(); got != "1.2.3" {
		t.Errorf("Get() = %q, want %q", got, "1.2.3")
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	if info.Version != Get() {
		t.Errorf("Info().Version = %q, want %q", info.Version, Get())
	}
	if info.Commit == "" {
		t.Error("Info().Commit should never be empty")
	}
	if info.BuildTime == "" {
		t.Error("Info().BuildTime should never be empty")
	}
}
