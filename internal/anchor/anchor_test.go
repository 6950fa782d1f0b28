package anchor

import "testing"

// TestSanitize 测试锚点清理规则
func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "lowercase", in: "Hello", want: "hello"},
		{name: "spaces become dashes", in: "Getting Started", want: "getting-started"},
		{name: "tabs become dashes", in: "a\tb", want: "a-b"},
		{name: "punctuation dropped", in: "What's new?", want: "whats-new"},
		{name: "underscore kept", in: "snake_case name", want: "snake_case-name"},
		{name: "dashes kept", in: "pre-release", want: "pre-release"},
		{name: "consecutive spaces", in: "a  b", want: "a--b"},
		{name: "non ascii dropped", in: "Café Olé", want: "caf-ol"},
		{name: "digits", in: "Step 2: Build", want: "step-2-build"},
		{name: "markup characters", in: "<code>x</code>", want: "codexcode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestSanitize_Idempotent 清理结果再次清理应保持不变
func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Hello World",
		"  leading and trailing  ",
		"Ünïcödé & symbols!!",
		"already-clean_id",
		"MiXeD\tCase\nLines",
		"**bold** [link](http://x)",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		if twice := Sanitize(once); twice != once {
			t.Errorf("Sanitize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

// TestRegistry_Allocate 测试重复标题的后缀编号
func TestRegistry_Allocate(t *testing.T) {
	reg := NewRegistry()
	want := []string{"intro", "intro-1", "intro-2", "intro-3"}
	for i, w := range want {
		if got := reg.Allocate("intro"); got != w {
			t.Errorf("Allocate #%d = %q, want %q", i, got, w)
		}
	}
}

func TestRegistry_IndependentBases(t *testing.T) {
	reg := NewRegistry()
	got := []string{
		reg.Allocate("a"),
		reg.Allocate("b"),
		reg.Allocate("a"),
		reg.Allocate("b"),
		reg.Allocate("c"),
	}
	want := []string{"a", "b", "a-1", "b-1", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Allocate #%d = %q, want %q", i, got[i], want[i])
		}
	}
	if reg.Len() != 3 {
		t.Errorf("Len() = %d, want 3", reg.Len())
	}
}

// TestRegistry_SuffixCollision 已生成的后缀 id 不会被再次检查
func TestRegistry_SuffixCollision(t *testing.T) {
	reg := NewRegistry()
	reg.Allocate("foo")
	second := reg.Allocate("foo")
	literal := reg.Allocate("foo-1")
	if second != "foo-1" || literal != "foo-1" {
		t.Errorf("got %q and %q, want both %q", second, literal, "foo-1")
	}
}

func TestRegistry_Reserve(t *testing.T) {
	reg := NewRegistry()
	reg.Reserve("custom")
	reg.Reserve("custom")
	if got := reg.Allocate("custom"); got != "custom-1" {
		t.Errorf("Allocate after Reserve = %q, want %q", got, "custom-1")
	}
}

func TestRegistry_FreshPerDocument(t *testing.T) {
	first := NewRegistry()
	first.Allocate("x")
	second := NewRegistry()
	if got := second.Allocate("x"); got != "x" {
		t.Errorf("new registry leaked state: got %q", got)
	}
}
