package subtitle

import "testing"

func TestJoin(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  string
	}{
		{"empty", nil, ""},
		{"single", []string{"hello"}, "hello"},
		{"latin words", []string{"hello", "world"}, "hello world"},
		{"cjk adjacent", []string{"中", "文"}, "中文"},
		{"cjk then latin", []string{"中文", "hello"}, "中文hello"},
		{"latin then cjk", []string{"hello", "中文"}, "hello中文"},
		{"closing punctuation", []string{"hello", ",world"}, "hello,world"},
		{"opening bracket", []string{"(", "hello"}, "(hello"},
		{"fullwidth closer", []string{"word", "）next"}, "word）next"},
		{"mixed run", []string{"say", "你", "好", "now"}, "say你好now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Join(tt.texts); got != tt.want {
				t.Errorf("Join(%v) = %q, want %q", tt.texts, got, tt.want)
			}
		})
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"hello", "hello"},
		{"  hello  world  ", "hello world"},
		{"a\t\nb", "a b"},
		{"中文。 保留标点！", "中文。 保留标点！"},
		{"one, two; three.", "one, two; three."},
	}

	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsCJK(t *testing.T) {
	cjk := []rune{'中', '文', '語', '一', '一', '鿿'}
	for _, r := range cjk {
		if !IsCJK(r) {
			t.Errorf("IsCJK(%q) = false, want true", r)
		}
	}

	notCJK := []rune{'a', 'Z', '0', ' ', '。', '？', 'ä', '䷿', 'ꀀ', 'あ', '한'}
	for _, r := range notCJK {
		if IsCJK(r) {
			t.Errorf("IsCJK(%q) = true, want false", r)
		}
	}
}
