package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Dashboard", "Dashboard"},
		{"spaces become underscores", "Login Page", "Login_Page"},
		{"space runs collapse", "Hero   Banner", "Hero_Banner"},
		{"slashes", "icons/arrow/left", "icons_arrow_left"},
		{"backslash and colon", `assets\v2:final`, "assets_v2_final"},
		{"windows reserved chars", `a<b>c"d|e?f*g`, "a_b_c_d_e_f_g"},
		{"mixed illegal and space run", "icons / arrow", "icons_arrow"},
		{"surrounding whitespace", "  Hero Banner  ", "Hero_Banner"},
		{"empty", "", "unnamed"},
		{"whitespace only", "   ", "unnamed"},
		{"illegal only", "///", "unnamed"},
		{"control characters", "tab\there", "tab_here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.in))
		})
	}
}

func TestNameSet_Claim(t *testing.T) {
	s := newNameSet()

	assert.Equal(t, "Frame", s.claim("Frame"))
	assert.Equal(t, "Frame_2", s.claim("Frame"))
	assert.Equal(t, "Frame_3", s.claim("Frame"))
	assert.Equal(t, "Button", s.claim("Button"))
}

func TestNameSet_CaseInsensitive(t *testing.T) {
	s := newNameSet()

	assert.Equal(t, "Login", s.claim("Login"))
	assert.Equal(t, "login_2", s.claim("login"))
}

func TestNameSet_SuffixCollision(t *testing.T) {
	// An author-chosen "Frame_2" must not clash with a generated suffix.
	s := newNameSet()

	assert.Equal(t, "Frame_2", s.claim("Frame_2"))
	assert.Equal(t, "Frame", s.claim("Frame"))
	assert.Equal(t, "Frame_3", s.claim("Frame"))
}
