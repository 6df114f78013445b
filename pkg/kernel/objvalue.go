package kernel

import "strings"

type Email string

func NewEmail(s string) Email { return Email(strings.ToLower(strings.TrimSpace(s))) }
func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool { return string(e) == "" }

// IsValid performs a minimal shape check; real validation happens at the API boundary.
func (e Email) IsValid() bool {
	s := string(e)
	at := strings.Index(s, "@")
	return at > 0 && strings.Contains(s[at+1:], ".")
}

type Phone string

func (p Phone) String() string { return string(p) }
func (p Phone) IsEmpty() bool { return string(p) == "" }

type RoleName string

func (r RoleName) String() string { return string(r) }
func (r RoleName) IsEmpty() bool { return string(r) == "" }
