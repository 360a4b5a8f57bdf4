package boxes

import (
	"strings"

	graphemeutil "github.com/iw2rmb/codebox/internal/grapheme"
)

// Synchronizer translates between one logical code and the registered boxes.
type Synchronizer struct {
	reg    *Registry
	policy Policy
}

func NewSynchronizer(reg *Registry, policy Policy) *Synchronizer {
	return &Synchronizer{reg: reg, policy: normalizePolicy(policy)}
}

func (s *Synchronizer) Policy() Policy { return s.policy }

// SetPolicy switches the policy and clears every box whose value the new
// policy rejects. It returns the number of cleared boxes.
func (s *Synchronizer) SetPolicy(p Policy) int {
	s.policy = normalizePolicy(p)
	if s.reg == nil {
		return 0
	}
	n := 0
	for _, b := range s.reg.Boxes() {
		if v := b.Value(); v != "" && !s.CanAccept(v) {
			s.WriteValue(b, "")
			n++
		}
	}
	return n
}

// CanAccept reports whether v may be written into boxes under the current
// policy.
func (s *Synchronizer) CanAccept(v string) bool {
	return s.policy.Allows(v)
}

// ApplyExternalCode displays code across the boxes.
//
// An empty code clears every box. Otherwise every character must pass the
// policy before any box is touched: a single invalid character makes the
// whole call a no-op. Boxes past the end of code are cleared; characters past
// the last box are dropped. It reports whether the boxes were written.
func (s *Synchronizer) ApplyExternalCode(code string) bool {
	if s.reg == nil || s.reg.Len() == 0 {
		return false
	}

	chars := graphemeutil.Split(strings.TrimSpace(code))
	for _, ch := range chars {
		if !s.CanAccept(ch) {
			return false
		}
	}

	for i, b := range s.reg.Boxes() {
		v := ""
		if i < len(chars) {
			v = chars[i]
		}
		s.WriteValue(b, v)
	}
	return true
}

// WriteValue sets the displayed value of b and its filled marker. An empty
// value clears the box.
func (s *Synchronizer) WriteValue(b Box, v string) {
	if b == nil {
		return
	}
	b.Select()
	b.SetValue(v)
	b.SetFilled(v != "")
}

// CurrentFilledCode concatenates the non-empty box values in index order.
func (s *Synchronizer) CurrentFilledCode() string {
	if s.reg == nil {
		return ""
	}
	var sb strings.Builder
	for _, b := range s.reg.Boxes() {
		sb.WriteString(b.Value())
	}
	return sb.String()
}

// FilledCount returns the number of characters in CurrentFilledCode.
func (s *Synchronizer) FilledCount() int {
	return graphemeutil.Count(s.CurrentFilledCode())
}
